package core

type errString string

func (e errString) Error() string { return string(e) }

const (
	// ErrEmptyCommit is returned when a commit is attempted with zero
	// dirty tracked files. No snapshot is created and no ID is consumed.
	ErrEmptyCommit errString = "no edited files to commit"

	// ErrCommitNotFound is returned when a checkout names an unknown
	// commit ID. The working set is left unchanged.
	ErrCommitNotFound errString = "commit not found"

	// ErrPersistence is returned when the durable store failed during a
	// commit-time write or a checkout-time restore. The in-progress
	// operation is aborted entirely.
	ErrPersistence errString = "persistence failure"
)
