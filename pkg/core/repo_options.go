package core

import (
	"time"

	"github.com/minivc/minivc/pkg/storage"
	"go.uber.org/zap"
)

// Option is a functor to build a repository with some options
type Option func(*Repo)

// CommitStore defines the commit-scoped durable store, holding the
// frozen snapshot content and manifests
func CommitStore(store storage.Store) Option {
	return func(r *Repo) {
		r.commits = store
	}
}

// FileStore defines the canonical per-file store, typically rooted at
// the working directory
func FileStore(store storage.Store) Option {
	return func(r *Repo) {
		r.files = store
	}
}

// Logger defines the zap logger used by the repository
func Logger(logs *zap.Logger) Option {
	return func(r *Repo) {
		if logs != nil {
			r.logs = logs
		}
	}
}

// Clock defines the timestamp source for new snapshots
func Clock(clock func() time.Time) Option {
	return func(r *Repo) {
		if clock != nil {
			r.clock = clock
		}
	}
}
