package core

import (
	"sort"

	"github.com/minivc/minivc/pkg/model"
	"go.uber.org/zap"
)

// Stage tracks the files that are candidates for the next commit, keyed
// by name, without duplicates.
type Stage struct {
	logs  *zap.Logger
	files map[string]*model.File
}

func newStage(logs *zap.Logger) *Stage {
	return &Stage{
		logs:  logs,
		files: make(map[string]*model.File),
	}
}

// Track adds a file to the stage and reports whether it was newly added.
// Tracking a name twice is a silent no-op: the file tracked first stays,
// whatever identity the second one has.
func (s *Stage) Track(f *model.File) bool {
	if _, ok := s.files[f.Name()]; ok {
		return false
	}
	s.files[f.Name()] = f
	s.logs.Info("added file to staging", zap.String("name", f.Name()))
	return true
}

// Untrack removes a file from the stage. Called post-commit for the
// files that made it into the snapshot.
func (s *Stage) Untrack(name string) {
	delete(s.files, name)
}

// DirtyFiles returns the tracked files pending a commit, in name order
// so commits are reproducible.
func (s *Stage) DirtyFiles() []*model.File {
	var dirty []*model.File
	for _, f := range s.files {
		if f.Dirty() {
			dirty = append(dirty, f)
		}
	}
	sort.Slice(dirty, func(i, j int) bool { return dirty[i].Name() < dirty[j].Name() })
	return dirty
}

// Tracked returns all tracked files in name order.
func (s *Stage) Tracked() []*model.File {
	tracked := make([]*model.File, 0, len(s.files))
	for _, f := range s.files {
		tracked = append(tracked, f)
	}
	sort.Slice(tracked, func(i, j int) bool { return tracked[i].Name() < tracked[j].Name() })
	return tracked
}

// Len is the number of tracked files.
func (s *Stage) Len() int {
	return len(s.files)
}
