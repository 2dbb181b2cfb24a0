package core

import (
	"context"

	"github.com/minivc/minivc/pkg/model"
	"github.com/minivc/minivc/pkg/storage"
)

// Log returns the commit history in ascending commit-ID order. An empty
// log is a valid, reportable state.
func (r *Repo) Log() model.Snapshots {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append(model.Snapshots(nil), r.log...)
}

// Scrub deletes all commit-scoped durable storage and resets the log.
// History removal is opt-in; it is never run as part of teardown.
func (r *Repo) Scrub(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := storage.DeleteTree(ctx, r.commits, model.CommitsPrefix()); err != nil {
		return err
	}
	r.log = nil
	r.index = make(map[uint64]int)
	r.nextID = 1
	r.logs.Info("commit history scrubbed")
	return nil
}
