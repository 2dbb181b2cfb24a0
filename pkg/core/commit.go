package core

import (
	"bytes"
	"context"

	"github.com/minivc/minivc/pkg/model"
	"github.com/minivc/minivc/pkg/storage"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Commit freezes the currently dirty staged files into a new snapshot.
//
// All dirty files commit together or none do: the manifest is written
// last and its presence is what makes the commit durable, so a failed
// entry write leaves the log, the ID sequence and every dirty flag
// untouched. On success, committed files are promoted, persisted to
// their canonical location and removed from the stage.
func (r *Repo) Commit(ctx context.Context, message string) (model.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dirty := r.stage.DirtyFiles()
	if len(dirty) == 0 {
		return model.Snapshot{}, ErrEmptyCommit
	}

	id := r.nextID
	entries := make([]model.Entry, 0, len(dirty))
	for _, f := range dirty {
		frozen := f.CloneFrozen()
		key := model.CommitEntryKey(id, frozen.Name)
		if err := r.commits.Put(ctx, key, bytes.NewReader(frozen.Content)); err != nil {
			r.rollback(ctx, id)
			return model.Snapshot{}, errors.Wrapf(ErrPersistence,
				"commit %d: write entry %q: %v", id, frozen.Name, err)
		}
		entries = append(entries, model.Entry{
			Name: frozen.Name,
			Hash: frozen.Hash,
			Size: int64(len(frozen.Content)),
			Kind: frozen.Kind,
		})
	}

	snap := model.Snapshot{
		ID:        id,
		Message:   message,
		Timestamp: r.clock(),
		Entries:   entries,
	}
	manifest, err := model.EncodeSnapshot(snap)
	if err != nil {
		r.rollback(ctx, id)
		return model.Snapshot{}, errors.Wrapf(err, "commit %d: encode manifest", id)
	}
	if err := r.commits.Put(ctx, model.CommitManifestKey(id), bytes.NewReader(manifest)); err != nil {
		r.rollback(ctx, id)
		return model.Snapshot{}, errors.Wrapf(ErrPersistence,
			"commit %d: write manifest: %v", id, err)
	}

	r.log = append(r.log, snap)
	r.index[id] = len(r.log) - 1
	r.nextID++

	for _, f := range dirty {
		f.MarkCommitted()
		if err := r.files.Put(ctx, f.Name(), bytes.NewReader(f.Committed())); err != nil {
			return snap, errors.Wrapf(ErrPersistence,
				"commit %d: update %q: %v", id, f.Name(), err)
		}
		r.stage.Untrack(f.Name())
	}

	r.logs.Info("commit created",
		zap.Uint64("id", id),
		zap.String("message", message),
		zap.Int("files", len(entries)))
	return snap, nil
}

// rollback best-effort removes whatever was written under a failed
// commit's scope so the store carries no trace of it.
func (r *Repo) rollback(ctx context.Context, id uint64) {
	if err := storage.DeleteTree(ctx, r.commits, model.CommitScope(id)); err != nil {
		r.logs.Warn("rollback of failed commit left stray keys",
			zap.Uint64("id", id), zap.Error(err))
	}
	if err := r.commits.Delete(ctx, model.CommitManifestKey(id)); err != nil {
		r.logs.Warn("rollback of failed commit left a manifest",
			zap.Uint64("id", id), zap.Error(err))
	}
}
