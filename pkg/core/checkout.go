package core

import (
	"bytes"
	"context"

	"github.com/minivc/minivc/pkg/model"
	"github.com/minivc/minivc/pkg/storage"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Checkout restores the working set to the state recorded under the
// given commit ID.
//
// The replacement is wholesale: after a successful checkout the working
// set contains exactly the snapshot's files, nothing else. Every entry
// is read and checksum-verified before the working set or the canonical
// files are touched, so a failed restore leaves the caller's set
// unchanged. The staging area is neither consulted nor modified.
func (r *Repo) Checkout(ctx context.Context, id uint64, ws *Workspace) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.index[id]
	if !ok {
		return errors.Wrapf(ErrCommitNotFound, "checkout %d", id)
	}
	snap := r.log[idx]

	restored := make([]*model.File, 0, len(snap.Entries))
	for _, e := range snap.Entries {
		content, err := r.entryContent(ctx, snap, e)
		if err != nil {
			return err
		}
		restored = append(restored, model.NewFile(e.Name, content))
	}

	for _, f := range restored {
		if err := r.files.Put(ctx, f.Name(), bytes.NewReader(f.Committed())); err != nil {
			return errors.Wrapf(ErrPersistence,
				"checkout %d: restore %q: %v", id, f.Name(), err)
		}
	}

	ws.Replace(restored)
	r.logs.Info("checked out commit",
		zap.Uint64("id", id),
		zap.Int("files", len(restored)))
	return nil
}

// EntryContent reads back the frozen, checksum-verified content of one
// snapshot entry.
func (r *Repo) EntryContent(ctx context.Context, id uint64, name string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.index[id]
	if !ok {
		return nil, errors.Wrapf(ErrCommitNotFound, "commit %d", id)
	}
	snap := r.log[idx]
	e, ok := snap.Entry(name)
	if !ok {
		return nil, errors.Wrapf(storage.ErrNotFound, "commit %d has no entry %q", id, name)
	}
	return r.entryContent(ctx, snap, e)
}

func (r *Repo) entryContent(ctx context.Context, snap model.Snapshot, e model.Entry) ([]byte, error) {
	content, err := storage.ReadAll(ctx, r.commits, model.CommitEntryKey(snap.ID, e.Name))
	if err != nil {
		return nil, errors.Wrapf(ErrPersistence,
			"commit %d: read entry %q: %v", snap.ID, e.Name, err)
	}
	if model.ContentHash(content) != e.Hash {
		return nil, errors.Wrapf(ErrPersistence,
			"commit %d: entry %q: checksum mismatch", snap.ID, e.Name)
	}
	return content, nil
}
