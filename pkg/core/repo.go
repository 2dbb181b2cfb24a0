// Package core implements the snapshot/versioning engine: the staging
// area, the append-only commit log and the checkout/restore logic.
package core

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/minivc/minivc/pkg/model"
	"github.com/minivc/minivc/pkg/storage"
	"github.com/minivc/minivc/pkg/storage/localfs"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Repo orchestrates the staging area and the commit log. It is an
// explicitly constructed, explicitly owned object: construct once,
// pass it to whatever layer needs it.
//
// A single mutex covers stage, commit, checkout and log so the
// multi-step commit sequence is observed all-or-nothing.
type Repo struct {
	mu      sync.Mutex
	stage   *Stage
	commits storage.Store
	files   storage.Store
	logs    *zap.Logger
	clock   func() time.Time

	log    model.Snapshots
	index  map[uint64]int
	nextID uint64
}

// New builds a repository over its stores and rehydrates the commit log
// from the manifests already present in the commit store, so history
// survives across runs. The next commit ID continues the sequence.
func New(opts ...Option) (*Repo, error) {
	r := &Repo{
		logs:   zap.NewNop(),
		clock:  time.Now,
		index:  make(map[uint64]int),
		nextID: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.commits == nil {
		r.commits = localfs.New(nil)
	}
	if r.files == nil {
		// canonical files default to the current working directory
		r.files = localfs.New(afero.NewBasePathFs(afero.NewOsFs(), "."))
	}
	r.stage = newStage(r.logs)

	if err := r.rehydrate(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repo) rehydrate(ctx context.Context) error {
	keys, err := r.commits.KeysPrefix(ctx, model.CommitsPrefix())
	if err != nil {
		return errors.Wrap(err, "listing commit manifests")
	}
	for _, key := range keys {
		id, ok := model.ParseCommitManifestKey(key)
		if !ok {
			continue
		}
		data, err := storage.ReadAll(ctx, r.commits, key)
		if err != nil {
			return errors.Wrapf(err, "reading manifest for commit %d", id)
		}
		snap, err := model.DecodeSnapshot(data)
		if err != nil {
			return errors.Wrapf(err, "decoding manifest for commit %d", id)
		}
		r.log = append(r.log, snap)
	}
	sort.Sort(r.log)
	for i, snap := range r.log {
		r.index[snap.ID] = i
		if snap.ID >= r.nextID {
			r.nextID = snap.ID + 1
		}
	}
	if len(r.log) > 0 {
		r.logs.Info("commit log rehydrated",
			zap.Int("commits", len(r.log)),
			zap.Uint64("next_id", r.nextID))
	}
	return nil
}

// Track stages a file as a candidate for the next commit and reports
// whether it was newly added. Staging the same name twice is a no-op.
func (r *Repo) Track(f *model.File) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stage.Track(f)
}

// Tracked returns the currently staged files in name order.
func (r *Repo) Tracked() []*model.File {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stage.Tracked()
}

// NumCommits is the current length of the commit log.
func (r *Repo) NumCommits() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.log)
}
