package core

import (
	"github.com/minivc/minivc/pkg/model"
	"github.com/spf13/afero"
)

// Workspace is the caller-visible set of live files currently being
// edited, backed by a working directory. It is a separate concern from
// the staging area: checkout replaces the workspace, never the stage.
type Workspace struct {
	fs    afero.Fs
	names []string
	files map[string]*model.File
}

// NewWorkspace builds a workspace over a working directory. A nil fs
// defaults to the current directory of the real file system.
func NewWorkspace(fs afero.Fs) *Workspace {
	if fs == nil {
		fs = afero.NewBasePathFs(afero.NewOsFs(), ".")
	}
	return &Workspace{
		fs:    fs,
		files: make(map[string]*model.File),
	}
}

// Load seeds a file from the working directory. The not-found error of
// the underlying file system passes through so callers can offer to
// create the file instead.
func (ws *Workspace) Load(name string) (*model.File, error) {
	content, err := afero.ReadFile(ws.fs, name)
	if err != nil {
		return nil, err
	}
	return model.NewFile(name, content), nil
}

// Create makes an empty file on disk and returns its live counterpart.
func (ws *Workspace) Create(name string) (*model.File, error) {
	if err := afero.WriteFile(ws.fs, name, nil, 0644); err != nil {
		return nil, err
	}
	return model.NewFile(name, nil), nil
}

// Add puts a file into the working set, keeping insertion order, and
// reports whether it was newly added. Names are unique.
func (ws *Workspace) Add(f *model.File) bool {
	if _, ok := ws.files[f.Name()]; ok {
		return false
	}
	ws.files[f.Name()] = f
	ws.names = append(ws.names, f.Name())
	return true
}

// Get returns the live file with the given name, if present.
func (ws *Workspace) Get(name string) (*model.File, bool) {
	f, ok := ws.files[name]
	return f, ok
}

// Files returns the working set in insertion order.
func (ws *Workspace) Files() []*model.File {
	res := make([]*model.File, 0, len(ws.names))
	for _, name := range ws.names {
		res = append(res, ws.files[name])
	}
	return res
}

// Replace swaps the entire working set for the given files. Files not in
// the new set are dropped.
func (ws *Workspace) Replace(files []*model.File) {
	ws.names = ws.names[:0]
	ws.files = make(map[string]*model.File, len(files))
	for _, f := range files {
		ws.files[f.Name()] = f
		ws.names = append(ws.names, f.Name())
	}
}

// Len is the number of files in the working set.
func (ws *Workspace) Len() int {
	return len(ws.names)
}
