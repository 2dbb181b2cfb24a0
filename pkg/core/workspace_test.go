package core

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minivc/minivc/pkg/model"
)

func TestWorkspaceLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "notes.txt", []byte("on disk"), 0644))
	ws := NewWorkspace(fs)

	f, err := ws.Load("notes.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("on disk"), f.Committed())
	assert.False(t, f.Dirty())

	_, err = ws.Load("missing.txt")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestWorkspaceCreate(t *testing.T) {
	fs := afero.NewMemMapFs()
	ws := NewWorkspace(fs)

	f, err := ws.Create("new.txt")
	require.NoError(t, err)
	assert.Empty(t, f.Committed())

	exists, err := afero.Exists(fs, "new.txt")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestWorkspaceAddKeepsInsertionOrder(t *testing.T) {
	ws := NewWorkspace(afero.NewMemMapFs())

	b := model.NewFile("b.txt", nil)
	a := model.NewFile("a.txt", nil)
	require.True(t, ws.Add(b))
	require.True(t, ws.Add(a))
	require.False(t, ws.Add(model.NewFile("a.txt", nil)), "duplicate names rejected")

	files := ws.Files()
	require.Len(t, files, 2)
	assert.Equal(t, "b.txt", files[0].Name())
	assert.Equal(t, "a.txt", files[1].Name())
}

func TestWorkspaceReplace(t *testing.T) {
	ws := NewWorkspace(afero.NewMemMapFs())
	ws.Add(model.NewFile("old.txt", nil))

	ws.Replace([]*model.File{model.NewFile("new.txt", []byte("x"))})
	assert.Equal(t, 1, ws.Len())
	_, ok := ws.Get("old.txt")
	assert.False(t, ok, "replace drops files not in the new set")
	f, ok := ws.Get("new.txt")
	require.True(t, ok)
	assert.Equal(t, []byte("x"), f.Committed())
}
