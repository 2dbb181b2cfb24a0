package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/minivc/minivc/pkg/model"
)

func TestTrackIsIdempotentByName(t *testing.T) {
	stage := newStage(zap.NewNop())

	f := model.NewFile("a.txt", []byte("1"))
	require.True(t, stage.Track(f))
	require.False(t, stage.Track(f), "tracking the same file twice is a no-op")
	assert.Equal(t, 1, stage.Len())

	// same name, different identity: the first one stays
	other := model.NewFile("a.txt", []byte("other"))
	require.False(t, stage.Track(other))
	assert.Equal(t, 1, stage.Len())
	tracked := stage.Tracked()
	require.Len(t, tracked, 1)
	assert.Same(t, f, tracked[0])
}

func TestDirtyFilesFiltersAndOrders(t *testing.T) {
	stage := newStage(zap.NewNop())

	b := model.NewFile("b.txt", nil)
	a := model.NewFile("a.txt", nil)
	c := model.NewFile("c.txt", nil)
	stage.Track(b)
	stage.Track(a)
	stage.Track(c)

	assert.Empty(t, stage.DirtyFiles(), "clean files are not commit candidates")

	c.Update([]byte("x"))
	a.Update([]byte("y"))
	dirty := stage.DirtyFiles()
	require.Len(t, dirty, 2)
	assert.Equal(t, "a.txt", dirty[0].Name())
	assert.Equal(t, "c.txt", dirty[1].Name())
}

func TestUntrack(t *testing.T) {
	stage := newStage(zap.NewNop())
	f := model.NewFile("a.txt", nil)
	stage.Track(f)
	stage.Untrack("a.txt")
	assert.Zero(t, stage.Len())

	// untracked files can be tracked again
	assert.True(t, stage.Track(f))
}
