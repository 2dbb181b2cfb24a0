package storage_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/minivc/minivc/pkg/storage"
	"github.com/minivc/minivc/pkg/storage/localfs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeIO(t *testing.T) {
	var out bytes.Buffer
	n, err := storage.PipeIO(&out, strings.NewReader("pipe me through"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("pipe me through")), n)
	assert.Equal(t, "pipe me through", out.String())
}

func TestReadAll(t *testing.T) {
	ctx := context.Background()
	store := localfs.New(afero.NewMemMapFs())
	require.NoError(t, store.Put(ctx, "greeting", strings.NewReader("hello")))

	b, err := storage.ReadAll(ctx, store, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))

	_, err = storage.ReadAll(ctx, store, "missing")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteTree(t *testing.T) {
	ctx := context.Background()
	store := localfs.New(afero.NewMemMapFs())
	require.NoError(t, store.Put(ctx, "commits/1/a", strings.NewReader("x")))
	require.NoError(t, store.Put(ctx, "commits/1/b", strings.NewReader("y")))
	require.NoError(t, store.Put(ctx, "commits/2/a", strings.NewReader("z")))

	require.NoError(t, storage.DeleteTree(ctx, store, "commits/1"))

	keys, err := store.KeysPrefix(ctx, "commits/")
	require.NoError(t, err)
	assert.Equal(t, []string{"commits/2/a"}, keys)

	// deleting an absent tree succeeds
	require.NoError(t, storage.DeleteTree(ctx, store, "commits/9/"))
}
