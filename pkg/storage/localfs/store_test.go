package localfs

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/minivc/minivc/pkg/storage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) storage.Store {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "sixteentons", []byte("this is the text"), 0600))
	require.NoError(t, afero.WriteFile(fs, "seventeentons", []byte("this is the text for another thing"), 0600))
	return New(fs)
}

func TestHas(t *testing.T) {
	bs := setupStore(t)

	has, err := bs.Has(context.Background(), "sixteentons")
	require.NoError(t, err)
	require.True(t, has)

	has, err = bs.Has(context.Background(), "seventeentons")
	require.NoError(t, err)
	require.True(t, has)

	has, err = bs.Has(context.Background(), "fifteentons")
	require.NoError(t, err)
	require.False(t, has)
}

func TestGet(t *testing.T) {
	bs := setupStore(t)

	rdr, err := bs.Get(context.Background(), "sixteentons")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())
	assert.Equal(t, "this is the text", string(b))

	_, err = bs.Get(context.Background(), "fifteentons")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPut(t *testing.T) {
	bs := setupStore(t)

	content := "a new object in a nested key"
	err := bs.Put(context.Background(), "nested/key/object", strings.NewReader(content))
	require.NoError(t, err)

	rdr, err := bs.Get(context.Background(), "nested/key/object")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	assert.Equal(t, content, string(b))

	// overwriting is allowed
	require.NoError(t, bs.Put(context.Background(), "nested/key/object", bytes.NewReader([]byte("v2"))))
	got, err := storage.ReadAll(context.Background(), bs, "nested/key/object")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(got))
}

func TestKeys(t *testing.T) {
	bs := setupStore(t)

	keys, err := bs.Keys(context.Background())
	require.NoError(t, err)
	require.Len(t, keys, 2)
}

func TestKeysPrefix(t *testing.T) {
	bs := setupStore(t)
	for i := 0; i < 3; i++ {
		require.NoError(t, bs.Put(context.Background(), "commits/1/"+strconv.Itoa(i), strings.NewReader("x")))
	}
	require.NoError(t, bs.Put(context.Background(), "commits/2/0", strings.NewReader("x")))

	keys, err := bs.KeysPrefix(context.Background(), "commits/1/")
	require.NoError(t, err)
	assert.Len(t, keys, 3)

	keys, err = bs.KeysPrefix(context.Background(), "commits/")
	require.NoError(t, err)
	assert.Len(t, keys, 4)
}

func TestDelete(t *testing.T) {
	bs := setupStore(t)

	require.NoError(t, bs.Delete(context.Background(), "seventeentons"))
	k, _ := bs.Keys(context.Background())
	assert.Len(t, k, 1)

	// deleting a missing key is not an error
	require.NoError(t, bs.Delete(context.Background(), "fifteentons"))
}

func TestClear(t *testing.T) {
	bs := setupStore(t)

	require.NoError(t, bs.Clear(context.Background()))
	k, err := bs.Keys(context.Background())
	require.NoError(t, err)
	assert.Empty(t, k)
}

func TestString(t *testing.T) {
	bs := setupStore(t)
	assert.Equal(t, "localfs", bs.String())
}
