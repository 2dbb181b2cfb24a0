package model

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotEntryLookup(t *testing.T) {
	snap := Snapshot{
		ID:      1,
		Message: "initial",
		Entries: []Entry{
			{Name: "a.txt", Hash: ContentHash([]byte("1"))},
			{Name: "b.txt", Hash: ContentHash([]byte("2"))},
		},
	}

	e, ok := snap.Entry("b.txt")
	require.True(t, ok)
	assert.Equal(t, "b.txt", e.Name)

	_, ok = snap.Entry("c.txt")
	assert.False(t, ok)
}

func TestSnapshotsSortAscending(t *testing.T) {
	sn := Snapshots{
		{ID: 3},
		{ID: 1},
		{ID: 2},
	}
	sort.Sort(sn)
	assert.Equal(t, uint64(1), sn[0].ID)
	assert.Equal(t, uint64(2), sn[1].ID)
	assert.Equal(t, uint64(3), sn[2].ID)
}

func TestSnapshotManifestRoundTrip(t *testing.T) {
	content := []byte("hello")
	snap := Snapshot{
		ID:        7,
		Message:   "seventh",
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Entries: []Entry{
			{Name: "x.txt", Hash: ContentHash(content), Size: int64(len(content)), Kind: KindText},
		},
	}

	data, err := EncodeSnapshot(snap)
	require.NoError(t, err)

	decoded, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, decoded.ID)
	assert.Equal(t, snap.Message, decoded.Message)
	assert.True(t, snap.Timestamp.Equal(decoded.Timestamp))
	assert.Equal(t, snap.Entries, decoded.Entries)
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	_, err := DecodeSnapshot([]byte("not json"))
	require.Error(t, err)
}
