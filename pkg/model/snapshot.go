package model

import (
	"encoding/json"
	"time"
)

// Entry describes one file frozen into a snapshot. The content itself
// lives in the commit store under CommitEntryKey; the hash ties the two
// together.
type Entry struct {
	Name string `json:"name" yaml:"name"`
	Hash string `json:"hash" yaml:"hash"`
	Size int64  `json:"size" yaml:"size"`
	Kind Kind   `json:"kind" yaml:"kind"`
}

// Snapshot is the immutable record of the files committed together under
// one commit ID. Entries are ordered by name and never mutated once the
// snapshot is appended to the log.
//
// Snapshots are dirty-only and non-cumulative: they contain exactly the
// files that were dirty at commit time, not the union of prior history.
type Snapshot struct {
	ID        uint64    `json:"id" yaml:"id"`
	Message   string    `json:"message" yaml:"message"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Entries   []Entry   `json:"entries" yaml:"entries"`

	_ struct{} // avoid unkeyed usage
}

// Entry returns the named entry, if the snapshot contains it.
func (s Snapshot) Entry(name string) (Entry, bool) {
	for _, e := range s.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Snapshots is a collection of snapshots ordered by ascending commit ID.
type Snapshots []Snapshot

func (sn Snapshots) Len() int { return len(sn) }

func (sn Snapshots) Less(i, j int) bool {
	return sn[i].ID < sn[j].ID
}

func (sn Snapshots) Swap(i, j int) {
	sn[i], sn[j] = sn[j], sn[i]
}

// EncodeSnapshot renders a snapshot to its durable manifest form.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// DecodeSnapshot parses a durable manifest back into a snapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}
