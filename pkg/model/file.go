package model

import (
	"encoding/hex"

	"github.com/zeebo/xxh3"
)

// Kind describes the content flavor of a versioned file.
//
// Only plain text exists today; the enum leaves room for other kinds
// without changing the file API.
type Kind uint8

const (
	// KindText is raw text content
	KindText Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// File is a named content container tracking a committed version next to
// a staged, not-yet-committed edit.
//
// Immediately after construction, a commit or a restore, staged and
// committed content are equal and the file is clean.
type File struct {
	name      string
	kind      Kind
	committed []byte
	staged    []byte
	dirty     bool
}

// NewFile constructs a clean file with committed == staged == initial.
func NewFile(name string, initial []byte) *File {
	content := append([]byte(nil), initial...)
	return &File{
		name:      name,
		kind:      KindText,
		committed: content,
		staged:    append([]byte(nil), content...),
	}
}

// Name of the file, unique within a working set
func (f *File) Name() string { return f.name }

// Kind of the file content
func (f *File) Kind() Kind { return f.kind }

// Dirty reports whether staged content is pending a commit
func (f *File) Dirty() bool { return f.dirty }

// Committed returns a copy of the last committed content
func (f *File) Committed() []byte {
	return append([]byte(nil), f.committed...)
}

// Staged returns a copy of the pending content
func (f *File) Staged() []byte {
	return append([]byte(nil), f.staged...)
}

// Update stages new content and marks the file dirty. Any byte sequence
// is valid, including empty.
func (f *File) Update(content []byte) {
	f.staged = append([]byte(nil), content...)
	f.dirty = true
}

// MarkCommitted promotes the staged content to committed and clears the
// dirty flag. Called by the repository once the content has been
// persisted as part of a snapshot.
func (f *File) MarkCommitted() {
	f.committed = append([]byte(nil), f.staged...)
	f.dirty = false
}

// Restore forces both committed and staged content back to a historical
// snapshot's content.
func (f *File) Restore(content []byte) {
	f.committed = append([]byte(nil), content...)
	f.staged = append([]byte(nil), content...)
	f.dirty = false
}

// CloneFrozen returns an independent, immutable copy of the staged
// content, suitable for embedding in a snapshot. The copy never aliases
// the live file's buffers.
func (f *File) CloneFrozen() FrozenFile {
	content := append([]byte(nil), f.staged...)
	return FrozenFile{
		Name:    f.name,
		Kind:    f.kind,
		Content: content,
		Hash:    ContentHash(content),
	}
}

// FrozenFile is a point-in-time copy of a file's staged content.
type FrozenFile struct {
	Name    string
	Kind    Kind
	Content []byte
	Hash    string
}

// ContentHash computes the xxh3-128 digest of content, hex encoded.
func ContentHash(content []byte) string {
	h := xxh3.Hash128(content).Bytes()
	return hex.EncodeToString(h[:])
}
