// Package storage provides the K/V durable store the versioning engine
// writes commit snapshots and restored files to.
//
// Implementations are assumed to be fairly simple, file system-like
// backends. The local file system flavor lives in the localfs subpackage.
package storage

import (
	"bufio"
	"context"
	"io"
	"strings"
)

type errString string

func (e errString) Error() string { return string(e) }

const (
	// ErrNotFound is returned when a key has no object behind it
	ErrNotFound errString = "not found"

	// ErrExists is returned when a key is expected to not exist yet
	ErrExists errString = "exists already"

	// ErrNotSupported is returned for operations a backend cannot serve
	ErrNotSupported errString = "not supported"
)

// Store implementations know how to write entries to a K/V store.
//
// Keys are slash-separated paths; values are opaque byte streams.
type Store interface {
	String() string
	Has(context.Context, string) (bool, error)
	Get(context.Context, string) (io.ReadCloser, error)
	Put(context.Context, string, io.Reader) error
	Delete(context.Context, string) error
	Keys(context.Context) ([]string, error)
	KeysPrefix(context.Context, string) ([]string, error)
	Clear(context.Context) error
}

// PipeIO copies a reader to a writer through a buffer.
func PipeIO(writer io.Writer, reader io.Reader) (n int64, err error) {
	pr, pw := bufio.NewReader(reader), bufio.NewWriter(writer)
	n, err = io.Copy(pw, pr)
	if err != nil {
		return n, err
	}
	return n, pw.Flush()
}

// ReadAll fetches the object at key and reads it fully into memory.
func ReadAll(ctx context.Context, store Store, key string) ([]byte, error) {
	reader, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return io.ReadAll(reader)
}

// DeleteTree removes every key under the given prefix.
//
// A missing tree is not an error: deleting nothing succeeds.
func DeleteTree(ctx context.Context, store Store, prefix string) error {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	keys, err := store.KeysPrefix(ctx, prefix)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := store.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
