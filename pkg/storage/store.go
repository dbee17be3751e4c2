// Copyright © 2026 One Concern

package storage

import (
	"context"
	"io"
)

// Overwrite flags for the Put operation.
const (
	// OverWrite replaces any object already present under the key
	OverWrite = false

	// NoOverWrite makes Put fail when an object is already present under the key
	NoOverWrite = true
)

// Store implementations know how to persist version payloads in a K/V fashion.
//
// Typically this is something file system-like. Implementations of this
// interface are assumed to be fairly simple: the engine performs no retries
// and expects calls to be synchronous.
type Store interface {
	String() string
	Has(context.Context, string) (bool, error)
	Get(context.Context, string) (io.ReadCloser, error)
	Put(context.Context, string, io.Reader, bool) error
	Delete(context.Context, string) error
	Keys(context.Context) ([]string, error)
}

// PipeIO copies the reader to the writer, with a fixed-size buffer.
func PipeIO(writer io.Writer, reader io.Reader) (n int64, err error) {
	pr, pw := io.Pipe()
	errC := make(chan error, 1)
	go func() {
		defer pw.Close()
		_, err := io.Copy(pw, reader)
		errC <- err
	}()
	written, err := io.Copy(writer, pr)
	if err != nil {
		return 0, err
	}
	if err = <-errC; err != nil {
		return 0, err
	}
	return written, nil
}

// ReadAll drains a reader obtained from Get and closes it.
func ReadAll(rdr io.ReadCloser) ([]byte, error) {
	defer rdr.Close()
	return io.ReadAll(rdr)
}
