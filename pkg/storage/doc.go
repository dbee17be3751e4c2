// Copyright © 2026 One Concern

// Package storage declares the Store interface used by the version-control
// engine to persist record payloads, keyed by archive path.
//
// Implementations are pluggable: an in-memory store for embedded use and
// tests, and a local file system store backed by afero. The engine owns
// metadata; a Store only ever sees opaque payload bytes.
package storage
