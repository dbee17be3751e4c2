// Copyright © 2026 One Concern

package mem

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/oneconcern/dataver/pkg/storage"
	"github.com/oneconcern/dataver/pkg/storage/status"
)

// New creates an in-memory storage store.
//
// This is the default backend for embedded use: payloads live in process
// memory and vanish with it. Suitable for tests and for callers which
// persist the metadata graph through the engine's export instead.
func New() storage.Store {
	return &memStore{
		objects: make(map[string][]byte),
	}
}

type memStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func (m *memStore) String() string {
	return "mem"
}

func (m *memStore) Has(ctx context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objects[key]
	return ok, nil
}

func (m *memStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.objects[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, status.ErrNotExists)
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (m *memStore) Put(ctx context.Context, key string, source io.Reader, doesNotExist bool) error {
	b, err := io.ReadAll(source)
	if err != nil {
		return fmt.Errorf("%w: %v", status.ErrStorageAPI, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if doesNotExist {
		if _, ok := m.objects[key]; ok {
			return fmt.Errorf("%q: %w", key, status.ErrExists)
		}
	}
	m.objects[key] = b
	return nil
}

func (m *memStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[key]; !ok {
		return fmt.Errorf("%q: %w", key, status.ErrNotExists)
	}
	delete(m.objects, key)
	return nil
}

func (m *memStore) Keys(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
