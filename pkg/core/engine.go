// Copyright © 2026 One Concern

package core

import (
	"sort"
	"sync"
	"time"

	"github.com/oneconcern/dataver/pkg/model"
	"github.com/oneconcern/dataver/pkg/storage"
	"github.com/oneconcern/dataver/pkg/storage/mem"
	"go.uber.org/zap"
)

// Engine is the embeddable version-control engine.
//
// An Engine is safe for concurrent use: reads proceed under shared locks,
// while commits and other graph mutations take an exclusive per-dataset
// lock.
type Engine struct {
	backend          storage.Store
	l                *zap.Logger
	autoCreateBranch bool
	clock            func() time.Time

	mu       sync.RWMutex
	datasets map[string]*dataset
}

// dataset is the arena holding one dataset's metadata graph.
type dataset struct {
	mu        sync.RWMutex
	versions  map[string]model.VersionDescriptor
	ordered   []string // version ids in commit order
	maxNumber uint64
	branches  map[string]model.BranchDescriptor
	children  map[string][]string            // reverse adjacency: parent id -> child ids
	tags      map[string]map[string]struct{} // tag -> version ids
	dropped   bool                           // unregistered after a failed first commit
}

func newDataset() *dataset {
	return &dataset{
		versions: make(map[string]model.VersionDescriptor),
		branches: make(map[string]model.BranchDescriptor),
		children: make(map[string][]string),
		tags:     make(map[string]map[string]struct{}),
	}
}

// New builds an engine with some options.
//
// Without options, the engine runs fully in memory with no logging and
// strict branch semantics (no implicit branch creation).
func New(opts ...EngineOption) *Engine {
	e := &Engine{
		backend:  mem.New(),
		l:        zap.NewNop(),
		clock:    model.GetTimeStamp,
		datasets: make(map[string]*dataset),
	}
	for _, apply := range opts {
		apply(e)
	}
	return e
}

// Backend reports the storage store payloads are persisted to.
func (e *Engine) Backend() storage.Store {
	return e.backend
}

// ListDatasets returns the ids of all known datasets, sorted.
func (e *Engine) ListDatasets() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ids := make([]string, 0, len(e.datasets))
	for id := range e.datasets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// getDataset returns the arena for a dataset when it exists.
func (e *Engine) getDataset(datasetID string) (*dataset, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ds, ok := e.datasets[datasetID]
	return ds, ok
}

// getOrCreateDataset returns the arena for a dataset, materializing it
// on first use.
func (e *Engine) getOrCreateDataset(datasetID string) *dataset {
	e.mu.Lock()
	defer e.mu.Unlock()
	ds, ok := e.datasets[datasetID]
	if !ok {
		ds = newDataset()
		e.datasets[datasetID] = ds
	}
	return ds
}

// releaseEmptyDataset unregisters an arena that a failed commit left
// without any version or branch, so the dataset never becomes visible.
// The arena is marked dropped: a concurrent commit that still holds a
// reference to it re-acquires a live arena instead of writing into an
// orphan.
func (e *Engine) releaseEmptyDataset(datasetID string, ds *dataset) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.datasets[datasetID] != ds {
		return
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if len(ds.versions) == 0 && len(ds.branches) == 0 {
		ds.dropped = true
		delete(e.datasets, datasetID)
	}
}
