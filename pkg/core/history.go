// Copyright © 2026 One Concern

package core

import (
	"fmt"
	"sort"

	"github.com/oneconcern/dataver/pkg/core/status"
	"github.com/oneconcern/dataver/pkg/model"
)

// GetVersionHistory walks the ancestor chain of a version, newest to
// oldest, starting at the version itself.
//
// A maxDepth of zero or less leaves the walk unbounded; otherwise at
// most maxDepth versions are returned even when the chain is longer.
func (e *Engine) GetVersionHistory(datasetID, versionID string, maxDepth int) ([]model.VersionDescriptor, error) {
	ds, ok := e.getDataset(datasetID)
	if !ok {
		return nil, fmt.Errorf("dataset %q: %w", datasetID, status.ErrDatasetNotFound)
	}
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	v, ok := ds.versions[versionID]
	if !ok {
		return nil, fmt.Errorf("version %q: %w", versionID, status.ErrVersionNotFound)
	}

	history := make([]model.VersionDescriptor, 0, 8)
	for {
		history = append(history, v.Clone())
		if maxDepth > 0 && len(history) == maxDepth {
			break
		}
		if v.ParentID == "" {
			break
		}
		parent, ok := ds.versions[v.ParentID]
		if !ok {
			// a dangling parent pointer would be a graph corruption
			return nil, fmt.Errorf("parent %q of %q: %w", v.ParentID, v.ID, status.ErrVersionNotFound)
		}
		v = parent
	}
	return history, nil
}

// GetChildrenVersions returns the direct descendants of a version, in
// ascending version-number order.
//
// The reverse adjacency index is maintained incrementally at commit
// time, so this is proportional to the number of children, not to the
// size of the graph.
func (e *Engine) GetChildrenVersions(datasetID, versionID string) ([]model.VersionDescriptor, error) {
	ds, ok := e.getDataset(datasetID)
	if !ok {
		return nil, fmt.Errorf("dataset %q: %w", datasetID, status.ErrDatasetNotFound)
	}
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	if _, ok := ds.versions[versionID]; !ok {
		return nil, fmt.Errorf("version %q: %w", versionID, status.ErrVersionNotFound)
	}
	childIDs := ds.children[versionID]
	children := make([]model.VersionDescriptor, 0, len(childIDs))
	for _, id := range childIDs {
		children = append(children, ds.versions[id].Clone())
	}
	sort.Slice(children, func(i, j int) bool {
		return children[i].VersionNumber < children[j].VersionNumber
	})
	return children, nil
}
