// Copyright © 2026 One Concern

package core

import (
	"fmt"
	"sort"

	"github.com/oneconcern/dataver/pkg/core/status"
	"github.com/oneconcern/dataver/pkg/model"
)

// TagVersion labels a version with a free-text tag. One tag may label
// many versions and one version may carry many tags; tagging twice is a
// no-op.
func (e *Engine) TagVersion(datasetID, versionID, tag string) error {
	if tag == "" {
		return fmt.Errorf("%w: empty tag", status.ErrValidation)
	}
	ds, ok := e.getDataset(datasetID)
	if !ok {
		return fmt.Errorf("dataset %q: %w", datasetID, status.ErrDatasetNotFound)
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()

	v, ok := ds.versions[versionID]
	if !ok {
		return fmt.Errorf("version %q: %w", versionID, status.ErrVersionNotFound)
	}
	if !v.HasTag(tag) {
		v.Tags = append(v.Tags, tag)
		sort.Strings(v.Tags)
		ds.versions[versionID] = v
	}
	ds.indexTag(tag, versionID)
	return nil
}

// RemoveTag removes a tag from a version. Removing an absent tag is a
// no-op.
func (e *Engine) RemoveTag(datasetID, versionID, tag string) error {
	ds, ok := e.getDataset(datasetID)
	if !ok {
		return fmt.Errorf("dataset %q: %w", datasetID, status.ErrDatasetNotFound)
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()

	v, ok := ds.versions[versionID]
	if !ok {
		return fmt.Errorf("version %q: %w", versionID, status.ErrVersionNotFound)
	}
	if v.HasTag(tag) {
		tags := make([]string, 0, len(v.Tags)-1)
		for _, t := range v.Tags {
			if t != tag {
				tags = append(tags, t)
			}
		}
		v.Tags = tags
		ds.versions[versionID] = v
	}
	if ids, ok := ds.tags[tag]; ok {
		delete(ids, versionID)
		if len(ids) == 0 {
			delete(ds.tags, tag)
		}
	}
	return nil
}

// FindVersionsByTag returns all versions carrying a tag, newest-first.
func (e *Engine) FindVersionsByTag(datasetID, tag string) ([]model.VersionDescriptor, error) {
	ds, ok := e.getDataset(datasetID)
	if !ok {
		return nil, fmt.Errorf("dataset %q: %w", datasetID, status.ErrDatasetNotFound)
	}
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	versions := make([]model.VersionDescriptor, 0, len(ds.tags[tag]))
	for id := range ds.tags[tag] {
		versions = append(versions, ds.versions[id].Clone())
	}
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].VersionNumber > versions[j].VersionNumber
	})
	return versions, nil
}

// indexTag records a tag membership. Callers hold the dataset write lock.
func (ds *dataset) indexTag(tag, versionID string) {
	ids, ok := ds.tags[tag]
	if !ok {
		ids = make(map[string]struct{}, 1)
		ds.tags[tag] = ids
	}
	ids[versionID] = struct{}{}
}
