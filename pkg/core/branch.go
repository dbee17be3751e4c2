// Copyright © 2026 One Concern

package core

import (
	"fmt"
	"sort"

	"github.com/oneconcern/dataver/pkg/core/status"
	"github.com/oneconcern/dataver/pkg/model"
	"go.uber.org/zap"
)

// branchParams collects branch creation settings.
type branchParams struct {
	baseVersionID string
	contributor   model.Contributor
	description   string
}

// BranchOption is a functor to configure branch creation
type BranchOption func(*branchParams)

// BranchBase sets the version the new branch points at. When unset, the
// branch starts at the current head of "main".
func BranchBase(versionID string) BranchOption {
	return func(b *branchParams) {
		b.baseVersionID = versionID
	}
}

// BranchCreator sets the creator of the new branch
func BranchCreator(c model.Contributor) BranchOption {
	return func(b *branchParams) {
		b.contributor = c
	}
}

// BranchDescription sets a free-text description on the new branch
func BranchDescription(desc string) BranchOption {
	return func(b *branchParams) {
		b.description = desc
	}
}

// CreateBranch registers a new named pointer to an existing version.
func (e *Engine) CreateBranch(datasetID, name string, opts ...BranchOption) (model.BranchDescriptor, error) {
	var none model.BranchDescriptor

	var params branchParams
	for _, apply := range opts {
		apply(&params)
	}

	if err := model.ValidateBranchName(name); err != nil {
		return none, fmt.Errorf("%w: %v", status.ErrValidation, err)
	}
	ds, ok := e.getDataset(datasetID)
	if !ok {
		return none, fmt.Errorf("dataset %q: %w", datasetID, status.ErrDatasetNotFound)
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()

	if _, exists := ds.branches[name]; exists {
		return none, fmt.Errorf("branch %q: %w", name, status.ErrBranchExists)
	}

	baseID := params.baseVersionID
	if baseID == "" {
		main, ok := ds.branches[model.MainBranch]
		if !ok || main.HeadVersionID == "" {
			return none, fmt.Errorf("no base version resolvable for branch %q: %w", name, status.ErrNotFound)
		}
		baseID = main.HeadVersionID
	}
	if _, ok := ds.versions[baseID]; !ok {
		return none, fmt.Errorf("base version %q: %w", baseID, status.ErrVersionNotFound)
	}

	branch := *model.NewBranchDescriptor(name,
		model.BranchHead(baseID),
		model.BranchContributor(params.contributor),
		model.BranchDescription(params.description),
		model.BranchTime(e.clock()),
	)
	ds.branches[name] = branch

	e.l.Info("created branch",
		zap.String("dataset", datasetID),
		zap.String("branch", name),
		zap.String("base", baseID),
	)
	return branch, nil
}

// DeleteBranch removes a branch registration. Versions referenced by the
// branch remain in the graph; "main" is protected and cannot be deleted.
func (e *Engine) DeleteBranch(datasetID, name string) error {
	if name == model.MainBranch {
		return status.ErrMainProtected
	}
	ds, ok := e.getDataset(datasetID)
	if !ok {
		return fmt.Errorf("dataset %q: %w", datasetID, status.ErrDatasetNotFound)
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if _, exists := ds.branches[name]; !exists {
		return fmt.Errorf("branch %q: %w", name, status.ErrBranchNotFound)
	}
	delete(ds.branches, name)

	e.l.Info("deleted branch",
		zap.String("dataset", datasetID),
		zap.String("branch", name),
	)
	return nil
}

// GetBranch retrieves a branch by name.
func (e *Engine) GetBranch(datasetID, name string) (model.BranchDescriptor, error) {
	var none model.BranchDescriptor
	ds, ok := e.getDataset(datasetID)
	if !ok {
		return none, fmt.Errorf("dataset %q: %w", datasetID, status.ErrDatasetNotFound)
	}
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	branch, exists := ds.branches[name]
	if !exists {
		return none, fmt.Errorf("branch %q: %w", name, status.ErrBranchNotFound)
	}
	return branch, nil
}

// ListBranches returns all branches of a dataset, sorted by name.
func (e *Engine) ListBranches(datasetID string) ([]model.BranchDescriptor, error) {
	ds, ok := e.getDataset(datasetID)
	if !ok {
		return nil, fmt.Errorf("dataset %q: %w", datasetID, status.ErrDatasetNotFound)
	}
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	branches := make([]model.BranchDescriptor, 0, len(ds.branches))
	for _, b := range ds.branches {
		branches = append(branches, b)
	}
	sort.Slice(branches, func(i, j int) bool {
		return branches[i].Name < branches[j].Name
	})
	return branches, nil
}
