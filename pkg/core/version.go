// Copyright © 2026 One Concern

package core

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/oneconcern/dataver/pkg/core/status"
	"github.com/oneconcern/dataver/pkg/errors"
	"github.com/oneconcern/dataver/pkg/model"
	"github.com/oneconcern/dataver/pkg/storage"
	"go.uber.org/zap"
)

// errArenaDropped makes a commit retry against a freshly registered
// arena when releaseEmptyDataset unregistered the one it held.
var errArenaDropped = errors.New("dataset arena dropped")

// CreateVersion commits a new immutable version of a dataset.
//
// The record payload is persisted on the storage backend first, then the
// metadata graph is updated in a single critical section: version-number
// allocation, branch-head advancement and history-index maintenance are
// never observably separated. The new version's number is exactly one
// greater than the dataset's current maximum, across all branches.
//
// When no parent is given, the parent defaults to the current head of
// the target branch. Committing on an unknown branch fails unless the
// engine was built WithAutoCreateBranch, with one exception: the first
// version of a dataset bootstraps "main", which always exists.
func (e *Engine) CreateVersion(ctx context.Context, datasetID string, records []model.Record, opts ...CommitOption) (model.VersionDescriptor, error) {
	var none model.VersionDescriptor

	commit := commitParams{branch: model.MainBranch}
	for _, apply := range opts {
		apply(&commit)
	}

	if err := model.ValidateDatasetID(datasetID); err != nil {
		return none, fmt.Errorf("%w: %v", status.ErrValidation, err)
	}
	if err := model.ValidateBranchName(commit.branch); err != nil {
		return none, fmt.Errorf("%w: %v", status.ErrValidation, err)
	}
	if len(records) == 0 {
		return none, status.ErrEmptyPayload
	}

	contentHash, err := model.PayloadHash(records)
	if err != nil {
		return none, fmt.Errorf("%w: hashing payload: %v", status.ErrValidation, err)
	}
	payload, err := model.MarshalRecords(records)
	if err != nil {
		return none, fmt.Errorf("%w: serializing payload: %v", status.ErrValidation, err)
	}

	id := model.NewVersionID()
	archivePath := model.GetArchivePathToVersionRecords(datasetID, id)

	// the payload is durably written before any metadata becomes visible
	if err = e.backend.Put(ctx, archivePath, bytes.NewReader(payload), storage.NoOverWrite); err != nil {
		return none, fmt.Errorf("persisting payload for %q: %w", id, err)
	}

	var v model.VersionDescriptor
	for {
		ds := e.getOrCreateDataset(datasetID)
		v, err = ds.commit(id, datasetID, uint64(len(payload)), uint64(len(records)), contentHash, commit, e.autoCreateBranch, e.clock())
		if err == errArenaDropped {
			// the arena was unregistered between lookup and lock
			continue
		}
		if err != nil {
			// a failed first commit must not leave an empty dataset behind,
			// and the orphaned payload is unreachable
			e.releaseEmptyDataset(datasetID, ds)
			_ = e.backend.Delete(ctx, archivePath)
			return none, err
		}
		break
	}

	e.l.Info("created version",
		zap.String("dataset", datasetID),
		zap.String("version", v.ID),
		zap.Uint64("number", v.VersionNumber),
		zap.String("branch", v.BranchName),
		zap.String("content_hash", v.ContentHash),
	)
	return v, nil
}

// commit performs the atomic metadata transaction of CreateVersion.
func (ds *dataset) commit(id, datasetID string, sizeBytes, recordCount uint64, contentHash string, commit commitParams, autoCreateBranch bool, now time.Time) (model.VersionDescriptor, error) {
	var none model.VersionDescriptor

	ds.mu.Lock()
	defer ds.mu.Unlock()

	if ds.dropped {
		return none, errArenaDropped
	}

	branch, branchExists := ds.branches[commit.branch]
	if !branchExists {
		bootstrapMain := commit.branch == model.MainBranch && len(ds.versions) == 0
		if !bootstrapMain && !autoCreateBranch {
			return none, fmt.Errorf("branch %q: %w", commit.branch, status.ErrBranchNotFound)
		}
	}

	parentID := commit.parentID
	if parentID == "" && branchExists {
		parentID = branch.HeadVersionID
	}
	if parentID != "" {
		if _, ok := ds.versions[parentID]; !ok {
			return none, fmt.Errorf("parent %q: %w", parentID, status.ErrParentNotFound)
		}
	}

	v := *model.NewVersionDescriptor(
		model.VersionID(id),
		model.Dataset(datasetID),
		model.Number(ds.maxNumber+1),
		model.Parent(parentID),
		model.Branch(commit.branch),
		model.VersionContributor(commit.contributor),
		model.Message(commit.message),
		model.VersionTime(now),
		model.ContentHash(contentHash),
		model.Metadata(copyMetadata(commit.metadata)),
		model.Tags(dedupeTags(commit.tags)...),
		model.Payload(sizeBytes, recordCount),
	)

	ds.versions[id] = v
	ds.ordered = append(ds.ordered, id)
	ds.maxNumber = v.VersionNumber

	if branchExists {
		branch.HeadVersionID = id
		ds.branches[commit.branch] = branch
	} else {
		ds.branches[commit.branch] = *model.NewBranchDescriptor(commit.branch,
			model.BranchHead(id),
			model.BranchContributor(commit.contributor),
			model.BranchTime(now),
		)
	}

	if parentID != "" {
		ds.children[parentID] = append(ds.children[parentID], id)
	}
	for _, tag := range v.Tags {
		ds.indexTag(tag, id)
	}
	return v.Clone(), nil
}

// GetVersion retrieves a version's metadata by id.
func (e *Engine) GetVersion(datasetID, versionID string) (model.VersionDescriptor, error) {
	var none model.VersionDescriptor
	ds, ok := e.getDataset(datasetID)
	if !ok {
		return none, fmt.Errorf("dataset %q: %w", datasetID, status.ErrDatasetNotFound)
	}
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	v, ok := ds.versions[versionID]
	if !ok {
		return none, fmt.Errorf("version %q: %w", versionID, status.ErrVersionNotFound)
	}
	return v.Clone(), nil
}

// ListVersions returns a dataset's versions sorted newest-first,
// optionally restricted to one branch and capped in size.
func (e *Engine) ListVersions(datasetID string, opts ...ListOption) ([]model.VersionDescriptor, error) {
	var listing listParams
	for _, apply := range opts {
		apply(&listing)
	}
	ds, ok := e.getDataset(datasetID)
	if !ok {
		return nil, fmt.Errorf("dataset %q: %w", datasetID, status.ErrDatasetNotFound)
	}
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	versions := make([]model.VersionDescriptor, 0, len(ds.ordered))
	for i := len(ds.ordered) - 1; i >= 0; i-- {
		v := ds.versions[ds.ordered[i]]
		if listing.branch != "" && v.BranchName != listing.branch {
			continue
		}
		versions = append(versions, v.Clone())
		if listing.limit > 0 && len(versions) == listing.limit {
			break
		}
	}
	return versions, nil
}

// GetVersionData loads a version's record payload from the storage
// backend. A missing payload is reported as not found, never as an empty
// record set.
func (e *Engine) GetVersionData(ctx context.Context, datasetID, versionID string) ([]model.Record, error) {
	if _, err := e.GetVersion(datasetID, versionID); err != nil {
		return nil, err
	}
	archivePath := model.GetArchivePathToVersionRecords(datasetID, versionID)
	has, err := e.backend.Has(ctx, archivePath)
	if err != nil {
		return nil, fmt.Errorf("polling payload for %q: %w", versionID, err)
	}
	if !has {
		return nil, fmt.Errorf("version %q: %w", versionID, status.ErrPayloadNotFound)
	}
	rdr, err := e.backend.Get(ctx, archivePath)
	if err != nil {
		return nil, fmt.Errorf("reading payload for %q: %w", versionID, err)
	}
	b, err := storage.ReadAll(rdr)
	if err != nil {
		return nil, fmt.Errorf("reading payload for %q: %w", versionID, err)
	}
	records, err := model.UnmarshalRecords(b)
	if err != nil {
		return nil, fmt.Errorf("decoding payload for %q: %w", versionID, err)
	}
	return records, nil
}

func copyMetadata(meta map[string]string) map[string]string {
	if meta == nil {
		return nil
	}
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}

func dedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
