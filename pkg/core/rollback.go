// Copyright © 2026 One Concern

package core

import (
	"context"
	"fmt"

	"github.com/oneconcern/dataver/pkg/core/status"
	"github.com/oneconcern/dataver/pkg/model"
	"go.uber.org/zap"
)

// MetaRollbackOf is the metadata key recording which version a rollback
// duplicated.
const MetaRollbackOf = "rollback_of"

// Rollback creates a new version on a branch whose payload duplicates a
// target version's payload.
//
// History is preserved: the new version's parent is the branch's current
// head at rollback time, not the target version, and no prior version is
// rewritten or removed. The new version is tagged "rollback".
func (e *Engine) Rollback(ctx context.Context, datasetID, versionID, branchName string, opts ...CommitOption) (model.VersionDescriptor, error) {
	var none model.VersionDescriptor

	target, err := e.GetVersion(datasetID, versionID)
	if err != nil {
		return none, err
	}
	if branchName == "" {
		branchName = model.MainBranch
	}
	// the branch must exist beforehand: a rollback never creates branches,
	// whatever the engine's auto-create setting
	if _, err = e.GetBranch(datasetID, branchName); err != nil {
		return none, err
	}
	records, err := e.GetVersionData(ctx, datasetID, versionID)
	if err != nil {
		return none, err
	}

	commit := commitParams{branch: branchName}
	for _, apply := range opts {
		apply(&commit)
	}
	if commit.message == "" {
		commit.message = fmt.Sprintf("Rollback to version %d", target.VersionNumber)
	}
	if commit.parentID != "" {
		return none, fmt.Errorf("%w: a rollback derives its parent from the branch head", status.ErrValidation)
	}
	metadata := copyMetadata(commit.metadata)
	if metadata == nil {
		metadata = make(map[string]string, 1)
	}
	metadata[MetaRollbackOf] = target.ID

	v, err := e.CreateVersion(ctx, datasetID, records,
		Message(commit.message),
		CommitContributor(commit.contributor),
		Branch(branchName),
		CommitMetadata(metadata),
		CommitTags(append(commit.tags, model.TagRollback)...),
	)
	if err != nil {
		return none, err
	}

	e.l.Info("rolled back",
		zap.String("dataset", datasetID),
		zap.String("branch", branchName),
		zap.String("target", target.ID),
		zap.String("version", v.ID),
	)
	return v, nil
}
