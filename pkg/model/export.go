// Copyright © 2026 One Concern

package model

import (
	"time"
)

// VersionExport is the serializable form of a version descriptor, as
// exchanged with external consumers (e.g. a REST layer mapping HTTP
// verbs to engine operations). Field names are part of the wire
// contract and must not change.
type VersionExport struct {
	ID              string            `json:"id" yaml:"id"`
	DatasetID       string            `json:"dataset_id" yaml:"dataset_id"`
	VersionNumber   uint64            `json:"version_number" yaml:"version_number"`
	ParentVersionID string            `json:"parent_version_id,omitempty" yaml:"parent_version_id,omitempty"`
	BranchName      string            `json:"branch_name" yaml:"branch_name"`
	Author          string            `json:"author" yaml:"author"`
	Message         string            `json:"message" yaml:"message"`
	Timestamp       time.Time         `json:"timestamp" yaml:"timestamp"`
	ContentHash     string            `json:"content_hash" yaml:"content_hash"`
	Metadata        map[string]string `json:"metadata" yaml:"metadata"`
	Tags            []string          `json:"tags" yaml:"tags"`
	SizeBytes       uint64            `json:"size_bytes" yaml:"size_bytes"`
	RecordCount     uint64            `json:"record_count" yaml:"record_count"`
	_               struct{}
}

// BranchExport is the serializable form of a branch descriptor.
type BranchExport struct {
	Name          string    `json:"name" yaml:"name"`
	HeadVersionID string    `json:"head_version_id" yaml:"head_version_id"`
	CreatedAt     time.Time `json:"created_at" yaml:"created_at"`
	CreatedBy     string    `json:"created_by" yaml:"created_by"`
	Description   string    `json:"description,omitempty" yaml:"description,omitempty"`
	_             struct{}
}

// DatasetExport groups the exported versions and branches of one dataset.
type DatasetExport struct {
	DatasetID string          `json:"dataset_id" yaml:"dataset_id"`
	Versions  []VersionExport `json:"versions" yaml:"versions"`
	Branches  []BranchExport  `json:"branches" yaml:"branches"`
	_         struct{}
}

// ExportGraph is the full serializable metadata graph of the engine,
// used for backup and migration.
type ExportGraph struct {
	Datasets []DatasetExport `json:"datasets" yaml:"datasets"`
	_        struct{}
}

// Export converts a version descriptor to its wire form.
func (v *VersionDescriptor) Export() VersionExport {
	return VersionExport{
		ID:              v.ID,
		DatasetID:       v.DatasetID,
		VersionNumber:   v.VersionNumber,
		ParentVersionID: v.ParentID,
		BranchName:      v.BranchName,
		Author:          v.Contributor.String(),
		Message:         v.Message,
		Timestamp:       v.Timestamp,
		ContentHash:     v.ContentHash,
		Metadata:        v.Metadata,
		Tags:            v.Tags,
		SizeBytes:       v.SizeBytes,
		RecordCount:     v.RecordCount,
	}
}

// Import converts a wire-form version back into a descriptor.
func (e *VersionExport) Import() VersionDescriptor {
	return VersionDescriptor{
		ID:            e.ID,
		DatasetID:     e.DatasetID,
		VersionNumber: e.VersionNumber,
		ParentID:      e.ParentVersionID,
		BranchName:    e.BranchName,
		Contributor:   ParseContributor(e.Author),
		Message:       e.Message,
		Timestamp:     e.Timestamp,
		ContentHash:   e.ContentHash,
		Metadata:      e.Metadata,
		Tags:          e.Tags,
		SizeBytes:     e.SizeBytes,
		RecordCount:   e.RecordCount,
	}
}

// Export converts a branch descriptor to its wire form.
func (b *BranchDescriptor) Export() BranchExport {
	return BranchExport{
		Name:          b.Name,
		HeadVersionID: b.HeadVersionID,
		CreatedAt:     b.Timestamp,
		CreatedBy:     b.Contributor.String(),
		Description:   b.Description,
	}
}

// Import converts a wire-form branch back into a descriptor.
func (e *BranchExport) Import() BranchDescriptor {
	return BranchDescriptor{
		Name:          e.Name,
		HeadVersionID: e.HeadVersionID,
		Timestamp:     e.CreatedAt,
		Contributor:   ParseContributor(e.CreatedBy),
		Description:   e.Description,
	}
}
