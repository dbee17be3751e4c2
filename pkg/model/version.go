// Copyright © 2026 One Concern

package model

import (
	"time"
)

// MainBranch is the branch every dataset is born with. It always exists
// and cannot be deleted.
const MainBranch = "main"

// TagRollback marks versions created by a rollback.
const TagRollback = "rollback"

// VersionDescriptor represents an immutable snapshot of a dataset's
// records plus its commit metadata.
//
// Version numbers are strictly increasing per dataset across all
// branches. The parent pointer, when set, names another version of the
// same dataset.
type VersionDescriptor struct {
	ID            string            `json:"id" yaml:"id"`
	DatasetID     string            `json:"datasetID" yaml:"datasetID"`
	VersionNumber uint64            `json:"versionNumber" yaml:"versionNumber"`
	ParentID      string            `json:"parentID,omitempty" yaml:"parentID,omitempty"`
	BranchName    string            `json:"branch" yaml:"branch"`
	Contributor   Contributor       `json:"contributor" yaml:"contributor"`
	Message       string            `json:"message,omitempty" yaml:"message,omitempty"`
	Timestamp     time.Time         `json:"timestamp" yaml:"timestamp"`
	ContentHash   string            `json:"contentHash" yaml:"contentHash"`
	Metadata      map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Tags          []string          `json:"tags,omitempty" yaml:"tags,omitempty"`
	SizeBytes     uint64            `json:"sizeBytes" yaml:"sizeBytes"`
	RecordCount   uint64            `json:"recordCount" yaml:"recordCount"`
	_             struct{}
}

// NewVersionDescriptor builds a new version descriptor with some options
func NewVersionDescriptor(opts ...VersionDescriptorOption) *VersionDescriptor {
	v := &VersionDescriptor{
		BranchName: MainBranch,
		Timestamp:  GetTimeStamp(),
	}
	for _, apply := range opts {
		apply(v)
	}
	return v
}

// Clone returns a copy of the descriptor sharing no mutable state with
// the receiver: the metadata map and tag slice are duplicated, so
// writes to the clone never reach the original.
func (v VersionDescriptor) Clone() VersionDescriptor {
	if v.Metadata != nil {
		meta := make(map[string]string, len(v.Metadata))
		for k, val := range v.Metadata {
			meta[k] = val
		}
		v.Metadata = meta
	}
	if v.Tags != nil {
		v.Tags = append(make([]string, 0, len(v.Tags)), v.Tags...)
	}
	return v
}

// HasTag tells whether the version carries a given tag
func (v *VersionDescriptor) HasTag(tag string) bool {
	for _, t := range v.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// GetTimeStamp returns the current UTC time, as recorded on descriptors
func GetTimeStamp() time.Time {
	return time.Now().UTC()
}
