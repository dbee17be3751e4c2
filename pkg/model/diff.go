// Copyright © 2026 One Concern

package model

// RecordPair captures the old and new state of a record modified
// between two versions.
type RecordPair struct {
	Old Record `json:"old" yaml:"old"`
	New Record `json:"new" yaml:"new"`
	_   struct{}
}

// SchemaChanges describes the field-name set differences between two
// versions' payloads.
type SchemaChanges struct {
	AddedFields   []string `json:"addedFields" yaml:"addedFields"`
	RemovedFields []string `json:"removedFields" yaml:"removedFields"`
	CommonFields  []string `json:"commonFields" yaml:"commonFields"`
	_             struct{}
}

// DiffSummary aggregates counts for each diff category.
type DiffSummary struct {
	AddedCount    int `json:"added" yaml:"added"`
	RemovedCount  int `json:"removed" yaml:"removed"`
	ModifiedCount int `json:"modified" yaml:"modified"`
	FieldsAdded   int `json:"fieldsAdded" yaml:"fieldsAdded"`
	FieldsRemoved int `json:"fieldsRemoved" yaml:"fieldsRemoved"`
	_             struct{}
}

// VersionDiff is the structured comparison of two versions' records by
// identity key. It is derived, never persisted.
type VersionDiff struct {
	FromVersionID   string        `json:"fromVersionID" yaml:"fromVersionID"`
	ToVersionID     string        `json:"toVersionID" yaml:"toVersionID"`
	AddedRecords    []Record      `json:"addedRecords" yaml:"addedRecords"`
	RemovedRecords  []Record      `json:"removedRecords" yaml:"removedRecords"`
	ModifiedRecords []RecordPair  `json:"modifiedRecords" yaml:"modifiedRecords"`
	SchemaChanges   SchemaChanges `json:"schemaChanges" yaml:"schemaChanges"`
	Summary         DiffSummary   `json:"summary" yaml:"summary"`
	_               struct{}
}
