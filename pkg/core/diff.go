// Copyright © 2026 One Concern

package core

import (
	"bytes"
	"context"
	"fmt"

	"github.com/oneconcern/dataver/pkg/model"
	"go.uber.org/zap"
)

// keyedRecord pairs a record with its canonical serialization, so the
// modification check does not re-serialize.
type keyedRecord struct {
	record    model.Record
	canonical []byte
}

// Diff computes the structured comparison of two versions' payloads,
// matching records by identity key.
//
// A record's key is its "id" field when present, else a content hash of
// the record. Records present only in "to" are added, only in "from"
// removed; records present in both whose canonical content differs are
// modified, with both old and new states captured. A missing payload on
// either side fails with a not-found error rather than being treated as
// an empty snapshot.
func (e *Engine) Diff(ctx context.Context, datasetID, fromID, toID string) (model.VersionDiff, error) {
	var none model.VersionDiff

	fromRecords, err := e.GetVersionData(ctx, datasetID, fromID)
	if err != nil {
		return none, err
	}
	toRecords, err := e.GetVersionData(ctx, datasetID, toID)
	if err != nil {
		return none, err
	}

	fromIndex, err := indexByKey(fromRecords)
	if err != nil {
		return none, fmt.Errorf("indexing records of %q: %w", fromID, err)
	}
	toIndex, err := indexByKey(toRecords)
	if err != nil {
		return none, fmt.Errorf("indexing records of %q: %w", toID, err)
	}

	diff := model.VersionDiff{
		FromVersionID:   fromID,
		ToVersionID:     toID,
		AddedRecords:    []model.Record{},
		RemovedRecords:  []model.Record{},
		ModifiedRecords: []model.RecordPair{},
	}

	// walk "to" in payload order for added and modified
	for _, key := range keysInOrder(toRecords) {
		after := toIndex[key]
		before, inFrom := fromIndex[key]
		if !inFrom {
			diff.AddedRecords = append(diff.AddedRecords, after.record)
			continue
		}
		if !bytes.Equal(before.canonical, after.canonical) {
			diff.ModifiedRecords = append(diff.ModifiedRecords, model.RecordPair{
				Old: before.record,
				New: after.record,
			})
		}
	}
	// walk "from" in payload order for removed
	for _, key := range keysInOrder(fromRecords) {
		if _, inTo := toIndex[key]; !inTo {
			diff.RemovedRecords = append(diff.RemovedRecords, fromIndex[key].record)
		}
	}

	diff.SchemaChanges = schemaChanges(fromRecords, toRecords)
	diff.Summary = model.DiffSummary{
		AddedCount:    len(diff.AddedRecords),
		RemovedCount:  len(diff.RemovedRecords),
		ModifiedCount: len(diff.ModifiedRecords),
		FieldsAdded:   len(diff.SchemaChanges.AddedFields),
		FieldsRemoved: len(diff.SchemaChanges.RemovedFields),
	}

	e.l.Debug("generated diff",
		zap.String("dataset", datasetID),
		zap.String("from", fromID),
		zap.String("to", toID),
		zap.Int("added", diff.Summary.AddedCount),
		zap.Int("removed", diff.Summary.RemovedCount),
		zap.Int("modified", diff.Summary.ModifiedCount),
	)
	return diff, nil
}

func indexByKey(records []model.Record) (map[string]keyedRecord, error) {
	index := make(map[string]keyedRecord, len(records))
	for _, r := range records {
		key, err := r.Key()
		if err != nil {
			return nil, err
		}
		canonical, err := r.CanonicalBytes()
		if err != nil {
			return nil, err
		}
		index[key] = keyedRecord{record: r, canonical: canonical}
	}
	return index, nil
}

func keysInOrder(records []model.Record) []string {
	keys := make([]string, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		key, err := r.Key()
		if err != nil {
			continue // already surfaced by indexByKey
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

func schemaChanges(from, to []model.Record) model.SchemaChanges {
	fromFields := model.PayloadFieldNames(from)
	toFields := model.PayloadFieldNames(to)

	fromSet := make(map[string]struct{}, len(fromFields))
	for _, f := range fromFields {
		fromSet[f] = struct{}{}
	}
	toSet := make(map[string]struct{}, len(toFields))
	for _, f := range toFields {
		toSet[f] = struct{}{}
	}

	changes := model.SchemaChanges{
		AddedFields:   []string{},
		RemovedFields: []string{},
		CommonFields:  []string{},
	}
	for _, f := range toFields {
		if _, ok := fromSet[f]; ok {
			changes.CommonFields = append(changes.CommonFields, f)
		} else {
			changes.AddedFields = append(changes.AddedFields, f)
		}
	}
	for _, f := range fromFields {
		if _, ok := toSet[f]; !ok {
			changes.RemovedFields = append(changes.RemovedFields, f)
		}
	}
	return changes
}
