// Copyright © 2026 One Concern

package core

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/oneconcern/dataver/pkg/core/status"
	"github.com/oneconcern/dataver/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	e := New()
	ctx := context.Background()

	v1, err := e.CreateVersion(ctx, testDataset, testRecords(1),
		CommitContributor(testContributor()),
		Message("first"),
		CommitTags("baseline"),
	)
	require.NoError(t, err)
	v2, err := e.CreateVersion(ctx, testDataset, testRecords(2), Message("second"))
	require.NoError(t, err)
	_, err = e.CreateBranch(testDataset, "exp", BranchBase(v1.ID))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, e.Export(&buf))
	assert.Contains(t, buf.String(), `"dataset_id"`)
	assert.Contains(t, buf.String(), `"head_version_id"`)

	// rebuild a fresh engine on the same backend
	restored := New(Backend(e.Backend()))
	require.NoError(t, restored.Import(strings.NewReader(buf.String())))

	got, err := restored.GetVersion(testDataset, v1.ID)
	require.NoError(t, err)
	assert.Equal(t, v1.ContentHash, got.ContentHash)
	assert.Equal(t, []string{"baseline"}, got.Tags)

	// derived indexes are rebuilt: numbering continues after the max
	v3, err := restored.CreateVersion(ctx, testDataset, testRecords(3))
	require.NoError(t, err)
	assert.Equal(t, uint64(3), v3.VersionNumber)
	assert.Equal(t, v2.ID, v3.ParentID)

	// adjacency is rebuilt
	children, err := restored.GetChildrenVersions(testDataset, v1.ID)
	require.NoError(t, err)
	assert.Len(t, children, 1)

	// tags are rebuilt
	byTag, err := restored.FindVersionsByTag(testDataset, "baseline")
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, v1.ID, byTag[0].ID)

	// branches survive
	branch, err := restored.GetBranch(testDataset, "exp")
	require.NoError(t, err)
	assert.Equal(t, v1.ID, branch.HeadVersionID)

	// payloads are still reachable through the shared backend
	records, err := restored.GetVersionData(ctx, testDataset, v1.ID)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestExportDeterministic(t *testing.T) {
	e := New()
	ctx := context.Background()
	_, err := e.CreateVersion(ctx, testDataset, testRecords(1))
	require.NoError(t, err)
	_, err = e.CreateVersion(ctx, "another-dataset", testRecords(1))
	require.NoError(t, err)

	var b1, b2 bytes.Buffer
	require.NoError(t, e.Export(&b1))
	require.NoError(t, e.Export(&b2))
	assert.Equal(t, b1.String(), b2.String())
}

func TestImportRejectsCorruptGraphs(t *testing.T) {
	e := New()

	err := e.Import(strings.NewReader("not json"))
	assert.True(t, errors.Is(err, status.ErrValidation))

	// dangling parent
	err = e.Import(strings.NewReader(`{"datasets":[{"dataset_id":"d","versions":[
		{"id":"v2","dataset_id":"d","version_number":2,"parent_version_id":"v1","branch_name":"main",
		 "author":"x","message":"","timestamp":"2026-01-01T00:00:00Z","content_hash":"ff",
		 "metadata":null,"tags":null,"size_bytes":1,"record_count":1}
	],"branches":[]}]}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrValidation))

	// dangling branch head
	err = e.Import(strings.NewReader(`{"datasets":[{"dataset_id":"d","versions":[],
		"branches":[{"name":"main","head_version_id":"nope","created_at":"2026-01-01T00:00:00Z","created_by":"x"}]}]}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrValidation))
}
