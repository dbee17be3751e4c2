// Copyright © 2026 One Concern

package core

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/oneconcern/dataver/pkg/core/status"
	"github.com/oneconcern/dataver/pkg/errors"
	"github.com/oneconcern/dataver/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const testDataset = "myDataset"

func testContributor() model.Contributor {
	return model.Contributor{Name: "tester", Email: "tester@example.com"}
}

func testRecords(n int) []model.Record {
	records := make([]model.Record, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, model.Record{"id": i, "name": fmt.Sprintf("rec-%d", i)})
	}
	return records
}

func TestCreateVersionMonotonicity(t *testing.T) {
	e := New(WithAutoCreateBranch(true))
	ctx := context.Background()

	var last uint64
	for i := 0; i < 5; i++ {
		// alternate branches: numbering is per dataset, not per branch
		branch := model.MainBranch
		if i%2 == 1 {
			branch = "side"
		}
		v, err := e.CreateVersion(ctx, testDataset, testRecords(i+1),
			Branch(branch),
			CommitContributor(testContributor()),
			Message(fmt.Sprintf("commit %d", i)),
		)
		require.NoError(t, err)
		assert.Equal(t, last+1, v.VersionNumber)
		last = v.VersionNumber
	}
}

func TestCreateVersionBranchHead(t *testing.T) {
	e := New()
	ctx := context.Background()

	v1, err := e.CreateVersion(ctx, testDataset, testRecords(1), CommitContributor(testContributor()))
	require.NoError(t, err)

	branch, err := e.GetBranch(testDataset, model.MainBranch)
	require.NoError(t, err)
	assert.Equal(t, v1.ID, branch.HeadVersionID)

	v2, err := e.CreateVersion(ctx, testDataset, testRecords(2), CommitContributor(testContributor()))
	require.NoError(t, err)
	assert.Equal(t, v1.ID, v2.ParentID)

	branch, err = e.GetBranch(testDataset, model.MainBranch)
	require.NoError(t, err)
	assert.Equal(t, v2.ID, branch.HeadVersionID)
}

func TestCreateVersionUnknownBranch(t *testing.T) {
	e := New()
	ctx := context.Background()

	_, err := e.CreateVersion(ctx, testDataset, testRecords(1))
	require.NoError(t, err)

	// no auto-create: committing on an unknown branch fails
	_, err = e.CreateVersion(ctx, testDataset, testRecords(1), Branch("side"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrBranchNotFound))

	// with auto-create: the branch is born at the new version
	auto := New(WithAutoCreateBranch(true))
	_, err = auto.CreateVersion(ctx, testDataset, testRecords(1))
	require.NoError(t, err)
	v, err := auto.CreateVersion(ctx, testDataset, testRecords(2), Branch("side"))
	require.NoError(t, err)
	branch, err := auto.GetBranch(testDataset, "side")
	require.NoError(t, err)
	assert.Equal(t, v.ID, branch.HeadVersionID)
}

func TestCreateVersionEmptyPayload(t *testing.T) {
	e := New()
	_, err := e.CreateVersion(context.Background(), testDataset, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrValidation))
}

func TestCreateVersionBadDataset(t *testing.T) {
	e := New()
	_, err := e.CreateVersion(context.Background(), "not/a/dataset", testRecords(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrValidation))
}

func TestCreateVersionParentNotFound(t *testing.T) {
	e := New()
	ctx := context.Background()
	_, err := e.CreateVersion(ctx, testDataset, testRecords(1))
	require.NoError(t, err)

	_, err = e.CreateVersion(ctx, testDataset, testRecords(1), Parent("no-such-version"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNotFound))
}

func TestCreateVersionExplicitParent(t *testing.T) {
	e := New()
	ctx := context.Background()

	v1, err := e.CreateVersion(ctx, testDataset, testRecords(1))
	require.NoError(t, err)
	_, err = e.CreateVersion(ctx, testDataset, testRecords(2))
	require.NoError(t, err)

	// a commit may branch off an older version while staying on main
	v3, err := e.CreateVersion(ctx, testDataset, testRecords(3), Parent(v1.ID))
	require.NoError(t, err)
	assert.Equal(t, v1.ID, v3.ParentID)
	assert.Equal(t, uint64(3), v3.VersionNumber)
}

func TestGetVersion(t *testing.T) {
	e := New()
	ctx := context.Background()
	v, err := e.CreateVersion(ctx, testDataset, testRecords(1), Message("hello"))
	require.NoError(t, err)

	got, err := e.GetVersion(testDataset, v.ID)
	require.NoError(t, err)
	assert.Equal(t, v.ID, got.ID)
	assert.Equal(t, "hello", got.Message)

	_, err = e.GetVersion(testDataset, "no-such-version")
	assert.True(t, errors.Is(err, status.ErrVersionNotFound))

	_, err = e.GetVersion("no-such-dataset", v.ID)
	assert.True(t, errors.Is(err, status.ErrDatasetNotFound))
}

func TestListVersions(t *testing.T) {
	e := New(WithAutoCreateBranch(true))
	ctx := context.Background()

	var ids []string
	for i := 0; i < 4; i++ {
		branch := model.MainBranch
		if i == 2 {
			branch = "side"
		}
		v, err := e.CreateVersion(ctx, testDataset, testRecords(i+1), Branch(branch))
		require.NoError(t, err)
		ids = append(ids, v.ID)
	}

	all, err := e.ListVersions(testDataset)
	require.NoError(t, err)
	require.Len(t, all, 4)
	// newest first
	assert.Equal(t, ids[3], all[0].ID)
	assert.Equal(t, ids[0], all[3].ID)

	capped, err := e.ListVersions(testDataset, WithLimit(2))
	require.NoError(t, err)
	require.Len(t, capped, 2)
	assert.Equal(t, ids[3], capped[0].ID)

	onMain, err := e.ListVersions(testDataset, WithBranch(model.MainBranch))
	require.NoError(t, err)
	require.Len(t, onMain, 3)
	for _, v := range onMain {
		assert.Equal(t, model.MainBranch, v.BranchName)
	}
}

func TestGetVersionData(t *testing.T) {
	e := New()
	ctx := context.Background()

	records := []model.Record{{"id": 1, "name": "a"}}
	v, err := e.CreateVersion(ctx, testDataset, records)
	require.NoError(t, err)

	data, err := e.GetVersionData(ctx, testDataset, v.ID)
	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.Equal(t, "a", data[0]["name"])

	_, err = e.GetVersionData(ctx, testDataset, "no-such-version")
	assert.True(t, errors.Is(err, status.ErrNotFound))

	// a vanished payload is an explicit not-found, never an empty set
	require.NoError(t, e.Backend().Delete(ctx, model.GetArchivePathToVersionRecords(testDataset, v.ID)))
	_, err = e.GetVersionData(ctx, testDataset, v.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrPayloadNotFound))
}

func TestCreateVersionContentHash(t *testing.T) {
	e := New()
	ctx := context.Background()

	records := []model.Record{{"id": 1, "v": "x"}, {"id": 2, "v": "y"}}
	v1, err := e.CreateVersion(ctx, testDataset, records)
	require.NoError(t, err)
	v2, err := e.CreateVersion(ctx, testDataset, records)
	require.NoError(t, err)
	assert.Equal(t, v1.ContentHash, v2.ContentHash)
	assert.NotEqual(t, v1.ID, v2.ID)

	// record order within the payload is significant
	swapped := []model.Record{{"id": 2, "v": "y"}, {"id": 1, "v": "x"}}
	v3, err := e.CreateVersion(ctx, testDataset, swapped)
	require.NoError(t, err)
	assert.NotEqual(t, v1.ContentHash, v3.ContentHash)
}

func TestConcurrentCommits(t *testing.T) {
	defer goleak.VerifyNone(t)

	const writers = 16
	e := New(WithAutoCreateBranch(true))
	ctx := context.Background()

	_, err := e.CreateVersion(ctx, testDataset, testRecords(1))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errC := make(chan error, writers)
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := e.CreateVersion(ctx, testDataset, testRecords(i+1),
				Branch(fmt.Sprintf("writer-%d", i)),
			)
			errC <- err
		}(i)
	}
	wg.Wait()
	close(errC)
	for err := range errC {
		require.NoError(t, err)
	}

	all, err := e.ListVersions(testDataset)
	require.NoError(t, err)
	require.Len(t, all, writers+1)

	// numbers are exactly 1..writers+1, no duplicates, no gaps
	seen := make(map[uint64]bool, writers+1)
	for _, v := range all {
		assert.False(t, seen[v.VersionNumber], "duplicate version number %d", v.VersionNumber)
		seen[v.VersionNumber] = true
	}
	for n := uint64(1); n <= writers+1; n++ {
		assert.True(t, seen[n], "missing version number %d", n)
	}
}

func TestDescriptorsDoNotAliasEngineState(t *testing.T) {
	e := New()
	ctx := context.Background()

	v1, err := e.CreateVersion(ctx, testDataset, testRecords(1),
		CommitMetadata(map[string]string{"source": "etl"}),
		CommitTags("baseline"),
	)
	require.NoError(t, err)
	v2, err := e.CreateVersion(ctx, testDataset, testRecords(2),
		CommitMetadata(map[string]string{"source": "etl"}),
		CommitTags("baseline"),
	)
	require.NoError(t, err)

	// writes to any returned descriptor must never reach the graph
	v1.Metadata["source"] = "tampered"
	v1.Tags[0] = "tampered"

	got, err := e.GetVersion(testDataset, v1.ID)
	require.NoError(t, err)
	require.Equal(t, "etl", got.Metadata["source"])
	require.Equal(t, []string{"baseline"}, got.Tags)
	got.Metadata["source"] = "tampered"
	got.Tags[0] = "tampered"

	listed, err := e.ListVersions(testDataset)
	require.NoError(t, err)
	for i := range listed {
		listed[i].Metadata["source"] = "tampered"
		listed[i].Tags[0] = "tampered"
	}

	history, err := e.GetVersionHistory(testDataset, v2.ID, 0)
	require.NoError(t, err)
	for i := range history {
		history[i].Metadata["source"] = "tampered"
	}

	children, err := e.GetChildrenVersions(testDataset, v1.ID)
	require.NoError(t, err)
	for i := range children {
		children[i].Metadata["source"] = "tampered"
	}

	tagged, err := e.FindVersionsByTag(testDataset, "baseline")
	require.NoError(t, err)
	for i := range tagged {
		tagged[i].Metadata["source"] = "tampered"
	}

	for _, id := range []string{v1.ID, v2.ID} {
		fresh, err := e.GetVersion(testDataset, id)
		require.NoError(t, err)
		assert.Equal(t, "etl", fresh.Metadata["source"])
		assert.Equal(t, []string{"baseline"}, fresh.Tags)
	}
}

func TestFailedFirstCommitRegistersNoDataset(t *testing.T) {
	e := New()
	ctx := context.Background()

	_, err := e.CreateVersion(ctx, "ghost", testRecords(1), Branch("nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrBranchNotFound))

	// the failed commit leaves no empty dataset behind
	assert.Empty(t, e.ListDatasets())
	_, err = e.GetVersion("ghost", "whatever")
	assert.True(t, errors.Is(err, status.ErrDatasetNotFound))

	// the dataset still works once a commit succeeds
	_, err = e.CreateVersion(ctx, "ghost", testRecords(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"ghost"}, e.ListDatasets())
}
