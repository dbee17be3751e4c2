// Copyright © 2026 One Concern

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oneconcern/dataver/pkg/core"
	"github.com/oneconcern/dataver/pkg/model"
	"github.com/oneconcern/dataver/pkg/storage/localfs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testDataset = "demo"

func writeRecordsFile(t *testing.T, dir, name string, records []model.Record) string {
	buf, err := model.MarshalRecords(records)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf, 0600))
	return path
}

// loadEngine rebuilds an engine from the metadata graph a CLI run left
// on the store, the same way the next CLI invocation would.
func loadEngine(t *testing.T, storePath string) *core.Engine {
	engine := core.New(
		core.Backend(localfs.New(afero.NewBasePathFs(afero.NewOsFs(), filepath.Join(storePath, "objects")))),
	)
	graph, err := os.Open(filepath.Join(storePath, "objects", model.GetArchivePathToMetadata()))
	require.NoError(t, err)
	defer graph.Close()
	require.NoError(t, engine.Import(graph))
	return engine
}

func TestCLIScenario(t *testing.T) {
	storePath := setupTests(t)
	fixtures := t.TempDir()

	recordsV1 := writeRecordsFile(t, fixtures, "v1.json", []model.Record{
		{"id": 1, "v": "a"},
		{"id": 2, "v": "b"},
	})
	recordsV2 := writeRecordsFile(t, fixtures, "v2.json", []model.Record{
		{"id": 1, "v": "a"},
		{"id": 2, "v": "z"},
		{"id": 3, "v": "c"},
	})
	recordsV3 := writeRecordsFile(t, fixtures, "v3.json", []model.Record{
		{"id": 1, "v": "a", "extra": true},
	})

	runCmd(t, storePath, []string{"commit",
		"--dataset", testDataset, "--file", recordsV1, "--message", "first"},
		"commit the initial version", false)
	runCmd(t, storePath, []string{"commit",
		"--dataset", testDataset, "--file", recordsV2, "--message", "second", "--tag", "release"},
		"commit a second version with a tag", false)

	engine := loadEngine(t, storePath)
	versions, err := engine.ListVersions(testDataset)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	v2, v1 := versions[0], versions[1]
	require.EqualValues(t, 1, v1.VersionNumber)
	require.EqualValues(t, 2, v2.VersionNumber)
	require.Equal(t, v1.ID, v2.ParentID)
	require.True(t, v2.HasTag("release"))

	runCmd(t, storePath, []string{"log",
		"--dataset", testDataset},
		"list versions", false)
	runCmd(t, storePath, []string{"show",
		"--dataset", testDataset, "--version", v1.ID},
		"show a version descriptor", false)
	runCmd(t, storePath, []string{"get",
		"--dataset", testDataset, "--version", v1.ID,
		"--file", filepath.Join(fixtures, "out.json")},
		"retrieve version records", false)

	out, err := os.ReadFile(filepath.Join(fixtures, "out.json"))
	require.NoError(t, err)
	records, err := model.UnmarshalRecords(out)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// committing on an unknown branch fails while auto-create is off
	runCmd(t, storePath, []string{"commit",
		"--dataset", testDataset, "--file", recordsV3, "--message", "stray", "--branch", "nope"},
		"reject commits on unknown branches", true)

	runCmd(t, storePath, []string{"branch", "create",
		"--dataset", testDataset, "--branch", "experiment", "--description", "schema trial"},
		"create a branch off the head of main", false)
	runCmd(t, storePath, []string{"commit",
		"--dataset", testDataset, "--file", recordsV3, "--message", "third", "--branch", "experiment"},
		"commit on the new branch", false)
	runCmd(t, storePath, []string{"branch", "list",
		"--dataset", testDataset},
		"list branches", false)

	runCmd(t, storePath, []string{"diff",
		"--dataset", testDataset, "--from", v1.ID, "--to", v2.ID},
		"diff two versions", false)
	runCmd(t, storePath, []string{"history",
		"--dataset", testDataset, "--version", v2.ID},
		"trace ancestry", false)
	runCmd(t, storePath, []string{"children",
		"--dataset", testDataset, "--version", v1.ID},
		"list children", false)

	runCmd(t, storePath, []string{"tag", "set",
		"--dataset", testDataset, "--version", v1.ID, "--tag", "baseline"},
		"tag a version", false)
	runCmd(t, storePath, []string{"tag", "list",
		"--dataset", testDataset, "--tag", "baseline"},
		"list versions by tag", false)

	runCmd(t, storePath, []string{"rollback",
		"--dataset", testDataset, "--version", v1.ID, "--branch", "main"},
		"roll main back to the first version", false)

	engine = loadEngine(t, storePath)
	versions, err = engine.ListVersions(testDataset)
	require.NoError(t, err)
	require.Len(t, versions, 4)
	rolled := versions[0]
	require.EqualValues(t, 4, rolled.VersionNumber)
	require.Equal(t, v2.ID, rolled.ParentID)
	require.Equal(t, v1.ContentHash, rolled.ContentHash)
	require.True(t, rolled.HasTag(model.TagRollback))

	tagged, err := engine.FindVersionsByTag(testDataset, "baseline")
	require.NoError(t, err)
	require.Len(t, tagged, 1)
	require.Equal(t, v1.ID, tagged[0].ID)

	runCmd(t, storePath, []string{"tag", "delete",
		"--dataset", testDataset, "--version", v1.ID, "--tag", "baseline"},
		"remove a tag", false)

	runCmd(t, storePath, []string{"branch", "delete",
		"--dataset", testDataset, "--branch", "experiment"},
		"delete a branch", false)
	runCmd(t, storePath, []string{"branch", "delete",
		"--dataset", testDataset, "--branch", "main"},
		"refuse to delete main", true)

	exportFile := filepath.Join(fixtures, "graph-export.json")
	runCmd(t, storePath, []string{"export",
		"--file", exportFile},
		"export the metadata graph", false)
	otherStore := t.TempDir()
	runCmd(t, otherStore, []string{"import",
		"--file", exportFile},
		"import the metadata graph into a fresh store", false)

	engine = loadEngine(t, otherStore)
	versions, err = engine.ListVersions(testDataset)
	require.NoError(t, err)
	require.Len(t, versions, 4)

	runCmd(t, storePath, []string{"dataset", "list"},
		"list datasets", false)
	runCmd(t, storePath, []string{"config"},
		"show effective config", false)
}
