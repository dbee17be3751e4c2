// Copyright © 2026 One Concern

package cmd

import (
	"context"
	"os"

	"github.com/oneconcern/dataver/pkg/core"
	"github.com/oneconcern/dataver/pkg/model"
	"github.com/spf13/cobra"
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Commit a new version of a dataset",
	Long: `Commit a new version of a dataset.

The records are read from a JSON file holding an array of objects. The
new version is appended to the given branch and becomes its head.
`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		engine, store, err := initEngine(ctx)
		if err != nil {
			wrapFatalln("initialize engine", err)
			return
		}

		data, err := os.ReadFile(params.version.File)
		if err != nil {
			wrapFatalln("read records file", err)
			return
		}
		records, err := model.UnmarshalRecords(data)
		if err != nil {
			wrapFatalln("parse records file", err)
			return
		}

		version, err := engine.CreateVersion(ctx, params.dataset.ID, records,
			core.Message(params.version.Message),
			core.CommitContributor(paramsToContributor()),
			core.Branch(params.branch.Name),
			core.CommitTags(params.tag.Names...),
		)
		if err != nil {
			wrapFatalln("create version", err)
			return
		}
		if err = saveEngine(ctx, engine, store); err != nil {
			wrapFatalln("save metadata graph", err)
			return
		}
		infoLogger.Printf("committed version %d (%s) on branch %q", version.VersionNumber, version.ID, version.BranchName)
	},
}

func init() {
	requireFlags(commitCmd,
		addDatasetFlag(commitCmd.Flags()),
		addFileFlag(commitCmd.Flags()),
		addMessageFlag(commitCmd.Flags()),
	)
	addBranchNameFlag(commitCmd.Flags())
	addTagsFlag(commitCmd.Flags())
	rootCmd.AddCommand(commitCmd)
}
