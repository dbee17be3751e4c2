// Copyright © 2026 One Concern

package cmd

import (
	"context"

	"github.com/oneconcern/dataver/pkg/core"
	"github.com/spf13/cobra"
)

var rollbackCmd = &cobra.Command{
	Use:   "rollback",
	Short: "Roll a branch back to an earlier version",
	Long: `Roll a branch back to an earlier version.

History is never rewritten: rollback commits a new version carrying the
target version's records, so the branch head moves forward while the
dataset content moves back.
`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		engine, store, err := initEngine(ctx)
		if err != nil {
			wrapFatalln("initialize engine", err)
			return
		}
		opts := []core.CommitOption{
			core.CommitContributor(paramsToContributor()),
		}
		if params.version.Message != "" {
			opts = append(opts, core.Message(params.version.Message))
		}
		version, err := engine.Rollback(ctx, params.dataset.ID, params.version.ID, params.branch.Name, opts...)
		if err != nil {
			wrapFatalln("rollback", err)
			return
		}
		if err = saveEngine(ctx, engine, store); err != nil {
			wrapFatalln("save metadata graph", err)
			return
		}
		infoLogger.Printf("rolled back branch %q to version %s as new version %d (%s)",
			version.BranchName, params.version.ID, version.VersionNumber, version.ID)
	},
}

func init() {
	requireFlags(rollbackCmd,
		addDatasetFlag(rollbackCmd.Flags()),
		addVersionFlag(rollbackCmd.Flags()),
	)
	addBranchNameFlag(rollbackCmd.Flags())
	addMessageFlag(rollbackCmd.Flags())
	rootCmd.AddCommand(rollbackCmd)
}
