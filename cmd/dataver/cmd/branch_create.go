// Copyright © 2026 One Concern

package cmd

import (
	"context"

	"github.com/oneconcern/dataver/pkg/core"
	"github.com/spf13/cobra"
)

var branchCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a branch",
	Long: `Create a branch on a dataset.

The branch starts at the version given with --base, or at the current
head of main when --base is omitted.
`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		engine, store, err := initEngine(ctx)
		if err != nil {
			wrapFatalln("initialize engine", err)
			return
		}
		opts := []core.BranchOption{
			core.BranchCreator(paramsToContributor()),
			core.BranchDescription(params.branch.Description),
		}
		if params.branch.Base != "" {
			opts = append(opts, core.BranchBase(params.branch.Base))
		}
		branch, err := engine.CreateBranch(params.dataset.ID, params.branch.Name, opts...)
		if err != nil {
			wrapFatalln("create branch", err)
			return
		}
		if err = saveEngine(ctx, engine, store); err != nil {
			wrapFatalln("save metadata graph", err)
			return
		}
		infoLogger.Printf("created branch %q at version %s", branch.Name, branch.HeadVersionID)
	},
}

func init() {
	requireFlags(branchCreateCmd,
		addDatasetFlag(branchCreateCmd.Flags()),
		addBranchNameFlag(branchCreateCmd.Flags()),
	)
	addBranchBaseFlag(branchCreateCmd.Flags())
	addBranchDescriptionFlag(branchCreateCmd.Flags())
	branchCmd.AddCommand(branchCreateCmd)
}
