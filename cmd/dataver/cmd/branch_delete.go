// Copyright © 2026 One Concern

package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var branchDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a branch",
	Long: `Delete a branch from a dataset.

Only the pointer is removed: the versions it referenced stay in the
history graph. The main branch cannot be deleted.
`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		engine, store, err := initEngine(ctx)
		if err != nil {
			wrapFatalln("initialize engine", err)
			return
		}
		if err = engine.DeleteBranch(params.dataset.ID, params.branch.Name); err != nil {
			wrapFatalln("delete branch", err)
			return
		}
		if err = saveEngine(ctx, engine, store); err != nil {
			wrapFatalln("save metadata graph", err)
			return
		}
		infoLogger.Printf("deleted branch %q", params.branch.Name)
	},
}

func init() {
	requireFlags(branchDeleteCmd,
		addDatasetFlag(branchDeleteCmd.Flags()),
		addBranchNameFlag(branchDeleteCmd.Flags()),
	)
	branchCmd.AddCommand(branchDeleteCmd)
}
