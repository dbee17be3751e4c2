// Copyright © 2026 One Concern

package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var branchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the branches of a dataset",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		engine, _, err := initEngine(ctx)
		if err != nil {
			wrapFatalln("initialize engine", err)
			return
		}
		branches, err := engine.ListBranches(params.dataset.ID)
		if err != nil {
			wrapFatalln("list branches", err)
			return
		}
		for _, b := range branches {
			line := b.Name + " -> " + b.HeadVersionID
			if b.Description != "" {
				line += " (" + b.Description + ")"
			}
			infoLogger.Println(line)
		}
	},
}

func init() {
	requireFlags(branchListCmd,
		addDatasetFlag(branchListCmd.Flags()),
	)
	branchCmd.AddCommand(branchListCmd)
}
