// Copyright © 2026 One Concern

package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Trace the ancestry of a version",
	Long: `Trace the ancestry of a version, walking parent links back to
the root of the history graph.

The walk may be bounded with --max-depth.
`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		engine, _, err := initEngine(ctx)
		if err != nil {
			wrapFatalln("initialize engine", err)
			return
		}
		versions, err := engine.GetVersionHistory(params.dataset.ID, params.version.ID, params.history.MaxDepth)
		if err != nil {
			wrapFatalln("get version history", err)
			return
		}
		for _, v := range versions {
			infoLogger.Println(formatVersionLine(&v))
		}
	},
}

func init() {
	requireFlags(historyCmd,
		addDatasetFlag(historyCmd.Flags()),
		addVersionFlag(historyCmd.Flags()),
	)
	addMaxDepthFlag(historyCmd.Flags())
	rootCmd.AddCommand(historyCmd)
}
