// Copyright © 2026 One Concern

package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var childrenCmd = &cobra.Command{
	Use:   "children",
	Short: "List the direct descendants of a version",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		engine, _, err := initEngine(ctx)
		if err != nil {
			wrapFatalln("initialize engine", err)
			return
		}
		versions, err := engine.GetChildrenVersions(params.dataset.ID, params.version.ID)
		if err != nil {
			wrapFatalln("get children versions", err)
			return
		}
		for _, v := range versions {
			infoLogger.Println(formatVersionLine(&v))
		}
	},
}

func init() {
	requireFlags(childrenCmd,
		addDatasetFlag(childrenCmd.Flags()),
		addVersionFlag(childrenCmd.Flags()),
	)
	rootCmd.AddCommand(childrenCmd)
}
