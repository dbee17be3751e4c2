// Copyright © 2026 One Concern

package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the versions carrying a tag",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		engine, _, err := initEngine(ctx)
		if err != nil {
			wrapFatalln("initialize engine", err)
			return
		}
		versions, err := engine.FindVersionsByTag(params.dataset.ID, params.tag.Name)
		if err != nil {
			wrapFatalln("find versions by tag", err)
			return
		}
		for _, v := range versions {
			infoLogger.Println(formatVersionLine(&v))
		}
	},
}

func init() {
	requireFlags(tagListCmd,
		addDatasetFlag(tagListCmd.Flags()),
		addTagFlag(tagListCmd.Flags()),
	)
	tagCmd.AddCommand(tagListCmd)
}
