// Copyright © 2026 One Concern

package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var tagDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove a tag from a version",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		engine, store, err := initEngine(ctx)
		if err != nil {
			wrapFatalln("initialize engine", err)
			return
		}
		if err = engine.RemoveTag(params.dataset.ID, params.version.ID, params.tag.Name); err != nil {
			wrapFatalln("remove tag", err)
			return
		}
		if err = saveEngine(ctx, engine, store); err != nil {
			wrapFatalln("save metadata graph", err)
			return
		}
		infoLogger.Printf("removed tag %q from version %s", params.tag.Name, params.version.ID)
	},
}

func init() {
	requireFlags(tagDeleteCmd,
		addDatasetFlag(tagDeleteCmd.Flags()),
		addVersionFlag(tagDeleteCmd.Flags()),
		addTagFlag(tagDeleteCmd.Flags()),
	)
	tagCmd.AddCommand(tagDeleteCmd)
}
