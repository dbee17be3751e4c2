// Copyright © 2026 One Concern

package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var tagSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Tag a version",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		engine, store, err := initEngine(ctx)
		if err != nil {
			wrapFatalln("initialize engine", err)
			return
		}
		if err = engine.TagVersion(params.dataset.ID, params.version.ID, params.tag.Name); err != nil {
			wrapFatalln("tag version", err)
			return
		}
		if err = saveEngine(ctx, engine, store); err != nil {
			wrapFatalln("save metadata graph", err)
			return
		}
		infoLogger.Printf("tagged version %s with %q", params.version.ID, params.tag.Name)
	},
}

func init() {
	requireFlags(tagSetCmd,
		addDatasetFlag(tagSetCmd.Flags()),
		addVersionFlag(tagSetCmd.Flags()),
		addTagFlag(tagSetCmd.Flags()),
	)
	tagCmd.AddCommand(tagSetCmd)
}
