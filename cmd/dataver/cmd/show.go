// Copyright © 2026 One Concern

package cmd

import (
	"context"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the descriptor of a version",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		engine, _, err := initEngine(ctx)
		if err != nil {
			wrapFatalln("initialize engine", err)
			return
		}
		version, err := engine.GetVersion(params.dataset.ID, params.version.ID)
		if err != nil {
			wrapFatalln("get version", err)
			return
		}
		buf, err := yaml.Marshal(version)
		if err != nil {
			wrapFatalln("render version", err)
			return
		}
		infoLogger.Print(string(buf))
	},
}

func init() {
	requireFlags(showCmd,
		addDatasetFlag(showCmd.Flags()),
		addVersionFlag(showCmd.Flags()),
	)
	rootCmd.AddCommand(showCmd)
}
