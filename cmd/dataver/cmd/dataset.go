// Copyright © 2026 One Concern

package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Commands to inspect datasets",
}

var datasetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the datasets known to the store",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		engine, _, err := initEngine(ctx)
		if err != nil {
			wrapFatalln("initialize engine", err)
			return
		}
		for _, id := range engine.ListDatasets() {
			infoLogger.Println(id)
		}
	},
}

func init() {
	datasetCmd.AddCommand(datasetListCmd)
	rootCmd.AddCommand(datasetCmd)
}
