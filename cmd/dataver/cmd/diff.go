// Copyright © 2026 One Concern

package cmd

import (
	"context"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare the records of two versions",
	Long: `Compare the records of two versions of a dataset.

Records are matched by their "id" field when present, and by a content
hash otherwise. The result lists added, removed and modified records,
plus the field-level schema changes.
`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		engine, _, err := initEngine(ctx)
		if err != nil {
			wrapFatalln("initialize engine", err)
			return
		}
		diff, err := engine.Diff(ctx, params.dataset.ID, params.diff.From, params.diff.To)
		if err != nil {
			wrapFatalln("diff versions", err)
			return
		}
		buf, err := yaml.Marshal(diff)
		if err != nil {
			wrapFatalln("render diff", err)
			return
		}
		infoLogger.Print(string(buf))
	},
}

func init() {
	requireFlags(diffCmd,
		addDatasetFlag(diffCmd.Flags()),
		addDiffFromFlag(diffCmd.Flags()),
		addDiffToFlag(diffCmd.Flags()),
	)
	rootCmd.AddCommand(diffCmd)
}
