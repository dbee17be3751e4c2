// Copyright © 2026 One Concern

package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the metadata graph",
	Long: `Export the metadata graph of every dataset as JSON.

The graph is written to the file given with --file, or to stdout when
no file is given. Payloads are not included: they stay on the store.
`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		engine, _, err := initEngine(ctx)
		if err != nil {
			wrapFatalln("initialize engine", err)
			return
		}
		out := os.Stdout
		if params.version.File != "" {
			out, err = os.Create(params.version.File)
			if err != nil {
				wrapFatalln("create export file", err)
				return
			}
			defer out.Close()
		}
		if err = engine.Export(out); err != nil {
			wrapFatalln("export metadata graph", err)
			return
		}
	},
}

func init() {
	addFileFlag(exportCmd.Flags())
	rootCmd.AddCommand(exportCmd)
}
