// Copyright © 2026 One Concern

package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a metadata graph",
	Long: `Import a metadata graph exported from another store.

The imported datasets replace any datasets of the same name already in
the store. Version payloads are expected to be present on the store
under their archive paths.
`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		engine, store, err := initEngine(ctx)
		if err != nil {
			wrapFatalln("initialize engine", err)
			return
		}
		in, err := os.Open(params.version.File)
		if err != nil {
			wrapFatalln("open import file", err)
			return
		}
		defer in.Close()
		if err = engine.Import(in); err != nil {
			wrapFatalln("import metadata graph", err)
			return
		}
		if err = saveEngine(ctx, engine, store); err != nil {
			wrapFatalln("save metadata graph", err)
			return
		}
		infoLogger.Printf("imported %d datasets", len(engine.ListDatasets()))
	},
}

func init() {
	requireFlags(importCmd,
		addFileFlag(importCmd.Flags()),
	)
	rootCmd.AddCommand(importCmd)
}
