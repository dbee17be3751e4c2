// Copyright © 2026 One Concern

package cmd

import (
	"context"
	"os"

	"github.com/oneconcern/dataver/pkg/model"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Retrieve the records of a version",
	Long: `Retrieve the records of a version as a JSON array.

The records are written to the file given with --file, or to stdout
when no file is given.
`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		engine, _, err := initEngine(ctx)
		if err != nil {
			wrapFatalln("initialize engine", err)
			return
		}
		records, err := engine.GetVersionData(ctx, params.dataset.ID, params.version.ID)
		if err != nil {
			wrapFatalln("get version data", err)
			return
		}
		buf, err := model.MarshalRecords(records)
		if err != nil {
			wrapFatalln("serialize records", err)
			return
		}
		if params.version.File == "" {
			infoLogger.Println(string(buf))
			return
		}
		if err = os.WriteFile(params.version.File, buf, 0600); err != nil {
			wrapFatalln("write records file", err)
			return
		}
	},
}

func init() {
	requireFlags(getCmd,
		addDatasetFlag(getCmd.Flags()),
		addVersionFlag(getCmd.Flags()),
	)
	addFileFlag(getCmd.Flags())
	rootCmd.AddCommand(getCmd)
}
