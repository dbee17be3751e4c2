// Copyright © 2026 One Concern

package cmd

import (
	"context"
	"strconv"
	"time"

	"github.com/docker/go-units"
	"github.com/oneconcern/dataver/pkg/core"
	"github.com/oneconcern/dataver/pkg/model"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "List the versions of a dataset",
	Long: `List the versions of a dataset, newest first.

The listing may be restricted to the versions reachable from the head
of a single branch.
`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		engine, _, err := initEngine(ctx)
		if err != nil {
			wrapFatalln("initialize engine", err)
			return
		}

		opts := make([]core.ListOption, 0, 2)
		if cmd.Flags().Changed("branch") {
			opts = append(opts, core.WithBranch(params.branch.Name))
		}
		if params.version.Limit > 0 {
			opts = append(opts, core.WithLimit(params.version.Limit))
		}
		versions, err := engine.ListVersions(params.dataset.ID, opts...)
		if err != nil {
			wrapFatalln("list versions", err)
			return
		}
		for _, v := range versions {
			infoLogger.Println(formatVersionLine(&v))
		}
	},
}

func formatVersionLine(v *model.VersionDescriptor) string {
	line := "#" + strconv.FormatUint(v.VersionNumber, 10) + " " + v.ID +
		" [" + v.BranchName + "] " +
		v.Timestamp.Format(time.RFC3339) + " " +
		v.Contributor.String() + ": " + v.Message +
		" (" + strconv.FormatUint(v.RecordCount, 10) + " records, " +
		units.HumanSize(float64(v.SizeBytes)) + ")"
	if len(v.Tags) > 0 {
		line += " tags:"
		for _, t := range v.Tags {
			line += " " + t
		}
	}
	return line
}

func init() {
	requireFlags(logCmd,
		addDatasetFlag(logCmd.Flags()),
	)
	addBranchNameFlag(logCmd.Flags())
	addLimitFlag(logCmd.Flags())
	rootCmd.AddCommand(logCmd)
}
