// Copyright © 2026 One Concern

package cmd

import (
	"github.com/spf13/cobra"
)

var branchCmd = &cobra.Command{
	Use:   "branch",
	Short: "Commands to manage branches of a dataset",
	Long: `Commands to manage branches of a dataset.

A branch is a named pointer to a version. Committing on a branch moves
its head forward; the main branch always exists and cannot be deleted.
`,
}

func init() {
	rootCmd.AddCommand(branchCmd)
}
