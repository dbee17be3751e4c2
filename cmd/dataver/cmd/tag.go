// Copyright © 2026 One Concern

package cmd

import (
	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Commands to manage version tags",
	Long: `Commands to manage version tags.

Tags are free-text markers on versions. A tag may be set on any number
of versions of the same dataset.
`,
}

func init() {
	rootCmd.AddCommand(tagCmd)
}
