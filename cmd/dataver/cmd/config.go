// Copyright © 2026 One Concern

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	yaml "gopkg.in/yaml.v2"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration, merged from defaults, the
config file, environment variables and flags.
`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := map[string]interface{}{
			"store":            viper.GetString("store"),
			"loglevel":         viper.GetString("loglevel"),
			"autocreatebranch": viper.GetBool("autocreatebranch"),
		}
		buf, err := yaml.Marshal(settings)
		if err != nil {
			wrapFatalln("render config", err)
			return
		}
		infoLogger.Print(string(buf))
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
