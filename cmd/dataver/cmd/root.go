// Copyright © 2026 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dataver",
	Short: "Dataver versions record-oriented datasets",
	Long: `Dataver brings a git like workflow to record-oriented datasets.

It manages immutable snapshots ("versions") of a dataset's records,
organizes them into named branches, computes structured diffs between
versions and rolls back without ever rewriting history.

Payloads are stored on a pluggable backend; metadata travels as a
serializable graph, so repositories can be backed up and migrated.
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	addStorePathFlag(rootCmd.PersistentFlags())
	addLogLevelFlag(rootCmd.PersistentFlags())
	addContributorFlags(rootCmd.PersistentFlags())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("store", ".dataver")
	viper.SetDefault("loglevel", "none")
	viper.SetDefault("autocreatebranch", false)
	if cfg := os.Getenv("DATAVER_CONFIG"); cfg != "" {
		// Use config file from the environment.
		viper.SetConfigFile(cfg)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.dataver")
		viper.AddConfigPath("/etc/dataver")
		viper.SetConfigName("dataver")
	}
	viper.SetEnvPrefix("dataver")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			wrapFatalln("read config file", err)
			return
		}
	}

	if params.root.storePath != "" {
		viper.Set("store", params.root.storePath)
	}
	if params.root.logLevel != "" {
		viper.Set("loglevel", params.root.logLevel)
	}
}
