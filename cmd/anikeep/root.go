package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "anikeep",
	Short: "A personal anime collection manager",
	Long: `Anikeep tracks a personal anime collection: search the external
catalog, import entries, add manual ones, and manage favorites and
featured items. The collection lives in a local database file or on a
remote backend, selected via the substrate setting.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.anikeep.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().String("substrate", "", "persistence substrate: 'local' or 'remote'")
	rootCmd.PersistentFlags().String("db-path", "", "path of the local collection database")
	rootCmd.PersistentFlags().String("remote-url", "", "base URL of the remote collection backend")

	// Bind flags to viper
	viper.BindPFlag("substrate", rootCmd.PersistentFlags().Lookup("substrate"))
	viper.BindPFlag("db_path", rootCmd.PersistentFlags().Lookup("db-path"))
	viper.BindPFlag("remote_url", rootCmd.PersistentFlags().Lookup("remote-url"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in home directory and current directory
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".anikeep")
		viper.SetConfigName("config")
	}

	// Environment variables
	viper.SetEnvPrefix("ANIKEEP")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
