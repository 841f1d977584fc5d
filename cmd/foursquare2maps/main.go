// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the foursquare2maps CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the foursquare2maps CLI.
var rootCmd = &cobra.Command{
	Use:   "foursquare2maps",
	Short: "Convert a Foursquare export into Google My Maps CSV files",
	Long: `foursquare2maps converts a Foursquare/Swarm personal data export into
CSV files importable into Google My Maps. It scans the numbered check-in
files for venue coordinates, joins them against the saved lists, and writes
one CSV per list plus a conversion summary.

Run the full pipeline with "convert", or build and inspect only the venue
location index with "index".`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./foursquare2maps.yaml or ~/.config/foursquare2maps/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("foursquare2maps")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "foursquare2maps"))
		}
	}

	viper.SetEnvPrefix("FOURSQUARE2MAPS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting resolves a string setting: an explicitly set flag wins,
// then the viper config/env value, then the flag's default.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

// intSetting resolves an int setting with the same precedence as
// stringSetting.
func intSetting(cmd *cobra.Command, flag, key string) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

// boolSetting resolves a bool setting with the same precedence as
// stringSetting.
func boolSetting(cmd *cobra.Command, flag, key string) bool {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetBool(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	v, _ := cmd.Flags().GetBool(flag)
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
