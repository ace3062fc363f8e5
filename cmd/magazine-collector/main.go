// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the magazine-collector CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is configured in the root PersistentPreRun and shared by all
// subcommands.
var logger zerolog.Logger

// rootCmd is the base command for the magazine-collector CLI.
var rootCmd = &cobra.Command{
	Use:   "magazine-collector",
	Short: "Curate magazine issues into a local article library",
	Long: `magazine-collector turns downloaded magazine issues (EPUB files organized
one directory per publication) into a curated library of standalone article
files with YAML frontmatter.

Each stage is a subcommand: collect runs the full pipeline over the source
tree, extract inspects a single issue, and catalog maintains a searchable
SQLite index over the collected articles.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger = newLogger(verbose)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./magazine-collector.yaml or ~/.config/magazine-collector/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("magazine-collector")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "magazine-collector"))
		}
	}

	viper.SetEnvPrefix("MAGAZINE_COLLECTOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds a console logger writing to stderr, leaving stdout for
// pipeline progress and query output.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
