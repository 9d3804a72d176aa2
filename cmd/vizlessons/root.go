// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/teradata-labs/vizlessons/internal/log"
	"github.com/teradata-labs/vizlessons/internal/version"
	"go.uber.org/zap"
)

var (
	cfgFile string
	config  *Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vizlessons",
	Short: "Interactive data visualization lessons",
	Long: heredoc.Doc(`
		vizlessons builds and explores the interactive charts of the data
		visualization lessons: six topics of themed charts whose controls
		re-encode the data live.

		Build the static site, inspect any chart's configuration, simulate a
		control panel from the shell or open the terminal explorer.`),
	Version:       version.Get(),
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.SetHelpTemplate(`{{with (or .Long .Short)}}{{. | trimTrailingWhitespaces}}

{{end}}{{if or .Runnable .HasSubCommands}}{{.UsageString}}{{end}}

Quick Start:
  1. List the demos:        vizlessons list
  2. Inspect a chart:       vizlessons show junkRemoverChart
  3. Build the site:        vizlessons build --out dist
  4. Explore in a terminal: vizlessons explore
`)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $VIZLESSONS_HOME/vizlessons.yaml)")
	rootCmd.PersistentFlags().String("theme", "", "theme override file (YAML)")
	rootCmd.PersistentFlags().Uint64("seed", 1, "seed of the generated sample data")

	// Logging flags
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")

	// Bind flags to viper
	_ = viper.BindPFlag("theme.file", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("site.seed", rootCmd.PersistentFlags().Lookup("seed"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig reads in config file and ENV variables if set, then sets up
// the process logger.
func initConfig() {
	var err error
	config, err = LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, err := log.New(config.LogConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	log.SetLogger(logger)
	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("config file loaded", zap.String("path", used))
	}
}
