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
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage vizlessons configuration",
	Long:  `Manage the vizlessons.yaml configuration file.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Generate example configuration file",
	Long:  `Generate an example vizlessons.yaml (default: $VIZLESSONS_HOME/vizlessons.yaml).`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(dataDir(), DefaultConfigFileName+".yaml")
		if len(args) == 1 {
			path = args[0]
		}
		if err := writeExampleConfig(path, configForce); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration (merged from all sources).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return showConfig(cmd.OutOrStdout(), config)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configShowCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
}

func writeExampleConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(GenerateExampleConfig()), 0o644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// configView is the YAML shape of Config.
type configView struct {
	Site struct {
		OutDir   string `yaml:"out_dir"`
		Title    string `yaml:"title"`
		ChartJS  string `yaml:"chartjs"`
		Gzip     bool   `yaml:"gzip"`
		Workbook string `yaml:"workbook,omitempty"`
		Seed     uint64 `yaml:"seed"`
	} `yaml:"site"`
	Theme struct {
		File string `yaml:"file,omitempty"`
	} `yaml:"theme"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		File   string `yaml:"file,omitempty"`
	} `yaml:"logging"`
	Explore struct {
		Width int  `yaml:"width"`
		Color bool `yaml:"color"`
	} `yaml:"explore"`
}

func showConfig(w io.Writer, c *Config) error {
	var v configView
	v.Site.OutDir = c.Site.OutDir
	v.Site.Title = c.Site.Title
	v.Site.ChartJS = c.Site.ChartJS
	v.Site.Gzip = c.Site.Gzip
	v.Site.Workbook = c.Site.Workbook
	v.Site.Seed = c.Site.Seed
	v.Theme.File = c.Theme.File
	v.Logging.Level = c.Logging.Level
	v.Logging.Format = c.Logging.Format
	v.Logging.File = c.Logging.File
	v.Explore.Width = c.Explore.Width
	v.Explore.Color = c.Explore.Color

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}
