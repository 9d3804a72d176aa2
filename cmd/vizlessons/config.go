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
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/viper"
	"github.com/teradata-labs/vizlessons/internal/log"
	"github.com/teradata-labs/vizlessons/pkg/site"
	"github.com/teradata-labs/vizlessons/pkg/theme"
)

const (
	// DefaultConfigFileName is the name of the config file
	DefaultConfigFileName = "vizlessons"
	// EnvPrefix prefixes every environment override
	EnvPrefix = "VIZLESSONS"
)

// Config holds all configuration for vizlessons.
// Priority: CLI flags > env vars > config file > defaults
type Config struct {
	// Site export configuration
	Site SiteConfig `mapstructure:"site"`

	// Theme override file
	Theme ThemeConfig `mapstructure:"theme"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`

	// Terminal explorer configuration
	Explore ExploreConfig `mapstructure:"explore"`
}

// SiteConfig configures `vizlessons build`.
type SiteConfig struct {
	OutDir   string `mapstructure:"out_dir"`
	Title    string `mapstructure:"title"`
	ChartJS  string `mapstructure:"chartjs"`
	Gzip     bool   `mapstructure:"gzip"`
	Workbook string `mapstructure:"workbook"` // optional workbook file name inside out_dir
	Seed     uint64 `mapstructure:"seed"`     // seed of the generated sample data
}

// ThemeConfig points at a YAML theme override file.
type ThemeConfig struct {
	File string `mapstructure:"file"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text, json
	File   string `mapstructure:"file"`   // File path for log output (optional, defaults to stderr)
}

// ExploreConfig configures the terminal explorer.
type ExploreConfig struct {
	Width int  `mapstructure:"width"` // chart width in cells
	Color bool `mapstructure:"color"`
}

// dataDir is $VIZLESSONS_HOME, or ~/.vizlessons.
func dataDir() string {
	if dir := os.Getenv(EnvPrefix + "_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vizlessons"
	}
	return filepath.Join(home, ".vizlessons")
}

// LoadConfig loads configuration from file, environment and flags.
func LoadConfig(cfgFile string) (*Config, error) {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(dataDir())
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/vizlessons/")
		viper.SetConfigName(DefaultConfigFileName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", viper.ConfigFileUsed(), err)
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("site.out_dir", "dist")
	viper.SetDefault("site.title", "Data Visualization Lessons")
	viper.SetDefault("site.chartjs", site.DefaultChartJS)
	viper.SetDefault("site.gzip", false)
	viper.SetDefault("site.workbook", "")
	viper.SetDefault("site.seed", 1)

	viper.SetDefault("theme.file", "")

	viper.SetDefault("logging.level", "warn")
	viper.SetDefault("logging.format", "text")

	viper.SetDefault("explore.width", 72)
	viper.SetDefault("explore.color", true)
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	if c.Site.OutDir == "" {
		return fmt.Errorf("site.out_dir must not be empty")
	}
	if c.Explore.Width < 20 {
		return fmt.Errorf("explore.width must be at least 20, got %d", c.Explore.Width)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "console", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

// LoadTheme returns the configured theme.
func (c *Config) LoadTheme() (*theme.Theme, error) {
	return theme.Load(c.Theme.File)
}

// LogConfig is the logger configuration.
func (c *Config) LogConfig() log.Config {
	return log.Config{Level: c.Logging.Level, Format: c.Logging.Format, File: c.Logging.File}
}

// InputFiles are the files a build depends on.
func (c *Config) InputFiles() []string {
	var files []string
	if used := viper.ConfigFileUsed(); used != "" {
		files = append(files, used)
	}
	if c.Theme.File != "" {
		files = append(files, c.Theme.File)
	}
	return files
}

// GenerateExampleConfig returns a commented example configuration.
func GenerateExampleConfig() string {
	return heredoc.Doc(`
		# vizlessons configuration
		# Searched in $VIZLESSONS_HOME, the current directory and /etc/vizlessons/.
		# Every key can be overridden with VIZLESSONS_<SECTION>_<KEY>.

		site:
		  out_dir: dist
		  title: Data Visualization Lessons
		  chartjs: ` + site.DefaultChartJS + `
		  gzip: false
		  workbook: lessons.xlsx
		  seed: 1

		theme:
		  # YAML overrides layered over the default theme:
		  #   colors: {accent: "#0ea5e9"}
		  #   palette: ["#0ea5e9", "#22c55e"]
		  file: ""

		logging:
		  level: warn
		  format: text

		explore:
		  width: 72
		  color: true
	`)
}
