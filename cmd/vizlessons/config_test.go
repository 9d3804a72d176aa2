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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetViper(t)
	t.Setenv("VIZLESSONS_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "dist", cfg.Site.OutDir)
	assert.Equal(t, "Data Visualization Lessons", cfg.Site.Title)
	assert.Equal(t, uint64(1), cfg.Site.Seed)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 72, cfg.Explore.Width)
	assert.True(t, cfg.Explore.Color)
	assert.Empty(t, cfg.InputFiles())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "vizlessons.yaml")
	themePath := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
site:
  out_dir: public
  gzip: true
  seed: 9
theme:
  file: `+themePath+`
logging:
  format: json
explore:
  width: 40
`), 0o644))
	t.Setenv("VIZLESSONS_SITE_TITLE", "From env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "public", cfg.Site.OutDir)
	assert.True(t, cfg.Site.Gzip)
	assert.Equal(t, uint64(9), cfg.Site.Seed)
	assert.Equal(t, "From env", cfg.Site.Title)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 40, cfg.Explore.Width)
	assert.Equal(t, []string{path, themePath}, cfg.InputFiles())
	assert.Equal(t, "json", cfg.LogConfig().Format)
}

func TestLoadConfig_Invalid(t *testing.T) {
	resetViper(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("explore:\n  width: 5\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "explore.width")
}

func TestConfigValidate(t *testing.T) {
	valid := Config{Site: SiteConfig{OutDir: "dist"}, Explore: ExploreConfig{Width: 72}}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty out dir", mutate: func(c *Config) { c.Site.OutDir = "" }, wantErr: "out_dir"},
		{name: "narrow explorer", mutate: func(c *Config) { c.Explore.Width = 19 }, wantErr: "explore.width"},
		{name: "console format", mutate: func(c *Config) { c.Logging.Format = "Console" }},
		{name: "unknown format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadTheme(t *testing.T) {
	c := &Config{}
	th, err := c.LoadTheme()
	require.NoError(t, err)
	assert.NotNil(t, th)

	c.Theme.File = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = c.LoadTheme()
	assert.Error(t, err)
}

func TestGenerateExampleConfig(t *testing.T) {
	example := GenerateExampleConfig()
	assert.Contains(t, example, "site:")
	assert.Contains(t, example, "out_dir: dist")
	assert.Contains(t, example, "theme:")
	assert.Contains(t, example, "logging:")
	assert.Contains(t, example, "explore:")
	assert.Contains(t, example, "VIZLESSONS_<SECTION>_<KEY>")
}

func TestGeneratedConfigLoads(t *testing.T) {
	resetViper(t)
	path := filepath.Join(t.TempDir(), "nested", "vizlessons.yaml")
	require.NoError(t, writeExampleConfig(path, false))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "lessons.xlsx", cfg.Site.Workbook)

	err = writeExampleConfig(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.NoError(t, writeExampleConfig(path, true))
}

func TestShowConfig(t *testing.T) {
	c := &Config{
		Site:    SiteConfig{OutDir: "dist", Title: "Lessons", Seed: 4},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Explore: ExploreConfig{Width: 80, Color: true},
	}
	var buf bytes.Buffer
	require.NoError(t, showConfig(&buf, c))

	out := buf.String()
	assert.Contains(t, out, "out_dir: dist")
	assert.Contains(t, out, "seed: 4")
	assert.Contains(t, out, "width: 80")
	assert.NotContains(t, out, "workbook:", "empty workbook is omitted")
}
