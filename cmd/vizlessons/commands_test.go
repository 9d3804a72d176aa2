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
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teradata-labs/vizlessons/internal/app"
	"github.com/teradata-labs/vizlessons/pkg/lessons"
	"github.com/teradata-labs/vizlessons/pkg/render"
	"github.com/teradata-labs/vizlessons/pkg/site"
	"github.com/teradata-labs/vizlessons/pkg/theme"
	"github.com/tidwall/gjson"
)

func onlyApp(t *testing.T, id string) *app.App {
	t.Helper()
	a, err := app.Only(app.Options{Seed: 1}, id)
	require.NoError(t, err)
	return a
}

func TestListDemos(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listDemos(&buf, lessons.All(), 0))
	out := buf.String()
	assert.Contains(t, out, "1. A Figure for the Generals")
	assert.Contains(t, out, "6. Narrative Arcs")
	assert.Contains(t, out, "↳ junkRemoverChart")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "24 demos"))

	buf.Reset()
	require.NoError(t, listDemos(&buf, lessons.All(), 3))
	assert.Contains(t, buf.String(), "junk-remover")
	assert.NotContains(t, buf.String(), "axis-truncation")

	assert.Error(t, listDemos(&buf, lessons.All(), 7))
}

func TestSimulateJunk(t *testing.T) {
	a := onlyApp(t, "junk-remover")
	var buf bytes.Buffer
	require.NoError(t, simulateJunk(&buf, a, []string{" Colors "}))

	out := buf.String()
	assert.Contains(t, out, "☑ colors")
	assert.Contains(t, out, "☐ borders")
	assert.Contains(t, out, "Data-ink ratio: 81%")

	err := simulateJunk(&buf, a, []string{"sparkles"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sparkles")
}

func TestSimulateTruncate(t *testing.T) {
	a := onlyApp(t, "axis-truncation")
	var buf bytes.Buffer
	require.NoError(t, simulateTruncate(&buf, a, 50000))
	assert.Contains(t, buf.String(), "MISLEADING")
	assert.Contains(t, buf.String(), "Honolulu")

	buf.Reset()
	require.NoError(t, simulateTruncate(&buf, a, 0))
	assert.Contains(t, buf.String(), "ACCURATE")

	assert.Error(t, simulateTruncate(&buf, a, -1))
	assert.Error(t, simulateTruncate(&buf, a, 60001))
}

func TestSimulatePie(t *testing.T) {
	tests := []struct {
		preset string
		want   string
	}{
		{preset: "overlap", want: "125%"},
		{preset: "survey", want: "218%"},
		{preset: "valid", want: "VALID"},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, simulatePie(&buf, onlyApp(t, "pie-validity"), tt.preset))
			assert.Contains(t, buf.String(), tt.want)
		})
	}

	err := simulatePie(&bytes.Buffer{}, onlyApp(t, "pie-validity"), "donut")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "donut")
}

func TestShowChart(t *testing.T) {
	a := onlyApp(t, "pie-validity")

	var buf bytes.Buffer
	data, err := showChart(&buf, a, "marketPieChart", showOptions{Raw: true})
	require.NoError(t, err)
	assert.Equal(t, "pie", gjson.GetBytes(data, "type").String())
	assert.Equal(t, string(data)+"\n", buf.String())

	buf.Reset()
	_, err = showChart(&buf, a, "marketPieChart", showOptions{Text: render.TextOptions{Width: 50}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "marketPieChart · ")
	assert.Contains(t, buf.String(), `"type": "pie"`)
}

func TestShowChartNotLive(t *testing.T) {
	a := app.New(app.Options{Seed: 1})
	var dormant string
	for _, s := range a.AllSurfaces() {
		if _, live := a.Chart(s); !live {
			dormant = s
			break
		}
	}
	require.NotEmpty(t, dormant, "some surface is only drawn after interaction")

	_, err := showChart(&bytes.Buffer{}, a, dormant, showOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vizlessons explore")
}

func TestUnknownChart(t *testing.T) {
	candidates := []string{"incomeBarChart", "marketPieChart", "junkRemoverChart"}

	err := unknownChart("incomeChart", candidates)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean incomeBarChart")

	err = unknownChart("zzz", candidates)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vizlessons list")
}

func TestNamedSteps(t *testing.T) {
	th := theme.Default()
	for _, name := range []string{"walkthrough", "complexity"} {
		steps, err := namedSteps(th, name)
		require.NoError(t, err)
		assert.NotEmpty(t, steps)
	}
	_, err := namedSteps(th, "tour")
	assert.Error(t, err)
}

func TestPrintSteps(t *testing.T) {
	steps, err := namedSteps(theme.Default(), "complexity")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printSteps(&buf, steps, false))
	assert.Contains(t, buf.String(), "── Step 1/")
	assert.NotContains(t, buf.String(), `"type"`)

	buf.Reset()
	require.NoError(t, printSteps(&buf, steps, true))
	assert.Contains(t, buf.String(), `+   "type"`, "first step diffs against nothing")
}

func TestLineDiff(t *testing.T) {
	out := lineDiff("a\nb\nc\n", "a\nx\nc\n")
	assert.Contains(t, out, "- b\n")
	assert.Contains(t, out, "+ x\n")
	assert.NotContains(t, out, "a")

	assert.Equal(t, "   (no change)", lineDiff("same\n", "same\n"))
}

func TestBuildSite(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Site: SiteConfig{
		OutDir:   dir,
		Title:    "Lessons",
		ChartJS:  site.DefaultChartJS,
		Workbook: "lessons.xlsx",
		Seed:     1,
	}}

	var buf bytes.Buffer
	res, err := buildSite(context.Background(), &buf, cfg)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "✅ Built")
	assert.Positive(t, res.Charts)

	for _, name := range []string{site.IndexFile, site.ManifestFile, site.TopicFile(1), "lessons.xlsx"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	index, err := os.ReadFile(filepath.Join(dir, site.IndexFile))
	require.NoError(t, err)
	assert.Contains(t, string(index), "Lessons")
}

func TestBuildSiteBadTheme(t *testing.T) {
	cfg := &Config{Site: SiteConfig{OutDir: t.TempDir()}, Theme: ThemeConfig{File: "/nonexistent/theme.yaml"}}
	_, err := buildSite(context.Background(), &bytes.Buffer{}, cfg)
	assert.Error(t, err)
}
