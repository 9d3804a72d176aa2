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
package site

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teradata-labs/vizlessons/pkg/lessons"
	"github.com/teradata-labs/vizlessons/pkg/merge"
	"github.com/teradata-labs/vizlessons/pkg/theme"
	"github.com/teradata-labs/vizlessons/pkg/visualization"
	"github.com/tidwall/gjson"
	"github.com/xuri/excelize/v2"
)

func capture(t *testing.T) *Snapshot {
	t.Helper()
	snap, err := Capture(CaptureOptions{Seed: 7})
	require.NoError(t, err)
	return snap
}

func TestCapture(t *testing.T) {
	snap := capture(t)

	assert.Empty(t, snap.Report.Failed)
	require.Len(t, snap.Topics, 6)
	for i, topic := range snap.Topics {
		assert.Equal(t, i+1, topic.Number)
		assert.NotEmpty(t, topic.Title)
		assert.NotEmpty(t, topic.Sections)
	}

	junk, ok := snap.Chart("junkRemoverChart")
	require.True(t, ok)
	assert.Equal(t, "junk-remover", junk.Controller)
	assert.Equal(t, 3, junk.Topic)
	assert.True(t, junk.Config.HasPlugin(visualization.ShadowPluginID), "every junk control starts checked")

	_, ok = snap.Chart("chart-ds")
	assert.False(t, ok, "only the selected audience is drawn")
}

func TestCaptureSubset(t *testing.T) {
	pie, ok := lessons.Find(lessons.All(), "pie-validity")
	require.True(t, ok)

	snap, err := Capture(CaptureOptions{Controllers: []lessons.Controller{pie}})
	require.NoError(t, err)
	require.Len(t, snap.Topics, 1)
	assert.Equal(t, 5, snap.Topics[0].Number)
	require.Len(t, snap.Charts(), 1)
	assert.Equal(t, "marketPieChart", snap.Charts()[0].Surface)
}

func TestValidate(t *testing.T) {
	for _, c := range capture(t).Charts() {
		assert.NoError(t, Validate(c.Config), c.Surface)
	}

	tests := []struct {
		name string
		cfg  *visualization.Config
	}{
		{name: "nil", cfg: nil},
		{name: "unknown kind", cfg: &visualization.Config{
			Kind:     "radar",
			Datasets: []merge.Map{{"data": []any{1.0}}},
			Options:  merge.Map{},
		}},
		{name: "no datasets", cfg: &visualization.Config{Kind: visualization.KindBar, Options: merge.Map{}}},
		{name: "string data", cfg: &visualization.Config{
			Kind:     visualization.KindLine,
			Labels:   []string{"a"},
			Datasets: []merge.Map{{"data": []any{"12"}}},
			Options:  merge.Map{},
		}},
		{name: "bad index axis", cfg: &visualization.Config{
			Kind:     visualization.KindBar,
			Labels:   []string{"a"},
			Datasets: []merge.Map{{"data": []any{1.0}}},
			Options:  merge.Map{"indexAxis": "z"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Validate(tt.cfg), ErrInvalidConfig)
		})
	}
}

func TestExportTopic(t *testing.T) {
	snap := capture(t)
	page, err := ExportTopic(snap.Theme, snap.Topics[2], PageOptions{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, DefaultChartJS)
	assert.Contains(t, page, `<canvas id="junkRemoverChart"></canvas>`)
	assert.Contains(t, page, `vizlessons.draw("junkRemoverChart", {`)
	assert.Contains(t, page, "--accent: #6366f1;")
	assert.NotContains(t, page, "incomeBarChart", "other topics stay on their own page")
}

func TestExportIndex(t *testing.T) {
	snap := capture(t)
	index := ExportIndex(theme.Default(), snap, PageOptions{Title: "Lessons & Charts"})

	assert.Contains(t, index, "<title>Lessons &amp; Charts</title>")
	for n := 1; n <= 6; n++ {
		assert.Contains(t, index, TopicFile(n))
	}
	assert.NotContains(t, index, "<script")
}

func TestBuild(t *testing.T) {
	snap := capture(t)
	dir := t.TempDir()

	res, err := NewBuilder(WithGzip(true), WithWorkbook("lessons.xlsx")).Build(context.Background(), snap, dir)
	require.NoError(t, err)

	assert.Equal(t, len(snap.Charts()), res.Charts)
	assert.Contains(t, res.Files, IndexFile)
	assert.Contains(t, res.Files, IndexFile+".gz")
	assert.Contains(t, res.Files, "topic-6.html")
	assert.Contains(t, res.Files, "lessons.xlsx")

	manifest, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	require.NoError(t, err)
	require.True(t, gjson.ValidBytes(manifest))
	assert.Equal(t, "bar", gjson.GetBytes(manifest, "junkRemoverChart.type").String())
	assert.Equal(t, "pie", gjson.GetBytes(manifest, "marketPieChart.type").String())
	assert.Equal(t, 0.0, gjson.GetBytes(manifest, "incomeBarChart.options.scales.y.min").Float())
	assert.Equal(t, "barShadow", gjson.GetBytes(manifest, "junkRemoverChart.plugins.0").String())
	assert.Equal(t, int64(5), gjson.GetBytes(manifest, "junkRemoverChart.data.labels.#").Int())

	compressed, err := os.ReadFile(filepath.Join(dir, ManifestFile+".gz"))
	require.NoError(t, err)
	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, manifest, plain)
}

func TestBuildRejectsInvalid(t *testing.T) {
	snap := capture(t)
	snap.Topics[0].Sections[0].Charts[0].Config.Kind = "radar"
	dir := filepath.Join(t.TempDir(), "out")

	_, err := NewBuilder().Build(context.Background(), snap, dir)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.NoDirExists(t, dir)
}

func TestBuildCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewBuilder().Build(ctx, capture(t), t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkbook(t *testing.T) {
	snap := capture(t)
	path := filepath.Join(t.TempDir(), "lessons.xlsx")
	require.NoError(t, WriteWorkbook(snap, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(IndexSheet)
	require.NoError(t, err)
	assert.Len(t, rows, len(snap.Charts())+1)
	assert.Equal(t, []string{"Surface", "Controller", "Topic", "Kind", "Datasets", "Sheet"}, rows[0])

	pie, err := f.GetRows("marketPieChart")
	require.NoError(t, err)
	require.NotEmpty(t, pie)
	assert.Equal(t, "Label", pie[0][0])
	assert.Len(t, pie, len(lessonsPieLabels(t))+1)

	scatter, err := f.GetRows("bad-scatter-chart")
	require.NoError(t, err)
	require.NotEmpty(t, scatter)
	assert.True(t, strings.HasSuffix(scatter[0][0], " x"))
	assert.Len(t, scatter, 41)
}

func lessonsPieLabels(t *testing.T) []string {
	t.Helper()
	p, ok := lessons.FindPiePreset("valid")
	require.True(t, ok)
	return p.Labels
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "short", sheetName("short"))
	assert.Len(t, sheetName(strings.Repeat("x", 40)), maxSheetName)
}

func TestCompress(t *testing.T) {
	data := []byte(strings.Repeat("chart ", 200))
	out, err := Compress(data)
	require.NoError(t, err)
	assert.Less(t, len(out), len(data))
}
