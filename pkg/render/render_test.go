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
package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teradata-labs/vizlessons/pkg/theme"
	"github.com/teradata-labs/vizlessons/pkg/visualization"
)

func barConfig(t *testing.T, opts visualization.Options) *visualization.Config {
	t.Helper()
	cfg, err := visualization.BuildBar(theme.Default(),
		[]string{"Honolulu", "Maui", "Kauai", "Hawaii"},
		[]visualization.Series{visualization.NewSeries("Income", 72000, 67000, 65000, 55000)},
		opts)
	require.NoError(t, err)
	return cfg
}

func TestRecorder_Lifecycle(t *testing.T) {
	r := NewRecorder()
	chart, err := r.Create("truncChart", barConfig(t, visualization.Options{}))
	require.NoError(t, err)
	require.NotNil(t, chart)
	assert.NotEmpty(t, chart.ID())
	assert.Equal(t, 1, r.LiveCount())

	rc, ok := r.Live("truncChart")
	require.True(t, ok)
	assert.Equal(t, 1, rc.Draws())

	chart.Config().SetOption("scales.y.min", 50000.0)
	require.NoError(t, chart.Update())
	assert.Equal(t, 2, rc.Draws())

	require.NoError(t, chart.Destroy())
	require.NoError(t, chart.Destroy())
	assert.True(t, rc.Destroyed())
	assert.Equal(t, 0, r.LiveCount())
	assert.ErrorIs(t, chart.Update(), ErrDestroyed)

	var ops []Op
	for _, e := range r.Events() {
		ops = append(ops, e.Op)
	}
	assert.Equal(t, []Op{OpCreate, OpUpdate, OpDestroy}, ops)
	assert.Empty(t, r.Leaks())
}

func TestRecorder_FlagsLeaks(t *testing.T) {
	r := NewRecorder()
	first, err := r.Create("c", barConfig(t, visualization.Options{}))
	require.NoError(t, err)
	second, err := r.Create("c", barConfig(t, visualization.Options{}))
	require.NoError(t, err)

	leaks := r.Leaks()
	require.Len(t, leaks, 1)
	assert.ErrorIs(t, leaks[0], ErrSurfaceBusy)
	assert.Contains(t, leaks[0].Error(), first.ID())

	// destroying the stale chart must not release the new one
	require.NoError(t, first.Destroy())
	live, ok := r.Live("c")
	require.True(t, ok)
	assert.Equal(t, second.ID(), live.ID())

	r.Reset()
	assert.Empty(t, r.Leaks())
	assert.Equal(t, 0, r.LiveCount())
}

func TestRecorder_RunsDrawHooks(t *testing.T) {
	cfg := barConfig(t, visualization.Options{})
	cfg.AddPlugin(visualization.ShadowPlugin)
	cfg.AddPlugin(visualization.ValueLabelsPlugin("#fff", "11px Inter", visualization.FormatDollars))

	r := NewRecorder()
	_, err := r.Create("c", cfg)
	require.NoError(t, err)

	rc, _ := r.Live("c")
	canvas := rc.Canvas()
	ops := canvas.Ops()
	require.NotEmpty(t, ops)
	assert.Equal(t, "save", ops[0])
	assert.Equal(t, "shadow rgba(0,0,0,0.5) 10 6 6", ops[1])
	assert.Equal(t, "datasets", ops[2])
	assert.Equal(t, []string{"$72,000", "$67,000", "$65,000", "$55,000"}, canvas.Texts())
	assert.True(t, canvas.Balanced())
}

func TestText_TruncatedAxis(t *testing.T) {
	full := Text(barConfig(t, visualization.Options{Title: "Median income"}), TextOptions{Width: 60})
	assert.True(t, strings.HasPrefix(full, "Median income\n"))
	assert.NotContains(t, full, "axis starts at")

	truncated := barConfig(t, visualization.Options{YMin: visualization.Float(50000), TickFormat: &visualization.FormatIncomeK})
	out := Text(truncated, TextOptions{Width: 60})
	assert.Contains(t, out, "axis starts at $50k")
	assert.Contains(t, out, "$72k")

	lines := strings.Split(out, "\n")
	hon := strings.Count(lines[0], barRune)
	haw := strings.Count(lines[3], barRune)
	assert.Greater(t, hon, 3*haw, "truncation exaggerates the gap")
}

func TestText_PieAndScatter(t *testing.T) {
	pie, err := visualization.BuildPie(theme.Default(),
		[]string{"A", "B", "C", "D", "E"}, []float64{42, 28, 18, 12, 25}, visualization.Options{})
	require.NoError(t, err)
	out := Text(pie, TextOptions{})
	assert.Contains(t, out, "sum 125")
	assert.Contains(t, out, "■", "pies show a legend")

	scatter, err := visualization.BuildScatter(theme.Default(), []visualization.Series{
		{Label: "A", Points: []visualization.Point{{X: 1, Y: 1}, {X: 9, Y: 9}}},
	}, visualization.Options{XLabel: "Flights"})
	require.NoError(t, err)
	out = Text(scatter, TextOptions{Width: 30})
	assert.Equal(t, 2, strings.Count(out, pointRune))
	assert.Contains(t, out, "x: Flights")
}
