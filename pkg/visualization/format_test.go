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
package visualization

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teradata-labs/vizlessons/pkg/theme"
)

func TestTickFormat_Format(t *testing.T) {
	tests := []struct {
		format TickFormat
		value  float64
		want   string
	}{
		{FormatThousandsUSD, 420, "$420K"},
		{FormatMillionsUSD, 2.26, "$2.3M"},
		{FormatPercent, 12.5, "12.5%"},
		{FormatSignedPct, 22, "+22%"},
		{FormatSignedPct, -7, "-7%"},
		{FormatSignedPct, 0, "0%"},
		{FormatSignedMin, 3.2, "+3.2 min"},
		{FormatIncomeK, 72000, "$72k"},
		{FormatDollars, 72000, "$72,000"},
		{FormatDollars, 0, "$0"},
		{TickFormat{Decimals: -1, Grouping: true}, 1234567.5, "1,234,567.5"},
		{TickFormat{Names: []string{"Q1", "Q2", "Q3"}, NameOffset: 1}, 2, "Q2"},
		{TickFormat{Names: []string{"Q1", "Q2", "Q3"}, NameOffset: 1}, 7, ""},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.Format(tt.value))
		})
	}
}

func TestTickFormat_MapRoundTrip(t *testing.T) {
	for _, f := range []TickFormat{FormatIncomeK, FormatSignedPct, FormatDollars} {
		back, ok := FormatFromMap(f.Map())
		require.True(t, ok)
		assert.Equal(t, f, back)
	}

	named := TickFormat{Decimals: -1, Names: []string{"a", "b"}, NameOffset: 1}
	back, ok := FormatFromMap(named.Map())
	require.True(t, ok)
	assert.Equal(t, "b", back.Format(2))

	_, ok = FormatFromMap("not a format")
	assert.False(t, ok)
}

type recCanvas struct {
	saves, restores int
	shadows         []string
	texts           []string
}

func (c *recCanvas) Save()    { c.saves++ }
func (c *recCanvas) Restore() { c.restores++ }

func (c *recCanvas) SetShadow(color string, blur, dx, dy float64) {
	c.shadows = append(c.shadows, fmt.Sprintf("%s/%g/%g/%g", color, blur, dx, dy))
}

func (c *recCanvas) FillText(text string, x, y float64, font, color string) {
	c.texts = append(c.texts, fmt.Sprintf("%s@%g,%g", text, x, y))
}

type recContext struct {
	canvas *recCanvas
	config *Config
}

func (d *recContext) Canvas() Canvas  { return d.canvas }
func (d *recContext) Config() *Config { return d.config }

func (d *recContext) Elements(dataset int) []Position {
	out := make([]Position, len(d.config.Values(dataset)))
	for i := range out {
		out[i] = Position{X: float64(i * 10), Y: 100}
	}
	return out
}

func TestShadowPlugin(t *testing.T) {
	dc := &recContext{canvas: &recCanvas{}, config: &Config{}}
	ShadowPlugin.BeforeDatasetsDraw(dc)
	ShadowPlugin.AfterDatasetsDraw(dc)

	assert.Equal(t, 1, dc.canvas.saves)
	assert.Equal(t, 1, dc.canvas.restores)
	assert.Equal(t, []string{"rgba(0,0,0,0.5)/10/6/6"}, dc.canvas.shadows)
}

func TestValueLabelsPlugin(t *testing.T) {
	cfg, err := BuildBar(theme.Default(), []string{"a", "b"}, []Series{
		NewSeries("revenue", 420, 380),
		NewSeries("growth", 12, -3),
	}, Options{})
	require.NoError(t, err)

	dc := &recContext{canvas: &recCanvas{}, config: cfg}
	p := ValueLabelsPlugin("#fff", "bold 11px Inter", FormatThousandsUSD, FormatSignedPct)
	assert.Equal(t, ValueLabelsPluginID, p.ID)
	p.AfterDatasetsDraw(dc)

	assert.Equal(t, []string{"$420K@0,92", "$380K@10,92", "+12%@0,90", "-3%@10,90"}, dc.canvas.texts)
	assert.Equal(t, dc.canvas.saves, dc.canvas.restores)
}
