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
package lessons

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teradata-labs/vizlessons/pkg/theme"
	"github.com/teradata-labs/vizlessons/pkg/visualization"
)

func TestInkRatio(t *testing.T) {
	tests := []struct {
		active, total int
		want          int
		tier          Tier
	}{
		{0, 5, 90, TierGood},
		{5, 5, 30, TierBad},
		{2, 5, 66, TierWarn},
		{0, 7, 90, TierGood},
		{3, 7, 64, TierWarn},
		{7, 7, 30, TierBad},
		{0, 0, 90, TierGood},
	}
	for _, tt := range tests {
		got := InkRatio(tt.active, tt.total)
		assert.Equal(t, tt.want, got, "%d/%d", tt.active, tt.total)
		assert.Equal(t, tt.tier, InkTier(got))
	}
	assert.Equal(t, "var(--warning)", TierWarn.CSSColor())
}

func TestTruncation(t *testing.T) {
	r := Truncation(0)
	assert.True(t, r.Accurate)
	assert.Equal(t, "1.3", r.ApparentLabel())
	assert.Equal(t, "✓ ACCURATE", r.Badge)
	assert.Equal(t, TierGood, r.BadgeTier)
	assert.Equal(t, "$0", r.MinLabel)
	assert.Contains(t, r.Sentence, "1.3× the income of Hawaii")

	r = Truncation(50000)
	assert.False(t, r.Accurate)
	assert.Equal(t, "4.4", r.ApparentLabel())
	assert.Equal(t, "$50,000", r.MinLabel)
	assert.Contains(t, r.Sentence, "only 1.3× more")

	r = Truncation(55000)
	assert.True(t, math.IsInf(r.Apparent, 1))
	assert.Equal(t, "∞", r.ApparentLabel())
	assert.Equal(t, "⚠ MISLEADING", r.Badge)
	assert.Equal(t, TierBad, r.BadgeTier)
	assert.Contains(t, r.Sentence, "disappeared entirely")

	assert.True(t, math.IsInf(Truncation(60000).Apparent, 1))
}

func TestCheckPie(t *testing.T) {
	tests := []struct {
		preset string
		valid  bool
		sum    float64
		badge  string
	}{
		{"valid", true, 100, "✓ VALID — Slices sum to 100%"},
		{"overlap", false, 125, "⚠ CRIME — Slices sum to 125%!"},
		{"survey", false, 218, "⚠ CRIME — Slices sum to 218%!"},
	}
	for _, tt := range tests {
		p, ok := FindPiePreset(tt.preset)
		require.True(t, ok)
		v := CheckPie(p.Data)
		assert.Equal(t, tt.valid, v.Valid, tt.preset)
		assert.InDelta(t, tt.sum, v.Sum, 1e-9)
		assert.Equal(t, tt.badge, v.Badge)
	}
	assert.True(t, CheckPie([]float64{33.3, 33.3, 33.3}).Valid)
	assert.False(t, CheckPie([]float64{33, 33, 33}).Valid)
}

func junkState(on ...string) ControlState {
	s := ControlState{}
	for _, k := range JunkKeys {
		s[k] = false
	}
	for _, k := range on {
		s[k] = true
	}
	return s
}

func TestDeriveJunk_Scenarios(t *testing.T) {
	th := theme.Default()
	c := th.Colors()

	clean := DeriveJunk(th, junkState())
	assert.Equal(t, []string{c.Accent, c.Accent, c.Accent, c.Accent, c.Accent}, clean.Colors)
	assert.Equal(t, "transparent", clean.BorderColor)
	assert.Zero(t, clean.BorderWidth)
	assert.Equal(t, c.GridLine, clean.GridColor)
	assert.Equal(t, 1, clean.GridWidth)
	assert.False(t, clean.LegendVisible)
	assert.Empty(t, clean.BackgroundDecoration)
	assert.False(t, clean.ShadowEnabled)
	assert.Equal(t, 90, InkRatio(junkState().Active(), len(JunkKeys)))

	threeOfSeven := []struct {
		name       string
		on         []string
		wantColors []string
		wantShadow bool
	}{
		{
			name:       "poor palette with borders and gridlines",
			on:         []string{JunkColors, JunkBorders, JunkGridlines},
			wantColors: th.BadPaletteN(5),
		},
		{
			name:       "borders gridlines and 3d",
			on:         []string{JunkBorders, JunkGridlines, JunkThreeD},
			wantColors: clean.Colors,
			wantShadow: true,
		},
	}
	for _, tt := range threeOfSeven {
		t.Run(tt.name, func(t *testing.T) {
			state := junkState(tt.on...)
			enc := DeriveJunk(th, state)
			assert.Equal(t, tt.wantColors, enc.Colors)
			assert.True(t, enc.BorderVisible)
			assert.Equal(t, 3, enc.BorderWidth)
			assert.Equal(t, "rgba(0,0,0,0.8)", enc.BorderColor)
			assert.True(t, enc.GridlineVisible)
			assert.Equal(t, 2, enc.GridWidth)
			assert.Equal(t, tt.wantShadow, enc.ShadowEnabled)
			assert.False(t, enc.LegendVisible)
			assert.Equal(t, 64, InkRatio(state.Active(), len(state)))
		})
	}

	all := DeriveJunk(th, junkState(JunkKeys...))
	assert.Equal(t, th.BadPaletteN(5), all.Colors)
	assert.True(t, all.LegendVisible)
	assert.NotEmpty(t, all.BackgroundDecoration)
}

func TestDeriveJunk_GradientsNeedColors(t *testing.T) {
	th := theme.Default()
	c := th.Colors()

	twoTone := DeriveJunk(th, junkState(JunkGradients))
	assert.Equal(t, []string{c.Accent, c.AccentLight, c.Accent, c.AccentLight, c.Accent}, twoTone.Colors)

	both := DeriveJunk(th, junkState(JunkGradients, JunkColors))
	assert.Equal(t, th.BadPaletteN(5), both.Colors)
}

func TestJunkEncoding_ApplyIsIdempotent(t *testing.T) {
	th := theme.Default()
	cfg, err := BuildJunkChart(th, junkState(JunkKeys...))
	require.NoError(t, err)
	assert.True(t, cfg.HasPlugin(visualization.ShadowPluginID))

	enc := DeriveJunk(th, junkState())
	enc.Apply(cfg)
	enc.Apply(cfg)
	assert.False(t, cfg.HasPlugin(visualization.ShadowPluginID))
	v, _ := cfg.Option("scales.x.grid.display")
	assert.Equal(t, false, v)
	v, _ = cfg.Option("scales.y.grid.lineWidth")
	assert.Equal(t, 1, v)
	v, _ = cfg.Option("plugins.legend.display")
	assert.Equal(t, false, v)
	assert.Equal(t, "transparent", cfg.Dataset(0)["borderColor"])
}

func TestControlState(t *testing.T) {
	s := ControlState{"a": true, "b": false, "n": 4.5, "s": "x"}
	assert.Equal(t, 1, s.Active())
	assert.True(t, s.Bool("a"))
	assert.False(t, s.Bool("missing"))
	assert.Equal(t, 4.5, s.Number("n"))
	assert.Equal(t, "x", s.String("s"))
	assert.Empty(t, s.String("n"))
}
