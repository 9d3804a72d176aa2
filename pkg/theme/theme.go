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

// Package theme holds the dark visual theme every lesson chart is built on.
//
// A Theme is immutable once constructed. Accessors hand out copies, and the
// base chart template is rebuilt on every call, so a caller that edits what
// it received can never leak that edit into another chart.
package theme

import (
	"fmt"

	"github.com/teradata-labs/vizlessons/pkg/merge"
)

// Colors names the semantic colors of the theme.
type Colors struct {
	Accent        string `yaml:"accent"`
	AccentLight   string `yaml:"accent_light"`
	Success       string `yaml:"success"`
	Warning       string `yaml:"warning"`
	Danger        string `yaml:"danger"`
	Text          string `yaml:"text"`
	TextSecondary string `yaml:"text_secondary"`
	Muted         string `yaml:"muted"`
	GridLine      string `yaml:"grid_line"`
	GridLineBad   string `yaml:"grid_line_bad"`

	// Chrome colors used by tooltips, slice borders and de-emphasized bars.
	Surface string `yaml:"surface"`
	Border  string `yaml:"border"`
	Dim     string `yaml:"dim"`
}

// PaletteSize is the length of every palette in the default theme.
const PaletteSize = 8

// Theme is the immutable visual theme.
type Theme struct {
	name         string
	colors       Colors
	palette      []string
	mutedPalette []string
	badPalette   []string
	fontFamily   string
}

var defaultTheme = &Theme{
	name: "dark",
	colors: Colors{
		Accent:        "#6366f1",
		AccentLight:   "#818cf8",
		Success:       "#10b981",
		Warning:       "#f59e0b",
		Danger:        "#ef4444",
		Text:          "#e8eaf0",
		TextSecondary: "#9ca3b4",
		Muted:         "#6b7280",
		GridLine:      "rgba(45, 49, 72, 0.6)",
		GridLineBad:   "rgba(100, 100, 120, 0.4)",
		Surface:       "#1e2130",
		Border:        "#2d3148",
		Dim:           "#4a4e5a",
	},
	palette:      []string{"#6366f1", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6", "#06b6d4", "#f97316", "#ec4899"},
	mutedPalette: []string{"#4f5280", "#0d8c63", "#b8780a", "#b53636", "#6b45a1", "#0590a1", "#c05a12", "#b83872"},
	badPalette:   []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00", "#ff00ff", "#00ffff", "#ff8800", "#88ff00"},
	fontFamily:   "'Inter', sans-serif",
}

// Default returns the shared dark theme.
func Default() *Theme {
	return defaultTheme
}

// Name returns the theme name.
func (t *Theme) Name() string { return t.name }

// Colors returns the semantic colors by value.
func (t *Theme) Colors() Colors { return t.colors }

// FontFamily returns the CSS font family used for all chart text.
func (t *Theme) FontFamily() string { return t.fontFamily }

// Palette returns a copy of the muted, perceptually distinct palette.
func (t *Theme) Palette() []string { return append([]string(nil), t.palette...) }

// MutedPalette returns a copy of the darkened palette.
func (t *Theme) MutedPalette() []string { return append([]string(nil), t.mutedPalette...) }

// BadPalette returns a copy of the saturated rainbow used for anti-patterns.
func (t *Theme) BadPalette() []string { return append([]string(nil), t.badPalette...) }

// PaletteColor returns the good palette color for a series position.
// Assignment is positional: position i gets palette[i mod len].
func (t *Theme) PaletteColor(i int) string {
	return cycle(t.palette, i)
}

// BadPaletteColor is PaletteColor over the bad palette.
func (t *Theme) BadPaletteColor(i int) string {
	return cycle(t.badPalette, i)
}

// PaletteN returns n good palette colors, cycling when n exceeds the
// palette length.
func (t *Theme) PaletteN(n int) []string {
	return cycleN(t.palette, n)
}

// BadPaletteN returns n bad palette colors.
func (t *Theme) BadPaletteN(n int) []string {
	return cycleN(t.badPalette, n)
}

func cycle(p []string, i int) string {
	if len(p) == 0 {
		return ""
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

func cycleN(p []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = cycle(p, i)
	}
	return out
}

// Font returns a Chart.js font block. A zero size or empty weight is
// left out.
func (t *Theme) Font(size int, weight string) merge.Map {
	f := merge.Map{"family": t.fontFamily}
	if size > 0 {
		f["size"] = size
	}
	if weight != "" {
		f["weight"] = weight
	}
	return f
}

// LegendLabels returns the legend label style shared by every chart.
func (t *Theme) LegendLabels() merge.Map {
	return merge.Map{
		"color":         t.colors.TextSecondary,
		"font":          t.Font(12, ""),
		"padding":       16,
		"usePointStyle": true,
	}
}

// Tooltip returns the tooltip block shared by every chart.
func (t *Theme) Tooltip() merge.Map {
	return merge.Map{
		"backgroundColor": t.colors.Surface,
		"titleColor":      t.colors.Text,
		"bodyColor":       t.colors.TextSecondary,
		"borderColor":     t.colors.Border,
		"borderWidth":     1,
		"cornerRadius":    8,
		"padding":         12,
		"titleFont":       t.Font(0, "600"),
		"bodyFont":        t.Font(0, ""),
	}
}

func (t *Theme) axis() merge.Map {
	return merge.Map{
		"grid":  merge.Map{"color": t.colors.GridLine, "drawBorder": false},
		"ticks": merge.Map{"color": t.colors.TextSecondary, "font": t.Font(11, "")},
	}
}

// Base returns a fresh copy of the chart options template every factory
// layers its defaults onto.
func (t *Theme) Base() merge.Map {
	return merge.Map{
		"responsive":          true,
		"maintainAspectRatio": true,
		"aspectRatio":         2,
		"plugins": merge.Map{
			"legend":  merge.Map{"labels": t.LegendLabels()},
			"tooltip": t.Tooltip(),
		},
		"scales": merge.Map{
			"x": t.axis(),
			"y": t.axis(),
		},
	}
}

// Title returns a displayed chart title block, or a hidden one when text
// is empty.
func (t *Theme) Title(text string) merge.Map {
	if text == "" {
		return merge.Map{"display": false}
	}
	return merge.Map{
		"display": true,
		"text":    text,
		"color":   t.colors.Text,
		"font":    t.Font(14, "600"),
		"padding": merge.Map{"bottom": 16},
	}
}

// AxisTitle returns a displayed axis title block in the secondary text
// color.
func (t *Theme) AxisTitle(text, color string) merge.Map {
	if color == "" {
		color = t.colors.TextSecondary
	}
	return merge.Map{
		"display": true,
		"text":    text,
		"color":   color,
		"font":    t.Font(12, ""),
	}
}

// Thresholds Validate applies. Palette distance is CIEDE2000 on
// go-colorful's 0–1 scale; text contrast is a CIE L* gap.
const (
	minPaletteDistance = 0.03
	minTextContrast    = 0.4
)

// Validate checks the theme has everything the factories read.
func (t *Theme) Validate() error {
	if t == nil {
		return fmt.Errorf("theme is nil")
	}
	if t.colors.Accent == "" {
		return fmt.Errorf("accent color is required")
	}
	if t.fontFamily == "" {
		return fmt.Errorf("font family is required")
	}
	if len(t.palette) == 0 {
		return fmt.Errorf("palette must not be empty")
	}
	if len(t.badPalette) == 0 {
		return fmt.Errorf("bad palette must not be empty")
	}
	for _, c := range t.palette {
		if _, err := ParseHex(c); err != nil {
			return fmt.Errorf("palette color %q: %w", c, err)
		}
	}
	if d := MinDistance(t.palette); d < minPaletteDistance {
		return fmt.Errorf("palette colors are not distinct (closest pair %.3f, need %.2f)", d, minPaletteDistance)
	}
	if _, err := ParseHex(t.colors.Text); err == nil {
		if gap := Lightness(t.colors.Text) - Lightness(t.colors.Surface); gap < minTextContrast {
			return fmt.Errorf("text %s is too close to surface %s (lightness gap %.2f)", t.colors.Text, t.colors.Surface, gap)
		}
	}
	return nil
}
