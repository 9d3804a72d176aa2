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
	"fmt"
	"math"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/rivo/uniseg"
	"github.com/teradata-labs/vizlessons/pkg/merge"
	"github.com/teradata-labs/vizlessons/pkg/visualization"
)

// TextOptions controls Text.
type TextOptions struct {
	// Width is the total line width. Zero means 72.
	Width int

	// Color paints bars with their dataset colors.
	Color bool
}

const (
	barRune     = "█"
	pointRune   = "●"
	scatterRows = 10
)

// Text draws cfg as a terminal chart. Bars are scaled between the value
// axis bounds, so a truncated axis looks as misleading here as it does in
// the browser.
func Text(cfg *visualization.Config, opts TextOptions) string {
	if opts.Width <= 0 {
		opts.Width = 72
	}
	var b strings.Builder
	if title := optString(cfg, "plugins.title.text"); title != "" && optBool(cfg, "plugins.title.display") {
		b.WriteString(title)
		b.WriteString("\n\n")
	}

	switch cfg.Kind {
	case visualization.KindScatter:
		drawScatter(&b, cfg, opts)
	case visualization.KindPie, visualization.KindDoughnut:
		drawPie(&b, cfg, opts)
	default:
		drawCategorical(&b, cfg, opts)
	}

	if optBool(cfg, "plugins.legend.display") {
		var entries []string
		switch cfg.Kind {
		case visualization.KindPie, visualization.KindDoughnut:
			for i, label := range cfg.Labels {
				entries = append(entries, paint(opts, elementColor(cfg.Dataset(0), i), "■")+" "+label)
			}
		default:
			for _, ds := range cfg.Datasets {
				if label, _ := ds["label"].(string); label != "" {
					entries = append(entries, paint(opts, elementColor(ds, 0), "■")+" "+label)
				}
			}
		}
		if len(entries) > 0 {
			b.WriteString("\n" + strings.Join(entries, "   ") + "\n")
		}
	}
	if len(cfg.Plugins) > 0 {
		ids := make([]string, len(cfg.Plugins))
		for i, p := range cfg.Plugins {
			ids[i] = p.ID
		}
		b.WriteString("\nplugins: " + strings.Join(ids, ", ") + "\n")
	}
	return b.String()
}

func drawCategorical(b *strings.Builder, cfg *visualization.Config, opts TextOptions) {
	axis := "y"
	if v, _ := cfg.Option("indexAxis"); v == "y" {
		axis = "x"
	}
	format, ok := visualization.FormatFromMap(optValue(cfg, "scales."+axis+".ticks.format"))
	if !ok {
		format = visualization.TickFormat{Decimals: -1}
	}

	lo, hi := bounds(cfg, axis)
	labelWidth := 0
	for _, l := range cfg.Labels {
		labelWidth = max(labelWidth, uniseg.StringWidth(l))
	}
	barWidth := max(opts.Width-labelWidth-14, 8)

	for i, label := range cfg.Labels {
		for di, ds := range cfg.Datasets {
			vals := cfg.Values(di)
			if i >= len(vals) {
				continue
			}
			name := ""
			if di == 0 {
				name = label
			}
			v := vals[i]
			text := "–"
			n := 0
			if !math.IsNaN(v) {
				text = format.Format(v)
				n = scale(v, lo, hi, barWidth)
			}
			fmt.Fprintf(b, "%s │%s %s\n", pad(name, labelWidth),
				paint(opts, elementColor(ds, i), strings.Repeat(barRune, n)), text)
		}
	}
	if lo != 0 {
		fmt.Fprintf(b, "%*s └ axis starts at %s\n", labelWidth, "", format.Format(lo))
	}
}

func drawPie(b *strings.Builder, cfg *visualization.Config, opts TextOptions) {
	vals := cfg.Values(0)
	total := 0.0
	for _, v := range vals {
		if !math.IsNaN(v) {
			total += v
		}
	}
	labelWidth := 0
	for _, l := range cfg.Labels {
		labelWidth = max(labelWidth, uniseg.StringWidth(l))
	}
	barWidth := max(opts.Width-labelWidth-14, 8)
	ds := cfg.Dataset(0)
	for i, label := range cfg.Labels {
		if i >= len(vals) || math.IsNaN(vals[i]) {
			continue
		}
		share := 0.0
		if total > 0 {
			share = vals[i] / total
		}
		fmt.Fprintf(b, "%s │%s %s\n", pad(label, labelWidth),
			paint(opts, elementColor(ds, i), strings.Repeat(barRune, int(math.Round(share*float64(barWidth))))),
			strconv.FormatFloat(vals[i], 'f', -1, 64))
	}
	fmt.Fprintf(b, "%*s   sum %s\n", labelWidth, "", strconv.FormatFloat(total, 'f', -1, 64))
}

func drawScatter(b *strings.Builder, cfg *visualization.Config, opts TextOptions) {
	cols := max(opts.Width-2, 10)
	type pt struct{ x, y float64 }
	var all [][]pt
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, ds := range cfg.Datasets {
		raw, _ := ds["data"].([]any)
		var pts []pt
		for _, e := range raw {
			m, ok := e.(merge.Map)
			if !ok {
				continue
			}
			x, _ := m["x"].(float64)
			y, _ := m["y"].(float64)
			pts = append(pts, pt{x, y})
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		}
		all = append(all, pts)
	}
	if math.IsInf(minX, 1) {
		b.WriteString("(no points)\n")
		return
	}
	if v, ok := optFloat(cfg, "scales.y.min"); ok {
		minY = v
	}
	if v, ok := optFloat(cfg, "scales.y.max"); ok {
		maxY = v
	}

	grid := make([][]string, scatterRows)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}
	for di, pts := range all {
		color := elementColor(cfg.Datasets[di], 0)
		for _, p := range pts {
			c := scale(p.x, minX, maxX, cols-1)
			r := scatterRows - 1 - scale(p.y, minY, maxY, scatterRows-1)
			if r >= 0 && r < scatterRows && c >= 0 && c < cols {
				grid[r][c] = paint(opts, color, pointRune)
			}
		}
	}
	for _, row := range grid {
		b.WriteString("│" + strings.Join(row, "") + "\n")
	}
	b.WriteString("└" + strings.Repeat("─", cols) + "\n")
	if t := optString(cfg, "scales.x.title.text"); t != "" {
		b.WriteString(" x: " + t + "\n")
	}
	if t := optString(cfg, "scales.y.title.text"); t != "" {
		b.WriteString(" y: " + t + "\n")
	}
}

// bounds returns the value range bars are drawn across.
func bounds(cfg *visualization.Config, axis string) (float64, float64) {
	lo, hi := 0.0, 0.0
	for i := range cfg.Datasets {
		for _, v := range cfg.Values(i) {
			if !math.IsNaN(v) {
				hi = math.Max(hi, v)
			}
		}
	}
	if v, ok := optFloat(cfg, "scales."+axis+".min"); ok {
		lo = v
	}
	if v, ok := optFloat(cfg, "scales."+axis+".max"); ok {
		hi = v
	}
	return lo, hi
}

func scale(v, lo, hi float64, width int) int {
	if hi <= lo {
		return 0
	}
	n := int(math.Round((v - lo) / (hi - lo) * float64(width)))
	return min(max(n, 0), width)
}

// elementColor picks element i's color. Line datasets are drawn in their
// border color; everything else in its fill.
func elementColor(ds merge.Map, i int) string {
	keys := []string{"backgroundColor", "borderColor"}
	if _, line := ds["tension"]; line {
		keys = []string{"borderColor", "backgroundColor"}
	}
	for _, key := range keys {
		switch c := ds[key].(type) {
		case string:
			return c
		case []any:
			if len(c) > 0 {
				s, _ := c[i%len(c)].(string)
				return s
			}
		}
	}
	return ""
}

// paint colors s with a hex color, ignoring an alpha suffix. Other color
// syntaxes are left unpainted.
func paint(opts TextOptions, color, s string) string {
	if !opts.Color || s == "" || !strings.HasPrefix(color, "#") {
		return s
	}
	if len(color) == 9 {
		color = color[:7]
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
}

func optValue(cfg *visualization.Config, path string) any {
	v, _ := cfg.Option(path)
	return v
}

func optString(cfg *visualization.Config, path string) string {
	s, _ := optValue(cfg, path).(string)
	return s
}

func optBool(cfg *visualization.Config, path string) bool {
	b, _ := optValue(cfg, path).(bool)
	return b
}

func optFloat(cfg *visualization.Config, path string) (float64, bool) {
	switch n := optValue(cfg, path).(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// pad right-pads s to w terminal cells.
func pad(s string, w int) string {
	return s + strings.Repeat(" ", max(w-uniseg.StringWidth(s), 0))
}
