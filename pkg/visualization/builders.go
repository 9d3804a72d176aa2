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

	"github.com/teradata-labs/vizlessons/pkg/merge"
	"github.com/teradata-labs/vizlessons/pkg/theme"
)

// NewSeries is shorthand for a labelled categorical series.
func NewSeries(label string, values ...float64) Series {
	return Series{Label: label, Values: values}
}

// BuildBar builds a bar chart. A single series without a color is colored
// per category from opts.Colors or the palette; with several series each
// series takes one color, positionally.
func BuildBar(th *theme.Theme, labels []string, series []Series, opts Options) (*Config, error) {
	if err := opts.validateFor(KindBar); err != nil {
		return nil, err
	}
	if err := checkLengths(labels, series); err != nil {
		return nil, err
	}

	datasets := make([]merge.Map, 0, len(series))
	for i, s := range series {
		ds := merge.Map{
			"data":            values(s.Values),
			"backgroundColor": barColors(th, len(labels), len(series), i, s, opts.Colors),
			"borderRadius":    6,
			"borderSkipped":   false,
			"maxBarThickness": 60,
		}
		if s.Label != "" {
			ds["label"] = s.Label
		}
		datasets = append(datasets, merge.Merge(ds, s.Extra))
	}

	valueAxis, categoryAxis, indexAxis := "y", "x", "x"
	if opts.Horizontal {
		valueAxis, categoryAxis, indexAxis = "x", "y", "y"
	}
	defaults := merge.Map{
		"plugins": merge.Map{
			"legend": merge.Map{"display": boolOr(opts.ShowLegend, false)},
			"title":  th.Title(opts.Title),
		},
		"scales": merge.Map{
			valueAxis:    valueScale(th, opts),
			categoryAxis: merge.Map{"grid": merge.Map{"display": false}},
		},
		"indexAxis": indexAxis,
	}

	return &Config{
		Kind:     KindBar,
		Labels:   append([]string(nil), labels...),
		Datasets: datasets,
		Options:  merge.Chain(th.Base(), defaults, opts.Extra),
	}, nil
}

func barColors(th *theme.Theme, categories, seriesCount, i int, s Series, colors []string) any {
	switch {
	case s.Color != "":
		return s.Color
	case seriesCount == 1 && len(colors) > 0:
		return strs(colors)
	case seriesCount == 1:
		return strs(th.PaletteN(categories))
	case i < len(colors):
		return colors[i]
	}
	return th.PaletteColor(i)
}

// BuildLine builds a line chart. Unlabelled series are called "Series n".
func BuildLine(th *theme.Theme, labels []string, series []Series, opts Options) (*Config, error) {
	if err := opts.validateFor(KindLine); err != nil {
		return nil, err
	}
	if err := checkLengths(labels, series); err != nil {
		return nil, err
	}

	datasets := make([]merge.Map, 0, len(series))
	for i, s := range series {
		color := seriesColor(th, i, s, opts.Colors)
		ds := merge.Map{
			"label":            seriesLabel(i, s),
			"data":             values(s.Values),
			"borderColor":      color,
			"backgroundColor":  theme.WithAlpha(color, 0x20),
			"fill":             s.Fill,
			"tension":          0.4,
			"pointRadius":      pointRadius(s, 3),
			"pointHoverRadius": 6,
			"borderWidth":      2.5,
		}
		datasets = append(datasets, merge.Merge(ds, s.Extra))
	}

	defaults := merge.Map{
		"plugins": merge.Map{
			"legend": merge.Map{"display": boolOr(opts.ShowLegend, len(series) > 1)},
			"title":  th.Title(opts.Title),
		},
		"scales": merge.Map{"y": valueScale(th, opts)},
	}

	return &Config{
		Kind:     KindLine,
		Labels:   append([]string(nil), labels...),
		Datasets: datasets,
		Options:  merge.Chain(th.Base(), defaults, opts.Extra),
	}, nil
}

// BuildPie builds a pie, or a doughnut when opts.Doughnut is set. Pies
// have no scales.
func BuildPie(th *theme.Theme, labels []string, data []float64, opts Options) (*Config, error) {
	kind := KindPie
	if opts.Doughnut {
		kind = KindDoughnut
	}
	if err := opts.validateFor(kind); err != nil {
		return nil, err
	}
	if len(data) != len(labels) {
		return nil, fmt.Errorf("%d values for %d labels: %w", len(data), len(labels), ErrSeriesLength)
	}

	colors := strs(th.PaletteN(len(data)))
	if len(opts.Colors) > 0 {
		colors = strs(opts.Colors)
	}
	ds := merge.Map{
		"data":            values(data),
		"backgroundColor": colors,
		"borderColor":     th.Colors().Surface,
		"borderWidth":     2,
	}

	base := th.Base()
	delete(base, "scales")
	delete(base, "aspectRatio")
	defaults := merge.Map{
		"plugins": merge.Map{
			"legend": merge.Map{
				"display":  boolOr(opts.ShowLegend, true),
				"position": "bottom",
			},
			"title": th.Title(opts.Title),
		},
	}

	return &Config{
		Kind:     kind,
		Labels:   append([]string(nil), labels...),
		Datasets: []merge.Map{ds},
		Options:  merge.Chain(base, defaults, opts.Extra),
	}, nil
}

// BuildScatter builds a scatter chart from point series. Axis titles come
// from XLabel and YLabel.
func BuildScatter(th *theme.Theme, series []Series, opts Options) (*Config, error) {
	if err := opts.validateFor(KindScatter); err != nil {
		return nil, err
	}

	datasets := make([]merge.Map, 0, len(series))
	for i, s := range series {
		color := seriesColor(th, i, s, opts.Colors)
		ds := merge.Map{
			"label":            seriesLabel(i, s),
			"data":             points(s.Points),
			"backgroundColor":  theme.WithAlpha(color, 0xcc),
			"borderColor":      color,
			"borderWidth":      1,
			"pointRadius":      pointRadius(s, 5),
			"pointHoverRadius": 8,
		}
		datasets = append(datasets, merge.Merge(ds, s.Extra))
	}

	scales := merge.Map{"y": valueScale(th, opts)}
	if opts.XLabel != "" {
		merge.Set(scales, "x.title", th.AxisTitle(opts.XLabel, ""))
	}
	if opts.YLabel != "" {
		merge.Set(scales, "y.title", th.AxisTitle(opts.YLabel, ""))
	}
	defaults := merge.Map{
		"plugins": merge.Map{
			"legend": merge.Map{"display": boolOr(opts.ShowLegend, len(series) > 1)},
			"title":  th.Title(opts.Title),
		},
		"scales": scales,
	}

	return &Config{
		Kind:     KindScatter,
		Datasets: datasets,
		Options:  merge.Chain(th.Base(), defaults, opts.Extra),
	}, nil
}

// valueScale is the value axis block: zero-based unless told otherwise,
// optional bounds and tick format.
func valueScale(th *theme.Theme, opts Options) merge.Map {
	ticks := merge.Map{"color": th.Colors().TextSecondary}
	if opts.TickFormat != nil {
		ticks["format"] = opts.TickFormat.Map()
	}
	s := merge.Map{
		"beginAtZero": boolOr(opts.BeginAtZero, true),
		"grid":        merge.Map{"color": th.Colors().GridLine},
		"ticks":       ticks,
	}
	if opts.YMin != nil {
		s["min"] = *opts.YMin
	}
	if opts.YMax != nil {
		s["max"] = *opts.YMax
	}
	return s
}

func checkLengths(labels []string, series []Series) error {
	for i, s := range series {
		if len(s.Values) != len(labels) {
			return fmt.Errorf("series %d (%q) has %d values for %d labels: %w",
				i, s.Label, len(s.Values), len(labels), ErrSeriesLength)
		}
	}
	return nil
}

func seriesColor(th *theme.Theme, i int, s Series, colors []string) string {
	if s.Color != "" {
		return s.Color
	}
	if i < len(colors) {
		return colors[i]
	}
	return th.PaletteColor(i)
}

func seriesLabel(i int, s Series) string {
	if s.Label != "" {
		return s.Label
	}
	return fmt.Sprintf("Series %d", i+1)
}

func pointRadius(s Series, def float64) any {
	if len(s.PointRadii) > 0 {
		out := make([]any, len(s.PointRadii))
		for i, r := range s.PointRadii {
			out[i] = r
		}
		return out
	}
	if s.PointRadius != nil {
		return *s.PointRadius
	}
	return def
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
