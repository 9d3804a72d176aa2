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
	"github.com/teradata-labs/vizlessons/pkg/page"
	"github.com/teradata-labs/vizlessons/pkg/theme"
	"github.com/teradata-labs/vizlessons/pkg/visualization"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	quarters   = []string{"Q1", "Q2", "Q3", "Q4"}
	formatKUSD = visualization.TickFormat{Prefix: "$", Suffix: "k", Decimals: -1}
)

// AxisTruncation moves the minimum of an income bar chart with a slider
// and explains how far the bars now exaggerate the difference.
type AxisTruncation struct {
	base
	chart visualization.Chart
}

const (
	truncSurface     = "incomeBarChart"
	truncSlider      = "yAxisMin"
	truncValue       = "yAxisMinValue"
	truncBadge       = "barWarning"
	truncExplanation = "barExplanation"
)

var (
	incomeLabels = []string{"Honolulu", "Maui", "Kauai", "Hawaii"}
	incomeData   = []float64{TruncHigh, 67000, 65000, TruncLow}
)

func NewAxisTruncation() *AxisTruncation {
	return &AxisTruncation{base: base{id: "axis-truncation", topic: 5, title: "Bar charts start at zero", policy: Mutate}}
}

func (a *AxisTruncation) Manifest() page.Manifest {
	return page.Manifest{
		Surfaces: []string{truncSurface},
		Elements: []string{truncValue, truncBadge, truncExplanation},
		Controls: []page.ControlSpec{{
			Group: a.id,
			ID:    truncSlider,
			Key:   "min",
			Type:  page.Slider,
			Label: "Y-axis minimum",
			Value: "0",
			Min:   0,
			Max:   60000,
			Step:  1000,
		}},
	}
}

// Chart returns the live chart.
func (a *AxisTruncation) Chart() visualization.Chart { return a.chart }

func (a *AxisTruncation) Init(env Env) error {
	if err := surfaces(env, truncSurface); err != nil {
		return err
	}
	cfg, err := BuildIncomeChart(env.Theme())
	if err != nil {
		return err
	}
	if a.chart, err = env.Charts.Create(truncSurface, cfg); err != nil {
		return err
	}
	slider, ok := env.Doc.Control(truncSlider)
	if !ok {
		return nil
	}
	slider.OnChange(func() { a.apply(env, slider.Number()) })
	return nil
}

func (a *AxisTruncation) apply(env Env, minimum float64) {
	a.chart.Config().SetOption("scales.y.min", minimum)
	update(env, a.chart)

	r := Truncation(minimum)
	setText(element(env, truncValue), r.MinLabel)
	badge(element(env, truncBadge), badgeClass(r.BadgeTier), r.Badge)
	setText(element(env, truncExplanation), r.Sentence)
	env.logger().Debug("axis minimum changed",
		zap.Float64("min", minimum),
		zap.String("apparent", r.ApparentLabel()))
}

// BuildIncomeChart builds the zero-based income chart.
func BuildIncomeChart(th *theme.Theme) (*visualization.Config, error) {
	c := th.Colors()
	return visualization.BuildBar(th, incomeLabels, []visualization.Series{visualization.NewSeries("", incomeData...)},
		visualization.Options{
			Colors:     []string{c.Accent, c.AccentLight, th.PaletteColor(4), th.PaletteColor(2)},
			YMin:       visualization.Float(0),
			YMax:       visualization.Float(80000),
			TickFormat: &visualization.FormatIncomeK,
		})
}

// LineComparison shows the same temperatures on a zero-based axis and on
// a fitted range, where line charts may leave zero.
type LineComparison struct{ base }

const (
	lineZero  = "lineZeroChart"
	lineRange = "lineRangeChart"
)

var temperatures = []float64{32, 35, 42, 55, 65, 72}

func NewLineComparison() *LineComparison {
	return &LineComparison{base{id: "line-comparison", topic: 5, title: "The line chart exception", policy: Static}}
}

func (l *LineComparison) Manifest() page.Manifest {
	return page.Manifest{Surfaces: []string{lineZero, lineRange}}
}

func (l *LineComparison) Init(env Env) error {
	if err := anySurface(env, lineZero, lineRange); err != nil {
		return err
	}
	c := env.Theme().Colors()
	temps := func(color string) []visualization.Series {
		s := visualization.NewSeries("Temperature (°F)", temperatures...)
		s.Color, s.Fill = color, true
		return []visualization.Series{s}
	}
	errs := drawn(env.Charts.Line(lineZero, halfYear, temps(c.Accent), visualization.Options{
		YMin: visualization.Float(0),
		YMax: visualization.Float(80),
	}))
	return multierr.Append(errs, drawn(env.Charts.Line(lineRange, halfYear, temps(c.Success), visualization.Options{
		BeginAtZero: visualization.Bool(false),
		YMin:        visualization.Float(25),
		YMax:        visualization.Float(80),
	})))
}

// PiePreset is one dataset of the pie validity demo.
type PiePreset struct {
	Key    string
	Label  string
	Labels []string
	Data   []float64
}

// Pie presets, in button order.
var PiePresets = []PiePreset{
	{
		Key:    "overlap",
		Label:  "Add overlapping category",
		Labels: []string{"Company A", "Company B", "Company C", "Company D", "Company E"},
		Data:   []float64{42, 28, 18, 12, 25},
	},
	{
		Key:    "survey",
		Label:  "Multi-select survey",
		Labels: []string{"Email", "Social Media", "Search", "Word of Mouth", "Ads"},
		Data:   []float64{65, 48, 42, 35, 28},
	},
	{
		Key:    "valid",
		Label:  "Reset",
		Labels: []string{"Company A", "Company B", "Company C", "Company D"},
		Data:   []float64{42, 28, 18, 12},
	},
}

// FindPiePreset returns the preset with key.
func FindPiePreset(key string) (PiePreset, bool) {
	for _, p := range PiePresets {
		if p.Key == key {
			return p, true
		}
	}
	return PiePreset{}, false
}

// PieValidity swaps the dataset of a market share pie and grades each
// one against the sum-to-100 rule.
type PieValidity struct {
	base
	chart visualization.Chart
}

const (
	pieSurface = "marketPieChart"
	pieBadge   = "pieWarning"
)

var pieButtons = map[string]string{"overlap": "pieAddOverlap", "survey": "pieSurveyData", "valid": "pieReset"}

func NewPieValidity() *PieValidity {
	return &PieValidity{base: base{id: "pie-validity", topic: 5, title: "Pie charts sum to 100%", policy: Mutate}}
}

func (p *PieValidity) Manifest() page.Manifest {
	m := page.Manifest{Surfaces: []string{pieSurface}, Elements: []string{pieBadge}}
	for _, preset := range PiePresets {
		m.Controls = append(m.Controls, page.ControlSpec{
			Group: p.id,
			ID:    pieButtons[preset.Key],
			Key:   preset.Key,
			Type:  page.Button,
			Label: preset.Label,
		})
	}
	return m
}

// Chart returns the live chart.
func (p *PieValidity) Chart() visualization.Chart { return p.chart }

func (p *PieValidity) Init(env Env) error {
	if err := surfaces(env, pieSurface); err != nil {
		return err
	}
	valid, _ := FindPiePreset("valid")
	var err error
	if p.chart, err = env.Charts.Pie(pieSurface, valid.Labels, valid.Data, visualization.Options{}); err != nil {
		return err
	}
	p.grade(env, valid)

	buttons := env.Doc.Controls(p.id)
	for _, b := range buttons {
		key := b.Key()
		b.OnChange(func() {
			preset, ok := FindPiePreset(key)
			if !ok {
				return
			}
			p.apply(env, preset)
			setActive(buttons, key)
		})
	}
	return nil
}

func (p *PieValidity) apply(env Env, preset PiePreset) {
	cfg := p.chart.Config()
	cfg.Labels = append([]string(nil), preset.Labels...)
	if ds := cfg.Dataset(0); ds != nil {
		ds["data"] = floatList(preset.Data)
		ds["backgroundColor"] = strList(env.Theme().PaletteN(len(preset.Data)))
	}
	update(env, p.chart)
	p.grade(env, preset)
}

func (p *PieValidity) grade(env Env, preset PiePreset) {
	v := CheckPie(preset.Data)
	badge(element(env, pieBadge), badgeClass(v.Tier), v.Badge)
}

// ColorCharts contrasts meaningless, misleading and intentional color on
// the same quarterly bars.
type ColorCharts struct{ base }

const (
	colorRainbow = "colorRainbowChart"
	colorMislead = "colorMisleadChart"
	colorIntent  = "colorIntentChart"
)

var quarterlyValues = []float64{120, 95, 140, 110}

func NewColorCharts() *ColorCharts {
	return &ColorCharts{base{id: "color-charts", topic: 5, title: "Color must be intentional", policy: Static}}
}

func (c *ColorCharts) Manifest() page.Manifest {
	return page.Manifest{Surfaces: []string{colorRainbow, colorMislead, colorIntent}}
}

func (c *ColorCharts) Init(env Env) error {
	if err := anySurface(env, colorRainbow, colorMislead, colorIntent); err != nil {
		return err
	}
	th := env.Theme()
	col := th.Colors()
	one := func(values ...float64) []visualization.Series {
		return []visualization.Series{visualization.NewSeries("", values...)}
	}
	grey := th.MutedPalette()[0]

	errs := drawn(env.Charts.Bar(colorRainbow, quarters, one(quarterlyValues...), visualization.Options{
		Colors: th.BadPaletteN(4),
	}))
	errs = multierr.Append(errs, drawn(env.Charts.Bar(colorMislead,
		[]string{"Profit", "Profit", "Loss", "Loss"}, one(120, 95, -40, -25),
		visualization.Options{
			Colors:     []string{col.Danger, col.Danger, col.Success, col.Success},
			TickFormat: &formatKUSD,
		})))
	return multierr.Append(errs, drawn(env.Charts.Bar(colorIntent, quarters, one(quarterlyValues...), visualization.Options{
		Colors: []string{grey, grey, col.Accent, grey},
	})))
}

func floatList(vs []float64) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}
