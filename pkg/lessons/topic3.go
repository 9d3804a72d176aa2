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
	"strconv"

	"github.com/teradata-labs/vizlessons/pkg/merge"
	"github.com/teradata-labs/vizlessons/pkg/page"
	"github.com/teradata-labs/vizlessons/pkg/theme"
	"github.com/teradata-labs/vizlessons/pkg/visualization"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	salesCategories = []string{"Electronics", "Clothing", "Food", "Home", "Sports"}
	salesData       = []float64{42, 31, 56, 24, 38}
)

// junkAxes is the gridline treatment of the deliberately cluttered charts.
func junkAxes(th *theme.Theme, tickSize int) merge.Map {
	axis := merge.Map{
		"grid":  merge.Map{"display": true, "color": junkGridColor, "lineWidth": 2},
		"ticks": merge.Map{"font": th.Font(tickSize, "")},
	}
	return merge.Map{"x": axis, "y": merge.Clone(axis)}
}

// smallTicks shrinks the tick font of both axes.
func smallTicks(th *theme.Theme) merge.Map {
	return merge.Map{
		"x": merge.Map{"ticks": merge.Map{"font": th.Font(10, "")}},
		"y": merge.Map{"ticks": merge.Map{"font": th.Font(10, "")}},
	}
}

// JunkRemover binds seven checkboxes to one bar chart. Every change reads
// the whole panel, derives a JunkEncoding and mutates the live chart.
type JunkRemover struct {
	base
	chart visualization.Chart
}

const (
	junkSurface = "junkRemoverChart"
	junkGroup   = "junk-toggles"
	junkArea    = "junk-chart-area"
	junkInk     = "ink-ratio"
)

func NewJunkRemover() *JunkRemover {
	return &JunkRemover{base: base{id: "junk-remover", topic: 3, title: "Interactive chart junk remover", policy: Mutate}}
}

func (j *JunkRemover) Manifest() page.Manifest {
	labels := map[string]string{
		JunkColors:     "Rainbow colors",
		JunkBorders:    "Heavy borders",
		JunkGridlines:  "Dense gridlines",
		JunkLegend:     "Redundant legend",
		JunkBackground: "Background fill",
		JunkThreeD:     "3D shadow",
		JunkGradients:  "Gradients",
	}
	m := page.Manifest{
		Surfaces: []string{junkSurface},
		Elements: []string{junkArea, junkInk},
	}
	for _, k := range JunkKeys {
		m.Controls = append(m.Controls, page.ControlSpec{
			Group:   junkGroup,
			ID:      "junk-" + k,
			Key:     k,
			Type:    page.Checkbox,
			Label:   labels[k],
			Checked: true,
		})
	}
	return m
}

// Chart returns the live chart.
func (j *JunkRemover) Chart() visualization.Chart { return j.chart }

func (j *JunkRemover) Init(env Env) error {
	if err := surfaces(env, junkSurface); err != nil {
		return err
	}
	state := j.state(env)
	cfg, err := BuildJunkChart(env.Theme(), state)
	if err != nil {
		return err
	}
	if j.chart, err = env.Charts.Create(junkSurface, cfg); err != nil {
		return err
	}
	j.decorate(env, state)

	for _, c := range env.Doc.Controls(junkGroup) {
		c.OnChange(func() { j.apply(env) })
	}
	return nil
}

func (j *JunkRemover) state(env Env) ControlState {
	kinds := make(map[string]page.ControlType, len(JunkKeys))
	for _, k := range JunkKeys {
		kinds[k] = page.Checkbox
	}
	return ReadState(env.Doc, junkGroup, kinds)
}

func (j *JunkRemover) apply(env Env) {
	state := j.state(env)
	if j.chart != nil {
		DeriveJunk(env.Theme(), state).Apply(j.chart.Config())
		update(env, j.chart)
	}
	j.decorate(env, state)
}

// decorate writes the parts of the encoding that live outside the chart.
func (j *JunkRemover) decorate(env Env, state ControlState) {
	enc := DeriveJunk(env.Theme(), state)
	if area := element(env, junkArea); area != nil {
		area.SetStyle("background", enc.BackgroundDecoration)
	}

	ratio := InkRatio(state.Active(), len(state))
	if el := element(env, junkInk); el != nil {
		el.SetText(strconv.Itoa(ratio) + "%")
		el.SetStyle("color", InkTier(ratio).CSSColor())
	}
	env.logger().Debug("junk state applied",
		zap.Int("active", state.Active()),
		zap.Int("ink_ratio", ratio))
}

// BuildJunkChart builds the junk remover chart for a panel state.
func BuildJunkChart(th *theme.Theme, state ControlState) (*visualization.Config, error) {
	enc := DeriveJunk(th, state)
	s := visualization.NewSeries("Monthly Sales ($k)", salesData...)
	s.Extra = merge.Map{"borderRadius": 4}
	cfg, err := visualization.BuildBar(th, salesCategories, []visualization.Series{s}, visualization.Options{
		Colors: enc.Colors,
	})
	if err != nil {
		return nil, err
	}
	enc.Apply(cfg)
	return cfg, nil
}

// CompareCharts draws the cluttered and the clean version of the same
// sales chart side by side.
type CompareCharts struct{ base }

const (
	compareBefore     = "compareBeforeChart"
	compareAfter      = "compareAfterChart"
	compareBeforeArea = "compare-before-area"
)

func NewCompareCharts() *CompareCharts {
	return &CompareCharts{base{id: "compare-charts", topic: 3, title: "Before and after decluttering", policy: Static}}
}

func (c *CompareCharts) Manifest() page.Manifest {
	return page.Manifest{
		Surfaces: []string{compareBefore, compareAfter},
		Elements: []string{compareBeforeArea},
	}
}

func (c *CompareCharts) Init(env Env) error {
	if err := anySurface(env, compareBefore, compareAfter); err != nil {
		return err
	}
	th := env.Theme()
	var errs error

	if env.Charts.HasSurface(compareBefore) {
		errs = multierr.Append(errs, c.before(env, th))
	}
	errs = multierr.Append(errs, drawn(env.Charts.Bar(compareAfter, salesCategories,
		[]visualization.Series{visualization.NewSeries("", salesData...)},
		visualization.Options{
			Colors: highlight(th, len(salesData), 2, 0x55),
			Extra: merge.Map{
				"aspectRatio": 1.6,
				"scales": merge.Merge(smallTicks(th), merge.Map{
					"y": merge.Map{"grid": merge.Map{"lineWidth": 0.5}},
				}),
			},
		})))
	return errs
}

func (c *CompareCharts) before(env Env, th *theme.Theme) error {
	s := visualization.NewSeries("Sales ($k)", salesData...)
	s.Extra = merge.Map{"borderColor": junkBorderColor, "borderWidth": 3, "borderRadius": 0}
	cfg, err := visualization.BuildBar(th, salesCategories, []visualization.Series{s}, visualization.Options{
		Colors:     th.BadPaletteN(len(salesData)),
		ShowLegend: visualization.Bool(true),
		Extra: merge.Map{
			"aspectRatio": 1.6,
			"plugins":     merge.Map{"legend": merge.Map{"labels": merge.Map{"font": th.Font(11, "")}}},
			"scales":      junkAxes(th, 10),
		},
	})
	if err != nil {
		return err
	}
	cfg.AddPlugin(visualization.ShadowPlugin)
	if err := drawn(env.Charts.Create(compareBefore, cfg)); err != nil {
		return err
	}
	if area := element(env, compareBeforeArea); area != nil {
		area.SetStyle("background", junkBackground)
	}
	return nil
}

// highlight colors index i in the accent and fades the rest with alpha.
func highlight(th *theme.Theme, n, i int, alpha uint8) []string {
	accent := th.Colors().Accent
	out := make([]string, n)
	for k := range out {
		if k == i {
			out[k] = accent
		} else {
			out[k] = theme.WithAlpha(accent, alpha)
		}
	}
	return out
}

// SpotTheJunk is the dashboard of bad and good pairs: an eight-slice pie
// against a sorted bar, and a decorated line against a plain one.
type SpotTheJunk struct{ base }

const (
	spotBadPie      = "spotBadPie"
	spotGoodBar     = "spotGoodBar"
	spotBadLine     = "spotBadLine"
	spotGoodLine    = "spotGoodLine"
	spotBadLineArea = "spot-bad-line-area"
)

var (
	segmentLabels = []string{"Segment A", "Segment B", "Segment C", "Segment D", "Segment E", "Segment F", "Segment G", "Segment H"}
	segmentData   = []float64{18, 15, 12, 11, 10, 14, 9, 11}
	halfYear      = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	spotLineData  = []float64{12, 19, 14, 25, 22, 30}
)

func NewSpotTheJunk() *SpotTheJunk {
	return &SpotTheJunk{base{id: "spot-the-junk", topic: 3, title: "Spot the junk", policy: Static}}
}

func (s *SpotTheJunk) Manifest() page.Manifest {
	return page.Manifest{
		Surfaces: []string{spotBadPie, spotGoodBar, spotBadLine, spotGoodLine},
		Elements: []string{spotBadLineArea},
	}
}

func (s *SpotTheJunk) Init(env Env) error {
	if err := anySurface(env, spotBadPie, spotGoodBar, spotBadLine, spotGoodLine); err != nil {
		return err
	}
	th := env.Theme()
	var errs error
	if env.Charts.HasSurface(spotBadPie) {
		errs = multierr.Append(errs, s.badPie(env, th))
	}

	bar := visualization.NewSeries("", segmentData...)
	bar.Extra = merge.Map{"borderRadius": 4, "maxBarThickness": 28}
	errs = multierr.Append(errs, drawn(env.Charts.Bar(spotGoodBar, segmentLabels, []visualization.Series{bar},
		visualization.Options{
			Horizontal: true,
			Colors:     highlight(th, len(segmentData), 0, 0x44),
			Extra: merge.Map{"scales": merge.Merge(smallTicks(th), merge.Map{
				"x": merge.Map{"grid": merge.Map{"lineWidth": 0.5}},
			})},
		})))

	if env.Charts.HasSurface(spotBadLine) {
		errs = multierr.Append(errs, s.badLine(env, th))
	}

	good := visualization.NewSeries("", spotLineData...)
	good.Color = th.Colors().Accent
	good.Extra = merge.Map{"backgroundColor": theme.WithAlpha(good.Color, 0x15)}
	errs = multierr.Append(errs, drawn(env.Charts.Line(spotGoodLine, halfYear, []visualization.Series{good},
		visualization.Options{
			ShowLegend: visualization.Bool(false),
			Extra: merge.Map{"scales": merge.Merge(smallTicks(th), merge.Map{
				"x": merge.Map{"grid": merge.Map{"display": false}},
				"y": merge.Map{"grid": merge.Map{"lineWidth": 0.5}},
			})},
		})))
	return errs
}

func (s *SpotTheJunk) badPie(env Env, th *theme.Theme) error {
	cfg, err := visualization.BuildPie(th, segmentLabels, segmentData, visualization.Options{
		Colors: th.BadPalette(),
		Extra: merge.Map{"plugins": merge.Map{"legend": merge.Map{"labels": merge.Map{
			"font":    th.Font(10, ""),
			"padding": 8,
		}}}},
	})
	if err != nil {
		return err
	}
	cfg.Dataset(0)["borderColor"] = "#000"
	cfg.AddPlugin(visualization.ShadowPlugin)
	return drawn(env.Charts.Create(spotBadPie, cfg))
}

func (s *SpotTheJunk) badLine(env Env, th *theme.Theme) error {
	red := th.BadPaletteColor(0)
	line := visualization.NewSeries("Revenue", spotLineData...)
	line.Color = red
	line.Fill = true
	line.PointRadius = visualization.Float(6)
	line.Extra = merge.Map{
		"backgroundColor":      "rgba(255,0,0,0.15)",
		"borderWidth":          4,
		"pointBackgroundColor": red,
		"tension":              0.3,
	}
	cfg, err := visualization.BuildLine(th, halfYear, []visualization.Series{line}, visualization.Options{
		ShowLegend: visualization.Bool(true),
		Extra: merge.Map{
			"plugins": merge.Map{"legend": merge.Map{"labels": merge.Map{"font": th.Font(10, "")}}},
			"scales":  junkAxes(th, 10),
		},
	})
	if err != nil {
		return err
	}
	cfg.AddPlugin(visualization.ShadowPlugin)
	if err := drawn(env.Charts.Create(spotBadLine, cfg)); err != nil {
		return err
	}
	if area := element(env, spotBadLineArea); area != nil {
		area.SetStyle("background", junkBackground)
	}
	return nil
}
