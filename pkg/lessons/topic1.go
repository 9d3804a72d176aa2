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
	"github.com/teradata-labs/vizlessons/pkg/merge"
	"github.com/teradata-labs/vizlessons/pkg/page"
	"github.com/teradata-labs/vizlessons/pkg/story"
	"github.com/teradata-labs/vizlessons/pkg/theme"
	"github.com/teradata-labs/vizlessons/pkg/visualization"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	airlines     = []string{"Delta", "American", "United", "JetBlue", "Southwest"}
	airlineDelay = []float64{-1.2, -0.5, 3.2, 4.8, 5.1}
)

const (
	distanceLabel = "Distance (miles)"
	delayLabel    = "Arrival Delay (min)"
)

// BadScatter plots every airline and every flight dimension at once.
type BadScatter struct{ base }

const badScatterSurface = "bad-scatter-chart"

func NewBadScatter() *BadScatter {
	return &BadScatter{base{id: "bad-scatter", topic: 1, title: "All dimensions at once", policy: Static}}
}

func (b *BadScatter) Manifest() page.Manifest {
	return page.Manifest{Surfaces: []string{badScatterSurface}}
}

func (b *BadScatter) Init(env Env) error {
	if err := surfaces(env, badScatterSurface); err != nil {
		return err
	}
	th, gen := env.Theme(), env.data()
	series := make([]visualization.Series, len(airlines))
	for i, name := range airlines {
		series[i] = visualization.Series{
			Label:      name,
			Points:     gen.Flights(40, airlineDelay[i]*5),
			Color:      th.BadPaletteColor(i),
			PointRadii: gen.Radii(40, 3, 7),
		}
	}
	return drawn(env.Charts.Scatter(badScatterSurface, series, visualization.Options{
		Title:  "Airline Flight Performance — All Dimensions at Once",
		XLabel: distanceLabel,
		YLabel: delayLabel,
	}))
}

// AirlineBeforeAfter draws the cluttered scatter and the sorted delay bar
// that replaces it.
type AirlineBeforeAfter struct{ base }

const (
	airlineBefore = "before-chart"
	airlineAfter  = "after-chart"
)

func NewAirlineBeforeAfter() *AirlineBeforeAfter {
	return &AirlineBeforeAfter{base{id: "airline-before-after", topic: 1, title: "Before and after", policy: Static}}
}

func (a *AirlineBeforeAfter) Manifest() page.Manifest {
	return page.Manifest{Surfaces: []string{airlineBefore, airlineAfter}}
}

func (a *AirlineBeforeAfter) Init(env Env) error {
	if err := anySurface(env, airlineBefore, airlineAfter); err != nil {
		return err
	}
	th, gen := env.Theme(), env.data()

	series := make([]visualization.Series, len(airlines))
	for i, name := range airlines {
		r := gen.Uniform(4, 4)
		series[i] = visualization.Series{
			Label:       name,
			Points:      gen.Points(35, airlineDelay[i]),
			Color:       th.BadPaletteColor(i),
			PointRadius: &r,
		}
	}
	errs := drawn(env.Charts.Scatter(airlineBefore, series, visualization.Options{
		XLabel: distanceLabel,
		YLabel: delayLabel,
	}))

	cfg, err := BuildAirlineDelays(th)
	if err != nil {
		return multierr.Append(errs, err)
	}
	return multierr.Append(errs, drawn(env.Charts.Create(airlineAfter, cfg)))
}

// BuildAirlineDelays builds the sorted horizontal delay bar with the best
// airline highlighted.
func BuildAirlineDelays(th *theme.Theme) (*visualization.Config, error) {
	colors := make([]string, len(airlineDelay))
	for i := range colors {
		colors[i] = theme.WithAlpha(th.PaletteColor(0), 0x88)
	}
	colors[0] = th.Colors().Success

	return visualization.BuildBar(th, airlines, []visualization.Series{visualization.NewSeries("", airlineDelay...)},
		visualization.Options{
			Horizontal:  true,
			Colors:      colors,
			BeginAtZero: visualization.Bool(false),
			TickFormat:  &visualization.FormatSignedMin,
			Extra: merge.Map{
				"plugins": merge.Map{"tooltip": merge.Map{"format": visualization.FormatSignedMin.Map()}},
				"scales": merge.Map{"y": merge.Map{
					"ticks": merge.Map{"color": th.Colors().Text, "font": th.Font(13, "600")},
				}},
			},
		})
}

// ComplexitySlider adds one visual dimension per slider step to the same
// revenue chart and lowers its readability score. Each step rebuilds the
// chart because steps three and up mix chart kinds.
type ComplexitySlider struct {
	base
	stepper *story.Stepper
}

const (
	complexitySurface  = "complexity-chart"
	complexitySlider   = "dimension-slider"
	complexityLabel    = "dimension-label"
	complexityScore    = "readability-score"
	complexityTitle    = "complexity-title"
	complexitySubtitle = "complexity-subtitle"
)

// ComplexityStep is the copy of one slider position.
type ComplexityStep struct {
	Label    string
	Title    string
	Subtitle string
	Stars    string
}

// ComplexitySteps lists the slider positions in order.
var ComplexitySteps = []ComplexityStep{
	{"1 — Bars Only", "Step 1: Simple Bars", "Revenue by product — one clear dimension", "★★★★★"},
	{"2 — Add Color", "Step 2: Color-Encoded Categories", "Each product gets a unique color — decorative, not informative", "★★★★☆"},
	{"3 — Add Second Axis", "Step 3: Dual Axis (Growth %)", "A line on a second y-axis — now the viewer must track two scales", "★★★☆☆"},
	{"4 — Add Data Labels", "Step 4: Every Number Labeled", "Data labels on bars AND line — text competes with visuals", "★★☆☆☆"},
	{"5 — Add Patterns & Borders", "Step 5: \"Just One More Thing…\"", "Borders, patterns, extra annotations — total chart junk", "★☆☆☆☆"},
}

var (
	widgets       = []string{"Widget A", "Widget B", "Widget C", "Widget D", "Widget E"}
	widgetRevenue = []float64{420, 380, 310, 270, 190}
	widgetGrowth  = []float64{12, -3, 8, 22, -7}
	widgetMargin  = []float64{34, 28, 41, 19, 37}
)

func NewComplexitySlider() *ComplexitySlider {
	return &ComplexitySlider{base: base{id: "complexity-slider", topic: 1, title: "Every added dimension costs readability", policy: Rebuild}}
}

func (c *ComplexitySlider) Manifest() page.Manifest {
	return page.Manifest{
		Surfaces: []string{complexitySurface},
		Elements: []string{complexityLabel, complexityScore, complexityTitle, complexitySubtitle},
		Controls: []page.ControlSpec{{
			Group: c.id,
			ID:    complexitySlider,
			Key:   "dimensions",
			Type:  page.Slider,
			Label: "Dimensions",
			Value: "1",
			Min:   1,
			Max:   float64(len(ComplexitySteps)),
			Step:  1,
		}},
	}
}

func (c *ComplexitySlider) Init(env Env) error {
	if err := surfaces(env, complexitySurface); err != nil {
		return err
	}
	slider, ok := env.Doc.Control(complexitySlider)
	if !ok {
		return missing(complexitySlider)
	}

	c.stepper = story.NewStepper(env.Charts, complexitySurface, ComplexityStory(env.Theme()))
	c.stepper.OnError(func(err error) {
		env.logger().Error("complexity step failed", zap.Error(err))
	})

	slider.OnChange(func() { c.render(env, int(slider.Number())) })
	c.render(env, 1)
	return nil
}

// ComplexityStory returns the slider positions as narrative steps.
func ComplexityStory(th *theme.Theme) []story.Step {
	steps := make([]story.Step, len(ComplexitySteps))
	for i, s := range ComplexitySteps {
		n := i + 1
		steps[i] = story.Step{
			Title: s.Title,
			Text:  s.Subtitle,
			Build: func() (*visualization.Config, error) { return BuildComplexity(th, n) },
		}
	}
	return steps
}

// Chart returns the live chart.
func (c *ComplexitySlider) Chart() visualization.Chart {
	if c.stepper == nil {
		return nil
	}
	return c.stepper.Chart()
}

func (c *ComplexitySlider) render(env Env, step int) {
	step = min(max(step, 1), len(ComplexitySteps))
	s := ComplexitySteps[step-1]
	setText(element(env, complexityLabel), s.Label)
	setText(element(env, complexityScore), s.Stars)
	setText(element(env, complexityTitle), s.Title)
	setText(element(env, complexitySubtitle), s.Subtitle)
	_ = c.stepper.Render(step - 1)
}

// BuildComplexity builds the chart of slider position step (1-based).
func BuildComplexity(th *theme.Theme, step int) (*visualization.Config, error) {
	c := th.Colors()
	colors := th.PaletteN(len(widgets))
	if step == 1 {
		colors = []string{c.Accent, c.Accent, c.Accent, c.Accent, c.Accent}
	}
	bars := visualization.NewSeries("Revenue ($K)", widgetRevenue...)
	bars.Extra = merge.Map{"type": "bar", "yAxisID": "y", "order": 2}
	if step >= 5 {
		bars.Extra["borderColor"] = strList(th.BadPaletteN(len(widgets)))
		bars.Extra["borderWidth"] = 3
	}

	cfg, err := visualization.BuildBar(th, widgets, []visualization.Series{bars}, visualization.Options{
		Colors:     colors,
		ShowLegend: visualization.Bool(step >= 2),
		TickFormat: &visualization.FormatThousandsUSD,
		Extra: merge.Map{"scales": merge.Map{
			"y": merge.Map{"title": th.AxisTitle("Revenue ($K)", "")},
		}},
	})
	if err != nil {
		return nil, err
	}

	if step >= 3 {
		cfg.Datasets = append(cfg.Datasets, merge.Map{
			"type":                 "line",
			"label":                "Growth %",
			"data":                 floatList(widgetGrowth),
			"borderColor":          c.Warning,
			"backgroundColor":      theme.WithAlpha(c.Warning, 0x30),
			"borderWidth":          2.5,
			"tension":              0.4,
			"pointRadius":          5,
			"pointBackgroundColor": c.Warning,
			"yAxisID":              "y2",
			"order":                1,
		})
		cfg.SetOption("scales.y2", merge.Map{
			"position": "right",
			"grid":     merge.Map{"drawOnChartArea": false},
			"ticks":    merge.Map{"color": c.Warning, "format": visualization.FormatPercent.Map()},
			"title":    th.AxisTitle("Growth %", c.Warning),
		})
	}
	if step >= 5 {
		cfg.Datasets = append(cfg.Datasets, merge.Map{
			"type":                 "line",
			"label":                "Margin %",
			"data":                 floatList(widgetMargin),
			"borderColor":          c.Danger,
			"borderDash":           []any{6, 4},
			"backgroundColor":      theme.WithAlpha(c.Danger, 0x30),
			"borderWidth":          2,
			"tension":              0.3,
			"pointRadius":          4,
			"pointBackgroundColor": c.Danger,
			"yAxisID":              "y2",
			"order":                0,
		})
	}
	if step >= 4 {
		cfg.AddPlugin(visualization.ValueLabelsPlugin(c.Text, "bold 11px "+th.FontFamily(),
			visualization.FormatThousandsUSD, visualization.FormatPercent))
	}
	return cfg, nil
}

// GeneralsDashboard is the two-chart executive dashboard: regional
// revenue and the monthly trend.
type GeneralsDashboard struct{ base }

const (
	dashboardBar  = "dashboard-bar"
	dashboardLine = "dashboard-line"
)

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func NewGeneralsDashboard() *GeneralsDashboard {
	return &GeneralsDashboard{base{id: "generals-dashboard", topic: 1, title: "A dashboard for the generals", policy: Static}}
}

func (g *GeneralsDashboard) Manifest() page.Manifest {
	return page.Manifest{Surfaces: []string{dashboardBar, dashboardLine}}
}

func (g *GeneralsDashboard) Init(env Env) error {
	if err := anySurface(env, dashboardBar, dashboardLine); err != nil {
		return err
	}
	accent := env.Theme().Colors().Accent

	errs := drawn(env.Charts.Bar(dashboardBar,
		[]string{"North America", "Europe", "Asia-Pacific", "Latin America"},
		[]visualization.Series{visualization.NewSeries("", 980, 620, 510, 290)},
		visualization.Options{
			Title: "Revenue by Region ($K)",
			Colors: []string{
				accent,
				theme.WithAlpha(accent, 0x99),
				theme.WithAlpha(accent, 0x66),
				theme.WithAlpha(accent, 0x44),
			},
			TickFormat: &visualization.FormatThousandsUSD,
		}))

	revenue := visualization.NewSeries("Revenue", 165, 172, 180, 178, 195, 205, 198, 212, 220, 235, 242, 260)
	revenue.Color, revenue.Fill = accent, true
	return multierr.Append(errs, drawn(env.Charts.Line(dashboardLine, months, []visualization.Series{revenue},
		visualization.Options{
			Title:      "Monthly Revenue, Last 12 Months ($K)",
			TickFormat: &visualization.FormatThousandsUSD,
		})))
}
