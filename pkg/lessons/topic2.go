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
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/teradata-labs/vizlessons/pkg/merge"
	"github.com/teradata-labs/vizlessons/pkg/page"
	"github.com/teradata-labs/vizlessons/pkg/story"
	"github.com/teradata-labs/vizlessons/pkg/theme"
	"github.com/teradata-labs/vizlessons/pkg/visualization"
	"go.uber.org/zap"
)

// Satisfaction scores per product, one per quarter.
var (
	products     = []string{"Product A", "Product B", "Product C", "Product D", "Product E", "Product F"}
	satisfaction = map[string][]float64{
		"Product A": {6.8, 7.0, 6.9, 7.1},
		"Product B": {7.2, 7.5, 7.4, 7.6},
		"Product C": {8.1, 8.4, 8.6, 8.9},
		"Product D": {6.5, 6.3, 6.7, 6.4},
		"Product E": {7.0, 7.1, 7.3, 7.2},
		"Product F": {5.9, 6.0, 6.2, 5.8},
	}
)

const focusProduct = "Product C"

// meanScore is the mean of a product's quarters, rounded to one decimal.
func meanScore(product string) float64 {
	vals := satisfaction[product]
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return math.Round(sum/float64(len(vals))*10) / 10
}

// stdDev is the population standard deviation around the rounded mean.
func stdDev(product string) float64 {
	vals := satisfaction[product]
	mean := meanScore(product)
	sq := 0.0
	for _, v := range vals {
		sq += (v - mean) * (v - mean)
	}
	return math.Sqrt(sq / float64(len(vals)))
}

// ranked returns the products sorted by mean score, highest first.
func ranked() ([]string, []float64) {
	names := append([]string(nil), products...)
	sort.SliceStable(names, func(i, j int) bool { return meanScore(names[i]) > meanScore(names[j]) })
	means := make([]float64, len(names))
	for i, n := range names {
		means[i] = meanScore(n)
	}
	return names, means
}

// WalkthroughStep is the copy shown with one framework step.
type WalkthroughStep struct {
	Title    string
	Subtitle string
	Icon     string
	ExpTitle string
	ExpText  string
}

// WalkthroughSteps lists the walkthrough in order. Step 0 is the raw
// starting point.
var WalkthroughSteps = []WalkthroughStep{
	{
		Title:    "Customer Satisfaction by Product Line (Q1–Q4)",
		Subtitle: "Raw data — 24 bars across 6 products and 4 quarters",
		Icon:     "📊",
		ExpTitle: "Starting Point",
		ExpText:  "This is the default grouped bar chart — cluttered, colorful, and hard to read. 24 bars compete for attention with no clear message.",
	},
	{
		Title:    "Customer Satisfaction by Product Line (Q1–Q4)",
		Subtitle: "Step 1: Understand the context",
		Icon:     "🎯",
		ExpTitle: "Step 1 — Understand the Context",
		ExpText:  "Audience: VP of Product. Goal: Decide which product line to invest in. Key message: Product C is outperforming all others. The chart stays the same — but now we know what story to tell.",
	},
	{
		Title:    "Average Customer Satisfaction by Product",
		Subtitle: "Step 2: Choose a simpler display — sorted horizontal bars",
		Icon:     "📐",
		ExpTitle: "Step 2 — Choose an Appropriate Display",
		ExpText:  "We collapsed 4 quarters into averages and switched to a sorted horizontal bar chart. 6 bars instead of 24 — the ranking is immediately visible.",
	},
	{
		Title:    "Average Customer Satisfaction by Product",
		Subtitle: "Step 3: Remove gridlines, reduce ticks, simplify",
		Icon:     "✂️",
		ExpTitle: "Step 3 — Eliminate Clutter",
		ExpText:  "Gridlines gone. Axis ticks reduced. Colors softened to neutral grey. The data speaks without visual noise.",
	},
	{
		Title:    "Average Customer Satisfaction by Product",
		Subtitle: "Step 4: Highlight Product C — the key insight",
		Icon:     "🔦",
		ExpTitle: "Step 4 — Focus Attention",
		ExpText:  "Product C is highlighted in accent color while all others fade to grey. The viewer's eye goes directly to the insight.",
	},
	{
		Title:    "Average Customer Satisfaction by Product",
		Subtitle: "Step 5: Clean typography, white space, alignment",
		Icon:     "🎨",
		ExpTitle: "Step 5 — Think Like a Designer",
		ExpText:  "Larger fonts, better alignment, and intentional white space make the chart feel polished and professional.",
	},
	{
		Title:    "Product C Leads in Customer Satisfaction — Double Down on Investment",
		Subtitle: "Step 6: The chart tells a story with a clear call to action",
		Icon:     "📖",
		ExpTitle: "Step 6 — Tell a Story",
		ExpText:  "The title IS the insight. A reader who only glances at this chart still walks away with the message and the recommended action.",
	},
}

// BuildWalkthrough builds the chart of walkthrough step i.
func BuildWalkthrough(th *theme.Theme, i int) (*visualization.Config, error) {
	c := th.Colors()
	names, means := ranked()
	focus := make([]string, len(names))
	for k, n := range names {
		focus[k] = c.Dim
		if n == focusProduct {
			focus[k] = c.Accent
		}
	}
	sorted := func(colors []string, thickness int, axes merge.Map) (*visualization.Config, error) {
		s := visualization.NewSeries("", means...)
		s.Extra = merge.Map{"maxBarThickness": thickness}
		extra := merge.Map{}
		if axes != nil {
			extra["scales"] = axes
		}
		return visualization.BuildBar(th, names, []visualization.Series{s}, visualization.Options{
			Horizontal: true,
			Colors:     colors,
			YMax:       visualization.Float(10),
			Extra:      extra,
		})
	}
	hidden := merge.Map{"x": merge.Map{"grid": merge.Map{"display": false}, "ticks": merge.Map{"display": false}}}
	designed := merge.Map{
		"x": merge.Map{"display": false},
		"y": merge.Map{"ticks": merge.Map{"color": c.Text, "font": th.Font(13, "600")}},
	}

	switch i {
	case 0, 1:
		series := make([]visualization.Series, len(quarters))
		for q, name := range quarters {
			vals := make([]float64, len(products))
			for p, prod := range products {
				vals[p] = satisfaction[prod][q]
			}
			series[q] = visualization.Series{
				Label:  name,
				Values: vals,
				Color:  th.BadPaletteColor(q),
				Extra:  merge.Map{"borderRadius": 2},
			}
		}
		return visualization.BuildBar(th, products, series, visualization.Options{
			ShowLegend: visualization.Bool(true),
			YMax:       visualization.Float(10),
			Extra: merge.Map{"scales": merge.Map{
				"y": merge.Map{"grid": merge.Map{"color": c.GridLineBad}},
				"x": merge.Map{"grid": merge.Map{"display": true, "color": c.GridLineBad}},
			}},
		})
	case 2:
		return sorted(th.PaletteN(len(names)), 40, nil)
	case 3:
		grey := make([]string, len(names))
		for k := range grey {
			grey[k] = c.Muted
		}
		return sorted(grey, 40, hidden)
	case 4:
		return sorted(focus, 40, hidden)
	case 5, 6:
		cfg, err := sorted(focus, 44, designed)
		if err != nil {
			return nil, err
		}
		cfg.SetOption("layout.padding", merge.Map{"left": 8, "right": 24, "top": 8, "bottom": 8})
		return cfg, nil
	}
	return nil, fmt.Errorf("walkthrough step %d out of range", i)
}

// WalkthroughStory returns the walkthrough as stepper steps.
func WalkthroughStory(th *theme.Theme) []story.Step {
	steps := make([]story.Step, len(WalkthroughSteps))
	for i, s := range WalkthroughSteps {
		steps[i] = story.Step{
			Title: s.Subtitle,
			Text:  s.ExpText,
			Build: func() (*visualization.Config, error) { return BuildWalkthrough(th, i) },
		}
	}
	return steps
}

// Walkthrough applies the framework one step at a time to the same
// satisfaction data. Steps change chart shape, so each one rebuilds.
type Walkthrough struct {
	base
	stepper *story.Stepper
}

const (
	walkContainer = "swd-steps"
	walkSurface   = "walkthrough-chart"
	walkTitle     = "walkthrough-title"
	walkSubtitle  = "walkthrough-subtitle"
	walkExpTitle  = "walkthrough-exp-title"
	walkExpText   = "walkthrough-exp-text"
	walkIcon      = "walkthrough-icon"
)

func NewWalkthrough() *Walkthrough {
	return &Walkthrough{base: base{id: "swd-walkthrough", topic: 2, title: "The framework, step by step", policy: Rebuild}}
}

func (w *Walkthrough) Manifest() page.Manifest {
	m := page.Manifest{
		Surfaces: []string{walkSurface},
		Elements: []string{walkContainer, walkTitle, walkSubtitle, walkExpTitle, walkExpText, walkIcon},
	}
	for i, s := range WalkthroughSteps {
		label := "Start"
		if i > 0 {
			label = s.ExpTitle
		}
		m.Controls = append(m.Controls, page.ControlSpec{
			Group: walkContainer,
			ID:    "swd-step-" + strconv.Itoa(i),
			Key:   strconv.Itoa(i),
			Type:  page.Button,
			Label: label,
		})
	}
	return m
}

// Chart returns the live chart.
func (w *Walkthrough) Chart() visualization.Chart {
	if w.stepper == nil {
		return nil
	}
	return w.stepper.Chart()
}

func (w *Walkthrough) Init(env Env) error {
	if _, ok := env.Doc.Element(walkContainer); !ok {
		return missing(walkContainer)
	}
	if err := surfaces(env, walkSurface); err != nil {
		return err
	}
	w.stepper = story.NewStepper(env.Charts, walkSurface, WalkthroughStory(env.Theme()))
	w.stepper.OnError(func(err error) {
		env.logger().Error("walkthrough step failed", zap.Error(err))
	})

	buttons := env.Doc.Controls(walkContainer)
	for _, b := range buttons {
		key := b.Key()
		step, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		b.OnChange(func() {
			setActive(buttons, key)
			w.show(env, step)
		})
	}
	w.show(env, 0)
	return nil
}

// Show renders step i.
func (w *Walkthrough) show(env Env, i int) {
	if i < 0 || i >= len(WalkthroughSteps) {
		return
	}
	s := WalkthroughSteps[i]
	setText(element(env, walkTitle), s.Title)
	setText(element(env, walkSubtitle), s.Subtitle)
	setText(element(env, walkExpTitle), s.ExpTitle)
	setText(element(env, walkExpText), s.ExpText)
	setText(element(env, walkIcon), s.Icon)
	_ = w.stepper.Render(i)
}

// Audiences, in selector order.
const (
	AudienceCEO           = "ceo"
	AudienceDataScientist = "data-scientist"
	AudienceMarketing     = "marketing"
)

// Audiences lists the audience keys.
var Audiences = []string{AudienceCEO, AudienceDataScientist, AudienceMarketing}

var audienceSurfaces = map[string]string{
	AudienceCEO:           "chart-ceo",
	AudienceDataScientist: "chart-ds",
	AudienceMarketing:     "chart-marketing",
}

// brandColors is the marketing deck palette.
var brandColors = []string{"#ff6b6b", "#feca57", "#48dbfb", "#ff9ff3", "#54a0ff", "#5f27cd"}

// BuildAudience builds the satisfaction chart tailored to audience.
func BuildAudience(th *theme.Theme, audience string) (*visualization.Config, error) {
	c := th.Colors()
	switch audience {
	case AudienceCEO:
		return BuildWalkthrough(th, 5)

	case AudienceDataScientist:
		pts := make([]visualization.Point, len(products))
		labels := make([]any, len(products))
		for i, p := range products {
			pts[i] = visualization.Point{X: float64(i + 1), Y: meanScore(p)}
			labels[i] = fmt.Sprintf("%s: μ=%s (σ=%.2f)", p, strconv.FormatFloat(meanScore(p), 'f', -1, 64), stdDev(p))
		}
		bg := make([]string, 0, theme.PaletteSize)
		for _, col := range th.Palette() {
			bg = append(bg, theme.WithAlpha(col, 0xcc))
		}
		s := visualization.Series{
			Label:       "Mean Satisfaction ± SD",
			Points:      pts,
			PointRadius: visualization.Float(8),
			Extra: merge.Map{
				"backgroundColor":  strList(bg),
				"borderColor":      strList(th.PaletteN(len(products))),
				"borderWidth":      2,
				"pointHoverRadius": 11,
			},
		}
		names := visualization.TickFormat{Names: products, NameOffset: 1}
		return visualization.BuildScatter(th, []visualization.Series{s}, visualization.Options{
			ShowLegend:  visualization.Bool(true),
			BeginAtZero: visualization.Bool(false),
			YMin:        visualization.Float(5),
			YMax:        visualization.Float(10),
			XLabel:      "Product Index",
			YLabel:      "Satisfaction Score (1-10)",
			Extra: merge.Map{
				"plugins": merge.Map{"tooltip": merge.Map{"labels": labels}},
				"scales": merge.Map{"x": merge.Map{
					"min":   0,
					"max":   7,
					"ticks": merge.Map{"format": names.Map()},
				}},
			},
		})

	case AudienceMarketing:
		means := make([]float64, len(products))
		for i, p := range products {
			means[i] = meanScore(p)
		}
		avg := visualization.NewSeries("Avg Satisfaction", means...)
		avg.Extra = merge.Map{"borderRadius": 8, "maxBarThickness": 56, "order": 2}
		cfg, err := visualization.BuildBar(th, products, []visualization.Series{avg}, visualization.Options{
			Colors:     brandColors,
			ShowLegend: visualization.Bool(true),
			YMax:       visualization.Float(10),
		})
		if err != nil {
			return nil, err
		}
		cfg.Datasets = append(cfg.Datasets, merge.Map{
			"type":                 "line",
			"label":                "Trend",
			"data":                 floatList(means),
			"borderColor":          c.Warning,
			"backgroundColor":      "transparent",
			"tension":              0.4,
			"pointRadius":          4,
			"pointBackgroundColor": c.Warning,
			"borderWidth":          2,
			"borderDash":           []any{6, 3},
			"order":                1,
		})
		return cfg, nil
	}
	return nil, fmt.Errorf("unknown audience %q", audience)
}

// AudienceSwitch redraws the satisfaction story for the selected
// audience. Every switch destroys all live charts of the cluster before
// the selected one is built.
type AudienceSwitch struct {
	base
	charts map[string]visualization.Chart
}

const audienceSelect = "audience-select"

func NewAudienceSwitch() *AudienceSwitch {
	return &AudienceSwitch{
		base:   base{id: "audience-switch", topic: 2, title: "Know your audience", policy: Rebuild},
		charts: map[string]visualization.Chart{},
	}
}

func (a *AudienceSwitch) Manifest() page.Manifest {
	m := page.Manifest{Controls: []page.ControlSpec{{
		Group:   a.id,
		ID:      audienceSelect,
		Key:     "audience",
		Type:    page.Select,
		Label:   "Audience",
		Value:   AudienceCEO,
		Options: Audiences,
	}}}
	for _, aud := range Audiences {
		m.Surfaces = append(m.Surfaces, audienceSurfaces[aud])
		m.Elements = append(m.Elements, "audience-"+aud)
	}
	return m
}

// Live returns the live charts by audience.
func (a *AudienceSwitch) Live() map[string]visualization.Chart {
	out := make(map[string]visualization.Chart, len(a.charts))
	for k, v := range a.charts {
		out[k] = v
	}
	return out
}

func (a *AudienceSwitch) Init(env Env) error {
	sel, ok := env.Doc.Control(audienceSelect)
	if !ok {
		return missing(audienceSelect)
	}
	sel.OnChange(func() { a.show(env, sel.Value()) })
	a.show(env, AudienceCEO)
	return nil
}

func (a *AudienceSwitch) show(env Env, audience string) {
	for _, aud := range Audiences {
		if el := element(env, "audience-"+aud); el != nil {
			el.SetVisible(aud == audience)
		}
	}
	a.destroyAll()

	cfg, err := BuildAudience(env.Theme(), audience)
	if err != nil {
		env.logger().Error("audience chart failed", zap.String("audience", audience), zap.Error(err))
		return
	}
	chart, err := env.Charts.Create(audienceSurfaces[audience], cfg)
	if err != nil {
		env.logger().Error("audience chart failed", zap.String("audience", audience), zap.Error(err))
		return
	}
	if chart != nil {
		a.charts[audience] = chart
	}
}

func (a *AudienceSwitch) destroyAll() {
	for k, c := range a.charts {
		visualization.DestroyChart(c)
		delete(a.charts, k)
	}
}
