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
	"github.com/teradata-labs/vizlessons/pkg/theme"
	"github.com/teradata-labs/vizlessons/pkg/visualization"
	"go.uber.org/multierr"
)

// TitleType is one of the three ways to title a chart.
type TitleType struct {
	Key   string
	Title string
	Badge string
	Class string
}

// TitleTypes lists the title types from worst to best.
var TitleTypes = []TitleType{
	{Key: "technical", Title: "Figure 3.2", Badge: "❌ The worst", Class: page.ClassDanger},
	{Key: "descriptive", Title: "Quarterly Revenue, FY2024", Badge: "⚠️ OK but passive", Class: page.ClassDanger},
	{Key: "story", Title: "Revenue Dropped 23% in Q3 After Product Launch Delays", Badge: "✅ The best", Class: page.ClassSafe},
}

// headline is the large chart title of the title demos.
func headline(th *theme.Theme, text string) merge.Map {
	return merge.Map{
		"display": true,
		"text":    text,
		"color":   th.Colors().Text,
		"font":    th.Font(16, "700"),
		"padding": merge.Map{"bottom": 20},
	}
}

// buildTitled builds a single-series bar chart under a headline.
func buildTitled(th *theme.Theme, labels []string, data []float64, colors []string, title string) (*visualization.Config, error) {
	return visualization.BuildBar(th, labels, []visualization.Series{visualization.NewSeries("", data...)},
		visualization.Options{
			Colors:     colors,
			TickFormat: &visualization.FormatMillionsUSD,
			Extra:      merge.Map{"plugins": merge.Map{"title": headline(th, title)}},
		})
}

// TitleTypesDemo swaps the title of one revenue chart between the three
// title types and grades each with a badge.
type TitleTypesDemo struct {
	base
	chart visualization.Chart
}

const (
	titleTypeSurface = "title-type-chart"
	titleTypeGroup   = "title-type-steps"
	titleTypeLabel   = "title-type-label"
)

func NewTitleTypes() *TitleTypesDemo {
	return &TitleTypesDemo{base: base{id: "title-types", topic: 4, title: "Three types of titles", policy: Mutate}}
}

func (t *TitleTypesDemo) Manifest() page.Manifest {
	m := page.Manifest{Surfaces: []string{titleTypeSurface}, Elements: []string{titleTypeLabel}}
	for _, tt := range TitleTypes {
		m.Controls = append(m.Controls, page.ControlSpec{
			Group: titleTypeGroup,
			ID:    "title-type-" + tt.Key,
			Key:   tt.Key,
			Type:  page.Button,
			Label: tt.Key,
		})
	}
	return m
}

// Chart returns the live chart.
func (t *TitleTypesDemo) Chart() visualization.Chart { return t.chart }

func (t *TitleTypesDemo) Init(env Env) error {
	if err := surfaces(env, titleTypeSurface); err != nil {
		return err
	}
	th := env.Theme()
	c := th.Colors()
	cfg, err := buildTitled(th, quarters, []float64{2.1, 2.3, 1.8, 2.0},
		[]string{c.Accent, c.Accent, c.Danger, c.Accent}, TitleTypes[0].Title)
	if err != nil {
		return err
	}
	if t.chart, err = env.Charts.Create(titleTypeSurface, cfg); err != nil {
		return err
	}

	buttons := env.Doc.Controls(titleTypeGroup)
	for _, b := range buttons {
		key := b.Key()
		b.OnChange(func() {
			setActive(buttons, key)
			t.apply(env, key)
		})
	}
	return nil
}

func (t *TitleTypesDemo) apply(env Env, key string) {
	for _, tt := range TitleTypes {
		if tt.Key != key {
			continue
		}
		t.chart.Config().SetOption("plugins.title.text", tt.Title)
		update(env, t.chart)
		badge(element(env, titleTypeLabel), tt.Class, tt.Badge)
		return
	}
}

// LiveTitle redraws a chart title as the reader types it.
type LiveTitle struct {
	base
	chart visualization.Chart
}

const (
	liveTitleSurface = "live-title-chart"
	liveTitleInput   = "title-input"
	liveTitleGroup   = "title-suggestions"
)

// TitleSuggestions are story titles the reader can try with one click.
var TitleSuggestions = []string{
	"East Leads All Regions at $5.8M",
	"East Sells Twice as Much as West",
	"West Lags Behind Every Other Region",
}

// LiveTitleText is the title drawn for input; an empty input draws a
// single space so the title keeps its height.
func LiveTitleText(input string) string {
	if input == "" {
		return " "
	}
	return input
}

func NewLiveTitle() *LiveTitle {
	return &LiveTitle{base: base{id: "live-title", topic: 4, title: "Write your own title", policy: Mutate}}
}

func (l *LiveTitle) Manifest() page.Manifest {
	m := page.Manifest{
		Surfaces: []string{liveTitleSurface},
		Controls: []page.ControlSpec{{
			Group: l.id,
			ID:    liveTitleInput,
			Key:   "title",
			Type:  page.TextBox,
			Label: "Chart title",
			Value: "Sales by Region",
		}},
	}
	for i, s := range TitleSuggestions {
		m.Controls = append(m.Controls, page.ControlSpec{
			Group: liveTitleGroup,
			ID:    liveTitleGroup + "-" + string(rune('a'+i)),
			Key:   s,
			Type:  page.Button,
			Label: s,
			Value: s,
		})
	}
	return m
}

// Chart returns the live chart.
func (l *LiveTitle) Chart() visualization.Chart { return l.chart }

func (l *LiveTitle) Init(env Env) error {
	if err := surfaces(env, liveTitleSurface); err != nil {
		return err
	}
	th := env.Theme()
	c := th.Colors()
	cfg, err := buildTitled(th, []string{"North", "South", "East", "West"}, []float64{4.2, 3.1, 5.8, 2.9},
		[]string{c.Accent, c.Accent, c.Success, c.Accent}, "Sales by Region")
	if err != nil {
		return err
	}
	if l.chart, err = env.Charts.Create(liveTitleSurface, cfg); err != nil {
		return err
	}

	input, ok := env.Doc.Control(liveTitleInput)
	if !ok {
		return nil
	}
	input.OnChange(func() { l.setTitle(env, input.Value()) })
	for _, b := range env.Doc.Controls(liveTitleGroup) {
		title := b.Value()
		b.OnChange(func() {
			input.SetValue(title)
			l.setTitle(env, title)
		})
	}
	return nil
}

func (l *LiveTitle) setTitle(env Env, text string) {
	l.chart.Config().SetOption("plugins.title.text", LiveTitleText(text))
	update(env, l.chart)
}

// SubtitleChart compares three sectors where the subtitle carries the
// takeaway.
type SubtitleChart struct{ base }

const subtitleSurface = "subtitle-chart"

func NewSubtitleChart() *SubtitleChart {
	return &SubtitleChart{base{id: "subtitle-chart", topic: 4, title: "Subtitle strategy", policy: Static}}
}

func (s *SubtitleChart) Manifest() page.Manifest {
	return page.Manifest{Surfaces: []string{subtitleSurface}}
}

func (s *SubtitleChart) Init(env Env) error {
	if err := surfaces(env, subtitleSurface); err != nil {
		return err
	}
	c := env.Theme().Colors()
	tech := visualization.NewSeries("Tech", 0, 2, 1, 3, 5, 8, 10, 12, 14, 16, 18, 22)
	tech.Color = c.Accent
	retail := visualization.NewSeries("Retail", 0, -2, -8, -15, -12, -8, -5, -2, 1, 3, 5, 4)
	retail.Color = c.Warning
	services := visualization.NewSeries("Services", 0, -5, -18, -35, -40, -38, -32, -28, -25, -22, -20, -18)
	services.Color = c.Danger
	services.Extra = merge.Map{"borderWidth": 3.5}

	return drawn(env.Charts.Line(subtitleSurface, months, []visualization.Series{tech, retail, services},
		visualization.Options{
			ShowLegend:  visualization.Bool(true),
			BeginAtZero: visualization.Bool(false),
			YMin:        visualization.Float(-45),
			YMax:        visualization.Float(25),
			TickFormat:  &visualization.FormatSignedPct,
		}))
}

// TitleGallery draws the four small charts of the story title gallery.
type TitleGallery struct{ base }

var gallerySurfaces = []string{"gallery-chart-1", "gallery-chart-2", "gallery-chart-3", "gallery-chart-4"}

func NewTitleGallery() *TitleGallery {
	return &TitleGallery{base{id: "title-gallery", topic: 4, title: "Story title gallery", policy: Static}}
}

func (g *TitleGallery) Manifest() page.Manifest {
	return page.Manifest{Surfaces: append([]string(nil), gallerySurfaces...)}
}

func (g *TitleGallery) Init(env Env) error {
	if err := anySurface(env, gallerySurfaces...); err != nil {
		return err
	}
	c := env.Theme().Colors()
	last := []string{c.AccentLight, c.AccentLight, c.AccentLight, c.Success}
	one := func(values ...float64) []visualization.Series {
		return []visualization.Series{visualization.NewSeries("", values...)}
	}

	errs := drawn(env.Charts.Bar(gallerySurfaces[0], []string{"2021", "2022", "2023", "2024"}, one(3.2, 3.5, 3.9, 4.5),
		visualization.Options{Colors: last, TickFormat: &visualization.FormatMillionsUSD}))
	errs = multierr.Append(errs, drawn(env.Charts.Bar(gallerySurfaces[1], quarters, one(800, 950, 1100, 2000),
		visualization.Options{Colors: last})))

	tickets := visualization.NewSeries("Tickets", 120, 115, 130, 380, 410, 360)
	tickets.Color = c.Danger
	errs = multierr.Append(errs, drawn(env.Charts.Line(gallerySurfaces[2], halfYear,
		[]visualization.Series{tickets}, visualization.Options{})))

	nps := visualization.NewSeries("NPS", 58, 61, 64, 67, 70, 72)
	nps.Color = c.Success
	return multierr.Append(errs, drawn(env.Charts.Line(gallerySurfaces[3],
		[]string{"Q1 '23", "Q2 '23", "Q3 '23", "Q4 '23", "Q1 '24", "Q2 '24"},
		[]visualization.Series{nps}, visualization.Options{
			BeginAtZero: visualization.Bool(false),
			YMin:        visualization.Float(50),
			YMax:        visualization.Float(80),
		})))
}
