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
	"sync"

	"github.com/teradata-labs/vizlessons/pkg/merge"
	"github.com/teradata-labs/vizlessons/pkg/page"
	"github.com/teradata-labs/vizlessons/pkg/sampledata"
	"github.com/teradata-labs/vizlessons/pkg/story"
	"github.com/teradata-labs/vizlessons/pkg/theme"
	"github.com/teradata-labs/vizlessons/pkg/visualization"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// StoryArc walks the preprint story through its narrative steps. The
// challenge and resolution steps each own a chart; every step change
// destroys both and schedules the current step's chart, so a quick
// sequence of clicks builds only the last one.
type StoryArc struct {
	base

	mu     sync.Mutex
	seq    *story.Sequence
	charts map[string]visualization.Chart
}

const (
	storyContainer  = "preprint-story"
	storySteps      = 5
	storyChallenge  = 1
	storyResolution = 3
	qbioSurface     = "chart-qbio-growth"
	resolutionChart = "chart-preprint-resolution"
)

func NewStoryArc() *StoryArc {
	return &StoryArc{
		base:   base{id: "story-arc", topic: 6, title: "The story arc", policy: Rebuild},
		charts: map[string]visualization.Chart{},
	}
}

func (s *StoryArc) Manifest() page.Manifest {
	return story.Manifest(storyContainer, storySteps).Merge(page.Manifest{
		Surfaces: []string{qbioSurface, resolutionChart},
	})
}

// Sequence returns the bound step sequence.
func (s *StoryArc) Sequence() *story.Sequence { return s.seq }

// Live returns the live charts by surface.
func (s *StoryArc) Live() map[string]visualization.Chart {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]visualization.Chart, len(s.charts))
	for k, v := range s.charts {
		out[k] = v
	}
	return out
}

func (s *StoryArc) Init(env Env) error {
	s.seq = story.Bind(env.Doc, storyContainer, storySteps)
	if s.seq == nil {
		return missing(storyContainer)
	}
	gen := env.data()
	qbio := gen.QBio()
	bio := gen.BioRxiv(qbio.Labels)
	sched := env.scheduler()

	s.seq.OnShow(func(step int) {
		s.destroyAll()
		sched.Schedule(func() { s.build(env, qbio, bio, step) })
	})
	s.seq.Show(0)
	return nil
}

func (s *StoryArc) build(env Env, qbio sampledata.Preprints, bio []float64, step int) {
	surface, cfg, err := BuildStoryStep(env.Theme(), qbio, bio, step)
	if err != nil {
		env.logger().Error("story chart failed", zap.Int("step", step), zap.Error(err))
		return
	}
	if cfg == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq.Current() != step {
		return
	}
	visualization.DestroyChart(s.charts[surface])
	delete(s.charts, surface)
	chart, err := env.Charts.Create(surface, cfg)
	if err != nil {
		env.logger().Error("story chart failed", zap.Int("step", step), zap.Error(err))
		return
	}
	if chart != nil {
		s.charts[surface] = chart
	}
}

func (s *StoryArc) destroyAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, c := range s.charts {
		visualization.DestroyChart(c)
		delete(s.charts, k)
	}
}

// BuildStoryStep returns the surface and chart of a story step, or a nil
// configuration for steps without a chart.
func BuildStoryStep(th *theme.Theme, qbio sampledata.Preprints, bio []float64, step int) (string, *visualization.Config, error) {
	c := th.Colors()
	switch step {
	case storyChallenge:
		s := visualization.NewSeries("q-bio submissions", qbio.QBio...)
		s.Color = c.Accent
		cfg, err := visualization.BuildLine(th, qbio.Labels, []visualization.Series{s}, visualization.Options{
			Title: "arXiv q-bio: Monthly Submissions",
			Extra: merge.Map{"plugins": merge.Map{"annotation": false}},
		})
		return qbioSurface, cfg, err
	case storyResolution:
		q := visualization.NewSeries("q-bio (arXiv)", qbio.QBio...)
		q.Color = c.Accent
		b := visualization.NewSeries("bioRxiv", bio...)
		b.Color = c.Success
		cfg, err := visualization.BuildLine(th, qbio.Labels, []visualization.Series{q, b}, visualization.Options{
			Title: "bioRxiv Absorbed the Biology Preprint Growth",
		})
		return resolutionChart, cfg, err
	}
	return "", nil, nil
}

// OneChartPerPoint contrasts one overloaded chart with the two sequential
// charts that make one point each.
type OneChartPerPoint struct{ base }

const (
	overloadedSurface  = "chart-overloaded"
	sequentialSurface1 = "chart-sequential-1"
	sequentialSurface2 = "chart-sequential-2"
)

func NewOneChartPerPoint() *OneChartPerPoint {
	return &OneChartPerPoint{base{id: "one-chart-per-point", topic: 6, title: "One chart per point", policy: Static}}
}

func (o *OneChartPerPoint) Manifest() page.Manifest {
	return page.Manifest{Surfaces: []string{overloadedSurface, sequentialSurface1, sequentialSurface2}}
}

func (o *OneChartPerPoint) Init(env Env) error {
	if err := anySurface(env, overloadedSurface, sequentialSurface1, sequentialSurface2); err != nil {
		return err
	}
	c := env.Theme().Colors()
	gen := env.data()
	qbio := gen.QBio()
	bio := gen.BioRxiv(qbio.Labels)

	total := make([]float64, len(qbio.QBio))
	for i, v := range qbio.QBio {
		total[i] = v
		if !math.IsNaN(bio[i]) {
			total[i] += bio[i]
		}
	}

	q := visualization.NewSeries("q-bio (arXiv)", qbio.QBio...)
	q.Color = c.Accent
	b := visualization.NewSeries("bioRxiv", bio...)
	b.Color = c.Success
	sum := visualization.NewSeries("Combined total", total...)
	sum.Color = c.Warning
	sum.Extra = merge.Map{"borderDash": []any{5, 5}, "borderWidth": 1.5, "pointRadius": 0}

	errs := drawn(env.Charts.Line(overloadedSurface, qbio.Labels, []visualization.Series{q, b, sum},
		visualization.Options{Title: "All Preprint Data — Too Much at Once"}))

	q1 := visualization.NewSeries("q-bio submissions", qbio.QBio...)
	q1.Color = c.Accent
	errs = multierr.Append(errs, drawn(env.Charts.Line(sequentialSurface1, qbio.Labels,
		[]visualization.Series{q1}, visualization.Options{})))

	b2 := visualization.NewSeries("bioRxiv submissions", bio...)
	b2.Color = c.Success
	return multierr.Append(errs, drawn(env.Charts.Line(sequentialSurface2, qbio.Labels,
		[]visualization.Series{b2}, visualization.Options{})))
}

// NarrativeDashboard draws the dashboard of the narrative templates:
// quarterly revenue with the dip and recovery colored, and acquisition
// against revenue.
type NarrativeDashboard struct{ base }

const (
	revenueQuarters    = "chart-revenue-quarters"
	acquisitionRevenue = "chart-acquisition-revenue"
)

func NewNarrativeDashboard() *NarrativeDashboard {
	return &NarrativeDashboard{base{id: "narrative-dashboard", topic: 6, title: "Narrative dashboard", policy: Static}}
}

func (n *NarrativeDashboard) Manifest() page.Manifest {
	return page.Manifest{Surfaces: []string{revenueQuarters, acquisitionRevenue}}
}

func (n *NarrativeDashboard) Init(env Env) error {
	if err := anySurface(env, revenueQuarters, acquisitionRevenue); err != nil {
		return err
	}
	c := env.Theme().Colors()
	errs := drawn(env.Charts.Bar(revenueQuarters, quarters,
		[]visualization.Series{visualization.NewSeries("", 620, 615, 480, 685)},
		visualization.Options{
			Colors:     []string{c.Accent, c.Accent, c.Danger, c.Success},
			TickFormat: &visualization.FormatThousandsUSD,
		}))

	customers := visualization.NewSeries("New Customers", 120, 135, 142, 155, 160, 158, 150, 148, 145, 170, 185, 200)
	customers.Color = c.Accent
	revenue := visualization.NewSeries("Revenue ($K)", 210, 215, 220, 210, 205, 200, 155, 160, 165, 220, 235, 250)
	revenue.Color = c.Success
	return multierr.Append(errs, drawn(env.Charts.Line(acquisitionRevenue, months,
		[]visualization.Series{customers, revenue}, visualization.Options{})))
}
