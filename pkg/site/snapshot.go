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

// Package site exports the lessons as static pages. Every controller is
// initialized against an in-memory page, and the charts it draws in its
// initial state are embedded into self-contained HTML with the engine's
// declarative configuration.
package site

import (
	"fmt"
	"sort"

	"github.com/teradata-labs/vizlessons/pkg/lessons"
	"github.com/teradata-labs/vizlessons/pkg/page"
	"github.com/teradata-labs/vizlessons/pkg/render"
	"github.com/teradata-labs/vizlessons/pkg/sampledata"
	"github.com/teradata-labs/vizlessons/pkg/theme"
	"github.com/teradata-labs/vizlessons/pkg/visualization"
	"go.uber.org/zap"
)

// Chart is one chart drawn by a controller in its initial state.
type Chart struct {
	Controller string
	Topic      int
	Surface    string
	Config     *visualization.Config
}

// Section is a controller and the charts it drew.
type Section struct {
	ID     string
	Title  string
	Policy lessons.Policy
	Charts []Chart
}

// Topic groups the sections of one lesson page.
type Topic struct {
	Number   int
	Title    string
	Sections []Section
}

// Snapshot is the initial state of every lesson.
type Snapshot struct {
	Theme  *theme.Theme
	Topics []Topic
	Report lessons.Report
}

// Charts flattens the snapshot in page order.
func (s *Snapshot) Charts() []Chart {
	var out []Chart
	for _, t := range s.Topics {
		for _, sec := range t.Sections {
			out = append(out, sec.Charts...)
		}
	}
	return out
}

// Chart returns the chart drawn on surface.
func (s *Snapshot) Chart(surface string) (Chart, bool) {
	for _, c := range s.Charts() {
		if c.Surface == surface {
			return c, true
		}
	}
	return Chart{}, false
}

// TopicTitles names the lesson pages.
var TopicTitles = map[int]string{
	1: "A Figure for the Generals",
	2: "Storytelling with Data",
	3: "Chart Junk",
	4: "Titles That Tell",
	5: "Rules of the Road",
	6: "Narrative Arcs",
}

// CaptureOptions configures Capture.
type CaptureOptions struct {
	Theme       *theme.Theme
	Controllers []lessons.Controller
	Seed        uint64
	Logger      *zap.Logger
}

// Capture bootstraps the controllers on a page carrying all of their
// anchors and records the charts they draw. Controllers that fail are
// reported in the snapshot and contribute no charts.
func Capture(opts CaptureOptions) (*Snapshot, error) {
	th := opts.Theme
	if th == nil {
		th = theme.Default()
	}
	controllers := opts.Controllers
	if controllers == nil {
		controllers = lessons.All()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	doc := page.NewMemory(lessons.Manifest(controllers))
	rec := render.NewRecorder(render.WithLogger(logger))
	env := lessons.Env{
		Doc:    doc,
		Charts: visualization.NewFactory(th, rec, doc, visualization.WithLogger(logger)),
		Data:   sampledata.Seeded(opts.Seed),
		Logger: logger,
	}
	report := lessons.Bootstrap(env, controllers)
	if leaks := rec.Leaks(); len(leaks) > 0 {
		return nil, fmt.Errorf("capture leaked %d charts: %w", len(leaks), leaks[0])
	}

	snap := &Snapshot{Theme: th, Report: report}
	byTopic := map[int]*Topic{}
	for _, c := range controllers {
		if _, failed := report.Failed[c.ID()]; failed {
			continue
		}
		sec := Section{ID: c.ID(), Title: c.Title(), Policy: c.Policy()}
		for _, surface := range c.Manifest().Surfaces {
			live, ok := rec.Live(surface)
			if !ok {
				continue
			}
			sec.Charts = append(sec.Charts, Chart{
				Controller: c.ID(),
				Topic:      c.Topic(),
				Surface:    surface,
				Config:     live.Config().Clone(),
			})
		}
		if len(sec.Charts) == 0 {
			continue
		}
		t, ok := byTopic[c.Topic()]
		if !ok {
			t = &Topic{Number: c.Topic(), Title: TopicTitles[c.Topic()]}
			byTopic[c.Topic()] = t
		}
		t.Sections = append(t.Sections, sec)
	}
	for _, t := range byTopic {
		snap.Topics = append(snap.Topics, *t)
	}
	sort.Slice(snap.Topics, func(i, j int) bool { return snap.Topics[i].Number < snap.Topics[j].Number })
	logger.Debug("snapshot captured", zap.Int("topics", len(snap.Topics)), zap.Int("charts", len(snap.Charts())))
	return snap, nil
}
