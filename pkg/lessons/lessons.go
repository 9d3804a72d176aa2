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

// Package lessons holds the interactive demo controllers of the six
// lesson topics. Each controller owns one widget cluster and its charts,
// derives visual encodings from control state with pure functions, and
// either rebuilds or mutates its charts according to a fixed policy.
//
// Controllers are independent: a missing anchor skips only the controller
// that needs it, and Bootstrap isolates failures between them.
package lessons

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sort"

	"github.com/teradata-labs/vizlessons/pkg/page"
	"github.com/teradata-labs/vizlessons/pkg/sampledata"
	"github.com/teradata-labs/vizlessons/pkg/story"
	"github.com/teradata-labs/vizlessons/pkg/theme"
	"github.com/teradata-labs/vizlessons/pkg/visualization"
	"go.uber.org/zap"
)

// ErrAnchorMissing marks a controller that skipped initialization because
// its page does not carry an anchor it needs. It is not a failure.
var ErrAnchorMissing = errors.New("anchor missing")

func missing(id string) error {
	return fmt.Errorf("%q: %w", id, ErrAnchorMissing)
}

// Policy is how a controller applies a new encoding to its charts.
type Policy string

const (
	// Mutate edits the live configuration and redraws.
	Mutate Policy = "mutate"
	// Rebuild destroys the live chart and creates a new one.
	Rebuild Policy = "rebuild"
	// Static charts are drawn once.
	Static Policy = "static"
)

// Env is what controllers are initialized with.
type Env struct {
	Doc    page.Document
	Charts *visualization.Factory
	Data   *sampledata.Generator

	// Defer postpones step chart construction. Nil means immediate.
	Defer story.Scheduler

	Logger *zap.Logger
}

// Theme returns the chart theme.
func (e Env) Theme() *theme.Theme { return e.Charts.Theme() }

func (e Env) scheduler() story.Scheduler {
	if e.Defer == nil {
		return story.Immediate{}
	}
	return e.Defer
}

func (e Env) data() *sampledata.Generator {
	if e.Data == nil {
		return sampledata.Seeded(1)
	}
	return e.Data
}

func (e Env) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// Controller is one interactive widget cluster.
type Controller interface {
	// ID is the controller's stable identifier.
	ID() string
	Topic() int
	Title() string
	Policy() Policy

	// Manifest lists the anchors the controller reads and writes.
	Manifest() page.Manifest

	// Init binds the controller to env. It returns an error matching
	// ErrAnchorMissing when a required anchor is absent.
	Init(env Env) error
}

// All returns every controller, ordered by topic.
func All() []Controller {
	out := []Controller{
		NewBadScatter(),
		NewAirlineBeforeAfter(),
		NewComplexitySlider(),
		NewGeneralsDashboard(),
		NewWalkthrough(),
		NewAudienceSwitch(),
		NewJunkRemover(),
		NewCompareCharts(),
		NewSpotTheJunk(),
		NewTitleTypes(),
		NewLiveTitle(),
		NewSubtitleChart(),
		NewTitleGallery(),
		NewAxisTruncation(),
		NewLineComparison(),
		NewPieValidity(),
		NewColorCharts(),
		NewStoryArc(),
		NewOneChartPerPoint(),
		NewNarrativeDashboard(),
		NewTabs("templates", 6, "template-problem", "template-insight", "template-action"),
		NewTabs("airlines-ba", 1, "before", "after"),
		NewTabs("compare-ba", 3, "before", "after"),
		NewTabs("preprints-ba", 6, "before", "after"),
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Topic() < out[j].Topic() })
	return out
}

// Find returns the controller with id.
func Find(controllers []Controller, id string) (Controller, bool) {
	for _, c := range controllers {
		if c.ID() == id {
			return c, true
		}
	}
	return nil, false
}

// Manifest is the union of the controllers' manifests.
func Manifest(controllers []Controller) page.Manifest {
	var m page.Manifest
	for _, c := range controllers {
		m = m.Merge(c.Manifest())
	}
	return m
}

// Report summarizes a Bootstrap run.
type Report struct {
	Started []string
	Skipped []string
	Failed  map[string]error
}

// Bootstrap initializes every controller independently. A controller that
// is missing an anchor is skipped; one that errors or panics is recorded
// as failed. Neither affects the others.
func Bootstrap(env Env, controllers []Controller) Report {
	logger := env.logger()
	report := Report{Failed: map[string]error{}}
	for _, c := range controllers {
		err := initSafely(env, c)
		switch {
		case err == nil:
			report.Started = append(report.Started, c.ID())
		case errors.Is(err, ErrAnchorMissing):
			logger.Debug("controller skipped", zap.String("controller", c.ID()), zap.Error(err))
			report.Skipped = append(report.Skipped, c.ID())
		default:
			logger.Error("controller failed", zap.String("controller", c.ID()), zap.Error(err))
			report.Failed[c.ID()] = err
		}
	}
	logger.Info("lessons initialized",
		zap.Int("started", len(report.Started)),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("failed", len(report.Failed)))
	return report
}

func initSafely(env Env, c Controller) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v\n%s", c.ID(), r, debug.Stack())
		}
	}()
	return c.Init(env)
}

// surfaces checks every id is a drawable surface.
func surfaces(env Env, ids ...string) error {
	for _, id := range ids {
		if !env.Charts.HasSurface(id) {
			return missing(id)
		}
	}
	return nil
}

// anySurface reports ErrAnchorMissing only when none of ids exist. Static
// clusters draw whichever of their charts the page carries.
func anySurface(env Env, ids ...string) error {
	for _, id := range ids {
		if env.Charts.HasSurface(id) {
			return nil
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return missing(ids[0])
}

// drawn drops the chart of a static draw.
func drawn(_ visualization.Chart, err error) error { return err }

// element returns an output element, or a nil Element when absent. Output
// elements are optional: writes to them are skipped.
func element(env Env, id string) page.Element {
	if el, ok := env.Doc.Element(id); ok {
		return el
	}
	return nil
}

func setText(el page.Element, text string) {
	if el != nil {
		el.SetText(text)
	}
}

func setClass(el page.Element, class string) {
	if el != nil {
		el.SetClass(class)
	}
}

// badge writes a warning badge.
func badge(el page.Element, class, text string) {
	setClass(el, "warning-badge "+class)
	setText(el, text)
}

// update redraws c and logs a failure.
func update(env Env, c visualization.Chart) {
	if c == nil {
		return
	}
	if err := c.Update(); err != nil {
		env.logger().Warn("chart update failed", zap.String("surface", c.Surface()), zap.Error(err))
	}
}

// setActive marks the control with key active within group.
func setActive(controls []page.Control, key string) {
	for _, c := range controls {
		c.SetActive(c.Key() == key)
	}
}

// base is embedded by controllers for the descriptive methods.
type base struct {
	id     string
	topic  int
	title  string
	policy Policy
}

func (b base) ID() string     { return b.id }
func (b base) Topic() int     { return b.topic }
func (b base) Title() string  { return b.title }
func (b base) Policy() Policy { return b.policy }
