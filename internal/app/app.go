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

// Package app wires the lessons to an in-memory page and a recording
// engine. The CLI and the terminal explorer drive demos through it the way
// a browser drives them through the DOM.
package app

import (
	"fmt"

	"github.com/teradata-labs/vizlessons/pkg/lessons"
	"github.com/teradata-labs/vizlessons/pkg/page"
	"github.com/teradata-labs/vizlessons/pkg/render"
	"github.com/teradata-labs/vizlessons/pkg/sampledata"
	"github.com/teradata-labs/vizlessons/pkg/theme"
	"github.com/teradata-labs/vizlessons/pkg/visualization"
	"go.uber.org/zap"
)

// Options configures New.
type Options struct {
	Theme *theme.Theme
	Seed  uint64

	// Controllers defaults to every lesson controller.
	Controllers []lessons.Controller
	Logger      *zap.Logger
}

// App is a set of running controllers and the page they are bound to.
type App struct {
	theme       *theme.Theme
	doc         *page.Memory
	recorder    *render.Recorder
	controllers []lessons.Controller
	report      lessons.Report
	logger      *zap.Logger
}

// New bootstraps the controllers on a page holding all of their anchors.
func New(opts Options) *App {
	if opts.Theme == nil {
		opts.Theme = theme.Default()
	}
	if opts.Controllers == nil {
		opts.Controllers = lessons.All()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	a := &App{
		theme:       opts.Theme,
		doc:         page.NewMemory(lessons.Manifest(opts.Controllers)),
		recorder:    render.NewRecorder(render.WithLogger(opts.Logger)),
		controllers: opts.Controllers,
		logger:      opts.Logger,
	}
	a.report = lessons.Bootstrap(lessons.Env{
		Doc:    a.doc,
		Charts: visualization.NewFactory(a.theme, a.recorder, a.doc, visualization.WithLogger(opts.Logger)),
		Data:   sampledata.Seeded(opts.Seed),
		Logger: opts.Logger,
	}, a.controllers)
	return a
}

// Only starts the controllers with the given ids.
func Only(opts Options, ids ...string) (*App, error) {
	all := opts.Controllers
	if all == nil {
		all = lessons.All()
	}
	opts.Controllers = nil
	for _, id := range ids {
		c, ok := lessons.Find(all, id)
		if !ok {
			return nil, fmt.Errorf("unknown demo %q", id)
		}
		opts.Controllers = append(opts.Controllers, c)
	}
	return New(opts), nil
}

func (a *App) Theme() *theme.Theme               { return a.theme }
func (a *App) Doc() *page.Memory                 { return a.doc }
func (a *App) Recorder() *render.Recorder        { return a.recorder }
func (a *App) Controllers() []lessons.Controller { return a.controllers }
func (a *App) Report() lessons.Report            { return a.report }

// Chart returns the live chart on surface.
func (a *App) Chart(surface string) (*render.RecordedChart, bool) {
	return a.recorder.Live(surface)
}

// Owner returns the controller that draws on surface.
func (a *App) Owner(surface string) (lessons.Controller, bool) {
	for _, c := range a.controllers {
		for _, s := range c.Manifest().Surfaces {
			if s == surface {
				return c, true
			}
		}
	}
	return nil, false
}

// AllSurfaces lists every surface of every controller in page order.
func (a *App) AllSurfaces() []string {
	var out []string
	for _, c := range a.controllers {
		out = append(out, c.Manifest().Surfaces...)
	}
	return out
}

// Control returns a control by id.
func (a *App) Control(id string) (*page.MemControl, error) {
	c, ok := a.doc.Ctl(id)
	if !ok {
		return nil, fmt.Errorf("unknown control %q", id)
	}
	return c, nil
}

// Text returns the text of an output element.
func (a *App) Text(id string) string {
	if el, ok := a.doc.El(id); ok {
		return el.Text()
	}
	return ""
}

// Draw renders the live chart on surface as text.
func (a *App) Draw(surface string, opts render.TextOptions) (string, error) {
	c, ok := a.recorder.Live(surface)
	if !ok {
		return "", fmt.Errorf("no chart on %q", surface)
	}
	return render.Text(c.Config(), opts), nil
}

// Leaks reports charts that were replaced without being destroyed.
func (a *App) Leaks() []error {
	return a.recorder.Leaks()
}
