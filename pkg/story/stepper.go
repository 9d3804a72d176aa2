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
package story

import (
	"fmt"
	"sync"

	"github.com/teradata-labs/vizlessons/pkg/visualization"
)

// Step is one narrative step: its copy and the closure that builds its
// chart. A nil Build leaves the surface empty.
type Step struct {
	Title string
	Text  string
	Build func() (*visualization.Config, error)
}

// Creator binds configurations to surfaces. *visualization.Factory
// implements it.
type Creator interface {
	Create(surface string, cfg *visualization.Config) (visualization.Chart, error)
}

// Stepper owns the single chart of a stepped narrative. Every transition
// destroys the previous chart before the next one is built: consecutive
// steps may change chart kind, which an engine cannot reconfigure in
// place.
type Stepper struct {
	mu      sync.Mutex
	creator Creator
	surface string
	steps   []Step
	chart   visualization.Chart
	onError func(error)
}

// NewStepper returns a stepper drawing steps onto surface.
func NewStepper(creator Creator, surface string, steps []Step) *Stepper {
	return &Stepper{creator: creator, surface: surface, steps: steps}
}

// OnError registers the handler for build failures. Without one, errors
// are only returned from Render.
func (s *Stepper) OnError(fn func(error)) { s.onError = fn }

// Steps returns the step list.
func (s *Stepper) Steps() []Step { return s.steps }

// Chart returns the live chart, or nil.
func (s *Stepper) Chart() visualization.Chart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chart
}

// Render shows step i.
func (s *Stepper) Render(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chart = visualization.DestroyChart(s.chart)
	if i < 0 || i >= len(s.steps) {
		return s.fail(fmt.Errorf("step %d out of range [0,%d)", i, len(s.steps)))
	}
	build := s.steps[i].Build
	if build == nil {
		return nil
	}
	cfg, err := build()
	if err != nil {
		return s.fail(fmt.Errorf("step %d (%s): %w", i, s.steps[i].Title, err))
	}
	chart, err := s.creator.Create(s.surface, cfg)
	if err != nil {
		return s.fail(fmt.Errorf("step %d (%s): %w", i, s.steps[i].Title, err))
	}
	s.chart = chart
	return nil
}

// Close destroys the live chart.
func (s *Stepper) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chart = visualization.DestroyChart(s.chart)
}

func (s *Stepper) fail(err error) error {
	if s.onError != nil {
		s.onError(err)
	}
	return err
}
