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
package visualization

import (
	"fmt"

	"github.com/teradata-labs/vizlessons/pkg/theme"
	"go.uber.org/zap"
)

// Factory builds themed configurations and binds them to live charts.
type Factory struct {
	theme    *theme.Theme
	engine   Engine
	surfaces SurfaceLocator
	logger   *zap.Logger
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithLogger sets the logger used for skipped surfaces.
func WithLogger(logger *zap.Logger) FactoryOption {
	return func(f *Factory) {
		f.logger = logger
	}
}

// NewFactory returns a factory drawing onto engine. A nil theme means the
// default theme.
func NewFactory(th *theme.Theme, engine Engine, surfaces SurfaceLocator, opts ...FactoryOption) *Factory {
	if th == nil {
		th = theme.Default()
	}
	f := &Factory{
		theme:    th,
		engine:   engine,
		surfaces: surfaces,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Theme returns the factory's theme.
func (f *Factory) Theme() *theme.Theme { return f.theme }

// HasSurface reports whether surface can be drawn on.
func (f *Factory) HasSurface(surface string) bool {
	return f.surfaces != nil && f.surfaces.HasSurface(surface)
}

// Create draws an already built configuration. When the surface does not
// exist it returns a nil chart and a nil error.
func (f *Factory) Create(surface string, cfg *Config) (Chart, error) {
	if !f.HasSurface(surface) {
		return f.skip(surface, cfg.Kind)
	}
	chart, err := f.engine.Create(surface, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s chart on %s: %w", cfg.Kind, surface, err)
	}
	return chart, nil
}

// Bar builds and draws a bar chart.
func (f *Factory) Bar(surface string, labels []string, series []Series, opts Options) (Chart, error) {
	if !f.HasSurface(surface) {
		return f.skip(surface, KindBar)
	}
	cfg, err := BuildBar(f.theme, labels, series, opts)
	if err != nil {
		return nil, fmt.Errorf("bar chart %s: %w", surface, err)
	}
	return f.Create(surface, cfg)
}

// Line builds and draws a line chart.
func (f *Factory) Line(surface string, labels []string, series []Series, opts Options) (Chart, error) {
	if !f.HasSurface(surface) {
		return f.skip(surface, KindLine)
	}
	cfg, err := BuildLine(f.theme, labels, series, opts)
	if err != nil {
		return nil, fmt.Errorf("line chart %s: %w", surface, err)
	}
	return f.Create(surface, cfg)
}

// Pie builds and draws a pie or doughnut chart.
func (f *Factory) Pie(surface string, labels []string, data []float64, opts Options) (Chart, error) {
	if !f.HasSurface(surface) {
		return f.skip(surface, KindPie)
	}
	cfg, err := BuildPie(f.theme, labels, data, opts)
	if err != nil {
		return nil, fmt.Errorf("pie chart %s: %w", surface, err)
	}
	return f.Create(surface, cfg)
}

// Scatter builds and draws a scatter chart.
func (f *Factory) Scatter(surface string, series []Series, opts Options) (Chart, error) {
	if !f.HasSurface(surface) {
		return f.skip(surface, KindScatter)
	}
	cfg, err := BuildScatter(f.theme, series, opts)
	if err != nil {
		return nil, fmt.Errorf("scatter chart %s: %w", surface, err)
	}
	return f.Create(surface, cfg)
}

func (f *Factory) skip(surface string, kind ChartKind) (Chart, error) {
	f.logger.Debug("surface not found, chart skipped",
		zap.String("surface", surface),
		zap.String("kind", string(kind)))
	return nil, nil
}
