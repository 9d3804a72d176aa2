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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teradata-labs/vizlessons/pkg/theme"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type surfaces map[string]bool

func (s surfaces) HasSurface(id string) bool { return s[id] }

type fakeChart struct {
	surface   string
	config    *Config
	destroyed int
}

func (c *fakeChart) ID() string      { return "fake-" + c.surface }
func (c *fakeChart) Surface() string { return c.surface }
func (c *fakeChart) Config() *Config { return c.config }
func (c *fakeChart) Update() error   { return nil }

func (c *fakeChart) Destroy() error {
	c.destroyed++
	return nil
}

type fakeEngine struct {
	created []*fakeChart
	err     error
}

func (e *fakeEngine) Create(surface string, cfg *Config) (Chart, error) {
	if e.err != nil {
		return nil, e.err
	}
	c := &fakeChart{surface: surface, config: cfg}
	e.created = append(e.created, c)
	return c, nil
}

func TestFactory_MissingSurfaceIsNoOp(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	engine := &fakeEngine{}
	f := NewFactory(nil, engine, surfaces{}, WithLogger(zap.New(core)))

	chart, err := f.Bar("nope", regions, []Series{NewSeries("", 1, 2, 3, 4)}, Options{})
	assert.NoError(t, err)
	assert.Nil(t, chart)

	chart, err = f.Line("nope", regions, nil, Options{})
	assert.NoError(t, err)
	assert.Nil(t, chart)

	chart, err = f.Pie("nope", regions, []float64{1}, Options{})
	assert.NoError(t, err, "builder errors are not reached without a surface")
	assert.Nil(t, chart)

	chart, err = f.Scatter("nope", nil, Options{})
	assert.NoError(t, err)
	assert.Nil(t, chart)

	assert.Empty(t, engine.created)
	assert.Equal(t, 4, logs.FilterMessage("surface not found, chart skipped").Len())
}

func TestFactory_CreatesOnEngine(t *testing.T) {
	engine := &fakeEngine{}
	f := NewFactory(theme.Default(), engine, surfaces{"salesChart": true})

	chart, err := f.Bar("salesChart", regions, []Series{NewSeries("", 1, 2, 3, 4)}, Options{Title: "Sales"})
	require.NoError(t, err)
	require.NotNil(t, chart)
	assert.Equal(t, "salesChart", chart.Surface())
	assert.Equal(t, KindBar, chart.Config().Kind)
	assert.Len(t, engine.created, 1)
	assert.Same(t, theme.Default(), f.Theme())
}

func TestFactory_WrapsErrors(t *testing.T) {
	boom := errors.New("no context")
	f := NewFactory(nil, &fakeEngine{err: boom}, surfaces{"c": true})

	_, err := f.Line("c", regions, []Series{NewSeries("", 1, 2, 3, 4)}, Options{})
	assert.ErrorIs(t, err, boom)

	f = NewFactory(nil, &fakeEngine{}, surfaces{"c": true})
	_, err = f.Line("c", regions, []Series{NewSeries("", 1)}, Options{})
	assert.ErrorIs(t, err, ErrSeriesLength)
}

func TestDestroyChart(t *testing.T) {
	c := &fakeChart{}
	var chart Chart = c
	chart = DestroyChart(chart)
	assert.Nil(t, chart)
	assert.Equal(t, 1, c.destroyed)
	assert.Nil(t, DestroyChart(nil))
}
