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
package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teradata-labs/vizlessons/internal/app"
)

func newExplorer(t *testing.T, ids ...string) *Model {
	t.Helper()
	a, err := app.Only(app.Options{Seed: 1}, ids...)
	require.NoError(t, err)
	return New(a, Options{Width: 60})
}

func selectID(t *testing.T, m *Model, id string) {
	t.Helper()
	for i, d := range m.demos {
		if d.ID() == id {
			m.SelectDemo(i)
			return
		}
	}
	t.Fatalf("demo %s not listed", id)
}

func TestNewListsChartDemos(t *testing.T) {
	m := newExplorer(t, "junk-remover", "axis-truncation")
	require.Len(t, m.demos, 2)
	for _, d := range m.demos {
		assert.NotEmpty(t, d.Manifest().Surfaces)
	}
	assert.Equal(t, 60, m.opts.Width)

	m = New(m.app, Options{})
	assert.Equal(t, 72, m.opts.Width)
}

func TestSelectDemoClamps(t *testing.T) {
	m := newExplorer(t, "junk-remover", "axis-truncation")

	m.SelectDemo(-3)
	assert.Equal(t, 0, m.demo)
	m.SelectDemo(99)
	assert.Equal(t, len(m.demos)-1, m.demo)

	m.focus(1)
	m.SelectDemo(0)
	assert.Equal(t, 0, m.control, "selecting a demo resets focus")
}

func TestFocusWraps(t *testing.T) {
	m := newExplorer(t, "junk-remover")
	n := len(m.controls())
	require.Equal(t, 7, n)

	m.focus(-1)
	assert.Equal(t, n-1, m.control)
	m.focus(n)
	assert.Equal(t, 0, m.control)
}

func TestActivateCheckbox(t *testing.T) {
	m := newExplorer(t, "junk-remover")
	assert.Equal(t, "30%", m.app.Text("ink-ratio"))

	m.Activate()
	ctl, err := m.app.Control("junk-colors")
	require.NoError(t, err)
	assert.False(t, ctl.Checked())
	assert.Equal(t, "39%", m.app.Text("ink-ratio"))

	m.Activate()
	assert.True(t, ctl.Checked())
	assert.Equal(t, "30%", m.app.Text("ink-ratio"))
}

func TestAdjustSlider(t *testing.T) {
	m := newExplorer(t, "axis-truncation")
	selectID(t, m, "axis-truncation")
	ctl, err := m.app.Control("yAxisMin")
	require.NoError(t, err)

	m.Adjust(1)
	assert.Equal(t, "1000", ctl.Value())
	assert.Contains(t, m.app.Text("barWarning"), "MISLEADING")

	m.Adjust(-5)
	assert.Equal(t, "0", ctl.Value(), "clamped to the minimum")
	assert.Contains(t, m.app.Text("barWarning"), "ACCURATE")

	for range 100 {
		m.Adjust(1)
	}
	assert.Equal(t, "60000", ctl.Value(), "clamped to the maximum")
}

func TestUpdateKeys(t *testing.T) {
	m := newExplorer(t, "junk-remover", "axis-truncation")
	first := m.Demo().ID()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Nil(t, cmd)
	assert.NotEqual(t, first, m.Demo().ID())

	_, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, first, m.Demo().ID())

	_, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, 1, m.control)

	_, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRender(t *testing.T) {
	m := newExplorer(t, "junk-remover")
	out := m.Render()

	assert.Contains(t, out, "Interactive chart junk remover")
	assert.Contains(t, out, "Topic 3")
	assert.Contains(t, out, "Rainbow colors")
	assert.Contains(t, out, "junkRemoverChart")
	assert.Contains(t, out, "30%")

	v := m.View()
	assert.True(t, v.AltScreen)
}

func TestRenderEmpty(t *testing.T) {
	m := newExplorer(t, "junk-remover")
	m.demos = nil
	assert.Equal(t, "No interactive demos.", m.Render())
	assert.Nil(t, m.Demo())
}
