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

// Package tui is the terminal explorer: every interactive demo with its
// controls, readouts and charts, driven from the keyboard.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/teradata-labs/vizlessons/internal/app"
	"github.com/teradata-labs/vizlessons/pkg/lessons"
	"github.com/teradata-labs/vizlessons/pkg/page"
	"github.com/teradata-labs/vizlessons/pkg/render"
)

const sidebarWidth = 28

// Options configures the explorer.
type Options struct {
	// Width caps the chart width in cells.
	Width int
	Color bool
}

// Model is the explorer's root model.
type Model struct {
	app     *app.App
	demos   []lessons.Controller
	keyMap  KeyMap
	help    help.Model
	opts    Options
	styles  styles
	width   int
	height  int
	demo    int
	control int
}

// New creates the explorer over a running app. Only demos with charts are
// listed.
func New(a *app.App, opts Options) *Model {
	if opts.Width <= 0 {
		opts.Width = 72
	}
	m := &Model{
		app:    a,
		keyMap: DefaultKeyMap(),
		help:   help.New(),
		opts:   opts,
		styles: newStyles(a),
	}
	for _, c := range a.Controllers() {
		if len(c.Manifest().Surfaces) > 0 {
			m.demos = append(m.demos, c)
		}
	}
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.SetWidth(msg.Width)
		return m, nil

	case tea.KeyPressMsg:
		if ctl, spec, ok := m.focused(); ok && spec.Type == page.TextBox && m.edit(ctl, msg) {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keyMap.Up):
			m.SelectDemo(m.demo - 1)
		case key.Matches(msg, m.keyMap.Down):
			m.SelectDemo(m.demo + 1)
		case key.Matches(msg, m.keyMap.Next):
			m.focus(m.control + 1)
		case key.Matches(msg, m.keyMap.Prev):
			m.focus(m.control - 1)
		case key.Matches(msg, m.keyMap.Activate):
			m.Activate()
		case key.Matches(msg, m.keyMap.Increase):
			m.Adjust(1)
		case key.Matches(msg, m.keyMap.Decrease):
			m.Adjust(-1)
		}
	}
	return m, nil
}

// Demo returns the selected demo.
func (m *Model) Demo() lessons.Controller {
	if len(m.demos) == 0 {
		return nil
	}
	return m.demos[m.demo]
}

// SelectDemo selects demo i, clamped to the list.
func (m *Model) SelectDemo(i int) {
	if len(m.demos) == 0 {
		return
	}
	m.demo = min(max(i, 0), len(m.demos)-1)
	m.control = 0
}

func (m *Model) controls() []page.ControlSpec {
	if d := m.Demo(); d != nil {
		return d.Manifest().Controls
	}
	return nil
}

func (m *Model) focus(i int) {
	n := len(m.controls())
	if n == 0 {
		return
	}
	m.control = (i%n + n) % n
}

func (m *Model) focused() (*page.MemControl, page.ControlSpec, bool) {
	specs := m.controls()
	if len(specs) == 0 {
		return nil, page.ControlSpec{}, false
	}
	spec := specs[m.control]
	ctl, ok := m.app.Doc().Ctl(spec.ID)
	return ctl, spec, ok
}

// Activate toggles the focused checkbox, presses the focused button or
// steps the focused select.
func (m *Model) Activate() {
	ctl, spec, ok := m.focused()
	if !ok {
		return
	}
	switch spec.Type {
	case page.Checkbox:
		ctl.Toggle()
	case page.Button:
		ctl.Click()
	case page.Select, page.Slider:
		m.Adjust(1)
	}
}

// Adjust moves the focused slider by delta steps or the focused select by
// delta options.
func (m *Model) Adjust(delta int) {
	ctl, spec, ok := m.focused()
	if !ok {
		return
	}
	switch spec.Type {
	case page.Slider:
		step := spec.Step
		if step == 0 {
			step = 1
		}
		v := min(max(ctl.Number()+float64(delta)*step, spec.Min), spec.Max)
		ctl.Set(strconv.FormatFloat(v, 'f', -1, 64))
	case page.Select:
		if len(spec.Options) == 0 {
			return
		}
		i := 0
		for j, o := range spec.Options {
			if o == ctl.Value() {
				i = j
			}
		}
		n := len(spec.Options)
		ctl.Set(spec.Options[((i+delta)%n+n)%n])
	}
}

// edit applies a key press to a text box and reports whether it consumed
// it.
func (m *Model) edit(ctl *page.MemControl, msg tea.KeyPressMsg) bool {
	switch msg.String() {
	case "backspace":
		v := []rune(ctl.Value())
		if len(v) > 0 {
			ctl.Set(string(v[:len(v)-1]))
		}
		return true
	case "space":
		ctl.Set(ctl.Value() + " ")
		return true
	}
	if msg.Text != "" && !key.Matches(msg, m.keyMap.Quit, m.keyMap.Next, m.keyMap.Prev) {
		ctl.Set(ctl.Value() + msg.Text)
		return true
	}
	return false
}

// View renders the model.
func (m *Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true
	return v
}

// Render renders the explorer as a string.
func (m *Model) Render() string {
	if len(m.demos) == 0 {
		return "No interactive demos."
	}
	main := m.renderDemo()
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), main)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keyMap))
}

func (m *Model) renderSidebar() string {
	var b strings.Builder
	topic := 0
	for i, d := range m.demos {
		if d.Topic() != topic {
			topic = d.Topic()
			b.WriteString(m.styles.topic.Render(fmt.Sprintf("Topic %d", topic)) + "\n")
		}
		name := ansi.Truncate(d.Title(), sidebarWidth-6, "…")
		if i == m.demo {
			b.WriteString(m.styles.selected.Render("▸ "+name) + "\n")
		} else {
			b.WriteString("  " + name + "\n")
		}
	}
	return m.styles.sidebar.Width(sidebarWidth).Render(b.String())
}

func (m *Model) renderDemo() string {
	d := m.Demo()
	mf := d.Manifest()
	var b strings.Builder
	b.WriteString(m.styles.title.Render(d.Title()))
	b.WriteString(m.styles.muted.Render("  " + string(d.Policy())))
	b.WriteString("\n\n")

	for i, spec := range mf.Controls {
		ctl, ok := m.app.Doc().Ctl(spec.ID)
		if !ok {
			continue
		}
		line := controlLine(spec, ctl)
		if i == m.control {
			line = m.styles.selected.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	if len(mf.Controls) > 0 {
		b.WriteString("\n")
	}

	for _, id := range mf.Elements {
		el, ok := m.app.Doc().El(id)
		if !ok || el.Text() == "" || !el.Visible() {
			continue
		}
		b.WriteString(m.styles.muted.Render(id+": ") + m.styles.readout(el).Render(el.Text()) + "\n")
	}

	width := m.opts.Width
	if m.width > 0 {
		width = min(width, m.width-sidebarWidth-4)
	}
	for _, surface := range mf.Surfaces {
		out, err := m.app.Draw(surface, render.TextOptions{Width: max(width, 20), Color: m.opts.Color})
		if err != nil {
			continue
		}
		b.WriteString("\n" + m.styles.muted.Render(surface) + "\n" + out)
	}
	return m.styles.main.Render(b.String())
}

func controlLine(spec page.ControlSpec, ctl *page.MemControl) string {
	label := spec.Label
	if label == "" {
		label = spec.Key
	}
	switch spec.Type {
	case page.Checkbox:
		if ctl.Checked() {
			return "☑ " + label
		}
		return "☐ " + label
	case page.Slider:
		return fmt.Sprintf("%s ◂ %s ▸", label, ctl.Value())
	case page.Select:
		return fmt.Sprintf("%s ◂ %s ▸", label, ctl.Value())
	case page.TextBox:
		return fmt.Sprintf("%s: [%s]", label, ctl.Value())
	}
	if ctl.Active() {
		return "(•) " + label
	}
	return "( ) " + label
}
