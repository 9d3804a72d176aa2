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
	"charm.land/lipgloss/v2"
	"github.com/teradata-labs/vizlessons/internal/app"
	"github.com/teradata-labs/vizlessons/pkg/page"
)

type styles struct {
	sidebar  lipgloss.Style
	main     lipgloss.Style
	title    lipgloss.Style
	topic    lipgloss.Style
	selected lipgloss.Style
	muted    lipgloss.Style
	safe     lipgloss.Style
	warning  lipgloss.Style
	danger   lipgloss.Style
}

func newStyles(a *app.App) styles {
	c := a.Theme().Colors()
	return styles{
		sidebar:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(c.Border)).Padding(0, 1),
		main:     lipgloss.NewStyle().Padding(0, 2),
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Text)),
		topic:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.AccentLight)),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Accent)).Bold(true),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Muted)),
		safe:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.Success)).Bold(true),
		warning:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Warning)).Bold(true),
		danger:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Danger)).Bold(true),
	}
}

// readout picks the style of an output element from its badge class.
func (s styles) readout(el *page.MemElement) lipgloss.Style {
	switch {
	case el.HasClass(page.ClassSafe):
		return s.safe
	case el.HasClass(page.ClassDanger):
		return s.danger
	case el.HasClass(page.ClassWarning):
		return s.warning
	}
	return lipgloss.NewStyle()
}
