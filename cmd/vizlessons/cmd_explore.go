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
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/teradata-labs/vizlessons/internal/app"
	"github.com/teradata-labs/vizlessons/internal/log"
	"github.com/teradata-labs/vizlessons/internal/tui"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Explore the interactive demos in the terminal",
	Long: `Open the terminal explorer: every interactive demo with its controls,
readouts and charts. Controls drive the same handlers as the page.

Keys:
  ↑/↓        previous/next demo
  tab        next control
  space      toggle a checkbox, press a button
  ←/→        move a slider, cycle a select
  esc        quit`,
	Args: cobra.NoArgs,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("explore needs an interactive terminal; use 'vizlessons simulate' or 'vizlessons show' instead")
	}
	th, err := config.LoadTheme()
	if err != nil {
		return err
	}
	a := app.New(app.Options{Theme: th, Seed: config.Site.Seed, Logger: log.Logger()})
	if r := a.Report(); len(r.Failed) > 0 {
		log.Warn("Some demos failed to start", zap.Int("failed", len(r.Failed)))
	}

	model := tui.New(a, tui.Options{Width: config.Explore.Width, Color: colorEnabled()})
	p := tea.NewProgram(
		model,
		tea.WithContext(cmd.Context()),
		tea.WithEnvironment(os.Environ()),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("explorer failed: %w", err)
	}
	if leaks := a.Leaks(); len(leaks) > 0 {
		log.Warn("Chart leaks detected", zap.Errors("leaks", leaks))
	}
	return nil
}
