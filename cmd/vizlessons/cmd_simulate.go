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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/teradata-labs/vizlessons/internal/app"
	"github.com/teradata-labs/vizlessons/internal/log"
	"github.com/teradata-labs/vizlessons/pkg/lessons"
	"github.com/teradata-labs/vizlessons/pkg/render"
)

var (
	simJunkOn    []string
	simTruncMin  float64
	simPiePreset string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Drive a demo's controls from the shell",
	Long: `Set a demo's controls and print the readouts and chart it produces, exactly
as the page would show them.`,
}

var simulateJunkCmd = &cobra.Command{
	Use:   "junk",
	Short: "Toggle the chart junk panel",
	Long: `Turn on the listed junk controls (all others off) and print the data-ink
score and the resulting chart.

Controls: ` + strings.Join(lessons.JunkKeys, ", ") + `

Examples:
  vizlessons simulate junk
  vizlessons simulate junk --on colors,gradients`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := simulationApp("junk-remover")
		if err != nil {
			return err
		}
		return simulateJunk(cmd.OutOrStdout(), a, simJunkOn)
	},
}

var simulateTruncateCmd = &cobra.Command{
	Use:   "truncate",
	Short: "Move the y-axis minimum of the income chart",
	Long: `Start the income bar chart's value axis at --min and print how much the
bars now exaggerate the difference.

Examples:
  vizlessons simulate truncate --min 50000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := simulationApp("axis-truncation")
		if err != nil {
			return err
		}
		return simulateTruncate(cmd.OutOrStdout(), a, simTruncMin)
	},
}

var simulatePieCmd = &cobra.Command{
	Use:   "pie",
	Short: "Load a preset into the market share pie",
	Long: `Load one of the pie presets and print the sum-to-100 verdict.

Presets: overlap, survey, valid

Examples:
  vizlessons simulate pie --preset overlap`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := simulationApp("pie-validity")
		if err != nil {
			return err
		}
		return simulatePie(cmd.OutOrStdout(), a, simPiePreset)
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.AddCommand(simulateJunkCmd, simulateTruncateCmd, simulatePieCmd)

	simulateJunkCmd.Flags().StringSliceVar(&simJunkOn, "on", nil, "junk controls to turn on")
	simulateTruncateCmd.Flags().Float64Var(&simTruncMin, "min", 0, "y-axis minimum (0-60000)")
	simulatePieCmd.Flags().StringVar(&simPiePreset, "preset", "valid", "pie preset")
}

func simulationApp(id string) (*app.App, error) {
	th, err := config.LoadTheme()
	if err != nil {
		return nil, err
	}
	return app.Only(app.Options{Theme: th, Seed: config.Site.Seed, Logger: log.Logger()}, id)
}

func textOptions() render.TextOptions {
	if config == nil {
		return render.TextOptions{}
	}
	return render.TextOptions{Width: config.Explore.Width, Color: colorEnabled()}
}

func simulateJunk(w io.Writer, a *app.App, on []string) error {
	want := map[string]bool{}
	for _, k := range on {
		k = strings.TrimSpace(strings.ToLower(k))
		if _, err := a.Control("junk-" + k); err != nil {
			return fmt.Errorf("unknown junk control %q (want one of %s)", k, strings.Join(lessons.JunkKeys, ", "))
		}
		want[k] = true
	}
	for _, k := range lessons.JunkKeys {
		ctl, err := a.Control("junk-" + k)
		if err != nil {
			return err
		}
		ctl.SetChecked(want[k])
	}

	for _, k := range lessons.JunkKeys {
		mark := "☐"
		if want[k] {
			mark = "☑"
		}
		fmt.Fprintf(w, "%s %s\n", mark, k)
	}
	fmt.Fprintf(w, "\nData-ink ratio: %s\n\n", a.Text("ink-ratio"))
	return drawTo(w, a, "junkRemoverChart")
}

func simulateTruncate(w io.Writer, a *app.App, minimum float64) error {
	if minimum < 0 || minimum > 60000 {
		return fmt.Errorf("--min must be between 0 and 60000, got %g", minimum)
	}
	ctl, err := a.Control("yAxisMin")
	if err != nil {
		return err
	}
	ctl.Set(strconv.FormatFloat(minimum, 'f', -1, 64))

	fmt.Fprintf(w, "Y-axis starts at %s  %s\n", a.Text("yAxisMinValue"), a.Text("barWarning"))
	fmt.Fprintf(w, "%s\n\n", a.Text("barExplanation"))
	return drawTo(w, a, "incomeBarChart")
}

func simulatePie(w io.Writer, a *app.App, preset string) error {
	if _, ok := lessons.FindPiePreset(preset); !ok {
		return fmt.Errorf("unknown pie preset %q (want overlap, survey or valid)", preset)
	}
	btn, ok := a.Doc().GroupKey("pie-validity", preset)
	if !ok {
		return fmt.Errorf("pie preset %q has no button", preset)
	}
	btn.Click()

	fmt.Fprintf(w, "%s\n\n", a.Text("pieWarning"))
	return drawTo(w, a, "marketPieChart")
}

func drawTo(w io.Writer, a *app.App, surface string) error {
	out, err := a.Draw(surface, textOptions())
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}
