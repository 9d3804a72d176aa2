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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"github.com/teradata-labs/vizlessons/internal/app"
	"github.com/teradata-labs/vizlessons/internal/log"
	"github.com/teradata-labs/vizlessons/pkg/render"
	"golang.org/x/term"
)

var (
	showRaw  bool
	showCopy bool
)

var showCmd = &cobra.Command{
	Use:   "show <chart-id>",
	Short: "Show a chart and its configuration",
	Long: `Draw a chart in the terminal and print the configuration the engine
receives. Chart ids are the surface names listed by 'vizlessons list'.

Examples:
  vizlessons show junkRemoverChart
  vizlessons show marketPieChart --raw | jq .options
  vizlessons show incomeBarChart --copy`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print only the JSON configuration")
	showCmd.Flags().BoolVar(&showCopy, "copy", false, "copy the JSON configuration to the clipboard")
}

func runShow(cmd *cobra.Command, args []string) error {
	th, err := config.LoadTheme()
	if err != nil {
		return err
	}
	a := app.New(app.Options{Theme: th, Seed: config.Site.Seed, Logger: log.Logger()})
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	data, err := showChart(cmd.OutOrStdout(), a, args[0], showOptions{
		Raw:       showRaw,
		Highlight: tty && !showRaw,
		Text:      render.TextOptions{Width: config.Explore.Width, Color: colorEnabled()},
	})
	if err != nil {
		return err
	}
	if showCopy {
		if err := clipboard.WriteAll(string(data)); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "📋 Configuration copied to clipboard")
	}
	return nil
}

type showOptions struct {
	Raw       bool
	Highlight bool
	Text      render.TextOptions
}

// showChart prints the chart on surface and returns its JSON.
func showChart(w io.Writer, a *app.App, surface string, opts showOptions) ([]byte, error) {
	chart, ok := a.Chart(surface)
	if !ok {
		if owner, known := a.Owner(surface); known {
			return nil, fmt.Errorf("%s is not drawn in the initial state of %s; try 'vizlessons explore'", surface, owner.ID())
		}
		return nil, unknownChart(surface, a.AllSurfaces())
	}
	data, err := json.MarshalIndent(chart.Config(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", surface, err)
	}

	if opts.Raw {
		_, err := fmt.Fprintln(w, string(data))
		return data, err
	}
	owner, _ := a.Owner(surface)
	fmt.Fprintf(w, "%s · %s (%s)\n\n", surface, owner.Title(), owner.Policy())
	fmt.Fprintln(w, render.Text(chart.Config(), opts.Text))
	if opts.Highlight {
		if err := quick.Highlight(w, string(data)+"\n", "json", "terminal256", "monokai"); err == nil {
			return data, nil
		}
	}
	_, err = fmt.Fprintln(w, string(data))
	return data, err
}

// unknownChart suggests the closest chart ids.
func unknownChart(id string, candidates []string) error {
	matches := fuzzy.Find(id, candidates)
	if len(matches) == 0 {
		return fmt.Errorf("unknown chart %q; run 'vizlessons list' for chart ids", id)
	}
	suggestions := make([]string, 0, 3)
	for _, m := range matches {
		if len(suggestions) == 3 {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return fmt.Errorf("unknown chart %q; did you mean %s?", id, strings.Join(suggestions, ", "))
}

// colorEnabled reports whether charts are drawn in color: the config
// allows it and stdout is a terminal not opted out via NO_COLOR.
func colorEnabled() bool {
	return config != nil && config.Explore.Color &&
		termenv.NewOutput(os.Stdout).EnvColorProfile() != termenv.Ascii
}
