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
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"github.com/teradata-labs/vizlessons/pkg/lessons"
	"github.com/teradata-labs/vizlessons/pkg/story"
	"github.com/teradata-labs/vizlessons/pkg/theme"
)

var stepsDiff bool

var stepsCmd = &cobra.Command{
	Use:   "steps [walkthrough|complexity]",
	Short: "Print the steps of a multi-step demo",
	Long: `Print every step of a multi-step demo. With --diff, print how each step's
chart configuration differs from the previous one.

Examples:
  vizlessons steps
  vizlessons steps complexity --diff`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"walkthrough", "complexity"},
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "walkthrough"
		if len(args) == 1 {
			name = args[0]
		}
		th, err := config.LoadTheme()
		if err != nil {
			return err
		}
		steps, err := namedSteps(th, name)
		if err != nil {
			return err
		}
		return printSteps(cmd.OutOrStdout(), steps, stepsDiff)
	},
}

func init() {
	rootCmd.AddCommand(stepsCmd)
	stepsCmd.Flags().BoolVar(&stepsDiff, "diff", false, "diff each step's configuration against the previous step")
}

func namedSteps(th *theme.Theme, name string) ([]story.Step, error) {
	switch name {
	case "walkthrough":
		return lessons.WalkthroughStory(th), nil
	case "complexity":
		return lessons.ComplexityStory(th), nil
	}
	return nil, fmt.Errorf("unknown multi-step demo %q (want walkthrough or complexity)", name)
}

func printSteps(w io.Writer, steps []story.Step, diff bool) error {
	prev := ""
	for i, s := range steps {
		fmt.Fprintf(w, "── Step %d/%d: %s\n", i+1, len(steps), s.Title)
		if s.Text != "" {
			fmt.Fprintf(w, "   %s\n", s.Text)
		}
		if !diff || s.Build == nil {
			continue
		}
		cfg, err := s.Build()
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		fmt.Fprintln(w, lineDiff(prev, string(data)))
		prev = string(data)
	}
	return nil
}

// lineDiff prints the changed lines between a and b.
func lineDiff(a, b string) string {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		default:
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			sb.WriteString(prefix + line + "\n")
		}
	}
	if sb.Len() == 0 {
		return "   (no change)"
	}
	return sb.String()
}
