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
	"strings"

	"github.com/spf13/cobra"
	"github.com/teradata-labs/vizlessons/pkg/lessons"
	"github.com/teradata-labs/vizlessons/pkg/site"
)

var listTopic int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the interactive demos",
	Long: `List every demo controller with its topic, update policy and the chart
surfaces it draws on.

Examples:
  vizlessons list
  vizlessons list --topic 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return listDemos(cmd.OutOrStdout(), lessons.All(), listTopic)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVar(&listTopic, "topic", 0, "only list demos of this topic (1-6)")
}

func listDemos(w io.Writer, controllers []lessons.Controller, topic int) error {
	if topic < 0 || topic > len(site.TopicTitles) {
		return fmt.Errorf("topic must be between 1 and %d", len(site.TopicTitles))
	}
	current := 0
	n := 0
	for _, c := range controllers {
		if topic != 0 && c.Topic() != topic {
			continue
		}
		if c.Topic() != current {
			current = c.Topic()
			fmt.Fprintf(w, "\n%d. %s\n", current, site.TopicTitles[current])
		}
		surfaces := c.Manifest().Surfaces
		fmt.Fprintf(w, "  %-22s %-8s %s\n", c.ID(), c.Policy(), c.Title())
		if len(surfaces) > 0 {
			fmt.Fprintf(w, "  %-22s %-8s ↳ %s\n", "", "", strings.Join(surfaces, ", "))
		}
		n++
	}
	fmt.Fprintf(w, "\n%d demos\n", n)
	return nil
}
