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
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/teradata-labs/vizlessons/internal/log"
	"github.com/teradata-labs/vizlessons/pkg/site"
)

var dataOut string

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Export the data behind every chart as a workbook",
	Long: `Write an .xlsx workbook with an index sheet and one sheet per chart holding
the labels and values it plots.

Examples:
  vizlessons data --out lessons.xlsx`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !strings.EqualFold(filepath.Ext(dataOut), ".xlsx") {
			return fmt.Errorf("--out must name an .xlsx file, got %q", dataOut)
		}
		th, err := config.LoadTheme()
		if err != nil {
			return err
		}
		snap, err := site.Capture(site.CaptureOptions{Theme: th, Seed: config.Site.Seed, Logger: log.Logger()})
		if err != nil {
			return err
		}
		if err := site.WriteWorkbook(snap, dataOut); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Wrote %d chart sheets to %s\n", len(snap.Charts()), dataOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dataCmd)
	dataCmd.Flags().StringVar(&dataOut, "out", "lessons.xlsx", "workbook path")
}
