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
package site

import (
	"fmt"
	"math"

	"github.com/teradata-labs/vizlessons/pkg/merge"
	"github.com/teradata-labs/vizlessons/pkg/visualization"
	"github.com/xuri/excelize/v2"
)

// IndexSheet lists every exported chart.
const IndexSheet = "Charts"

// maxSheetName is the spreadsheet limit on sheet name length.
const maxSheetName = 31

// Workbook writes the data behind every chart of the snapshot: an index
// sheet, then one sheet per chart named after its surface. Categorical
// charts get a label column and one column per dataset; scatter charts get
// x, y and r columns per dataset.
func Workbook(snap *Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", IndexSheet); err != nil {
		return nil, fmt.Errorf("failed to name index sheet: %w", err)
	}
	header := []any{"Surface", "Controller", "Topic", "Kind", "Datasets", "Sheet"}
	if err := f.SetSheetRow(IndexSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, c := range snap.Charts() {
		sheet := sheetName(c.Surface)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("failed to add sheet for %s: %w", c.Surface, err)
		}
		var err error
		if c.Config.Kind == visualization.KindScatter {
			err = writePoints(f, sheet, c.Config)
		} else {
			err = writeCategorical(f, sheet, c.Config)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", c.Surface, err)
		}

		row := []any{c.Surface, c.Controller, c.Topic, string(c.Config.Kind), len(c.Config.Datasets), sheet}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(IndexSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// WriteWorkbook saves the workbook of snap to path.
func WriteWorkbook(snap *Snapshot, path string) error {
	f, err := Workbook(snap)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func sheetName(surface string) string {
	if len(surface) > maxSheetName {
		return surface[:maxSheetName]
	}
	return surface
}

func writeCategorical(f *excelize.File, sheet string, cfg *visualization.Config) error {
	header := []any{"Label"}
	for i, ds := range cfg.Datasets {
		header = append(header, datasetLabel(ds, i))
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for r, label := range cfg.Labels {
		row := []any{label}
		for i := range cfg.Datasets {
			vals := cfg.Values(i)
			if r < len(vals) && !math.IsNaN(vals[r]) {
				row = append(row, vals[r])
			} else {
				row = append(row, nil)
			}
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writePoints(f *excelize.File, sheet string, cfg *visualization.Config) error {
	for i, ds := range cfg.Datasets {
		col := i*3 + 1
		label := datasetLabel(ds, i)
		header := []any{label + " x", label + " y", label + " r"}
		cell, _ := excelize.CoordinatesToCellName(col, 1)
		if err := f.SetSheetRow(sheet, cell, &header); err != nil {
			return err
		}
		raw, _ := ds["data"].([]any)
		for r, v := range raw {
			p, ok := v.(merge.Map)
			if !ok {
				continue
			}
			row := []any{p["x"], p["y"], p["r"]}
			cell, _ := excelize.CoordinatesToCellName(col, r+2)
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return err
			}
		}
	}
	return nil
}

func datasetLabel(ds merge.Map, i int) string {
	if l, ok := ds["label"].(string); ok && l != "" {
		return l
	}
	return fmt.Sprintf("Series %d", i+1)
}
