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
package visualization

import (
	"math"
	"strconv"
	"strings"

	"github.com/teradata-labs/vizlessons/pkg/merge"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TickFormat describes how a numeric tick or label is printed. Engines
// turn the map form into a formatter callback; Go code calls Format.
type TickFormat struct {
	Prefix string
	Suffix string

	// Scale multiplies the value before printing. Zero means 1.
	Scale float64

	// Decimals is the fixed number of decimals. Negative prints the
	// shortest representation.
	Decimals int

	// Signed prefixes positive values with "+".
	Signed bool

	// Grouping inserts thousands separators.
	Grouping bool

	// Names maps integer values to category names: value v prints
	// Names[v-NameOffset], or "" when out of range.
	Names      []string
	NameOffset int
}

var printer = message.NewPrinter(language.English)

// Format prints v.
func (f TickFormat) Format(v float64) string {
	if len(f.Names) > 0 {
		i := int(math.Round(v)) - f.NameOffset
		if i < 0 || i >= len(f.Names) {
			return ""
		}
		return f.Names[i]
	}
	if f.Scale != 0 {
		v *= f.Scale
	}
	num := strconv.FormatFloat(v, 'f', f.Decimals, 64)
	if f.Grouping {
		decimals := f.Decimals
		if decimals < 0 {
			decimals = 0
			if i := strings.IndexByte(num, '.'); i >= 0 {
				decimals = len(num) - i - 1
			}
		}
		num = printer.Sprintf("%."+strconv.Itoa(decimals)+"f", v)
	}
	sign := ""
	if f.Signed && v > 0 {
		sign = "+"
	}
	return sign + f.Prefix + num + f.Suffix
}

// Map is the declarative form stored under ticks.format.
func (f TickFormat) Map() merge.Map {
	m := merge.Map{
		"prefix":   f.Prefix,
		"suffix":   f.Suffix,
		"decimals": f.Decimals,
		"signed":   f.Signed,
		"grouping": f.Grouping,
	}
	if f.Scale != 0 {
		m["scale"] = f.Scale
	}
	if len(f.Names) > 0 {
		m["names"] = strs(f.Names)
		m["nameOffset"] = f.NameOffset
	}
	return m
}

// Common formats used across the lessons.
var (
	FormatThousandsUSD = TickFormat{Prefix: "$", Suffix: "K", Decimals: -1}
	FormatMillionsUSD  = TickFormat{Prefix: "$", Suffix: "M", Decimals: 1}
	FormatPercent      = TickFormat{Suffix: "%", Decimals: -1}
	FormatSignedPct    = TickFormat{Suffix: "%", Decimals: -1, Signed: true}
	FormatSignedMin    = TickFormat{Suffix: " min", Decimals: -1, Signed: true}
	FormatIncomeK      = TickFormat{Prefix: "$", Suffix: "k", Scale: 0.001, Decimals: 0}
	FormatDollars      = TickFormat{Prefix: "$", Decimals: 0, Grouping: true}
)

// FormatFromMap reads the declarative form back. It reports false when m
// is not a tick format.
func FormatFromMap(v any) (TickFormat, bool) {
	m, ok := v.(merge.Map)
	if !ok {
		return TickFormat{}, false
	}
	f := TickFormat{Decimals: -1}
	f.Prefix, _ = m["prefix"].(string)
	f.Suffix, _ = m["suffix"].(string)
	f.Signed, _ = m["signed"].(bool)
	f.Grouping, _ = m["grouping"].(bool)
	if d, ok := toInt(m["decimals"]); ok {
		f.Decimals = d
	}
	if s, ok := m["scale"].(float64); ok {
		f.Scale = s
	}
	if names := Strings(m["names"]); len(names) > 0 {
		f.Names = names
		f.NameOffset, _ = toInt(m["nameOffset"])
	}
	return f, true
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}
