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

// Package merge layers partial chart configuration patches over a base.
//
// Maps merge recursively. Everything else, including slices and explicit
// nil values, replaces the base value wholesale: a color list or a dataset
// list is a single decision, never a set of patchable fields.
package merge

import (
	"strings"
)

// Map is a nested chart configuration mapping.
type Map = map[string]any

// Merge returns a new map holding every key of base with patch layered on
// top. Neither input is modified.
func Merge(base, patch Map) Map {
	result := Clone(base)
	if result == nil {
		result = Map{}
	}
	for key, pv := range patch {
		if pm, ok := asMap(pv); ok {
			bm, _ := asMap(result[key])
			result[key] = Merge(bm, pm)
			continue
		}
		result[key] = cloneValue(pv)
	}
	return result
}

// Chain folds Merge over layers from left to right, so later layers win.
func Chain(layers ...Map) Map {
	result := Map{}
	for _, layer := range layers {
		result = Merge(result, layer)
	}
	return result
}

// Clone returns a deep copy of m. Nested maps and slices are copied;
// scalar leaves are shared.
func Clone(m Map) Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Map:
		return Clone(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []Map:
		out := make([]Map, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	case []float64:
		return append([]float64(nil), t...)
	case []int:
		return append([]int(nil), t...)
	default:
		return v
	}
}

func asMap(v any) (Map, bool) {
	m, ok := v.(Map)
	return m, ok
}

// Get walks a dotted path ("scales.y.min") and returns the leaf value.
func Get(m Map, path string) (any, bool) {
	parts := strings.Split(path, ".")
	var cur any = m
	for _, p := range parts {
		cm, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = cm[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Set writes value at a dotted path, creating intermediate maps as
// needed. A non-map value in the middle of the path is replaced.
func Set(m Map, path string, value any) {
	parts := strings.Split(path, ".")
	cur := m
	for _, p := range parts[:len(parts)-1] {
		next, ok := asMap(cur[p])
		if !ok {
			next = Map{}
			cur[p] = next
		}
		cur = next
	}
	cur[parts[len(parts)-1]] = value
}

// Delete removes the leaf at a dotted path if present.
func Delete(m Map, path string) {
	parts := strings.Split(path, ".")
	cur := m
	for _, p := range parts[:len(parts)-1] {
		next, ok := asMap(cur[p])
		if !ok {
			return
		}
		cur = next
	}
	delete(cur, parts[len(parts)-1])
}

// Patch builds a nested map from dotted paths, for call sites that only
// want to override a handful of leaves.
func Patch(pairs map[string]any) Map {
	out := Map{}
	for path, v := range pairs {
		Set(out, path, v)
	}
	return out
}
