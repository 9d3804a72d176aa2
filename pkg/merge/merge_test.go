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
package merge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		base  Map
		patch Map
		want  Map
	}{
		{
			name:  "keeps base keys the patch does not name",
			base:  Map{"a": 1, "b": 2},
			patch: Map{"b": 3},
			want:  Map{"a": 1, "b": 3},
		},
		{
			name: "merges nested maps recursively",
			base: Map{"scales": Map{"y": Map{"grid": Map{"color": "grey", "drawBorder": false}}}},
			patch: Map{"scales": Map{"y": Map{"grid": Map{"display": false}, "min": 0}}},
			want: Map{"scales": Map{"y": Map{
				"grid": Map{"color": "grey", "drawBorder": false, "display": false},
				"min":  0,
			}}},
		},
		{
			name:  "replaces sequences atomically",
			base:  Map{"colors": []any{"#111", "#222", "#333"}},
			patch: Map{"colors": []any{"#fff"}},
			want:  Map{"colors": []any{"#fff"}},
		},
		{
			name:  "explicit nil overwrites",
			base:  Map{"title": Map{"display": true}, "min": 10},
			patch: Map{"min": nil},
			want:  Map{"title": Map{"display": true}, "min": nil},
		},
		{
			name:  "map patch over scalar base starts from empty",
			base:  Map{"title": false},
			patch: Map{"title": Map{"display": true}},
			want:  Map{"title": Map{"display": true}},
		},
		{
			name:  "scalar patch over map base replaces",
			base:  Map{"annotation": Map{"x": 1}},
			patch: Map{"annotation": false},
			want:  Map{"annotation": false},
		},
		{
			name:  "nil base",
			base:  nil,
			patch: Map{"a": Map{"b": 1}},
			want:  Map{"a": Map{"b": 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.base, tt.patch)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	base := Map{"plugins": Map{"legend": Map{"display": true}}, "list": []any{1, 2}}
	patch := Map{"plugins": Map{"legend": Map{"display": false}}}

	got := Merge(base, patch)
	Set(got, "plugins.legend.position", "bottom")
	got["list"].([]any)[0] = 99

	display, _ := Get(base, "plugins.legend.display")
	assert.Equal(t, true, display)
	_, ok := Get(base, "plugins.legend.position")
	assert.False(t, ok)
	assert.Equal(t, 1, base["list"].([]any)[0])

	pd, _ := Get(patch, "plugins.legend.display")
	assert.Equal(t, false, pd)
}

func TestMerge_PatchSequenceIsCopied(t *testing.T) {
	colors := []string{"#a", "#b"}
	got := Merge(Map{}, Map{"colors": colors})
	colors[0] = "#z"
	assert.Equal(t, []string{"#a", "#b"}, got["colors"])
}

func TestChain(t *testing.T) {
	theme := Map{"plugins": Map{"legend": Map{"display": true, "labels": Map{"padding": 16}}}}
	defaults := Map{"plugins": Map{"legend": Map{"display": false}}}
	extra := Map{"plugins": Map{"legend": Map{"display": true}}, "indexAxis": "y"}

	got := Chain(theme, defaults, extra)

	display, _ := Get(got, "plugins.legend.display")
	assert.Equal(t, true, display)
	padding, _ := Get(got, "plugins.legend.labels.padding")
	assert.Equal(t, 16, padding)
	assert.Equal(t, "y", got["indexAxis"])
}

func TestGetSetDelete(t *testing.T) {
	m := Map{}
	Set(m, "scales.y.min", 30000)
	Set(m, "scales.y.grid.display", false)

	v, ok := Get(m, "scales.y.min")
	require.True(t, ok)
	assert.Equal(t, 30000, v)

	_, ok = Get(m, "scales.x.min")
	assert.False(t, ok)

	// Walking through a scalar is a miss, not a panic.
	_, ok = Get(m, "scales.y.min.value")
	assert.False(t, ok)

	Delete(m, "scales.y.min")
	_, ok = Get(m, "scales.y.min")
	assert.False(t, ok)

	Delete(m, "nothing.here")
}

func TestPatch(t *testing.T) {
	p := Patch(map[string]any{
		"scales.y.ticks.color": "#fff",
		"scales.y.min":         0,
	})
	want := Map{"scales": Map{"y": Map{"ticks": Map{"color": "#fff"}, "min": 0}}}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Patch() mismatch (-want +got):\n%s", diff)
	}
}

func TestClone(t *testing.T) {
	assert.Nil(t, Clone(nil))

	src := Map{"datasets": []Map{{"data": []float64{1, 2}}}}
	dup := Clone(src)
	dup["datasets"].([]Map)[0]["data"].([]float64)[0] = 42

	assert.Equal(t, 1.0, src["datasets"].([]Map)[0]["data"].([]float64)[0])
}
