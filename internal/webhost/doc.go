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

// Package webhost runs the lessons in a browser compiled to js/wasm. It
// implements page.Document over the DOM and visualization.Engine over
// Chart.js, then bootstraps every controller against them.
//
// Controls are located through two data attributes: data-group names the
// control's group and data-key its key within the group. Surfaces are
// canvas elements addressed by id.
package webhost
