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

// Engine draws configurations onto named surfaces.
type Engine interface {
	// Create binds cfg to surface and draws it. The engine keeps cfg;
	// callers mutate it in place and call Update to redraw.
	Create(surface string, cfg *Config) (Chart, error)
}

// Chart is one live chart instance.
type Chart interface {
	ID() string
	Surface() string
	Config() *Config
	// Update redraws after in-place mutation of Config.
	Update() error
	// Destroy releases the instance's drawing resources. It is safe to
	// call more than once.
	Destroy() error
}

// SurfaceLocator reports whether a drawable surface exists.
type SurfaceLocator interface {
	HasSurface(id string) bool
}

// DestroyChart destroys c if it is non-nil and returns nil, so owners can
// write `c = DestroyChart(c)`.
func DestroyChart(c Chart) Chart {
	if c != nil {
		_ = c.Destroy()
	}
	return nil
}
