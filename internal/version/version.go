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

// Package version reports the build version of vizlessons.
package version

import "runtime/debug"

// Set at build time:
//
//	go build -ldflags="-X github.com/teradata-labs/vizlessons/internal/version.Version=vX.Y.Z \
//	  -X github.com/teradata-labs/vizlessons/internal/version.Commit=$(git rev-parse --short HEAD)"
var (
	Version = "0.3.0"
	Commit  = ""
)

// Get returns the release version, "dev" when unset.
func Get() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

// Revision is the commit the binary was built from: Commit when set,
// otherwise the VCS revision stamped by the go tool, shortened to 7.
func Revision() string {
	if Commit != "" {
		return Commit
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return ""
}

// String is the version with its revision, e.g. "0.3.0+1a2b3c4".
func String() string {
	if rev := Revision(); rev != "" {
		return Get() + "+" + rev
	}
	return Get()
}
