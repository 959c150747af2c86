// This file is part of Rdram64.
//
// Rdram64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rdram64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Rdram64.  If not, see <https://www.gnu.org/licenses/>.

package version

import (
	"runtime/debug"

	"github.com/retroenv/retrogolib/buildinfo"
)

// The name to use when referring to the application
const ApplicationName = "rdram64"

// set by the linker for release builds:
//
//	-ldflags "-X github.com/jetsetilly/rdram64/version.number=v0.1.0"
var number string

// revision and date are taken from the vcs information embedded by the go
// toolchain
var revision string
var date string

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var modified bool
	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			revision = v.Value
		case "vcs.time":
			date = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if revision != "" && modified {
		revision = revision + "+dirty"
	}
}

// Version returns the version string, the revision string and whether this is
// a numbered "release" version.
func Version() (string, string, bool) {
	if number == "" {
		if revision == "" {
			return "local", revision, false
		}
		return "unreleased", revision, false
	}
	return number, revision, true
}

// Banner returns a single line describing the application version, suitable
// for printing at program start.
func Banner() string {
	v, _, _ := Version()
	return ApplicationName + " " + buildinfo.Version(v, revision, date)
}
