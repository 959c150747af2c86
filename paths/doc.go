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

// Package paths contains functions to prepare paths to rdram64 resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the path to the preferences
// file:
//
//	pth := paths.ResourcePath(prefs.DefaultPrefsFile)
//
// The policy of ResourcePath() is simple: if the directory ".rdram64" is
// present in the program's current directory then that is the base path.
// Otherwise the base path is "rdram64" in the directory returned by
// os.UserConfigDir().
//
// ResourcePath() does not create any directories. Code that writes to the
// returned path is responsible for that.
package paths
