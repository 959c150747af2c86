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

// Package prefs facilitates the storage of preferential values in the
// program. The Bool type can be used to store boolean preference values. Use
// the Disk type to persist values to a file on disk.
//
// The preferences file is a list of key/value pairs, one per line, separated
// by " :: ". The first line of the file is a warning not to edit the file by
// hand.
//
// Values can also be overridden with a string of "key::value" pairs separated
// by semicolons. See Disk.Override() for details. This is useful for command
// line arguments.
package prefs
