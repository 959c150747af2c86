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

// Package logger is the logging package used throughout the emulation. Log
// entries are made up of a tag and a detail string. The tag is usually the
// name of the chip making the entry (eg. "RDRAM" or "RI").
//
// Entries are only made if the Permission argument allows it. Emulation code
// passes its environment.Environment as the Permission, which means only the
// main emulation will produce log entries. Use logger.Allow when an entry
// should always be made.
//
// The package level functions write to a single central log. Separate logs can
// be created with NewLogger().
package logger
