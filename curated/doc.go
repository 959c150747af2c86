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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are used for the few parts
// of the program that can fail: preference files, state files and the command
// line. The emulation itself never returns an error.
//
// Curated errors are created with the Errorf() function. The pattern string
// given to Errorf() identifies the error and can be tested for with the Is()
// function:
//
//	e := curated.Errorf("state file: bad magic (%s)", magic)
//
//	if curated.Is(e, "state file: bad magic (%s)") {
//		fmt.Println("true")
//	}
//
// Patterns that are tested for in more than one place should be stored in an
// exported const string. For example, the savestate package exports BadMagic.
//
// The Has() function checks whether the pattern occurs anywhere in the chain
// of wrapped curated errors.
//
//	f := curated.Errorf("load: %v", e)
//	curated.Has(f, "state file: bad magic (%s)") // true
//	curated.Is(f, "state file: bad magic (%s)")  // false
//
// The Error() implementation normalises the message so that adjacent
// duplicate parts are removed. Parts are separated by the sub-string ": ". So
// wrapping "load: file missing" with "load: %v" produces "load: file missing"
// and not "load: load: file missing".
package curated
