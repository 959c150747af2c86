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

// Package savestate implements a binary state file format for the memory
// subsystem.
//
// Types that can be saved implement the Saveable interface. The Serialize()
// function of a Saveable is used for both saving and loading. The function
// passes pointers to each of its fields, in a fixed order, to the Serializer.
// When saving, the Encoder writes the value being pointed to. When loading,
// the Decoder overwrites the value being pointed to. This means that the order
// of fields is defined in exactly one place.
//
// All values are stored big-endian. Errors are sticky. The first error
// encountered is returned by Save() or Load() and all subsequent operations
// are ignored.
package savestate
