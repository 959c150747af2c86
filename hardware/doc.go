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

// Package hardware is the base package for the emulation of the console's
// memory subsystem. The memory sub-package contains everything required for
// a headless emulation of the RDRAM modules and the RDRAM interface.
//
// The preferences sub-package holds the user preferences that change how the
// hardware is emulated.
package hardware
