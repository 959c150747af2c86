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

// Package memorymap describes the layout of the RDRAM address spaces.
//
// There are two address spaces. The memory address space is a flat 64MB array
// divided into 1MB device ID slots. The register address space addresses the
// registers of individual modules by device ID, with a broadcast bit that
// addresses every module at once.
//
// Register addresses are laid out as follows (bits 19 to 0):
//
//	19     broadcast
//	18-10  device ID
//	9      upper register half
//	5-2    register number
package memorymap
