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

// Package memory ties together the parts of the memory subsystem. The
// Memory type owns one RDRAM and one RI and the register select gate that
// controls access to the RDRAM registers.
//
//	                        DEBUGGER
//
//	                            |
//	                      debugger bus
//	                            |
//	                           \/
//
//	    CPU ---- memory bus ---- MEMORY ---- RDRAM ---- modules
//	                               |           |
//	                               |        status
//	                               |           |
//	                                ------- RI -
//
// Addresses are decoded by the MapAddress() function in the memorymap
// package. Word accesses to the register areas are passed to the register bus
// of the RDRAM or the RI. Accesses to the RDRAM area are passed to the memory
// bus of the RDRAM.
//
// The status bits shared by the RDRAM and the RI are owned by the RDRAM. The
// RI is given a pointer to them when it is created.
package memory
