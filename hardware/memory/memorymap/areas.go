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

package memorymap

// Area identifies the part of the memory subsystem an address belongs to.
type Area int

// List of memory areas.
const (
	Unmapped Area = iota
	RDRAM
	RDRAMRegisters
	RIRegisters
)

func (a Area) String() string {
	switch a {
	case RDRAM:
		return "RDRAM"
	case RDRAMRegisters:
		return "RDRAM registers"
	case RIRegisters:
		return "RI registers"
	}
	return "unmapped"
}

// Origin and memtop of each area in the physical address space. The RDRAM
// memory area ends where the register area begins. Device IDs 63 and above
// are therefore not reachable through the address decoder.
const (
	OriginRDRAM = 0x0000_0000
	MemtopRDRAM = 0x03ef_ffff

	OriginRDRAMRegisters = 0x03f0_0000
	MemtopRDRAMRegisters = 0x03ff_ffff

	OriginRI = 0x0470_0000
	MemtopRI = 0x047f_ffff
)

// MapAddress returns the area the physical address belongs to.
func MapAddress(address uint32) Area {
	switch {
	case address <= MemtopRDRAM:
		return RDRAM
	case address >= OriginRDRAMRegisters && address <= MemtopRDRAMRegisters:
		return RDRAMRegisters
	case address >= OriginRI && address <= MemtopRI:
		return RIRegisters
	}
	return Unmapped
}
