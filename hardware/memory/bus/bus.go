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

// Package bus defines the access patterns for the memory subsystem. The
// console's address decoder routes CPU and co-processor accesses to one of the
// interfaces defined here. For an explanation see the memory package
// documentation.
package bus

import "fmt"

// Size of a memory access in bytes.
type Size int

// List of valid Size values.
const (
	Byte Size = 1
	Half Size = 2
	Word Size = 4
	Dual Size = 8
)

func (s Size) String() string {
	switch s {
	case Byte:
		return "byte"
	case Half:
		return "half"
	case Word:
		return "word"
	case Dual:
		return "dual"
	}
	return fmt.Sprintf("size(%d)", int(s))
}

// Valid returns true if the Size is one of the defined access sizes.
func (s Size) Valid() bool {
	return s == Byte || s == Half || s == Word || s == Dual
}

// Align returns the address aligned down to the access size.
func (s Size) Align(address uint32) uint32 {
	if !s.Valid() {
		return address
	}
	return address &^ uint32(s-1)
}

// Number of words in the two burst transfers. DCache bursts are used for data
// cache line fills and ICache bursts for instruction cache line fills.
const (
	DCacheBurst = 4
	ICacheBurst = 8
)

// RegisterBus defines the operations for register word access. Both the RDRAM
// and the RI implement this interface.
type RegisterBus interface {
	ReadRegister(address uint32) uint32
	WriteRegister(address uint32, data uint32)
}

// MemoryBus defines the operations for raw memory access. The peripheral
// argument is an opaque label identifying the origin of the access. An empty
// label means the access is not reported to the Tracer.
//
// Data is right aligned in the uint64 regardless of access size.
type MemoryBus interface {
	Read(size Size, address uint32, peripheral string) uint64
	Write(size Size, address uint32, data uint64, peripheral string)

	// burst transfers move len(words) words. the length of the slice should
	// be DCacheBurst or ICacheBurst
	ReadBurst(address uint32, words []uint32, peripheral string)
	WriteBurst(address uint32, words []uint32, peripheral string)
}

// RegisterMode is implemented by the collaborator that decides whether
// module registers are accessible. When RegisterMode() returns false only the
// always-on registers can be read.
type RegisterMode interface {
	RegisterMode() bool
}

// DebuggerBus defines the meta-operations for the memory array. Peek and Poke
// access memory without any side effects on the status registers or the
// sensed row latches.
type DebuggerBus interface {
	Peek(address uint32) (uint8, error)
	Poke(address uint32, value uint8) error
}
