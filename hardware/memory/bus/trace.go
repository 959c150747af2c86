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

package bus

import "fmt"

// Direction of a bus transaction.
type Direction int

// List of valid Direction values.
const (
	Read Direction = iota
	Write
)

func (d Direction) String() string {
	if d == Write {
		return "write"
	}
	return "read"
}

// RegisterEvent describes a register access.
type RegisterEvent struct {
	// the name of the chip being accessed. "RDRAM" or "RI"
	Chip string

	Dir Direction

	// the device ID being addressed. for broadcast writes the Device field
	// will be memorymap.BroadcastDevice. RI events always have a Device of
	// zero
	Device uint16

	// register number after decoding
	Register uint32

	Data uint32
}

func (e RegisterEvent) String() string {
	return fmt.Sprintf("%s %s dev=%d reg=%d data=%08x", e.Chip, e.Dir, e.Device, e.Register, e.Data)
}

// MemoryEvent describes a raw memory access.
type MemoryEvent struct {
	Dir     Direction
	Address uint32
	Size    Size

	// data value. the value is zero for reads
	Value uint64

	// the peripheral label that was passed to the access function
	Peripheral string
}

func (e MemoryEvent) String() string {
	if e.Dir == Write {
		return fmt.Sprintf("%s %s %s %08x = %x", e.Peripheral, e.Dir, e.Size, e.Address, e.Value)
	}
	return fmt.Sprintf("%s %s %s %08x", e.Peripheral, e.Dir, e.Size, e.Address)
}

// Tracer is implemented by debugging tools that want to be notified of bus
// transactions. Tracer functions are called synchronously and must not access
// the memory subsystem.
type Tracer interface {
	TraceRegister(RegisterEvent)
	TraceMemory(MemoryEvent)
}
