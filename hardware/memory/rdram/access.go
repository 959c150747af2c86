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

package rdram

import (
	"encoding/binary"

	"github.com/jetsetilly/rdram64/curated"
	"github.com/jetsetilly/rdram64/hardware/memory/bus"
	"github.com/jetsetilly/rdram64/hardware/memory/memorymap"
)

// access updates the status bits and the sensed row latch for a memory access
// to the address. returns true if data should be transferred.
func (r *RDRAM) access(address uint32, write bool) bool {
	id := memorymap.DeviceID(address)

	r.status.Bank(id, write)

	var m *Module
	if id < memorymap.NumDeviceIDs {
		m = r.Responder(uint16(id))
	}
	if m == nil {
		r.status.AckErr = true
		return false
	}

	m.SensedRow[id&1] = memorymap.SensedRow(address)

	return m.Valid
}

// inRange returns true if an access of the size at the address is inside
// the memory array.
func (r *RDRAM) inRange(address uint32, size bus.Size) bool {
	return uint64(address)+uint64(size) <= uint64(len(r.ram))
}

func (r *RDRAM) traceMemory(dir bus.Direction, size bus.Size, address uint32, value uint64, peripheral string) {
	if r.tracer == nil || peripheral == "" {
		return
	}
	if !r.env.Prefs.ExtendedDiagnostics.Get().(bool) {
		return
	}
	r.tracer.TraceMemory(bus.MemoryEvent{
		Dir:        dir,
		Address:    address,
		Size:       size,
		Value:      value,
		Peripheral: peripheral,
	})
}

// Read implements the bus.MemoryBus interface. The address is aligned down to
// the size of the access.
//
// Reads from a device ID with no responder, from an invalid module, or from
// outside the memory array return zero.
func (r *RDRAM) Read(size bus.Size, address uint32, peripheral string) uint64 {
	r.traceMemory(bus.Read, size, address, 0, peripheral)

	if !size.Valid() {
		return 0
	}
	address = size.Align(address)

	if !r.access(address, false) || !r.inRange(address, size) {
		return 0
	}

	switch size {
	case bus.Byte:
		return uint64(r.ram[address])
	case bus.Half:
		return uint64(binary.BigEndian.Uint16(r.ram[address:]))
	case bus.Word:
		return uint64(binary.BigEndian.Uint32(r.ram[address:]))
	case bus.Dual:
		return binary.BigEndian.Uint64(r.ram[address:])
	}

	return 0
}

// Write implements the bus.MemoryBus interface. The address is aligned down
// to the size of the access. Bits of data that do not fit in the access size
// are ignored.
//
// Writes to a device ID with no responder, to an invalid module, or to
// outside the memory array are discarded.
func (r *RDRAM) Write(size bus.Size, address uint32, data uint64, peripheral string) {
	r.traceMemory(bus.Write, size, address, data, peripheral)

	if !size.Valid() {
		return
	}
	address = size.Align(address)

	if !r.access(address, true) || !r.inRange(address, size) {
		return
	}

	switch size {
	case bus.Byte:
		r.ram[address] = uint8(data)
	case bus.Half:
		binary.BigEndian.PutUint16(r.ram[address:], uint16(data))
	case bus.Word:
		binary.BigEndian.PutUint32(r.ram[address:], uint32(data))
	case bus.Dual:
		binary.BigEndian.PutUint64(r.ram[address:], data)
	}
}

// ReadBurst implements the bus.MemoryBus interface. Each word is read as
// though by a separate call to Read(). If the address is outside the memory
// array the words are zeroed and the status bits are unchanged.
func (r *RDRAM) ReadBurst(address uint32, words []uint32, peripheral string) {
	if !r.inRange(address, bus.Byte) {
		clear(words)
		return
	}
	for i := range words {
		words[i] = uint32(r.Read(bus.Word, address|uint32(i*4), peripheral))
	}
}

// WriteBurst implements the bus.MemoryBus interface. Each word is written as
// though by a separate call to Write(). If the address is outside the memory
// array nothing happens.
func (r *RDRAM) WriteBurst(address uint32, words []uint32, peripheral string) {
	if !r.inRange(address, bus.Byte) {
		return
	}
	for i, w := range words {
		r.Write(bus.Word, address|uint32(i*4), uint64(w), peripheral)
	}
}

// Sentinel error returned by Peek() and Poke().
const AddressError = "rdram: address out of range: %08x"

// Peek implements the bus.DebuggerBus interface.
func (r *RDRAM) Peek(address uint32) (uint8, error) {
	if !r.inRange(address, bus.Byte) {
		return 0, curated.Errorf(AddressError, address)
	}
	return r.ram[address], nil
}

// Poke implements the bus.DebuggerBus interface.
func (r *RDRAM) Poke(address uint32, value uint8) error {
	if !r.inRange(address, bus.Byte) {
		return curated.Errorf(AddressError, address)
	}
	r.ram[address] = value
	return nil
}
