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

package memory

import (
	"fmt"

	"github.com/jetsetilly/rdram64/environment"
	"github.com/jetsetilly/rdram64/hardware/memory/bus"
	"github.com/jetsetilly/rdram64/hardware/memory/memorymap"
	"github.com/jetsetilly/rdram64/hardware/memory/rdram"
	"github.com/jetsetilly/rdram64/hardware/memory/ri"
	"github.com/jetsetilly/rdram64/logger"
	"github.com/jetsetilly/rdram64/savestate"
)

// RegisterSelect is the gate that allows access to the RDRAM registers. On
// the console the gate is a bit in a register of the MIPS interface.
type RegisterSelect struct {
	Enabled bool
}

// RegisterMode implements the bus.RegisterMode interface.
func (sel *RegisterSelect) RegisterMode() bool {
	return sel.Enabled
}

// Memory is the memory subsystem.
type Memory struct {
	env *environment.Environment

	RDRAM  *rdram.RDRAM
	RI     *ri.RI
	Select *RegisterSelect
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The tracer can be nil. Power() must be called before the memory is used.
func NewMemory(env *environment.Environment, tracer bus.Tracer) *Memory {
	mem := &Memory{
		env:    env,
		Select: &RegisterSelect{},
	}
	mem.RDRAM = rdram.NewRDRAM(env, mem.Select, tracer)
	mem.RI = ri.NewRI(env, mem.RDRAM.Status(), tracer)
	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%s%s", mem.RDRAM, mem.RI)
}

// SetTracer changes the trace hooks of the RDRAM and the RI.
func (mem *Memory) SetTracer(tracer bus.Tracer) {
	mem.RDRAM.SetTracer(tracer)
	mem.RI.SetTracer(tracer)
}

// Power the memory subsystem. See the Power() function of the RDRAM and RI
// types for the difference between a cold power and a soft reset.
func (mem *Memory) Power(reset bool) {
	mem.Select.Enabled = false
	mem.RDRAM.Power(reset)
	mem.RI.Power(reset)
}

// Snapshot creates a copy of the memory subsystem in its current state. The
// copy is not connected to a tracer.
func (mem *Memory) Snapshot() *Memory {
	n := &Memory{
		env:    mem.env,
		Select: &RegisterSelect{Enabled: mem.Select.Enabled},
		RDRAM:  mem.RDRAM.Snapshot(),
	}
	n.RI = mem.RI.Snapshot()
	n.RI.Plumb(n.RDRAM.Status())
	return n
}

// Serialize implements the savestate.Saveable interface. The RDRAM is stored
// before the RI.
func (mem *Memory) Serialize(s savestate.Serializer) {
	mem.RDRAM.Serialize(s)
	mem.RI.Serialize(s)
	s.Bool(&mem.Select.Enabled)
}

// Read implements the bus.MemoryBus interface. Reads from the register areas
// must be word sized.
func (mem *Memory) Read(size bus.Size, address uint32, peripheral string) uint64 {
	switch memorymap.MapAddress(address) {
	case memorymap.RDRAM:
		return mem.RDRAM.Read(size, address, peripheral)
	case memorymap.RDRAMRegisters:
		if size == bus.Word {
			return uint64(mem.RDRAM.ReadRegister(address))
		}
	case memorymap.RIRegisters:
		if size == bus.Word {
			return uint64(mem.RI.ReadRegister(address))
		}
	default:
		logger.Logf(mem.env, "memory", "read from unmapped address %08x", address)
		return 0
	}

	logger.Logf(mem.env, "memory", "%s read from register address %08x", size, address)
	return 0
}

// Write implements the bus.MemoryBus interface. Writes to the register areas
// must be word sized.
func (mem *Memory) Write(size bus.Size, address uint32, data uint64, peripheral string) {
	switch memorymap.MapAddress(address) {
	case memorymap.RDRAM:
		mem.RDRAM.Write(size, address, data, peripheral)
		return
	case memorymap.RDRAMRegisters:
		if size == bus.Word {
			mem.RDRAM.WriteRegister(address, uint32(data))
			return
		}
	case memorymap.RIRegisters:
		if size == bus.Word {
			mem.RI.WriteRegister(address, uint32(data))
			return
		}
	default:
		logger.Logf(mem.env, "memory", "write to unmapped address %08x", address)
		return
	}

	logger.Logf(mem.env, "memory", "%s write to register address %08x", size, address)
}

// ReadBurst implements the bus.MemoryBus interface. Bursts are only possible
// in the RDRAM area.
func (mem *Memory) ReadBurst(address uint32, words []uint32, peripheral string) {
	if memorymap.MapAddress(address) != memorymap.RDRAM {
		clear(words)
		return
	}
	mem.RDRAM.ReadBurst(address, words, peripheral)
}

// WriteBurst implements the bus.MemoryBus interface. Bursts are only possible
// in the RDRAM area.
func (mem *Memory) WriteBurst(address uint32, words []uint32, peripheral string) {
	if memorymap.MapAddress(address) != memorymap.RDRAM {
		return
	}
	mem.RDRAM.WriteBurst(address, words, peripheral)
}
