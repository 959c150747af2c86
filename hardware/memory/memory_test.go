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

package memory_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/rdram64/environment"
	"github.com/jetsetilly/rdram64/hardware/memory"
	"github.com/jetsetilly/rdram64/hardware/memory/bus"
	"github.com/jetsetilly/rdram64/hardware/memory/memorymap"
	"github.com/jetsetilly/rdram64/hardware/memory/rdram"
	"github.com/jetsetilly/rdram64/hardware/memory/ri"
	"github.com/jetsetilly/rdram64/savestate"
	"github.com/jetsetilly/rdram64/test"
)

func newMemory(t *testing.T, expansion bool) *memory.Memory {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	test.DemandSuccess(t, env.Prefs.ExpansionModule.Set(expansion))
	mem := memory.NewMemory(env, nil)
	mem.Power(false)
	return mem
}

func TestBoot(t *testing.T) {
	for _, c := range []struct {
		expansion bool
		modules   int
	}{
		{expansion: true, modules: 4},
		{expansion: false, modules: 2},
	} {
		mem := newMemory(t, c.expansion)
		test.ExpectEquality(t, mem.Boot(), c.modules)
		test.ExpectEquality(t, mem.Select.Enabled, false)

		for i, m := range mem.RDRAM.Modules() {
			test.ExpectEquality(t, m.ID, uint16(i*2))
			test.ExpectEquality(t, m.Valid, true)
			test.ExpectEquality(t, mem.RDRAM.Responder(m.ID), m)
		}
		test.ExpectEquality(t, mem.RDRAM.Responder(memory.ParkingID) == nil, true)

		// the boot sequence leaves the error bits clear
		test.ExpectEquality(t, mem.RDRAM.Status().AckErr, false)
	}
}

func TestMemoryBus(t *testing.T) {
	mem := newMemory(t, true)
	mem.Boot()

	// every byte of the available memory can be written to and read back
	size := uint32(len(mem.RDRAM.Modules()) * memorymap.ModuleSize)
	for a := uint32(0); a < size; a += 0x1000 {
		mem.Write(bus.Word, a, uint64(a), "")
	}
	for a := uint32(0); a < size; a += 0x1000 {
		test.DemandEquality(t, mem.Read(bus.Word, a, ""), uint64(a))
	}

	// past the end of the memory
	test.ExpectEquality(t, mem.Read(bus.Word, size, ""), uint64(0))
	test.ExpectEquality(t, mem.RDRAM.Status().AckErr, true)

	w := []uint32{1, 2, 3, 4}
	mem.WriteBurst(0x40, w, "")
	r := make([]uint32, 4)
	mem.ReadBurst(0x40, r, "")
	test.ExpectEquality(t, [4]uint32(r), [4]uint32{1, 2, 3, 4})

	// bursts outside the memory area
	mem.ReadBurst(memorymap.OriginRI, r, "")
	test.ExpectEquality(t, [4]uint32(r), [4]uint32{})
}

func TestRegisterAccess(t *testing.T) {
	mem := newMemory(t, false)
	mem.Boot()

	// the ack error is set by a memory access with no responder and is
	// cleared through the RI
	mem.Read(bus.Word, 0x0040_0000, "")
	errorReg := memorymap.OriginRI | uint32(ri.RegError)<<2
	test.ExpectEquality(t, mem.Read(bus.Word, errorReg, ""), uint64(0x01))
	mem.Write(bus.Word, errorReg, 0xffffffff, "")
	test.ExpectEquality(t, mem.Read(bus.Word, errorReg, ""), uint64(0x00))

	// RDRAM registers
	a := memorymap.OriginRDRAMRegisters | memorymap.EncodeRegister(memorymap.RegisterAddress{DeviceID: 2, Register: uint32(rdram.RegManufacturer)})
	test.ExpectEquality(t, mem.Read(bus.Word, a, ""), uint64(0))
	mem.Select.Enabled = true
	test.ExpectEquality(t, mem.Read(bus.Word, a, ""), uint64(0x500))

	// register areas only allow word access
	test.ExpectEquality(t, mem.Read(bus.Half, a, ""), uint64(0))
	test.ExpectEquality(t, mem.Read(bus.Word, 0x0800_0000, ""), uint64(0))
}

func TestSnapshot(t *testing.T) {
	mem := newMemory(t, false)
	mem.Boot()
	mem.RDRAM.Status().AckErr = true

	s := mem.Snapshot()
	mem.RI.WriteRegister(memorymap.OriginRI|uint32(ri.RegError)<<2, 0)
	test.ExpectEquality(t, s.RI.Status().AckErr, true)

	// the copied RI shares the status of the copied RDRAM
	s.RI.WriteRegister(memorymap.OriginRI|uint32(ri.RegError)<<2, 0)
	test.ExpectEquality(t, s.RDRAM.Status().AckErr, false)
}

func TestSerialize(t *testing.T) {
	mem := newMemory(t, true)
	mem.Boot()
	mem.Write(bus.Dual, 0x0060_0000, 0x0123456789abcdef, "")
	mem.RI.WriteRegister(memorymap.OriginRI|uint32(ri.RegLatency)<<2, 0x0a)

	var buf bytes.Buffer
	test.DemandSuccess(t, savestate.Save(&buf, mem))

	// the state file replaces the number of modules
	n := newMemory(t, false)
	test.DemandSuccess(t, savestate.Load(&buf, n))

	test.ExpectEquality(t, len(n.RDRAM.Modules()), 4)
	test.ExpectEquality(t, n.RDRAM.Table(), mem.RDRAM.Table())
	test.ExpectSuccess(t, bytes.Equal(n.RDRAM.Memory(), mem.RDRAM.Memory()))
	test.ExpectEquality(t, n.RI.Registers, mem.RI.Registers)
	test.ExpectEquality(t, *n.RDRAM.Status(), *mem.RDRAM.Status())
	for i, m := range n.RDRAM.RegisterSnapshot() {
		test.ExpectEquality(t, m, mem.RDRAM.RegisterSnapshot()[i], i)
		test.ExpectSuccess(t, bytes.Equal(n.RDRAM.Modules()[i].Shadow(), mem.RDRAM.Modules()[i].Shadow()), i)
	}
	test.ExpectEquality(t, n.Read(bus.Dual, 0x0060_0000, ""), uint64(0x0123456789abcdef))
}

func TestMemtest(t *testing.T) {
	mem := newMemory(t, false)

	// before boot every module has device ID zero and the first module
	// responds for device IDs zero and one. the module is not calibrated so
	// every word fails
	tested, failed := mem.Test(0xa5a5a5a5)
	test.ExpectEquality(t, tested, 2)
	test.ExpectEquality(t, len(failed), 2*memorymap.DeviceIDSize/2048)

	mem.Boot()
	tested, failed = mem.Test(0x5a5a5a5a)
	test.ExpectEquality(t, tested, 4)
	test.ExpectEquality(t, len(failed), 0)
	test.ExpectEquality(t, mem.Read(bus.Word, 0x0010_0800, ""), uint64(0x5a5a5a5a^0x0010_0800))
}
