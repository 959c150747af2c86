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
	"github.com/jetsetilly/rdram64/hardware/memory/bus"
	"github.com/jetsetilly/rdram64/hardware/memory/memorymap"
	"github.com/jetsetilly/rdram64/hardware/memory/rdram"
	"github.com/jetsetilly/rdram64/hardware/memory/ri"
	"github.com/jetsetilly/rdram64/logger"
)

// ParkingID is the device ID every module is moved to at the start of the
// boot sequence.
const ParkingID = 0x100

// BootCalibration is the manual calibration value used by the boot sequence.
const BootCalibration = 32

// rdramRegister returns the physical address of a module register.
func rdramRegister(a memorymap.RegisterAddress) uint32 {
	return memorymap.OriginRDRAMRegisters | memorymap.EncodeRegister(a)
}

// riRegister returns the physical address of an RI register.
func riRegister(reg ri.Register) uint32 {
	return memorymap.OriginRI | uint32(reg)<<2
}

// Boot configures the RDRAM in the same way as the console's boot code. Every
// module is parked on the same device ID and then each responder for the
// parking ID is given the next free device ID in turn. Because the responder
// is always the highest priority module, the modules end up in priority order
// from device ID zero.
//
// All accesses are made through the memory bus. Returns the number of modules
// found.
func (mem *Memory) Boot() int {
	mem.Write(bus.Word, riRegister(ri.RegConfig), 0x40, "")
	mem.Write(bus.Word, riRegister(ri.RegCurrentLoad), 0, "")
	mem.Write(bus.Word, riRegister(ri.RegSelect), 0x14, "")
	mem.Write(bus.Word, riRegister(ri.RegMode), 0x0e, "")

	mem.Select.Enabled = true
	defer func() {
		mem.Select.Enabled = false
	}()

	broadcast := memorymap.RegisterAddress{Broadcast: true}

	broadcast.Register = uint32(rdram.RegDeviceID)
	mem.Write(bus.Word, rdramRegister(broadcast), uint64(rdram.EncodeDeviceID(ParkingID)), "")

	broadcast.Register = uint32(rdram.RegMode)
	mode := rdram.EncodeMode(rdram.Mode{
		DeviceEnable: true,
		AutoSkip:     true,
		CCValue:      BootCalibration,
	})
	mem.Write(bus.Word, rdramRegister(broadcast), uint64(mode), "")

	parked := memorymap.RegisterAddress{DeviceID: ParkingID}

	var n int
	for n < memorymap.MaxModules {
		// the DEVICE_TYPE register will read as zero if there is no
		// responder for the parking ID
		parked.Register = uint32(rdram.RegDeviceType)
		if mem.Read(bus.Word, rdramRegister(parked), "") == 0 {
			break
		}

		id := uint16(n * memorymap.ModuleSize / memorymap.DeviceIDSize)
		parked.Register = uint32(rdram.RegDeviceID)
		mem.Write(bus.Word, rdramRegister(parked), uint64(rdram.EncodeDeviceID(id)), "")
		n++
	}

	// searching for the end of the module list sets the ack error
	mem.Write(bus.Word, riRegister(ri.RegError), 0, "")
	mem.Write(bus.Word, riRegister(ri.RegBankStatus), 0, "")

	logger.Logf(mem.env, "memory", "boot found %d RDRAM modules", n)

	return n
}
