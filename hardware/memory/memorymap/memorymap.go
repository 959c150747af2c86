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

import "fmt"

// Sizes of the memory subsystem.
const (
	// the live memory array spans the entire addressable RDRAM window
	RDRAMSize = 64 * 1024 * 1024

	// each device ID covers one megabyte of the address space
	DeviceIDSize = 1024 * 1024

	// all modules in the system are the same size. a module of this size
	// claims two consecutive device IDs
	ModuleSize = 2 * 1024 * 1024

	// number of entries in the responder table. device IDs greater than or
	// equal to AddressableDeviceIDs can be claimed but are not visible in the
	// live memory array
	NumDeviceIDs         = 512
	AddressableDeviceIDs = RDRAMSize / DeviceIDSize

	// number of banks tracked by the valid/dirty status bits
	NumBanks = 8

	// number of module slots with and without the expansion
	MaxModules  = 4
	BaseModules = 2
)

// BroadcastDevice is the device ID reported to trace hooks for broadcast
// register writes. It is one past the largest real device ID.
const BroadcastDevice = NumDeviceIDs

// Register address decoding. Only the low twenty bits of a register address
// are significant.
const (
	registerBroadcast   = 0x80000
	registerDeviceMask  = 0x7ffff
	registerDeviceShift = 10
	registerIndexMask   = 0x3ff
	registerIndexShift  = 2
	registerUpperIndex  = 128
	registerSelectMask  = 0xf
)

// RegisterAddress is a decoded RDRAM register address.
type RegisterAddress struct {
	// the broadcast bit is set
	Broadcast bool

	// the device ID being addressed. 0 to 511
	DeviceID uint16

	// register number in the range 0 to 15
	Register uint32

	// the upper half of the register space. at register numbers 0 and 1 the
	// upper half aliases the sensed row latches
	Upper bool
}

func (a RegisterAddress) String() string {
	var s string
	if a.Broadcast {
		s = "broadcast "
	}
	if a.Upper {
		return fmt.Sprintf("%sdevice %d upper register %d", s, a.DeviceID, a.Register)
	}
	return fmt.Sprintf("%sdevice %d register %d", s, a.DeviceID, a.Register)
}

// DecodeRegister splits an RDRAM register address into its parts.
func DecodeRegister(address uint32) RegisterAddress {
	idx := (address & registerIndexMask) >> registerIndexShift
	return RegisterAddress{
		Broadcast: address&registerBroadcast != 0,
		DeviceID:  uint16((address & registerDeviceMask) >> registerDeviceShift),
		Register:  idx & registerSelectMask,
		Upper:     idx >= registerUpperIndex,
	}
}

// EncodeRegister is the inverse of DecodeRegister.
func EncodeRegister(a RegisterAddress) uint32 {
	idx := a.Register & registerSelectMask
	if a.Upper {
		idx |= registerUpperIndex
	}
	address := (uint32(a.DeviceID) << registerDeviceShift) & registerDeviceMask
	address |= idx << registerIndexShift
	if a.Broadcast {
		address |= registerBroadcast
	}
	return address
}

// DeviceID returns the device ID that owns the memory address. The result can
// be larger than NumDeviceIDs for addresses outside the RDRAM range.
func DeviceID(address uint32) uint32 {
	return address / DeviceIDSize
}

// DeviceOrigin returns the address of the first byte of memory belonging to
// the device ID.
func DeviceOrigin(id uint16) uint32 {
	return uint32(id) * DeviceIDSize
}

// SensedRow returns the row number of the memory address, as latched by the
// module that responds to the access.
func SensedRow(address uint32) uint16 {
	return uint16((address >> 11) & 0x1ff)
}

// RI register addresses. Only the low five bits are significant.
const riRegisterMask = 0x1f

// DecodeRI returns the RI register number for the address.
func DecodeRI(address uint32) uint32 {
	return (address & riRegisterMask) >> 2
}
