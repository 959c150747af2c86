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

// Package rdram emulates the RDRAM memory modules and the device ID
// arbitration that decides which module is visible in the memory array.
//
// Each module claims a device ID through its DEVICE_ID register. More than
// one module can claim the same device ID but only one of them, the
// responder, is visible at any one time. The responder is always the module
// with the lowest index (the highest priority) of those claiming the ID.
//
// The contents of a module that is not the responder are kept in the
// module's shadow memory. When a module stops being the responder the
// contents of the memory array are copied to the shadow memory, and when a
// module becomes the responder the shadow memory is copied into the memory
// array.
//
// Device IDs from 0 to 63 are visible in the memory array. IDs from 64 to 511
// can be claimed and the module will respond to register accesses, but the
// memory is not addressable. A module with a device ID of 512 or more is
// parked. It takes no part in arbitration until it is given a smaller device
// ID.
//
// Module registers are accessed through the ReadRegister() and
// WriteRegister() functions. The memory array is accessed through the
// functions of the bus.MemoryBus interface. Every memory access updates the
// shared status record, whether or not any data is transferred.
package rdram
