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
)

// memtestStride is the distance between the words checked by Test(). One
// word per row of each device ID.
const memtestStride = 2048

// Test writes a pattern to a sample of words in every device ID that has a
// responder and reads the words back through the memory bus. Returns the
// number of device IDs tested and the addresses of any words that did not
// read back correctly.
//
// The contents of the memory are left in place. The test is destructive.
func (mem *Memory) Test(pattern uint32) (int, []uint32) {
	var tested int
	var failed []uint32

	for id := range uint16(memorymap.AddressableDeviceIDs) {
		if mem.RDRAM.Responder(id) == nil {
			continue
		}
		tested++

		origin := memorymap.DeviceOrigin(id)
		for offset := uint32(0); offset < memorymap.DeviceIDSize; offset += memtestStride {
			v := pattern ^ (origin + offset)
			mem.Write(bus.Word, origin+offset, uint64(v), "memtest")
			if uint32(mem.Read(bus.Word, origin+offset, "memtest")) != v {
				failed = append(failed, origin+offset)
			}
		}
	}

	return tested, failed
}
