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
	"github.com/jetsetilly/rdram64/hardware/memory/memorymap"
	"github.com/jetsetilly/rdram64/savestate"
)

// Serialize implements the savestate.Saveable interface.
//
// The number of active modules is stored first, followed by each active
// module, the memory array and the responder table.
func (r *RDRAM) Serialize(s savestate.Serializer) {
	n := uint8(r.numModules)
	s.Uint8(&n)
	r.numModules = min(int(n), memorymap.MaxModules)

	for i, m := range r.active() {
		m.serialize(s)

		// the index is fixed by the position of the module
		m.Index = uint8(i)
	}

	s.Bytes(r.ram)
	s.Int16s(r.table[:])

	// entries that refer to inactive modules can only come from a damaged
	// state file
	for i, idx := range r.table {
		if idx < unmapped || int(idx) >= r.numModules {
			r.table[i] = unmapped
		}
	}
}

func (m *Module) serialize(s savestate.Serializer) {
	s.Uint16(&m.ID)
	s.Uint8(&m.Index)
	s.Bool(&m.Valid)
	s.Uint32(&m.DeviceType)
	s.Uint64(&m.IDField)
	s.Uint32(&m.DelayBits)
	s.Uint8(&m.AckWinDelay)
	s.Uint8(&m.ReadDelay)
	s.Uint8(&m.AckDelay)
	s.Uint8(&m.WriteDelay)
	s.Bool(&m.CCEnable)
	s.Bool(&m.CCMult)
	s.Bool(&m.PwrLng)
	s.Bool(&m.AutoSkip)
	s.Bool(&m.DeviceEnable)
	s.Bool(&m.AckDisable)
	s.Uint8(&m.CCValue)
	s.Uint32(&m.RefreshInterval)
	s.Uint16(&m.RefreshRow)
	s.Bool(&m.RefreshBank)
	s.Uint8(&m.RowPrecharge)
	s.Uint8(&m.RowSense)
	s.Uint8(&m.RowImpRestore)
	s.Uint8(&m.RowExpRestore)
	s.Uint32(&m.MinInterval)
	s.Uint16(&m.SwapField)
	s.Uint16(&m.SwapFieldInv)
	s.Uint32(&m.Manufacturer)
	s.Uint16(&m.SensedRow[0])
	s.Uint16(&m.SensedRow[1])
	s.Bytes(m.shadow)
}
