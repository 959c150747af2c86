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
)

// Map the module at the index into the responder table. The module becomes
// the responder for its device ID if there is no responder or if the current
// responder has a lower priority.
//
// Map is called automatically when the device ID of a module changes. It is
// exported for use by debugging tools.
func (r *RDRAM) Map(index int) {
	if index < 0 || index >= r.numModules {
		return
	}
	r.mapModule(r.modules[index])
}

// Unmap the module at the index from the responder table. The next module
// claiming the same device ID, if any, becomes the responder.
//
// Unmap is called automatically when the device ID of a module changes. It
// is exported for use by debugging tools.
func (r *RDRAM) Unmap(index int) {
	if index < 0 || index >= r.numModules {
		return
	}
	r.unmapModule(r.modules[index])
}

// parked returns true if the module's device ID is outside of the responder
// table.
func (r *RDRAM) parked(m *Module) bool {
	return int(m.ID)+m.span() > len(r.table)
}

// isResponder returns true if the module is the responder for its device ID.
func (r *RDRAM) isResponder(m *Module) bool {
	return !r.parked(m) && r.table[m.ID] == int16(m.Index)
}

// live returns the area of the memory array for the device ID range occupied
// by the module. returns nil if the device ID is outside of the addressable
// range.
func (r *RDRAM) live(m *Module) []byte {
	if m.ID >= memorymap.AddressableDeviceIDs {
		return nil
	}
	origin := int(memorymap.DeviceOrigin(m.ID))
	if origin+m.Size() > len(r.ram) {
		return nil
	}
	return r.ram[origin : origin+m.Size()]
}

// claim makes the module the responder for every device ID it occupies and
// copies its shadow memory into the memory array. the device ID must have no
// responder.
func (r *RDRAM) claim(m *Module) {
	for i := range m.span() {
		r.table[int(m.ID)+i] = int16(m.Index)
	}
	if l := r.live(m); l != nil {
		copy(l, m.shadow)
	}
}

func (r *RDRAM) mapModule(m *Module) {
	if r.parked(m) {
		return
	}

	cur := r.table[m.ID]
	if cur == unmapped {
		r.claim(m)
		return
	}

	// a responder with the same or higher priority keeps the device ID
	if int16(m.Index) >= cur {
		return
	}

	// evict the current responder. the handover in unmapModule() will choose
	// this module because it is now the highest priority module claiming the
	// device ID
	r.unmapModule(r.modules[cur])
}

func (r *RDRAM) unmapModule(m *Module) {
	// the module may not be the responder because a higher priority module
	// has the same device ID. in that case there is nothing to do
	if !r.isResponder(m) {
		return
	}

	for i := range m.span() {
		r.table[int(m.ID)+i] = unmapped
	}

	l := r.live(m)
	if l != nil {
		copy(m.shadow, l)
	}

	// hand over to the highest priority module claiming the same device ID.
	// the device ID has just been vacated so the next module can claim it
	// directly
	//
	// modules of different sizes with overlapping device ID ranges are not
	// handled. all modules are the same size
	for _, n := range r.active() {
		if n.ID == m.ID && n.Index != m.Index {
			r.claim(n)
			return
		}
	}

	if l != nil {
		clear(l)
	}
}
