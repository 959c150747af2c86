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
	"fmt"
	"strings"

	"github.com/jetsetilly/rdram64/environment"
	"github.com/jetsetilly/rdram64/hardware/memory/bus"
	"github.com/jetsetilly/rdram64/hardware/memory/memorymap"
	"github.com/jetsetilly/rdram64/hardware/memory/status"
	"github.com/jetsetilly/rdram64/logger"
)

// unmapped is the value in the responder table for a device ID with no
// responder.
const unmapped = -1

// RDRAM owns the memory array, the responder table and the modules.
type RDRAM struct {
	env *environment.Environment

	// gate for register access. a nil gate is always open
	gate bus.RegisterMode

	// trace hooks. may be nil
	tracer bus.Tracer

	// the memory array. the entire addressable space is allocated, whether
	// or not there are modules mapped to all of it
	ram []byte

	// the index of the module that is the responder for each device ID. an
	// entry of unmapped indicates there is no responder
	table [memorymap.NumDeviceIDs]int16

	// all modules that can be fitted. only the first numModules are active
	modules    [memorymap.MaxModules]*Module
	numModules int

	// status bits shared with the RI
	status status.Status
}

// NewRDRAM is the preferred method of initialisation for the RDRAM type. The
// RDRAM is not usable until Power() has been called.
//
// The gate and tracer arguments can be nil.
func NewRDRAM(env *environment.Environment, gate bus.RegisterMode, tracer bus.Tracer) *RDRAM {
	r := &RDRAM{
		env:    env,
		gate:   gate,
		tracer: tracer,
		ram:    make([]byte, memorymap.RDRAMSize),
	}

	for i := range r.modules {
		r.modules[i] = newModule(uint8(i))
	}

	for i := range r.table {
		r.table[i] = unmapped
	}

	return r
}

// SetTracer changes the trace hooks. A nil value removes the hooks.
func (r *RDRAM) SetTracer(tracer bus.Tracer) {
	r.tracer = tracer
}

// Power the RDRAM. A cold power (reset is false) puts every module back to
// the power-on state, clears the memory array and the status bits and then
// maps each active module in turn. A soft reset (reset is true) leaves the
// RDRAM untouched.
//
// The number of active modules is decided by the ExpansionModule preference
// at the time of a cold power.
func (r *RDRAM) Power(reset bool) {
	if reset {
		return
	}

	clear(r.ram)
	for i := range r.table {
		r.table[i] = unmapped
	}
	r.status.Reset()

	r.numModules = memorymap.BaseModules
	if r.env.Prefs.ExpansionModule.Get().(bool) {
		r.numModules = memorymap.MaxModules
	}

	for _, m := range r.modules {
		m.reset()
	}

	for _, m := range r.active() {
		r.mapModule(m)
	}
}

// active returns the modules that are taking part in the emulation.
func (r *RDRAM) active() []*Module {
	return r.modules[:r.numModules]
}

// Modules returns the active modules in priority order. The modules should
// not be altered directly.
func (r *RDRAM) Modules() []*Module {
	return r.active()
}

// Status returns the shared status record.
func (r *RDRAM) Status() *status.Status {
	return &r.status
}

// Responder returns the module that responds to the device ID. Returns nil
// if there is no responder.
func (r *RDRAM) Responder(id uint16) *Module {
	if int(id) >= len(r.table) {
		return nil
	}
	idx := r.table[id]
	if idx == unmapped {
		return nil
	}
	return r.modules[idx]
}

// Memory returns the memory array. The slice should not be modified.
func (r *RDRAM) Memory() []byte {
	return r.ram
}

func (r *RDRAM) String() string {
	s := strings.Builder{}
	for _, m := range r.active() {
		s.WriteString(m.String())
		if r.Responder(m.ID) == m {
			s.WriteString(" (responder)")
		} else if m.ID >= memorymap.NumDeviceIDs {
			s.WriteString(" (parked)")
		}
		s.WriteString("\n")
	}
	return s.String()
}

// Snapshot creates a copy of the RDRAM in its current state. The copy is not
// connected to any gate or tracer.
func (r *RDRAM) Snapshot() *RDRAM {
	n := *r
	n.gate = nil
	n.tracer = nil
	n.ram = make([]byte, len(r.ram))
	copy(n.ram, r.ram)
	for i, m := range r.modules {
		n.modules[i] = m.Snapshot()
	}
	return &n
}

// RegisterSnapshot returns a copy of the State of each active module. Useful
// for displaying the register state of the modules.
func (r *RDRAM) RegisterSnapshot() []State {
	s := make([]State, 0, r.numModules)
	for _, m := range r.active() {
		s = append(s, m.State)
	}
	return s
}

// Table returns a copy of the responder table. An entry of -1 indicates that
// there is no responder for the device ID.
func (r *RDRAM) Table() [memorymap.NumDeviceIDs]int16 {
	return r.table
}

// MappedIDs returns a summary of the responder table as a string. Only
// device IDs with a responder are included.
func (r *RDRAM) MappedIDs() string {
	s := strings.Builder{}
	for id, idx := range r.table {
		if idx == unmapped {
			continue
		}
		s.WriteString(fmt.Sprintf("%3d: module %d\n", id, idx))
	}
	return s.String()
}

func (r *RDRAM) traceRegister(dir bus.Direction, device uint16, reg uint32, data uint32) {
	if r.tracer == nil {
		return
	}
	r.tracer.TraceRegister(bus.RegisterEvent{
		Chip:     "RDRAM",
		Dir:      dir,
		Device:   device,
		Register: reg,
		Data:     data,
	})
}

// ReadRegister implements the bus.RegisterBus interface.
func (r *RDRAM) ReadRegister(address uint32) uint32 {
	a := memorymap.DecodeRegister(address)
	reg := Register(a.Register)

	if a.Broadcast {
		logger.Logf(r.env, "RDRAM", "register read in broadcast mode: %s", a)
	}

	if r.gate != nil && !r.gate.RegisterMode() && !alwaysReadable(reg, a.Upper) {
		logger.Logf(r.env, "RDRAM", "register read without register mode: %s", a)
		return 0
	}

	m := r.Responder(a.DeviceID)
	if m == nil {
		r.status.AckErr = true
		logger.Logf(r.env, "RDRAM", "no responder for device ID %d", a.DeviceID)
		return 0
	}

	if !m.DeviceEnable {
		logger.Logf(r.env, "RDRAM", "register read without device enable: %s", a)
		return 0
	}

	data := m.readRegister(reg, a.Upper)
	r.traceRegister(bus.Read, m.ID, a.Register, data)

	return data
}

// WriteRegister implements the bus.RegisterBus interface.
func (r *RDRAM) WriteRegister(address uint32, data uint32) {
	a := memorymap.DecodeRegister(address)
	reg := Register(a.Register)

	if a.Broadcast {
		for _, m := range r.active() {
			r.writeModule(m, reg, a.Upper, data)
		}
		r.traceRegister(bus.Write, memorymap.BroadcastDevice, a.Register, data)
		return
	}

	m := r.Responder(a.DeviceID)
	if m == nil {
		r.status.AckErr = true
		logger.Logf(r.env, "RDRAM", "no responder for device ID %d", a.DeviceID)
		return
	}

	r.writeModule(m, reg, a.Upper, data)
	r.traceRegister(bus.Write, a.DeviceID, a.Register, data)
}

// writeModule writes to the module register and remaps the module if the
// device ID has changed.
func (r *RDRAM) writeModule(m *Module, reg Register, upper bool, data uint32) {
	id, changed := m.writeRegister(reg, upper, data)
	if !changed {
		return
	}

	logger.Logf(r.env, "RDRAM", "device ID changed: %d -> %d (module %d)", m.ID, id, m.Index)

	r.unmapModule(m)
	m.ID = id
	r.mapModule(m)
}
