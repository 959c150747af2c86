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

package tracer

import (
	"fmt"
	"io"

	"github.com/jetsetilly/rdram64/hardware/memory/bus"
	"github.com/jetsetilly/rdram64/hardware/memory/memorymap"
	"github.com/jetsetilly/rdram64/logger"
)

// Log adds an entry to the central logger for every event.
type Log struct {
	perm logger.Permission
}

// NewLog is the preferred method of initialisation for the Log type.
func NewLog(perm logger.Permission) *Log {
	return &Log{perm: perm}
}

// TraceRegister implements the bus.Tracer interface.
func (l *Log) TraceRegister(e bus.RegisterEvent) {
	logger.Log(l.perm, "trace", e)
}

// TraceMemory implements the bus.Tracer interface.
func (l *Log) TraceMemory(e bus.MemoryEvent) {
	logger.Log(l.perm, "trace", e)
}

// Writer writes every event to an io.Writer.
type Writer struct {
	w io.Writer
}

// NewWriter is the preferred method of initialisation for the Writer type.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// TraceRegister implements the bus.Tracer interface.
func (w *Writer) TraceRegister(e bus.RegisterEvent) {
	fmt.Fprintln(w.w, e)
}

// TraceMemory implements the bus.Tracer interface.
func (w *Writer) TraceMemory(e bus.MemoryEvent) {
	fmt.Fprintln(w.w, e)
}

// Multi sends each event to every tracer in the list.
type Multi []bus.Tracer

// TraceRegister implements the bus.Tracer interface.
func (m Multi) TraceRegister(e bus.RegisterEvent) {
	for _, t := range m {
		t.TraceRegister(e)
	}
}

// TraceMemory implements the bus.Tracer interface.
func (m Multi) TraceMemory(e bus.MemoryEvent) {
	for _, t := range m {
		t.TraceMemory(e)
	}
}

// Recorder keeps the most recent events.
type Recorder struct {
	max       int
	registers []bus.RegisterEvent
	memory    []bus.MemoryEvent
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The max argument is the maximum number of events of each kind that
// are kept.
func NewRecorder(max int) *Recorder {
	return &Recorder{
		max:       max,
		registers: make([]bus.RegisterEvent, 0, max),
		memory:    make([]bus.MemoryEvent, 0, max),
	}
}

// TraceRegister implements the bus.Tracer interface.
func (r *Recorder) TraceRegister(e bus.RegisterEvent) {
	if len(r.registers) >= r.max {
		r.registers = append(r.registers[:0], r.registers[1:]...)
	}
	r.registers = append(r.registers, e)
}

// TraceMemory implements the bus.Tracer interface.
func (r *Recorder) TraceMemory(e bus.MemoryEvent) {
	if len(r.memory) >= r.max {
		r.memory = append(r.memory[:0], r.memory[1:]...)
	}
	r.memory = append(r.memory, e)
}

// Reset removes all recorded events.
func (r *Recorder) Reset() {
	r.registers = r.registers[:0]
	r.memory = r.memory[:0]
}

// Registers returns the recorded register events, oldest first. The returned
// slice should not be modified.
func (r *Recorder) Registers() []bus.RegisterEvent {
	return r.registers
}

// Memory returns the recorded memory events, oldest first. The returned slice
// should not be modified.
func (r *Recorder) Memory() []bus.MemoryEvent {
	return r.memory
}

// DeviceIDs returns the device ID of each recorded memory event. The values
// are float64 for use with plotting packages.
func (r *Recorder) DeviceIDs() []float64 {
	ids := make([]float64, 0, len(r.memory))
	for _, e := range r.memory {
		ids = append(ids, float64(memorymap.DeviceID(e.Address)))
	}
	return ids
}
