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

package tracer_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/rdram64/hardware/memory/bus"
	"github.com/jetsetilly/rdram64/logger"
	"github.com/jetsetilly/rdram64/test"
	"github.com/jetsetilly/rdram64/tracer"
)

func TestRecorder(t *testing.T) {
	r := tracer.NewRecorder(2)

	r.TraceMemory(bus.MemoryEvent{Address: 0x0000_0000})
	r.TraceMemory(bus.MemoryEvent{Address: 0x0010_0000})
	r.TraceMemory(bus.MemoryEvent{Address: 0x0030_0000})
	test.DemandEquality(t, len(r.Memory()), 2)
	test.ExpectEquality(t, r.Memory()[0].Address, uint32(0x0010_0000))
	test.ExpectEquality(t, r.Memory()[1].Address, uint32(0x0030_0000))

	ids := r.DeviceIDs()
	test.DemandEquality(t, len(ids), 2)
	test.ExpectEquality(t, ids[0], 1.0)
	test.ExpectEquality(t, ids[1], 3.0)

	r.TraceRegister(bus.RegisterEvent{Register: 1})
	test.ExpectEquality(t, len(r.Registers()), 1)

	r.Reset()
	test.ExpectEquality(t, len(r.Registers()), 0)
	test.ExpectEquality(t, len(r.Memory()), 0)
}

func TestWriterAndMulti(t *testing.T) {
	var a, b bytes.Buffer
	m := tracer.Multi{tracer.NewWriter(&a), tracer.NewWriter(&b)}

	m.TraceRegister(bus.RegisterEvent{Chip: "RI", Dir: bus.Write, Register: 6, Data: 0})
	m.TraceMemory(bus.MemoryEvent{Dir: bus.Read, Size: bus.Byte, Address: 0x10, Peripheral: "CPU"})

	exp := "RI write dev=0 reg=6 data=00000000\nCPU read byte 00000010\n"
	test.ExpectEquality(t, a.String(), exp)
	test.ExpectEquality(t, b.String(), exp)
}

func TestLog(t *testing.T) {
	logger.Clear()
	l := tracer.NewLog(logger.Allow)
	l.TraceRegister(bus.RegisterEvent{Chip: "RDRAM", Dir: bus.Read, Register: 9, Data: 0x500})

	var buf bytes.Buffer
	logger.Write(&buf)
	test.ExpectEquality(t, buf.String(), "trace: RDRAM read dev=0 reg=9 data=00000500\n")
}
