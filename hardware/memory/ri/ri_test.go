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

package ri_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/rdram64/environment"
	"github.com/jetsetilly/rdram64/hardware/memory/bus"
	"github.com/jetsetilly/rdram64/hardware/memory/ri"
	"github.com/jetsetilly/rdram64/hardware/memory/status"
	"github.com/jetsetilly/rdram64/savestate"
	"github.com/jetsetilly/rdram64/test"
)

type recorder struct {
	events []bus.RegisterEvent
}

func (r *recorder) TraceRegister(e bus.RegisterEvent) {
	r.events = append(r.events, e)
}

func (r *recorder) TraceMemory(_ bus.MemoryEvent) {
}

func newRI(t *testing.T) (*ri.RI, *status.Status) {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	st := &status.Status{}
	r := ri.NewRI(env, st, nil)
	r.Power(false)
	return r, st
}

// register addresses as seen by the address decoder
func address(reg ri.Register) uint32 {
	return 0x0470_0000 | uint32(reg)<<2
}

func TestRegisters(t *testing.T) {
	r, _ := newRI(t)

	for _, c := range []struct {
		reg   ri.Register
		write uint32
		read  uint32
	}{
		{reg: ri.RegMode, write: 0xffffffff, read: 0x0000000f},
		{reg: ri.RegMode, write: 0x00000006, read: 0x00000006},
		{reg: ri.RegConfig, write: 0xffffffff, read: 0x0000007f},
		{reg: ri.RegSelect, write: 0xffffff14, read: 0x00000014},
		{reg: ri.RegRefresh, write: 0xffffffff, read: 0x007fffff},
		{reg: ri.RegRefresh, write: 0x00063634, read: 0x00063634},
		{reg: ri.RegLatency, write: 0xffffffff, read: 0x0000000f},
	} {
		r.WriteRegister(address(c.reg), c.write)
		test.ExpectEquality(t, r.ReadRegister(address(c.reg)), c.read, c.reg)
	}

	test.ExpectEquality(t, r.RefreshDelayClean, uint8(0x34))
	test.ExpectEquality(t, r.RefreshDelayDirty, uint8(0x36))
	test.ExpectEquality(t, r.RefreshBank, false)
	test.ExpectEquality(t, r.RefreshEnable, true)
	test.ExpectEquality(t, r.RefreshOptimize, true)
	test.ExpectEquality(t, r.RxSelect, uint8(4))
	test.ExpectEquality(t, r.TxSelect, uint8(1))

	// only the low five bits of the address are significant
	test.ExpectEquality(t, r.ReadRegister(0xffff_ffe0|uint32(ri.RegLatency)<<2), uint32(0x0f))
}

func TestCurrentLoad(t *testing.T) {
	r, st := newRI(t)

	// bits 1 and 2 are always set
	test.ExpectEquality(t, r.ReadRegister(address(ri.RegCurrentLoad)), uint32(0x06))

	st.AckErr = true
	r.WriteRegister(address(ri.RegMode), 0x08)
	r.WriteRegister(address(ri.RegSelect), 0x10)
	test.ExpectEquality(t, r.ReadRegister(address(ri.RegCurrentLoad)), uint32(0x1f))

	// writes have no effect
	r.WriteRegister(address(ri.RegCurrentLoad), 0)
	test.ExpectEquality(t, r.ReadRegister(address(ri.RegCurrentLoad)), uint32(0x1f))
	test.ExpectEquality(t, st.AckErr, true)
}

func TestWriteToClear(t *testing.T) {
	r, st := newRI(t)

	for _, v := range []uint32{0x00000000, 0xffffffff, 0x00000007} {
		st.AckErr = true
		st.NackErr = true
		st.OverRangeErr = true
		test.ExpectEquality(t, r.ReadRegister(address(ri.RegError)), uint32(0x07))
		r.WriteRegister(address(ri.RegError), v)
		test.ExpectEquality(t, r.ReadRegister(address(ri.RegError)), uint32(0x00), v)
	}

	for _, v := range []uint32{0x00000000, 0xffffffff, 0x0000ff00} {
		st.BanksValid = 0x5a
		st.BanksDirty = 0x03
		test.ExpectEquality(t, r.ReadRegister(address(ri.RegBankStatus)), uint32(0x035a))
		r.WriteRegister(address(ri.RegBankStatus), v)
		test.ExpectEquality(t, r.ReadRegister(address(ri.RegBankStatus)), uint32(0xff00), v)
	}

	// clearing the bank bits does not clear the error bits and the other way
	// around
	st.AckErr = true
	r.WriteRegister(address(ri.RegBankStatus), 0)
	test.ExpectEquality(t, st.AckErr, true)
	r.WriteRegister(address(ri.RegError), 0)
	test.ExpectEquality(t, st.BanksDirty, uint8(0xff))
}

func TestPower(t *testing.T) {
	r, st := newRI(t)
	r.WriteRegister(address(ri.RegLatency), 0x0f)
	st.OverRangeErr = true

	r.Power(true)
	test.ExpectEquality(t, r.Registers, ri.Registers{})
	test.ExpectEquality(t, st.OverRangeErr, true)
}

func TestTrace(t *testing.T) {
	r, _ := newRI(t)
	rec := &recorder{}
	r.SetTracer(rec)

	r.WriteRegister(address(ri.RegSelect), 0x14)
	r.ReadRegister(address(ri.RegSelect))
	test.DemandEquality(t, len(rec.events), 2)
	test.ExpectEquality(t, rec.events[0], bus.RegisterEvent{Chip: "RI", Dir: bus.Write, Register: 3, Data: 0x14})
	test.ExpectEquality(t, rec.events[1], bus.RegisterEvent{Chip: "RI", Dir: bus.Read, Register: 3, Data: 0x14})
}

func TestSerialize(t *testing.T) {
	r, st := newRI(t)
	r.WriteRegister(address(ri.RegRefresh), 0x007fffff)
	r.WriteRegister(address(ri.RegConfig), 0x40)
	st.BanksValid = 0x11
	st.AckErr = true

	s := r.Snapshot()

	var buf bytes.Buffer
	test.DemandSuccess(t, savestate.Save(&buf, r))

	n, nst := newRI(t)
	test.DemandSuccess(t, savestate.Load(&buf, n))
	test.ExpectEquality(t, n.Registers, s.Registers)
	test.ExpectEquality(t, *nst, *s.Status())
}
