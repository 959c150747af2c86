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

package savestate_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/rdram64/curated"
	"github.com/jetsetilly/rdram64/savestate"
	"github.com/jetsetilly/rdram64/test"
)

type example struct {
	b   bool
	u8  uint8
	u16 uint16
	u32 uint32
	u64 uint64
	tbl [4]int16
	mem [16]byte
}

func (e *example) Serialize(s savestate.Serializer) {
	s.Bool(&e.b)
	s.Uint8(&e.u8)
	s.Uint16(&e.u16)
	s.Uint32(&e.u32)
	s.Uint64(&e.u64)
	s.Int16s(e.tbl[:])
	s.Bytes(e.mem[:])
}

func TestRoundTrip(t *testing.T) {
	a := &example{
		b:   true,
		u8:  0x12,
		u16: 0x3456,
		u32: 0x789abcde,
		u64: 0xf0e1d2c3b4a59687,
		tbl: [4]int16{-1, 0, 3, -1},
	}
	copy(a.mem[:], "memory subsystem")

	var buf bytes.Buffer
	test.DemandSuccess(t, savestate.Save(&buf, a))

	// magic, version and the example fields
	test.ExpectEquality(t, buf.Len(), 8+2+1+1+2+4+8+8+16)

	b := &example{}
	test.DemandSuccess(t, savestate.Load(&buf, b))
	test.ExpectEquality(t, *b, *a)
}

func TestMultiple(t *testing.T) {
	a := &example{u8: 1}
	b := &example{u8: 2}

	var buf bytes.Buffer
	test.DemandSuccess(t, savestate.Save(&buf, a, b))

	c := &example{}
	d := &example{}
	test.DemandSuccess(t, savestate.Load(&buf, c, d))
	test.ExpectEquality(t, c.u8, uint8(1))
	test.ExpectEquality(t, d.u8, uint8(2))
}

func TestBadData(t *testing.T) {
	err := savestate.Load(bytes.NewBufferString("not a state file"), &example{})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, savestate.BadMagic))

	// truncated file
	var buf bytes.Buffer
	test.DemandSuccess(t, savestate.Save(&buf, &example{}))
	buf.Truncate(buf.Len() - 1)
	err = savestate.Load(&buf, &example{})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, savestate.DecodeError))

	// version mismatch
	buf.Reset()
	buf.WriteString("RDRAM64\x00")
	buf.Write([]byte{0xff, 0xff})
	err = savestate.Load(&buf, &example{})
	test.ExpectSuccess(t, curated.Is(err, savestate.UnsupportedVersion))
}
