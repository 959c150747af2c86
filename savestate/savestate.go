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

package savestate

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/jetsetilly/rdram64/curated"
)

// Sentinel error patterns.
const (
	BadMagic           = "savestate: not a state file"
	UnsupportedVersion = "savestate: unsupported version (%d)"
	EncodeError        = "savestate: encode: %v"
	DecodeError        = "savestate: decode: %v"
)

// magic string at the start of every state file.
const magic = "RDRAM64\x00"

// Version of the state file format.
const Version = 1

// Serializer is passed to the Serialize() function of a Saveable.
type Serializer interface {
	Bool(v *bool)
	Uint8(v *uint8)
	Uint16(v *uint16)
	Uint32(v *uint32)
	Uint64(v *uint64)
	Int16s(v []int16)
	Bytes(v []byte)
}

// Saveable is implemented by any type that can be stored in a state file.
type Saveable interface {
	Serialize(s Serializer)
}

// Save the state of each Saveable to the io.Writer, in order.
func Save(w io.Writer, sv ...Saveable) error {
	enc := newEncoder(w)

	enc.Bytes([]byte(magic))
	v := uint16(Version)
	enc.Uint16(&v)

	for _, s := range sv {
		s.Serialize(enc)
	}

	if enc.err != nil {
		return curated.Errorf(EncodeError, enc.err)
	}

	err := enc.w.Flush()
	if err != nil {
		return curated.Errorf(EncodeError, err)
	}

	return nil
}

// Load the state of each Saveable from the io.Reader. The Saveable instances
// must be given in the same order as they were given to Save().
//
// If an error is returned the Saveable instances may have been partially
// updated.
func Load(r io.Reader, sv ...Saveable) error {
	dec := newDecoder(r)

	m := make([]byte, len(magic))
	dec.Bytes(m)
	if dec.err != nil || string(m) != magic {
		return curated.Errorf(BadMagic)
	}

	var v uint16
	dec.Uint16(&v)
	if dec.err != nil {
		return curated.Errorf(DecodeError, dec.err)
	}
	if v != Version {
		return curated.Errorf(UnsupportedVersion, v)
	}

	for _, s := range sv {
		s.Serialize(dec)
	}

	if dec.err != nil {
		return curated.Errorf(DecodeError, dec.err)
	}

	return nil
}

type encoder struct {
	w   *bufio.Writer
	buf [8]byte
	err error
}

func newEncoder(w io.Writer) *encoder {
	return &encoder{w: bufio.NewWriter(w)}
}

func (e *encoder) write(b []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(b)
}

func (e *encoder) Bool(v *bool) {
	if *v {
		e.buf[0] = 1
	} else {
		e.buf[0] = 0
	}
	e.write(e.buf[:1])
}

func (e *encoder) Uint8(v *uint8) {
	e.buf[0] = *v
	e.write(e.buf[:1])
}

func (e *encoder) Uint16(v *uint16) {
	binary.BigEndian.PutUint16(e.buf[:], *v)
	e.write(e.buf[:2])
}

func (e *encoder) Uint32(v *uint32) {
	binary.BigEndian.PutUint32(e.buf[:], *v)
	e.write(e.buf[:4])
}

func (e *encoder) Uint64(v *uint64) {
	binary.BigEndian.PutUint64(e.buf[:], *v)
	e.write(e.buf[:8])
}

func (e *encoder) Int16s(v []int16) {
	for i := range v {
		binary.BigEndian.PutUint16(e.buf[:], uint16(v[i]))
		e.write(e.buf[:2])
	}
}

func (e *encoder) Bytes(v []byte) {
	e.write(v)
}

type decoder struct {
	r   *bufio.Reader
	buf [8]byte
	err error
}

func newDecoder(r io.Reader) *decoder {
	return &decoder{r: bufio.NewReader(r)}
}

func (d *decoder) read(b []byte) bool {
	if d.err != nil {
		return false
	}
	_, d.err = io.ReadFull(d.r, b)
	return d.err == nil
}

func (d *decoder) Bool(v *bool) {
	if d.read(d.buf[:1]) {
		*v = d.buf[0] != 0
	}
}

func (d *decoder) Uint8(v *uint8) {
	if d.read(d.buf[:1]) {
		*v = d.buf[0]
	}
}

func (d *decoder) Uint16(v *uint16) {
	if d.read(d.buf[:2]) {
		*v = binary.BigEndian.Uint16(d.buf[:])
	}
}

func (d *decoder) Uint32(v *uint32) {
	if d.read(d.buf[:4]) {
		*v = binary.BigEndian.Uint32(d.buf[:])
	}
}

func (d *decoder) Uint64(v *uint64) {
	if d.read(d.buf[:8]) {
		*v = binary.BigEndian.Uint64(d.buf[:])
	}
}

func (d *decoder) Int16s(v []int16) {
	for i := range v {
		if !d.read(d.buf[:2]) {
			return
		}
		v[i] = int16(binary.BigEndian.Uint16(d.buf[:]))
	}
}

func (d *decoder) Bytes(v []byte) {
	d.read(v)
}
