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

// Package bits provides accessors for bit fields packed into fixed width
// integers. Hardware registers are modelled as plain integers and each field
// of a register is described by a Field value. The bit placement is explicit
// and does not depend on any compiler layout.
//
// Bit numbering starts at zero for the least significant bit. A field covers
// the inclusive range Lo to Hi.
package bits

// Field describes a contiguous range of bits [Lo, Hi] in a word.
type Field struct {
	Lo uint
	Hi uint
}

// F is a convenience function for creating a Field.
func F(lo, hi uint) Field {
	return Field{Lo: lo, Hi: hi}
}

// B is a convenience function for creating a Field of width one.
func B(n uint) Field {
	return Field{Lo: n, Hi: n}
}

// Width returns the number of bits in the field.
func (f Field) Width() uint {
	return f.Hi - f.Lo + 1
}

// Mask returns the field mask, unshifted. For example the mask for a field of
// width 3 is 0b111 regardless of where the field is placed.
func (f Field) Mask() uint64 {
	if f.Width() >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << f.Width()) - 1
}

// Get the value of the field from word v.
func (f Field) Get(v uint64) uint64 {
	return (v >> f.Lo) & f.Mask()
}

// Set the field in word v to n. Bits of n that do not fit in the field are
// discarded. Returns the new word.
func (f Field) Set(v uint64, n uint64) uint64 {
	m := f.Mask() << f.Lo
	return (v &^ m) | ((n << f.Lo) & m)
}

// Get32 is the same as Get() but for 32 bit words.
func (f Field) Get32(v uint32) uint32 {
	return uint32(f.Get(uint64(v)))
}

// Set32 is the same as Set() but for 32 bit words.
func (f Field) Set32(v uint32, n uint32) uint32 {
	return uint32(f.Set(uint64(v), uint64(n)))
}

// Copy32 copies the src field of word s into the dst field of word v and
// returns the new word. The two fields should be the same width. If dst is
// narrower than src, the upper bits of the src field are lost.
func Copy32(v uint32, dst Field, s uint32, src Field) uint32 {
	return dst.Set32(v, src.Get32(s))
}

// Bool returns true if the single bit field is set in word v.
func (f Field) Bool(v uint32) bool {
	return f.Get32(v) != 0
}

// SetBool sets or clears the field in word v. For a field wider than one bit,
// all bits of the field are set when b is true.
func (f Field) SetBool(v uint32, b bool) uint32 {
	if b {
		return f.Set32(v, uint32(f.Mask()))
	}
	return f.Set32(v, 0)
}
