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

	"github.com/jetsetilly/rdram64/hardware/memory/bits"
)

// Register identifies one of the module registers.
type Register uint32

// List of module registers.
const (
	RegDeviceType Register = iota
	RegDeviceID
	RegDelay
	RegMode
	RegRefInterval
	RegRefRow
	RegRASInterval
	RegMinInterval
	RegAddressSelect
	RegManufacturer
)

// In the upper half of the register space, register numbers below
// upperRowRegisters read and write the sensed row latches.
const upperRowRegisters = 2

func (r Register) String() string {
	switch r {
	case RegDeviceType:
		return "DEVICE_TYPE"
	case RegDeviceID:
		return "DEVICE_ID"
	case RegDelay:
		return "DELAY"
	case RegMode:
		return "MODE"
	case RegRefInterval:
		return "REF_INTERVAL"
	case RegRefRow:
		return "REF_ROW"
	case RegRASInterval:
		return "RAS_INTERVAL"
	case RegMinInterval:
		return "MIN_INTERVAL"
	case RegAddressSelect:
		return "ADDRESS_SELECT"
	case RegManufacturer:
		return "DEVICE_MANUFACTURER"
	}
	return fmt.Sprintf("register(%d)", uint32(r))
}

// alwaysReadable returns true if the register can be read even when the
// register mode gate is closed. DEVICE_TYPE, DELAY and RAS_INTERVAL are
// always readable.
func alwaysReadable(reg Register, upper bool) bool {
	return (!upper && reg == RegDeviceType) || reg == RegDelay || reg == RegRASInterval
}

// Fixed register values.
const (
	delayBits     = 0x03030203
	minInterval   = 0x0040c0e0
	manufacturer  = 0x00000500
	swapFieldMask = 0x1ff
)

// Default device type:
//
//	28-31	column address bits (11)
//	26		nine bits per byte
//	24		enhanced speed model (no)
//	20-23	bank address bits (1)
//	16-19	row address bits (9)
//	4-7		version (1)
//	0-3		type (0)
var deviceType = func() uint32 {
	var v uint32
	v = bits.F(28, 31).Set32(v, 11)
	v = bits.B(26).SetBool(v, true)
	v = bits.B(24).SetBool(v, false)
	v = bits.F(20, 23).Set32(v, 1)
	v = bits.F(16, 19).Set32(v, 9)
	v = bits.F(4, 7).Set32(v, 1)
	v = bits.F(0, 3).Set32(v, 0)
	return v
}()

// DEVICE_ID register. The bits of the register are scattered across the
// identity field. The identity field is 36 bits wide and the device ID is bits
// 20 to 35 of it.
var idFieldMap = []struct {
	data  bits.Field
	field bits.Field
}{
	{data: bits.F(26, 31), field: bits.F(20, 25)},
	{data: bits.B(23), field: bits.B(26)},
	{data: bits.F(8, 15), field: bits.F(27, 34)},
	{data: bits.B(7), field: bits.B(35)},
}

var idFieldDevice = bits.F(20, 35)

// DELAY register.
var (
	delayAckWin = bits.F(27, 29)
	delayRead   = bits.F(19, 21)
	delayAck    = bits.F(11, 12)
	delayWrite  = bits.F(3, 5)
)

// MODE register.
var (
	modeCCEnable     = bits.B(31)
	modeCCMult       = bits.B(30)
	modePwrLng       = bits.B(29)
	modeAutoSkip     = bits.B(26)
	modeDeviceEnable = bits.B(25)
	modeAckDisable   = bits.B(19)
)

// the six bits of the calibration value are scattered across the MODE
// register. the value is stored inverted.
var ccValueMap = []struct {
	cc   uint
	data uint
}{
	{cc: 0, data: 6},
	{cc: 3, data: 7},
	{cc: 1, data: 14},
	{cc: 4, data: 15},
	{cc: 2, data: 22},
	{cc: 5, data: 23},
}

// calibration value limits. a module is valid only when the calibration value
// is inside the window (exclusive)
const (
	ccMax       = 63
	ccWindowMin = 16
	ccWindowMax = 40
)

// autoCalibrate converts a manual calibration value into the automatic value
// that produces the same output current.
func autoCalibrate(cc uint8) uint8 {
	v := (110371 + 6080*uint32(cc)) / 7581
	if v > ccMax {
		v = ccMax
	}
	return uint8(v)
}

// REF_ROW register.
var (
	refRowLo   = bits.F(25, 31)
	refRowHi   = bits.F(8, 9)
	refRowBank = bits.B(19)
)

// RAS_INTERVAL register.
var (
	rasPrecharge  = bits.F(24, 28)
	rasSense      = bits.F(16, 20)
	rasImpRestore = bits.F(8, 12)
	rasExpRestore = bits.F(0, 4)
)

// ADDRESS_SELECT register.
var (
	swapLo = bits.F(25, 31)
	swapHi = bits.F(16, 17)
)

// the sensed row latches in the upper register space.
var sensedRowMap = [2]struct {
	lo bits.Field
	hi bits.Field
}{
	{lo: bits.F(25, 31), hi: bits.F(16, 17)},
	{lo: bits.F(9, 15), hi: bits.F(0, 1)},
}

// nine bit row values are split into a seven bit and a two bit part.
var (
	rowLo = bits.F(0, 6)
	rowHi = bits.F(7, 8)
)

// EncodeDeviceID returns the value that should be written to the DEVICE_ID
// register to give a module the device ID.
func EncodeDeviceID(id uint16) uint32 {
	field := idFieldDevice.Set(0, uint64(id))

	var data uint32
	for _, m := range idFieldMap {
		data = m.data.Set32(data, uint32(m.field.Get(field)))
	}
	return data
}

// Mode is the decoded form of the MODE register. Used by EncodeMode().
type Mode struct {
	CCEnable     bool
	CCMult       bool
	PwrLng       bool
	AutoSkip     bool
	DeviceEnable bool
	AckDisable   bool
	CCValue      uint8
}

// EncodeMode returns the value that should be written to the MODE register to
// configure a module with the values in Mode.
func EncodeMode(m Mode) uint32 {
	var data uint32
	data = modeCCEnable.SetBool(data, m.CCEnable)
	data = modeCCMult.SetBool(data, m.CCMult)
	data = modePwrLng.SetBool(data, m.PwrLng)
	data = modeAutoSkip.SetBool(data, m.AutoSkip)
	data = modeDeviceEnable.SetBool(data, m.DeviceEnable)
	data = modeAckDisable.SetBool(data, m.AckDisable)
	for _, c := range ccValueMap {
		data = bits.B(c.data).Set32(data, uint32(bits.B(c.cc).Get(uint64(m.CCValue))^1))
	}
	return data
}
