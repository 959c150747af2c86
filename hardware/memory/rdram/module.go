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
	"github.com/jetsetilly/rdram64/hardware/memory/memorymap"
)

// State is the register state of a module, along with the device ID the
// module is claiming and its priority. The fields are in the order they are
// stored in a state file.
type State struct {
	// the device ID the module is currently claiming
	ID uint16

	// the position of the module in the module list. a lower value means a
	// higher priority
	Index uint8

	// a valid module has the device enable bit set and a calibration value
	// inside the operating window. data is only transferred to and from a
	// valid module
	Valid bool

	// DEVICE_TYPE
	DeviceType uint32

	// DEVICE_ID. only bits 20 to 35 are used
	IDField uint64

	// DELAY
	DelayBits   uint32
	AckWinDelay uint8
	ReadDelay   uint8
	AckDelay    uint8
	WriteDelay  uint8

	// MODE
	CCEnable     bool
	CCMult       bool
	PwrLng       bool
	AutoSkip     bool
	DeviceEnable bool
	AckDisable   bool
	CCValue      uint8

	// REF_INTERVAL
	RefreshInterval uint32

	// REF_ROW
	RefreshRow  uint16
	RefreshBank bool

	// RAS_INTERVAL
	RowPrecharge  uint8
	RowSense      uint8
	RowImpRestore uint8
	RowExpRestore uint8

	// MIN_INTERVAL
	MinInterval uint32

	// ADDRESS_SELECT
	SwapField    uint16
	SwapFieldInv uint16

	// DEVICE_MANUFACTURER
	Manufacturer uint32

	// the most recently accessed row in each half of the module
	SensedRow [2]uint16
}

// Module is a single RDRAM module.
//
// The fields should not be changed directly. Changes to the module state
// should be made through the register interface of the RDRAM type.
type Module struct {
	State

	// contents of the module when it is not the responder for its device ID
	shadow []byte
}

func newModule(index uint8) *Module {
	m := &Module{
		shadow: make([]byte, memorymap.ModuleSize),
	}
	m.Index = index
	m.reset()
	return m
}

// reset module to the power-on state. the shadow memory is cleared.
func (m *Module) reset() {
	m.State = State{
		ID:    0,
		Index: m.Index,

		DeviceType: deviceType,

		DelayBits: delayBits,

		AutoSkip: true,
		CCValue:  ccMax,

		MinInterval:  minInterval,
		SwapFieldInv: swapFieldMask,
		Manufacturer: manufacturer,
	}
	clear(m.shadow)
}

// Size returns the capacity of the module in bytes.
func (m *Module) Size() int {
	return len(m.shadow)
}

// span returns the number of device IDs the module occupies.
func (m *Module) span() int {
	return len(m.shadow) / memorymap.DeviceIDSize
}

// Shadow returns the shadow memory of the module. The contents are only
// meaningful when the module is not the responder for its device ID. The
// returned slice should not be modified.
func (m *Module) Shadow() []byte {
	return m.shadow
}

func (m *Module) String() string {
	var valid string
	if !m.Valid {
		valid = " invalid"
	}
	return fmt.Sprintf("module %d: id=%d cc=%d%s", m.Index, m.ID, m.CCValue, valid)
}

// Snapshot creates a copy of the module in its current state.
func (m *Module) Snapshot() *Module {
	n := *m
	n.shadow = make([]byte, len(m.shadow))
	copy(n.shadow, m.shadow)
	return &n
}

func (m *Module) readRegister(reg Register, upper bool) uint32 {
	var data uint32

	if upper {
		if reg < upperRowRegisters {
			for i, r := range sensedRowMap {
				data = bits.Copy32(data, r.lo, uint32(m.SensedRow[i]), rowLo)
				data = bits.Copy32(data, r.hi, uint32(m.SensedRow[i]), rowHi)
			}
			return data
		}
	} else {
		switch reg {
		case RegDeviceType:
			return m.DeviceType
		case RegDeviceID:
			for _, f := range idFieldMap {
				data = f.data.Set32(data, uint32(f.field.Get(m.IDField)))
			}
			return data
		}
	}

	switch reg {
	case RegDelay:
		data = m.DelayBits
		data = delayAckWin.Set32(data, uint32(m.AckWinDelay))
		data = delayRead.Set32(data, uint32(m.ReadDelay))
		data = delayAck.Set32(data, uint32(m.AckDelay))
		data = delayWrite.Set32(data, uint32(m.WriteDelay))

	case RegMode:
		// the CCEnable bit is not readable
		data = modeCCMult.SetBool(data, !m.CCMult)
		data = modePwrLng.SetBool(data, m.PwrLng)
		data = modeAutoSkip.SetBool(data, m.AutoSkip)
		data = modeDeviceEnable.SetBool(data, m.DeviceEnable)
		data = modeAckDisable.SetBool(data, m.AckDisable)

		// calibration bits are inverted in manual mode
		var invert uint64
		if !m.CCEnable {
			invert = 1
		}
		for _, c := range ccValueMap {
			data = bits.B(c.data).Set32(data, uint32(bits.B(c.cc).Get(uint64(m.CCValue))^invert))
		}

	case RegRefInterval:
		data = m.RefreshInterval

	case RegRefRow:
		data = bits.Copy32(data, refRowLo, uint32(m.RefreshRow), rowLo)
		data = bits.Copy32(data, refRowHi, uint32(m.RefreshRow), rowHi)
		data = refRowBank.SetBool(data, m.RefreshBank)

	case RegRASInterval:
		data = rasPrecharge.Set32(data, uint32(m.RowPrecharge))
		data = rasSense.Set32(data, uint32(m.RowSense))
		data = rasImpRestore.Set32(data, uint32(m.RowImpRestore))
		data = rasExpRestore.Set32(data, uint32(m.RowExpRestore))

	case RegMinInterval:
		data = m.MinInterval

	case RegAddressSelect:
		data = bits.Copy32(data, swapLo, uint32(m.SwapField), rowLo)
		data = bits.Copy32(data, swapHi, uint32(m.SwapField), rowHi)

	case RegManufacturer:
		data = m.Manufacturer
	}

	return data
}

// writeRegister updates the module state. If the write is to the DEVICE_ID
// register and the device ID has changed, the new ID is returned along with a
// value of true. The ID field of the module is not changed. It is the
// caller's responsibility to remap the module.
func (m *Module) writeRegister(reg Register, upper bool, data uint32) (uint16, bool) {
	if upper {
		if reg < upperRowRegisters {
			for i, r := range sensedRowMap {
				m.SensedRow[i] = uint16(bits.Copy32(uint32(m.SensedRow[i]), rowLo, data, r.lo))
				m.SensedRow[i] = uint16(bits.Copy32(uint32(m.SensedRow[i]), rowHi, data, r.hi))
			}
			return m.ID, false
		}
	} else if reg == RegDeviceID {
		for _, f := range idFieldMap {
			m.IDField = f.field.Set(m.IDField, uint64(f.data.Get32(data)))
		}

		// the low bits of the ID field are not compared for larger modules
		m.IDField &^= uint64(m.Size() - 1)

		id := uint16(idFieldDevice.Get(m.IDField))
		return id, id != m.ID
	}

	switch reg {
	case RegDelay:
		m.AckWinDelay = uint8(delayAckWin.Get32(data))
		m.ReadDelay = uint8(delayRead.Get32(data))
		m.AckDelay = uint8(delayAck.Get32(data))
		m.WriteDelay = uint8(delayWrite.Get32(data))

	case RegMode:
		m.CCEnable = modeCCEnable.Bool(data)
		m.CCMult = modeCCMult.Bool(data)
		m.PwrLng = modePwrLng.Bool(data)
		m.AutoSkip = modeAutoSkip.Bool(data)
		m.DeviceEnable = modeDeviceEnable.Bool(data)
		m.AckDisable = modeAckDisable.Bool(data)

		var cc uint8
		for _, c := range ccValueMap {
			cc |= uint8(bits.B(c.data).Get32(data)^1) << c.cc
		}
		if m.CCEnable {
			cc = autoCalibrate(cc)
		}
		m.CCValue = cc

		m.Valid = m.DeviceEnable && m.CCValue > ccWindowMin && m.CCValue < ccWindowMax

	case RegRefRow:
		m.RefreshRow = uint16(bits.Copy32(uint32(m.RefreshRow), rowLo, data, refRowLo))
		m.RefreshRow = uint16(bits.Copy32(uint32(m.RefreshRow), rowHi, data, refRowHi))
		m.RefreshBank = refRowBank.Bool(data)

	case RegRASInterval:
		m.RowPrecharge = uint8(rasPrecharge.Get32(data))
		m.RowSense = uint8(rasSense.Get32(data))
		m.RowImpRestore = uint8(rasImpRestore.Get32(data))
		m.RowExpRestore = uint8(rasExpRestore.Get32(data))

	case RegAddressSelect:
		m.SwapField = uint16(bits.Copy32(uint32(m.SwapField), rowLo, data, swapLo))
		m.SwapField = uint16(bits.Copy32(uint32(m.SwapField), rowHi, data, swapHi))
		m.SwapFieldInv = ^m.SwapField & swapFieldMask

	case RegDeviceType, RegRefInterval, RegMinInterval, RegManufacturer:
		// read-only
	}

	return m.ID, false
}
