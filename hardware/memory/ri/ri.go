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

// Package ri emulates the RDRAM interface. The RI is a small set of
// registers that configure the interface between the console and the RDRAM
// modules. Two of the registers report, and clear, the status bits that are
// set by the RDRAM memory access path.
package ri

import (
	"fmt"

	"github.com/jetsetilly/rdram64/environment"
	"github.com/jetsetilly/rdram64/hardware/memory/bits"
	"github.com/jetsetilly/rdram64/hardware/memory/bus"
	"github.com/jetsetilly/rdram64/hardware/memory/memorymap"
	"github.com/jetsetilly/rdram64/hardware/memory/status"
	"github.com/jetsetilly/rdram64/logger"
	"github.com/jetsetilly/rdram64/savestate"
)

// Register identifies one of the RI registers.
type Register uint32

// List of RI registers.
const (
	RegMode Register = iota
	RegConfig
	RegCurrentLoad
	RegSelect
	RegRefresh
	RegLatency
	RegError
	RegBankStatus
)

func (r Register) String() string {
	switch r {
	case RegMode:
		return "RI_MODE"
	case RegConfig:
		return "RI_CONFIG"
	case RegCurrentLoad:
		return "RI_CURRENT_LOAD"
	case RegSelect:
		return "RI_SELECT"
	case RegRefresh:
		return "RI_REFRESH"
	case RegLatency:
		return "RI_LATENCY"
	case RegError:
		return "RI_ERROR"
	case RegBankStatus:
		return "RI_BANK_STATUS"
	}
	return fmt.Sprintf("register(%d)", uint32(r))
}

// Registers of the RI. The fields are in the order they are stored in a state
// file. The status bits are not included because they are owned by the
// RDRAM.
type Registers struct {
	// RI_MODE
	OperatingMode uint8
	StopT         bool
	StopR         bool

	// RI_CONFIG
	CCtlI  uint8
	CCtlEn bool

	// RI_SELECT
	RxSelect uint8
	TxSelect uint8

	// RI_REFRESH
	RefreshDelayClean uint8
	RefreshDelayDirty uint8
	RefreshBank       bool
	RefreshEnable     bool
	RefreshOptimize   bool
	RefreshMultibank  uint8

	// RI_LATENCY
	Latency uint8
}

var (
	modeOperating = bits.F(0, 1)
	modeStopT     = bits.B(2)
	modeStopR     = bits.B(3)

	configCCtlI  = bits.F(0, 5)
	configCCtlEn = bits.B(6)

	loadAckErr   = bits.B(0)
	loadFixed    = bits.F(1, 2)
	loadStopR    = bits.B(3)
	loadTxSelect = bits.B(4)

	selectRx = bits.F(0, 3)
	selectTx = bits.F(4, 7)

	refreshClean     = bits.F(0, 7)
	refreshDirty     = bits.F(8, 15)
	refreshBank      = bits.B(16)
	refreshEnable    = bits.B(17)
	refreshOptimize  = bits.B(18)
	refreshMultibank = bits.F(19, 22)

	latency = bits.F(0, 3)

	errorAck       = bits.B(0)
	errorNack      = bits.B(1)
	errorOverRange = bits.B(2)

	bankValid = bits.F(0, 7)
	bankDirty = bits.F(8, 15)
)

// RI is the RDRAM interface register file.
type RI struct {
	env    *environment.Environment
	tracer bus.Tracer

	Registers

	// shared with the RDRAM
	status *status.Status
}

// NewRI is the preferred method of initialisation for the RI type. The status
// argument should be the status record of the RDRAM. The tracer can be nil.
func NewRI(env *environment.Environment, st *status.Status, tracer bus.Tracer) *RI {
	return &RI{
		env:    env,
		status: st,
		tracer: tracer,
	}
}

// SetTracer changes the trace hooks. A nil value removes the hooks.
func (ri *RI) SetTracer(tracer bus.Tracer) {
	ri.tracer = tracer
}

// Power the RI. The registers are cleared on both a cold power and a soft
// reset. The status bits are not changed because they are owned by the
// RDRAM.
func (ri *RI) Power(reset bool) {
	ri.Registers = Registers{}
}

// Status returns the shared status record.
func (ri *RI) Status() *status.Status {
	return ri.status
}

// Snapshot creates a copy of the RI registers and the shared status bits. The
// copy is not connected to a tracer and the status record is a copy of the
// original.
func (ri *RI) Snapshot() *RI {
	n := *ri
	n.tracer = nil
	n.status = ri.status.Snapshot()
	return &n
}

// Plumb connects the RI to a different status record. Used to share the
// status record of a copied RDRAM with a copied RI.
func (ri *RI) Plumb(st *status.Status) {
	ri.status = st
}

func (ri *RI) String() string {
	return fmt.Sprintf("mode=%d select=%d/%d latency=%d %s",
		ri.OperatingMode, ri.RxSelect, ri.TxSelect, ri.Latency, ri.status)
}

func (ri *RI) trace(dir bus.Direction, reg Register, data uint32) {
	if ri.tracer == nil {
		return
	}
	ri.tracer.TraceRegister(bus.RegisterEvent{
		Chip:     "RI",
		Dir:      dir,
		Register: uint32(reg),
		Data:     data,
	})
}

// ReadRegister implements the bus.RegisterBus interface.
func (ri *RI) ReadRegister(address uint32) uint32 {
	reg := Register(memorymap.DecodeRI(address))

	var data uint32

	switch reg {
	case RegMode:
		data = modeOperating.Set32(data, uint32(ri.OperatingMode))
		data = modeStopT.SetBool(data, ri.StopT)
		data = modeStopR.SetBool(data, ri.StopR)

	case RegConfig:
		data = configCCtlI.Set32(data, uint32(ri.CCtlI))
		data = configCCtlEn.SetBool(data, ri.CCtlEn)

	case RegCurrentLoad:
		data = loadAckErr.SetBool(data, ri.status.AckErr)
		data = loadFixed.SetBool(data, true)
		data = loadStopR.SetBool(data, ri.StopR)
		data = bits.Copy32(data, loadTxSelect, uint32(ri.TxSelect), bits.B(0))

	case RegSelect:
		data = selectRx.Set32(data, uint32(ri.RxSelect))
		data = selectTx.Set32(data, uint32(ri.TxSelect))

	case RegRefresh:
		data = refreshClean.Set32(data, uint32(ri.RefreshDelayClean))
		data = refreshDirty.Set32(data, uint32(ri.RefreshDelayDirty))
		data = refreshBank.SetBool(data, ri.RefreshBank)
		data = refreshEnable.SetBool(data, ri.RefreshEnable)
		data = refreshOptimize.SetBool(data, ri.RefreshOptimize)
		data = refreshMultibank.Set32(data, uint32(ri.RefreshMultibank))

	case RegLatency:
		data = latency.Set32(data, uint32(ri.Latency))

	case RegError:
		data = errorAck.SetBool(data, ri.status.AckErr)
		data = errorNack.SetBool(data, ri.status.NackErr)
		data = errorOverRange.SetBool(data, ri.status.OverRangeErr)

	case RegBankStatus:
		data = bankValid.Set32(data, uint32(ri.status.BanksValid))
		data = bankDirty.Set32(data, uint32(ri.status.BanksDirty))
	}

	ri.trace(bus.Read, reg, data)

	return data
}

// WriteRegister implements the bus.RegisterBus interface.
func (ri *RI) WriteRegister(address uint32, data uint32) {
	reg := Register(memorymap.DecodeRI(address))

	switch reg {
	case RegMode:
		ri.OperatingMode = uint8(modeOperating.Get32(data))
		ri.StopT = modeStopT.Bool(data)
		ri.StopR = modeStopR.Bool(data)

	case RegConfig:
		ri.CCtlI = uint8(configCCtlI.Get32(data))
		ri.CCtlEn = configCCtlEn.Bool(data)

	case RegCurrentLoad:
		// on hardware, a write starts the calibration of the output current
		// using the value in RI_CONFIG. calibration is not emulated
		logger.Logf(ri.env, "RI", "%s write has no effect", reg)

	case RegSelect:
		ri.RxSelect = uint8(selectRx.Get32(data))
		ri.TxSelect = uint8(selectTx.Get32(data))

	case RegRefresh:
		ri.RefreshDelayClean = uint8(refreshClean.Get32(data))
		ri.RefreshDelayDirty = uint8(refreshDirty.Get32(data))
		ri.RefreshBank = refreshBank.Bool(data)
		ri.RefreshEnable = refreshEnable.Bool(data)
		ri.RefreshOptimize = refreshOptimize.Bool(data)
		ri.RefreshMultibank = uint8(refreshMultibank.Get32(data))

	case RegLatency:
		ri.Latency = uint8(latency.Get32(data))

	case RegError:
		// any write clears the error bits
		ri.status.ClearErrors()

	case RegBankStatus:
		// any write resets the bank bits
		ri.status.ResetBanks()
	}

	ri.trace(bus.Write, reg, data)
}

// Serialize implements the savestate.Saveable interface.
func (ri *RI) Serialize(s savestate.Serializer) {
	s.Uint8(&ri.OperatingMode)
	s.Bool(&ri.StopT)
	s.Bool(&ri.StopR)
	s.Uint8(&ri.CCtlI)
	s.Bool(&ri.CCtlEn)
	s.Uint8(&ri.RxSelect)
	s.Uint8(&ri.TxSelect)
	s.Uint8(&ri.RefreshDelayClean)
	s.Uint8(&ri.RefreshDelayDirty)
	s.Bool(&ri.RefreshBank)
	s.Bool(&ri.RefreshEnable)
	s.Bool(&ri.RefreshOptimize)
	s.Uint8(&ri.RefreshMultibank)
	s.Uint8(&ri.Latency)
	s.Uint8(&ri.status.BanksValid)
	s.Uint8(&ri.status.BanksDirty)
	s.Bool(&ri.status.AckErr)
	s.Bool(&ri.status.NackErr)
	s.Bool(&ri.status.OverRangeErr)
}
