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

// Package status implements the sticky status bits that are shared by the
// RDRAM memory access path and the RI register file.
//
// The access path is the only writer of the status bits. The RI reports the
// bits through its registers and clears them when those registers are
// written to.
package status

import "fmt"

// Status is the shared status record. The zero value is the power-on state.
type Status struct {
	// one bit per bank. set by any access to the bank
	BanksValid uint8

	// one bit per bank. set by any write to the bank
	BanksDirty uint8

	// sticky error bits
	AckErr       bool
	NackErr      bool
	OverRangeErr bool
}

// Reset the status bits to the power-on state.
func (s *Status) Reset() {
	*s = Status{}
}

// Snapshot creates a copy of the Status in its current state.
func (s *Status) Snapshot() *Status {
	n := *s
	return &n
}

// Bank records an access to the bank. Banks outside of the tracked range set
// the over-range error.
func (s *Status) Bank(bank uint32, write bool) {
	if bank >= 8 {
		s.OverRangeErr = true
		return
	}
	s.BanksValid |= 1 << bank
	if write {
		s.BanksDirty |= 1 << bank
	}
}

// ClearErrors clears all three error bits.
func (s *Status) ClearErrors() {
	s.AckErr = false
	s.NackErr = false
	s.OverRangeErr = false
}

// ResetBanks puts the bank bits into the state they are in after the bank
// status register has been written to.
func (s *Status) ResetBanks() {
	s.BanksDirty = 0xff
	s.BanksValid = 0x00
}

func (s *Status) String() string {
	return fmt.Sprintf("valid=%08b dirty=%08b ack=%v nack=%v range=%v",
		s.BanksValid, s.BanksDirty, s.AckErr, s.NackErr, s.OverRangeErr)
}
