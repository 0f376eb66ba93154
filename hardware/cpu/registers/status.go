// This file is part of nesEmulator.
//
// nesEmulator is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nesEmulator is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nesEmulator.  If not, see <https://www.gnu.org/licenses/>.

package registers

import "strings"

// Masks for the two status bits with defined semantics. The other six bits
// are reserved for future flags (carry, overflow, etc.) and are never
// touched by SetZeroNegative().
const (
	maskZero     = uint8(0x02)
	maskNegative = uint8(0x80)
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU. The value is kept as a raw 8 bit number rather than a set of
// named fields so that the reserved bits survive untouched.
type StatusRegister struct {
	value uint8
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the status bits in the conventional letter notation, one
// letter per bit from bit 7 down to bit 0. Upper-case indicates a set bit.
// Bit 5 has no flag assigned to it and is rendered as a hyphen.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flags := "nv-bdizc"
	for i := 0; i < 8; i++ {
		c := flags[i]
		if i == 2 {
			s.WriteByte(c)
			continue
		}
		if sr.value&(0x80>>i) != 0 {
			c -= 0x20
		}
		s.WriteByte(c)
	}

	return s.String()
}

// Reset clears every status bit, including the reserved bits.
func (sr *StatusRegister) Reset() {
	sr.value = 0
}

// Value returns the status register as an 8 bit number.
func (sr StatusRegister) Value() uint8 {
	return sr.value
}

// Load an 8 bit number into the status register.
func (sr *StatusRegister) Load(val uint8) {
	sr.value = val
}

// Zero returns the state of the zero bit (bit 1).
func (sr StatusRegister) Zero() bool {
	return sr.value&maskZero == maskZero
}

// Negative returns the state of the negative bit (bit 7).
func (sr StatusRegister) Negative() bool {
	return sr.value&maskNegative == maskNegative
}

// SetZeroNegative updates the zero and negative bits from a result byte:
// the zero bit is set if and only if the result is zero; the negative bit is
// set if and only if bit 7 of the result is set. The other six bits of the
// register are left as they are.
//
// This is the one way the zero and negative bits change. It is called after
// every operation with zero/negative semantics and is public so that
// handlers outside the cpu package can reuse it when the instruction set is
// extended.
func (sr *StatusRegister) SetZeroNegative(result uint8) {
	if result == 0 {
		sr.value |= maskZero
	} else {
		sr.value &= ^maskZero
	}

	if result&maskNegative != 0 {
		sr.value |= maskNegative
	} else {
		sr.value &= ^maskNegative
	}
}
