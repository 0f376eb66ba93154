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

package instructions

// AddressingMode describes the method of memory addressing used by an
// instruction.
type AddressingMode int

// List of supported addressing modes. None is for instructions that operate
// on registers alone and resolve no effective address; a definition with
// mode None reaching the address resolver is a wiring defect in the
// instruction table.
const (
	None AddressingMode = iota
	Immediate
	ZeroPage  // zpg
	ZeroPageX // zpg,X
	ZeroPageY // zpg,Y
	Absolute  // abs
	AbsoluteX // abs,X
	AbsoluteY // abs,Y
	IndirectX // (ind,X)
	IndirectY // (ind),Y
)

func (m AddressingMode) String() string {
	switch m {
	case None:
		return "None"
	case Immediate:
		return "Immediate"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageX:
		return "ZeroPageX"
	case ZeroPageY:
		return "ZeroPageY"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case IndirectX:
		return "IndirectX"
	case IndirectY:
		return "IndirectY"
	}
	return "unknown addressing mode"
}
