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

package cpu

import (
	"github.com/nicolas4pitz/nesEmulator/curated"
	"github.com/nicolas4pitz/nesEmulator/hardware/cpu/instructions"
	"github.com/nicolas4pitz/nesEmulator/hardware/memory/cpubus"
)

// read16Bit returns the little-endian 16bit value at the specified address:
// low byte at address, high byte at address+1.
func read16Bit(bus cpubus.Memory, address uint16) uint16 {
	lo := uint16(bus.Read(address))
	hi := uint16(bus.Read(address + 1))
	return (hi << 8) | lo
}

// effectiveAddress computes the address the instruction operates on. It must
// be called with the program counter at the first operand byte, immediately
// after the opcode byte has been consumed. The program counter is not
// advanced; the dispatch loop skips the operand bytes after the handler has
// run.
//
// Note the 8 bit wrap on the pointer byte in the IndirectX and IndirectY
// modes: the high byte of the intermediate pointer is fetched from
// (pointer+1)%256, staying within the zero page rather than crossing into
// page 1.
func (mc *CPU) effectiveAddress(bus cpubus.Memory, defn *instructions.Definition) (uint16, error) {
	switch defn.AddressingMode {
	case instructions.Immediate:
		// the operand byte is the value itself; its address is the
		// effective address
		return mc.PC.Address(), nil

	case instructions.ZeroPage:
		return uint16(bus.Read(mc.PC.Address())), nil

	case instructions.ZeroPageX:
		// the index is added before widening, wrapping within 8 bits
		return uint16(bus.Read(mc.PC.Address()) + mc.X.Value()), nil

	case instructions.ZeroPageY:
		return uint16(bus.Read(mc.PC.Address()) + mc.Y.Value()), nil

	case instructions.Absolute:
		return read16Bit(bus, mc.PC.Address()), nil

	case instructions.AbsoluteX:
		return read16Bit(bus, mc.PC.Address()) + mc.X.Address(), nil

	case instructions.AbsoluteY:
		return read16Bit(bus, mc.PC.Address()) + mc.Y.Address(), nil

	case instructions.IndirectX:
		ptr := bus.Read(mc.PC.Address()) + mc.X.Value()
		lo := uint16(bus.Read(uint16(ptr)))
		hi := uint16(bus.Read(uint16(ptr + 1)))
		return (hi << 8) | lo, nil

	case instructions.IndirectY:
		ptr := bus.Read(mc.PC.Address())
		lo := uint16(bus.Read(uint16(ptr)))
		hi := uint16(bus.Read(uint16(ptr + 1)))
		return ((hi << 8) | lo) + mc.Y.Address(), nil
	}

	return 0, curated.Errorf(InvalidAddressingMode, defn.Mnemonic)
}
