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

// sequence makes a byte sequence addressable, implementing cpubus.Memory for
// the Interpret() entry point. Addresses beyond the end of the sequence read
// as zero; writes to them are dropped.
type sequence struct {
	rom []uint8
}

func (seq *sequence) Read(address uint16) uint8 {
	if int(address) >= len(seq.rom) {
		return 0
	}
	return seq.rom[address]
}

func (seq *sequence) Write(address uint16, data uint8) {
	if int(address) >= len(seq.rom) {
		return
	}
	seq.rom[address] = data
}

// Interpret executes the dispatch loop over the supplied byte sequence
// rather than the CPU's own memory, starting at index 0. Opcode semantics
// are identical to Run().
//
// This is a distinct entry point rather than a special case of Run() because
// the two have different addressing bases: a program run through Interpret()
// is addressed relative to index 0, not relative to where Load() copies
// programs. The CPU's memory and the reset vector are untouched.
func (mc *CPU) Interpret(rom []uint8) error {
	mc.LastResult.Reset()
	mc.PC.Load(0)
	return mc.run(&sequence{rom: rom}, nil)
}
