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

// the decoded instruction set. opcodes not in this list are undecoded and
// cause the dispatch loop to fault.
//
// extending the instruction set is a matter of adding entries here and, for
// new mnemonics, a corresponding handler in the cpu package. addressing mode
// variations of an existing mnemonic need no new handler.
var definitions = []Definition{
	{OpCode: 0x00, Mnemonic: "BRK", Bytes: 1, AddressingMode: None},
	{OpCode: 0xa5, Mnemonic: "LDA", Bytes: 2, AddressingMode: ZeroPage},
	{OpCode: 0xa9, Mnemonic: "LDA", Bytes: 2, AddressingMode: Immediate},
	{OpCode: 0xaa, Mnemonic: "TAX", Bytes: 1, AddressingMode: None},
	{OpCode: 0xad, Mnemonic: "LDA", Bytes: 3, AddressingMode: Absolute},
	{OpCode: 0xe8, Mnemonic: "INX", Bytes: 1, AddressingMode: None},
}

// GetDefinitions returns the entire instruction set, indexed by opcode. An
// entry of nil means the opcode is undecoded.
func GetDefinitions() []*Definition {
	table := make([]*Definition, 256)
	for i := range definitions {
		table[definitions[i].OpCode] = &definitions[i]
	}
	return table
}
