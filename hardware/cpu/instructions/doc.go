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

// Package instructions holds the data for every instruction in the
// instruction set: the opcode byte, mnemonic, instruction length and
// addressing mode. The cpu package selects the handler for a decoded
// instruction by its mnemonic; the addressing mode and byte count drive the
// effective address resolution and the program counter advance, so adding an
// opcode is a data change, not new control flow.
package instructions
