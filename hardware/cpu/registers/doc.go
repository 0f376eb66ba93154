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

// Package registers implements the registers of the CPU: the general purpose
// 8 bit Register type (accumulator, index registers, stack pointer), the 16
// bit ProgramCounter and the StatusRegister.
//
// All register arithmetic wraps on overflow. There is no saturation and no
// fault; an increment of 0xff produces 0x00.
//
// The StatusRegister keeps its value as a raw 8 bit number. Only the zero
// and negative bits have defined semantics in this core; the remaining bits
// are reserved and pass through all operations untouched.
package registers
