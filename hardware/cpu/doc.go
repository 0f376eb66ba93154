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

// Package cpu implements the execution engine of the 6502: the registers,
// the fetch-decode-execute loop, the effective address resolver and the
// instruction handlers. Every other subsystem of an emulated machine is
// driven by, and must stay synchronised with, this engine's notion of time
// and memory side effects.
//
// The CPU owns the whole 64KiB address space through the memory package.
// Programs enter it through Load(), which copies bytes to a fixed base
// address and points the reset vector there, or through Interpret(), which
// executes a byte sequence in place. Reset() loads the program counter from
// the reset vector; Run() dispatches instructions until a halt or a fault.
//
// Dispatch is data driven. The instructions sub-package describes each
// opcode (mnemonic, byte count, addressing mode) and this package maps each
// mnemonic to a handler, so the addressing modes and handlers compose
// combinatorially and an instruction-set extension does not duplicate any
// effective-address logic.
//
// This engine is not cycle accurate and does not emulate interrupts beyond
// the reset vector. It is single threaded and fully synchronous; bounding a
// run is done by returning an error from a RunWithCallback() callback.
package cpu
