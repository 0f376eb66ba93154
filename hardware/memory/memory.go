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

package memory

import (
	"fmt"
	"strings"
)

// RAM represents the entire 64KiB address space of the machine as one flat
// area of storage. There is no memory mapping and no unreadable or
// unwritable addresses.
type RAM struct {
	memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM memory area.
// All locations are zeroed.
func NewRAM() *RAM {
	ram := &RAM{}
	ram.memory = make([]uint8, 0x10000)
	return ram
}

// Snapshot creates a copy of RAM in its current state.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	n.memory = make([]uint8, len(ram.memory))
	copy(n.memory, ram.memory)
	return &n
}

// String returns a hex dump of the zero page. The zero page is the part of
// memory most useful to see at a glance; the indexed-indirect addressing
// modes keep their pointers there.
func (ram RAM) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < 16; y++ {
		s.WriteString(fmt.Sprintf("%X- | ", y))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[uint16((y*16)+x)]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// Clear sets all bytes in memory to zero.
func (ram *RAM) Clear() {
	for i := range ram.memory {
		ram.memory[i] = 0
	}
}

// Read is an implementation of cpubus.Memory. It returns whatever was last
// written to the address, or zero.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.memory[address]
}

// Write is an implementation of cpubus.Memory. The store is unconditional.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.memory[address] = data
}

// Read16 composes two consecutive byte reads as a little-endian 16bit value:
// low byte at address, high byte at address+1. The address+1 access wraps at
// the top of the address space by virtue of the address type.
func (ram *RAM) Read16(address uint16) uint16 {
	lo := uint16(ram.Read(address))
	hi := uint16(ram.Read(address + 1))
	return (hi << 8) | lo
}

// Write16 is the inverse of Read16: low byte stored first at address, high
// byte at address+1.
func (ram *RAM) Write16(address uint16, data uint16) {
	ram.Write(address, uint8(data&0xff))
	ram.Write(address+1, uint8(data>>8))
}
