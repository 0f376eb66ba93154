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

// Package cpubus defines the memory operations available to the CPU.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The RAM type in the memory package implements this interface, as does
// the byte-sequence wrapper used by the CPU's Interpret() function.
//
// Read and Write never fail. The uint16 address type spans the addressable
// space exactly so every address is valid storage.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}
