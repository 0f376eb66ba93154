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

package memory_test

import (
	"testing"

	"github.com/nicolas4pitz/nesEmulator/hardware/memory"
	"github.com/nicolas4pitz/nesEmulator/test"
)

func TestReadWrite(t *testing.T) {
	ram := memory.NewRAM()

	// unwritten memory reads as zero
	test.Equate(t, ram.Read(0x0000), 0)
	test.Equate(t, ram.Read(0xffff), 0)

	ram.Write(0x0010, 0x55)
	test.Equate(t, ram.Read(0x0010), 0x55)

	ram.Write(0xffff, 0xaa)
	test.Equate(t, ram.Read(0xffff), 0xaa)

	ram.Clear()
	test.Equate(t, ram.Read(0x0010), 0)
	test.Equate(t, ram.Read(0xffff), 0)
}

func TestLittleEndian(t *testing.T) {
	ram := memory.NewRAM()

	// low byte first
	ram.Write16(0x1000, 0x8000)
	test.Equate(t, ram.Read(0x1000), 0x00)
	test.Equate(t, ram.Read(0x1001), 0x80)
	test.Equate(t, ram.Read16(0x1000), 0x8000)

	ram.Write(0x2000, 0x34)
	ram.Write(0x2001, 0x12)
	test.Equate(t, ram.Read16(0x2000), 0x1234)
}

func TestAddressWrap(t *testing.T) {
	ram := memory.NewRAM()

	// the high byte of a 16bit access at the very top of memory comes from
	// address 0x0000
	ram.Write(0xffff, 0xcd)
	ram.Write(0x0000, 0xab)
	test.Equate(t, ram.Read16(0xffff), 0xabcd)
}

func TestSnapshot(t *testing.T) {
	ram := memory.NewRAM()
	ram.Write(0x0080, 0x01)

	snap := ram.Snapshot()
	ram.Write(0x0080, 0x02)

	test.Equate(t, ram.Read(0x0080), 0x02)
	test.Equate(t, snap.Read(0x0080), 0x01)
}
