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

package cpu_test

import (
	"testing"

	"github.com/nicolas4pitz/nesEmulator/curated"
	"github.com/nicolas4pitz/nesEmulator/hardware/cpu"
	"github.com/nicolas4pitz/nesEmulator/hardware/cpu/execution"
	"github.com/nicolas4pitz/nesEmulator/test"
)

func TestLDAImmediate(t *testing.T) {
	mc := cpu.NewCPU()

	// LDA #$05; BRK
	err := mc.LoadAndRun([]uint8{0xa9, 0x05, 0x00})
	test.ExpectedSuccess(t, err)

	test.Equate(t, mc.A.Value(), 0x05)
	test.ExpectedFailure(t, mc.Status.Zero())
	test.ExpectedFailure(t, mc.Status.Negative())
	test.Equate(t, int(mc.LastResult.Outcome), int(execution.Halted))
}

func TestLDAZeroFlag(t *testing.T) {
	mc := cpu.NewCPU()

	// LDA #$00; BRK
	err := mc.LoadAndRun([]uint8{0xa9, 0x00, 0x00})
	test.ExpectedSuccess(t, err)

	test.Equate(t, mc.A.Value(), 0x00)
	test.ExpectedSuccess(t, mc.Status.Zero())
	test.ExpectedFailure(t, mc.Status.Negative())
}

func TestLDANegativeFlag(t *testing.T) {
	mc := cpu.NewCPU()

	// LDA #$80; BRK
	err := mc.LoadAndRun([]uint8{0xa9, 0x80, 0x00})
	test.ExpectedSuccess(t, err)

	test.Equate(t, mc.A.Value(), 0x80)
	test.ExpectedFailure(t, mc.Status.Zero())
	test.ExpectedSuccess(t, mc.Status.Negative())
}

func TestLDAFromMemory(t *testing.T) {
	mc := cpu.NewCPU()
	mc.Mem.Write(0x10, 0x55)

	// LDA $10; BRK
	err := mc.LoadAndRun([]uint8{0xa5, 0x10, 0x00})
	test.ExpectedSuccess(t, err)

	test.Equate(t, mc.A.Value(), 0x55)
}

func TestLDAAbsolute(t *testing.T) {
	mc := cpu.NewCPU()
	mc.Mem.Write(0x1234, 0x99)

	// LDA $1234; BRK
	err := mc.LoadAndRun([]uint8{0xad, 0x34, 0x12, 0x00})
	test.ExpectedSuccess(t, err)

	test.Equate(t, mc.A.Value(), 0x99)
	test.ExpectedSuccess(t, mc.Status.Negative())
}

func TestTAX(t *testing.T) {
	mc := cpu.NewCPU()

	// TAX; BRK -- with the accumulator set between Reset() and Run()
	err := mc.Load([]uint8{0xaa, 0x00})
	test.ExpectedSuccess(t, err)
	mc.Reset()
	mc.A.Load(10)
	err = mc.Run()
	test.ExpectedSuccess(t, err)

	test.Equate(t, mc.X.Value(), 10)
}

func TestFiveOpsWorkingTogether(t *testing.T) {
	mc := cpu.NewCPU()

	// LDA #$C0; TAX; INX; BRK
	err := mc.LoadAndRun([]uint8{0xa9, 0xc0, 0xaa, 0xe8, 0x00})
	test.ExpectedSuccess(t, err)

	test.Equate(t, mc.X.Value(), 0xc1)
}

func TestINXOverflow(t *testing.T) {
	mc := cpu.NewCPU()

	// INX; INX; BRK -- with X preset to 0xff
	err := mc.Load([]uint8{0xe8, 0xe8, 0x00})
	test.ExpectedSuccess(t, err)
	mc.Reset()
	mc.X.Load(0xff)
	err = mc.Run()
	test.ExpectedSuccess(t, err)

	test.Equate(t, mc.X.Value(), 1)
	test.ExpectedFailure(t, mc.Status.Zero())
	test.ExpectedFailure(t, mc.Status.Negative())
}

func TestINXWrapFlags(t *testing.T) {
	mc := cpu.NewCPU()

	// a single INX from 0xff leaves X at zero with the zero bit set and the
	// negative bit clear
	err := mc.Load([]uint8{0xe8, 0x00})
	test.ExpectedSuccess(t, err)
	mc.Reset()
	mc.X.Load(0xff)
	err = mc.Run()
	test.ExpectedSuccess(t, err)

	test.Equate(t, mc.X.Value(), 0)
	test.ExpectedSuccess(t, mc.Status.Zero())
	test.ExpectedFailure(t, mc.Status.Negative())
}

func TestResetVector(t *testing.T) {
	mc := cpu.NewCPU()

	err := mc.Load([]uint8{0xa9, 0x05, 0x00})
	test.ExpectedSuccess(t, err)

	// Load() writes the load address to the reset vector
	test.Equate(t, mc.Mem.Read16(cpu.ResetVector), cpu.LoadAddress)
	test.Equate(t, mc.Mem.Read(cpu.LoadAddress), 0xa9)

	mc.Reset()
	test.Equate(t, mc.PC.Address(), cpu.LoadAddress)
}

func TestResetAsymmetry(t *testing.T) {
	mc := cpu.NewCPU()

	err := mc.Load([]uint8{0x00})
	test.ExpectedSuccess(t, err)

	mc.A.Load(1)
	mc.X.Load(2)
	mc.Y.Load(3)
	mc.SP.Load(4)
	mc.Status.SetZeroNegative(0x80)

	mc.Reset()

	// A, X and the status register are zeroed; Y and SP are not
	test.Equate(t, mc.A.Value(), 0)
	test.Equate(t, mc.X.Value(), 0)
	test.Equate(t, mc.Status.Value(), 0)
	test.Equate(t, mc.Y.Value(), 3)
	test.Equate(t, mc.SP.Value(), 4)
}

func TestUnimplementedInstruction(t *testing.T) {
	mc := cpu.NewCPU()

	// 0x02 is not a decoded opcode
	err := mc.LoadAndRun([]uint8{0x02})
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Has(err, cpu.UnimplementedInstruction))

	test.Equate(t, int(mc.LastResult.Outcome), int(execution.Faulted))
	test.Equate(t, mc.LastResult.Address, cpu.LoadAddress)
	test.ExpectedSuccess(t, mc.LastResult.IsValid())
}

func TestProgramTooBig(t *testing.T) {
	mc := cpu.NewCPU()

	program := make([]uint8, 0x10000-int(cpu.LoadAddress)+1)
	err := mc.Load(program)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Has(err, cpu.ProgramTooBig))

	// the largest program that fits is accepted
	err = mc.Load(program[1:])
	test.ExpectedSuccess(t, err)
}

func TestInterpret(t *testing.T) {
	mc := cpu.NewCPU()

	// the same opcode semantics, addressed relative to index 0
	err := mc.Interpret([]uint8{0xa9, 0xc0, 0xaa, 0xe8, 0x00})
	test.ExpectedSuccess(t, err)

	test.Equate(t, mc.A.Value(), 0xc0)
	test.Equate(t, mc.X.Value(), 0xc1)
	test.Equate(t, int(mc.LastResult.Outcome), int(execution.Halted))

	// the CPU's own memory was not involved
	test.Equate(t, mc.Mem.Read(0x0000), 0)
	test.Equate(t, mc.Mem.Read16(cpu.ResetVector), 0)
}

func TestInterpretZeroPage(t *testing.T) {
	mc := cpu.NewCPU()

	// in Interpret() the program itself is the addressable space: LDA $05
	// reads the sixth byte of the sequence
	err := mc.Interpret([]uint8{0xa5, 0x05, 0x00, 0xff, 0xff, 0x42})
	test.ExpectedSuccess(t, err)

	test.Equate(t, mc.A.Value(), 0x42)
}

func TestRunWithCallback(t *testing.T) {
	mc := cpu.NewCPU()

	err := mc.Load([]uint8{0xa9, 0xc0, 0xaa, 0xe8, 0x00})
	test.ExpectedSuccess(t, err)
	mc.Reset()

	// count instructions as they complete
	count := 0
	err = mc.RunWithCallback(func(r *execution.Result) error {
		count++
		return r.IsValid()
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, count, 4)
}

func TestSnapshot(t *testing.T) {
	mc := cpu.NewCPU()

	err := mc.LoadAndRun([]uint8{0xa9, 0x05, 0x00})
	test.ExpectedSuccess(t, err)

	snap := mc.Snapshot()
	mc.A.Load(0xff)
	mc.Mem.Write(0x10, 0xff)

	test.Equate(t, snap.A.Value(), 0x05)
	test.Equate(t, snap.Mem.Read(0x10), 0)
}
