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
	"fmt"

	"github.com/nicolas4pitz/nesEmulator/curated"
	"github.com/nicolas4pitz/nesEmulator/hardware/cpu/execution"
	"github.com/nicolas4pitz/nesEmulator/hardware/cpu/instructions"
	"github.com/nicolas4pitz/nesEmulator/hardware/cpu/registers"
	"github.com/nicolas4pitz/nesEmulator/hardware/memory"
	"github.com/nicolas4pitz/nesEmulator/hardware/memory/cpubus"
	"github.com/nicolas4pitz/nesEmulator/logger"
)

// Error patterns raised by the cpu package. Callers can match on these with
// curated.Is() and curated.Has().
const (
	UnimplementedInstruction = "unimplemented instruction (%#02x) at (%#04x)"
	InvalidAddressingMode    = "invalid addressing mode for %s"
	ProgramTooBig            = "program of %d bytes does not fit in memory at %#04x"
)

const (
	// LoadAddress is the address Load() copies a program to and the value it
	// stores in the reset vector.
	LoadAddress = uint16(0x8000)

	// ResetVector is the address of the two-byte little-endian vector that
	// Reset() loads the program counter from.
	ResetVector = uint16(0xfffc)
)

// CPU implements the execution engine of the 6502 found in the NES. Register
// logic is implemented by the types in the registers sub-package.
//
// A CPU instance must be owned by exactly one goroutine for its entire
// lifetime. Instances share no state so running many of them on separate
// goroutines is fine.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// the entire address space, owned by the CPU. collaborators reach it
	// through this field; there is no other path to the storage.
	Mem *memory.RAM

	instructions []*instructions.Definition

	// last result. updated on every dispatch; the Outcome field records why
	// the most recent Run()/Interpret() call returned.
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// All registers and the whole of memory are zeroed.
func NewCPU() *CPU {
	return &CPU{
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewRegister(0, "SP"),
		Status:       registers.NewStatusRegister(),
		Mem:          memory.NewRAM(),
		instructions: instructions.GetDefinitions(),
	}
}

// Snapshot creates a copy of the CPU in its current state, including a copy
// of memory.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.Mem = mc.Mem.Snapshot()
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s=%s",
		mc.PC, mc.A, mc.X, mc.Y, mc.SP,
		mc.Status.Label(), mc.Status)
}

// Reset zeroes the accumulator, the X register and the status register, and
// loads the program counter from the reset vector.
//
// The Y register and the stack pointer are deliberately left as they are;
// programs observed by this engine expect that asymmetry.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Status.Reset()

	mc.PC.Load(mc.Mem.Read16(ResetVector))

	logger.Logf("cpu", "reset (PC=%#04x)", mc.PC.Address())
}

// Load copies the program into memory at LoadAddress and stores LoadAddress
// in the reset vector, so that the next Reset() begins execution at the
// start of the program.
//
// A program that does not fit between LoadAddress and the top of memory is
// rejected.
func (mc *CPU) Load(program []uint8) error {
	if len(program) > 0x10000-int(LoadAddress) {
		return curated.Errorf("cpu: %v", curated.Errorf(ProgramTooBig, len(program), LoadAddress))
	}

	for i, b := range program {
		mc.Mem.Write(LoadAddress+uint16(i), b)
	}
	mc.Mem.Write16(ResetVector, LoadAddress)

	logger.Logf("cpu", "loaded %d bytes at %#04x", len(program), LoadAddress)

	return nil
}

// Run executes the dispatch loop until a halt instruction is fetched or the
// loop faults. A halt is a normal return; a fault returns a curated error
// and leaves the reason in LastResult.
func (mc *CPU) Run() error {
	return mc.run(mc.Mem, nil)
}

// RunWithCallback is the same as Run but calls the callback function after
// every completed instruction. The callback is the place to inject a step
// budget or a yield point; a non-nil error from the callback stops the loop
// and is returned as-is.
func (mc *CPU) RunWithCallback(callback func(*execution.Result) error) error {
	return mc.run(mc.Mem, callback)
}

// LoadAndRun is the composition of Load(), Reset() and Run().
func (mc *CPU) LoadAndRun(program []uint8) error {
	err := mc.Load(program)
	if err != nil {
		return err
	}
	mc.Reset()
	return mc.Run()
}

// run is the fetch-decode-execute loop shared by Run() and Interpret(). The
// bus argument decides where instructions and operands come from: the CPU's
// own memory or an externally supplied byte sequence.
func (mc *CPU) run(bus cpubus.Memory, callback func(*execution.Result) error) error {
	for {
		opcodeAddress := mc.PC.Address()
		opcode := bus.Read(opcodeAddress)
		mc.PC.Add(1)

		defn := mc.instructions[opcode]
		if defn == nil {
			mc.LastResult = execution.Result{
				Address: opcodeAddress,
				Outcome: execution.Faulted,
				Final:   true,
			}
			logger.Logf("cpu", "unimplemented instruction (%#02x) at (%#04x)", opcode, opcodeAddress)
			return curated.Errorf("cpu: %v", curated.Errorf(UnimplementedInstruction, opcode, opcodeAddress))
		}

		mc.LastResult = execution.Result{
			Defn:    defn,
			Address: opcodeAddress,
			Outcome: execution.Running,
		}

		// the program counter is now at the first operand byte, which is
		// where the effective address resolver expects it
		switch defn.Mnemonic {
		case "BRK":
			mc.LastResult.Outcome = execution.Halted
			mc.LastResult.Final = true
			if callback != nil {
				err := callback(&mc.LastResult)
				if err != nil {
					return err
				}
			}
			return nil

		case "LDA":
			address, err := mc.effectiveAddress(bus, defn)
			if err != nil {
				mc.LastResult.Outcome = execution.Faulted
				mc.LastResult.Final = true
				return curated.Errorf("cpu: %v", err)
			}
			mc.A.Load(bus.Read(address))
			mc.Status.SetZeroNegative(mc.A.Value())

		case "TAX":
			mc.X.Load(mc.A.Value())
			mc.Status.SetZeroNegative(mc.X.Value())

		case "INX":
			mc.X.Increment()
			mc.Status.SetZeroNegative(mc.X.Value())

		default:
			// a definition without a handler is a wiring defect in the
			// instruction table
			mc.LastResult.Outcome = execution.Faulted
			mc.LastResult.Final = true
			return curated.Errorf("cpu: %v", curated.Errorf(UnimplementedInstruction, opcode, opcodeAddress))
		}

		// the loop, not the handler, skips over the operand bytes. the byte
		// count in the definition includes the already-consumed opcode byte
		mc.PC.Add(uint16(defn.Bytes - 1))
		mc.LastResult.Final = true

		if callback != nil {
			err := callback(&mc.LastResult)
			if err != nil {
				return err
			}
		}
	}
}
