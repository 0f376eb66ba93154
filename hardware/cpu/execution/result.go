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

package execution

import (
	"fmt"

	"github.com/nicolas4pitz/nesEmulator/hardware/cpu/instructions"
)

// Outcome is the state of the dispatch loop after a step. Running is the
// only non-terminal value.
type Outcome int

// List of Outcome values. The dispatch loop starts in the Running state and
// finishes in Halted (a halt instruction was fetched) or Faulted (an
// undecoded opcode or an internal wiring defect).
const (
	Running Outcome = iota
	Halted
	Faulted
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Faulted:
		return "faulted"
	}
	return "unknown outcome"
}

// Result records the outcome of the most recent instruction dispatch.
type Result struct {
	// definition of the dispatched instruction. nil when the opcode was
	// undecoded.
	Defn *instructions.Definition

	// the address the opcode byte was fetched from
	Address uint16

	// state of the dispatch loop after this instruction
	Outcome Outcome

	// whether this data has been finalised. false means the instruction was
	// not dispatched to completion.
	Final bool
}

// Reset nullifies the result. Used when the CPU is reset.
func (r *Result) Reset() {
	r.Defn = nil
	r.Address = 0
	r.Outcome = Running
	r.Final = false
}

func (r Result) String() string {
	mnemonic := "???"
	if r.Defn != nil {
		mnemonic = r.Defn.Mnemonic
	}
	return fmt.Sprintf("%#04x %s [%s]", r.Address, mnemonic, r.Outcome)
}

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
//
// Intended to be used during development of the cpu package, to make sure
// the implementation hasn't gone off the rails.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("execution not finalised (bad opcode?)")
	}

	if r.Defn == nil && r.Outcome != Faulted {
		return fmt.Errorf("undecoded instruction with a non-faulted outcome (%s)", r.Outcome)
	}

	if r.Outcome == Halted && r.Defn != nil && r.Defn.Mnemonic != "BRK" {
		return fmt.Errorf("halted outcome from a non-halt instruction (%s)", r.Defn.Mnemonic)
	}

	return nil
}
