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

package performance_test

import (
	"strings"
	"testing"

	"github.com/nicolas4pitz/nesEmulator/performance"
	"github.com/nicolas4pitz/nesEmulator/test"
)

func TestCheck(t *testing.T) {
	output := &strings.Builder{}

	// LDA #$C0; TAX; INX; BRK
	program := []uint8{0xa9, 0xc0, 0xaa, 0xe8, 0x00}

	err := performance.Check(output, performance.ProfileNone, program, false, "50ms")
	test.ExpectedSuccess(t, err)

	if !strings.Contains(output.String(), "instructions/sec") {
		t.Errorf("unexpected Check() output: %s", output.String())
	}
}

func TestCheckBadDuration(t *testing.T) {
	output := &strings.Builder{}
	err := performance.Check(output, performance.ProfileNone, []uint8{0x00}, false, "not a duration")
	test.ExpectedFailure(t, err)
}

func TestCheckBadProgram(t *testing.T) {
	output := &strings.Builder{}

	// a program that doesn't fit in memory is rejected before any
	// measurement starts
	program := make([]uint8, 0x9000)
	err := performance.Check(output, performance.ProfileNone, program, false, "50ms")
	test.ExpectedFailure(t, err)
}
