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

package curated_test

import (
	"errors"
	"testing"

	"github.com/nicolas4pitz/nesEmulator/curated"
	"github.com/nicolas4pitz/nesEmulator/test"
)

const testPattern = "test error: value = %d"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, testPattern))
	test.ExpectedFailure(t, curated.Is(e, "some other pattern"))

	// an uncurated error matches nothing
	f := errors.New("uncurated")
	test.ExpectedFailure(t, curated.IsAny(f))
	test.ExpectedFailure(t, curated.Is(f, testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	f := curated.Errorf("fatal: %v", e)

	// Is() does not look into the chain but Has() does
	test.ExpectedFailure(t, curated.Is(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(f, "fatal: %v"))
}

func TestDeduplication(t *testing.T) {
	// adjacent duplicate message parts are removed on formatting
	e := curated.Errorf("cpu: %v", curated.Errorf("cpu: %v", curated.Errorf("not a real error")))
	test.Equate(t, e.Error(), "cpu: not a real error")
}
