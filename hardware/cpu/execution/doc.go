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

// Package execution tracks the result of instruction dispatch. The Result
// type records which instruction ran, where it was fetched from and the
// state of the dispatch loop afterwards; the Outcome type expresses that
// state (Running, Halted or Faulted) so that hosting code can decide what a
// fault means for it - abort, log, or patch the program and retry - rather
// than having the decision made here.
package execution
