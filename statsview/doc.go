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

// Package statsview provides a wrapper around the statsview package from
// go-echarts. It serves runtime statistics (goroutines, heap, GC) over HTTP
// while a long measurement runs.
//
// The wrapped package is only compiled in when the statsview build tag is
// specified. Without the tag, Launch() is a stub and Available() returns
// false.
package statsview
