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

// Package memory implements the addressable memory of the machine: a flat
// 64KiB byte array. No component above it touches the raw storage directly;
// the CPU accesses it through the interface defined in the cpubus package
// and collaborators (loaders, front-ends) through the Read/Write and
// Read16/Write16 functions.
package memory
