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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// Profile is used to specify the type of profiles to be generated by
// RunProfiler().
type Profile int

// List of valid Profile values. Values can be combined with a bitwise or.
const (
	ProfileNone  Profile = 0x00
	ProfileCPU   Profile = 0x01
	ProfileMem   Profile = 0x02
	ProfileTrace Profile = 0x04
	ProfileAll   Profile = ProfileCPU | ProfileMem | ProfileTrace
)

// cpuProfile runs the supplied function through the pprof CPU profiler,
// writing the profile to the specified file.
func cpuProfile(outFile string, run func() error) error {
	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	defer f.Close()

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	defer pprof.StopCPUProfile()

	return run()
}

// memProfile writes a heap profile of the running program to the specified
// file. Call after the work being measured has completed.
func memProfile(outFile string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	defer f.Close()

	runtime.GC()
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	return nil
}

// traceProfile runs the supplied function through the runtime tracer,
// writing the trace to the specified file.
func traceProfile(outFile string, run func() error) error {
	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	defer f.Close()

	err = trace.Start(f)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	defer trace.Stop()

	return run()
}

// RunProfiler runs the supplied function, generating the requested profile
// types. Output files are named <tag>.cpu.profile, <tag>.mem.profile and
// <tag>.trace.profile as appropriate.
func RunProfiler(profile Profile, tag string, run func() error) error {
	r := run

	if profile&ProfileTrace == ProfileTrace {
		f := r
		r = func() error {
			return traceProfile(fmt.Sprintf("%s.trace.profile", tag), f)
		}
	}

	if profile&ProfileCPU == ProfileCPU {
		f := r
		r = func() error {
			return cpuProfile(fmt.Sprintf("%s.cpu.profile", tag), f)
		}
	}

	err := r()

	// the memory profile is written even when the run function has returned
	// an error. the error may be nothing more than a timeout sentinel
	if profile&ProfileMem == ProfileMem {
		merr := memProfile(fmt.Sprintf("%s.mem.profile", tag))
		if err == nil {
			err = merr
		}
	}

	return err
}
