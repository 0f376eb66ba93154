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
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/nicolas4pitz/nesEmulator/hardware/cpu"
	"github.com/nicolas4pitz/nesEmulator/hardware/cpu/execution"
	"github.com/nicolas4pitz/nesEmulator/statsview"
)

// sentinel error returned by the Check() run loop.
var timedOut = errors.New("performance timed out")

// number of instructions to wait before checking the timer channel.
// checking the channel is relatively expensive.
const performanceBrake = 100

// Check the performance of the emulation using the supplied program. The
// program is run to completion over and over for the specified duration and
// the instruction rate reported to output.
//
// Profiles are created as defined by the Profile argument. The stats
// argument launches the statsview server for the length of the measurement,
// if it is available in this build.
func Check(output io.Writer, profile Profile, program []uint8, stats bool, duration string) error {
	mc := cpu.NewCPU()

	err := mc.Load(program)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	if stats {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			io.WriteString(output, "statsview not available in this build\n")
		}
	}

	instructions := 0

	// run for specified period of time
	runner := func() error {
		// setup trigger that expires when duration has elapsed
		timerChan := make(chan bool)
		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		brake := 0
		callback := func(_ *execution.Result) error {
			instructions++

			brake++
			if brake >= performanceBrake {
				brake = 0
				select {
				case <-timerChan:
					return timedOut
				default:
				}
			}

			return nil
		}

		for {
			mc.Reset()
			err := mc.RunWithCallback(callback)
			if err != nil {
				return err
			}
		}
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	// calculate performance
	rate := float64(instructions) / dur.Seconds()
	output.Write([]byte(fmt.Sprintf("%.0f instructions/sec (%d instructions in %.2f seconds)\n", rate, instructions, dur.Seconds())))

	return nil
}
