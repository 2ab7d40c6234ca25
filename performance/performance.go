// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/govern"
	"github.com/gopherdmg/gopherdmg/hardware"
)

// PerformanceError is the pattern for errors created by the performance
// package.
const PerformanceError = "performance: %v"

// Check the performance of the emulator. The console should have a
// cartridge attached.
//
// Emulation will run for the specified number of frames with the frame
// limiter disabled. CPU and memory profiles are created if profile is true.
func Check(output io.Writer, profile bool, gb *hardware.GameBoy, numFrames int) error {
	if numFrames <= 0 {
		return curated.Errorf(PerformanceError, "number of frames must be positive")
	}

	gb.TV.SetFPSCap(false)

	var dur time.Duration

	runner := func() error {
		startTime := time.Now()
		err := gb.RunForFrameCount(numFrames, func(_ int) (govern.State, error) {
			return govern.Running, nil
		})
		dur = time.Since(startTime)
		return err
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return nil
}
