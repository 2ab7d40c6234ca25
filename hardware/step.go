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

package hardware

// Timing of the console in machine cycles.
const (
	CyclesPerLine  = 114
	LinesPerFrame  = 154
	CyclesPerFrame = CyclesPerLine * LinesPerFrame
)

// number of PPU dots for every machine cycle.
const dotsPerCycle = 4

// Step the console by one machine cycle.
//
// An invalid opcode stops the CPU and the error is returned. Subsequent calls
// will continue to return an error until the console is reset.
func (gb *GameBoy) Step() error {
	if gb.cpuDelay <= 0 {
		c := gb.CPU.HandleInterrupt()
		if c == 0 {
			var err error
			c, err = gb.CPU.ExecuteInstruction()
			if err != nil {
				return err
			}
		}
		gb.cpuDelay = max(c/4, 1)
	}
	gb.cpuDelay--

	gb.Timer.Tick()

	for i := 0; i < dotsPerCycle; i++ {
		gb.PPU.Tick()
		gb.Mem.TickDMA()
	}

	gb.APU.Step(gb.Timer.Counter())
	gb.Serial.Tick()
	gb.Joypad.Tick()

	gb.Cycles++

	return nil
}

// RunFrame runs the console for the duration of one frame. Samples generated
// during the frame are sent to the audio mixers and the television limiter
// is checked before returning.
func (gb *GameBoy) RunFrame() error {
	for i := 0; i < CyclesPerFrame; i++ {
		if err := gb.Step(); err != nil {
			return err
		}
	}
	gb.APU.Flush()
	gb.TV.CheckFrame()
	return nil
}
