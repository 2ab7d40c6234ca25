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

import (
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/govern"
)

// UnsupportedState is the pattern for errors returned when the continue check
// function returns a state that the run functions do not understand.
const UnsupportedState = "hardware: unsupported emulation state (%s)"

// Run sets the emulation running until continueCheck() returns govern.Ending.
// continueCheck() is called at the end of every frame. A state of
// govern.Paused skips emulation for that frame.
func (gb *GameBoy) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running:
			err = gb.RunFrame()
			if err != nil {
				return err
			}
		case govern.Paused:
			gb.TV.CheckFrame()
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets emulator running for the specified number of frames.
// Useful for FPS measurement and for test ROMs.
func (gb *GameBoy) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	for frame := 0; frame < numFrames; frame++ {
		err := gb.RunFrame()
		if err != nil {
			return err
		}

		state, err := continueCheck(frame)
		if err != nil {
			return err
		}
		if state == govern.Ending {
			break
		}
	}

	return nil
}
