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

package sdlplay

import (
	"github.com/gopherdmg/gopherdmg/gui"
	"github.com/gopherdmg/gopherdmg/hardware/ppu"
)

// paint the most recent frame from the television. returns false if there
// is no new frame.
func (scr *SdlPlay) paint() (bool, error) {
	fn := scr.tv.FrameNum()
	if fn == scr.lastFrame {
		return false, nil
	}
	scr.lastFrame = fn

	scr.tv.BorrowFrame(func(frame *ppu.Frame) {
		i := 0
		for y := 0; y < ppu.VisibleLines; y++ {
			for x := 0; x < ppu.VisiblePixels; x++ {
				c := gui.Shades[frame.Shade(x, y)]
				scr.pixels[i] = c.R
				scr.pixels[i+1] = c.G
				scr.pixels[i+2] = c.B
				i += pixelDepth
			}
		}
	})

	pixels, _, err := scr.texture.Lock(nil)
	if err != nil {
		return false, err
	}
	copy(pixels, scr.pixels)
	scr.texture.Unlock()

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return false, err
	}

	scr.renderer.Present()

	return true, nil
}
