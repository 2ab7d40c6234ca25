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

package termplay

import (
	"fmt"
	"image/color"
	"io"

	"github.com/gopherdmg/gopherdmg/gui"
	"github.com/gopherdmg/gopherdmg/hardware/ppu"
)

const (
	ansiHome       = "\x1b[H"
	ansiClear      = "\x1b[2J"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
	ansiNormal     = "\x1b[0m"
	upperHalf      = "▀"
)

// FitSize returns the number of columns and rows required to display the
// screen in a terminal of the specified size. The screen is never enlarged.
// A row of characters shows two rows of pixels.
func FitSize(termCols, termRows int) (int, int) {
	const rows = ppu.VisibleLines / 2

	if termCols >= ppu.VisiblePixels && termRows >= rows {
		return ppu.VisiblePixels, rows
	}

	scale := min(float64(termCols)/ppu.VisiblePixels, float64(termRows)/rows)
	return max(int(ppu.VisiblePixels*scale), 1), max(int(rows*scale), 1)
}

// Render the frame to the writer using ANSI 24-bit colour codes. The frame
// is sampled so that it fills the number of columns and rows.
func Render(w io.Writer, frame *ppu.Frame, cols, rows int) error {
	if _, err := io.WriteString(w, ansiHome); err != nil {
		return err
	}

	var fg, bg color.RGBA
	first := true

	for r := 0; r < rows; r++ {
		top := (r * 2) * ppu.VisibleLines / (rows * 2)
		bottom := (r*2 + 1) * ppu.VisibleLines / (rows * 2)

		for c := 0; c < cols; c++ {
			x := c * ppu.VisiblePixels / cols
			t := gui.Shades[frame.Shade(x, top)]
			b := gui.Shades[frame.Shade(x, bottom)]

			// colour codes are only written when the colour changes
			if first || t != fg {
				if _, err := fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm", t.R, t.G, t.B); err != nil {
					return err
				}
				fg = t
			}
			if first || b != bg {
				if _, err := fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm", b.R, b.G, b.B); err != nil {
					return err
				}
				bg = b
			}
			first = false

			if _, err := io.WriteString(w, upperHalf); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "%s\r\n", ansiNormal); err != nil {
			return err
		}
		first = true
	}

	return nil
}
