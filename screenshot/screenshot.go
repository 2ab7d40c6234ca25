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

package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/gui"
	"github.com/gopherdmg/gopherdmg/hardware/ppu"
	"github.com/gopherdmg/gopherdmg/logger"

	"golang.org/x/image/draw"
)

// ScreenshotError is the pattern for errors created by the screenshot
// package.
const ScreenshotError = "screenshot: %v"

// Image returns an image of the frame, with every pixel scaled by the
// amount. A scale of less than one is treated as one.
func Image(frame *ppu.Frame, scale int) *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, ppu.VisiblePixels, ppu.VisibleLines))
	for y := 0; y < ppu.VisibleLines; y++ {
		for x := 0; x < ppu.VisiblePixels; x++ {
			src.SetRGBA(x, y, gui.Shades[frame.Shade(x, y)])
		}
	}

	if scale <= 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, ppu.VisiblePixels*scale, ppu.VisibleLines*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Filename returns a unique filename for a screenshot of the named
// cartridge.
func Filename(cartName string) string {
	n := time.Now()
	return fmt.Sprintf("%s_%04d%02d%02d_%02d%02d%02d.png", cartName,
		n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())
}

// Save writes an image of the frame to the specified path as a PNG.
func Save(path string, frame *ppu.Frame, scale int) error {
	img := Image(frame, scale)

	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(ScreenshotError, err)
	}

	err = png.Encode(f, img)
	if err != nil {
		_ = f.Close()
		return curated.Errorf(ScreenshotError, err)
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf(ScreenshotError, err)
	}

	logger.Logf(logger.Allow, "screenshot", "saved: %s", path)

	return nil
}
