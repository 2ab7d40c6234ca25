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

package screenshot_test

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopherdmg/gopherdmg/gui"
	"github.com/gopherdmg/gopherdmg/hardware/ppu"
	"github.com/gopherdmg/gopherdmg/screenshot"
	"github.com/gopherdmg/gopherdmg/test"
)

// testFrame has a single dark pixel at (1, 2).
func testFrame() *ppu.Frame {
	f := &ppu.Frame{BGP: 0xe4}
	f.Pixels[2][1] = ppu.Pixel{Color: 3, Palette: ppu.Background}
	return f
}

func TestImage(t *testing.T) {
	img := screenshot.Image(testFrame(), 1)
	test.ExpectEquality(t, img.Bounds().Dx(), ppu.VisiblePixels)
	test.ExpectEquality(t, img.Bounds().Dy(), ppu.VisibleLines)
	test.ExpectEquality(t, img.RGBAAt(0, 0), gui.Shades[0])
	test.ExpectEquality(t, img.RGBAAt(1, 2), gui.Shades[3])

	img = screenshot.Image(testFrame(), 3)
	test.ExpectEquality(t, img.Bounds().Dx(), ppu.VisiblePixels*3)
	test.ExpectEquality(t, img.Bounds().Dy(), ppu.VisibleLines*3)

	// the scaled pixel covers a 3x3 block
	test.ExpectEquality(t, img.RGBAAt(3, 6), gui.Shades[3])
	test.ExpectEquality(t, img.RGBAAt(5, 8), gui.Shades[3])
	test.ExpectEquality(t, img.RGBAAt(6, 8), gui.Shades[0])
	test.ExpectEquality(t, img.RGBAAt(5, 9), gui.Shades[0])
}

func TestSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "shot.png")
	test.DemandSuccess(t, screenshot.Save(fn, testFrame(), 2))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), ppu.VisiblePixels*2)

	r, g, b, _ := img.At(2, 4).RGBA()
	test.ExpectEquality(t, uint8(r>>8), gui.Shades[3].R)
	test.ExpectEquality(t, uint8(g>>8), gui.Shades[3].G)
	test.ExpectEquality(t, uint8(b>>8), gui.Shades[3].B)
}

func TestFilename(t *testing.T) {
	fn := screenshot.Filename("tetris")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "tetris_"))
	test.ExpectSuccess(t, strings.HasSuffix(fn, ".png"))
}
