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

package ppu

// Palette selects which palette register is used to display a pixel.
type Palette uint8

// List of palettes.
const (
	Background Palette = iota
	Object0
	Object1
)

func (p Palette) String() string {
	switch p {
	case Background:
		return "BGP"
	case Object0:
		return "OBP0"
	case Object1:
		return "OBP1"
	}
	return "unknown palette"
}

// Pixel is a resolved pixel in the frame. The Color field is the 2 bit
// colour index before mapping through the palette.
type Pixel struct {
	Color   uint8
	Palette Palette
}

// Frame is a complete 160x144 image as produced by the PPU. The palette
// registers are as they were at the end of the frame.
type Frame struct {
	Pixels [VisibleLines][VisiblePixels]Pixel
	BGP    uint8
	OBP0   uint8
	OBP1   uint8
}

// Shade returns the shade (0 to 3, lightest to darkest) of the pixel at the
// coordinates.
func (f *Frame) Shade(x int, y int) uint8 {
	px := f.Pixels[y][x]
	var pal uint8
	switch px.Palette {
	case Object0:
		pal = f.OBP0
	case Object1:
		pal = f.OBP1
	default:
		pal = f.BGP
	}
	return (pal >> (px.Color * 2)) & 0x03
}

// Clear sets every pixel to colour zero of the background palette.
func (f *Frame) Clear() {
	f.Pixels = [VisibleLines][VisiblePixels]Pixel{}
}

// FrameSink receives completed frames. The frame is only valid for the
// duration of the call.
type FrameSink interface {
	PublishFrame(frame *Frame)
}
