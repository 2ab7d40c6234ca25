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

// Addresses of the LCD registers.
const (
	LCDC = uint16(0xff40)
	STAT = uint16(0xff41)
	SCY  = uint16(0xff42)
	SCX  = uint16(0xff43)
	LY   = uint16(0xff44)
	LYC  = uint16(0xff45)
	BGP  = uint16(0xff47)
	OBP0 = uint16(0xff48)
	OBP1 = uint16(0xff49)
	WY   = uint16(0xff4a)
	WX   = uint16(0xff4b)
)

// LCDC bits.
const (
	lcdcBGWindowEnable = 0x01
	lcdcObjectEnable   = 0x02
	lcdcObjectTall     = 0x04
	lcdcBGTileMap      = 0x08
	lcdcTileData       = 0x10
	lcdcWindowEnable   = 0x20
	lcdcWindowTileMap  = 0x40
	lcdcEnable         = 0x80
)

// STAT bits. the lower three bits are read only and are not stored.
const (
	statCoincidence = 0x04
	statHBlankInt   = 0x08
	statVBlankInt   = 0x10
	statOAMInt      = 0x20
	statLYCInt      = 0x40
	statWritable    = 0x78
	statUnused      = 0x80
)

// Mode of the PPU, as reported in the lower two bits of STAT.
type Mode uint8

// List of PPU modes.
const (
	HBlank Mode = iota
	VBlank
	OAMScan
	PixelTransfer
)

func (m Mode) String() string {
	switch m {
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	case OAMScan:
		return "OAM scan"
	case PixelTransfer:
		return "pixel transfer"
	}
	return "unknown mode"
}

// Timing constants, in dots.
const (
	DotsPerLine    = 456
	OAMScanDots    = 80
	LinesPerFrame  = 154
	VisibleLines   = 144
	VisiblePixels  = 160
	DotsPerFrame   = DotsPerLine * LinesPerFrame
	maxLineObjects = 10
)

// the fetch of the first tile of each line is discarded
const dummyFetchDots = 6

// number of dots taken by an object fetch once the background fetcher has
// reached its push stage
const objectFetchDots = 6

// memory areas
const (
	vramOrigin = 0x8000
	vramSize   = 0x2000
	oamOrigin  = 0xfe00
	oamSize    = 0xa0
)
