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

// object attribute flags.
const (
	objectBehind  = 0x80
	objectFlipY   = 0x40
	objectFlipX   = 0x20
	objectPalette = 0x10
)

// object is an entry in the OAM, copied into the candidate list during the
// OAM scan.
type object struct {
	y     uint8
	x     uint8
	tile  uint8
	flags uint8

	// already fetched on this line
	fetched bool
}

func (ppu *PPU) objectHeight() uint8 {
	if ppu.lcdc&lcdcObjectTall == lcdcObjectTall {
		return 16
	}
	return 8
}

// scanOAM inspects one OAM entry every two dots of mode 2. the entry is added
// to the candidate list if it covers the current line and the list has room.
func (ppu *PPU) scanOAM() {
	if ppu.dot&0x01 != 0 || len(ppu.candidates) >= maxLineObjects {
		return
	}

	i := (ppu.dot / 2) * 4
	obj := object{
		y:     ppu.oam[i],
		x:     ppu.oam[i+1],
		tile:  ppu.oam[i+2],
		flags: ppu.oam[i+3],
	}

	// object y is the line plus 16
	line := int(ppu.ly) + 16
	if line >= int(obj.y) && line < int(obj.y)+int(ppu.objectHeight()) {
		ppu.candidates = append(ppu.candidates, obj)
	}
}

// nextObject returns the index of the first candidate object that starts at
// the current output position and has not yet been fetched. returns -1 if
// there is no such object.
func (ppu *PPU) nextObject() int {
	if ppu.lcdc&lcdcObjectEnable != lcdcObjectEnable {
		return -1
	}
	for i := range ppu.candidates {
		obj := &ppu.candidates[i]
		if obj.fetched || obj.x == 0 || obj.x >= VisiblePixels+8 {
			continue
		}

		// objects partially off the left edge start at position zero
		start := int(obj.x) - 8
		if start < 0 {
			start = 0
		}
		if start == ppu.lx {
			return i
		}
	}
	return -1
}

// fetchObject reads the row of the candidate object that covers the current
// line and mixes it into the object FIFO. pixels already in the FIFO from
// an earlier object take priority unless they are transparent.
func (ppu *PPU) fetchObject(idx int) {
	obj := &ppu.candidates[idx]
	obj.fetched = true

	height := ppu.objectHeight()
	line := ppu.ly + 16 - obj.y
	if obj.flags&objectFlipY == objectFlipY {
		line = height - 1 - line
	}

	tile := obj.tile
	if height == 16 {
		tile &= 0xfe
	}

	addr := uint16(tile)*16 + uint16(line)*2
	lo := ppu.vram[addr]
	hi := ppu.vram[addr+1]

	var palette uint8
	if obj.flags&objectPalette == objectPalette {
		palette = 1
	}

	// the number of pixels missing off the left edge of the screen
	skip := 0
	if obj.x < 8 {
		skip = 8 - int(obj.x)
	}

	for px := skip; px < 8; px++ {
		bit := 7 - px
		if obj.flags&objectFlipX == objectFlipX {
			bit = px
		}
		p := fifoPixel{
			color:   (lo>>bit)&0x01 | ((hi>>bit)&0x01)<<1,
			palette: palette,
			behind:  obj.flags&objectBehind == objectBehind,
			object:  true,
		}

		pos := px - skip
		if pos < ppu.objFIFO.len {
			if ppu.objFIFO.at(pos).color == 0 {
				*ppu.objFIFO.at(pos) = p
			}
		} else {
			ppu.objFIFO.push(p)
		}
	}
}
