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

// fetcherState is the stage of the background fetcher. each of the read stages
// takes two dots. the push stage waits until the background FIFO is empty.
type fetcherState int

const (
	fetchTileID fetcherState = iota
	fetchDataLow
	fetchDataHigh
	fetchPush
)

// fetcher reads background and window tiles from VRAM and pushes them into
// the background FIFO eight pixels at a time.
type fetcher struct {
	state fetcherState
	ticks int

	// tile position along the line. counts from zero at the start of the
	// line and again when the window starts
	x int

	// fetching from the window tile map rather than the background
	window bool

	tileID   uint8
	dataLow  uint8
	dataHigh uint8
}

func (f *fetcher) reset(window bool) {
	f.state = fetchTileID
	f.ticks = 0
	f.x = 0
	f.window = window
}

// tickFetcher advances the background fetcher by one dot.
func (ppu *PPU) tickFetcher() {
	f := &ppu.fetcher

	if f.state == fetchPush {
		if ppu.bgFIFO.len > 0 {
			return
		}
		for i := 7; i >= 0; i-- {
			// colour is masked when the background is disabled but the
			// timing of the fetch is unchanged
			var color uint8
			if ppu.lcdc&lcdcBGWindowEnable == lcdcBGWindowEnable {
				color = (f.dataLow>>i)&0x01 | ((f.dataHigh>>i)&0x01)<<1
			}
			ppu.bgFIFO.push(fifoPixel{color: color})
		}
		f.x++
		f.state = fetchTileID
		return
	}

	f.ticks++
	if f.ticks < 2 {
		return
	}
	f.ticks = 0

	switch f.state {
	case fetchTileID:
		f.tileID = ppu.vram[ppu.tileMapAddress()-vramOrigin]
		f.state = fetchDataLow
	case fetchDataLow:
		f.dataLow = ppu.vram[ppu.tileDataAddress()-vramOrigin]
		f.state = fetchDataHigh
	case fetchDataHigh:
		f.dataHigh = ppu.vram[ppu.tileDataAddress()+1-vramOrigin]
		f.state = fetchPush
	}
}

// address in the tile map of the tile being fetched.
func (ppu *PPU) tileMapAddress() uint16 {
	f := &ppu.fetcher

	var base uint16 = 0x9800
	var col, row uint16

	if f.window {
		if ppu.lcdc&lcdcWindowTileMap == lcdcWindowTileMap {
			base = 0x9c00
		}
		col = uint16(f.x) & 0x1f
		row = uint16(ppu.windowLine) >> 3
	} else {
		if ppu.lcdc&lcdcBGTileMap == lcdcBGTileMap {
			base = 0x9c00
		}
		col = (uint16(ppu.scx>>3) + uint16(f.x)) & 0x1f
		row = uint16(ppu.ly+ppu.scy) >> 3
	}

	return base + row*32 + col
}

// address of the low byte of the tile row being fetched.
func (ppu *PPU) tileDataAddress() uint16 {
	f := &ppu.fetcher

	var line uint16
	if f.window {
		line = uint16(ppu.windowLine) & 0x07
	} else {
		line = uint16(ppu.ly+ppu.scy) & 0x07
	}

	if ppu.lcdc&lcdcTileData == lcdcTileData {
		return 0x8000 + uint16(f.tileID)*16 + line*2
	}
	return uint16(int32(0x9000)+int32(int8(f.tileID))*16) + line*2
}
