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

import (
	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
)

// Tick advances the PPU by one dot.
func (ppu *PPU) Tick() {
	if !ppu.enabled() {
		return
	}

	switch ppu.mode {
	case OAMScan:
		ppu.scanOAM()
	case PixelTransfer:
		ppu.transfer()
	}

	ppu.dot++

	switch {
	case ppu.mode == OAMScan && ppu.dot == OAMScanDots:
		ppu.startTransfer()
	case ppu.mode == PixelTransfer && ppu.lx >= VisiblePixels:
		ppu.mode = HBlank
		if ppu.windowActive {
			ppu.windowLine++
		}
	case ppu.dot == DotsPerLine:
		ppu.endLine()
	}

	ppu.updateStatLine()
}

func (ppu *PPU) endLine() {
	ppu.ly++
	ppu.dot = 0

	switch {
	case ppu.ly < VisibleLines:
		ppu.startLine()
	case ppu.ly == VisibleLines:
		ppu.mode = VBlank
		ppu.irq.Request(interrupts.VBlank)
		ppu.publish()
	case ppu.ly == LinesPerFrame:
		ppu.startFrame()
	}
}

// updateStatLine requests the STAT interrupt on the rising edge of the
// combined interrupt sources.
func (ppu *PPU) updateStatLine() {
	line := ppu.ly == ppu.lyc && ppu.stat&statLYCInt == statLYCInt
	switch ppu.mode {
	case HBlank:
		line = line || ppu.stat&statHBlankInt == statHBlankInt
	case VBlank:
		line = line || ppu.stat&statVBlankInt == statVBlankInt
	case OAMScan:
		line = line || ppu.stat&statOAMInt == statOAMInt
	}

	if line && !ppu.statLine {
		ppu.irq.Request(interrupts.LCDStat)
	}
	ppu.statLine = line
}

func (ppu *PPU) startTransfer() {
	ppu.mode = PixelTransfer
	if ppu.ly == ppu.wy {
		ppu.windowTriggered = true
	}
	ppu.bgFIFO.clear()
	ppu.objFIFO.clear()
	ppu.fetcher.reset(false)
	ppu.lx = 0
	ppu.discard = int(ppu.scx & 0x07)
	ppu.delay = dummyFetchDots
	ppu.objectFetch = -1
}

// windowStarts returns true if the window begins at the current output
// position.
func (ppu *PPU) windowStarts() bool {
	if ppu.fetcher.window || !ppu.windowTriggered {
		return false
	}
	if ppu.lcdc&(lcdcWindowEnable|lcdcBGWindowEnable) != lcdcWindowEnable|lcdcBGWindowEnable {
		return false
	}
	if ppu.wx > VisiblePixels+6 {
		return false
	}
	return ppu.discard == 0 && ppu.lx+7 >= int(ppu.wx)
}

// transfer performs one dot of mode 3.
func (ppu *PPU) transfer() {
	if ppu.delay > 0 {
		ppu.delay--
		return
	}

	// the object fetch waits for the background fetcher to reach its push
	// stage. output is paused for the duration
	if ppu.objectFetch >= 0 {
		if ppu.fetcher.state != fetchPush {
			ppu.tickFetcher()
			return
		}
		ppu.objectDots++
		if ppu.objectDots < objectFetchDots {
			return
		}
		ppu.fetchObject(ppu.objectFetch)
		ppu.objectFetch = -1
		return
	}

	// the window restarts the fetcher. pixels already in the background FIFO
	// are dropped
	if ppu.windowStarts() {
		ppu.windowActive = true
		ppu.bgFIFO.clear()
		ppu.fetcher.reset(true)

		// a window to the left of the screen edge loses its first pixels
		if ppu.wx < 7 {
			ppu.discard = 7 - int(ppu.wx)
		}
	}

	if ppu.discard == 0 {
		if idx := ppu.nextObject(); idx >= 0 {
			ppu.objectFetch = idx
			ppu.objectDots = 0
			return
		}
	}

	ppu.tickFetcher()

	if ppu.bgFIFO.len == 0 {
		return
	}

	bg := ppu.bgFIFO.pop()
	if ppu.discard > 0 {
		ppu.discard--
		return
	}

	var obj fifoPixel
	if ppu.objFIFO.len > 0 {
		obj = ppu.objFIFO.pop()
	}

	ppu.frame.Pixels[ppu.ly][ppu.lx] = ppu.mix(bg, obj)
	ppu.lx++
}

// mix the background and object pixels.
func (ppu *PPU) mix(bg fifoPixel, obj fifoPixel) Pixel {
	if !obj.object || obj.color == 0 || ppu.lcdc&lcdcObjectEnable != lcdcObjectEnable {
		return Pixel{Color: bg.color, Palette: Background}
	}
	if obj.behind && bg.color != 0 {
		return Pixel{Color: bg.color, Palette: Background}
	}
	return Pixel{Color: obj.color, Palette: Object0 + Palette(obj.palette)}
}
