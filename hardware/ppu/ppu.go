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
	"fmt"

	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
)

// PPU is the picture processing unit.
type PPU struct {
	irq  *interrupts.Interrupts
	sink FrameSink

	vram [vramSize]uint8
	oam  [oamSize]uint8

	// registers
	lcdc uint8
	stat uint8
	scy  uint8
	scx  uint8
	ly   uint8
	lyc  uint8
	bgp  uint8
	obp0 uint8
	obp1 uint8
	wy   uint8
	wx   uint8

	mode Mode

	// dot on the current line. 0 to 455
	dot int

	// state of the STAT interrupt line. the interrupt is requested on the
	// rising edge
	statLine bool

	// objects on the current line found by the OAM scan
	candidates []object

	// pixel transfer state
	fetcher fetcher
	bgFIFO  fifo
	objFIFO fifo
	lx      int
	discard int
	delay   int

	// candidate being fetched by the object fetcher. -1 if no object fetch
	// is in progress
	objectFetch int
	objectDots  int

	// window state. the window can only appear once LY has equalled WY during
	// the frame. the window line counter only advances on lines where the
	// window was drawn
	windowTriggered bool
	windowActive    bool
	windowLine      uint8

	frame *Frame

	// number of frames published since reset
	frameNum int
}

// NewPPU is the preferred method of initialisation for the PPU type. The sink
// can be nil.
func NewPPU(irq *interrupts.Interrupts, sink FrameSink) *PPU {
	ppu := &PPU{
		irq:        irq,
		sink:       sink,
		candidates: make([]object, 0, maxLineObjects),
		frame:      &Frame{},
	}
	ppu.Reset()
	return ppu
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("LY=%d dot=%d mode=%s LCDC=%#02x STAT=%#02x", ppu.ly, ppu.dot, ppu.mode, ppu.lcdc, ppu.readSTAT())
}

// Reset the PPU to the state it has after the boot ROM.
func (ppu *PPU) Reset() {
	ppu.vram = [vramSize]uint8{}
	ppu.oam = [oamSize]uint8{}
	ppu.lcdc = 0x91
	ppu.stat = 0x00
	ppu.scy = 0x00
	ppu.scx = 0x00
	ppu.lyc = 0x00
	ppu.bgp = 0xfc
	ppu.obp0 = 0xff
	ppu.obp1 = 0xff
	ppu.wy = 0x00
	ppu.wx = 0x00
	ppu.frame.Clear()
	ppu.frameNum = 0
	ppu.startFrame()
	ppu.statLine = false
}

func (ppu *PPU) startFrame() {
	ppu.ly = 0
	ppu.windowTriggered = false
	ppu.windowLine = 0
	ppu.startLine()
}

func (ppu *PPU) startLine() {
	ppu.dot = 0
	ppu.mode = OAMScan
	ppu.candidates = ppu.candidates[:0]
	ppu.windowActive = false
}

// Mode returns the current mode as it would be reported by STAT.
func (ppu *PPU) Mode() uint8 {
	if !ppu.enabled() {
		return uint8(HBlank)
	}
	return uint8(ppu.mode)
}

// LY returns the current scanline.
func (ppu *PPU) LY() uint8 {
	return ppu.ly
}

// Dot returns the dot on the current scanline.
func (ppu *PPU) Dot() int {
	return ppu.dot
}

// FrameNum returns the number of frames published since the last reset.
func (ppu *PPU) FrameNum() int {
	return ppu.frameNum
}

func (ppu *PPU) enabled() bool {
	return ppu.lcdc&lcdcEnable == lcdcEnable
}

func (ppu *PPU) vramLocked() bool {
	return ppu.enabled() && ppu.mode == PixelTransfer
}

func (ppu *PPU) oamLocked() bool {
	return ppu.enabled() && (ppu.mode == OAMScan || ppu.mode == PixelTransfer)
}

func (ppu *PPU) readSTAT() uint8 {
	v := statUnused | ppu.stat&statWritable
	if ppu.ly == ppu.lyc {
		v |= statCoincidence
	}
	return v | ppu.Mode()
}

// Read implements the cpubus.Memory interface.
func (ppu *PPU) Read(address uint16) uint8 {
	switch {
	case address >= vramOrigin && address < vramOrigin+vramSize:
		if ppu.vramLocked() {
			return 0xff
		}
		return ppu.vram[address-vramOrigin]
	case address >= oamOrigin && address < oamOrigin+oamSize:
		if ppu.oamLocked() {
			return 0xff
		}
		return ppu.oam[address-oamOrigin]
	}

	switch address {
	case LCDC:
		return ppu.lcdc
	case STAT:
		return ppu.readSTAT()
	case SCY:
		return ppu.scy
	case SCX:
		return ppu.scx
	case LY:
		return ppu.ly
	case LYC:
		return ppu.lyc
	case BGP:
		return ppu.bgp
	case OBP0:
		return ppu.obp0
	case OBP1:
		return ppu.obp1
	case WY:
		return ppu.wy
	case WX:
		return ppu.wx
	}

	return 0xff
}

// Write implements the cpubus.Memory interface.
func (ppu *PPU) Write(address uint16, data uint8) {
	switch {
	case address >= vramOrigin && address < vramOrigin+vramSize:
		if !ppu.vramLocked() {
			ppu.vram[address-vramOrigin] = data
		}
		return
	case address >= oamOrigin && address < oamOrigin+oamSize:
		if !ppu.oamLocked() {
			ppu.oam[address-oamOrigin] = data
		}
		return
	}

	switch address {
	case LCDC:
		ppu.writeLCDC(data)
	case STAT:
		ppu.stat = data & statWritable
	case SCY:
		ppu.scy = data
	case SCX:
		ppu.scx = data
	case LY:
		// read only
	case LYC:
		ppu.lyc = data
	case BGP:
		ppu.bgp = data
	case OBP0:
		ppu.obp0 = data
	case OBP1:
		ppu.obp1 = data
	case WY:
		ppu.wy = data
	case WX:
		ppu.wx = data
	}
}

func (ppu *PPU) writeLCDC(data uint8) {
	wasEnabled := ppu.enabled()
	ppu.lcdc = data

	switch {
	case wasEnabled && !ppu.enabled():
		// the screen is blank while the LCD is off
		ppu.startFrame()
		ppu.mode = HBlank
		ppu.frame.Clear()
		ppu.publish()
	case !wasEnabled && ppu.enabled():
		ppu.startFrame()
	}
}

// DMAWrite writes to OAM regardless of the current mode.
func (ppu *PPU) DMAWrite(index int, data uint8) {
	if index >= 0 && index < oamSize {
		ppu.oam[index] = data
	}
}

func (ppu *PPU) publish() {
	ppu.frame.BGP = ppu.bgp
	ppu.frame.OBP0 = ppu.obp0
	ppu.frame.OBP1 = ppu.obp1
	ppu.frameNum++
	if ppu.sink != nil {
		ppu.sink.PublishFrame(ppu.frame)
	}
}
