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

package memory

import (
	"fmt"
)

// length of an OAM DMA transfer in bytes.
const dmaLength = 0xa0

// number of dots between each byte of an OAM DMA transfer.
const dotsPerDMAByte = 4

// DMA is the OAM DMA controller.
type DMA struct {
	// last value written to the DMA register
	register uint8

	active bool
	source uint16
	index  int
	dots   int
}

func (dma *DMA) String() string {
	if !dma.active {
		return fmt.Sprintf("DMA=%#02x idle", dma.register)
	}
	return fmt.Sprintf("DMA=%#02x %d/%d", dma.register, dma.index, dmaLength)
}

// Active returns true if a DMA transfer is in progress.
func (dma *DMA) Active() bool {
	return dma.active
}

// Progress returns the number of bytes copied by the current transfer.
func (dma *DMA) Progress() int {
	return dma.index
}

// start a new transfer from the page written to the DMA register. pages
// above the work RAM are taken from work RAM, as they are on the hardware.
func (dma *DMA) start(page uint8) {
	dma.register = page
	if page > 0xdf {
		page -= 0x20
	}
	dma.source = uint16(page) << 8
	dma.index = 0
	dma.dots = 0
	dma.active = true
}

// TickDMA advances the DMA controller by one dot.
func (mem *Memory) TickDMA() {
	if !mem.DMA.active {
		return
	}

	mem.DMA.dots++
	if mem.DMA.dots < dotsPerDMAByte {
		return
	}
	mem.DMA.dots = 0

	mem.Video.DMAWrite(mem.DMA.index, mem.read(mem.DMA.source+uint16(mem.DMA.index)))
	mem.DMA.index++
	if mem.DMA.index >= dmaLength {
		mem.DMA.active = false
	}
}
