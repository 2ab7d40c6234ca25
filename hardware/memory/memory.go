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

	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cpubus"
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
	"github.com/gopherdmg/gopherdmg/logger"
)

// Video is the video controller as seen by the memory bus.
type Video interface {
	// VRAM, OAM and the LCD registers. the video controller applies its own
	// access lockout
	cpubus.Memory

	// the current LCD mode (0 to 3)
	Mode() uint8

	// write to OAM regardless of the LCD mode
	DMAWrite(index int, data uint8)
}

// Components are the owners of the memory areas that are not owned by the bus
// itself.
type Components struct {
	Cart   cpubus.Memory
	Video  Video
	Audio  cpubus.Memory
	Timer  cpubus.Memory
	Serial cpubus.Memory
	Joypad cpubus.Memory
	IRQ    *interrupts.Interrupts
}

// Memory is the memory bus.
type Memory struct {
	Components

	WRAM [0x2000]uint8
	HRAM [0x7f]uint8

	DMA DMA

	// unmapped I/O addresses that have already been logged
	unmapped map[uint16]bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(c Components) *Memory {
	return &Memory{
		Components: c,
		unmapped:   make(map[uint16]bool),
	}
}

func (mem *Memory) String() string {
	return mem.DMA.String()
}

func (mem *Memory) logUnmapped(address uint16, write bool) {
	if mem.unmapped[address] {
		return
	}
	mem.unmapped[address] = true
	if write {
		logger.Logf(logger.Allow, "memory", "write to unimplemented register %s", cpubus.RegisterName(address))
	} else {
		logger.Logf(logger.Allow, "memory", "read of unimplemented register %s", cpubus.RegisterName(address))
	}
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	if mem.DMA.active && memorymap.IsArea(address, memorymap.OAM) {
		return 0xff
	}
	return mem.read(address)
}

// read is the same as Read() but without the DMA restriction.
func (mem *Memory) read(address uint16) uint8 {
	address, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.Cartridge, memorymap.CartridgeRAM:
		return mem.Cart.Read(address)
	case memorymap.VRAM, memorymap.OAM, memorymap.Video:
		return mem.Video.Read(address)
	case memorymap.WRAM0, memorymap.WRAM1:
		return mem.WRAM[address-memorymap.OriginWRAM0]
	case memorymap.Prohibited:
		if mem.Video.Mode() >= 2 {
			return 0xff
		}
		return 0x00
	case memorymap.Joypad:
		return mem.Joypad.Read(address)
	case memorymap.Serial:
		return mem.Serial.Read(address)
	case memorymap.Timer:
		return mem.Timer.Read(address)
	case memorymap.InterruptFlag:
		return mem.IRQ.ReadFlag()
	case memorymap.Audio:
		return mem.Audio.Read(address)
	case memorymap.DMA:
		return mem.DMA.register
	case memorymap.UnmappedIO:
		mem.logUnmapped(address, false)
		return 0xff
	case memorymap.HRAM:
		return mem.HRAM[address-memorymap.OriginHRAM]
	case memorymap.InterruptEnable:
		return mem.IRQ.ReadEnable()
	}

	panic(fmt.Sprintf("memory: address %#04x has no owner", address))
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	address, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.Cartridge, memorymap.CartridgeRAM:
		mem.Cart.Write(address, data)
	case memorymap.VRAM, memorymap.Video:
		mem.Video.Write(address, data)
	case memorymap.OAM:
		if !mem.DMA.active {
			mem.Video.Write(address, data)
		}
	case memorymap.WRAM0, memorymap.WRAM1:
		mem.WRAM[address-memorymap.OriginWRAM0] = data
	case memorymap.Prohibited:
	case memorymap.Joypad:
		mem.Joypad.Write(address, data)
	case memorymap.Serial:
		mem.Serial.Write(address, data)
	case memorymap.Timer:
		mem.Timer.Write(address, data)
	case memorymap.InterruptFlag:
		mem.IRQ.WriteFlag(data)
	case memorymap.Audio:
		mem.Audio.Write(address, data)
	case memorymap.DMA:
		mem.DMA.start(data)
	case memorymap.UnmappedIO:
		mem.logUnmapped(address, true)
	case memorymap.HRAM:
		mem.HRAM[address-memorymap.OriginHRAM] = data
	case memorymap.InterruptEnable:
		mem.IRQ.WriteEnable(data)
	default:
		panic(fmt.Sprintf("memory: address %#04x has no owner", address))
	}
}

// Read16 returns the little-endian 16 bit value at the address. The access
// must not cross the top of the address space.
func (mem *Memory) Read16(address uint16) uint16 {
	if address == 0xffff {
		panic("memory: 16 bit read crosses top of address space")
	}
	lo := mem.Read(address)
	hi := mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Write16 stores the 16 bit value at the address in little-endian order. The
// access must not cross the top of the address space.
func (mem *Memory) Write16(address uint16, data uint16) {
	if address == 0xffff {
		panic("memory: 16 bit write crosses top of address space")
	}
	mem.Write(address, uint8(data))
	mem.Write(address+1, uint8(data>>8))
}
