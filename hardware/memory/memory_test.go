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

package memory_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
	"github.com/gopherdmg/gopherdmg/hardware/memory"
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
	"github.com/gopherdmg/gopherdmg/test"
)

// owner records every access made to it.
type owner struct {
	area  memorymap.Area
	calls *[]memorymap.Area
	data  [0x10000]uint8
}

func (o *owner) Read(address uint16) uint8 {
	*o.calls = append(*o.calls, o.area)
	return o.data[address]
}

func (o *owner) Write(address uint16, data uint8) {
	*o.calls = append(*o.calls, o.area)
	o.data[address] = data
}

type video struct {
	owner
	mode uint8
	oam  [0xa0]uint8
}

func (v *video) Mode() uint8 {
	return v.mode
}

func (v *video) DMAWrite(index int, data uint8) {
	v.oam[index] = data
}

type mocks struct {
	calls  []memorymap.Area
	cart   *owner
	video  *video
	audio  *owner
	timer  *owner
	serial *owner
	joypad *owner
}

func newMemory() (*memory.Memory, *mocks) {
	m := &mocks{}
	m.cart = &owner{area: memorymap.Cartridge, calls: &m.calls}
	m.video = &video{owner: owner{area: memorymap.Video, calls: &m.calls}}
	m.audio = &owner{area: memorymap.Audio, calls: &m.calls}
	m.timer = &owner{area: memorymap.Timer, calls: &m.calls}
	m.serial = &owner{area: memorymap.Serial, calls: &m.calls}
	m.joypad = &owner{area: memorymap.Joypad, calls: &m.calls}

	mem := memory.NewMemory(memory.Components{
		Cart:   m.cart,
		Video:  m.video,
		Audio:  m.audio,
		Timer:  m.timer,
		Serial: m.serial,
		Joypad: m.joypad,
		IRQ:    interrupts.NewInterrupts(),
	})
	return mem, m
}

// the mock component expected to receive an access to each area. areas owned
// by the bus itself expect no component access.
func expectedOwner(area memorymap.Area) (memorymap.Area, bool) {
	switch area {
	case memorymap.Cartridge, memorymap.CartridgeRAM:
		return memorymap.Cartridge, true
	case memorymap.VRAM, memorymap.OAM, memorymap.Video:
		return memorymap.Video, true
	case memorymap.Audio, memorymap.Timer, memorymap.Serial, memorymap.Joypad:
		return area, true
	}
	return 0, false
}

func TestDispatch(t *testing.T) {
	mem, m := newMemory()

	for a := 0; a <= 0xffff; a++ {
		_, area := memorymap.MapAddress(uint16(a))
		want, component := expectedOwner(area)

		m.calls = m.calls[:0]
		mem.Read(uint16(a))
		if component {
			test.DemandEquality(t, len(m.calls), 1, a)
			test.DemandEquality(t, m.calls[0], want, a)
		} else {
			test.DemandEquality(t, len(m.calls), 0, a)
		}

		// skip DMA so that the OAM isn't locked by a transfer
		if area == memorymap.DMA {
			continue
		}

		m.calls = m.calls[:0]
		mem.Write(uint16(a), 0x00)
		if component {
			test.DemandEquality(t, len(m.calls), 1, a)
			test.DemandEquality(t, m.calls[0], want, a)
		} else {
			test.DemandEquality(t, len(m.calls), 0, a)
		}
	}
}

func TestEchoRAM(t *testing.T) {
	mem, _ := newMemory()

	for a := uint16(0xc000); a <= 0xddff; a++ {
		mem.Write(a, uint8(a))
		test.DemandEquality(t, mem.Read(a+0x2000), uint8(a), a)
	}

	for a := uint16(0xe000); a <= 0xfdff; a++ {
		mem.Write(a, ^uint8(a))
		test.DemandEquality(t, mem.Read(a-0x2000), ^uint8(a), a)
	}
}

func TestFixedValues(t *testing.T) {
	mem, m := newMemory()

	m.video.mode = 0
	test.ExpectEquality(t, mem.Read(0xfea0), uint8(0x00))
	m.video.mode = 2
	test.ExpectEquality(t, mem.Read(0xfeff), uint8(0xff))
	m.video.mode = 3
	test.ExpectEquality(t, mem.Read(0xfeb0), uint8(0xff))
	m.video.mode = 1
	mem.Write(0xfeb0, 0x12)
	test.ExpectEquality(t, mem.Read(0xfeb0), uint8(0x00))

	test.ExpectEquality(t, mem.Read(0xff03), uint8(0xff))
	test.ExpectEquality(t, mem.Read(0xff50), uint8(0xff))
	test.ExpectEquality(t, mem.Read(0xff7f), uint8(0xff))

	// IF upper bits read as one
	mem.Write(0xff0f, 0x01)
	test.ExpectEquality(t, mem.Read(0xff0f), uint8(0xe1))
	mem.Write(0xffff, 0x1f)
	test.ExpectEquality(t, mem.Read(0xffff), uint8(0x1f))
	test.ExpectEquality(t, mem.IRQ.Pending(), true)

	mem.Write(0xff80, 0x42)
	test.ExpectEquality(t, mem.Read(0xff80), uint8(0x42))
	mem.Write(0xfffe, 0x43)
	test.ExpectEquality(t, mem.HRAM[0x7e], uint8(0x43))
}

func Test16Bit(t *testing.T) {
	mem, _ := newMemory()
	mem.Write16(0xc000, 0xbeef)
	test.ExpectEquality(t, mem.Read(0xc000), uint8(0xef))
	test.ExpectEquality(t, mem.Read(0xc001), uint8(0xbe))
	test.ExpectEquality(t, mem.Read16(0xc000), uint16(0xbeef))

	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	mem.Read16(0xffff)
}

func TestDMA(t *testing.T) {
	mem, m := newMemory()

	for i := uint16(0); i < 0xa0; i++ {
		mem.Write(0xc100+i, uint8(i)+1)
	}

	mem.Write(0xff46, 0xc1)
	test.ExpectSuccess(t, mem.DMA.Active())
	test.ExpectEquality(t, mem.Read(0xff46), uint8(0xc1))

	// OAM is locked during the transfer
	m.calls = m.calls[:0]
	test.ExpectEquality(t, mem.Read(0xfe00), uint8(0xff))
	mem.Write(0xfe00, 0x99)
	test.ExpectEquality(t, len(m.calls), 0)

	// partial progress after 10 bytes worth of dots
	for i := 0; i < 40; i++ {
		mem.TickDMA()
	}
	test.ExpectEquality(t, mem.DMA.Progress(), 10)
	test.ExpectEquality(t, m.video.oam[9], uint8(10))
	test.ExpectEquality(t, m.video.oam[10], uint8(0))

	for i := 0; i < 4*0xa0-40; i++ {
		mem.TickDMA()
	}
	test.ExpectFailure(t, mem.DMA.Active())
	for i := 0; i < 0xa0; i++ {
		test.DemandEquality(t, m.video.oam[i], uint8(i)+1, i)
	}

	// OAM accessible again
	m.calls = m.calls[:0]
	mem.Read(0xfe00)
	test.ExpectEquality(t, len(m.calls), 1)
}

func TestDMAHighPage(t *testing.T) {
	mem, m := newMemory()
	mem.Write(0xc000, 0x77)

	// page 0xe0 copies from work RAM at 0xc000
	mem.Write(0xff46, 0xe0)
	for i := 0; i < 4; i++ {
		mem.TickDMA()
	}
	test.ExpectEquality(t, m.video.oam[0], uint8(0x77))
}
