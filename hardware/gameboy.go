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

package hardware

import (
	"io"

	"github.com/gopherdmg/gopherdmg/cartridgeloader"
	"github.com/gopherdmg/gopherdmg/hardware/apu"
	"github.com/gopherdmg/gopherdmg/hardware/cpu"
	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
	"github.com/gopherdmg/gopherdmg/hardware/joypad"
	"github.com/gopherdmg/gopherdmg/hardware/memory"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge"
	"github.com/gopherdmg/gopherdmg/hardware/ppu"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/hardware/serial"
	"github.com/gopherdmg/gopherdmg/hardware/television"
	"github.com/gopherdmg/gopherdmg/hardware/timer"
	"github.com/gopherdmg/gopherdmg/prefs"
)

// the value of IF left by the boot ROM. the VBlank interrupt is requested.
const postBootIF = 0x01

// GameBoy is the main container for the emulated components of the console.
type GameBoy struct {
	Prefs *preferences.Preferences

	CPU    *cpu.CPU
	Mem    *memory.Memory
	PPU    *ppu.PPU
	APU    *apu.APU
	Timer  *timer.Timer
	Serial *serial.Serial
	Joypad *joypad.Joypad
	IRQ    *interrupts.Interrupts

	// the cartridge survives the rebuilding of the console
	Cart *cartridge.Cartridge

	// tv is not part of the console but is attached to it
	TV *television.Television

	// machine cycles remaining for the current CPU instruction
	cpuDelay int

	// machine cycles since the console was built
	Cycles uint64

	serialOut io.Writer
}

// NewGameBoy creates a new console and everything associated with the
// hardware. The console starts with no cartridge attached.
func NewGameBoy(tv *television.Television, p *preferences.Preferences) (*GameBoy, error) {
	if p == nil {
		var err error
		p, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	gb := &GameBoy{
		Prefs: p,
		Cart:  cartridge.NewCartridge(),
		TV:    tv,
	}

	tv.SetFPSCap(p.Limit.Get().(bool))
	tv.SetSpeed(float32(p.Speed.Get().(float64)))
	p.Limit.SetHookPost(func(v prefs.Value) error {
		tv.SetFPSCap(v.(bool))
		return nil
	})
	p.Speed.SetHookPost(func(v prefs.Value) error {
		tv.SetSpeed(float32(v.(float64)))
		return nil
	})

	gb.build()

	return gb, nil
}

// build every component from scratch. the cartridge is reset but otherwise
// kept.
func (gb *GameBoy) build() {
	gb.IRQ = interrupts.NewInterrupts()
	gb.IRQ.WriteFlag(postBootIF)

	gb.Timer = timer.NewTimer(gb.IRQ)
	gb.Serial = serial.NewSerial(gb.IRQ)
	gb.Serial.SetOutput(gb.serialOut)
	gb.Joypad = joypad.NewJoypad(gb.IRQ)
	gb.PPU = ppu.NewPPU(gb.IRQ, gb.TV)
	gb.APU = apu.NewAPU(gb.Prefs.SampleRate.Get().(int))
	gb.APU.SetMixer(gb.TV)

	gb.Cart.Reset()

	gb.Mem = memory.NewMemory(memory.Components{
		Cart:   gb.Cart,
		Video:  gb.PPU,
		Audio:  gb.APU,
		Timer:  gb.Timer,
		Serial: gb.Serial,
		Joypad: gb.Joypad,
		IRQ:    gb.IRQ,
	})

	gb.CPU = cpu.NewCPU(gb.Mem)
	gb.cpuDelay = 0
	gb.Cycles = 0
}

func (gb *GameBoy) String() string {
	return gb.CPU.String()
}

// SetSerialOutput sets the writer that receives bytes sent over the serial
// port. A nil value discards them.
func (gb *GameBoy) SetSerialOutput(w io.Writer) {
	gb.serialOut = w
	gb.Serial.SetOutput(w)
}

// AttachCartridge loads a cartridge and rebuilds the console. An error leaves
// the console with no cartridge attached.
func (gb *GameBoy) AttachCartridge(cl cartridgeloader.Loader) error {
	err := gb.Cart.Attach(cl)
	if err != nil {
		_ = gb.Eject()
		return err
	}

	gb.build()
	gb.TV.SetCartridge(television.CartridgeInfo{
		Filename: gb.Cart.Filename,
		Header:   gb.Cart.Header,
	})

	return nil
}

// Eject the cartridge and rebuild the console. The battery save file of the
// cartridge, if any, is flushed and closed.
func (gb *GameBoy) Eject() error {
	err := gb.Cart.Eject()
	gb.build()
	gb.TV.SetCartridge(television.CartridgeInfo{})
	return err
}

// Reset the console while keeping the current cartridge.
func (gb *GameBoy) Reset() {
	gb.build()
}
