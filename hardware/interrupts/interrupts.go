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

package interrupts

import "fmt"

// Source of an interrupt. The order of the list is the order of priority,
// with VBlank being the highest.
type Source int

// List of valid interrupt sources.
const (
	VBlank Source = iota
	LCDStat
	Timer
	Serial
	Joypad
	NumSources
)

func (s Source) String() string {
	switch s {
	case VBlank:
		return "VBlank"
	case LCDStat:
		return "LCD STAT"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return fmt.Sprintf("unknown interrupt (%d)", int(s))
}

// Bit returns the bit in the IE and IF registers for the source.
func (s Source) Bit() uint8 {
	return 0x01 << uint(s)
}

// Vector returns the address the CPU jumps to when servicing the interrupt.
func (s Source) Vector() uint16 {
	return 0x0040 + uint16(s)*0x08
}

// the bits of IF that are not connected to an interrupt source always read 1.
const unusedFlagBits = 0xe0

// Mask of the five interrupt bits.
const Mask = 0x1f

// Interrupts holds the state of the IE and IF registers.
type Interrupts struct {
	enable uint8
	flag   uint8
}

// NewInterrupts is the preferred method of initialisation for the Interrupts
// type. The registers are set to the values they have after the boot ROM.
func NewInterrupts() *Interrupts {
	return &Interrupts{}
}

func (irq *Interrupts) String() string {
	return fmt.Sprintf("IE=%#02x IF=%#02x", irq.enable, irq.ReadFlag())
}

// Reset registers to their post boot ROM values.
func (irq *Interrupts) Reset() {
	irq.enable = 0x00
	irq.flag = 0x00
}

// Request sets the IF bit for the interrupt source.
func (irq *Interrupts) Request(s Source) {
	irq.flag |= s.Bit()
}

// Acknowledge clears the IF bit for the interrupt source.
func (irq *Interrupts) Acknowledge(s Source) {
	irq.flag &^= s.Bit()
}

// Requested returns the pending IF bits, regardless of what is enabled.
func (irq *Interrupts) Requested() uint8 {
	return irq.flag & Mask
}

// Pending returns true if any enabled interrupt has been requested.
func (irq *Interrupts) Pending() bool {
	return irq.enable&irq.flag&Mask != 0
}

// Highest returns the highest priority interrupt that is both enabled and
// requested. The second return value is false if there is no such
// interrupt.
func (irq *Interrupts) Highest() (Source, bool) {
	p := irq.enable & irq.flag & Mask
	for s := VBlank; s < NumSources; s++ {
		if p&s.Bit() != 0 {
			return s, true
		}
	}
	return NumSources, false
}

// ReadFlag returns the value of the IF register as seen by the CPU.
func (irq *Interrupts) ReadFlag() uint8 {
	return irq.flag | unusedFlagBits
}

// WriteFlag sets the IF register.
func (irq *Interrupts) WriteFlag(v uint8) {
	irq.flag = v & Mask
}

// ReadEnable returns the value of the IE register. All eight bits of IE are
// stored even though only five of them are used.
func (irq *Interrupts) ReadEnable() uint8 {
	return irq.enable
}

// WriteEnable sets the IE register.
func (irq *Interrupts) WriteEnable(v uint8) {
	irq.enable = v
}
