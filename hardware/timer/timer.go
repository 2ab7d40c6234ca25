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

package timer

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
)

// Register addresses.
const (
	DIV  = 0xff04
	TIMA = 0xff05
	TMA  = 0xff06
	TAC  = 0xff07
)

// counter bit selected by the lower two bits of TAC.
var tacBit = [4]uint{9, 3, 5, 7}

// Timer implements the timer registers.
type Timer struct {
	irq *interrupts.Interrupts

	counter uint16
	tima    uint8
	tma     uint8
	tac     uint8

	// TIMA overflowed on the previous cycle. reload and interrupt happen on
	// the next call to Tick()
	overflow bool
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(irq *interrupts.Interrupts) *Timer {
	tmr := &Timer{irq: irq}
	tmr.Reset()
	return tmr
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("DIV=%#02x TIMA=%#02x TMA=%#02x TAC=%#02x", tmr.ReadDIV(), tmr.tima, tmr.tma, tmr.tac|0xf8)
}

// Reset timer to its post boot ROM state.
func (tmr *Timer) Reset() {
	tmr.counter = 0xabcc
	tmr.tima = 0
	tmr.tma = 0
	tmr.tac = 0
	tmr.overflow = false
}

// Counter returns the full 16 bit internal counter. The APU frame sequencer
// is clocked from this value.
func (tmr *Timer) Counter() uint16 {
	return tmr.counter
}

// ReadDIV returns the upper byte of the internal counter.
func (tmr *Timer) ReadDIV() uint8 {
	return uint8(tmr.counter >> 8)
}

// signal is the input to the TIMA falling edge detector.
func (tmr *Timer) signal() bool {
	return tmr.tac&0x04 == 0x04 && tmr.counter&(1<<tacBit[tmr.tac&0x03]) != 0
}

func (tmr *Timer) increment() {
	tmr.tima++
	if tmr.tima == 0 {
		tmr.overflow = true
	}
}

// Tick advances the timer by one machine cycle.
func (tmr *Timer) Tick() {
	if tmr.overflow {
		tmr.overflow = false
		tmr.tima = tmr.tma
		tmr.irq.Request(interrupts.Timer)
	}

	before := tmr.signal()
	tmr.counter += 4
	if before && !tmr.signal() {
		tmr.increment()
	}
}

// Read implements the cpubus.Memory interface for the timer registers.
func (tmr *Timer) Read(address uint16) uint8 {
	switch address {
	case DIV:
		return tmr.ReadDIV()
	case TIMA:
		return tmr.tima
	case TMA:
		return tmr.tma
	case TAC:
		return tmr.tac | 0xf8
	}
	return 0xff
}

// Write implements the cpubus.Memory interface for the timer registers.
//
// Changes to DIV and TAC can produce a falling edge on the selected counter
// bit, in which case TIMA is incremented immediately.
func (tmr *Timer) Write(address uint16, data uint8) {
	switch address {
	case DIV:
		before := tmr.signal()
		tmr.counter = 0
		if before {
			tmr.increment()
		}
	case TIMA:
		// writing to TIMA during the overflow cycle cancels the reload
		tmr.overflow = false
		tmr.tima = data
	case TMA:
		tmr.tma = data
	case TAC:
		before := tmr.signal()
		tmr.tac = data & 0x07
		if before && !tmr.signal() {
			tmr.increment()
		}
	}
}
