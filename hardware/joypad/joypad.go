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

package joypad

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
)

// P1 register address.
const P1 = 0xff00

// Button on the console.
type Button int

// List of valid buttons. The order matches the bit positions in the P1
// register: directions first and then the action buttons.
const (
	Right Button = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
	NumButtons
)

func (b Button) String() string {
	switch b {
	case Right:
		return "Right"
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case A:
		return "A"
	case B:
		return "B"
	case Select:
		return "Select"
	case Start:
		return "Start"
	}
	return fmt.Sprintf("unknown button (%d)", int(b))
}

// selection bits in P1.
const (
	selectDirections = 0x10
	selectActions    = 0x20
)

// Joypad implements the P1 register.
type Joypad struct {
	irq *interrupts.Interrupts

	// the selection bits written by the CPU
	selection uint8

	// the input lines of P1 at the previous Tick()
	lines uint8

	// one bit per button, set when pressed. the lower nibble is the
	// direction group and the upper nibble is the action group. the front
	// end may change buttons from another goroutine
	pressed atomic.Uint32
}

// NewJoypad is the preferred method of initialisation for the Joypad type.
func NewJoypad(irq *interrupts.Interrupts) *Joypad {
	return &Joypad{
		irq:       irq,
		selection: selectDirections | selectActions,
		lines:     0x0f,
	}
}

func (jp *Joypad) String() string {
	s := strings.Builder{}
	for b := Right; b < NumButtons; b++ {
		if jp.IsPressed(b) {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(b.String())
		}
	}
	return s.String()
}

// Set the state of a button.
func (jp *Joypad) Set(b Button, pressed bool) {
	if b < Right || b >= NumButtons {
		return
	}
	for {
		old := jp.pressed.Load()
		nw := old &^ (1 << uint(b))
		if pressed {
			nw = old | 1<<uint(b)
		}
		if jp.pressed.CompareAndSwap(old, nw) {
			return
		}
	}
}

// IsPressed returns true if the button is pressed.
func (jp *Joypad) IsPressed(b Button) bool {
	return jp.pressed.Load()&(1<<uint(b)) != 0
}

// the low nibble of P1. a line is low if a button in a selected group is
// pressed.
func (jp *Joypad) inputLines() uint8 {
	p := uint8(jp.pressed.Load())
	var low uint8
	if jp.selection&selectDirections == 0 {
		low |= p & 0x0f
	}
	if jp.selection&selectActions == 0 {
		low |= p >> 4
	}
	return ^low & 0x0f
}

// Tick requests the joypad interrupt if any input line has fallen since the
// previous call. Must be called on the emulation goroutine.
func (jp *Joypad) Tick() {
	l := jp.inputLines()
	if jp.lines&^l != 0 {
		jp.irq.Request(interrupts.Joypad)
	}
	jp.lines = l
}

// Read implements the cpubus.Memory interface for the P1 register.
func (jp *Joypad) Read(address uint16) uint8 {
	if address != P1 {
		return 0xff
	}
	return 0xc0 | jp.selection | jp.inputLines()
}

// Write implements the cpubus.Memory interface for the P1 register. Only the
// selection bits can be written.
func (jp *Joypad) Write(address uint16, data uint8) {
	if address != P1 {
		return
	}
	jp.selection = data & (selectDirections | selectActions)
}
