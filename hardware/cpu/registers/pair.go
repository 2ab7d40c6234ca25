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

package registers

import (
	"fmt"
)

// Pair combines two 8 bit registers into a 16 bit register. The registers
// are not copied, changes to the pair are seen by the individual registers
// and vice versa.
type Pair struct {
	hi    *Register
	lo    *Register
	label string
}

// NewPair is the preferred method of initialisation for a register pair.
func NewPair(hi *Register, lo *Register) Pair {
	return Pair{hi: hi, lo: lo, label: hi.label + lo.label}
}

func (p Pair) String() string {
	return fmt.Sprintf("%s=%04x", p.label, p.Value())
}

// Label returns the canonical name of the pair.
func (p Pair) Label() string {
	return p.label
}

// Value returns the 16 bit value of the pair.
func (p Pair) Value() uint16 {
	return uint16(p.hi.value)<<8 | uint16(p.lo.value)
}

// Load value into the pair.
func (p Pair) Load(val uint16) {
	p.hi.value = uint8(val >> 8)
	p.lo.value = uint8(val)
}

// Add value to the pair. Returns the carry out of bit 11 and bit 15.
func (p Pair) Add(val uint16) (half bool, carry bool) {
	v := p.Value()
	half = (v&0x0fff)+(val&0x0fff) > 0x0fff
	sum := uint32(v) + uint32(val)
	p.Load(uint16(sum))
	return half, sum > 0xffff
}

// Increment the pair. No flags are affected by 16 bit increments.
func (p Pair) Increment() {
	p.Load(p.Value() + 1)
}

// Decrement the pair. No flags are affected by 16 bit decrements.
func (p Pair) Decrement() {
	p.Load(p.Value() - 1)
}

// Counter is a 16 bit register used for the stack pointer and program
// counter.
type Counter struct {
	value uint16
	label string
}

// NewCounter is the preferred method of initialisation for a counter.
func NewCounter(val uint16, label string) Counter {
	return Counter{value: val, label: label}
}

func (c Counter) String() string {
	return fmt.Sprintf("%s=%04x", c.label, c.value)
}

// Label returns the canonical name of the counter.
func (c Counter) Label() string {
	return c.label
}

// Value returns the current value of the counter.
func (c Counter) Value() uint16 {
	return c.value
}

// Load value into the counter.
func (c *Counter) Load(val uint16) {
	c.value = val
}

// Add value to the counter, wrapping at 16 bits.
func (c *Counter) Add(val uint16) {
	c.value += val
}

// AddSigned adds the signed 8 bit value to the counter. The half-carry and
// carry conditions are those of adding the unsigned byte to the lower byte of
// the counter.
func (c *Counter) AddSigned(e uint8) (half bool, carry bool) {
	half = (c.value&0x000f)+uint16(e&0x0f) > 0x000f
	carry = (c.value&0x00ff)+uint16(e) > 0x00ff
	c.value = uint16(int32(c.value) + int32(int8(e)))
	return half, carry
}
