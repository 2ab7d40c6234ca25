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

// Register is an 8 bit general purpose register.
type Register struct {
	value uint8
	label string
}

// NewRegister is the preferred method of initialisation for a register.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%02x", r.label, r.value)
}

// Label returns the canonical name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register, with an optional carry in. Returns the carry out
// of bit 3 and bit 7.
func (r *Register) Add(val uint8, carry bool) (half bool, rcarry bool) {
	var c uint8
	if carry {
		c = 1
	}
	half = (r.value&0x0f)+(val&0x0f)+c > 0x0f
	sum := uint16(r.value) + uint16(val) + uint16(c)
	r.value = uint8(sum)
	return half, sum > 0xff
}

// Subtract value from register, with an optional borrow in. Returns the
// borrow from bit 4 and from bit 8.
func (r *Register) Subtract(val uint8, borrow bool) (half bool, rborrow bool) {
	var b uint8
	if borrow {
		b = 1
	}
	half = uint16(r.value&0x0f) < uint16(val&0x0f)+uint16(b)
	rborrow = uint16(r.value) < uint16(val)+uint16(b)
	r.value = r.value - val - b
	return half, rborrow
}

// Increment register by one. Returns the carry out of bit 3.
func (r *Register) Increment() (half bool) {
	half = r.value&0x0f == 0x0f
	r.value++
	return half
}

// Decrement register by one. Returns the borrow from bit 4.
func (r *Register) Decrement() (half bool) {
	half = r.value&0x0f == 0x00
	r.value--
	return half
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// OR value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// XOR value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}

// RLC rotates register one bit to the left. Bit 7 moves to bit 0 and is also
// returned as the new carry.
func (r *Register) RLC() bool {
	carry := r.value&0x80 == 0x80
	r.value = r.value<<1 | r.value>>7
	return carry
}

// RRC rotates register one bit to the right. Bit 0 moves to bit 7 and is also
// returned as the new carry.
func (r *Register) RRC() bool {
	carry := r.value&0x01 == 0x01
	r.value = r.value>>1 | r.value<<7
	return carry
}

// RL rotates register one bit to the left through the carry.
func (r *Register) RL(carry bool) bool {
	rcarry := r.value&0x80 == 0x80
	r.value <<= 1
	if carry {
		r.value |= 0x01
	}
	return rcarry
}

// RR rotates register one bit to the right through the carry.
func (r *Register) RR(carry bool) bool {
	rcarry := r.value&0x01 == 0x01
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return rcarry
}

// SLA shifts register one bit to the left. Bit 0 is cleared.
func (r *Register) SLA() bool {
	carry := r.value&0x80 == 0x80
	r.value <<= 1
	return carry
}

// SRA shifts register one bit to the right. Bit 7 is unchanged.
func (r *Register) SRA() bool {
	carry := r.value&0x01 == 0x01
	r.value = r.value>>1 | r.value&0x80
	return carry
}

// SRL shifts register one bit to the right. Bit 7 is cleared.
func (r *Register) SRL() bool {
	carry := r.value&0x01 == 0x01
	r.value >>= 1
	return carry
}

// Swap exchanges the upper and lower nibbles of the register.
func (r *Register) Swap() {
	r.value = r.value<<4 | r.value>>4
}

// Bit returns true if the numbered bit is set.
func (r Register) Bit(n uint8) bool {
	return r.value&(0x01<<(n&0x07)) != 0
}

// SetBit sets the numbered bit.
func (r *Register) SetBit(n uint8) {
	r.value |= 0x01 << (n & 0x07)
}

// ResetBit clears the numbered bit.
func (r *Register) ResetBit(n uint8) {
	r.value &^= 0x01 << (n & 0x07)
}
