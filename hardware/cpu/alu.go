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

package cpu

import (
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
)

// alu performs the arithmetic or logic operation selected by the y field of
// block 2 opcodes and the immediate ALU opcodes. the accumulator is always the
// destination.
func (mc *CPU) alu(y uint8, v uint8) {
	switch y & 0x07 {
	case 0: // ADD
		half, carry := mc.A.Add(v, false)
		mc.F.Set(mc.A.IsZero(), false, half, carry)
	case 1: // ADC
		half, carry := mc.A.Add(v, mc.F.Carry)
		mc.F.Set(mc.A.IsZero(), false, half, carry)
	case 2: // SUB
		half, carry := mc.A.Subtract(v, false)
		mc.F.Set(mc.A.IsZero(), true, half, carry)
	case 3: // SBC
		half, carry := mc.A.Subtract(v, mc.F.Carry)
		mc.F.Set(mc.A.IsZero(), true, half, carry)
	case 4: // AND
		mc.A.AND(v)
		mc.F.Set(mc.A.IsZero(), false, true, false)
	case 5: // XOR
		mc.A.XOR(v)
		mc.F.Set(mc.A.IsZero(), false, false, false)
	case 6: // OR
		mc.A.OR(v)
		mc.F.Set(mc.A.IsZero(), false, false, false)
	case 7: // CP
		mc.acc8.Load(mc.A.Value())
		half, carry := mc.acc8.Subtract(v, false)
		mc.F.Set(mc.acc8.IsZero(), true, half, carry)
	}
}

// increment an 8 bit register or the (HL) operand. the carry flag is not
// affected.
func (mc *CPU) increment(o operand) {
	mc.modifyOperand(o, func(r *registers.Register) {
		mc.F.HalfCarry = r.Increment()
		mc.F.Zero = r.IsZero()
		mc.F.Subtract = false
	})
}

// decrement an 8 bit register or the (HL) operand. the carry flag is not
// affected.
func (mc *CPU) decrement(o operand) {
	mc.modifyOperand(o, func(r *registers.Register) {
		mc.F.HalfCarry = r.Decrement()
		mc.F.Zero = r.IsZero()
		mc.F.Subtract = true
	})
}

// rotate performs the rotate or shift operation selected by the y field of the
// prefixed block 0 opcodes.
func (mc *CPU) rotate(y uint8, r *registers.Register) {
	var carry bool
	switch y & 0x07 {
	case 0:
		carry = r.RLC()
	case 1:
		carry = r.RRC()
	case 2:
		carry = r.RL(mc.F.Carry)
	case 3:
		carry = r.RR(mc.F.Carry)
	case 4:
		carry = r.SLA()
	case 5:
		carry = r.SRA()
	case 6:
		r.Swap()
	case 7:
		carry = r.SRL()
	}
	mc.F.Set(r.IsZero(), false, false, carry)
}

// decimal adjust the accumulator after a BCD addition or subtraction.
func (mc *CPU) daa() {
	a := mc.A.Value()
	if !mc.F.Subtract {
		if mc.F.Carry || a > 0x99 {
			a += 0x60
			mc.F.Carry = true
		}
		if mc.F.HalfCarry || a&0x0f > 0x09 {
			a += 0x06
		}
	} else {
		if mc.F.Carry {
			a -= 0x60
		}
		if mc.F.HalfCarry {
			a -= 0x06
		}
	}
	mc.A.Load(a)
	mc.F.Zero = a == 0
	mc.F.HalfCarry = false
}
