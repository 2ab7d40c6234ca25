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

// operand is the result of decoding a 3 bit register field. it is either one
// of the 8 bit registers or the memory location pointed to by HL.
type operand struct {
	indirect bool
	reg      *registers.Register
}

// the register field value that selects the (HL) operand
const indirectHL = 6

func (mc *CPU) decodeOperand(idx uint8) operand {
	switch idx & 0x07 {
	case 0:
		return operand{reg: &mc.B}
	case 1:
		return operand{reg: &mc.C}
	case 2:
		return operand{reg: &mc.D}
	case 3:
		return operand{reg: &mc.E}
	case 4:
		return operand{reg: &mc.H}
	case 5:
		return operand{reg: &mc.L}
	case indirectHL:
		return operand{indirect: true}
	}
	return operand{reg: &mc.A}
}

func (mc *CPU) readOperand(o operand) uint8 {
	if o.indirect {
		return mc.mem.Read(mc.HL.Value())
	}
	return o.reg.Value()
}

func (mc *CPU) writeOperand(o operand, v uint8) {
	if o.indirect {
		mc.mem.Write(mc.HL.Value(), v)
		return
	}
	o.reg.Load(v)
}

// modifyOperand applies the function to the operand. for the (HL) operand the
// function operates on the hidden accumulator, which is then written back to
// memory.
func (mc *CPU) modifyOperand(o operand, f func(r *registers.Register)) {
	if o.indirect {
		mc.acc8.Load(mc.mem.Read(mc.HL.Value()))
		f(&mc.acc8)
		mc.mem.Write(mc.HL.Value(), mc.acc8.Value())
		return
	}
	f(o.reg)
}

// the value of the 16 bit register selected by the rp field.
func (mc *CPU) readRP(p uint8) uint16 {
	switch p & 0x03 {
	case 0:
		return mc.BC.Value()
	case 1:
		return mc.DE.Value()
	case 2:
		return mc.HL.Value()
	}
	return mc.SP.Value()
}

func (mc *CPU) writeRP(p uint8, v uint16) {
	switch p & 0x03 {
	case 0:
		mc.BC.Load(v)
	case 1:
		mc.DE.Load(v)
	case 2:
		mc.HL.Load(v)
	default:
		mc.SP.Load(v)
	}
}

// the rp2 field is the same as the rp field except that the value 3 selects
// AF rather than SP. used by PUSH and POP.
func (mc *CPU) readRP2(p uint8) uint16 {
	if p&0x03 == 3 {
		return mc.AF()
	}
	return mc.readRP(p)
}

func (mc *CPU) writeRP2(p uint8, v uint16) {
	if p&0x03 == 3 {
		mc.A.Load(uint8(v >> 8))
		mc.F.Load(uint8(v))
		return
	}
	mc.writeRP(p, v)
}

// condition returns true if the condition selected by the cc field holds.
func (mc *CPU) condition(cc uint8) bool {
	switch cc & 0x03 {
	case 0:
		return !mc.F.Zero
	case 1:
		return mc.F.Zero
	case 2:
		return !mc.F.Carry
	}
	return mc.F.Carry
}
