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
	"github.com/gopherdmg/gopherdmg/hardware/memory/cpubus"
)

// execute the unprefixed opcode. the opcode has already been read and the
// program counter points to the byte after it. returns true if the
// instruction was conditional and the condition held.
func (mc *CPU) execute(op uint8) bool {
	x := op >> 6
	y := (op >> 3) & 0x07
	z := op & 0x07
	p := y >> 1
	q := y & 0x01

	// one-off instructions that do not follow the grammar
	switch op {
	case 0x00: // NOP
		return false
	case 0x08: // LD (nn),SP
		mc.write16(mc.fetch16(), mc.SP.Value())
		return false
	case 0x10: // STOP
		mc.fetch8()
		mc.mem.Write(cpubus.DIV, 0x00)
		return false
	case 0x18: // JR e
		e := mc.fetch8()
		mc.jumpRelative(e)
		return false
	case 0x07: // RLCA
		mc.F.Set(false, false, false, mc.A.RLC())
		return false
	case 0x0f: // RRCA
		mc.F.Set(false, false, false, mc.A.RRC())
		return false
	case 0x17: // RLA
		mc.F.Set(false, false, false, mc.A.RL(mc.F.Carry))
		return false
	case 0x1f: // RRA
		mc.F.Set(false, false, false, mc.A.RR(mc.F.Carry))
		return false
	case 0x27: // DAA
		mc.daa()
		return false
	case 0x2f: // CPL
		mc.A.XOR(0xff)
		mc.F.Subtract = true
		mc.F.HalfCarry = true
		return false
	case 0x37: // SCF
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = true
		return false
	case 0x3f: // CCF
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = !mc.F.Carry
		return false
	case 0x76: // HALT
		mc.Halted = true
		return false
	case 0xc3: // JP nn
		mc.PC.Load(mc.fetch16())
		return false
	case 0xc9: // RET
		mc.PC.Load(mc.pop16())
		return false
	case 0xcd: // CALL nn
		nn := mc.fetch16()
		mc.push16(mc.PC.Value())
		mc.PC.Load(nn)
		return false
	case 0xd9: // RETI
		mc.PC.Load(mc.pop16())
		mc.IME = IMEEnabled
		return false
	case 0xe0: // LDH (n),A
		mc.mem.Write(0xff00|uint16(mc.fetch8()), mc.A.Value())
		return false
	case 0xe2: // LD (C),A
		mc.mem.Write(0xff00|uint16(mc.C.Value()), mc.A.Value())
		return false
	case 0xe8: // ADD SP,e
		half, carry := mc.SP.AddSigned(mc.fetch8())
		mc.F.Set(false, false, half, carry)
		return false
	case 0xe9: // JP HL
		mc.PC.Load(mc.HL.Value())
		return false
	case 0xea: // LD (nn),A
		mc.mem.Write(mc.fetch16(), mc.A.Value())
		return false
	case 0xf0: // LDH A,(n)
		mc.A.Load(mc.mem.Read(0xff00 | uint16(mc.fetch8())))
		return false
	case 0xf2: // LD A,(C)
		mc.A.Load(mc.mem.Read(0xff00 | uint16(mc.C.Value())))
		return false
	case 0xf3: // DI
		mc.IME = IMEDisabled
		return false
	case 0xf8: // LD HL,SP+e
		sp := mc.SP
		half, carry := sp.AddSigned(mc.fetch8())
		mc.HL.Load(sp.Value())
		mc.F.Set(false, false, half, carry)
		return false
	case 0xf9: // LD SP,HL
		mc.SP.Load(mc.HL.Value())
		return false
	case 0xfa: // LD A,(nn)
		mc.A.Load(mc.mem.Read(mc.fetch16()))
		return false
	case 0xfb: // EI
		if mc.IME == IMEDisabled {
			mc.IME = IMEPending
		}
		return false
	}

	switch x {
	case 0:
		return mc.executeBlock0(y, z, p, q)
	case 1:
		// LD r,r'. 0x76 is HALT and has already been handled
		mc.writeOperand(mc.decodeOperand(y), mc.readOperand(mc.decodeOperand(z)))
		return false
	case 2:
		mc.alu(y, mc.readOperand(mc.decodeOperand(z)))
		return false
	}
	return mc.executeBlock3(y, z, p, q)
}

func (mc *CPU) executeBlock0(y, z, p, q uint8) bool {
	switch z {
	case 0:
		// JR cc,e
		e := mc.fetch8()
		if mc.condition(y - 4) {
			mc.jumpRelative(e)
			return true
		}
	case 1:
		if q == 0 {
			// LD rp,nn
			mc.writeRP(p, mc.fetch16())
		} else {
			// ADD HL,rp
			half, carry := mc.HL.Add(mc.readRP(p))
			mc.F.Subtract = false
			mc.F.HalfCarry = half
			mc.F.Carry = carry
		}
	case 2:
		var address uint16
		switch p {
		case 0:
			address = mc.BC.Value()
		case 1:
			address = mc.DE.Value()
		case 2:
			address = mc.HL.Value()
			mc.HL.Increment()
		case 3:
			address = mc.HL.Value()
			mc.HL.Decrement()
		}
		if q == 0 {
			mc.mem.Write(address, mc.A.Value())
		} else {
			mc.A.Load(mc.mem.Read(address))
		}
	case 3:
		// INC rp and DEC rp. no flags are affected
		if q == 0 {
			mc.writeRP(p, mc.readRP(p)+1)
		} else {
			mc.writeRP(p, mc.readRP(p)-1)
		}
	case 4:
		mc.increment(mc.decodeOperand(y))
	case 5:
		mc.decrement(mc.decodeOperand(y))
	case 6:
		// LD r,n
		mc.writeOperand(mc.decodeOperand(y), mc.fetch8())
	}
	return false
}

func (mc *CPU) executeBlock3(y, z, p, q uint8) bool {
	switch z {
	case 0:
		// RET cc
		if mc.condition(y) {
			mc.PC.Load(mc.pop16())
			return true
		}
	case 1:
		// POP rp2. the q=1 forms are one-offs
		mc.writeRP2(p, mc.pop16())
	case 2:
		// JP cc,nn
		nn := mc.fetch16()
		if mc.condition(y) {
			mc.PC.Load(nn)
			return true
		}
	case 4:
		// CALL cc,nn
		nn := mc.fetch16()
		if mc.condition(y) {
			mc.push16(mc.PC.Value())
			mc.PC.Load(nn)
			return true
		}
	case 5:
		// PUSH rp2. the q=1 forms are one-offs or invalid
		mc.push16(mc.readRP2(p))
	case 6:
		// ALU A,n
		mc.alu(y, mc.fetch8())
	case 7:
		// RST
		mc.push16(mc.PC.Value())
		mc.PC.Load(uint16(y) * 8)
	}
	return false
}

// executePrefixed executes the opcode that followed the 0xcb prefix.
func (mc *CPU) executePrefixed(op uint8) {
	x := op >> 6
	y := (op >> 3) & 0x07
	o := mc.decodeOperand(op & 0x07)

	switch x {
	case 0:
		mc.modifyOperand(o, func(r *registers.Register) {
			mc.rotate(y, r)
		})
	case 1:
		// BIT. the carry flag is not affected
		mc.F.Zero = (mc.readOperand(o) & (0x01 << y)) == 0
		mc.F.Subtract = false
		mc.F.HalfCarry = true
	case 2:
		mc.modifyOperand(o, func(r *registers.Register) {
			r.ResetBit(y)
		})
	case 3:
		mc.modifyOperand(o, func(r *registers.Register) {
			r.SetBit(y)
		})
	}
}

// jumpRelative adds the signed offset to the program counter.
func (mc *CPU) jumpRelative(e uint8) {
	mc.PC.Add(uint16(int16(int8(e))))
}
