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

package instructions

import (
	"fmt"
)

// names of the fields used by the decoding grammar. indexed by the value of
// the field in the opcode
var (
	r   = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
	rp  = [4]string{"BC", "DE", "HL", "SP"}
	rp2 = [4]string{"BC", "DE", "HL", "AF"}
	cc  = [4]string{"NZ", "Z", "NC", "C"}
	alu = [8]string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}
	rot = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}
)

// the register field value that selects the (HL) indirect operand
const indirectHL = 6

var unprefixed []*Definition
var prefixed []*Definition

func init() {
	unprefixed = make([]*Definition, 256)
	prefixed = make([]*Definition, 256)
	for i := 0; i < 256; i++ {
		unprefixed[i] = decode(uint8(i))
		prefixed[i] = decodePrefixed(uint8(i))
	}
}

// GetDefinitions returns the table of unprefixed instruction definitions,
// indexed by opcode.
func GetDefinitions() []*Definition {
	return unprefixed
}

// GetPrefixedDefinitions returns the table of instruction definitions for the
// opcodes that follow the 0xcb prefix, indexed by opcode.
func GetPrefixedDefinitions() []*Definition {
	return prefixed
}

// Lookup returns the definition for the opcode. The prefixed table is used if
// prefix is true.
func Lookup(opcode uint8, prefix bool) *Definition {
	if prefix {
		return prefixed[opcode]
	}
	return unprefixed[opcode]
}

func defn(op uint8, mnemonic string, bytes int, cycles int, effect Category) *Definition {
	d := &Definition{
		OpCode:   op,
		Mnemonic: mnemonic,
		Bytes:    bytes,
		Cycles:   cycles,
		Effect:   effect,
	}
	switch bytes {
	case 2:
		d.Operand = Immediate8
	case 3:
		d.Operand = Immediate16
	}
	return d
}

func conditional(op uint8, mnemonic string, bytes int, cycles int, taken int, effect Category) *Definition {
	d := defn(op, mnemonic, bytes, cycles, effect)
	d.CyclesTaken = taken
	return d
}

func signed(d *Definition) *Definition {
	d.Operand = Signed8
	return d
}

func invalid(op uint8) *Definition {
	return &Definition{OpCode: op, Mnemonic: "??", Bytes: 1, Effect: Invalid}
}

// cost of an instruction that uses operand field z for its source or
// destination. the (HL) operand costs an additional memory access.
func operandCost(z uint8, base int, indirect int) int {
	if z == indirectHL {
		return indirect
	}
	return base
}

func decode(op uint8) *Definition {
	x := op >> 6
	y := (op >> 3) & 0x07
	z := op & 0x07
	p := y >> 1
	q := y & 0x01

	// one-off instructions that do not follow the grammar
	switch op {
	case 0x00:
		return defn(op, "NOP", 1, 4, Control)
	case 0x08:
		return defn(op, "LD (nn),SP", 3, 20, Load)
	case 0x10:
		return defn(op, "STOP", 2, 4, Control)
	case 0x18:
		return signed(defn(op, "JR e", 2, 12, Flow))
	case 0x07:
		return defn(op, "RLCA", 1, 4, Bit)
	case 0x0f:
		return defn(op, "RRCA", 1, 4, Bit)
	case 0x17:
		return defn(op, "RLA", 1, 4, Bit)
	case 0x1f:
		return defn(op, "RRA", 1, 4, Bit)
	case 0x27:
		return defn(op, "DAA", 1, 4, ALU)
	case 0x2f:
		return defn(op, "CPL", 1, 4, ALU)
	case 0x37:
		return defn(op, "SCF", 1, 4, ALU)
	case 0x3f:
		return defn(op, "CCF", 1, 4, ALU)
	case 0x76:
		return defn(op, "HALT", 1, 4, Control)
	case 0xc3:
		return defn(op, "JP nn", 3, 16, Flow)
	case 0xc9:
		return defn(op, "RET", 1, 16, Subroutine)
	case 0xcb:
		return defn(op, "PREFIX CB", 1, 4, Control)
	case 0xcd:
		return defn(op, "CALL nn", 3, 24, Subroutine)
	case 0xd9:
		return defn(op, "RETI", 1, 16, Interrupt)
	case 0xe0:
		return defn(op, "LDH (n),A", 2, 12, Load)
	case 0xe2:
		return defn(op, "LD (C),A", 1, 8, Load)
	case 0xe8:
		return signed(defn(op, "ADD SP,e", 2, 16, ALU))
	case 0xe9:
		return defn(op, "JP HL", 1, 4, Flow)
	case 0xea:
		return defn(op, "LD (nn),A", 3, 16, Load)
	case 0xf0:
		return defn(op, "LDH A,(n)", 2, 12, Load)
	case 0xf2:
		return defn(op, "LD A,(C)", 1, 8, Load)
	case 0xf3:
		return defn(op, "DI", 1, 4, Interrupt)
	case 0xf8:
		return signed(defn(op, "LD HL,SP+e", 2, 12, Load))
	case 0xf9:
		return defn(op, "LD SP,HL", 1, 8, Load)
	case 0xfa:
		return defn(op, "LD A,(nn)", 3, 16, Load)
	case 0xfb:
		return defn(op, "EI", 1, 4, Interrupt)
	case 0xd3, 0xdb, 0xdd, 0xe3, 0xe4, 0xeb, 0xec, 0xed, 0xf4, 0xfc, 0xfd:
		return invalid(op)
	}

	switch x {
	case 0:
		switch z {
		case 0:
			// JR cc,e. the other values of y are one-offs
			return signed(conditional(op, fmt.Sprintf("JR %s,e", cc[y-4]), 2, 8, 12, Flow))
		case 1:
			if q == 0 {
				return defn(op, fmt.Sprintf("LD %s,nn", rp[p]), 3, 12, Load)
			}
			return defn(op, fmt.Sprintf("ADD HL,%s", rp[p]), 1, 8, ALU)
		case 2:
			ind := [4]string{"(BC)", "(DE)", "(HL+)", "(HL-)"}
			if q == 0 {
				return defn(op, fmt.Sprintf("LD %s,A", ind[p]), 1, 8, Load)
			}
			return defn(op, fmt.Sprintf("LD A,%s", ind[p]), 1, 8, Load)
		case 3:
			if q == 0 {
				return defn(op, fmt.Sprintf("INC %s", rp[p]), 1, 8, ALU)
			}
			return defn(op, fmt.Sprintf("DEC %s", rp[p]), 1, 8, ALU)
		case 4:
			return defn(op, fmt.Sprintf("INC %s", r[y]), 1, operandCost(y, 4, 12), ALU)
		case 5:
			return defn(op, fmt.Sprintf("DEC %s", r[y]), 1, operandCost(y, 4, 12), ALU)
		case 6:
			return defn(op, fmt.Sprintf("LD %s,n", r[y]), 2, operandCost(y, 8, 12), Load)
		}

	case 1:
		cost := 4
		if y == indirectHL || z == indirectHL {
			cost = 8
		}
		return defn(op, fmt.Sprintf("LD %s,%s", r[y], r[z]), 1, cost, Load)

	case 2:
		return defn(op, fmt.Sprintf("%s%s", alu[y], r[z]), 1, operandCost(z, 4, 8), ALU)

	case 3:
		switch z {
		case 0:
			return conditional(op, fmt.Sprintf("RET %s", cc[y]), 1, 8, 20, Subroutine)
		case 1:
			if q == 0 {
				return defn(op, fmt.Sprintf("POP %s", rp2[p]), 1, 12, Load)
			}
		case 2:
			return conditional(op, fmt.Sprintf("JP %s,nn", cc[y]), 3, 12, 16, Flow)
		case 4:
			return conditional(op, fmt.Sprintf("CALL %s,nn", cc[y]), 3, 12, 24, Subroutine)
		case 5:
			if q == 0 {
				return defn(op, fmt.Sprintf("PUSH %s", rp2[p]), 1, 16, Load)
			}
		case 6:
			return defn(op, fmt.Sprintf("%sn", alu[y]), 2, 8, ALU)
		case 7:
			return defn(op, fmt.Sprintf("RST %02xh", y*8), 1, 16, Subroutine)
		}
	}

	// every opcode is covered by the one-offs or the grammar
	panic(fmt.Sprintf("instructions: opcode %#02x not covered by decoding grammar", op))
}

func decodePrefixed(op uint8) *Definition {
	x := op >> 6
	y := (op >> 3) & 0x07
	z := op & 0x07

	var d *Definition
	switch x {
	case 0:
		d = defn(op, fmt.Sprintf("%s %s", rot[y], r[z]), 2, operandCost(z, 8, 16), Bit)
	case 1:
		d = defn(op, fmt.Sprintf("BIT %d,%s", y, r[z]), 2, operandCost(z, 8, 12), Bit)
	case 2:
		d = defn(op, fmt.Sprintf("RES %d,%s", y, r[z]), 2, operandCost(z, 8, 16), Bit)
	case 3:
		d = defn(op, fmt.Sprintf("SET %d,%s", y, r[z]), 2, operandCost(z, 8, 16), Bit)
	}
	d.Prefixed = true
	d.Operand = NoOperand
	return d
}
