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

// Definition defines each instruction in the instruction set; one per
// instruction.
type Definition struct {
	OpCode   uint8
	Prefixed bool
	Mnemonic string

	// number of bytes including the opcode and any prefix byte
	Bytes int

	// number of T-cycles. for conditional instructions Cycles is the count
	// when the condition does not hold and CyclesTaken is the count when it
	// does
	Cycles      int
	CyclesTaken int

	Operand Operand
	Effect  Category
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Effect == Invalid {
		if defn.Prefixed {
			return fmt.Sprintf("cb %02x invalid instruction", defn.OpCode)
		}
		return fmt.Sprintf("%02x invalid instruction", defn.OpCode)
	}
	pre := ""
	if defn.Prefixed {
		pre = "cb "
	}
	if defn.IsConditional() {
		return fmt.Sprintf("%s%02x %s +%dbytes (%d/%d cycles) [%s]", pre, defn.OpCode, defn.Mnemonic, defn.Bytes, defn.CyclesTaken, defn.Cycles, defn.Effect)
	}
	return fmt.Sprintf("%s%02x %s +%dbytes (%d cycles) [%s]", pre, defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.Effect)
}

// IsConditional returns true if the number of cycles depends on whether a
// condition holds.
func (defn Definition) IsConditional() bool {
	return defn.CyclesTaken != 0
}

// IsValid returns false for the opcodes that lock up the CPU.
func (defn Definition) IsValid() bool {
	return defn.Effect != Invalid
}

// Operand describes the operand that follows the opcode.
type Operand int

// List of operand types.
const (
	NoOperand Operand = iota
	Immediate8
	Immediate16
	Signed8
)
