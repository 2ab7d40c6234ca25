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

package execution

import (
	"fmt"
	"strings"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition
	Defn *instructions.Definition

	// instruction data is the operand of the instruction. an 8 bit operand
	// is held in the lower byte
	InstructionData uint16

	// number of bytes read during instruction decode, including any prefix
	// byte
	ByteCount int

	// the actual number of T-cycles taken by the instruction. for conditional
	// instructions this will be either Defn.Cycles or Defn.CyclesTaken
	Cycles int

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.InstructionData = 0
	r.ByteCount = 0
	r.Cycles = 0
	r.Final = false
}

// String returns a disassembled version of the instruction.
func (r Result) String() string {
	if r.Defn == nil {
		return "???"
	}

	var operand string
	mnemonic := r.Defn.Mnemonic

	switch r.Defn.Operand {
	case instructions.Immediate8:
		operand = fmt.Sprintf("$%02x", uint8(r.InstructionData))
		mnemonic = strings.Replace(mnemonic, "n", operand, 1)
	case instructions.Immediate16:
		operand = fmt.Sprintf("$%04x", r.InstructionData)
		mnemonic = strings.Replace(mnemonic, "nn", operand, 1)
	case instructions.Signed8:
		e := int8(r.InstructionData)
		if r.Defn.Effect == instructions.Flow {
			// relative jumps show the destination address
			dest := uint16(int32(r.Address) + int32(r.Defn.Bytes) + int32(e))
			operand = fmt.Sprintf("$%04x", dest)
		} else {
			operand = fmt.Sprintf("%d", e)
		}
		mnemonic = strings.Replace(mnemonic, "e", operand, 1)
	}

	if !r.Final {
		return fmt.Sprintf("%04x %s [v]", r.Address, mnemonic)
	}
	return fmt.Sprintf("%04x %s [%d]", r.Address, mnemonic, r.Cycles)
}
