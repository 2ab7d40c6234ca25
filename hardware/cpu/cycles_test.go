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

package cpu_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/cpu"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
	"github.com/gopherdmg/gopherdmg/test"
)

// documented number of M-cycles for each unprefixed opcode. conditional
// instructions are given the not-taken count. zero marks the prefix byte and
// the invalid opcodes
var documentedCycles = [256]int{
	1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1,
	1, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1,
	2, 3, 2, 2, 1, 1, 2, 1, 2, 2, 2, 2, 1, 1, 2, 1,
	2, 3, 2, 2, 3, 3, 3, 1, 2, 2, 2, 2, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	2, 2, 2, 2, 2, 2, 1, 2, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	2, 3, 3, 4, 3, 4, 2, 4, 2, 4, 3, 0, 3, 6, 2, 4,
	2, 3, 3, 0, 3, 4, 2, 4, 2, 4, 3, 0, 3, 0, 2, 4,
	3, 3, 2, 0, 0, 4, 2, 4, 4, 1, 4, 0, 0, 0, 2, 4,
	3, 3, 2, 1, 0, 4, 2, 4, 3, 2, 4, 1, 0, 0, 2, 4,
}

// documented number of M-cycles for conditional instructions when the
// condition holds
var documentedTaken = map[uint8]int{
	0x20: 3, 0x28: 3, 0x30: 3, 0x38: 3,
	0xc0: 5, 0xc8: 5, 0xd0: 5, 0xd8: 5,
	0xc2: 4, 0xca: 4, 0xd2: 4, 0xda: 4,
	0xc4: 6, 0xcc: 6, 0xd4: 6, 0xdc: 6,
}

// documented number of M-cycles for prefixed opcodes
func documentedPrefixedCycles(op uint8) int {
	if op&0x07 != 0x06 {
		return 2
	}
	if op>>6 == 1 {
		return 3
	}
	return 4
}

// sets the flags so that the condition in the opcode holds or not
func setCondition(mc *cpu.CPU, op uint8, holds bool) {
	switch (op >> 3) & 0x03 {
	case 0:
		mc.F.Zero = !holds
	case 1:
		mc.F.Zero = holds
	case 2:
		mc.F.Carry = !holds
	case 3:
		mc.F.Carry = holds
	}
}

func TestCycleTable(t *testing.T) {
	const origin = 0xc000

	for i := 0; i < 256; i++ {
		op := uint8(i)
		if documentedCycles[op] == 0 {
			continue
		}

		run := func(holds bool) int {
			mc, mem := newCPU()
			mc.PC.Load(origin)
			mc.SP.Load(0xd000)
			mc.HL.Load(0xc800)
			mem.putInstructions(origin, op, 0x00, 0x00)
			setCondition(mc, op, holds)
			cycles := step(t, mc)
			test.ExpectSuccess(t, mc.LastResult.IsValid(), mc.LastResult)
			return cycles
		}

		if taken, ok := documentedTaken[op]; ok {
			test.ExpectEquality(t, run(false), documentedCycles[op]*4, instructions.Lookup(op, false))
			test.ExpectEquality(t, run(true), taken*4, instructions.Lookup(op, false))
		} else {
			test.ExpectEquality(t, run(false), documentedCycles[op]*4, instructions.Lookup(op, false))
		}
	}

	for i := 0; i < 256; i++ {
		op := uint8(i)
		mc, mem := newCPU()
		mc.HL.Load(0xc800)
		mem.putInstructions(0x0100, 0xcb, op)
		test.ExpectEquality(t, step(t, mc), documentedPrefixedCycles(op)*4, instructions.Lookup(op, true))
		test.ExpectEquality(t, mc.PC.Value(), uint16(0x0102))
		test.ExpectSuccess(t, mc.LastResult.IsValid(), mc.LastResult)
	}
}
