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

package execution_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/execution"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestDisassembly(t *testing.T) {
	r := execution.Result{
		Address:         0x0150,
		Defn:            instructions.Lookup(0x3e, false),
		InstructionData: 0x42,
		ByteCount:       2,
		Cycles:          8,
		Final:           true,
	}
	test.ExpectEquality(t, r.String(), "0150 LD A,$42 [8]")
	test.ExpectSuccess(t, r.IsValid())

	r.Defn = instructions.Lookup(0x20, false)
	r.InstructionData = 0xfe
	r.Cycles = 12
	test.ExpectEquality(t, r.String(), "0150 JR NZ,$0150 [12]")
	test.ExpectSuccess(t, r.IsValid())

	r.Defn = instructions.Lookup(0xf8, false)
	r.InstructionData = 0xfb
	test.ExpectEquality(t, r.String(), "0150 LD HL,SP+-5 [12]")

	r.Defn = instructions.Lookup(0xea, false)
	r.InstructionData = 0xc000
	r.ByteCount = 3
	r.Cycles = 16
	r.Final = false
	test.ExpectEquality(t, r.String(), "0150 LD ($c000),A [v]")

	r.Reset()
	test.ExpectEquality(t, r.String(), "???")
}

func TestValidity(t *testing.T) {
	r := execution.Result{
		Defn:      instructions.Lookup(0xc4, false),
		ByteCount: 3,
		Cycles:    16,
		Final:     true,
	}
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 24
	test.ExpectSuccess(t, r.IsValid())
	r.ByteCount = 2
	test.ExpectFailure(t, r.IsValid())
	r.ByteCount = 3
	r.Final = false
	test.ExpectFailure(t, r.IsValid())
}
