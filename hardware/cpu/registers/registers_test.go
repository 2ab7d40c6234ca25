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

package registers_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestRegisterAdd(t *testing.T) {
	r := registers.NewRegister(0x0f, "A")
	half, carry := r.Add(0x01, false)
	test.ExpectEquality(t, r.Value(), uint8(0x10))
	test.ExpectSuccess(t, half)
	test.ExpectFailure(t, carry)

	r.Load(0xff)
	half, carry = r.Add(0x00, true)
	test.ExpectSuccess(t, r.IsZero())
	test.ExpectSuccess(t, half)
	test.ExpectSuccess(t, carry)

	r.Load(0x3a)
	half, carry = r.Add(0xc6, false)
	test.ExpectEquality(t, r.Value(), uint8(0x00))
	test.ExpectSuccess(t, half)
	test.ExpectSuccess(t, carry)
}

func TestRegisterSubtract(t *testing.T) {
	r := registers.NewRegister(0x3e, "A")
	half, borrow := r.Subtract(0x0f, false)
	test.ExpectEquality(t, r.Value(), uint8(0x2f))
	test.ExpectSuccess(t, half)
	test.ExpectFailure(t, borrow)

	r.Load(0x3e)
	half, borrow = r.Subtract(0x40, false)
	test.ExpectEquality(t, r.Value(), uint8(0xfe))
	test.ExpectFailure(t, half)
	test.ExpectSuccess(t, borrow)

	r.Load(0x10)
	half, borrow = r.Subtract(0x0f, true)
	test.ExpectEquality(t, r.Value(), uint8(0x00))
	test.ExpectSuccess(t, half)
	test.ExpectFailure(t, borrow)
}

func TestRegisterIncDec(t *testing.T) {
	r := registers.NewRegister(0x0f, "B")
	test.ExpectSuccess(t, r.Increment())
	test.ExpectEquality(t, r.Value(), uint8(0x10))
	test.ExpectSuccess(t, r.Decrement())
	test.ExpectEquality(t, r.Value(), uint8(0x0f))

	r.Load(0xff)
	r.Increment()
	test.ExpectSuccess(t, r.IsZero())
	test.ExpectSuccess(t, r.Decrement())
	test.ExpectEquality(t, r.Value(), uint8(0xff))
}

func TestRegisterRotate(t *testing.T) {
	r := registers.NewRegister(0x85, "C")
	test.ExpectSuccess(t, r.RLC())
	test.ExpectEquality(t, r.Value(), uint8(0x0b))
	test.ExpectSuccess(t, r.RRC())
	test.ExpectEquality(t, r.Value(), uint8(0x85))

	test.ExpectSuccess(t, r.RL(false))
	test.ExpectEquality(t, r.Value(), uint8(0x0a))
	test.ExpectFailure(t, r.RR(true))
	test.ExpectEquality(t, r.Value(), uint8(0x85))

	test.ExpectSuccess(t, r.SRA())
	test.ExpectEquality(t, r.Value(), uint8(0xc2))
	test.ExpectFailure(t, r.SRL())
	test.ExpectEquality(t, r.Value(), uint8(0x61))
	test.ExpectFailure(t, r.SLA())
	test.ExpectEquality(t, r.Value(), uint8(0xc2))

	r.Swap()
	test.ExpectEquality(t, r.Value(), uint8(0x2c))
}

func TestRegisterBits(t *testing.T) {
	r := registers.NewRegister(0x00, "D")
	r.SetBit(7)
	test.ExpectSuccess(t, r.Bit(7))
	test.ExpectFailure(t, r.Bit(6))
	r.SetBit(0)
	test.ExpectEquality(t, r.Value(), uint8(0x81))
	r.ResetBit(7)
	test.ExpectEquality(t, r.Value(), uint8(0x01))
	test.ExpectEquality(t, r.String(), "D=01")
}

func TestFlags(t *testing.T) {
	var fl registers.Flags
	fl.Load(0xff)
	test.ExpectEquality(t, fl.Value(), uint8(0xf0))
	test.ExpectEquality(t, fl.String(), "ZNHC")
	fl.Set(false, true, false, true)
	test.ExpectEquality(t, fl.Value(), uint8(0x50))
	test.ExpectEquality(t, fl.String(), "zNhC")
}

func TestPair(t *testing.T) {
	h := registers.NewRegister(0x01, "H")
	l := registers.NewRegister(0xff, "L")
	hl := registers.NewPair(&h, &l)
	test.ExpectEquality(t, hl.Value(), uint16(0x01ff))
	test.ExpectEquality(t, hl.Label(), "HL")

	hl.Increment()
	test.ExpectEquality(t, h.Value(), uint8(0x02))
	test.ExpectEquality(t, l.Value(), uint8(0x00))

	hl.Load(0x0000)
	hl.Decrement()
	test.ExpectEquality(t, hl.Value(), uint16(0xffff))

	hl.Load(0x0fff)
	half, carry := hl.Add(0x0001)
	test.ExpectSuccess(t, half)
	test.ExpectFailure(t, carry)

	hl.Load(0xffff)
	half, carry = hl.Add(0x0001)
	test.ExpectSuccess(t, half)
	test.ExpectSuccess(t, carry)
	test.ExpectEquality(t, hl.Value(), uint16(0x0000))
}

func TestCounterAddSigned(t *testing.T) {
	sp := registers.NewCounter(0xfff8, "SP")
	half, carry := sp.AddSigned(0x08)
	test.ExpectEquality(t, sp.Value(), uint16(0x0000))
	test.ExpectSuccess(t, half)
	test.ExpectSuccess(t, carry)

	sp.Load(0x0000)
	half, carry = sp.AddSigned(0xff)
	test.ExpectEquality(t, sp.Value(), uint16(0xffff))
	test.ExpectFailure(t, half)
	test.ExpectFailure(t, carry)

	sp.Load(0x00ff)
	half, carry = sp.AddSigned(0x01)
	test.ExpectEquality(t, sp.Value(), uint16(0x0100))
	test.ExpectSuccess(t, half)
	test.ExpectSuccess(t, carry)
}
