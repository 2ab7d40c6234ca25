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

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/cpu"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cpubus"
	"github.com/gopherdmg/gopherdmg/test"
)

// mockMem is a flat 64K address space with no mapped registers.
type mockMem struct {
	data []uint8
}

func newMockMem() *mockMem {
	return &mockMem{data: make([]uint8, 0x10000)}
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.data[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.data[address] = data
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.data[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func newCPU() (*cpu.CPU, *mockMem) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	return mc, mem
}

func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	cycles, err := mc.ExecuteInstruction()
	test.DemandSuccess(t, err)
	return cycles
}

func TestPostBoot(t *testing.T) {
	mc, _ := newCPU()
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))
	test.ExpectEquality(t, mc.F.Value(), uint8(0x80))
	test.ExpectEquality(t, mc.BC.Value(), uint16(0x0013))
	test.ExpectEquality(t, mc.DE.Value(), uint16(0x00d8))
	test.ExpectEquality(t, mc.HL.Value(), uint16(0x014d))
	test.ExpectEquality(t, mc.SP.Value(), uint16(0xfffe))
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x0100))
	test.ExpectEquality(t, mc.AF(), uint16(0x0180))
	test.ExpectEquality(t, mc.IME, cpu.IMEDisabled)
}

func TestXORHalt(t *testing.T) {
	mc, mem := newCPU()
	mem.putInstructions(0x0100, 0xaf, 0x76, 0x04)

	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.F.Value(), uint8(0x80))
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x0101))

	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectSuccess(t, mc.Halted)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x0102))

	// halted. no register changes for as long as no interrupt is requested
	for i := 0; i < 10; i++ {
		test.ExpectEquality(t, step(t, mc), 4)
		test.ExpectEquality(t, mc.PC.Value(), uint16(0x0102))
		test.ExpectEquality(t, mc.B.Value(), uint8(0x00))
	}

	// requesting an interrupt ends the halt even though the IME is disabled
	// and the interrupt is not enabled
	mem.Write(cpubus.IF, 0x04)
	test.ExpectEquality(t, mc.HandleInterrupt(), 0)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectFailure(t, mc.Halted)
	test.ExpectEquality(t, mc.B.Value(), uint8(0x01))
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x0103))
}

func TestArithmeticFlags(t *testing.T) {
	type flagTest struct {
		op     uint8
		a      uint8
		v      uint8
		carry  bool
		result uint8
		flags  uint8
	}

	// opcodes are the immediate forms of the ALU operations
	const (
		addN = 0xc6
		adcN = 0xce
		subN = 0xd6
		sbcN = 0xde
		andN = 0xe6
		xorN = 0xee
		orN  = 0xf6
		cpN  = 0xfe
	)

	tests := []flagTest{
		{addN, 0x0f, 0x01, false, 0x10, 0x20},
		{addN, 0xff, 0x01, false, 0x00, 0xb0},
		{addN, 0x80, 0x80, false, 0x00, 0x90},
		{addN, 0x12, 0x34, false, 0x46, 0x00},
		{adcN, 0x0e, 0x01, true, 0x10, 0x20},
		{adcN, 0xfe, 0x01, true, 0x00, 0xb0},
		{subN, 0x10, 0x01, false, 0x0f, 0x60},
		{subN, 0x00, 0x01, false, 0xff, 0x70},
		{subN, 0x42, 0x42, false, 0x00, 0xc0},
		{sbcN, 0x10, 0x0f, true, 0x00, 0xe0},
		{sbcN, 0x00, 0x00, true, 0xff, 0x70},
		{andN, 0xf0, 0x0f, false, 0x00, 0xa0},
		{xorN, 0xff, 0x0f, true, 0xf0, 0x00},
		{orN, 0x00, 0x00, true, 0x00, 0x80},
		{cpN, 0x3c, 0x2f, false, 0x3c, 0x60},
		{cpN, 0x3c, 0x3c, false, 0x3c, 0xc0},
		{cpN, 0x3c, 0x40, false, 0x3c, 0x50},
	}

	for _, tc := range tests {
		mc, mem := newCPU()
		mem.putInstructions(0x0100, tc.op, tc.v)
		mc.A.Load(tc.a)
		mc.F.Set(false, false, false, tc.carry)
		test.ExpectEquality(t, step(t, mc), 8, mc.LastResult)
		test.ExpectEquality(t, mc.A.Value(), tc.result, mc.LastResult)
		test.ExpectEquality(t, mc.F.Value(), tc.flags, mc.LastResult)
	}
}

func TestIncDecFlags(t *testing.T) {
	mc, mem := newCPU()

	// INC B; DEC B; DEC B; INC (HL)
	mem.putInstructions(0x0100, 0x04, 0x05, 0x05, 0x34)
	mc.B.Load(0x0f)
	mc.F.Set(false, false, false, true)

	step(t, mc)
	test.ExpectEquality(t, mc.B.Value(), uint8(0x10))
	test.ExpectEquality(t, mc.F.String(), "znHC")

	step(t, mc)
	test.ExpectEquality(t, mc.B.Value(), uint8(0x0f))
	test.ExpectEquality(t, mc.F.String(), "zNHC")

	step(t, mc)
	test.ExpectEquality(t, mc.B.Value(), uint8(0x0e))
	test.ExpectEquality(t, mc.F.String(), "zNhC")

	mc.HL.Load(0xc000)
	mem.Write(0xc000, 0xff)
	test.ExpectEquality(t, step(t, mc), 12)
	test.ExpectEquality(t, mem.Read(0xc000), uint8(0x00))
	test.ExpectEquality(t, mc.F.String(), "ZnHC")
}

func TestDAA(t *testing.T) {
	mc, mem := newCPU()

	// LD A,15h; ADD A,27h; DAA
	mem.putInstructions(0x0100, 0x3e, 0x15, 0xc6, 0x27, 0x27)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x42))
	test.ExpectFailure(t, mc.F.Carry)

	// LD A,99h; ADD A,01h; DAA
	mem.putInstructions(0x0105, 0x3e, 0x99, 0xc6, 0x01, 0x27)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectSuccess(t, mc.F.Zero)
	test.ExpectSuccess(t, mc.F.Carry)

	// LD A,42h; SUB 13h; DAA
	mem.putInstructions(0x010a, 0x3e, 0x42, 0xd6, 0x13, 0x27)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x29))
	test.ExpectSuccess(t, mc.F.Subtract)
	test.ExpectFailure(t, mc.F.Carry)
}

func TestStackPointerArithmetic(t *testing.T) {
	mc, mem := newCPU()

	// ADD SP,-1; LD HL,SP+1
	mem.putInstructions(0x0100, 0xe8, 0xff, 0xf8, 0x01)
	mc.SP.Load(0x0001)
	test.ExpectEquality(t, step(t, mc), 16)
	test.ExpectEquality(t, mc.SP.Value(), uint16(0x0000))
	test.ExpectEquality(t, mc.F.String(), "znHC")

	test.ExpectEquality(t, step(t, mc), 12)
	test.ExpectEquality(t, mc.HL.Value(), uint16(0x0001))
	test.ExpectEquality(t, mc.SP.Value(), uint16(0x0000))
	test.ExpectEquality(t, mc.F.String(), "znhc")
}

func TestStack(t *testing.T) {
	mc, mem := newCPU()

	// LD BC,1234h; PUSH BC; POP AF; PUSH AF; POP DE
	mem.putInstructions(0x0100, 0x01, 0x34, 0x12, 0xc5, 0xf1, 0xf5, 0xd1)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 16)
	test.ExpectEquality(t, mc.SP.Value(), uint16(0xfffc))
	test.ExpectEquality(t, mem.Read(0xfffd), uint8(0x12))
	test.ExpectEquality(t, mem.Read(0xfffc), uint8(0x34))

	test.ExpectEquality(t, step(t, mc), 12)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x12))

	// the lower nibble of the flags register is always zero
	test.ExpectEquality(t, mc.F.Value(), uint8(0x30))

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.DE.Value(), uint16(0x1230))
	test.ExpectEquality(t, mc.SP.Value(), uint16(0xfffe))
}

func TestCallReturn(t *testing.T) {
	mc, mem := newCPU()

	// CALL 0200h; ... 0200: RST 28h ... 0028: RET ... RET
	mem.putInstructions(0x0100, 0xcd, 0x00, 0x02)
	mem.putInstructions(0x0200, 0xef, 0xc9)
	mem.putInstructions(0x0028, 0xc9)

	test.ExpectEquality(t, step(t, mc), 24)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x0200))
	test.ExpectEquality(t, step(t, mc), 16)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x0028))
	test.ExpectEquality(t, step(t, mc), 16)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x0201))
	test.ExpectEquality(t, step(t, mc), 16)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x0103))
	test.ExpectEquality(t, mc.SP.Value(), uint16(0xfffe))
}

func TestRelativeJump(t *testing.T) {
	mc, mem := newCPU()

	// JR -2 loops forever on itself
	mem.putInstructions(0x0100, 0x18, 0xfe)
	test.ExpectEquality(t, step(t, mc), 12)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x0100))
	test.ExpectEquality(t, mc.LastResult.String(), "0100 JR $0100 [12]")

	// JR NZ,+5 with zero flag set is not taken
	mem.putInstructions(0x0100, 0x20, 0x05)
	mc.F.Zero = true
	test.ExpectEquality(t, step(t, mc), 8)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x0102))
}

func TestPrefixed(t *testing.T) {
	mc, mem := newCPU()

	// BIT 7,H; SWAP A; SET 0,(HL); RES 7,(HL); SRL B; RL C
	mem.putInstructions(0x0100, 0xcb, 0x7c, 0xcb, 0x37, 0xcb, 0xc6, 0xcb, 0xbe, 0xcb, 0x38, 0xcb, 0x11)
	mc.H.Load(0x7f)
	mc.A.Load(0xf1)
	mc.B.Load(0x01)
	mc.C.Load(0x80)
	mc.F.Set(false, false, false, true)

	test.ExpectEquality(t, step(t, mc), 8)
	test.ExpectEquality(t, mc.F.String(), "ZnHC")

	test.ExpectEquality(t, step(t, mc), 8)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x1f))
	test.ExpectEquality(t, mc.F.String(), "znhc")

	mc.HL.Load(0xc000)
	mem.Write(0xc000, 0x80)
	test.ExpectEquality(t, step(t, mc), 16)
	test.ExpectEquality(t, mem.Read(0xc000), uint8(0x81))
	test.ExpectEquality(t, step(t, mc), 16)
	test.ExpectEquality(t, mem.Read(0xc000), uint8(0x01))

	test.ExpectEquality(t, step(t, mc), 8)
	test.ExpectEquality(t, mc.B.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.F.String(), "ZnhC")

	test.ExpectEquality(t, step(t, mc), 8)
	test.ExpectEquality(t, mc.C.Value(), uint8(0x01))
	test.ExpectEquality(t, mc.F.String(), "znhC")
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x010c))
}

func TestLoadIncrement(t *testing.T) {
	mc, mem := newCPU()

	// LD HL,C000h; LD (HL+),A; LD (HL-),A; LD A,(HL-)
	mem.putInstructions(0x0100, 0x21, 0x00, 0xc0, 0x22, 0x32, 0x3a)
	mc.A.Load(0x55)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.HL.Value(), uint16(0xc001))
	step(t, mc)
	test.ExpectEquality(t, mc.HL.Value(), uint16(0xc000))
	test.ExpectEquality(t, mem.Read(0xc000), uint8(0x55))
	test.ExpectEquality(t, mem.Read(0xc001), uint8(0x55))
	mc.A.Load(0x00)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x55))
	test.ExpectEquality(t, mc.HL.Value(), uint16(0xbfff))
}

func TestInvalidOpcode(t *testing.T) {
	mc, mem := newCPU()
	mem.putInstructions(0x0100, 0xd3)

	_, err := mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, cpu.InvalidOpcode))
	test.ExpectSuccess(t, mc.Killed)

	_, err = mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, cpu.KilledCPU))

	mc.Reset()
	test.ExpectFailure(t, mc.Killed)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x0100))
}

func TestStop(t *testing.T) {
	mc, mem := newCPU()
	mem.putInstructions(0x0100, 0x10, 0x00)
	mem.Write(cpubus.DIV, 0xab)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x0102))
	test.ExpectEquality(t, mem.Read(cpubus.DIV), uint8(0x00))
	test.ExpectSuccess(t, mc.LastResult.IsValid())
}
