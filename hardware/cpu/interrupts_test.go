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
	"github.com/gopherdmg/gopherdmg/hardware/memory/cpubus"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestInterruptService(t *testing.T) {
	mc, mem := newCPU()
	mem.putInstructions(0x0100, 0xfb, 0x00, 0x00)
	mem.Write(cpubus.IE, 0x01)
	mem.Write(cpubus.IF, 0x01)

	// nothing is serviced while the IME is disabled
	test.ExpectEquality(t, mc.HandleInterrupt(), 0)

	// EI
	step(t, mc)
	test.ExpectEquality(t, mc.IME, cpu.IMEPending)
	test.ExpectEquality(t, mc.HandleInterrupt(), 0)

	// the instruction following EI is executed before any interrupt
	step(t, mc)
	test.ExpectEquality(t, mc.IME, cpu.IMEEnabled)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x0102))

	test.ExpectEquality(t, mc.HandleInterrupt(), 20)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x0040))
	test.ExpectEquality(t, mc.IME, cpu.IMEDisabled)
	test.ExpectEquality(t, mem.Read(cpubus.IF), uint8(0x00))
	test.ExpectEquality(t, mc.SP.Value(), uint16(0xfffc))
	test.ExpectEquality(t, mem.Read(0xfffd), uint8(0x01))
	test.ExpectEquality(t, mem.Read(0xfffc), uint8(0x02))

	// RETI returns and enables interrupts immediately
	mem.putInstructions(0x0040, 0xd9)
	test.ExpectEquality(t, step(t, mc), 16)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x0102))
	test.ExpectEquality(t, mc.IME, cpu.IMEEnabled)
}

func TestInterruptPriority(t *testing.T) {
	mc, mem := newCPU()
	mc.IME = cpu.IMEEnabled
	mem.Write(cpubus.IE, 0x1f)
	mem.Write(cpubus.IF, 0x14)

	test.ExpectEquality(t, mc.HandleInterrupt(), 20)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x0050))
	test.ExpectEquality(t, mem.Read(cpubus.IF), uint8(0x10))

	mc.IME = cpu.IMEEnabled
	test.ExpectEquality(t, mc.HandleInterrupt(), 20)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x0060))
	test.ExpectEquality(t, mem.Read(cpubus.IF), uint8(0x00))

	// requested but not enabled
	mc.IME = cpu.IMEEnabled
	mem.Write(cpubus.IE, 0x01)
	mem.Write(cpubus.IF, 0x02)
	test.ExpectEquality(t, mc.HandleInterrupt(), 0)
}

func TestEIDI(t *testing.T) {
	mc, mem := newCPU()
	mem.putInstructions(0x0100, 0xfb, 0xf3, 0x00)
	mem.Write(cpubus.IE, 0x01)
	mem.Write(cpubus.IF, 0x01)

	step(t, mc)
	test.ExpectEquality(t, mc.HandleInterrupt(), 0)
	step(t, mc)
	test.ExpectEquality(t, mc.IME, cpu.IMEDisabled)
	test.ExpectEquality(t, mc.HandleInterrupt(), 0)
	step(t, mc)
	test.ExpectEquality(t, mc.HandleInterrupt(), 0)
}

func TestHaltWithInterrupt(t *testing.T) {
	mc, mem := newCPU()
	mem.putInstructions(0x0100, 0x76, 0x00)
	mc.IME = cpu.IMEEnabled
	mem.Write(cpubus.IE, 0x04)

	step(t, mc)
	test.ExpectSuccess(t, mc.Halted)
	test.ExpectEquality(t, mc.HandleInterrupt(), 0)
	test.ExpectEquality(t, step(t, mc), 4)

	mem.Write(cpubus.IF, 0x04)
	test.ExpectEquality(t, mc.HandleInterrupt(), 20)
	test.ExpectFailure(t, mc.Halted)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x0050))

	// the return address is the instruction after HALT
	test.ExpectEquality(t, mem.Read(0xfffc), uint8(0x01))
}
