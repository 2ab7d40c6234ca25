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
	"fmt"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/execution"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cpubus"
)

// Sentinel error patterns.
const (
	InvalidOpcode = "cpu: invalid opcode (%#02x) at (%#04x)"
	KilledCPU     = "cpu: killed at (%#04x) requires reset"
)

// CPU implements the SM83 as found in the DMG. The CPU must not be copied
// after creation because the register pairs refer to the individual
// registers.
type CPU struct {
	A registers.Register
	B registers.Register
	C registers.Register
	D registers.Register
	E registers.Register
	H registers.Register
	L registers.Register
	F registers.Flags

	BC registers.Pair
	DE registers.Pair
	HL registers.Pair

	SP registers.Counter
	PC registers.Counter

	IME IME

	// the CPU has executed a HALT instruction and is waiting for an interrupt
	// to be requested
	Halted bool

	// the cpu has encountered an invalid opcode. requires a Reset()
	Killed bool

	// the result of the most recent instruction
	LastResult execution.Result

	// some operations need a register that is not visible to the program
	acc8 registers.Register

	mem          cpubus.Memory
	instructions []*instructions.Definition
	prefixed     []*instructions.Definition
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// registers are set to the values they have after the boot ROM has run.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		A:            registers.NewRegister(0, "A"),
		B:            registers.NewRegister(0, "B"),
		C:            registers.NewRegister(0, "C"),
		D:            registers.NewRegister(0, "D"),
		E:            registers.NewRegister(0, "E"),
		H:            registers.NewRegister(0, "H"),
		L:            registers.NewRegister(0, "L"),
		SP:           registers.NewCounter(0, "SP"),
		PC:           registers.NewCounter(0, "PC"),
		acc8:         registers.NewRegister(0, "accumulator"),
		mem:          mem,
		instructions: instructions.GetDefinitions(),
		prefixed:     instructions.GetPrefixedDefinitions(),
	}
	mc.BC = registers.NewPair(&mc.B, &mc.C)
	mc.DE = registers.NewPair(&mc.D, &mc.E)
	mc.HL = registers.NewPair(&mc.H, &mc.L)
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s %s F=%s IME=%s",
		mc.PC, mc.SP, mc.A, mc.BC, mc.DE, mc.HL, mc.state(), mc.F, mc.IME)
}

func (mc *CPU) state() string {
	if mc.Halted {
		return "[halted]"
	}
	if mc.Killed {
		return "[killed]"
	}
	return "[running]"
}

// Reset reinitialises all registers to the values they have after the boot
// ROM has run.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Killed = false
	mc.Halted = false
	mc.IME = IMEDisabled

	mc.A.Load(0x01)
	mc.F.Load(0x80)
	mc.BC.Load(0x0013)
	mc.DE.Load(0x00d8)
	mc.HL.Load(0x014d)
	mc.SP.Load(0xfffe)
	mc.PC.Load(0x0100)
}

// AF returns the combined value of the accumulator and flags register.
func (mc *CPU) AF() uint16 {
	return uint16(mc.A.Value())<<8 | uint16(mc.F.Value())
}

// the number of T-cycles charged for servicing an interrupt
const interruptCycles = 20

// HandleInterrupt services the highest priority interrupt if the IME is
// enabled and the interrupt is both enabled and requested. Returns the number
// of T-cycles used, which will be zero if no interrupt was serviced.
func (mc *CPU) HandleInterrupt() int {
	if mc.Killed || mc.IME != IMEEnabled {
		return 0
	}

	flag := mc.mem.Read(cpubus.IF)
	pending := mc.mem.Read(cpubus.IE) & flag & interrupts.Mask
	if pending == 0 {
		return 0
	}

	for s := interrupts.VBlank; s < interrupts.NumSources; s++ {
		if pending&s.Bit() == 0 {
			continue
		}
		mc.mem.Write(cpubus.IF, flag&^s.Bit())
		mc.IME = IMEDisabled
		mc.Halted = false
		mc.push16(mc.PC.Value())
		mc.PC.Load(s.Vector())
		return interruptCycles
	}

	return 0
}

// the number of T-cycles returned by ExecuteInstruction() while halted
const haltedCycles = 4

// ExecuteInstruction decodes and executes the instruction at the program
// counter. Returns the number of T-cycles taken.
//
// An invalid opcode kills the CPU. The error is returned and this and every
// future call to ExecuteInstruction() will fail until the CPU is reset.
func (mc *CPU) ExecuteInstruction() (int, error) {
	if mc.Killed {
		return 0, curated.Errorf(KilledCPU, mc.LastResult.Address)
	}

	mc.IME = mc.IME.step()

	if mc.Halted {
		if mc.mem.Read(cpubus.IF)&interrupts.Mask == 0 {
			return haltedCycles, nil
		}
		mc.Halted = false
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Value()

	opcode := mc.fetch()
	defn := mc.instructions[opcode]
	if opcode == 0xcb {
		opcode = mc.fetch()
		defn = mc.prefixed[opcode]
	}
	mc.LastResult.Defn = defn

	if !defn.IsValid() {
		mc.Killed = true
		return 0, curated.Errorf(InvalidOpcode, opcode, mc.LastResult.Address)
	}

	var taken bool
	if defn.Prefixed {
		mc.executePrefixed(opcode)
	} else {
		taken = mc.execute(opcode)
	}

	mc.LastResult.Cycles = defn.Cycles
	if taken {
		mc.LastResult.Cycles = defn.CyclesTaken
	}
	mc.LastResult.Final = true

	return mc.LastResult.Cycles, nil
}

// fetch the byte at the program counter and advance the program counter.
func (mc *CPU) fetch() uint8 {
	v := mc.mem.Read(mc.PC.Value())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v
}

// fetch8 reads the 8 bit operand of an instruction.
func (mc *CPU) fetch8() uint8 {
	v := mc.fetch()
	mc.LastResult.InstructionData = uint16(v)
	return v
}

// fetch16 reads the 16 bit operand of an instruction.
func (mc *CPU) fetch16() uint16 {
	lo := mc.fetch()
	hi := mc.fetch()
	v := uint16(hi)<<8 | uint16(lo)
	mc.LastResult.InstructionData = v
	return v
}

func (mc *CPU) read16(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) write16(address uint16, v uint16) {
	mc.mem.Write(address, uint8(v))
	mc.mem.Write(address+1, uint8(v>>8))
}

func (mc *CPU) push16(v uint16) {
	mc.SP.Add(0xffff)
	mc.mem.Write(mc.SP.Value(), uint8(v>>8))
	mc.SP.Add(0xffff)
	mc.mem.Write(mc.SP.Value(), uint8(v))
}

func (mc *CPU) pop16() uint16 {
	lo := mc.mem.Read(mc.SP.Value())
	mc.SP.Add(1)
	hi := mc.mem.Read(mc.SP.Value())
	mc.SP.Add(1)
	return uint16(hi)<<8 | uint16(lo)
}
