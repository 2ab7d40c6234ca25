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

package apu

import (
	"strings"

	"github.com/gopherdmg/gopherdmg/logger"
)

// APU is the audio processing unit.
type APU struct {
	// NR10 to NR51 as last written. NR52 is built on read
	regs    [numRegisters]uint8
	powered bool

	ch1 *square
	ch2 *square
	ch3 *wave
	ch4 *noise

	seq     sequencer
	sampler *sampler
	mixer   Mixer
}

// NewAPU is the preferred method of initialisation for the APU type. The
// sample rate is the rate at which samples are sent to the Mixer.
func NewAPU(sampleRate int) *APU {
	apu := &APU{
		ch1:     newSquare("ch1", true),
		ch2:     newSquare("ch2", false),
		ch3:     newWave(),
		ch4:     newNoise(),
		sampler: newSampler(sampleRate),
	}
	apu.Reset()
	return apu
}

// SetMixer sets the destination for generated samples. A nil value discards
// them.
func (apu *APU) SetMixer(m Mixer) {
	apu.mixer = m
}

func (apu *APU) String() string {
	s := strings.Builder{}
	s.WriteString(apu.ch1.String())
	s.WriteString("\n")
	s.WriteString(apu.ch2.String())
	s.WriteString("\n")
	s.WriteString(apu.ch3.String())
	s.WriteString("\n")
	s.WriteString(apu.ch4.String())
	return s.String()
}

// Reset the APU to the state left by the boot ROM. Channel 1 is left enabled
// with a silent envelope.
func (apu *APU) Reset() {
	apu.ch1.reset()
	apu.ch2.reset()
	apu.ch3.reset()
	apu.ch4.reset()
	apu.seq = sequencer{}
	apu.powered = true

	for i, v := range postBoot {
		apu.regs[i] = v
	}
	apu.load()

	apu.ch1.enabled = true
	apu.ch1.envelope.volume = 0
}

// load channel state from the register values without triggering.
func (apu *APU) load() {
	apu.ch1.writeSweep(apu.register(NR10))
	apu.ch1.writeLength(apu.register(NR11))
	apu.ch1.writeEnvelope(apu.register(NR12))
	apu.ch1.writeControl(apu.register(NR14)&^trigger, apu.period(NR13, NR14))
	apu.ch2.writeLength(apu.register(NR21))
	apu.ch2.writeEnvelope(apu.register(NR22))
	apu.ch2.writeControl(apu.register(NR24)&^trigger, apu.period(NR23, NR24))
	apu.ch3.writeDAC(apu.register(NR30))
	apu.ch3.writeLength(apu.register(NR31))
	apu.ch3.writeLevel(apu.register(NR32))
	apu.ch3.writeControl(apu.register(NR34)&^trigger, apu.period(NR33, NR34))
	apu.ch4.writeLength(apu.register(NR41))
	apu.ch4.writeEnvelope(apu.register(NR42))
	apu.ch4.writePolynomial(apu.register(NR43))
	apu.ch4.writeControl(apu.register(NR44) &^ trigger)
}

func (apu *APU) register(address uint16) uint8 {
	return apu.regs[address-registerOrigin]
}

func (apu *APU) period(lo uint16, hi uint16) uint16 {
	return period(apu.register(lo), apu.register(hi))
}

// Powered returns the state of the NR52 power bit.
func (apu *APU) Powered() bool {
	return apu.powered
}

// Read implements the cpubus.Memory interface.
func (apu *APU) Read(address uint16) uint8 {
	if address >= WaveOrigin && address <= WaveMemtop {
		return apu.ch3.ram[address-WaveOrigin]
	}
	if address < registerOrigin || address >= WaveOrigin {
		return 0xff
	}

	if address == NR52 {
		v := readMask[address-registerOrigin]
		if apu.powered {
			v |= powerBit
		}
		if apu.ch1.enabled {
			v |= 0x01
		}
		if apu.ch2.enabled {
			v |= 0x02
		}
		if apu.ch3.enabled {
			v |= 0x04
		}
		if apu.ch4.enabled {
			v |= 0x08
		}
		return v
	}

	return apu.register(address) | readMask[address-registerOrigin]
}

// Write implements the cpubus.Memory interface.
//
// While the APU is powered off only NR52 and wave RAM can be written.
func (apu *APU) Write(address uint16, data uint8) {
	if address >= WaveOrigin && address <= WaveMemtop {
		apu.ch3.ram[address-WaveOrigin] = data
		return
	}
	if address < registerOrigin || address >= WaveOrigin {
		return
	}

	if address == NR52 {
		apu.writePower(data&powerBit == powerBit)
		return
	}

	if !apu.powered {
		return
	}

	apu.regs[address-registerOrigin] = data

	switch address {
	case NR10:
		apu.ch1.writeSweep(data)
	case NR11:
		apu.ch1.writeLength(data)
	case NR12:
		apu.ch1.writeEnvelope(data)
	case NR13:
		apu.ch1.period = apu.period(NR13, NR14)
	case NR14:
		apu.ch1.writeControl(data, apu.period(NR13, NR14))
	case NR21:
		apu.ch2.writeLength(data)
	case NR22:
		apu.ch2.writeEnvelope(data)
	case NR23:
		apu.ch2.period = apu.period(NR23, NR24)
	case NR24:
		apu.ch2.writeControl(data, apu.period(NR23, NR24))
	case NR30:
		apu.ch3.writeDAC(data)
	case NR31:
		apu.ch3.writeLength(data)
	case NR32:
		apu.ch3.writeLevel(data)
	case NR33:
		apu.ch3.period = apu.period(NR33, NR34)
	case NR34:
		apu.ch3.writeControl(data, apu.period(NR33, NR34))
	case NR41:
		apu.ch4.writeLength(data)
	case NR42:
		apu.ch4.writeEnvelope(data)
	case NR43:
		apu.ch4.writePolynomial(data)
	case NR44:
		apu.ch4.writeControl(data)
	}
}

func (apu *APU) writePower(on bool) {
	if on == apu.powered {
		return
	}
	apu.powered = on

	if on {
		apu.seq.counter = 0
		apu.ch1.dutyStep = 0
		apu.ch2.dutyStep = 0
		apu.ch3.sample = 0
		return
	}

	// powering off clears every register except wave RAM
	for i := range apu.regs {
		apu.regs[i] = 0
	}
	apu.ch1.reset()
	apu.ch2.reset()
	apu.ch3.reset()
	apu.ch4.reset()
}

// Step advances the APU by one machine cycle. The timer counter is the full
// 16 bit internal counter of the timer, which clocks the frame sequencer.
func (apu *APU) Step(timerCounter uint16) {
	if apu.powered {
		apu.ch1.tick()
		apu.ch2.tick()
		apu.ch3.tick()
		apu.ch4.tick()

		ev := apu.seq.step(timerCounter)
		if ev&clockLength == clockLength {
			apu.ch1.clockLength()
			apu.ch2.clockLength()
			apu.ch3.clockLength()
			apu.ch4.clockLength()
		}
		if ev&clockSweep == clockSweep {
			if p, ok := apu.ch1.clockSweep(); ok {
				apu.regs[NR13-registerOrigin] = uint8(p)
				apu.regs[NR14-registerOrigin] = apu.register(NR14)&0xf8 | uint8(p>>8)
			}
		}
		if ev&clockEnvelope == clockEnvelope {
			apu.ch1.clockEnvelope()
			apu.ch2.clockEnvelope()
			apu.ch4.clockEnvelope()
		}
	}

	var left, right float32
	if apu.powered {
		left, right = apu.mix()
	}
	if apu.sampler.add(left, right) {
		apu.Flush()
	}
}

// Flush sends any pending samples to the Mixer.
func (apu *APU) Flush() {
	if len(apu.sampler.batch) == 0 {
		return
	}
	if apu.mixer != nil {
		if err := apu.mixer.SetAudio(apu.sampler.batch); err != nil {
			logger.Log(logger.Allow, "apu", err)
		}
	}
	apu.sampler.batch = apu.sampler.batch[:0]
}
