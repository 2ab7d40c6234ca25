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

// ClockRate is the number of machine cycles per second.
const ClockRate = 1048576

// number of interleaved values handed to the Mixer at a time.
const batchSize = 1024

// Mixer implementations receive the output of the APU. The slice is only
// valid for the duration of the call.
type Mixer interface {
	SetAudio(sig []float32) error
}

// sampler averages the output of every machine cycle and produces samples at
// the host sample rate.
type sampler struct {
	rate int
	acc  int

	sumLeft  float32
	sumRight float32
	sumCt    int

	batch []float32
}

func newSampler(rate int) *sampler {
	return &sampler{
		rate:  rate,
		batch: make([]float32, 0, batchSize),
	}
}

// add the output of one machine cycle. returns true if the batch is full.
func (smp *sampler) add(left float32, right float32) bool {
	smp.sumLeft += left
	smp.sumRight += right
	smp.sumCt++

	smp.acc += smp.rate
	if smp.acc < ClockRate {
		return false
	}
	smp.acc -= ClockRate

	n := float32(smp.sumCt)
	smp.batch = append(smp.batch, smp.sumLeft/n, smp.sumRight/n)
	smp.sumLeft = 0
	smp.sumRight = 0
	smp.sumCt = 0

	return len(smp.batch) >= batchSize
}

// mix the digital output of the four channels into a stereo pair. nr50 is
// the master volume and nr51 is the panning register.
func (apu *APU) mix() (float32, float32) {
	var out [4]float32

	// a channel with its DAC off contributes nothing
	if apu.ch1.dac {
		out[0] = dac(apu.ch1.output())
	}
	if apu.ch2.dac {
		out[1] = dac(apu.ch2.output())
	}
	if apu.ch3.dac {
		out[2] = dac(apu.ch3.output())
	}
	if apu.ch4.dac {
		out[3] = dac(apu.ch4.output())
	}

	nr51 := apu.register(NR51)
	var left, right float32
	for i, v := range out {
		if nr51&(0x10<<i) != 0 {
			left += v
		}
		if nr51&(0x01<<i) != 0 {
			right += v
		}
	}

	nr50 := apu.register(NR50)
	left = left / 4 * float32((nr50>>4)&0x07+1) / 8
	right = right / 4 * float32(nr50&0x07+1) / 8

	return left, right
}
