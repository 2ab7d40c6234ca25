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

import "fmt"

// noise divisors in machine cycles, selected by the lower bits of NR43.
var noiseDivisors = [8]uint32{2, 4, 8, 12, 16, 20, 24, 28}

// noise is the LFSR noise channel.
type noise struct {
	enabled bool
	dac     bool

	shift   uint8
	narrow  bool
	divisor uint8
	timer   uint32
	lfsr    uint16

	length   length
	envelope envelope
}

func newNoise() *noise {
	return &noise{
		length: length{max: 64},
		lfsr:   0x7fff,
	}
}

func (ns *noise) String() string {
	return fmt.Sprintf("ch4: on=%v shift=%d narrow=%v div=%d vol=%d len=%d", ns.enabled,
		ns.shift, ns.narrow, ns.divisor, ns.envelope.volume, ns.length.counter)
}

func (ns *noise) reset() {
	*ns = *newNoise()
}

func (ns *noise) writeLength(v uint8) {
	ns.length.load(v & 0x3f)
}

func (ns *noise) writeEnvelope(v uint8) {
	ns.envelope.load(v)
	ns.dac = dacEnabled(v)
	if !ns.dac {
		ns.enabled = false
	}
}

// writePolynomial reacts to a write to NR43.
func (ns *noise) writePolynomial(v uint8) {
	ns.shift = v >> 4
	ns.narrow = v&0x08 == 0x08
	ns.divisor = v & 0x07
}

func (ns *noise) writeControl(v uint8) {
	ns.length.enabled = v&lengthEnable == lengthEnable
	if v&trigger == trigger {
		ns.enabled = ns.dac
		ns.length.reload()
		ns.envelope.trigger()
		ns.lfsr = 0x7fff
		ns.timer = ns.reload()
	}
}

func (ns *noise) reload() uint32 {
	return noiseDivisors[ns.divisor] << ns.shift
}

// tick advances the noise timer by one machine cycle.
func (ns *noise) tick() {
	if ns.timer > 0 {
		ns.timer--
	}
	if ns.timer > 0 {
		return
	}
	ns.timer = ns.reload()

	// shift values of 14 and 15 leave the LFSR unclocked
	if ns.shift >= 14 {
		return
	}

	x := (ns.lfsr ^ ns.lfsr>>1) & 0x01
	ns.lfsr = ns.lfsr>>1 | x<<14
	if ns.narrow {
		ns.lfsr = ns.lfsr&^0x40 | x<<6
	}
}

func (ns *noise) clockLength() {
	if ns.length.clock() {
		ns.enabled = false
	}
}

func (ns *noise) clockEnvelope() {
	ns.envelope.clock()
}

func (ns *noise) output() uint8 {
	if !ns.enabled || ns.lfsr&0x01 == 0x01 {
		return 0
	}
	return ns.envelope.volume
}
