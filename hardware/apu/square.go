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

// duty cycle waveforms, one bit per duty step.
var dutyPatterns = [4]uint8{
	0b00000001, // 12.5%
	0b00000011, // 25%
	0b00001111, // 50%
	0b11111100, // 75%
}

// sweep is the frequency sweep unit of channel 1.
type sweep struct {
	pace   uint8
	negate bool
	shift  uint8

	enabled bool
	timer   uint8
	shadow  uint16

	// a subtraction was calculated since the last trigger
	negated bool
}

func (sw *sweep) load(nr10 uint8) {
	sw.pace = (nr10 >> 4) & 0x07
	sw.negate = nr10&0x08 == 0x08
	sw.shift = nr10 & 0x07
}

func (sw *sweep) reloadTimer() {
	sw.timer = sw.pace
	if sw.timer == 0 {
		sw.timer = 8
	}
}

// calculate the next period. returns false if the new period overflows 11
// bits.
func (sw *sweep) calculate() (uint16, bool) {
	delta := sw.shadow >> sw.shift
	if sw.negate {
		sw.negated = true
		return sw.shadow - delta, true
	}
	p := sw.shadow + delta
	return p, p <= 0x07ff
}

// square is a square wave channel. only channel 1 has a sweep unit.
type square struct {
	label string

	enabled bool
	dac     bool

	duty     uint8
	dutyStep uint8
	period   uint16
	timer    uint16

	length   length
	envelope envelope
	sweep    *sweep
}

func newSquare(label string, withSweep bool) *square {
	sq := &square{
		label:  label,
		length: length{max: 64},
	}
	if withSweep {
		sq.sweep = &sweep{}
	}
	return sq
}

func (sq *square) String() string {
	return fmt.Sprintf("%s: on=%v duty=%d period=%03x vol=%d len=%d", sq.label,
		sq.enabled, sq.duty, sq.period, sq.envelope.volume, sq.length.counter)
}

func (sq *square) reset() {
	label := sq.label
	withSweep := sq.sweep != nil
	*sq = *newSquare(label, withSweep)
}

// writeSweep reacts to a write to NR10.
func (sq *square) writeSweep(v uint8) {
	wasNegate := sq.sweep.negate
	sq.sweep.load(v)

	// clearing negate mode after a subtraction has been calculated disables
	// the channel
	if wasNegate && !sq.sweep.negate && sq.sweep.negated {
		sq.enabled = false
	}
}

// writeLength reacts to a write to NRx1.
func (sq *square) writeLength(v uint8) {
	sq.duty = v >> 6
	sq.length.load(v & 0x3f)
}

// writeEnvelope reacts to a write to NRx2.
func (sq *square) writeEnvelope(v uint8) {
	sq.envelope.load(v)
	sq.dac = dacEnabled(v)
	if !sq.dac {
		sq.enabled = false
	}
}

// writeControl reacts to a write to NRx4. the period is taken from the
// current NRx3 and NRx4 values.
func (sq *square) writeControl(v uint8, p uint16) {
	sq.period = p
	sq.length.enabled = v&lengthEnable == lengthEnable
	if v&trigger == trigger {
		sq.trigger()
	}
}

func (sq *square) trigger() {
	sq.enabled = sq.dac
	sq.length.reload()
	sq.timer = sq.period
	sq.envelope.trigger()

	if sq.sweep == nil {
		return
	}

	sw := sq.sweep
	sw.shadow = sq.period
	sw.negated = false
	sw.reloadTimer()
	sw.enabled = sw.pace != 0 || sw.shift != 0
	if sw.shift != 0 {
		if _, ok := sw.calculate(); !ok {
			sq.enabled = false
		}
	}
}

// tick advances the period counter by one machine cycle.
func (sq *square) tick() {
	sq.timer++
	if sq.timer >= 0x0800 {
		sq.timer = sq.period
		sq.dutyStep = (sq.dutyStep + 1) & 0x07
	}
}

func (sq *square) clockLength() {
	if sq.length.clock() {
		sq.enabled = false
	}
}

func (sq *square) clockEnvelope() {
	sq.envelope.clock()
}

// clockSweep returns the new period if the sweep changed it. the caller
// writes the new period back to NR13 and NR14.
func (sq *square) clockSweep() (uint16, bool) {
	sw := sq.sweep
	if sw.timer > 0 {
		sw.timer--
	}
	if sw.timer > 0 {
		return 0, false
	}
	sw.reloadTimer()

	if !sw.enabled || sw.pace == 0 {
		return 0, false
	}

	p, ok := sw.calculate()
	if !ok {
		sq.enabled = false
		return 0, false
	}
	if sw.shift == 0 {
		return 0, false
	}

	sw.shadow = p
	sq.period = p

	// the overflow check is repeated with the new period
	if _, ok := sw.calculate(); !ok {
		sq.enabled = false
	}

	return p, true
}

// digital output in the range 0 to 15.
func (sq *square) output() uint8 {
	if !sq.enabled {
		return 0
	}
	if dutyPatterns[sq.duty]>>sq.dutyStep&0x01 == 0x01 {
		return sq.envelope.volume
	}
	return 0
}
