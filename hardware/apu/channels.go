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

// length is the length counter common to all channels. when enabled, the
// channel is silenced once the counter reaches zero.
type length struct {
	max     int
	counter int
	enabled bool
}

// load the counter from the length bits of NRx1.
func (l *length) load(n uint8) {
	l.counter = l.max - int(n)
}

// reload is called on trigger. an exhausted counter is refilled.
func (l *length) reload() {
	if l.counter == 0 {
		l.counter = l.max
	}
}

// clock returns true if the channel should be disabled.
func (l *length) clock() bool {
	if !l.enabled || l.counter == 0 {
		return false
	}
	l.counter--
	return l.counter == 0
}

// envelope is the volume envelope used by the square and noise channels.
type envelope struct {
	initial  uint8
	increase bool
	pace     uint8

	volume uint8
	timer  uint8
}

// load the envelope from the value written to NRx2.
func (e *envelope) load(v uint8) {
	e.initial = v >> 4
	e.increase = v&0x08 == 0x08
	e.pace = v & 0x07
}

// the DAC is on if any of the upper five bits of NRx2 are set.
func dacEnabled(nrx2 uint8) bool {
	return nrx2&0xf8 != 0
}

func (e *envelope) trigger() {
	e.volume = e.initial
	e.timer = e.pace
}

func (e *envelope) clock() {
	if e.pace == 0 {
		return
	}

	// the pace may have been zero when the channel was triggered
	if e.timer == 0 {
		e.timer = e.pace
		return
	}

	e.timer--
	if e.timer > 0 {
		return
	}
	e.timer = e.pace
	if e.increase {
		if e.volume < 15 {
			e.volume++
		}
	} else if e.volume > 0 {
		e.volume--
	}
}

// period returns the 11 bit period held in NRx3 and the lower bits of NRx4.
func period(nrx3 uint8, nrx4 uint8) uint16 {
	return uint16(nrx4&0x07)<<8 | uint16(nrx3)
}

// dac converts a digital sample in the range 0 to 15 to an analogue value in
// the range -1.0 to 1.0.
func dac(digital uint8) float32 {
	return 1.0 - float32(digital)/7.5
}
