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

// bit of the timer counter whose falling edge clocks the frame sequencer.
const divAPUBit = 1 << 12

// sequencer is the frame sequencer. the counter is advanced on every DIV-APU
// tick and the falling edges of its bits clock the slower channel units.
type sequencer struct {
	counter uint8

	// value of the divider bit on the previous step
	div bool
}

// frame sequencer events.
const (
	clockLength   = 0x01
	clockSweep    = 0x02
	clockEnvelope = 0x04
)

// step returns the units to clock for the current timer counter value.
func (seq *sequencer) step(timerCounter uint16) uint8 {
	div := timerCounter&divAPUBit == divAPUBit
	falling := seq.div && !div
	seq.div = div
	if !falling {
		return 0
	}

	prev := seq.counter
	seq.counter = (seq.counter + 1) & 0x07
	return prev &^ seq.counter
}
