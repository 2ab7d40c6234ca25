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

// right shift applied to wave samples for each output level of NR32.
var waveShift = [4]uint8{4, 0, 1, 2}

// wave is the wave RAM playback channel.
type wave struct {
	enabled bool
	dac     bool

	level    uint8
	period   uint16
	timer    uint16
	position uint8
	sample   uint8

	length length
	ram    [16]uint8
}

func newWave() *wave {
	return &wave{length: length{max: 256}}
}

func (wv *wave) String() string {
	return fmt.Sprintf("ch3: on=%v level=%d period=%03x pos=%02d len=%d",
		wv.enabled, wv.level, wv.period, wv.position, wv.length.counter)
}

// reset leaves wave RAM untouched.
func (wv *wave) reset() {
	ram := wv.ram
	*wv = *newWave()
	wv.ram = ram
}

// writeDAC reacts to a write to NR30.
func (wv *wave) writeDAC(v uint8) {
	wv.dac = v&0x80 == 0x80
	if !wv.dac {
		wv.enabled = false
	}
}

func (wv *wave) writeLength(v uint8) {
	wv.length.load(v)
}

func (wv *wave) writeLevel(v uint8) {
	wv.level = (v >> 5) & 0x03
}

func (wv *wave) writeControl(v uint8, p uint16) {
	wv.period = p
	wv.length.enabled = v&lengthEnable == lengthEnable
	if v&trigger == trigger {
		wv.enabled = wv.dac
		wv.length.reload()
		wv.timer = wv.period
		wv.position = 0
	}
}

// tick advances the period counter by one machine cycle. the wave channel
// is clocked at twice the rate of the square channels.
func (wv *wave) tick() {
	for i := 0; i < 2; i++ {
		wv.timer++
		if wv.timer >= 0x0800 {
			wv.timer = wv.period
			wv.position = (wv.position + 1) & 0x1f
			wv.sample = wv.ram[wv.position>>1]
			if wv.position&0x01 == 0x00 {
				wv.sample >>= 4
			}
			wv.sample &= 0x0f
		}
	}
}

func (wv *wave) clockLength() {
	if wv.length.clock() {
		wv.enabled = false
	}
}

func (wv *wave) output() uint8 {
	if !wv.enabled {
		return 0
	}
	return wv.sample >> waveShift[wv.level]
}
