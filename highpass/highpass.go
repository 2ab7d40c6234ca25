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

package highpass

import "math"

// capacitor charge factor per machine clock (4194304Hz).
const chargeFactor = 0.999958

const masterClock = 4194304

// Filter is a stereo high-pass filter. Signals are interleaved left and right
// values.
type Filter struct {
	charge float32
	cap    [2]float32
}

// NewFilter is the preferred method of initialisation for the Filter type.
func NewFilter(sampleRate int) *Filter {
	return &Filter{
		charge: float32(math.Pow(chargeFactor, float64(masterClock)/float64(sampleRate))),
	}
}

// Reset discharges the capacitor.
func (f *Filter) Reset() {
	f.cap = [2]float32{}
}

// Apply filters the signal in place.
func (f *Filter) Apply(sig []float32) {
	for i := range sig {
		c := &f.cap[i&0x01]
		in := sig[i]
		out := in - *c
		*c = in - out*f.charge
		sig[i] = out
	}
}
