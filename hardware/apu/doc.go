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

// Package apu implements the four channel audio unit.
//
// Channels 1 and 2 are square waves with a selectable duty cycle. Channel 1
// also has a frequency sweep. Channel 3 plays back the 32 four bit samples
// held in wave RAM and channel 4 is a noise generator driven by a linear
// feedback shift register.
//
// The period counters of every channel advance once per call to Step(). The
// slower frame sequencer is clocked by the falling edge of bit 12 of the
// timer's internal counter (bit 4 of DIV), which happens at 512Hz.
// Transitions of the sequencer's own counter bits clock the length counters
// (256Hz), the channel 1 sweep (128Hz) and the volume envelopes (64Hz).
//
// Samples are taken at the host sample rate by averaging the mixed output
// of every machine cycle since the previous sample. Samples are interleaved
// stereo values in the range -1.0 to 1.0 and are handed to a Mixer in
// batches. High-pass filtering is left to the Mixer implementation.
package apu
