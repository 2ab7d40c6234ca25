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

package ppu

// fifoPixel is an entry in either of the pixel FIFOs.
type fifoPixel struct {
	color uint8

	// object palette. zero or one
	palette uint8

	// object is drawn behind background colours 1 to 3
	behind bool

	// the pixel came from an object rather than the background or window
	object bool
}

// fifo is a queue of pixels. there are never more than 16 pixels waiting.
type fifo struct {
	pixels [16]fifoPixel
	out    int
	len    int
}

func (f *fifo) clear() {
	f.out = 0
	f.len = 0
}

func (f *fifo) push(p fifoPixel) {
	if f.len == len(f.pixels) {
		return
	}
	f.pixels[(f.out+f.len)%len(f.pixels)] = p
	f.len++
}

func (f *fifo) pop() fifoPixel {
	if f.len == 0 {
		return fifoPixel{}
	}
	p := f.pixels[f.out]
	f.out = (f.out + 1) % len(f.pixels)
	f.len--
	return p
}

// at returns a pointer to the pixel at position i from the head of the queue.
func (f *fifo) at(i int) *fifoPixel {
	return &f.pixels[(f.out+i)%len(f.pixels)]
}
