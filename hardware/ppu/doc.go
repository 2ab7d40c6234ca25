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

// Package ppu emulates the picture processing unit of the DMG. It owns the
// video RAM, the object attribute memory and the LCD registers.
//
// The PPU is ticked once per dot (four dots per M-cycle). Each scanline is 456
// dots long and is divided into the OAM scan (mode 2), pixel transfer (mode 3)
// and H-blank (mode 0). Lines 144 to 153 are the V-blank (mode 1).
//
// Pixel transfer is modelled with a background fetcher feeding a background
// pixel FIFO, and an object fetcher that mixes object pixels into an object
// FIFO. The length of mode 3 is a consequence of the fetcher timing and so
// varies with fine scrolling, the window and the number of objects on the
// line.
//
// A completed frame is handed to the FrameSink at the start of line 144.
package ppu
