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

// Package hardware is the base package for the emulated console. The GameBoy
// type contains every component of the console and drives them in the
// correct order.
//
// Each call to Step() is one machine cycle. The CPU executes a whole
// instruction on the first cycle and then waits for the remaining cycles of
// that instruction to pass. The rest of the console advances every cycle in
// the following order:
//
//	interrupt check / CPU
//	timer
//	PPU (four dots, with OAM DMA after every dot)
//	APU
//	serial
//
// A frame is 154 scanlines of 114 machine cycles each.
package hardware
