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

// Package termplay presents the emulation in a terminal. Frames are drawn
// with the upper half block character, with the foreground and background
// colours set to two vertically adjacent pixels. The image is reduced in size
// if the terminal is too small to show the entire screen.
//
// The terminal is put into cbreak mode so that key presses are delivered
// immediately. Terminals do not report key releases so a release is
// synthesised when a key has not been seen for a short time.
//
// Keys: W A S D or the cursor keys for the direction pad, Return for Start,
// Space for Select, Z and X for the A and B buttons. Q quits.
package termplay
