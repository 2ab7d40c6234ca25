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

// Package sdlplay is a simple SDL implementation of the gui.GUI interface. It
// presents the most recent frame from the television in a window and sends
// keyboard input to the emulation.
//
// The Service() function must be called from the main thread. The emulation
// itself should be running in another goroutine.
//
// Special keys:
//
//	F12     save a screenshot of the current frame
//	Escape  quit the emulation
//
// Dropping a file onto the window requests a change of cartridge.
package sdlplay
