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

// Package television is the meeting point between the emulation and the
// front ends. Despite the name it does not display anything itself.
//
// Completed frames are copied into the television by the PPU with
// PublishFrame() and borrowed by a front end with BorrowFrame(). APU output
// is fanned out to every AudioMixer that has been added. Information about
// the attached cartridge is kept for front ends that want to show it.
//
// The frame driver calls CheckFrame() once per frame and the television
// limiter pauses emulation as required to keep to real time.
package television
