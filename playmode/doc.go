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

// Package playmode is the outer loop of the emulation when it is being
// played by a user. Once per frame it forwards queued user input to the
// joypad and services requests to change the cartridge.
//
// GUIs send events with the channel returned by UserInput(). A change of
// cartridge can be requested by any goroutine with RequestROM().
package playmode
