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

package userinput

// Event is the interface satisfied by all user input events.
type Event interface{}

// KeyMod identifies the modifier keys held during a keyboard event.
type KeyMod int

// List of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventQuit is sent when the user has asked for the emulation to end. For
// example, by closing the window.
type EventQuit struct{}

// EventKeyboard is sent when a key has been pressed or released. Key is the
// name of the key as reported by SDL, eg. "Left", "Return", "Z".
type EventKeyboard struct {
	Key    string
	Down   bool
	Mod    KeyMod
	Repeat bool
}

// EventDropFile is sent when a file has been dropped onto the GUI. The play
// loop treats this as a request to change the cartridge.
type EventDropFile struct {
	Filename string
}
