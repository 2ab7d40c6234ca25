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

import (
	"github.com/gopherdmg/gopherdmg/hardware/joypad"
)

// Pad is the interface to the console's joypad.
type Pad interface {
	Set(b joypad.Button, pressed bool)
}

// Keymap associates a key name with a console button.
type Keymap map[string]joypad.Button

// DefaultKeys is the keymap used by the SDL front end.
var DefaultKeys = Keymap{
	"Left":        joypad.Left,
	"Right":       joypad.Right,
	"Up":          joypad.Up,
	"Down":        joypad.Down,
	"Return":      joypad.Start,
	"Left Shift":  joypad.Select,
	"Right Shift": joypad.Select,
	"Z":           joypad.A,
	"X":           joypad.B,
}

// TerminalKeys is the keymap used by the terminal front end.
var TerminalKeys = Keymap{
	"Left":   joypad.Left,
	"Right":  joypad.Right,
	"Up":     joypad.Up,
	"Down":   joypad.Down,
	"A":      joypad.Left,
	"D":      joypad.Right,
	"W":      joypad.Up,
	"S":      joypad.Down,
	"Return": joypad.Start,
	"Space":  joypad.Select,
	"Z":      joypad.A,
	"X":      joypad.B,
}

// QuitKey ends the emulation when pressed without modifiers.
const QuitKey = "Escape"

// Controllers keeps track of hardware userinput options.
type Controllers struct {
	keys Keymap

	// whether or not the last HandleUserInput() was for an event that was
	// consumed by the emulation as an input
	LastKeyHandled bool

	// is true if last event was a quit emulation event
	Quit bool
}

// NewControllers is the preferred method of initialisation for the
// Controllers type. A nil keymap means DefaultKeys.
func NewControllers(keys Keymap) *Controllers {
	if keys == nil {
		keys = DefaultKeys
	}
	return &Controllers{keys: keys}
}

func (c *Controllers) keyboard(ev EventKeyboard, pad Pad) {
	if ev.Repeat {
		c.LastKeyHandled = false
		return
	}

	if ev.Key == QuitKey && ev.Down && ev.Mod == KeyModNone {
		c.Quit = true
		return
	}

	b, ok := c.keys[ev.Key]
	if !ok {
		c.LastKeyHandled = false
		return
	}

	pad.Set(b, ev.Down)
	c.LastKeyHandled = true
}

// HandleUserInput deals with an input event. Returns true if the event asks
// for the emulation to end.
//
// Events that are not input events, EventDropFile for example, are ignored
// and should be handled by the caller.
func (c *Controllers) HandleUserInput(ev Event, pad Pad) bool {
	c.LastKeyHandled = false
	c.Quit = false

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
	case EventKeyboard:
		c.keyboard(ev, pad)
	}

	return c.Quit
}
