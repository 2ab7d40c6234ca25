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

package userinput_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
	"github.com/gopherdmg/gopherdmg/hardware/joypad"
	"github.com/gopherdmg/gopherdmg/test"
	"github.com/gopherdmg/gopherdmg/userinput"
)

func TestKeyboard(t *testing.T) {
	jp := joypad.NewJoypad(interrupts.NewInterrupts())
	c := userinput.NewControllers(nil)

	quit := c.HandleUserInput(userinput.EventKeyboard{Key: "Z", Down: true}, jp)
	test.ExpectFailure(t, quit)
	test.ExpectSuccess(t, c.LastKeyHandled)
	test.ExpectSuccess(t, jp.IsPressed(joypad.A))

	// shift is a modifier but it is also the select button
	c.HandleUserInput(userinput.EventKeyboard{Key: "Left Shift", Down: true, Mod: userinput.KeyModShift}, jp)
	test.ExpectSuccess(t, jp.IsPressed(joypad.Select))

	c.HandleUserInput(userinput.EventKeyboard{Key: "Z", Down: false}, jp)
	test.ExpectFailure(t, jp.IsPressed(joypad.A))
	test.ExpectSuccess(t, jp.IsPressed(joypad.Select))

	// repeated keys are not handled
	c.HandleUserInput(userinput.EventKeyboard{Key: "X", Down: true, Repeat: true}, jp)
	test.ExpectFailure(t, c.LastKeyHandled)
	test.ExpectFailure(t, jp.IsPressed(joypad.B))

	// unmapped keys
	c.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: true}, jp)
	test.ExpectFailure(t, c.LastKeyHandled)
	test.ExpectFailure(t, jp.IsPressed(joypad.Up))
}

func TestTerminalKeys(t *testing.T) {
	jp := joypad.NewJoypad(interrupts.NewInterrupts())
	c := userinput.NewControllers(userinput.TerminalKeys)

	c.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: true}, jp)
	test.ExpectSuccess(t, jp.IsPressed(joypad.Up))
	c.HandleUserInput(userinput.EventKeyboard{Key: "Space", Down: true}, jp)
	test.ExpectSuccess(t, jp.IsPressed(joypad.Select))
	test.ExpectEquality(t, jp.String(), "Up Select")
}

func TestQuit(t *testing.T) {
	jp := joypad.NewJoypad(interrupts.NewInterrupts())
	c := userinput.NewControllers(nil)

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventQuit{}, jp))
	test.ExpectSuccess(t, c.Quit)

	test.ExpectFailure(t, c.HandleUserInput(userinput.EventKeyboard{Key: "Escape", Down: true, Mod: userinput.KeyModCtrl}, jp))
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "Escape", Down: true}, jp))

	// non-input events are left for the caller
	test.ExpectFailure(t, c.HandleUserInput(userinput.EventDropFile{Filename: "test.gb"}, jp))
	test.ExpectFailure(t, c.Quit)
}
