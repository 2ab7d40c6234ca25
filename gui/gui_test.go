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

package gui_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/gui"
	"github.com/gopherdmg/gopherdmg/test"
	"github.com/gopherdmg/gopherdmg/userinput"
)

func TestPushEvent(t *testing.T) {
	events := make(chan userinput.Event, 1)
	test.ExpectSuccess(t, gui.PushEvent(events, userinput.EventQuit{}))
	test.ExpectFailure(t, gui.PushEvent(events, userinput.EventQuit{}))
	test.ExpectFailure(t, gui.PushEvent(nil, userinput.EventQuit{}))

	ev := <-events
	_, ok := ev.(userinput.EventQuit)
	test.ExpectSuccess(t, ok)
}

func TestShades(t *testing.T) {
	// shades get darker
	for i := 1; i < len(gui.Shades); i++ {
		test.ExpectSuccess(t, gui.Shades[i].G < gui.Shades[i-1].G)
	}
}
