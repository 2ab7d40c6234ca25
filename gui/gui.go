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

package gui

import (
	"image/color"

	"github.com/gopherdmg/gopherdmg/userinput"
)

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	// Service the GUI. Reads events from the host and presents the most
	// recent frame. Returns false when the GUI can no longer be serviced, for
	// example because the window has been closed.
	//
	// Some implementations must only call Service() from the main thread.
	Service() bool

	// Destroy releases all resources held by the GUI.
	Destroy()
}

// Shades are the colours used to display shades 0 to 3 of the screen,
// lightest to darkest.
var Shades = [4]color.RGBA{
	{R: 0xe0, G: 0xf8, B: 0xd0, A: 0xff},
	{R: 0x88, G: 0xc0, B: 0x70, A: 0xff},
	{R: 0x34, G: 0x68, B: 0x56, A: 0xff},
	{R: 0x08, G: 0x18, B: 0x20, A: 0xff},
}

// PushEvent sends an event to the emulation without blocking. Returns false
// if the event queue is full and the event was dropped.
func PushEvent(events chan<- userinput.Event, ev userinput.Event) bool {
	if events == nil {
		return false
	}
	select {
	case events <- ev:
		return true
	default:
	}
	return false
}
