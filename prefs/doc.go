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

// Package prefs holds preference values that can be shared safely between the
// emulation goroutine and the front ends.
//
// Each value type (Bool, Int, Float, String) stores its value atomically and
// can optionally call a hook function before and after a change.
//
// Values can be seeded from the command line with the command line stack. A
// group of preferences is pushed with PushCommandLineStack() in the form:
//
//	"key::value; key::value"
//
// Any package constructing preferences can then ask for its key with
// GetCommandLinePref(). A key is consumed when it is returned, so anything
// still left on the stack when it is popped was not recognised.
package prefs
