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

package termplay

import (
	"sort"
	"time"
)

// list of ASCII codes for non-alphanumeric characters.
const (
	keyInterrupt      = 3
	keyLineFeed       = 10
	keyCarriageReturn = 13
	keyEsc            = 27
	keySpace          = 32
	escCursor         = '['
)

// QuitKey is the name of the key that ends the emulation.
const QuitKey = "Q"

// ParseKeys converts input from the terminal into key names. Letters are
// returned in upper case and cursor keys by their direction. Unrecognised
// input is ignored.
func ParseKeys(b []byte) []string {
	var keys []string

	for i := 0; i < len(b); i++ {
		c := b[i]

		switch {
		case c == keyEsc:
			if i+2 < len(b) && b[i+1] == escCursor {
				switch b[i+2] {
				case 'A':
					keys = append(keys, "Up")
				case 'B':
					keys = append(keys, "Down")
				case 'C':
					keys = append(keys, "Right")
				case 'D':
					keys = append(keys, "Left")
				}
				i += 2
			}
		case c == keyCarriageReturn || c == keyLineFeed:
			keys = append(keys, "Return")
		case c == keySpace:
			keys = append(keys, "Space")
		case c == keyInterrupt:
			keys = append(keys, QuitKey)
		case c >= 'a' && c <= 'z':
			keys = append(keys, string(rune(c-'a'+'A')))
		case c >= 'A' && c <= 'Z':
			keys = append(keys, string(rune(c)))
		}
	}

	return keys
}

// HoldTime is how long a key is considered to be held down after it has been
// seen. It should be longer than the auto-repeat delay of most terminals.
const HoldTime = 250 * time.Millisecond

// HeldKeys keeps track of which keys are considered to be held down.
type HeldKeys struct {
	deadline map[string]time.Time
}

// NewHeldKeys is the preferred method of initialisation for HeldKeys.
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{deadline: make(map[string]time.Time)}
}

// Press records that the key has been seen. Returns true if the key was not
// already held.
func (h *HeldKeys) Press(key string, now time.Time) bool {
	_, held := h.deadline[key]
	h.deadline[key] = now.Add(HoldTime)
	return !held
}

// Expire returns the keys that should now be released, in alphabetical
// order.
func (h *HeldKeys) Expire(now time.Time) []string {
	var released []string
	for k, d := range h.deadline {
		if !now.Before(d) {
			released = append(released, k)
		}
	}
	for _, k := range released {
		delete(h.deadline, k)
	}
	sort.Strings(released)
	return released
}
