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

package termplay_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gopherdmg/gopherdmg/gui/termplay"
	"github.com/gopherdmg/gopherdmg/hardware/ppu"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestParseKeys(t *testing.T) {
	keys := termplay.ParseKeys([]byte("wZ \r\x1b[A\x1b[Dq"))
	test.ExpectEquality(t, strings.Join(keys, ","), "W,Z,Space,Return,Up,Left,Q")

	// incomplete escape sequences are ignored
	keys = termplay.ParseKeys([]byte("\x1b["))
	test.ExpectEquality(t, len(keys), 0)

	keys = termplay.ParseKeys([]byte{3})
	test.ExpectEquality(t, strings.Join(keys, ","), termplay.QuitKey)
}

func TestHeldKeys(t *testing.T) {
	h := termplay.NewHeldKeys()
	now := time.Now()

	test.ExpectSuccess(t, h.Press("X", now))
	test.ExpectSuccess(t, h.Press("Z", now))
	test.ExpectEquality(t, len(h.Expire(now)), 0)

	// auto-repeat extends the hold
	now = now.Add(termplay.HoldTime / 2)
	test.ExpectFailure(t, h.Press("Z", now))

	now = now.Add(termplay.HoldTime / 2)
	test.ExpectEquality(t, strings.Join(h.Expire(now), ","), "X")

	now = now.Add(termplay.HoldTime)
	test.ExpectEquality(t, strings.Join(h.Expire(now), ","), "Z")

	// released key is pressed anew
	test.ExpectSuccess(t, h.Press("X", now))
}

func TestFitSize(t *testing.T) {
	c, r := termplay.FitSize(200, 100)
	test.ExpectEquality(t, c, ppu.VisiblePixels)
	test.ExpectEquality(t, r, ppu.VisibleLines/2)

	c, r = termplay.FitSize(80, 100)
	test.ExpectEquality(t, c, 80)
	test.ExpectEquality(t, r, 36)

	c, r = termplay.FitSize(200, 36)
	test.ExpectEquality(t, c, 80)
	test.ExpectEquality(t, r, 36)
}

func TestRender(t *testing.T) {
	frame := &ppu.Frame{BGP: 0xe4}
	frame.Pixels[36][0] = ppu.Pixel{Color: 3}

	var b bytes.Buffer
	test.DemandSuccess(t, termplay.Render(&b, frame, 4, 2))

	s := b.String()
	test.ExpectEquality(t, strings.Count(s, "▀"), 8)
	test.ExpectEquality(t, strings.Count(s, "\r\n"), 2)

	// the first cell has the lightest shade on top and the darkest shade
	// below
	test.ExpectSuccess(t, strings.Contains(s, "\x1b[38;2;224;248;208m\x1b[48;2;8;24;32m▀"))
}

func TestInitialiseNotATerminal(t *testing.T) {
	var terminal termplay.Terminal
	test.ExpectFailure(t, terminal.Initialise(nil, os.Stdout))

	// the terminal attributes of a regular file can not be read
	f, err := os.Create(filepath.Join(t.TempDir(), "notaterminal"))
	test.DemandSuccess(t, err)
	defer f.Close()
	test.ExpectFailure(t, terminal.Initialise(f, f))
}
