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

package battery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge/battery"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestNewSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.sav")

	ram := make([]uint8, 0x2000)
	b, err := battery.Open(path, ram)
	test.DemandSuccess(t, err)

	info, err := os.Stat(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.Size(), int64(0x2000))

	for _, v := range ram {
		test.DemandEquality(t, v, uint8(0))
	}

	test.ExpectSuccess(t, b.Close())

	// closing twice is safe
	test.ExpectSuccess(t, b.Close())
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zelda.sav")

	ram := make([]uint8, 0x8000)
	b, err := battery.Open(path, ram)
	test.DemandSuccess(t, err)

	for i := 0; i < 0x100; i++ {
		b.Persist(i*0x80, uint8(i))
	}
	b.Persist(0x7fff, 0xaa)

	// out of range writes are ignored
	b.Persist(0x8000, 0xbb)
	b.Persist(-1, 0xbb)

	test.ExpectSuccess(t, b.Flush())
	test.ExpectSuccess(t, b.Close())
	test.ExpectEquality(t, curated.Is(b.Flush(), battery.Closed), true)

	// writes after close are dropped without blocking
	b.Persist(0, 0xff)

	reloaded := make([]uint8, 0x8000)
	b, err = battery.Open(path, reloaded)
	test.DemandSuccess(t, err)
	defer b.Close()

	for i := 0; i < 0x100; i++ {
		test.ExpectEquality(t, reloaded[i*0x80], uint8(i), i)
	}
	test.ExpectEquality(t, reloaded[0x7fff], uint8(0xaa))
	test.ExpectEquality(t, reloaded[1], uint8(0))
}

func TestResize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.sav")
	test.DemandSuccess(t, os.WriteFile(path, []byte{1, 2, 3, 4}, 0o644))

	ram := make([]uint8, 512)
	b, err := battery.Open(path, ram)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, b.Close())

	test.ExpectEquality(t, ram[0], uint8(1))
	test.ExpectEquality(t, ram[3], uint8(4))
	test.ExpectEquality(t, ram[4], uint8(0))

	info, err := os.Stat(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.Size(), int64(512))
}

func TestOpenFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "x.sav")
	_, err := battery.Open(path, make([]uint8, 16))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, battery.OpenError), true)
}
