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

package cartridgeloader_test

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherdmg/gopherdmg/cartridgeloader"
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "tetris.gb")
	data := []byte{0x00, 0xc3, 0x50, 0x01}
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))

	cl := cartridgeloader.NewLoader(fn)
	test.ExpectEquality(t, cl.HasLoaded(), false)
	test.ExpectEquality(t, cl.ShortName(), "tetris")
	test.ExpectEquality(t, cl.SavePath(), filepath.Join(dir, "tetris.sav"))
	test.ExpectEquality(t, cl.IsLocal(), true)

	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.HasLoaded(), true)
	test.ExpectEquality(t, len(cl.Data), len(data))
	test.ExpectEquality(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))
}

func TestUnexpectedHash(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "rom.gb")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{1, 2, 3}, 0o644))

	cl := cartridgeloader.NewLoader(fn)
	cl.Hash = "0000"
	err := cl.Load()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.UnexpectedHash), true)
	test.ExpectEquality(t, cl.HasLoaded(), false)
}

func TestMissingFile(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.gb"))
	err := cl.Load()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.LoadError), true)
}

func TestRemote(t *testing.T) {
	cl := cartridgeloader.NewLoader("https://example.com/tetris.gb")
	test.ExpectEquality(t, cl.IsLocal(), false)
	test.ExpectEquality(t, cl.ShortName(), "tetris")

	cl = cartridgeloader.NewLoader("ftp://example.com/tetris.gb")
	test.ExpectEquality(t, curated.Is(cl.Load(), cartridgeloader.UnsupportedURL), true)
}
