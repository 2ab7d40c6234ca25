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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopherdmg/gopherdmg/cartridgeloader"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge"
	"github.com/gopherdmg/gopherdmg/test"
)

// testROM returns a cartridge that loops forever at the entry point, with
// correct checksums.
func testROM(t *testing.T) []uint8 {
	t.Helper()
	rom := make([]uint8, 0x8000)
	rom[0x100] = 0x18 // JR -2
	rom[0x101] = 0xfe
	copy(rom[0x134:], "INSPECT")

	sum, err := cartridge.ComputeHeaderChecksum(rom)
	test.DemandSuccess(t, err)
	rom[0x14d] = sum

	global := cartridge.ComputeGlobalChecksum(rom)
	rom[0x14e] = uint8(global >> 8)
	rom[0x14f] = uint8(global)

	return rom
}

func TestWriteHeader(t *testing.T) {
	rom := testROM(t)

	var out strings.Builder
	test.DemandSuccess(t, writeHeader(&out, rom))
	s := out.String()
	test.ExpectSuccess(t, strings.Contains(s, "title: INSPECT\n"))
	test.ExpectSuccess(t, strings.Contains(s, "rom: 32KB (2 banks)\n"))
	test.ExpectSuccess(t, strings.Contains(s, "header checksum: "))
	test.ExpectFailure(t, strings.Contains(s, "mismatch"))

	rom[0x14d]++
	out.Reset()
	test.DemandSuccess(t, writeHeader(&out, rom))
	test.ExpectSuccess(t, strings.Contains(out.String(), "mismatch"))

	test.ExpectFailure(t, writeHeader(&out, rom[:0x100]))
}

func TestInspectConsole(t *testing.T) {
	dir := t.TempDir()
	romFile := filepath.Join(dir, "inspect.gb")
	test.DemandSuccess(t, os.WriteFile(romFile, testROM(t), 0o644))

	shot := filepath.Join(dir, "shot.png")
	dot := filepath.Join(dir, "console.dot")

	var out strings.Builder
	err := inspectConsole(&out, cartridgeloader.NewLoader(romFile), 2, shot, 1, dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "ran 2 frames"))

	_, err = os.Stat(shot)
	test.ExpectSuccess(t, err)

	graph, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(graph), "digraph"))
}
