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
	"fmt"
	"io"
	"os"

	"github.com/gopherdmg/gopherdmg/cartridgeloader"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge"
	"github.com/gopherdmg/gopherdmg/hardware/ppu"
	"github.com/gopherdmg/gopherdmg/modalflag"
	"github.com/gopherdmg/gopherdmg/screenshot"

	"github.com/bradleyjkemp/memviz"
)

func inspect(md *modalflag.Modes) error {
	md.NewMode()

	memvizFile := md.AddString("memviz", "", "write a structure graph of the console to a dot file")
	frames := md.AddInt("frames", 0, "number of frames to run after inspecting the header")
	shot := md.AddString("screenshot", "", "save a png of the screen after running frames")
	scale := md.AddInt("scale", 2, "screenshot scaling")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cl := cartridgeloader.NewLoader(md.GetArg(0))
	err = cl.Load()
	if err != nil {
		return err
	}

	err = writeHeader(md.Output, cl.Data)
	if err != nil {
		return err
	}

	if *frames <= 0 && *shot == "" && *memvizFile == "" {
		return nil
	}

	return inspectConsole(md.Output, cl, *frames, *shot, *scale, *memvizFile)
}

// writeHeader prints the decoded cartridge header along with the result of
// the header and global checksums.
func writeHeader(output io.Writer, rom []uint8) error {
	hdr, err := cartridge.DecodeHeader(rom)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "title: %s\n", hdr.Title)
	if hdr.Manufacturer != "" {
		fmt.Fprintf(output, "manufacturer: %s\n", hdr.Manufacturer)
	}
	fmt.Fprintf(output, "licensee: %s\n", hdr.Licensee)
	fmt.Fprintf(output, "color: %s\n", hdr.Color)
	fmt.Fprintf(output, "sgb: %v\n", hdr.SGB)
	fmt.Fprintf(output, "type: %s (%#02x)\n", cartridge.CartTypeName(hdr.CartType), hdr.CartType)
	fmt.Fprintf(output, "rom: %dKB (%d banks)\n", hdr.ROMSize/1024, hdr.ROMBanks)
	fmt.Fprintf(output, "ram: %dKB (%d banks)\n", hdr.RAMSize/1024, hdr.RAMBanks)
	fmt.Fprintf(output, "destination: %s\n", hdr.Destination)
	fmt.Fprintf(output, "version: %d\n", hdr.Version)

	sum, err := cartridge.ComputeHeaderChecksum(rom)
	if err != nil {
		return err
	}
	if sum == hdr.HeaderChecksum {
		fmt.Fprintf(output, "header checksum: %#02x ok\n", hdr.HeaderChecksum)
	} else {
		fmt.Fprintf(output, "header checksum: %#02x mismatch (calculated %#02x)\n", hdr.HeaderChecksum, sum)
	}

	global := cartridge.ComputeGlobalChecksum(rom)
	if global == hdr.GlobalChecksum {
		fmt.Fprintf(output, "global checksum: %#04x ok\n", hdr.GlobalChecksum)
	} else {
		fmt.Fprintf(output, "global checksum: %#04x mismatch (calculated %#04x)\n", hdr.GlobalChecksum, global)
	}

	return nil
}

// the parts of the console included in the memviz graph. the console itself
// is too large to be usefully graphed.
type inspection struct {
	Header cartridge.Header

	A registers.Register
	F registers.Flags
	B registers.Register
	C registers.Register
	D registers.Register
	E registers.Register
	H registers.Register
	L registers.Register

	SP registers.Counter
	PC registers.Counter

	Cycles uint64
}

// inspectConsole runs the console for the number of frames and then saves a
// screenshot and memviz graph as requested.
func inspectConsole(output io.Writer, cl cartridgeloader.Loader, frames int, shot string, scale int, memvizFile string) error {
	gb, _, err := newGameBoy("hardware.limit::false")
	if err != nil {
		return err
	}
	defer gb.TV.End()

	err = gb.AttachCartridge(cl)
	if err != nil {
		return err
	}
	defer gb.Eject()

	if frames > 0 {
		err = gb.RunForFrameCount(frames, nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "ran %d frames: %s\n", frames, gb.CPU.String())
	}

	if shot != "" {
		gb.TV.BorrowFrame(func(frame *ppu.Frame) {
			err = screenshot.Save(shot, frame, scale)
		})
		if err != nil {
			return err
		}
	}

	if memvizFile != "" {
		f, err := os.Create(memvizFile)
		if err != nil {
			return err
		}

		memviz.Map(f, &inspection{
			Header: gb.Cart.Header,
			A:      gb.CPU.A,
			F:      gb.CPU.F,
			B:      gb.CPU.B,
			C:      gb.CPU.C,
			D:      gb.CPU.D,
			E:      gb.CPU.E,
			H:      gb.CPU.H,
			L:      gb.CPU.L,
			SP:     gb.CPU.SP,
			PC:     gb.CPU.PC,
			Cycles: gb.Cycles,
		})

		err = f.Close()
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "memviz graph written to %s\n", memvizFile)
	}

	return nil
}
