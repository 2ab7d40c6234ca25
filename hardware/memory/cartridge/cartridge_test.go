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

package cartridge_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherdmg/gopherdmg/cartridgeloader"
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge/mapper"
	"github.com/gopherdmg/gopherdmg/test"
)

// makeROM creates a ROM image with a valid header. The first byte of every
// bank (apart from bank zero) is the bank number and the second is the bank
// number inverted.
func makeROM(cartType uint8, romCode uint8, ramCode uint8) []uint8 {
	banks := 2 << romCode
	rom := make([]uint8, banks*cartridge.BankSize)
	for b := 1; b < banks; b++ {
		rom[b*cartridge.BankSize] = uint8(b)
		rom[b*cartridge.BankSize+1] = ^uint8(b)
	}
	copy(rom[0x0134:], "gopher test")
	rom[0x0147] = cartType
	rom[0x0148] = romCode
	rom[0x0149] = ramCode
	return rom
}

// attach writes the ROM to a temporary file and attaches it to a new
// cartridge.
func attach(t *testing.T, rom []uint8) (*cartridge.Cartridge, string) {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "test.gb")
	test.DemandSuccess(t, os.WriteFile(fn, rom, 0o644))
	cart := cartridge.NewCartridge()
	test.DemandSuccess(t, cart.Attach(cartridgeloader.NewLoader(fn)))
	t.Cleanup(func() {
		cart.Eject()
	})
	return cart, fn
}

func TestHeader(t *testing.T) {
	rom := makeROM(0x03, 0x02, 0x03)
	copy(rom[0x0134:], "pokemon red\x00\x00\x00\x00\x00")
	rom[0x0143] = 0x80
	rom[0x014b] = 0x33
	rom[0x0144] = '0'
	rom[0x0145] = '1'
	rom[0x0146] = 0x03
	rom[0x014a] = 0x01
	rom[0x014c] = 0x02
	rom[0x014e] = 0x12
	rom[0x014f] = 0x34

	chk, err := cartridge.ComputeHeaderChecksum(rom)
	test.DemandSuccess(t, err)
	rom[0x014d] = chk

	hdr, err := cartridge.DecodeHeader(rom)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, hdr.Title, "POKEMON RED")
	test.ExpectEquality(t, hdr.Color, cartridge.ColorEnhanced)
	test.ExpectEquality(t, hdr.Licensee, "Nintendo Research & Development 1")
	test.ExpectEquality(t, hdr.SGB, true)
	test.ExpectEquality(t, hdr.CartType, uint8(0x03))
	test.ExpectEquality(t, hdr.ROMSize, 0x20000)
	test.ExpectEquality(t, hdr.ROMBanks, 8)
	test.ExpectEquality(t, hdr.RAMSize, 0x8000)
	test.ExpectEquality(t, hdr.RAMBanks, 4)
	test.ExpectEquality(t, hdr.Destination, cartridge.Overseas)
	test.ExpectEquality(t, hdr.Version, uint8(0x02))
	test.ExpectEquality(t, hdr.HeaderChecksum, chk)
	test.ExpectEquality(t, hdr.GlobalChecksum, uint16(0x1234))

	// old licensee table
	rom[0x014b] = 0x01
	hdr, err = cartridge.DecodeHeader(rom)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, hdr.Licensee, "Nintendo")

	rom[0x014b] = 0x02
	hdr, _ = cartridge.DecodeHeader(rom)
	test.ExpectEquality(t, hdr.Licensee, "Unknown Licensee")

	rom[0x0143] = 0xc0
	hdr, _ = cartridge.DecodeHeader(rom)
	test.ExpectEquality(t, hdr.Color, cartridge.ColorOnly)
}

func TestHeaderErrors(t *testing.T) {
	_, err := cartridge.DecodeHeader(make([]uint8, 0x100))
	test.ExpectEquality(t, curated.Is(err, cartridge.ROMTooShort), true)

	rom := makeROM(0x00, 0x00, 0x01)
	_, err = cartridge.DecodeHeader(rom)
	test.ExpectEquality(t, curated.Is(err, cartridge.UnsupportedRAMSize), true)

	rom = makeROM(0x00, 0x00, 0x00)
	rom[0x0148] = 0x09
	_, err = cartridge.DecodeHeader(rom)
	test.ExpectEquality(t, curated.Is(err, cartridge.UnsupportedROMSize), true)
}

func TestAttachErrors(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.gb")

	// MBC3 is not supported
	test.DemandSuccess(t, os.WriteFile(fn, makeROM(0x13, 0x01, 0x00), 0o644))
	cart := cartridge.NewCartridge()
	err := cart.Attach(cartridgeloader.NewLoader(fn))
	test.ExpectEquality(t, curated.Is(err, cartridge.UnsupportedCartridgeType), true)
	test.ExpectSuccess(t, cart.IsEjected())

	// header declares more ROM than is present
	rom := makeROM(0x01, 0x02, 0x00)
	test.DemandSuccess(t, os.WriteFile(fn, rom[:0x10000], 0o644))
	err = cart.Attach(cartridgeloader.NewLoader(fn))
	test.ExpectEquality(t, curated.Is(err, cartridge.ROMSizeMismatch), true)
}

func TestNoMBC(t *testing.T) {
	cart, _ := attach(t, makeROM(0x00, 0x00, 0x00))
	test.ExpectEquality(t, cart.ID(), "NONE")
	test.ExpectEquality(t, cart.Read(0x4000), uint8(1))

	// ROM is never written
	cart.Write(0x4000, 0x55)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(1))

	// no RAM
	cart.Write(0xa000, 0x55)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xff))

	cart, _ = attach(t, makeROM(0x08, 0x00, 0x02))
	cart.Write(0xa000, 0x55)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x55))
}

func TestMBC1BankZeroAliasing(t *testing.T) {
	cart, _ := attach(t, makeROM(0x01, 0x02, 0x00))
	test.ExpectEquality(t, cart.ID(), "MBC1")

	// bank 1 at start
	test.ExpectEquality(t, cart.Read(0x4000), uint8(1))

	cart.Write(0x2000, 0x03)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(3))
	test.ExpectEquality(t, cart.Read(0x4001), uint8(0xfc))

	// zero selects bank 1
	cart.Write(0x2000, 0x00)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(1))

	// 8 banks. 13 wraps to 5
	cart.Write(0x3fff, 13)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(5))

	// 0x20 is zero in the five bit register
	cart.Write(0x2000, 0x20)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(1))
}

func TestMBC1UpperBits(t *testing.T) {
	// 2MB cartridge
	cart, _ := attach(t, makeROM(0x01, 0x06, 0x00))
	test.ExpectEquality(t, cart.GetMapper().NumBanks(), 128)

	cart.Write(0x2000, 0x02)
	cart.Write(0x4000, 0x01)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0x22))

	// mode 0 keeps bank 0 at 0x0000
	test.ExpectEquality(t, cart.Read(0x0000), uint8(0))

	// mode 1 maps bank 0x20 at 0x0000
	cart.Write(0x6000, 0x01)
	test.ExpectEquality(t, cart.Read(0x0000), uint8(0x20))
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0x22))
}

func TestMBC1RAM(t *testing.T) {
	cart, _ := attach(t, makeROM(0x02, 0x01, 0x03))

	// disabled RAM reads 0xff and ignores writes
	cart.Write(0xa000, 0x12)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xff))

	// enable code is 0x0a in the lower nibble
	cart.Write(0x0000, 0x1a)
	cart.Write(0xa000, 0x12)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x12))

	cart.Write(0x0000, 0x0b)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xff))
	cart.Write(0x0000, 0x0a)

	// RAM bank selection only in mode 1
	cart.Write(0x4000, 0x02)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x12))
	cart.Write(0x6000, 0x01)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x00))
	cart.Write(0xa000, 0x34)
	ram := test.DemandImplements[mapper.CartRAMbus](t, cart.GetMapper()).GetRAM()
	test.ExpectEquality(t, len(ram), 0x8000)
	test.ExpectEquality(t, ram[2*cartridge.RAMBankSize], uint8(0x34))
	cart.Write(0x4000, 0x00)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x12))
}

func TestMBC2(t *testing.T) {
	cart, _ := attach(t, makeROM(0x05, 0x03, 0x00))
	test.ExpectEquality(t, cart.ID(), "MBC2")

	// bit 8 clear is RAM enable
	cart.Write(0x0000, 0x0a)
	cart.Write(0xa000, 0x5c)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xfc))

	// RAM is mirrored every 512 bytes
	test.ExpectEquality(t, cart.Read(0xa200), uint8(0xfc))
	test.ExpectEquality(t, cart.Read(0xbe00), uint8(0xfc))

	// bit 8 set is ROM bank
	cart.Write(0x0100, 0x05)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(5))
	cart.Write(0x0100, 0x00)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(1))

	// writing ROM bank value does not affect RAM enable
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xfc))
	cart.Write(0x0000, 0x00)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xff))
}

func TestBatteryRoundTrip(t *testing.T) {
	rom := makeROM(0x03, 0x01, 0x03)
	cart, fn := attach(t, rom)
	test.DemandSuccess(t, cart.Battery() != nil)

	cart.Write(0x0000, 0x0a)
	cart.Write(0x6000, 0x01)
	for bank := uint8(0); bank < 4; bank++ {
		cart.Write(0x4000, bank)
		for i := uint16(0); i < 16; i++ {
			cart.Write(0xa000+i, bank<<4|uint8(i))
		}
	}
	test.DemandSuccess(t, cart.Eject())

	info, err := os.Stat(filepath.Join(filepath.Dir(fn), "test.sav"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.Size(), int64(0x8000))

	test.DemandSuccess(t, cart.Attach(cartridgeloader.NewLoader(fn)))
	cart.Write(0x0000, 0x0a)
	cart.Write(0x6000, 0x01)
	for bank := uint8(0); bank < 4; bank++ {
		cart.Write(0x4000, bank)
		for i := uint16(0); i < 16; i++ {
			test.ExpectEquality(t, cart.Read(0xa000+i), bank<<4|uint8(i))
		}
	}
}
