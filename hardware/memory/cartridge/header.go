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

package cartridge

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
)

// Sentinal errors for header decoding.
const (
	ROMTooShort              = "cartridge: ROM too short (%d bytes)"
	ROMSizeMismatch          = "cartridge: ROM is %d bytes but header declares %d"
	UnsupportedROMSize       = "cartridge: unsupported ROM size code (%#02x)"
	UnsupportedRAMSize       = "cartridge: unsupported RAM size code (%#02x)"
	UnsupportedCartridgeType = "cartridge: unsupported cartridge type (%#02x)"
)

// offsets of the header fields.
const (
	headerStart       = 0x0134
	titleEnd          = 0x0144
	manufacturerStart = 0x013f
	manufacturerEnd   = 0x0143
	colorFlag         = 0x0143
	newLicensee       = 0x0144
	sgbFlag           = 0x0146
	cartTypeAddr      = 0x0147
	romSizeAddr       = 0x0148
	ramSizeAddr       = 0x0149
	destinationAddr   = 0x014a
	oldLicensee       = 0x014b
	versionAddr       = 0x014c
	headerChecksum    = 0x014d
	globalChecksum    = 0x014e
	headerEnd         = 0x0150
)

// old licensee value indicating that the new licensee code should be used.
const useNewLicensee = 0x33

// ColorSupport indicates whether the cartridge is intended for the colour
// console.
type ColorSupport int

// List of valid ColorSupport values.
const (
	Monochrome ColorSupport = iota
	ColorEnhanced
	ColorOnly
)

func (c ColorSupport) String() string {
	switch c {
	case ColorEnhanced:
		return "colour enhanced"
	case ColorOnly:
		return "colour only"
	}
	return "monochrome"
}

// Destination is the region the cartridge was sold in.
type Destination int

// List of valid Destination values.
const (
	Japan Destination = iota
	Overseas
)

func (d Destination) String() string {
	if d == Overseas {
		return "overseas"
	}
	return "japan"
}

// BankSize is the size of a ROM bank.
const BankSize = 0x4000

// RAMBankSize is the size of a cartridge RAM bank.
const RAMBankSize = 0x2000

// Header is the decoded cartridge header.
type Header struct {
	Title        string
	Manufacturer string
	Color        ColorSupport
	Licensee     string
	SGB          bool

	CartType uint8
	ROMSize  int
	ROMBanks int
	RAMSize  int
	RAMBanks int

	Destination    Destination
	Version        uint8
	HeaderChecksum uint8
	GlobalChecksum uint16
}

func (hdr Header) String() string {
	return fmt.Sprintf("%s [%s] %s, %dKB ROM, %dKB RAM", hdr.Title, CartTypeName(hdr.CartType),
		hdr.Licensee, hdr.ROMSize/1024, hdr.RAMSize/1024)
}

// printable returns a string with everything after the first NUL removed and
// non-printable characters replaced.
func printable(b []byte) string {
	s := strings.Builder{}
	for _, c := range b {
		if c == 0x00 {
			break
		}
		if c < 0x20 || c > 0x7e {
			s.WriteRune('?')
			continue
		}
		s.WriteByte(c)
	}
	return strings.TrimSpace(s.String())
}

// DecodeHeader decodes the header of the ROM image. The ROM must be at least
// large enough to contain the header. The checksums are not verified.
func DecodeHeader(rom []uint8) (Header, error) {
	var hdr Header

	if len(rom) < headerEnd {
		return hdr, curated.Errorf(ROMTooShort, len(rom))
	}

	hdr.Title = strings.ToUpper(printable(rom[headerStart:titleEnd]))
	hdr.Manufacturer = strings.ToUpper(printable(rom[manufacturerStart:manufacturerEnd]))

	switch rom[colorFlag] {
	case 0x80:
		hdr.Color = ColorEnhanced
	case 0xc0:
		hdr.Color = ColorOnly
	default:
		hdr.Color = Monochrome
	}

	if rom[oldLicensee] == useNewLicensee {
		hdr.Licensee = lookupNewLicensee(rom[newLicensee], rom[newLicensee+1])
	} else {
		hdr.Licensee = lookupOldLicensee(rom[oldLicensee])
	}

	hdr.SGB = rom[sgbFlag] == 0x03
	hdr.CartType = rom[cartTypeAddr]

	n := rom[romSizeAddr]
	if n > 8 {
		return hdr, curated.Errorf(UnsupportedROMSize, n)
	}
	hdr.ROMSize = 0x8000 << n
	hdr.ROMBanks = 2 << n

	switch rom[ramSizeAddr] {
	case 0x00:
		hdr.RAMSize, hdr.RAMBanks = 0, 0
	case 0x02:
		hdr.RAMSize, hdr.RAMBanks = 0x2000, 1
	case 0x03:
		hdr.RAMSize, hdr.RAMBanks = 0x8000, 4
	case 0x04:
		hdr.RAMSize, hdr.RAMBanks = 0x20000, 16
	case 0x05:
		hdr.RAMSize, hdr.RAMBanks = 0x10000, 8
	default:
		return hdr, curated.Errorf(UnsupportedRAMSize, rom[ramSizeAddr])
	}

	if rom[destinationAddr]&0x01 == 0x01 {
		hdr.Destination = Overseas
	}
	hdr.Version = rom[versionAddr]
	hdr.HeaderChecksum = rom[headerChecksum]
	hdr.GlobalChecksum = binary.BigEndian.Uint16(rom[globalChecksum:])

	return hdr, nil
}

// ComputeHeaderChecksum calculates the header checksum in the same way as the
// boot ROM. The result can be compared with the HeaderChecksum field of the
// decoded header.
func ComputeHeaderChecksum(rom []uint8) (uint8, error) {
	if len(rom) < headerEnd {
		return 0, curated.Errorf(ROMTooShort, len(rom))
	}
	var x uint8
	for _, b := range rom[headerStart:headerChecksum] {
		x = x - b - 1
	}
	return x, nil
}

// ComputeGlobalChecksum calculates the sum of every byte in the ROM except
// for the two bytes of the global checksum itself.
func ComputeGlobalChecksum(rom []uint8) uint16 {
	var x uint16
	for i, b := range rom {
		if i == globalChecksum || i == globalChecksum+1 {
			continue
		}
		x += uint16(b)
	}
	return x
}

// CartTypeName returns a descriptive name for the cartridge type byte.
func CartTypeName(t uint8) string {
	switch t {
	case 0x00:
		return "ROM ONLY"
	case 0x01:
		return "MBC1"
	case 0x02:
		return "MBC1+RAM"
	case 0x03:
		return "MBC1+RAM+BATTERY"
	case 0x05:
		return "MBC2"
	case 0x06:
		return "MBC2+BATTERY"
	case 0x08:
		return "ROM+RAM"
	case 0x09:
		return "ROM+RAM+BATTERY"
	case 0x0f, 0x10, 0x11, 0x12, 0x13:
		return "MBC3"
	case 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e:
		return "MBC5"
	}
	return fmt.Sprintf("%#02x", t)
}
