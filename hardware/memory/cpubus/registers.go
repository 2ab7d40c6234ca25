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

package cpubus

import "fmt"

// Addresses of registers that are referred to by more than one package.
const (
	DIV = uint16(0xff04)
	IF  = uint16(0xff0f)
	IE  = uint16(0xffff)
	DMA = uint16(0xff46)
)

var registerNames = map[uint16]string{
	0xff00: "P1",
	0xff01: "SB",
	0xff02: "SC",
	0xff04: "DIV",
	0xff05: "TIMA",
	0xff06: "TMA",
	0xff07: "TAC",
	0xff0f: "IF",
	0xff10: "NR10",
	0xff11: "NR11",
	0xff12: "NR12",
	0xff13: "NR13",
	0xff14: "NR14",
	0xff16: "NR21",
	0xff17: "NR22",
	0xff18: "NR23",
	0xff19: "NR24",
	0xff1a: "NR30",
	0xff1b: "NR31",
	0xff1c: "NR32",
	0xff1d: "NR33",
	0xff1e: "NR34",
	0xff20: "NR41",
	0xff21: "NR42",
	0xff22: "NR43",
	0xff23: "NR44",
	0xff24: "NR50",
	0xff25: "NR51",
	0xff26: "NR52",
	0xff40: "LCDC",
	0xff41: "STAT",
	0xff42: "SCY",
	0xff43: "SCX",
	0xff44: "LY",
	0xff45: "LYC",
	0xff46: "DMA",
	0xff47: "BGP",
	0xff48: "OBP0",
	0xff49: "OBP1",
	0xff4a: "WY",
	0xff4b: "WX",
	0xff4d: "KEY1",
	0xff4f: "VBK",
	0xff50: "BOOT",
	0xff51: "HDMA1",
	0xff52: "HDMA2",
	0xff53: "HDMA3",
	0xff54: "HDMA4",
	0xff55: "HDMA5",
	0xff56: "RP",
	0xff68: "BCPS",
	0xff69: "BCPD",
	0xff6a: "OCPS",
	0xff6b: "OCPD",
	0xff70: "SVBK",
	0xffff: "IE",
}

// RegisterName returns the canonical name of the register at the address. If
// the address is not a named register the address is returned formatted as a
// hexadecimal string.
func RegisterName(address uint16) string {
	if n, ok := registerNames[address]; ok {
		return n
	}
	if address >= 0xff30 && address <= 0xff3f {
		return fmt.Sprintf("WAV%X", address&0x0f)
	}
	return fmt.Sprintf("%#04x", address)
}
