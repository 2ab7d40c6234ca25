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

package apu

// Register addresses.
const (
	NR10 = 0xff10
	NR11 = 0xff11
	NR12 = 0xff12
	NR13 = 0xff13
	NR14 = 0xff14
	NR21 = 0xff16
	NR22 = 0xff17
	NR23 = 0xff18
	NR24 = 0xff19
	NR30 = 0xff1a
	NR31 = 0xff1b
	NR32 = 0xff1c
	NR33 = 0xff1d
	NR34 = 0xff1e
	NR41 = 0xff20
	NR42 = 0xff21
	NR43 = 0xff22
	NR44 = 0xff23
	NR50 = 0xff24
	NR51 = 0xff25
	NR52 = 0xff26

	WaveOrigin = 0xff30
	WaveMemtop = 0xff3f
)

const (
	registerOrigin = NR10
	numRegisters   = WaveOrigin - registerOrigin
)

// bits that always read as 1, indexed from NR10. unused addresses read 0xff
var readMask = [numRegisters]uint8{
	0x80, 0x3f, 0x00, 0xff, 0xbf, // NR10 - NR14
	0xff, 0x3f, 0x00, 0xff, 0xbf, // unused, NR21 - NR24
	0x7f, 0xff, 0x9f, 0xff, 0xbf, // NR30 - NR34
	0xff, 0xff, 0x00, 0x00, 0xbf, // unused, NR41 - NR44
	0x00, 0x00, 0x70, // NR50 - NR52
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// register values left by the boot ROM, indexed from NR10.
var postBoot = [numRegisters]uint8{
	0x80, 0xbf, 0xf3, 0x00, 0xbf,
	0x00, 0x3f, 0x00, 0x00, 0xbf,
	0x7f, 0xff, 0x9f, 0x00, 0xbf,
	0x00, 0xff, 0x00, 0x00, 0xbf,
	0x77, 0xf3,
}

// bits of the NRx4 registers.
const (
	trigger      = 0x80
	lengthEnable = 0x40
)

// bits of NR52.
const (
	powerBit = 0x80
)
