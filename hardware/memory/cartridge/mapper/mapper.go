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

// Package mapper defines the interfaces implemented by cartridge mappers.
// Keeping the interfaces separate from the implementations means that
// packages that only need to inspect a cartridge do not depend on the
// cartridge package.
package mapper

// CartMapper implementations hold the data from the loaded ROM and keep track
// of which banks are mapped into the ROM and RAM windows. Addresses passed to
// Read() and Write() are CPU addresses in the ranges 0x0000 to 0x7fff and
// 0xa000 to 0xbfff.
type CartMapper interface {
	ID() string
	MappedBanks() string
	NumBanks() int

	// reset the banking registers. RAM contents are not affected
	Reset()

	Read(addr uint16) uint8
	Write(addr uint16, data uint8)
}

// CartRAMbus is implemented by mappers that have cartridge RAM. The returned
// slice is the live RAM, with banks concatenated in bank order, and should
// not be modified except to initialise it from a save file.
type CartRAMbus interface {
	GetRAM() []uint8
}

// Persister receives every write to battery backed RAM. The offset is into
// the flat RAM as returned by CartRAMbus.
type Persister interface {
	Persist(offset int, data uint8)
}

// CartBattery is implemented by mappers that support battery backed RAM.
type CartBattery interface {
	CartRAMbus
	SetPersister(Persister)
}
