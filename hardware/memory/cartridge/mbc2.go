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
	"fmt"
)

// size of the RAM built into the MBC2 chip. each location is four bits.
const mbc2RAMSize = 512

// mbc2 supports up to 256KB of ROM and has 512 x 4 bits of built in RAM.
//
// Writes in the range 0x0000 to 0x3fff go to the RAM enable register when
// bit 8 of the address is clear and to the ROM bank register when it is set.
type mbc2 struct {
	banks [][]uint8
	ram

	ramEnabled bool
	bank       uint8
}

func newMBC2(data []uint8, numBanks int) (*mbc2, error) {
	banks, err := splitROM(data, numBanks)
	if err != nil {
		return nil, err
	}
	cart := &mbc2{
		banks: banks,
		ram:   newRAM(mbc2RAMSize),
	}
	cart.Reset()
	return cart, nil
}

// ID implements the mapper.CartMapper interface.
func (cart *mbc2) ID() string {
	return "MBC2"
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *mbc2) MappedBanks() string {
	if cart.ramEnabled {
		return fmt.Sprintf("ROM 0/%d RAM enabled", cart.highBank())
	}
	return fmt.Sprintf("ROM 0/%d RAM disabled", cart.highBank())
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *mbc2) NumBanks() int {
	return len(cart.banks)
}

// Reset implements the mapper.CartMapper interface.
func (cart *mbc2) Reset() {
	cart.ramEnabled = false
	cart.bank = 1
}

func (cart *mbc2) highBank() int {
	return int(cart.bank) % len(cart.banks)
}

// Read implements the mapper.CartMapper interface.
func (cart *mbc2) Read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		return cart.banks[0][addr]
	case addr < 0x8000:
		return cart.banks[cart.highBank()][addr-0x4000]
	case addr >= 0xa000 && addr < 0xc000:
		if cart.ramEnabled {
			return 0xf0 | cart.data[addr&0x01ff]
		}
	}
	return 0xff
}

// Write implements the mapper.CartMapper interface.
func (cart *mbc2) Write(addr uint16, data uint8) {
	switch {
	case addr < 0x4000:
		if addr&0x0100 == 0 {
			cart.ramEnabled = data&0x0f == 0x0a
		} else {
			cart.bank = data & 0x0f
			if cart.bank == 0 {
				cart.bank = 1
			}
		}
	case addr >= 0xa000 && addr < 0xc000:
		if cart.ramEnabled {
			cart.write(int(addr&0x01ff), data&0x0f)
		}
	}
}
