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

// mbc1 supports up to 2MB of ROM and 32KB of RAM.
//
// Register ranges:
//
//	0x0000 - 0x1fff	RAM enable (0x0a in lower nibble)
//	0x2000 - 0x3fff	lower five bits of ROM bank (zero selects one)
//	0x4000 - 0x5fff	RAM bank or upper two bits of ROM bank
//	0x6000 - 0x7fff	banking mode
//
// In mode 0 the upper bits only affect the 0x4000 window. In mode 1 they
// also select the bank in the 0x0000 window and they select the RAM bank.
type mbc1 struct {
	banks [][]uint8
	ram
	ramBanks int

	ramEnabled bool
	lower      uint8
	upper      uint8
	mode       uint8
}

func newMBC1(data []uint8, numBanks int, ramSize int, ramBanks int) (*mbc1, error) {
	banks, err := splitROM(data, numBanks)
	if err != nil {
		return nil, err
	}
	cart := &mbc1{
		banks:    banks,
		ram:      newRAM(ramSize),
		ramBanks: ramBanks,
	}
	cart.Reset()
	return cart, nil
}

// ID implements the mapper.CartMapper interface.
func (cart *mbc1) ID() string {
	return "MBC1"
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *mbc1) MappedBanks() string {
	s := fmt.Sprintf("ROM %d/%d", cart.lowBank(), cart.highBank())
	if cart.ramBanks > 0 {
		if cart.ramEnabled {
			s = fmt.Sprintf("%s RAM %d", s, cart.ramBank())
		} else {
			s = fmt.Sprintf("%s RAM disabled", s)
		}
	}
	return s
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *mbc1) NumBanks() int {
	return len(cart.banks)
}

// Reset implements the mapper.CartMapper interface.
func (cart *mbc1) Reset() {
	cart.ramEnabled = false
	cart.lower = 1
	cart.upper = 0
	cart.mode = 0
}

// bank mapped into the 0x0000 window.
func (cart *mbc1) lowBank() int {
	if cart.mode == 0 {
		return 0
	}
	return int(cart.upper<<5) % len(cart.banks)
}

// bank mapped into the 0x4000 window.
func (cart *mbc1) highBank() int {
	return int(cart.upper<<5|cart.lower) % len(cart.banks)
}

func (cart *mbc1) ramBank() int {
	if cart.mode == 0 || cart.ramBanks == 0 {
		return 0
	}
	return int(cart.upper) % cart.ramBanks
}

// ramOffset returns the offset into RAM for the address or false if the RAM
// is not accessible.
func (cart *mbc1) ramOffset(addr uint16) (int, bool) {
	if !cart.ramEnabled || len(cart.data) == 0 {
		return 0, false
	}
	offset := cart.ramBank()*RAMBankSize + int(addr-0xa000)
	if offset >= len(cart.data) {
		return 0, false
	}
	return offset, true
}

// Read implements the mapper.CartMapper interface.
func (cart *mbc1) Read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		return cart.banks[cart.lowBank()][addr]
	case addr < 0x8000:
		return cart.banks[cart.highBank()][addr-0x4000]
	case addr >= 0xa000 && addr < 0xc000:
		if offset, ok := cart.ramOffset(addr); ok {
			return cart.data[offset]
		}
	}
	return 0xff
}

// Write implements the mapper.CartMapper interface.
func (cart *mbc1) Write(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		cart.ramEnabled = data&0x0f == 0x0a
	case addr < 0x4000:
		cart.lower = data & 0x1f
		if cart.lower == 0 {
			cart.lower = 1
		}
	case addr < 0x6000:
		cart.upper = data & 0x03
	case addr < 0x8000:
		cart.mode = data & 0x01
	case addr >= 0xa000 && addr < 0xc000:
		if offset, ok := cart.ramOffset(addr); ok {
			cart.write(offset, data)
		}
	}
}
