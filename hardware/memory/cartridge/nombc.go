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

	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge/mapper"
)

// ram is the cartridge RAM shared by the mapper implementations.
type ram struct {
	data      []uint8
	persister mapper.Persister
}

func newRAM(size int) ram {
	return ram{data: make([]uint8, size)}
}

// GetRAM implements the mapper.CartRAMbus interface.
func (r *ram) GetRAM() []uint8 {
	return r.data
}

// SetPersister implements the mapper.CartBattery interface.
func (r *ram) SetPersister(p mapper.Persister) {
	r.persister = p
}

func (r *ram) write(offset int, data uint8) {
	r.data[offset] = data
	if r.persister != nil {
		r.persister.Persist(offset, data)
	}
}

// splitROM divides the ROM data into banks. Missing data at the end of the
// image is an error.
func splitROM(data []uint8, numBanks int) ([][]uint8, error) {
	if len(data) < numBanks*BankSize {
		return nil, fmt.Errorf("%d banks require %d bytes, have %d", numBanks, numBanks*BankSize, len(data))
	}
	banks := make([][]uint8, numBanks)
	for i := range banks {
		banks[i] = data[i*BankSize : (i+1)*BankSize]
	}
	return banks, nil
}

// noMBC is a 32KB cartridge with no banking and optional RAM.
type noMBC struct {
	rom []uint8
	ram
}

func newNoMBC(data []uint8, ramSize int) (*noMBC, error) {
	if len(data) < 2*BankSize {
		return nil, fmt.Errorf("flat cartridge requires %d bytes, have %d", 2*BankSize, len(data))
	}
	return &noMBC{
		rom: data[:2*BankSize],
		ram: newRAM(ramSize),
	}, nil
}

// ID implements the mapper.CartMapper interface.
func (cart *noMBC) ID() string {
	return "NONE"
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *noMBC) MappedBanks() string {
	return "ROM 0-1"
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *noMBC) NumBanks() int {
	return 2
}

// Reset implements the mapper.CartMapper interface.
func (cart *noMBC) Reset() {
}

// Read implements the mapper.CartMapper interface.
func (cart *noMBC) Read(addr uint16) uint8 {
	if addr < 0x8000 {
		return cart.rom[addr]
	}
	if addr >= 0xa000 && addr < 0xc000 {
		offset := int(addr - 0xa000)
		if offset < len(cart.data) {
			return cart.data[offset]
		}
	}
	return 0xff
}

// Write implements the mapper.CartMapper interface.
func (cart *noMBC) Write(addr uint16, data uint8) {
	if addr >= 0xa000 && addr < 0xc000 {
		offset := int(addr - 0xa000)
		if offset < len(cart.data) {
			cart.write(offset, data)
		}
	}
}
