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

	"github.com/gopherdmg/gopherdmg/cartridgeloader"
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge/battery"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge/mapper"
	"github.com/gopherdmg/gopherdmg/logger"
)

// Sentinal error for mapper creation.
const MapperError = "cartridge: %s: %v"

// Cartridge defines the information and operations for a cartridge.
type Cartridge struct {
	Filename string
	Hash     string
	Header   Header

	mapper  mapper.CartMapper
	battery *battery.Battery
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The cartridge is initially ejected.
func NewCartridge() *Cartridge {
	cart := &Cartridge{}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	if cart.IsEjected() {
		return "ejected"
	}
	return fmt.Sprintf("%s (%s)", cart.Header, cart.mapper.MappedBanks())
}

// ID returns the ID of the mapper.
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// GetMapper returns the current mapper.
func (cart *Cartridge) GetMapper() mapper.CartMapper {
	return cart.mapper
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	_, ok := cart.mapper.(ejected)
	return ok
}

// Battery returns the persistence worker for the cartridge. Returns nil if
// the cartridge has no battery or if the save file could not be opened.
func (cart *Cartridge) Battery() *battery.Battery {
	return cart.battery
}

// Eject removes the cartridge. The save file of a battery backed cartridge is
// flushed and closed.
func (cart *Cartridge) Eject() error {
	var err error
	if cart.battery != nil {
		err = cart.battery.Close()
		cart.battery = nil
	}
	cart.Filename = ""
	cart.Hash = ""
	cart.Header = Header{}
	cart.mapper = ejected{}
	return err
}

// Attach the cartridge data from the loader. Any previously attached
// cartridge is ejected first.
func (cart *Cartridge) Attach(cl cartridgeloader.Loader) error {
	if err := cart.Eject(); err != nil {
		logger.Log(logger.Allow, "cartridge", err)
	}

	if err := cl.Load(); err != nil {
		return err
	}

	hdr, err := DecodeHeader(cl.Data)
	if err != nil {
		return err
	}

	m, hasBattery, err := newMapper(hdr, cl.Data)
	if err != nil {
		return err
	}

	cart.Filename = cl.Filename
	cart.Hash = cl.Hash
	cart.Header = hdr
	cart.mapper = m

	logger.Logf(logger.Allow, "cartridge", "%s: %s", cl.ShortName(), hdr)

	if hasBattery {
		cart.attachBattery(cl)
	}

	return nil
}

// attachBattery opens the save file for the cartridge. failure to do so is not
// fatal, the cartridge RAM will not be persisted.
func (cart *Cartridge) attachBattery(cl cartridgeloader.Loader) {
	mb, ok := cart.mapper.(mapper.CartBattery)
	if !ok || len(mb.GetRAM()) == 0 {
		return
	}

	if !cl.IsLocal() {
		logger.Logf(logger.Allow, "cartridge", "not persisting RAM for remote cartridge %s", cl.ShortName())
		return
	}

	b, err := battery.Open(cl.SavePath(), mb.GetRAM())
	if err != nil {
		logger.Log(logger.Allow, "cartridge", err)
		return
	}

	mb.SetPersister(b)
	cart.battery = b
}

// newMapper creates the mapper for the cartridge type in the header. The second
// return value is true if the cartridge has battery backed RAM.
func newMapper(hdr Header, data []uint8) (mapper.CartMapper, bool, error) {
	if len(data) < hdr.ROMSize {
		return nil, false, curated.Errorf(ROMSizeMismatch, len(data), hdr.ROMSize)
	}

	var m mapper.CartMapper
	var err error
	var hasBattery bool

	switch hdr.CartType {
	case 0x00:
		m, err = newNoMBC(data, 0)
	case 0x08, 0x09:
		m, err = newNoMBC(data, min(hdr.RAMSize, RAMBankSize))
		hasBattery = hdr.CartType == 0x09
	case 0x01, 0x02, 0x03:
		ramSize, ramBanks := 0, 0
		if hdr.CartType != 0x01 {
			ramSize, ramBanks = hdr.RAMSize, hdr.RAMBanks
		}
		m, err = newMBC1(data, hdr.ROMBanks, ramSize, ramBanks)
		hasBattery = hdr.CartType == 0x03
	case 0x05, 0x06:
		m, err = newMBC2(data, hdr.ROMBanks)
		hasBattery = hdr.CartType == 0x06
	default:
		return nil, false, curated.Errorf(UnsupportedCartridgeType, hdr.CartType)
	}

	if err != nil {
		return nil, false, curated.Errorf(MapperError, CartTypeName(hdr.CartType), err)
	}

	return m, hasBattery, nil
}

// Reset the banking registers of the mapper.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset()
}

// Read implements the cpubus.Memory interface.
func (cart *Cartridge) Read(addr uint16) uint8 {
	return cart.mapper.Read(addr)
}

// Write implements the cpubus.Memory interface.
func (cart *Cartridge) Write(addr uint16, data uint8) {
	cart.mapper.Write(addr, data)
}
