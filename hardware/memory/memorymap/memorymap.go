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

package memorymap

// Area represents the different areas of memory.
type Area int

// The different memory areas. The I/O space is divided by the component
// that owns each register.
const (
	Cartridge Area = iota
	VRAM
	CartridgeRAM
	WRAM0
	WRAM1
	OAM
	Prohibited
	Joypad
	Serial
	Timer
	InterruptFlag
	Audio
	Video
	DMA
	UnmappedIO
	HRAM
	InterruptEnable
	NumAreas
)

func (a Area) String() string {
	switch a {
	case Cartridge:
		return "Cartridge"
	case VRAM:
		return "VRAM"
	case CartridgeRAM:
		return "Cartridge RAM"
	case WRAM0:
		return "WRAM0"
	case WRAM1:
		return "WRAM1"
	case OAM:
		return "OAM"
	case Prohibited:
		return "Prohibited"
	case Joypad:
		return "Joypad"
	case Serial:
		return "Serial"
	case Timer:
		return "Timer"
	case InterruptFlag:
		return "IF"
	case Audio:
		return "Audio"
	case Video:
		return "Video"
	case DMA:
		return "DMA"
	case UnmappedIO:
		return "Unmapped I/O"
	case HRAM:
		return "HRAM"
	case InterruptEnable:
		return "IE"
	}
	return "undefined"
}

// The origin and memory top for each area of memory.
const (
	OriginCart       = uint16(0x0000)
	MemtopCart       = uint16(0x7fff)
	OriginVRAM       = uint16(0x8000)
	MemtopVRAM       = uint16(0x9fff)
	OriginCartRAM    = uint16(0xa000)
	MemtopCartRAM    = uint16(0xbfff)
	OriginWRAM0      = uint16(0xc000)
	MemtopWRAM0      = uint16(0xcfff)
	OriginWRAM1      = uint16(0xd000)
	MemtopWRAM1      = uint16(0xdfff)
	OriginEcho       = uint16(0xe000)
	MemtopEcho       = uint16(0xfdff)
	OriginOAM        = uint16(0xfe00)
	MemtopOAM        = uint16(0xfe9f)
	OriginProhibited = uint16(0xfea0)
	MemtopProhibited = uint16(0xfeff)
	OriginIO         = uint16(0xff00)
	MemtopIO         = uint16(0xff7f)
	OriginHRAM       = uint16(0xff80)
	MemtopHRAM       = uint16(0xfffe)
)

// InterruptEnableRegister is the single address of the IE register.
const InterruptEnableRegister = uint16(0xffff)

// EchoOffset is the distance between echo RAM and the work RAM it mirrors.
const EchoOffset = OriginEcho - OriginWRAM0

// ioArea classifies an address in the I/O register space.
func ioArea(address uint16) Area {
	switch {
	case address == 0xff00:
		return Joypad
	case address == 0xff01 || address == 0xff02:
		return Serial
	case address >= 0xff04 && address <= 0xff07:
		return Timer
	case address == 0xff0f:
		return InterruptFlag
	case address >= 0xff10 && address <= 0xff3f:
		return Audio
	case address == 0xff46:
		return DMA
	case address >= 0xff40 && address <= 0xff4b:
		return Video
	}
	return UnmappedIO
}

// MapAddress translates the address argument from mirror space to primary
// space and returns the area it belongs to. Echo RAM addresses are returned
// as the WRAM address they mirror. All other addresses are unchanged.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopCart:
		return address, Cartridge
	case address <= MemtopVRAM:
		return address, VRAM
	case address <= MemtopCartRAM:
		return address, CartridgeRAM
	case address <= MemtopWRAM0:
		return address, WRAM0
	case address <= MemtopWRAM1:
		return address, WRAM1
	case address <= MemtopEcho:
		return MapAddress(address - EchoOffset)
	case address <= MemtopOAM:
		return address, OAM
	case address <= MemtopProhibited:
		return address, Prohibited
	case address <= MemtopIO:
		return address, ioArea(address)
	case address <= MemtopHRAM:
		return address, HRAM
	}
	return address, InterruptEnable
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
