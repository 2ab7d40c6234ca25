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

// ejected is the mapper used when no cartridge is attached. The data bus is
// left floating, which reads as 0xff.
type ejected struct{}

// ID implements the mapper.CartMapper interface.
func (cart ejected) ID() string {
	return "EJECTED"
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart ejected) MappedBanks() string {
	return "-"
}

// NumBanks implements the mapper.CartMapper interface.
func (cart ejected) NumBanks() int {
	return 0
}

// Reset implements the mapper.CartMapper interface.
func (cart ejected) Reset() {
}

// Read implements the mapper.CartMapper interface.
func (cart ejected) Read(_ uint16) uint8 {
	return 0xff
}

// Write implements the mapper.CartMapper interface.
func (cart ejected) Write(_ uint16, _ uint8) {
}
