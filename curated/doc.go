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

// Package curated provides the error type used throughout the emulator.
//
// A curated error is created with Errorf(). The pattern argument doubles as an
// identifier for the error, meaning that callers can ask whether an error was
// created from a particular pattern without resorting to string matching of
// the formatted message:
//
//	const UnsupportedRAMSize = "cartridge: unsupported RAM size code (%#02x)"
//
//	err := curated.Errorf(UnsupportedRAMSize, code)
//	if curated.Is(err, UnsupportedRAMSize) {
//		...
//	}
//
// Has() is the same as Is() except that it searches the entire chain. A
// curated error is wrapped by passing it as one of the values to another call
// to Errorf():
//
//	err = curated.Errorf("gameboy: %v", err)
//	curated.Has(err, UnsupportedRAMSize) // true
//	curated.Is(err, UnsupportedRAMSize) // false
//
// The Error() function normalises the message by removing adjacent duplicate
// prefixes. For example, "cartridge: cartridge: bad header" is returned as
// "cartridge: bad header".
package curated
