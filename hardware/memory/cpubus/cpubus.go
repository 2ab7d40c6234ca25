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

// Package cpubus defines the interface through which the CPU accesses memory
// and the names of the memory mapped registers.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Every memory area implements this interface, as does the memory bus
// itself, which forwards the access to the correct area. Neither operation
// can fail: unmapped or locked addresses return a fixed value and ignore
// writes.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}
