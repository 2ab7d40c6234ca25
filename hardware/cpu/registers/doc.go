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

// Package registers implements the registers of the CPU.
//
// The 8 bit Register type implements the arithmetic and bit operations of the
// CPU. Each operation returns the half-carry and carry conditions it produced
// and the CPU decides which of them affect the flags register. The Pair type
// combines two 8 bit registers into a 16 bit register and the Counter type
// is used for the stack pointer and program counter.
package registers
