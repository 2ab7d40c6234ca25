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

// Package cpu emulates the SM83 CPU found in the DMG. The register logic is
// implemented by the Register type in the registers sub-package and the
// instruction set is defined in the instructions sub-package.
//
// The CPU is stepped one instruction at a time with ExecuteInstruction(),
// which returns the number of T-cycles the instruction took. It is the
// responsibility of the caller to advance the rest of the system by the same
// number of cycles before executing the next instruction. Interrupt servicing
// is a separate call, HandleInterrupt(), which should be made before every
// instruction.
//
// Instructions are decoded from the bit fields of the opcode rather than
// from a table of functions. The fields follow the usual convention:
//
//	x = bits 7-6, y = bits 5-3, z = bits 2-0
//	p = bits 5-4, q = bit 3
//
// Opcodes that do not fit the regular grammar are matched whole before the
// grammar is applied.
package cpu
