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

// Package instructions defines the instruction set of the CPU. The
// definitions are built from the bit fields of the opcode in the same way that
// the CPU decodes them, with the unprefixed and the 0xcb prefixed opcodes held
// in separate tables.
//
// Mnemonics use placeholders for the operand: n for an 8 bit immediate value,
// nn for a 16 bit immediate value and e for a signed 8 bit offset.
package instructions
