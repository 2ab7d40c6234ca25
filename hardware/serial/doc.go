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

// Package serial implements the SB and SC registers of the serial port.
//
// There is no link partner. Transfers using the internal clock shift out one
// bit every 128 machine cycles and shift in a one bit each time. When the
// eighth bit has been shifted the transfer flag in SC is cleared and the
// serial interrupt is requested. Transfers using an external clock never
// complete.
//
// Each completed byte is written to an optional io.Writer. Many test ROMs
// report their results this way.
package serial
