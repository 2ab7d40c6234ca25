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

// Package timer implements the DIV, TIMA, TMA and TAC registers.
//
// DIV is the upper byte of a free running 16 bit counter that advances by
// four every machine cycle. TIMA is incremented whenever the counter bit
// selected by TAC falls from one to zero, as long as the timer is enabled.
//
// When TIMA overflows it reads as zero for one machine cycle. On the
// following cycle it is reloaded from TMA and the timer interrupt is
// requested.
package timer
