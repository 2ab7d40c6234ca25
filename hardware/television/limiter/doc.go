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

// Package limiter paces the frame driver to the refresh rate of the LCD and
// measures the frame rate actually achieved.
//
// The LCD refreshes every 70224 clock cycles of the 4194304Hz system clock,
// which is slightly under 60Hz. The limit can be scaled with SetSpeed().
package limiter
