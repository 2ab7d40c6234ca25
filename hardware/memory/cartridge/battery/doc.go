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

// Package battery persists battery backed cartridge RAM to a save file.
//
// The save file is a flat dump of all RAM banks in bank order. It is memory
// mapped and owned exclusively by a worker goroutine. Writes to cartridge RAM
// are posted to an unbounded queue with Persist() so that the emulation never
// waits for file I/O. Close() drains the queue, flushes the mapping and
// releases the file.
package battery
