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

// Package cartridge decodes the cartridge header and creates the mapper for
// the cartridge type. The mapper is the only part of the cartridge that the
// memory bus sees.
//
// Supported mappers are the flat 32KB ROM (with or without RAM), MBC1 and
// MBC2. Battery backed RAM is persisted to a save file next to the ROM file
// by the battery package.
package cartridge
