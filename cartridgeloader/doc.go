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

// Package cartridgeloader is used to read cartridge data from the file system
// or from a web address, so that it can be attached to the console.
//
//	cl := cartridgeloader.NewLoader("tetris.gb")
//	err := cl.Load()
//
// After a successful Load() the Data field contains the ROM and the Hash
// field contains the SHA1 of that data. If the Hash field was set before the
// call to Load() then the loaded data must match it.
package cartridgeloader
