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

// Package memory implements the memory bus. Every CPU access is classified
// by the memorymap package and forwarded to the component that owns the
// address. Work RAM and high RAM are owned by the bus itself, as is the OAM
// DMA controller.
//
// OAM DMA copies one byte every four dots. The bus must be ticked every dot
// with TickDMA() for the transfer to make progress.
package memory
