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

// Package gui is the root package of the GUI implementations. It defines the
// interface that a front end must implement and the colours used to display
// the four shades of the monochrome screen.
//
// Sub-packages implement the front ends: sdlplay (an SDL window), termplay
// (a terminal) and the audio sinks sdlaudio and paudio.
package gui
