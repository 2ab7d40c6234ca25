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

// Package logger is the central logging facility for the emulator. Use of the
// package level functions is preferred (Log() and Logf()) but private loggers
// can be created with NewLogger(). This is useful for testing.
//
// Log entries are made up of a tag and a detail string. The tag is
// conventionally the name of the package making the entry:
//
//	logger.Log(logger.Allow, "mbc1", "ROM bank select out of range")
//
// Consecutive entries that are identical are collapsed into a single entry
// with a repeat count.
//
// The Permission interface allows the environment making the request to
// decide whether the entry should be made. The Allow value will always allow
// the entry.
package logger
