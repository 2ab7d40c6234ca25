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

package cpu

// IME is the interrupt master enable flag. It has three states because the
// EI instruction takes effect after the instruction that follows it.
type IME int

// List of IME states.
const (
	IMEDisabled IME = iota
	IMEPending
	IMEEnabled
)

func (ime IME) String() string {
	switch ime {
	case IMEDisabled:
		return "disabled"
	case IMEPending:
		return "pending"
	case IMEEnabled:
		return "enabled"
	}
	return "unknown"
}

// step is the state transition made at the start of every instruction.
func (ime IME) step() IME {
	if ime == IMEPending {
		return IMEEnabled
	}
	return ime
}
