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

package serial

import (
	"fmt"
	"io"

	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
	"github.com/gopherdmg/gopherdmg/logger"
)

// Register addresses.
const (
	SB = 0xff01
	SC = 0xff02
)

// number of machine cycles for each bit of a transfer.
const cyclesPerBit = 128

// bits of the SC register.
const (
	transferStart = 0x80
	internalClock = 0x01
)

// Serial implements the serial port.
type Serial struct {
	irq *interrupts.Interrupts

	sb uint8
	sc uint8

	// the value of SB when the transfer started
	outgoing uint8

	bits   int
	cycles int

	out io.Writer
}

// NewSerial is the preferred method of initialisation for the Serial type.
func NewSerial(irq *interrupts.Interrupts) *Serial {
	return &Serial{irq: irq}
}

func (sr *Serial) String() string {
	return fmt.Sprintf("SB=%#02x SC=%#02x", sr.sb, sr.Read(SC))
}

// SetOutput sets the writer that receives completed bytes. A nil value
// discards them.
func (sr *Serial) SetOutput(w io.Writer) {
	sr.out = w
}

// Active returns true if a transfer is in progress.
func (sr *Serial) Active() bool {
	return sr.sc&(transferStart|internalClock) == transferStart|internalClock
}

// Tick advances the serial port by one machine cycle.
func (sr *Serial) Tick() {
	if !sr.Active() {
		return
	}

	sr.cycles++
	if sr.cycles < cyclesPerBit {
		return
	}
	sr.cycles = 0

	sr.sb = sr.sb<<1 | 0x01
	sr.bits++
	if sr.bits < 8 {
		return
	}

	sr.bits = 0
	sr.sc &^= transferStart
	sr.irq.Request(interrupts.Serial)

	if sr.out != nil {
		if _, err := sr.out.Write([]byte{sr.outgoing}); err != nil {
			logger.Logf(logger.Allow, "serial", "output: %v", err)
			sr.out = nil
		}
	}
}

// Read implements the cpubus.Memory interface for the serial registers.
func (sr *Serial) Read(address uint16) uint8 {
	switch address {
	case SB:
		return sr.sb
	case SC:
		return sr.sc | 0x7e
	}
	return 0xff
}

// Write implements the cpubus.Memory interface for the serial registers.
func (sr *Serial) Write(address uint16, data uint8) {
	switch address {
	case SB:
		sr.sb = data
	case SC:
		sr.sc = data & (transferStart | internalClock)
		if sr.Active() {
			sr.outgoing = sr.sb
			sr.bits = 0
			sr.cycles = 0
		}
	}
}
