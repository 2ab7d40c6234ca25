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

package termplay

import (
	"os"
	"os/signal"
	"sync/atomic"

	"github.com/gopherdmg/gopherdmg/curated"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal is a wrapper for the termios functions, with terminal geometry.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// geometry of the terminal in characters
	cols atomic.Int32
	rows atomic.Int32

	// the terminal has been resized since the last call to Resized()
	resized atomic.Bool

	sigwinch chan os.Signal
	done     chan bool
}

// Initialise the fields in the Terminal struct.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return curated.Errorf(TermError, "an input file is required")
	}
	if outputFile == nil {
		return curated.Errorf(TermError, "an output file is required")
	}

	pt.input = inputFile
	pt.output = outputFile

	// prepare the attributes for the different terminal modes we'll be using
	err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr)
	if err != nil {
		return curated.Errorf(TermError, err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	err = pt.UpdateGeometry()
	if err != nil {
		return err
	}

	pt.sigwinch = make(chan os.Signal, 1)
	pt.done = make(chan bool)
	signal.Notify(pt.sigwinch, unix.SIGWINCH)

	go func() {
		for {
			select {
			case <-pt.sigwinch:
				_ = pt.UpdateGeometry()
			case <-pt.done:
				return
			}
		}
	}()

	return nil
}

// CleanUp restores the terminal and stops the resize handler.
func (pt *Terminal) CleanUp() {
	signal.Stop(pt.sigwinch)
	close(pt.done)
	pt.CanonicalMode()
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (pt *Terminal) UpdateGeometry() error {
	w, h, err := term.GetSize(int(pt.output.Fd()))
	if err != nil {
		return curated.Errorf(TermError, err)
	}
	pt.cols.Store(int32(w))
	pt.rows.Store(int32(h))
	pt.resized.Store(true)
	return nil
}

// Geometry returns the number of columns and rows of the terminal.
func (pt *Terminal) Geometry() (int, int) {
	return int(pt.cols.Load()), int(pt.rows.Load())
}

// Resized returns true if the terminal has been resized since the previous
// call.
func (pt *Terminal) Resized() bool {
	return pt.resized.Swap(false)
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (pt *Terminal) CBreakMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}
