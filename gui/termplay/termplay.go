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
	"bufio"
	"io"
	"os"
	"time"

	"github.com/gopherdmg/gopherdmg/gui"
	"github.com/gopherdmg/gopherdmg/hardware/ppu"
	"github.com/gopherdmg/gopherdmg/hardware/television"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/userinput"
)

// TermError is the pattern for errors created by the termplay package.
const TermError = "termplay: %v"

// the amount of time to wait if there is nothing to do in Service().
const idleDelay = 5 * time.Millisecond

// TermPlay implements the gui.GUI interface for terminals.
type TermPlay struct {
	Terminal

	tv     *television.Television
	events chan<- userinput.Event

	out     *bufio.Writer
	inputCh chan []byte
	held    *HeldKeys

	// the television frame number at the last paint
	lastFrame int
}

// NewTermPlay is the preferred method of initialisation for TermPlay.
func NewTermPlay(tv *television.Television, events chan<- userinput.Event) (*TermPlay, error) {
	tp := &TermPlay{
		tv:        tv,
		events:    events,
		out:       bufio.NewWriter(os.Stdout),
		inputCh:   make(chan []byte, 16),
		held:      NewHeldKeys(),
		lastFrame: -1,
	}

	err := tp.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return nil, err
	}

	tp.CBreakMode()

	_, _ = io.WriteString(tp.out, ansiClear+ansiHideCursor)
	_ = tp.out.Flush()

	go tp.readInput()

	return tp, nil
}

// reading from the terminal blocks so it happens in its own goroutine.
func (tp *TermPlay) readInput() {
	for {
		b := make([]byte, 32)
		n, err := tp.Terminal.input.Read(b)
		if err != nil {
			if err != io.EOF {
				logger.Log(logger.Allow, "termplay", err)
			}
			return
		}
		if n > 0 {
			tp.inputCh <- b[:n]
		}
	}
}

// Destroy implements the gui.GUI interface.
func (tp *TermPlay) Destroy() {
	_, _ = io.WriteString(tp.out, ansiNormal+ansiShowCursor+"\r\n")
	_ = tp.out.Flush()
	tp.CleanUp()
}

// Service implements the gui.GUI interface.
func (tp *TermPlay) Service() bool {
	now := time.Now()

	for done := false; !done; {
		select {
		case b := <-tp.inputCh:
			for _, k := range ParseKeys(b) {
				if k == QuitKey {
					gui.PushEvent(tp.events, userinput.EventQuit{})
					return false
				}
				if tp.held.Press(k, now) {
					gui.PushEvent(tp.events, userinput.EventKeyboard{Key: k, Down: true})
				}
			}
		default:
			done = true
		}
	}

	for _, k := range tp.held.Expire(now) {
		gui.PushEvent(tp.events, userinput.EventKeyboard{Key: k, Down: false})
	}

	if tp.Resized() {
		_, _ = io.WriteString(tp.out, ansiClear)
		tp.lastFrame = -1
	}

	fn := tp.tv.FrameNum()
	if fn == tp.lastFrame {
		time.Sleep(idleDelay)
		return true
	}
	tp.lastFrame = fn

	termCols, termRows := tp.Geometry()
	cols, rows := FitSize(termCols, termRows-1)

	var err error
	tp.tv.BorrowFrame(func(frame *ppu.Frame) {
		err = Render(tp.out, frame, cols, rows)
	})
	if err == nil {
		err = tp.out.Flush()
	}
	if err != nil {
		logger.Log(logger.Allow, "termplay", err)
		return false
	}

	return true
}
