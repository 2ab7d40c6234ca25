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

package playmode

import (
	"os"
	"os/signal"

	"github.com/gopherdmg/gopherdmg/cartridgeloader"
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/govern"
	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/userinput"
)

// PlayError is the pattern for errors returned by Play().
const PlayError = "playmode: %v"

// the number of events that can be queued between frames.
const inputQueueLen = 64

// Playmode is the outer play loop.
type Playmode struct {
	gb          *hardware.GameBoy
	controllers *userinput.Controllers

	// the cartridge currently attached
	loader cartridgeloader.Loader

	userinput chan userinput.Event
	romChange chan string
	intChan   chan os.Signal
}

// NewPlaymode is the preferred method of initialisation for the Playmode
// type. The cartridge is attached to the console immediately.
func NewPlaymode(gb *hardware.GameBoy, cl cartridgeloader.Loader, keys userinput.Keymap) (*Playmode, error) {
	pl := &Playmode{
		gb:          gb,
		controllers: userinput.NewControllers(keys),
		userinput:   make(chan userinput.Event, inputQueueLen),
		romChange:   make(chan string, 1),
		intChan:     make(chan os.Signal, 1),
	}

	err := gb.AttachCartridge(cl)
	if err != nil {
		return nil, curated.Errorf(PlayError, err)
	}
	pl.loader = cl

	return pl, nil
}

// UserInput returns the channel on which user input events should be sent.
func (pl *Playmode) UserInput() chan<- userinput.Event {
	return pl.userinput
}

// RequestROM asks for the cartridge to be changed at the start of the next
// frame. Returns false if a request is already pending.
func (pl *Playmode) RequestROM(filename string) bool {
	select {
	case pl.romChange <- filename:
		return true
	default:
	}
	return false
}

// Play runs the emulation until the user quits or the emulation ends with
// an error.
func (pl *Playmode) Play() error {
	// catch ctrl-c so that battery files are closed properly
	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	err := pl.gb.Run(pl.eventHandler)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	return nil
}

// changeROM attaches a new cartridge. if the new cartridge can not be
// attached, the previous cartridge is reattached.
func (pl *Playmode) changeROM(filename string) {
	cl := cartridgeloader.NewLoader(filename)
	err := pl.gb.AttachCartridge(cl)
	if err != nil {
		logger.Logf(logger.Allow, "playmode", "cannot change to %s: %v", cl.ShortName(), err)
		err = pl.gb.AttachCartridge(pl.loader)
		if err != nil {
			logger.Log(logger.Allow, "playmode", err)
		}
		return
	}
	pl.loader = cl
	logger.Logf(logger.Allow, "playmode", "changed cartridge to %s", cl.ShortName())
}

func (pl *Playmode) eventHandler() (govern.State, error) {
	quit := false

	// drain all user input that has arrived since the previous frame
	for done := false; !done; {
		select {
		case <-pl.intChan:
			quit = true
		case ev := <-pl.userinput:
			switch ev := ev.(type) {
			case userinput.EventDropFile:
				pl.RequestROM(ev.Filename)
			default:
				if pl.controllers.HandleUserInput(ev, pl.gb.Joypad) {
					quit = true
				}
			}
		default:
			done = true
		}
	}

	select {
	case fn := <-pl.romChange:
		pl.changeROM(fn)
	default:
	}

	if quit {
		return govern.Ending, nil
	}
	return govern.Running, nil
}
