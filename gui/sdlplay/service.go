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

package sdlplay

import (
	"github.com/gopherdmg/gopherdmg/gui"
	"github.com/gopherdmg/gopherdmg/hardware/ppu"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/screenshot"
	"github.com/gopherdmg/gopherdmg/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// the amount of time to wait if there is nothing to do in Service().
const idleDelay = 2

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly and we have
	// no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	// dropped files are used to change the cartridge
	sdl.EventState(sdl.DROPFILE, sdl.ENABLE)
}

func keyMod() userinput.KeyMod {
	mod := sdl.GetModState()
	if mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT {
		return userinput.KeyModAlt
	} else if mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
		return userinput.KeyModShift
	} else if mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}

// screenshot of the most recent frame. the file is written in a separate
// goroutine.
func (scr *SdlPlay) screenshot() {
	var frame ppu.Frame
	scr.tv.BorrowFrame(func(f *ppu.Frame) {
		frame = *f
	})

	name := scr.tv.GetCartridge().Header.Title
	if name == "" {
		name = "gopherdmg"
	}

	go func() {
		err := screenshot.Save(screenshot.Filename(name), &frame, int(scr.scale))
		if err != nil {
			logger.Log(logger.Allow, "sdlplay", err)
		}
	}()
}

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Service() bool {
	// loop until there are no more events to retrieve. queued events are
	// never left for the next call to Service()
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			gui.PushEvent(scr.events, userinput.EventQuit{})
			return false

		case *sdl.DropEvent:
			if ev.Type == sdl.DROPFILE {
				gui.PushEvent(scr.events, userinput.EventDropFile{Filename: ev.File})
			}

		case *sdl.KeyboardEvent:
			key := sdl.GetKeyName(ev.Keysym.Sym)

			if key == "F12" {
				if ev.Type == sdl.KEYDOWN && ev.Repeat == 0 {
					scr.screenshot()
				}
				continue
			}

			switch ev.Type {
			case sdl.KEYDOWN:
				gui.PushEvent(scr.events, userinput.EventKeyboard{
					Key:    key,
					Mod:    keyMod(),
					Down:   true,
					Repeat: ev.Repeat != 0,
				})
			case sdl.KEYUP:
				gui.PushEvent(scr.events, userinput.EventKeyboard{
					Key:  key,
					Mod:  keyMod(),
					Down: false,
				})
			}
		}
	}

	scr.updateTitle()

	painted, err := scr.paint()
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
		return false
	}

	if !painted {
		sdl.Delay(idleDelay)
	}

	return true
}
