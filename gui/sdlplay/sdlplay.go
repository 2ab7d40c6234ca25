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
	"fmt"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/ppu"
	"github.com/gopherdmg/gopherdmg/hardware/television"
	"github.com/gopherdmg/gopherdmg/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// SDLError is the pattern for errors created by the sdlplay package.
const SDLError = "sdlplay: %v"

const pixelDepth = 4

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	tv *television.Television

	// user input is sent on this channel
	events chan<- userinput.Event

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying to
	// the renderer
	pixels []byte

	// integer scaling applied to each pixel
	scale int32

	// the television frame number at the last paint
	lastFrame int

	// the cartridge title used in the window title
	title string
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
func NewSdlPlay(tv *television.Television, scale int, events chan<- userinput.Event) (*SdlPlay, error) {
	scr := &SdlPlay{
		tv:        tv,
		events:    events,
		scale:     int32(max(scale, 1)),
		lastFrame: -1,
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	setupService()

	scr.window, err = sdl.CreateWindow("GopherDMG",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		ppu.VisiblePixels*scr.scale, ppu.VisibleLines*scr.scale,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	// texture is the same size as the screen. scaling is applied when the
	// texture is copied to the renderer
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		ppu.VisiblePixels, ppu.VisibleLines)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	scr.pixels = make([]byte, ppu.VisiblePixels*ppu.VisibleLines*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	return scr, nil
}

func (scr *SdlPlay) String() string {
	w, h := scr.window.GetSize()
	return fmt.Sprintf("sdlplay: %dx%d (scale %d)", w, h, scr.scale)
}

// Destroy implements the gui.GUI interface.
func (scr *SdlPlay) Destroy() {
	if scr.texture != nil {
		_ = scr.texture.Destroy()
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
	}
	sdl.Quit()
}

// updateTitle changes the window title if the cartridge has changed.
func (scr *SdlPlay) updateTitle() {
	cart := scr.tv.GetCartridge()
	if cart.Header.Title == scr.title {
		return
	}
	scr.title = cart.Header.Title
	if scr.title == "" {
		scr.window.SetTitle("GopherDMG")
	} else {
		scr.window.SetTitle(fmt.Sprintf("GopherDMG - %s", scr.title))
	}
}
