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

package television

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge"
	"github.com/gopherdmg/gopherdmg/hardware/ppu"
	"github.com/gopherdmg/gopherdmg/hardware/television/limiter"
	"github.com/gopherdmg/gopherdmg/logger"
)

// AudioMixer implementations work with sound; most probably playing it. An
// example of an AudioMixer that does not play sound but otherwise works with
// it is the wavwriter.WavWriter type.
//
// The slice is interleaved stereo and is only valid for the duration of the
// call. SetAudio() will be called from the emulation goroutine and must not
// block.
type AudioMixer interface {
	SetAudio(sig []float32) error

	// some mixers may need to conclude and/or dispose of resources gently.
	// for simplicity, the AudioMixer should be considered unusable after
	// EndMixing() has been called
	EndMixing() error
}

// CartridgeInfo is the information about the attached cartridge kept by the
// television.
type CartridgeInfo struct {
	Filename string
	Header   cartridge.Header
}

// Television is the exchange point for video and audio.
type Television struct {
	// the most recently published frame
	frameCrit sync.Mutex
	frame     ppu.Frame
	frameNum  atomic.Int64

	cartCrit sync.Mutex
	cart     CartridgeInfo

	mixers []AudioMixer

	lmtr *limiter.Limiter
}

// NewTelevision is the preferred method of initialisation for the Television
// type.
func NewTelevision() *Television {
	return &Television{
		lmtr: limiter.NewLimiter(),
	}
}

func (tv *Television) String() string {
	return fmt.Sprintf("frame=%d fps=%.2f", tv.FrameNum(), tv.GetActualFPS())
}

// PublishFrame implements the ppu.FrameSink interface.
func (tv *Television) PublishFrame(frame *ppu.Frame) {
	tv.frameCrit.Lock()
	tv.frame = *frame
	tv.frameCrit.Unlock()
	tv.frameNum.Add(1)
}

// BorrowFrame calls the function with the most recently published frame. The
// frame must not be retained after the function returns.
func (tv *Television) BorrowFrame(f func(*ppu.Frame)) {
	tv.frameCrit.Lock()
	defer tv.frameCrit.Unlock()
	f(&tv.frame)
}

// FrameNum returns the number of frames published so far.
func (tv *Television) FrameNum() int {
	return int(tv.frameNum.Load())
}

// SetCartridge records information about the attached cartridge.
func (tv *Television) SetCartridge(info CartridgeInfo) {
	tv.cartCrit.Lock()
	defer tv.cartCrit.Unlock()
	tv.cart = info
}

// GetCartridge returns information about the attached cartridge.
func (tv *Television) GetCartridge() CartridgeInfo {
	tv.cartCrit.Lock()
	defer tv.cartCrit.Unlock()
	return tv.cart
}

// AddAudioMixer registers an (additional) implementation of AudioMixer.
// Mixers should be added before emulation starts.
func (tv *Television) AddAudioMixer(m AudioMixer) {
	for _, e := range tv.mixers {
		if e == m {
			return
		}
	}
	tv.mixers = append(tv.mixers, m)
}

// SetAudio implements the apu.Mixer interface. An error from one mixer does
// not stop the samples being sent to the others.
func (tv *Television) SetAudio(sig []float32) error {
	var err error
	for _, m := range tv.mixers {
		if e := m.SetAudio(sig); e != nil {
			err = e
		}
	}
	return err
}

// End calls EndMixing() on every AudioMixer. The television should be
// considered unusable afterwards.
func (tv *Television) End() error {
	var err error
	for _, m := range tv.mixers {
		if e := m.EndMixing(); e != nil {
			logger.Log(logger.Allow, "television", e)
			err = e
		}
	}
	tv.mixers = nil
	tv.lmtr.Stop()
	return err
}

// CheckFrame should be called by the frame driver at the end of every frame.
func (tv *Television) CheckFrame() {
	tv.lmtr.CheckFrame()
	tv.lmtr.MeasureActual()
}

// SetFPSCap sets whether the emulation should be paced to real time.
func (tv *Television) SetFPSCap(set bool) {
	tv.lmtr.Active = set
}

// SetSpeed sets the pace of emulation as a multiple of real time.
func (tv *Television) SetSpeed(speed float32) {
	tv.lmtr.SetSpeed(speed)
}

// GetReqFPS returns the number of frames per second being aimed for.
func (tv *Television) GetReqFPS() float32 {
	return tv.lmtr.IdealFPS.Load().(float32)
}

// GetActualFPS returns the measured number of frames per second.
func (tv *Television) GetActualFPS() float32 {
	return tv.lmtr.Measured.Load().(float32)
}
