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

package limiter

import (
	"sync/atomic"
	"time"
)

// RefreshRate is the number of frames per second at normal speed.
const RefreshRate float32 = 4194304.0 / 70224.0

// Limiter paces the emulation. The zero value is not usable, use NewLimiter().
type Limiter struct {
	// whether to wait for fps limited each frame
	Active bool

	// the speed multiplier applied to the refresh rate
	speed atomic.Value // float32

	// the number of frames per second being aimed for
	IdealFPS atomic.Value // float32

	// pulse that performs the limiting. the duration of the ticker will be set
	// when SetSpeed() is called
	pulse *time.Ticker

	// waiting on the pulse every frame is expensive so the pulse covers a
	// small number of frames
	pulseCt      int
	pulseCtLimit int

	// pulse that performs the FPS measurement
	measuringPulse *time.Ticker

	// the measured FPS is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measureTime time.Time
	measureCt   int

	// the measured number of frames per second
	Measured atomic.Value // float32
}

// NewLimiter is preferred method of initialising a new instance of the Limiter
// type. The limit is set to the refresh rate at normal speed.
func NewLimiter() *Limiter {
	lmtr := Limiter{}
	lmtr.Active = true
	lmtr.Measured.Store(float32(0.0))
	lmtr.pulse = time.NewTicker(time.Millisecond * 16)
	lmtr.measuringPulse = time.NewTicker(time.Millisecond * 1000)
	lmtr.SetSpeed(1.0)
	return &lmtr
}

// SetSpeed sets the limit as a multiple of the refresh rate. Values less than
// or equal to zero are treated as normal speed.
func (lmtr *Limiter) SetSpeed(speed float32) {
	if speed <= 0.0 {
		speed = 1.0
	}
	lmtr.speed.Store(speed)

	fps := RefreshRate * speed
	lmtr.IdealFPS.Store(fps)

	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Stop()
	lmtr.pulse.Reset(time.Duration(1000000000 / fps * float32(lmtr.pulseCtLimit)))

	// restart actual FPS rate measurement values
	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// Speed returns the current speed multiplier.
func (lmtr *Limiter) Speed() float32 {
	return lmtr.speed.Load().(float32)
}

// CheckFrame should be called every frame.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++
	if !lmtr.Active {
		return
	}
	lmtr.pulseCt++
	if lmtr.pulseCt >= lmtr.pulseCtLimit {
		lmtr.pulseCt = 0
		<-lmtr.pulse.C
	}
}

// MeasureActual measures frame rate on every tick of the measuringPulse ticker.
// callers of MeasureActual() should be mindful of how ofter the function is
// called, regardless of the throttle provided by the measuring pulse - checking
// the pulse channel is itself expensive.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)

		// reset time and count ready for next measurement
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop releases the tickers used by the limiter.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
