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

package paudio

import (
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/highpass"
	"github.com/gopherdmg/gopherdmg/logger"

	"github.com/gordonklaus/portaudio"
)

// AudioError is the pattern for errors created by the paudio package.
const AudioError = "paudio: %v"

// volume applied to all output.
const globalVolume = 0.5

// Audio outputs sound using PortAudio.
type Audio struct {
	stream *portaudio.Stream

	sampleRate     float64
	outputChannels int

	filter *highpass.Filter
	buffer []float32

	// left and right sample pairs
	samples chan [2]float32
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(sampleRate int) (*Audio, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, curated.Errorf(AudioError, err)
	}

	host, err := portaudio.DefaultHostApi()
	if err != nil {
		_ = portaudio.Terminate()
		return nil, curated.Errorf(AudioError, err)
	}

	aud := &Audio{
		filter: highpass.NewFilter(sampleRate),

		// a quarter of a second of audio
		samples: make(chan [2]float32, sampleRate/4),
	}

	parameters := portaudio.HighLatencyParameters(nil, host.DefaultOutputDevice)
	parameters.SampleRate = float64(sampleRate)
	if parameters.Output.Channels > 2 {
		parameters.Output.Channels = 2
	}

	// the callback can run as soon as the stream is started
	aud.sampleRate = parameters.SampleRate
	aud.outputChannels = parameters.Output.Channels

	aud.stream, err = portaudio.OpenStream(parameters, aud.callback)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, curated.Errorf(AudioError, err)
	}

	if err := aud.stream.Start(); err != nil {
		_ = aud.stream.Close()
		_ = portaudio.Terminate()
		return nil, curated.Errorf(AudioError, err)
	}

	logger.Logf(logger.Allow, "paudio", "%s: %.0f samples/sec (%d channels)",
		host.DefaultOutputDevice.Name, aud.sampleRate, aud.outputChannels)

	return aud, nil
}

func (aud *Audio) callback(out []float32) {
	var s [2]float32
	for i := range out {
		c := i % aud.outputChannels
		if c == 0 {
			select {
			case s = <-aud.samples:
			default:
				s = [2]float32{}
			}
		}

		if aud.outputChannels == 1 {
			out[i] = (s[0] + s[1]) / 2 * globalVolume
		} else {
			out[i] = s[c&0x01] * globalVolume
		}
	}
}

// SetAudio implements the television.AudioMixer interface.
func (aud *Audio) SetAudio(sig []float32) error {
	aud.buffer = append(aud.buffer[:0], sig...)
	aud.filter.Apply(aud.buffer)

	for i := 0; i+1 < len(aud.buffer); i += 2 {
		select {
		case aud.samples <- [2]float32{aud.buffer[i], aud.buffer[i+1]}:
		default:
			return nil
		}
	}

	return nil
}

// EndMixing implements the television.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	defer func() {
		_ = portaudio.Terminate()
	}()

	if err := aud.stream.Stop(); err != nil {
		return curated.Errorf(AudioError, err)
	}
	if err := aud.stream.Close(); err != nil {
		return curated.Errorf(AudioError, err)
	}

	return nil
}
