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

package sdlaudio

import (
	"unsafe"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/highpass"
	"github.com/gopherdmg/gopherdmg/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// AudioError is the pattern for errors created by the sdlaudio package.
const AudioError = "sdlaudio: %v"

// the number of sample frames requested from the audio device for each
// callback. the precise value is not critical.
const bufferLength = 512

// the maximum amount of audio, in seconds, that is allowed to be queued
// before new audio is dropped.
const maxQueueSeconds = 0.1

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	filter *highpass.Filter

	// filtered copy of the most recent signal
	buffer []float32

	// the maximum number of bytes in the queue
	maxQueued uint32

	dropped int
}

// NewAudio is the preferred method of initialisation for the Audio Type.
func NewAudio(sampleRate int) (*Audio, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf(AudioError, err)
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_F32SYS,
		Channels: 2,
		Samples:  bufferLength,
	}

	aud := &Audio{}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf(AudioError, err)
	}

	aud.filter = highpass.NewFilter(int(aud.spec.Freq))
	aud.maxQueued = uint32(float32(aud.spec.Freq)*maxQueueSeconds) * 2 * 4

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio implements the television.AudioMixer interface.
func (aud *Audio) SetAudio(sig []float32) error {
	if len(sig) == 0 {
		return nil
	}

	// the filter is applied even if the signal is about to be dropped so that
	// the capacitor follows the emulation
	aud.buffer = append(aud.buffer[:0], sig...)
	aud.filter.Apply(aud.buffer)

	if sdl.GetQueuedAudioSize(aud.id) > aud.maxQueued {
		aud.dropped++
		if aud.dropped == 1 {
			logger.Log(logger.Allow, "sdlaudio", "audio queue is full. dropping audio")
		}
		return nil
	}
	aud.dropped = 0

	data := unsafe.Slice((*uint8)(unsafe.Pointer(&aud.buffer[0])), len(aud.buffer)*4)
	if err := sdl.QueueAudio(aud.id, data); err != nil {
		return curated.Errorf(AudioError, err)
	}

	return nil
}

// EndMixing implements the television.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	return nil
}
