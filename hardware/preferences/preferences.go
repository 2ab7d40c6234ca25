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

package preferences

import (
	"fmt"
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/prefs"
)

// InvalidPreference is the pattern for errors returned when a preference is
// set to an out of range value.
const InvalidPreference = "preferences: %s: %v"

// Default preference values.
const (
	DefaultSampleRate = 44100
	DefaultSpeed      = 1.0
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	// the rate at which the APU sends samples to audio sinks
	SampleRate prefs.Int

	// multiple of real time speed when the limiter is active
	Speed prefs.Float

	// pace emulation to real time
	Limit prefs.Bool
}

// preference keys.
const (
	keySampleRate = "hardware.audio.samplerate"
	keySpeed      = "hardware.speed"
	keyLimit      = "hardware.limit"
)

func (p *Preferences) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s :: %s\n", keySampleRate, p.SampleRate.String()))
	s.WriteString(fmt.Sprintf("%s :: %s\n", keySpeed, p.Speed.String()))
	s.WriteString(fmt.Sprintf("%s :: %s", keyLimit, p.Limit.String()))
	return s.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.SampleRate.SetHookPre(func(v prefs.Value) error {
		if r := v.(int); r < 8000 || r > 192000 {
			return curated.Errorf(InvalidPreference, keySampleRate, r)
		}
		return nil
	})
	p.Speed.SetHookPre(func(v prefs.Value) error {
		if s := v.(float64); s <= 0.0 || s > 10.0 {
			return curated.Errorf(InvalidPreference, keySpeed, s)
		}
		return nil
	})

	err := p.Reset()
	if err != nil {
		return nil, err
	}

	for key, pref := range map[string]interface{ Set(prefs.Value) error }{
		keySampleRate: &p.SampleRate,
		keySpeed:      &p.Speed,
		keyLimit:      &p.Limit,
	} {
		if ok, v := prefs.GetCommandLinePref(key); ok {
			err = pref.Set(v)
			if err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	err := p.SampleRate.Set(DefaultSampleRate)
	if err != nil {
		return err
	}
	err = p.Speed.Set(DefaultSpeed)
	if err != nil {
		return err
	}
	return p.Limit.Set(true)
}
