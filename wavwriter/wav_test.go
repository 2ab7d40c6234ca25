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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/test"
	"github.com/gopherdmg/gopherdmg/wavwriter"

	"github.com/go-audio/wav"
)

func TestWrite(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.NewWavWriter(fn, 32768)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, aw.SetAudio([]float32{0.0, 0.0, 0.5, -0.5}))
	test.ExpectSuccess(t, aw.SetAudio([]float32{2.0, -2.0}))
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dec.SampleRate, uint32(32768))
	test.ExpectEquality(t, dec.NumChans, uint16(2))
	test.ExpectEquality(t, dec.BitDepth, uint16(16))

	test.DemandEquality(t, len(buf.Data), 6)
	test.ExpectEquality(t, buf.Data[2], 16383)
	test.ExpectEquality(t, buf.Data[3], -16383)

	// out of range values are clamped
	test.ExpectEquality(t, buf.Data[4], 32767)
	test.ExpectEquality(t, buf.Data[5], -32767)
}

func TestNoFilename(t *testing.T) {
	_, err := wavwriter.NewWavWriter("", 44100)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, wavwriter.WavWriterError))
}
