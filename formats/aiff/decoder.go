// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/jaguarbsp/pcm"
	"github.com/ik5/jaguarbsp/utils"
)

// aiffReader is an interface for goaiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	FullPCMBuffer() (*goaudio.IntBuffer, error)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*pcm.Stream, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	return readStream(dec, int(dec.BitDepth), int(dec.NumSampleFrames))
}

func readStream(dec aiffReader, bitDepth, frames int) (*pcm.Stream, error) {
	if bitDepth < 8 || bitDepth%8 != 0 || bitDepth/8 > pcm.MaxSampleWidth {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	width := bitDepth / 8

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}
	channels := format.NumChannels

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading pcm data: %w", err)
	}

	samples := buf.Data
	if n := frames * channels; n < len(samples) {
		samples = samples[:n]
	}
	samples = samples[:len(samples)-len(samples)%channels]

	if width == 1 {
		// go-audio hands back the raw signed byte; WAV 8-bit is offset binary
		for i, v := range samples {
			samples[i] = (v ^ 0x80) & 0xFF
		}
	}

	return &pcm.Stream{
		Channels:    channels,
		SampleWidth: width,
		FrameRate:   format.SampleRate,
		Format:      pcm.FormatPCM,
		Data:        utils.IntsToBytes(samples, width),
	}, nil
}
