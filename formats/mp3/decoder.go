// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/jaguarbsp/pcm"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	channels    = 2
	sampleWidth = 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*pcm.Stream, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return readStream(dec)
}

func readStream(dec mp3Reader) (*pcm.Stream, error) {
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}

	// go-mp3 may stop in the middle of a frame on truncated input
	frameSize := channels * sampleWidth
	data = data[:len(data)-len(data)%frameSize]

	return &pcm.Stream{
		Channels:    channels,
		SampleWidth: sampleWidth,
		FrameRate:   dec.SampleRate(),
		Format:      pcm.FormatPCM,
		Data:        data,
	}, nil
}
