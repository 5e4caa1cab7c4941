// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/jaguarbsp/pcm"
	"github.com/ik5/jaguarbsp/utils"
)

type Decoder struct{}

// Decode reads a whole Ogg Vorbis stream and converts it to 16-bit PCM.
func (Decoder) Decode(r io.Reader) (*pcm.Stream, error) {
	samples, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return toStream(samples, format.Channels, format.SampleRate)
}

func toStream(samples []float32, channels, rate int) (*pcm.Stream, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", pcm.ErrInvalidChannels, channels)
	}

	frames := len(samples) / channels
	data := make([]byte, frames*channels*2)
	for i, x := range samples[:frames*channels] {
		utils.PutSample(data[i*2:i*2+2], int(utils.Float32ToInt16(x)))
	}

	return &pcm.Stream{
		Channels:    channels,
		SampleWidth: 2,
		FrameRate:   rate,
		Format:      pcm.FormatPCM,
		Data:        data,
	}, nil
}
