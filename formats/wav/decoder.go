// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/jaguarbsp/pcm"
	"github.com/ik5/jaguarbsp/utils"
)

// formatExtensible is WAVE_FORMAT_EXTENSIBLE; only its PCM flavour is read.
const formatExtensible uint16 = 0xFFFE

type Decoder struct{}

// Decode reads a whole PCM WAV file into memory.
// Samples keep the file's own width and are stored little-endian.
func (Decoder) Decode(r io.Reader) (*pcm.Stream, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != uint16(pcm.FormatPCM) && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %#x", ErrOnlyPCMSupported, dec.WavAudioFormat)
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth < 8 || bitDepth%8 != 0 || bitDepth/8 > pcm.MaxSampleWidth {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	width := bitDepth / 8

	channels := int(dec.NumChans)
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", pcm.ErrInvalidChannels, channels)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading pcm data: %w", err)
	}

	// go-audio reads past an odd-sized data chunk into the pad byte, so
	// only the whole frames the chunk declares are kept.
	if n := dec.PCMSize / (width * channels) * channels; n < len(buf.Data) {
		buf.Data = buf.Data[:n]
	}

	return &pcm.Stream{
		Channels:    channels,
		SampleWidth: width,
		FrameRate:   int(dec.SampleRate),
		Format:      pcm.FormatPCM,
		Data:        utils.IntsToBytes(buf.Data, width),
	}, nil
}
