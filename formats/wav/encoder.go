// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/jaguarbsp/pcm"
	"github.com/ik5/jaguarbsp/utils"
)

// Encode writes s as a canonical PCM WAV file. The header sizes are patched
// when the encoder closes, so w must be seekable.
func Encode(w io.WriteSeeker, s *pcm.Stream) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%w", err)
	}

	enc := gowav.NewEncoder(w, s.FrameRate, s.SampleWidth*8, s.Channels, int(pcm.FormatPCM))

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: s.Channels,
			SampleRate:  s.FrameRate,
		},
		Data:           utils.BytesToInts(s.Data, s.SampleWidth),
		SourceBitDepth: s.SampleWidth * 8,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing pcm data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}

	return nil
}

// Write streams s as a canonical PCM WAV to a plain writer. Unlike Encode the
// sizes are known up front, so no seeking is needed.
func Write(w io.Writer, s *pcm.Stream) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%w", err)
	}

	numChannels := uint16(s.Channels)
	bitsPerSample := uint16(s.SampleWidth * 8)
	blockAlign := uint16(s.FrameSize())
	byteRate := uint32(s.FrameRate) * uint32(blockAlign)
	dataSize := uint32(len(s.Data))

	header := make([]byte, 44)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], pcm.FormatPCM)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(s.FrameRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if _, err := w.Write(s.Data); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
