// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds PCM fixtures for tests.
package audiotest

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/jaguarbsp/pcm"
	"github.com/ik5/jaguarbsp/utils"
)

// Stream16 returns a 16-bit PCM stream with the given interleaved samples.
func Stream16(channels, rate int, samples ...int) *pcm.Stream {
	return &pcm.Stream{
		Channels:    channels,
		SampleWidth: 2,
		FrameRate:   rate,
		Format:      pcm.FormatPCM,
		Data:        utils.IntsToBytes(samples, 2),
	}
}

// Samples16 decodes the payload of a 16-bit stream.
func Samples16(s *pcm.Stream) []int {
	return utils.BytesToInts(s.Data, 2)
}

// Ramp returns frames*channels samples where sample i of channel c is
// (i+1)*(c+1)*7, enough to tell channels and positions apart.
func Ramp(channels, frames int) []int {
	out := make([]int, 0, channels*frames)
	for i := range frames {
		for c := range channels {
			out = append(out, (i+1)*(c+1)*7)
		}
	}
	return out
}

// WriteWAV writes a PCM WAV file with go-audio's encoder and returns its path.
func WriteWAV(t testing.TB, name string, channels, bitDepth, rate int, samples []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	enc := gowav.NewEncoder(f, rate, bitDepth, channels, 1)
	if err := enc.Write(intBuffer(channels, rate, bitDepth, samples)); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder %s: %v", path, err)
	}

	return path
}

// WriteAIFF writes a big-endian AIFF file with go-audio's encoder and returns
// its path. 8-bit samples are signed, as AIFF stores them.
func WriteAIFF(t testing.TB, name string, channels, bitDepth, rate int, samples []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	enc := goaiff.NewEncoder(f, rate, bitDepth, channels)
	if err := enc.Write(intBuffer(channels, rate, bitDepth, samples)); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder %s: %v", path, err)
	}

	return path
}

// WAVHeader is a minimal 44-byte canonical PCM header for hand-built files.
func WAVHeader(channels, bitDepth, rate, dataSize int) []byte {
	h := make([]byte, 44)
	blockAlign := channels * bitDepth / 8

	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], uint32(36+dataSize))
	copy(h[8:12], "WAVE")
	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16)
	binary.LittleEndian.PutUint16(h[20:22], 1)
	binary.LittleEndian.PutUint16(h[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(h[24:28], uint32(rate))
	binary.LittleEndian.PutUint32(h[28:32], uint32(rate*blockAlign))
	binary.LittleEndian.PutUint16(h[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(h[34:36], uint16(bitDepth))
	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], uint32(dataSize))

	return h
}

func intBuffer(channels, rate, bitDepth int, samples []int) *goaudio.IntBuffer {
	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  rate,
		},
		Data:           samples,
		SourceBitDepth: bitDepth,
	}
}
