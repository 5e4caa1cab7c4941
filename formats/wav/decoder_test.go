// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"slices"
	"testing"

	"github.com/ik5/jaguarbsp/internal/audiotest"
)

func TestDecoder_Stereo16(t *testing.T) {
	t.Parallel()

	samples := []int{1, 100, 2, 200, 3, 300, 4, 400}
	path := audiotest.WriteWAV(t, "stereo.wav", 2, 16, 8000, samples)

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	s, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if s.Channels != 2 || s.SampleWidth != 2 || s.FrameRate != 8000 {
		t.Errorf("header = %d ch, %d bytes, %d Hz; want 2, 2, 8000", s.Channels, s.SampleWidth, s.FrameRate)
	}
	if s.Frames() != 4 {
		t.Errorf("Frames() = %d, want 4", s.Frames())
	}
	if got := audiotest.Samples16(s); !slices.Equal(got, samples) {
		t.Errorf("samples = %v, want %v", got, samples)
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	payload := make([]byte, 6)
	binary.LittleEndian.PutUint16(payload[0:2], 5)
	binary.LittleEndian.PutUint16(payload[2:4], 6)
	binary.LittleEndian.PutUint16(payload[4:6], 7)
	data := append(audiotest.WAVHeader(1, 16, 8000, len(payload)), payload...)

	// wrap to hide bytes.Reader's Seek method
	r := struct{ *bytes.Buffer }{bytes.NewBuffer(data)}

	s, err := Decoder{}.Decode(r)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !bytes.Equal(s.Data, payload) {
		t.Errorf("Data = %v, want %v", s.Data, payload)
	}
}

func TestDecoder_KeepsSampleWidth(t *testing.T) {
	t.Parallel()

	samples := []int{-8388608, 0, 8388607}
	path := audiotest.WriteWAV(t, "mono24.wav", 1, 24, 48000, samples)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	s, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if s.SampleWidth != 3 {
		t.Fatalf("SampleWidth = %d, want 3", s.SampleWidth)
	}
	if len(s.Data) != 9 {
		t.Errorf("len(Data) = %d, want 9", len(s.Data))
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not WAV data at all, just some text.")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestDecoder_RejectsFloat(t *testing.T) {
	t.Parallel()

	payload := make([]byte, 8)
	header := audiotest.WAVHeader(1, 32, 8000, len(payload))
	binary.LittleEndian.PutUint16(header[20:22], 3) // IEEE float

	_, err := Decoder{}.Decode(bytes.NewReader(append(header, payload...)))
	if !errors.Is(err, ErrOnlyPCMSupported) {
		t.Errorf("Decode() error = %v, want ErrOnlyPCMSupported", err)
	}
}

func TestDecoder_DropsTrailingPartialFrame(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		chunk    []byte
		want     []byte
	}{
		{
			name:     "stereo 7-byte chunk",
			channels: 2,
			chunk:    []byte{1, 0, 100, 0, 2, 0, 200},
			want:     []byte{1, 0, 100, 0},
		},
		{
			name:     "mono 5-byte chunk",
			channels: 1,
			chunk:    []byte{5, 0, 6, 0, 7},
			want:     []byte{5, 0, 6, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := append(audiotest.WAVHeader(tt.channels, 16, 8000, len(tt.chunk)), tt.chunk...)
			data = append(data, 0) // RIFF pad byte

			s, err := Decoder{}.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !bytes.Equal(s.Data, tt.want) {
				t.Errorf("Data = %v, want %v", s.Data, tt.want)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}
