// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate int
	data       *bytes.Reader
	err        error
}

func newMockReader(rate int, samples []int16) *mockMP3Reader {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(s))
	}
	return &mockMP3Reader{sampleRate: rate, data: bytes.NewReader(buf)}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.data.Read(buf)
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not MP3 data")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestReadStream(t *testing.T) {
	t.Parallel()

	s, err := readStream(newMockReader(44100, []int16{1, -1, 2, -2, 3, -3}))
	if err != nil {
		t.Fatalf("readStream() error = %v", err)
	}

	if s.Channels != 2 || s.SampleWidth != 2 || s.FrameRate != 44100 {
		t.Errorf("header = %d ch, %d bytes, %d Hz; want 2, 2, 44100", s.Channels, s.SampleWidth, s.FrameRate)
	}
	if s.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", s.Frames())
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestReadStream_TruncatedFrame(t *testing.T) {
	t.Parallel()

	s, err := readStream(newMockReader(48000, []int16{1, 2, 3}))
	if err != nil {
		t.Fatalf("readStream() error = %v", err)
	}
	if len(s.Data) != 4 {
		t.Errorf("len(Data) = %d, want 4", len(s.Data))
	}
}

func TestReadStream_Error(t *testing.T) {
	t.Parallel()

	m := newMockReader(8000, nil)
	m.err = io.ErrUnexpectedEOF

	if _, err := readStream(m); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("readStream() error = %v, want io.ErrUnexpectedEOF", err)
	}
}
