// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"io"
	"slices"
	"sync"
)

// FormatPCM is the WAVE format tag for integer PCM.
const FormatPCM uint16 = 1

// Stream is a fully loaded interleaved PCM payload together with the header
// values needed to write it back out.
type Stream struct {
	// Channels count (1=mono, 2=stereo).
	Channels int
	// SampleWidth is the size of one sample of one channel, in bytes.
	SampleWidth int
	// FrameRate in Hz.
	FrameRate int
	// Format is the container compression tag, passed through unchanged.
	Format uint16
	// Data holds little-endian samples ordered [c0, c1, ..., c0, c1, ...].
	Data []byte
}

// FrameSize returns the number of bytes in one frame.
func (s *Stream) FrameSize() int { return s.Channels * s.SampleWidth }

// Frames returns the number of complete frames in Data.
func (s *Stream) Frames() int {
	fs := s.FrameSize()
	if fs <= 0 {
		return 0
	}
	return len(s.Data) / fs
}

// Validate checks the header values and that Data holds whole frames only.
func (s *Stream) Validate() error {
	if s.Channels < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, s.Channels)
	}
	if s.SampleWidth < 1 || s.SampleWidth > MaxSampleWidth {
		return fmt.Errorf("%w: %d", ErrInvalidSampleWidth, s.SampleWidth)
	}
	if s.FrameRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrameRate, s.FrameRate)
	}
	if len(s.Data)%s.FrameSize() != 0 {
		return fmt.Errorf("%w: %d bytes, frame size %d", ErrPartialFrame, len(s.Data), s.FrameSize())
	}
	return nil
}

// Decoder constructs a Stream from an input reader.
type Decoder interface {
	Decode(r io.Reader) (*Stream, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats returns the registered format keys, sorted.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
