// SPDX-License-Identifier: EPL-2.0

package channel

import (
	"github.com/ik5/jaguarbsp/pcm"
)

// Extract returns a mono stream holding only channel sel (0 = left, 1 = right)
// of a stereo stream. A trailing partial frame in s is dropped.
func Extract(s *pcm.Stream, sel int) (*pcm.Stream, error) {
	if sel != 0 && sel != 1 {
		return nil, ErrInvalidChannel
	}
	if s.Channels != 2 {
		return nil, &ChannelCountError{Want: 2, Got: s.Channels}
	}
	if s.SampleWidth < 1 {
		return nil, pcm.ErrInvalidSampleWidth
	}

	width := s.SampleWidth
	frameSize := 2 * width
	frames := len(s.Data) / frameSize
	out := make([]byte, frames*width)

	offset := sel * width
	for f := range frames {
		src := f*frameSize + offset
		copy(out[f*width:(f+1)*width], s.Data[src:src+width])
	}

	return derive(s, 1, out), nil
}

// Duplicate returns a stereo stream where both channels carry the samples of
// the mono stream s. A trailing partial sample in s is dropped.
func Duplicate(s *pcm.Stream) (*pcm.Stream, error) {
	if s.Channels != 1 {
		return nil, &ChannelCountError{Want: 1, Got: s.Channels}
	}
	if s.SampleWidth < 1 {
		return nil, pcm.ErrInvalidSampleWidth
	}

	width := s.SampleWidth
	samples := len(s.Data) / width
	out := make([]byte, 0, samples*2*width)

	for i := range samples {
		sample := s.Data[i*width : (i+1)*width]
		out = append(out, sample...) // left
		out = append(out, sample...) // right
	}

	return derive(s, 2, out), nil
}

// Interleave joins two mono streams into one stereo stream, left first.
// It is the inverse of extracting both channels with Extract.
func Interleave(left, right *pcm.Stream) (*pcm.Stream, error) {
	if left.Channels != 1 {
		return nil, &ChannelCountError{Want: 1, Got: left.Channels}
	}
	if right.Channels != 1 {
		return nil, &ChannelCountError{Want: 1, Got: right.Channels}
	}
	if left.SampleWidth != right.SampleWidth || left.FrameRate != right.FrameRate {
		return nil, ErrMismatchedStreams
	}
	if left.SampleWidth < 1 {
		return nil, pcm.ErrInvalidSampleWidth
	}

	width := left.SampleWidth
	frames := min(len(left.Data), len(right.Data)) / width
	out := make([]byte, 0, frames*2*width)

	for f := range frames {
		out = append(out, left.Data[f*width:(f+1)*width]...)
		out = append(out, right.Data[f*width:(f+1)*width]...)
	}

	return derive(left, 2, out), nil
}

func derive(s *pcm.Stream, channels int, data []byte) *pcm.Stream {
	return &pcm.Stream{
		Channels:    channels,
		SampleWidth: s.SampleWidth,
		FrameRate:   s.FrameRate,
		Format:      s.Format,
		Data:        data,
	}
}
