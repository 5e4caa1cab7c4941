// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

// MaxSampleWidth is the widest sample, in bytes, a Stream may carry.
const MaxSampleWidth = 4

var (
	ErrInvalidChannels    = errors.New("invalid channel count")
	ErrInvalidSampleWidth = errors.New("invalid sample width")
	ErrInvalidFrameRate   = errors.New("invalid frame rate")
	ErrPartialFrame       = errors.New("data is not a whole number of frames")
	ErrUnsupportedFormat  = errors.New("unsupported audio format")
)
