// SPDX-License-Identifier: EPL-2.0

package channel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChannel is returned when the channel selector is not 0 or 1.
	ErrInvalidChannel = errors.New("channel must be 0 (left) or 1 (right)")

	// ErrChannelCount matches any ChannelCountError through errors.Is.
	ErrChannelCount = errors.New("unexpected channel count")

	// ErrMismatchedStreams is returned by Interleave for streams of different shape.
	ErrMismatchedStreams = errors.New("streams differ in sample width or frame rate")
)

// ChannelCountError reports an input whose channel count does not fit the operation.
type ChannelCountError struct {
	Want int
	Got  int
}

func (e *ChannelCountError) Error() string {
	return fmt.Sprintf("input must have %d channel(s), has %d", e.Want, e.Got)
}

func (e *ChannelCountError) Is(target error) bool {
	return target == ErrChannelCount
}
