// SPDX-License-Identifier: EPL-2.0

package jaguarbsp

import (
	"github.com/ik5/jaguarbsp/channel"
)

// ExtractChannelFile writes channel sel (0 = left, 1 = right) of the stereo
// file in to a mono WAV file out.
//
// The selector is checked before any file is opened. On error out is left
// untouched.
func ExtractChannelFile(in, out string, sel int) error {
	if sel != 0 && sel != 1 {
		return channel.ErrInvalidChannel
	}

	src, err := LoadStream(in, DefaultRegistry())
	if err != nil {
		return err
	}

	mono, err := channel.Extract(src, sel)
	if err != nil {
		return err
	}

	return SaveStream(out, mono)
}

// DuplicateChannelFile writes the mono file in as a stereo WAV file out with
// the same samples in both channels. On error out is left untouched.
func DuplicateChannelFile(in, out string) error {
	src, err := LoadStream(in, DefaultRegistry())
	if err != nil {
		return err
	}

	stereo, err := channel.Duplicate(src)
	if err != nil {
		return err
	}

	return SaveStream(out, stereo)
}
