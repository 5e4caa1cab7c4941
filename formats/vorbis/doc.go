// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into 16-bit pcm.Stream values
// using github.com/jfreymuth/oggvorbis.
package vorbis
