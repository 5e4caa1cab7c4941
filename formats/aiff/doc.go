// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into a pcm.Stream.
//
// It uses github.com/go-audio/aiff. Plain AIFF and little-endian AIFF-C
// ("sowt") are read; compressed AIFF-C is rejected with ErrNotAiffFile.
//
// AIFF stores big-endian samples and signed 8-bit data. The decoder keeps
// the file's sample width and converts the samples to the WAV layout used
// throughout this module: little-endian, 8-bit unsigned. The frame count
// declared in the COMM chunk bounds the payload.
package aiff
