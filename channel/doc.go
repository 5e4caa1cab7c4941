// SPDX-License-Identifier: EPL-2.0

// Package channel splits and duplicates channels of interleaved PCM streams.
//
// All operations work on the raw sample bytes and never decode sample values,
// so any sample width round-trips byte for byte:
//
//	left, _ := channel.Extract(stereo, 0)
//	right, _ := channel.Extract(stereo, 1)
//	back, _ := channel.Interleave(left, right) // back.Data == stereo.Data
//
// Extract drops a trailing partial frame and Duplicate a trailing partial
// sample; no partial data reaches the output.
package channel
