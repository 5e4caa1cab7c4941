// SPDX-License-Identifier: EPL-2.0

// Package pcm holds the in-memory representation of a decoded audio file.
//
// A Stream is read from a file in one go, transformed into a new Stream, and
// written out again. Nothing is mutated in place.
//
// # Stream
//
// The sample payload is kept as raw little-endian bytes, interleaved by frame:
//
//	stereo 16-bit: [L0 L0 R0 R0 L1 L1 R1 R1 ...]
//
// A frame is one sample for every channel, so its size is
// Channels * SampleWidth bytes. Validate reports a payload that does not end
// on a frame boundary.
//
// # Format Registry
//
// Decoders are looked up by file extension:
//
//	registry := pcm.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//	stream, err := decoder.Decode(file)
package pcm
