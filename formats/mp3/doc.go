// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into pcm.Stream values.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always yields
// 16-bit stereo at the file's sample rate:
//
//	file, _ := os.Open("audio.mp3")
//	stream, err := mp3.Decoder{}.Decode(file)
//
// The whole file is decoded into memory. MP3 writing is not supported.
package mp3
