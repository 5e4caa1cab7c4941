// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAV files as pcm.Stream values.
//
// Parsing and encoding go through github.com/go-audio/wav, so files with
// extra chunks (LIST, fact, ...) before the data chunk are handled.
//
// # Decoding
//
//	file, _ := os.Open("audio.wav")
//	stream, err := wav.Decoder{}.Decode(file)
//
// Samples keep the file's width (8, 16, 24 or 32 bit) and are stored as
// little-endian bytes, exactly as they appear in the data chunk.
//
// # Encoding
//
// Encode needs an io.WriteSeeker because the header sizes are patched once
// all samples are written:
//
//	file, _ := os.Create("out.wav")
//	err := wav.Encode(file, stream)
//
// Write produces the same canonical 44-byte header for plain io.Writer
// destinations.
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCMSupported: float or compressed data
//   - ErrUnsupportedBitDepth: a sample width that is not whole bytes
package wav
