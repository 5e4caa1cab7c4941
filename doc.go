// SPDX-License-Identifier: EPL-2.0

// Package jaguarbsp holds the board-support tooling for the i.MX93 Jaguar
// E-Ink board: audio channel utilities used by the board scripts, and the
// EdgeLock Enclave status and Foundries.io provisioning helpers.
//
// # Audio Channel Utilities
//
// The two file level operations read one audio file completely, transform
// the samples and write a new PCM WAV file:
//
//	// keep the right channel of a stereo capture
//	err := jaguarbsp.ExtractChannelFile("capture.wav", "right.wav", 1)
//
//	// play a mono prompt on both speakers
//	err := jaguarbsp.DuplicateChannelFile("prompt.wav", "prompt-stereo.wav")
//
// Inputs may be WAV, AIFF, MP3 or Ogg Vorbis; see DefaultRegistry. Outputs are
// always WAV, written atomically through SaveStream.
//
// # Subpackages
//
//   - pcm: the in-memory Stream and decoder registry
//   - channel: byte level Extract, Duplicate and Interleave
//   - formats/...: decoders (and the WAV encoder)
//   - ele: EdgeLock Enclave and OTA status inspection
//   - provision: device identity and sota.toml provisioning
//   - config: YAML plus environment configuration
//   - shell: running external tools
//
// Command line front-ends live under cmd/.
package jaguarbsp
