// SPDX-License-Identifier: EPL-2.0

package jaguarbsp

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/jaguarbsp/formats/aiff"
	"github.com/ik5/jaguarbsp/formats/mp3"
	"github.com/ik5/jaguarbsp/formats/vorbis"
	"github.com/ik5/jaguarbsp/formats/wav"
	"github.com/ik5/jaguarbsp/pcm"
)

// DefaultRegistry returns a registry with every decoder this module ships,
// keyed by lower-case file extension.
func DefaultRegistry() *pcm.Registry {
	reg := pcm.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})

	return reg
}

// StdioPath names standard input or output in place of a file path.
const StdioPath = "-"

// LoadStream reads the whole audio file at path. The decoder is picked by
// extension; a path without one, including "-" for standard input, is read
// as WAV.
func LoadStream(path string, reg *pcm.Registry) (*pcm.Stream, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		ext = "wav"
	}

	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", pcm.ErrUnsupportedFormat, ext, strings.Join(reg.Formats(), ", "))
	}

	if path == StdioPath {
		return decode(dec, os.Stdin, "stdin")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	return decode(dec, f, path)
}

func decode(dec pcm.Decoder, r io.Reader, name string) (*pcm.Stream, error) {
	s, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return s, nil
}

// WriteStream writes s to w as a PCM WAV file without seeking.
func WriteStream(w io.Writer, s *pcm.Stream) error {
	return wav.Write(w, s)
}

// SaveStream writes s to path as a PCM WAV file. The data goes to a temporary
// file in the same directory which replaces path only once it is complete,
// so a failed save never leaves a partial file behind.
//
// The path "-" writes to standard output through WriteStream.
func SaveStream(path string, s *pcm.Stream) (err error) {
	if path == StdioPath {
		return WriteStream(os.Stdout, s)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = wav.Encode(tmp, s); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
