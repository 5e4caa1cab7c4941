// SPDX-License-Identifier: EPL-2.0

// Command channel-duplicate converts a mono audio file to a stereo WAV file
// carrying the same samples on both channels.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/ik5/jaguarbsp"
)

const usage = "Usage: channel-duplicate <input.wav> <output.wav>\n"

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := pflag.NewFlagSet("channel-duplicate", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return 1
	}
	in, out := fs.Arg(0), fs.Arg(1)

	log := slog.New(slog.NewTextHandler(stderr, nil))
	if err := jaguarbsp.DuplicateChannelFile(in, out); err != nil {
		log.Error("duplicate channel failed", "input", in, "err", err)
		return 1
	}

	log.Info("mono duplicated to stereo", "input", in, "output", out)
	return 0
}
