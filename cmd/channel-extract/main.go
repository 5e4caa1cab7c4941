// SPDX-License-Identifier: EPL-2.0

// Command channel-extract writes one channel of a stereo audio file to a
// mono WAV file.
//
//	channel-extract <input> <output.wav> <channel>
//
// channel is 0 for left (CH0) or 1 for right (CH1).
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/ik5/jaguarbsp"
)

const usage = `Usage: channel-extract <input.wav> <output.wav> <channel>
  channel: 0 for left (CH0), 1 for right (CH1)
`

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := pflag.NewFlagSet("channel-extract", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	// positional arguments end flag parsing, so a selector like -1 stays an argument
	fs.SetInterspersed(false)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}

	log := slog.New(slog.NewTextHandler(stderr, nil))

	if fs.NArg() != 3 {
		fs.Usage()
		return 1
	}
	in, out := fs.Arg(0), fs.Arg(1)

	sel, err := strconv.Atoi(fs.Arg(2))
	if err != nil {
		log.Error("invalid channel", "err", fmt.Errorf("%w: channel %q is not an integer", jaguarbsp.ErrUsage, fs.Arg(2)))
		fs.Usage()
		return 1
	}

	if err := jaguarbsp.ExtractChannelFile(in, out, sel); err != nil {
		log.Error("extract channel failed", "input", in, "channel", sel, "err", err)
		return 1
	}

	log.Info("channel extracted", "input", in, "output", out, "channel", sel)
	return 0
}
