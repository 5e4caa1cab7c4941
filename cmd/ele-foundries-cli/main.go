// SPDX-License-Identifier: EPL-2.0

// Command ele-foundries-cli reports the EdgeLock Enclave and Foundries.io
// state of the board and triggers device registration.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/ik5/jaguarbsp/config"
	"github.com/ik5/jaguarbsp/ele"
	"github.com/ik5/jaguarbsp/shell"
)

var commands = []struct {
	name string
	help string
}{
	{"status", "Show system status"},
	{"info", "Show device information"},
	{"register", "Register device with factory"},
	{"logs", "Show registration service logs"},
	{"check", "Run comprehensive system check"},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, shell.ExecRunner{})
	stop()
	os.Exit(code)
}

func printHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, "usage: ele-foundries-cli [flags] <command>\n\n")
	fmt.Fprintf(w, "ELE-Foundries CLI - EdgeLock Enclave integration with Foundries.io\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.help)
	}
	fmt.Fprintf(w, "\nFlags:\n%s", fs.FlagUsages())
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, runner shell.Runner) int {
	fs := pflag.NewFlagSet("ele-foundries-cli", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.StringP("config", "c", "", "path to the YAML configuration file")
	root := fs.String("root", "", "prefix for board paths (testing and offline images)")
	fs.Usage = func() { printHelp(stdout, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}

	if fs.NArg() == 0 {
		printHelp(stdout, fs)
		return 0
	}
	command := fs.Arg(0)

	known := false
	for _, c := range commands {
		known = known || c.name == command
	}
	if !known || fs.NArg() > 1 {
		fmt.Fprintf(stderr, "ele-foundries-cli: invalid command %q\n\n", command)
		printHelp(stderr, fs)
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "ele-foundries-cli: %v\n", err)
		return 1
	}
	if *root != "" {
		cfg.Root = *root
	}
	log := newLogger(stderr, cfg.LogLevel)

	insp := ele.NewInspector(cfg, runner)
	report := ele.NewReport(stdout)
	report.Banner()

	switch command {
	case "status":
		ele.Status(ctx, insp, report)
	case "info":
		report.DeviceInfo(insp.DeviceInfo())
	case "register":
		report.RegisterStart()
		res := insp.Register(ctx)
		report.Register(res)
		if !res.OK() {
			return 1
		}
	case "logs":
		report.LogsHeader()
		if err := insp.Logs(ctx, stdout); err != nil {
			report.LogsError(err)
			log.Debug("journalctl failed", "err", err)
			return 1
		}
	case "check":
		if !ele.Check(ctx, insp, report) {
			log.Debug("system not ready for registration")
		}
	}

	return 0
}

func newLogger(w io.Writer, level config.LogLevel) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level.SlogLevel()}))
}
