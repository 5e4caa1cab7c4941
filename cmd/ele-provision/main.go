// SPDX-License-Identifier: EPL-2.0

// Command ele-provision enrolls the board with Foundries.io using a device
// key generated inside the EdgeLock Enclave.
//
// Without --daemon a single attempt is made and a failure exits 1. With
// --daemon the attempt is repeated every daemon.interval (DAEMON_INTERVAL)
// until it succeeds or the process is stopped.
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
	"github.com/ik5/jaguarbsp/provision"
	"github.com/ik5/jaguarbsp/shell"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr, shell.ExecRunner{})
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stderr io.Writer, runner shell.Runner) int {
	fs := pflag.NewFlagSet("ele-provision", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.StringP("config", "c", "", "path to the YAML configuration file")
	daemon := fs.BoolP("daemon", "d", false, "retry until provisioning succeeds")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	root := fs.String("root", "", "prefix for board paths (testing and offline images)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(stderr, "ele-provision: unexpected arguments %v\n", fs.Args())
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "ele-provision: %v\n", err)
		return 1
	}
	if *logLevel != "" {
		cfg.LogLevel = config.LogLevel(*logLevel)
		if !cfg.LogLevel.IsValid() {
			fmt.Fprintf(stderr, "ele-provision: invalid log level %q\n", *logLevel)
			return 1
		}
	}
	if *root != "" {
		cfg.Root = *root
	}

	logger := newLogger(stderr, cfg.LogLevel)

	logger.Info("ELE-based EdgeLock 2GO alternative for i.MX93", "factory", cfg.Factory.RepoID, "daemon", *daemon)

	p := provision.New(cfg, runner, logger)
	if *daemon {
		err = p.Daemon(ctx, cfg.Daemon.Interval)
	} else {
		err = p.Run(ctx)
	}
	if err != nil {
		logger.Error("provisioning failed", "err", err)
		return 1
	}

	return 0
}

func newLogger(w io.Writer, level config.LogLevel) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level.SlogLevel()}))
}
