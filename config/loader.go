// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path on top of Default, then applies the
// environment. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: open %q: %w", path, err)
		}
		defer f.Close()

		if err := decode(f, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %q: %w", path, err)
		}
	}

	if err := ApplyEnv(cfg, os.Getenv); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromReader decodes a YAML config from r on top of Default and validates
// the result. The environment is not consulted.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := decode(r, cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: decode yaml: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg with the variables the board services export:
// REPOID, PKCS11_PIN, PKCS11_SOPIN, SOTA_DIR and DAEMON_INTERVAL (seconds).
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv("REPOID"); v != "" {
		cfg.Factory.RepoID = v
	}
	if v := getenv("PKCS11_PIN"); v != "" {
		cfg.PKCS11.PIN = v
	}
	if v := getenv("PKCS11_SOPIN"); v != "" {
		cfg.PKCS11.SOPIN = v
	}
	if v := getenv("SOTA_DIR"); v != "" {
		cfg.Sota.Dir = v
	}
	if v := getenv("DAEMON_INTERVAL"); v != "" {
		secs, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: DAEMON_INTERVAL %q: %w", v, err)
		}
		cfg.Daemon.Interval = time.Duration(secs) * time.Second
	}
	return nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
// A missing factory id is not an error here: the status tool reports it.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}
	if cfg.Sota.Dir == "" {
		errs = append(errs, errors.New("sota.dir is required"))
	} else if !filepath.IsAbs(cfg.Sota.Dir) {
		errs = append(errs, fmt.Errorf("sota.dir %q must be absolute", cfg.Sota.Dir))
	}
	if cfg.PKCS11.Module == "" {
		errs = append(errs, errors.New("pkcs11.module is required"))
	}
	if cfg.PKCS11.Slot == "" {
		errs = append(errs, errors.New("pkcs11.slot is required"))
	}
	if cfg.Device.CertDays <= 0 {
		errs = append(errs, fmt.Errorf("device.cert_days must be positive, got %d", cfg.Device.CertDays))
	}
	if cfg.Daemon.Interval <= 0 {
		errs = append(errs, fmt.Errorf("daemon.interval must be positive, got %s", cfg.Daemon.Interval))
	}

	return errors.Join(errs...)
}

// Path joins an absolute board path under cfg.Root.
func (cfg *Config) Path(p string) string {
	if cfg.Root == "" {
		return p
	}
	return filepath.Join(cfg.Root, p)
}
