// SPDX-License-Identifier: EPL-2.0

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ik5/jaguarbsp/config"
)

func TestLoadFromReader_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}

	if cfg.Sota.Dir != "/var/sota" {
		t.Errorf("Sota.Dir = %q, want /var/sota", cfg.Sota.Dir)
	}
	if cfg.PKCS11.PIN != "87654321" || cfg.PKCS11.SOPIN != "12345678" {
		t.Errorf("PINs = %q/%q", cfg.PKCS11.PIN, cfg.PKCS11.SOPIN)
	}
	if cfg.Device.KeyID != 0x83000042 || cfg.Device.CertID != 0x83000043 {
		t.Errorf("object ids = %#x/%#x", cfg.Device.KeyID, cfg.Device.CertID)
	}
	if cfg.Daemon.Interval != 300*time.Second {
		t.Errorf("Daemon.Interval = %s, want 5m0s", cfg.Daemon.Interval)
	}
}

func TestLoadFromReader_Overrides(t *testing.T) {
	t.Parallel()

	yaml := `
log_level: debug
factory:
  repo_id: jaguar-fleet
pkcs11:
  slot: "02"
sota:
  dir: /data/sota
daemon:
  interval: 30s
`
	cfg, err := config.LoadFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}

	if cfg.LogLevel != config.LogDebug {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Factory.RepoID != "jaguar-fleet" {
		t.Errorf("RepoID = %q", cfg.Factory.RepoID)
	}
	if cfg.PKCS11.Slot != "02" {
		t.Errorf("Slot = %q, want 02", cfg.PKCS11.Slot)
	}
	if cfg.PKCS11.Module != "/usr/lib/libckteec.so.0" {
		t.Errorf("Module = %q, default should survive", cfg.PKCS11.Module)
	}
	if cfg.Daemon.Interval != 30*time.Second {
		t.Errorf("Interval = %s, want 30s", cfg.Daemon.Interval)
	}
}

func TestLoadFromReader_UnknownField(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFromReader(strings.NewReader("factory:\n  repoid: x\n"))
	if err == nil {
		t.Fatal("expected error for unknown field, got nil")
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	yaml := `
log_level: verbose
sota:
  dir: relative/sota
device:
  cert_days: 0
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	for _, want := range []string{"log_level", "sota.dir", "cert_days"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %s, got: %v", want, err)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"REPOID":          "factory-x",
		"PKCS11_PIN":      "1111",
		"PKCS11_SOPIN":    "2222",
		"SOTA_DIR":        "/mnt/sota",
		"DAEMON_INTERVAL": "60",
	}

	cfg := config.Default()
	if err := config.ApplyEnv(cfg, func(k string) string { return env[k] }); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	if cfg.Factory.RepoID != "factory-x" || cfg.PKCS11.PIN != "1111" || cfg.PKCS11.SOPIN != "2222" {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.Sota.Dir != "/mnt/sota" {
		t.Errorf("Sota.Dir = %q", cfg.Sota.Dir)
	}
	if cfg.Daemon.Interval != time.Minute {
		t.Errorf("Interval = %s, want 1m0s", cfg.Daemon.Interval)
	}
}

func TestApplyEnv_BadInterval(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	err := config.ApplyEnv(cfg, func(k string) string {
		if k == "DAEMON_INTERVAL" {
			return "soon"
		}
		return ""
	})
	if err == nil || !strings.Contains(err.Error(), "DAEMON_INTERVAL") {
		t.Errorf("ApplyEnv() error = %v, want DAEMON_INTERVAL error", err)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	if err := os.WriteFile(path, []byte("factory:\n  repo_id: from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("REPOID", "")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Factory.RepoID != "from-file" {
		t.Errorf("RepoID = %q, want from-file", cfg.Factory.RepoID)
	}
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	if err := os.WriteFile(path, []byte("factory:\n  repo_id: from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("REPOID", "from-env")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Factory.RepoID != "from-env" {
		t.Errorf("RepoID = %q, want from-env", cfg.Factory.RepoID)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestConfig_Path(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	if got := cfg.Path("/var/sota"); got != "/var/sota" {
		t.Errorf("Path() = %q", got)
	}

	cfg.Root = "/tmp/board"
	if got := cfg.Path("/var/sota"); got != "/tmp/board/var/sota" {
		t.Errorf("Path() with root = %q", got)
	}
}

func TestLogLevel(t *testing.T) {
	t.Parallel()

	for _, l := range []config.LogLevel{config.LogDebug, config.LogInfo, config.LogWarn, config.LogError} {
		if !l.IsValid() {
			t.Errorf("%q.IsValid() = false", l)
		}
	}
	if config.LogLevel("trace").IsValid() {
		t.Error(`"trace".IsValid() = true`)
	}
}
