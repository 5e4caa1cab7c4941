// SPDX-License-Identifier: EPL-2.0

package provision

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ik5/jaguarbsp/config"
	"github.com/ik5/jaguarbsp/ele"
	"github.com/ik5/jaguarbsp/shell"
)

// MACAddressPath is read when the SoC UID is unavailable.
const MACAddressPath = "/sys/class/net/eth0/address"

// Provisioner drives the enclave and OTA tooling through a shell.Runner.
type Provisioner struct {
	cfg    *config.Config
	runner shell.Runner
	log    *slog.Logger
}

// New returns a Provisioner. A nil logger means slog.Default().
func New(cfg *config.Config, runner shell.Runner, logger *slog.Logger) *Provisioner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provisioner{cfg: cfg, runner: runner, log: logger}
}

func (p *Provisioner) sotaDir() string {
	return p.cfg.Path(p.cfg.Sota.Dir)
}

func (p *Provisioner) workFile(name string) string {
	return filepath.Join(p.cfg.Device.WorkDir, name)
}

// KeyPath is the PEM file the enclave key reference is written to.
func (p *Provisioner) KeyPath(oid uint32) string {
	return p.workFile(fmt.Sprintf("key_%08x.pem", oid))
}

// CSRPath is the device certificate request.
func (p *Provisioner) CSRPath() string { return p.workFile("device.csr") }

// CertPath is the self-signed device certificate.
func (p *Provisioner) CertPath() string { return p.workFile("device.crt") }

// Provisioned reports whether aktualizr-lite already has a database.
func (p *Provisioner) Provisioned() bool {
	_, err := os.Stat(filepath.Join(p.sotaDir(), ele.SotaDBName))
	return err == nil
}

// Run provisions the device once. A provisioned device is a no-op.
func (p *Provisioner) Run(ctx context.Context) error {
	if p.Provisioned() {
		p.log.Info("device already provisioned", "sota_dir", p.cfg.Sota.Dir)
		return nil
	}
	if p.cfg.Factory.RepoID == "" {
		return ErrNoFactory
	}

	if err := p.EnsureIdentity(ctx); err != nil {
		return fmt.Errorf("device identity: %w", err)
	}
	if err := p.ImportKey(ctx, p.cfg.PKCS11.Slot, p.cfg.Device.KeyID); err != nil {
		return fmt.Errorf("import key: %w", err)
	}
	if _, err := p.WriteSotaConfig(); err != nil {
		return fmt.Errorf("ota config: %w", err)
	}
	if _, err := shell.Check(ctx, p.runner, "systemctl", "start", ele.OTAService); err != nil {
		return fmt.Errorf("start %s: %w", ele.OTAService, err)
	}

	p.log.Info("device provisioning complete", "factory", p.cfg.Factory.RepoID)
	return nil
}

// Daemon calls Run every interval until it succeeds or ctx ends.
func (p *Provisioner) Daemon(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("daemon interval must be positive, got %s", interval)
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	for attempt := 1; ; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		err := p.Run(ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrNoFactory) {
			return err
		}

		p.log.Warn("provisioning failed, retrying", "attempt", attempt, "retry_in", interval, "err", err)
		timer.Reset(interval)
	}
}

// EnsureIdentity creates the device key and certificate unless the enclave
// already holds the key.
func (p *Provisioner) EnsureIdentity(ctx context.Context) error {
	oid := p.cfg.Device.KeyID
	if p.HasObject(ctx, oid) {
		p.log.Info("device identity already exists in ELE", "oid", fmt.Sprintf("0x%08x", oid))
		return nil
	}

	p.log.Info("generating device identity in ELE")
	if err := p.GenerateKeypair(ctx, oid); err != nil {
		return err
	}

	return p.GenerateDeviceCertificate(ctx)
}

// HasObject reports whether the enclave lists object oid. A failing tool
// counts as absent.
func (p *Provisioner) HasObject(ctx context.Context, oid uint32) bool {
	res, err := p.runner.Run(ctx, "ele-dev-tools", "test", "key_management")
	if err != nil {
		p.log.Debug("ele-dev-tools failed", "err", err)
		return false
	}
	return strings.Contains(res.Stdout, fmt.Sprintf("0x%08x", oid))
}

func pkcs11URI(oid uint32) string {
	return fmt.Sprintf("pkcs11:id=%08x;type=private", oid)
}

// GenerateKeypair creates an EC key inside the enclave.
func (p *Provisioner) GenerateKeypair(ctx context.Context, oid uint32) error {
	_, err := shell.Check(ctx, p.runner, "openssl", "genpkey",
		"-algorithm", "EC",
		"-pkcs11",
		"-engine", "pkcs11",
		"-pkcs11_uri", pkcs11URI(oid),
		"-out", p.KeyPath(oid),
	)
	if err != nil {
		return err
	}

	p.log.Info("generated keypair in ELE", "oid", fmt.Sprintf("0x%08x", oid))
	return nil
}

// GenerateDeviceCertificate requests and self-signs a certificate for the
// device key.
func (p *Provisioner) GenerateDeviceCertificate(ctx context.Context) error {
	serial, err := p.DeviceSerial()
	if err != nil {
		return err
	}
	oid := p.cfg.Device.KeyID

	_, err = shell.Check(ctx, p.runner, "openssl", "req", "-new",
		"-engine", "pkcs11",
		"-keyform", "engine",
		"-key", pkcs11URI(oid),
		"-out", p.CSRPath(),
		"-subj", "/CN="+p.cfg.Device.NamePrefix+"-"+serial,
	)
	if err != nil {
		return err
	}

	_, err = shell.Check(ctx, p.runner, "openssl", "x509", "-req",
		"-in", p.CSRPath(),
		"-signkey", p.KeyPath(oid),
		"-out", p.CertPath(),
		"-days", fmt.Sprint(p.cfg.Device.CertDays),
	)
	if err != nil {
		return err
	}

	p.log.Info("generated device certificate", "path", p.CertPath())
	return nil
}

// ImportKey writes the enclave key reference into the PKCS#11 token under
// slot.
func (p *Provisioner) ImportKey(ctx context.Context, slot string, oid uint32) error {
	_, err := shell.Check(ctx, p.runner, "pkcs11-tool",
		"--module="+p.cfg.PKCS11.Module,
		"--pin="+p.cfg.PKCS11.PIN,
		"--write-object", p.KeyPath(oid),
		"--type=privkey",
		"--id="+slot,
		fmt.Sprintf("--label=ELE_%08x", oid),
	)
	if err != nil {
		return err
	}

	p.log.Info("imported key to PKCS#11", "oid", fmt.Sprintf("0x%08x", oid), "slot", slot)
	return nil
}

// DeviceSerial returns the SoC UID, or the eth0 MAC address without colons
// when the UID cannot be read.
func (p *Provisioner) DeviceSerial() (string, error) {
	if uid, err := os.ReadFile(p.cfg.Path(ele.SocUIDPath)); err == nil {
		if s := strings.TrimSpace(string(uid)); s != "" {
			return s, nil
		}
	}

	mac, err := os.ReadFile(p.cfg.Path(MACAddressPath))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoSerial, err)
	}
	s := strings.ReplaceAll(strings.TrimSpace(string(mac)), ":", "")
	if s == "" {
		return "", ErrNoSerial
	}

	return s, nil
}

// WriteSotaConfig writes sota.toml for the configured factory and returns
// its path.
func (p *Provisioner) WriteSotaConfig() (string, error) {
	path, err := writeSotaConfig(p.sotaDir(), NewSotaConfig(p.cfg, p.CertPath()))
	if err != nil {
		return "", err
	}

	p.log.Info("created OTA configuration", "path", path)
	return path, nil
}
