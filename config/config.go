// SPDX-License-Identifier: EPL-2.0

package config

import (
	"log/slog"
	"time"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// SlogLevel maps l to a slog level; unknown values map to info.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config is the board tooling configuration.
type Config struct {
	// LogLevel controls verbosity.
	LogLevel LogLevel `yaml:"log_level"`

	// Root prefixes every absolute board path. Empty means "/".
	Root string `yaml:"root"`

	Factory FactoryConfig `yaml:"factory"`
	PKCS11  PKCS11Config  `yaml:"pkcs11"`
	Sota    SotaConfig    `yaml:"sota"`
	Device  DeviceConfig  `yaml:"device"`
	Daemon  DaemonConfig  `yaml:"daemon"`
}

// FactoryConfig identifies the Foundries.io factory.
type FactoryConfig struct {
	// RepoID is the factory name (REPOID).
	RepoID string `yaml:"repo_id"`

	// CAPath is the factory root certificate.
	CAPath string `yaml:"ca_path"`
}

// PKCS11Config describes the token holding the device key.
type PKCS11Config struct {
	Module string `yaml:"module"`
	PIN    string `yaml:"pin"`
	SOPIN  string `yaml:"so_pin"`
	// Slot is the object id the device key is imported under.
	Slot string `yaml:"slot"`
}

// SotaConfig locates the aktualizr-lite state.
type SotaConfig struct {
	Dir string `yaml:"dir"`
}

// DeviceConfig holds the identity parameters.
type DeviceConfig struct {
	// NamePrefix is prepended to the SoC UID to form the device name.
	NamePrefix string `yaml:"name_prefix"`

	KeyID  uint32 `yaml:"key_id"`
	CertID uint32 `yaml:"cert_id"`

	// WorkDir receives the intermediate key, CSR and certificate.
	WorkDir  string `yaml:"work_dir"`
	CertDays int    `yaml:"cert_days"`
}

// DaemonConfig controls the provisioning retry loop.
type DaemonConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// Default returns the stock configuration of the board image.
func Default() *Config {
	return &Config{
		LogLevel: LogInfo,
		Factory: FactoryConfig{
			CAPath: "/usr/share/lmp-ele-foundries/root.crt",
		},
		PKCS11: PKCS11Config{
			Module: "/usr/lib/libckteec.so.0",
			PIN:    "87654321",
			SOPIN:  "12345678",
			Slot:   "01",
		},
		Sota: SotaConfig{
			Dir: "/var/sota",
		},
		Device: DeviceConfig{
			NamePrefix: "imx93-eink",
			KeyID:      0x83000042,
			CertID:     0x83000043,
			WorkDir:    "/tmp",
			CertDays:   365,
		},
		Daemon: DaemonConfig{
			Interval: 300 * time.Second,
		},
	}
}
