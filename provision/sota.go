// SPDX-License-Identifier: EPL-2.0

package provision

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ik5/jaguarbsp/config"
)

// SotaConfig is the aktualizr-lite configuration written to sota.toml.
type SotaConfig struct {
	TLS       SotaTLS       `toml:"tls"`
	Provision SotaProvision `toml:"provision"`
	Uptane    SotaUptane    `toml:"uptane"`
	Pacman    SotaPacman    `toml:"pacman"`
	Storage   SotaStorage   `toml:"storage"`
	P11       SotaP11       `toml:"p11"`
}

type SotaTLS struct {
	Server     string `toml:"server"`
	CASource   string `toml:"ca_source"`
	PkeySource string `toml:"pkey_source"`
	CertSource string `toml:"cert_source"`
}

type SotaProvision struct {
	Server string `toml:"server"`
}

type SotaUptane struct {
	RepoServer string `toml:"repo_server"`
	KeySource  string `toml:"key_source"`
}

type SotaPacman struct {
	Type         string `toml:"type"`
	OstreeServer string `toml:"ostree_server"`
}

type SotaStorage struct {
	Type string `toml:"type"`
	Path string `toml:"path"`
}

type SotaP11 struct {
	Module            string `toml:"module"`
	Pass              string `toml:"pass"`
	TLSPkeyID         string `toml:"tls_pkey_id"`
	TLSClientCertPath string `toml:"tls_clientcert_path"`
}

// NewSotaConfig builds the configuration for the factory in cfg. certPath
// is the device certificate handed to the TLS client.
func NewSotaConfig(cfg *config.Config, certPath string) SotaConfig {
	ota := fmt.Sprintf("https://%s.ota-lite.foundries.io:8443", cfg.Factory.RepoID)

	return SotaConfig{
		TLS: SotaTLS{
			Server:     ota,
			CASource:   "file",
			PkeySource: "pkcs11",
			CertSource: "file",
		},
		Provision: SotaProvision{Server: ota},
		Uptane: SotaUptane{
			RepoServer: ota + "/repo",
			KeySource:  "file",
		},
		Pacman: SotaPacman{
			Type:         "ostree+compose_apps",
			OstreeServer: fmt.Sprintf("https://%s.ostree.foundries.io:8443/ostree", cfg.Factory.RepoID),
		},
		Storage: SotaStorage{
			Type: "sqlite",
			Path: cfg.Sota.Dir + "/",
		},
		P11: SotaP11{
			Module:            cfg.PKCS11.Module,
			Pass:              cfg.PKCS11.PIN,
			TLSPkeyID:         cfg.PKCS11.Slot,
			TLSClientCertPath: certPath,
		},
	}
}

// writeSotaConfig encodes sc into dir/sota.toml, creating dir as needed.
func writeSotaConfig(dir string, sc SotaConfig) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(sc); err != nil {
		return "", fmt.Errorf("encode sota.toml: %w", err)
	}

	path := filepath.Join(dir, "sota.toml")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return path, nil
}
