// SPDX-License-Identifier: EPL-2.0

package ele

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/ik5/jaguarbsp/config"
	"github.com/ik5/jaguarbsp/shell"
)

// RegisterTimeout bounds the auto-register helper.
const RegisterTimeout = 300 * time.Second

// ServiceState is the systemd state of the OTA client.
type ServiceState string

const (
	ServiceActive   ServiceState = "active"
	ServiceInactive ServiceState = "inactive"
	ServiceUnknown  ServiceState = "unknown"
)

// ELEStatus describes the secure element.
type ELEStatus struct {
	DevicePresent   bool
	FirmwarePresent bool
	Firmware        []string
}

// OK reports whether the enclave can be used.
func (s ELEStatus) OK() bool { return s.DevicePresent }

// FoundriesStatus describes the factory configuration.
type FoundriesStatus struct {
	FactoryID string
	CAPath    string
	CAPresent bool
}

// OK reports whether a factory is configured.
func (s FoundriesStatus) OK() bool { return s.FactoryID != "" }

// ProvisioningStatus describes the OTA enrollment.
type ProvisioningStatus struct {
	Provisioned   bool
	Service       ServiceState
	ConfigPath    string
	ConfigPresent bool
}

// DeviceInfo holds identity and OS facts. Empty fields could not be read.
type DeviceInfo struct {
	SocUID     string
	DeviceUUID string
	Kernel     string
	OSName     string
	FactoryTag string
}

// RegisterResult is the outcome of Register.
type RegisterResult struct {
	AlreadyProvisioned bool
	TimedOut           bool
	Stderr             string
	Err                error
}

// OK reports whether the device is, or became, registered.
func (r RegisterResult) OK() bool {
	return r.AlreadyProvisioned || (!r.TimedOut && r.Err == nil)
}

// Inspector reads ELE, factory and OTA state from the board.
type Inspector struct {
	cfg    *config.Config
	runner shell.Runner
}

func NewInspector(cfg *config.Config, runner shell.Runner) *Inspector {
	return &Inspector{cfg: cfg, runner: runner}
}

func (i *Inspector) exists(p string) bool {
	_, err := os.Stat(i.cfg.Path(p))
	return err == nil
}

func (i *Inspector) sotaPath(name string) string {
	return filepath.Join(i.cfg.Sota.Dir, name)
}

// ELE checks the enclave device node and its firmware directory.
func (i *Inspector) ELE() ELEStatus {
	st := ELEStatus{DevicePresent: i.exists(DevicePath)}

	entries, err := os.ReadDir(i.cfg.Path(FirmwareDir))
	if err != nil {
		return st
	}
	st.FirmwarePresent = true
	for _, e := range entries {
		st.Firmware = append(st.Firmware, e.Name())
	}
	slices.Sort(st.Firmware)

	return st
}

// Foundries checks the factory id and the factory CA certificate.
func (i *Inspector) Foundries() FoundriesStatus {
	return FoundriesStatus{
		FactoryID: i.cfg.Factory.RepoID,
		CAPath:    i.cfg.Factory.CAPath,
		CAPresent: i.cfg.Factory.CAPath != "" && i.exists(i.cfg.Factory.CAPath),
	}
}

// Provisioning checks the OTA database and configuration. The service state
// is only queried on a provisioned device.
func (i *Inspector) Provisioning(ctx context.Context) ProvisioningStatus {
	st := ProvisioningStatus{
		Provisioned:   i.exists(i.sotaPath(SotaDBName)),
		Service:       ServiceUnknown,
		ConfigPath:    i.sotaPath(SotaTomlName),
		ConfigPresent: i.exists(i.sotaPath(SotaTomlName)),
	}

	if st.Provisioned {
		st.Service = i.serviceState(ctx, OTAService)
	}

	return st
}

func (i *Inspector) serviceState(ctx context.Context, unit string) ServiceState {
	res, err := i.runner.Run(ctx, "systemctl", "is-active", unit)
	if err != nil {
		return ServiceUnknown
	}
	if res.ExitCode == 0 {
		return ServiceActive
	}
	return ServiceInactive
}

// DeviceInfo reads the SoC UID, kernel release and os-release fields.
func (i *Inspector) DeviceInfo() DeviceInfo {
	var info DeviceInfo

	if uid, err := os.ReadFile(i.cfg.Path(SocUIDPath)); err == nil {
		info.SocUID = strings.TrimSpace(string(uid))
		if info.SocUID != "" {
			info.DeviceUUID = i.cfg.Device.NamePrefix + "-" + info.SocUID
		}
	}

	if version, err := os.ReadFile(i.cfg.Path(ProcVersionPath)); err == nil {
		// "Linux version 6.6.23-lmp-standard (...) ..."
		if fields := strings.Fields(string(version)); len(fields) > 2 {
			info.Kernel = fields[2]
		}
	}

	if f, err := os.Open(i.cfg.Path(OSReleasePath)); err == nil {
		info.OSName, info.FactoryTag = parseOSRelease(f)
		f.Close()
	}

	return info
}

func parseOSRelease(r io.Reader) (prettyName, factoryTag string) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), "=")
		if !ok {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"`)
		switch key {
		case "PRETTY_NAME":
			prettyName = value
		case "LMP_FACTORY_TAG":
			factoryTag = value
		}
	}
	return prettyName, factoryTag
}

// Register runs the auto-register helper unless the device is already
// provisioned.
func (i *Inspector) Register(ctx context.Context) RegisterResult {
	if i.exists(i.sotaPath(SotaDBName)) {
		return RegisterResult{AlreadyProvisioned: true}
	}

	ctx, cancel := context.WithTimeout(ctx, RegisterTimeout)
	defer cancel()

	res, err := i.runner.Run(ctx, AutoRegisterPath)
	if errors.Is(err, context.DeadlineExceeded) {
		return RegisterResult{TimedOut: true}
	}
	if err != nil {
		return RegisterResult{Err: err}
	}
	if res.ExitCode != 0 {
		return RegisterResult{
			Stderr: res.Stderr,
			Err:    &shell.ExitError{Cmd: AutoRegisterPath, Code: res.ExitCode, Stderr: res.Stderr},
		}
	}

	return RegisterResult{}
}

// Logs copies the last 20 journal lines of the register unit to w.
func (i *Inspector) Logs(ctx context.Context, w io.Writer) error {
	res, err := i.runner.Run(ctx, "journalctl", "-u", AutoRegisterUnit, "--no-pager", "-n", "20")
	if err != nil {
		return fmt.Errorf("journalctl: %w", err)
	}

	if _, err := io.WriteString(w, res.Stdout); err != nil {
		return fmt.Errorf("write logs: %w", err)
	}
	if res.ExitCode != 0 {
		return &shell.ExitError{Cmd: "journalctl", Code: res.ExitCode, Stderr: res.Stderr}
	}

	return nil
}
