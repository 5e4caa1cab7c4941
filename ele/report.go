// SPDX-License-Identifier: EPL-2.0

package ele

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Report renders inspection results for a terminal.
type Report struct {
	w io.Writer
}

func NewReport(w io.Writer) *Report {
	return &Report{w: w}
}

func (r *Report) printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

func mark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}

func presence(ok bool) string {
	if ok {
		return "present"
	}
	return "missing"
}

// Banner prints the tool header.
func (r *Report) Banner() {
	r.printf("🔐 ELE-Foundries CLI - i.MX93 Jaguar E-Ink\n")
	r.printf("%s\n", strings.Repeat("=", 42))
}

func (r *Report) ELE(s ELEStatus) {
	r.printf("🔐 EdgeLock Enclave Status:\n")
	r.printf("  %s ELE device: %s (%s)\n", mark(s.DevicePresent), DevicePath, presence(s.DevicePresent))
	if !s.DevicePresent {
		return
	}

	r.printf("  %s ELE firmware: %s (%s)\n", mark(s.FirmwarePresent), FirmwareDir, presence(s.FirmwarePresent))
	for _, fw := range s.Firmware {
		r.printf("    📦 %s\n", fw)
	}
}

func (r *Report) Foundries(s FoundriesStatus) {
	r.printf("\n🏭 Foundries.io Configuration:\n")
	if !s.OK() {
		r.printf("  ❌ Factory ID: Not configured (set REPOID)\n")
		return
	}
	r.printf("  ✅ Factory ID: %s\n", s.FactoryID)

	if s.CAPresent {
		r.printf("  ✅ Factory CA: %s\n", s.CAPath)
	} else {
		r.printf("  ⚠️  Factory CA: %s (missing)\n", s.CAPath)
	}
}

func (r *Report) Provisioning(s ProvisioningStatus) {
	r.printf("\n📋 Device Provisioning Status:\n")
	if s.Provisioned {
		r.printf("  ✅ Device provisioned: OTA database exists\n")
		switch s.Service {
		case ServiceActive:
			r.printf("  ✅ OTA service: %s (active)\n", OTAService)
		case ServiceInactive:
			r.printf("  ⚠️  OTA service: %s (inactive)\n", OTAService)
		default:
			r.printf("  ❓ OTA service: status unknown\n")
		}
	} else {
		r.printf("  ❌ Device not provisioned: No OTA database\n")
	}

	if s.ConfigPresent {
		r.printf("  ✅ OTA config: %s\n", s.ConfigPath)
	} else {
		r.printf("  ❌ OTA config: %s (missing)\n", s.ConfigPath)
	}
}

func (r *Report) DeviceInfo(d DeviceInfo) {
	r.printf("\n💻 Device Information:\n")
	if d.SocUID != "" {
		r.printf("  🆔 Device UUID: %s\n", d.DeviceUUID)
		r.printf("  🔧 SoC UID: %s\n", d.SocUID)
	} else {
		r.printf("  ❓ Device UUID: Could not determine\n")
	}
	if d.Kernel != "" {
		r.printf("  🐧 Kernel: %s\n", d.Kernel)
	}
	if d.OSName != "" {
		r.printf("  🖥️  OS: %s\n", d.OSName)
	}
	if d.FactoryTag != "" {
		r.printf("  🏷️  Factory Tag: %s\n", d.FactoryTag)
	}
}

func (r *Report) RegisterStart() {
	r.printf("\n🚀 Triggering Device Registration:\n")
}

func (r *Report) Register(res RegisterResult) {
	switch {
	case res.AlreadyProvisioned:
		r.printf("  ℹ️  Device already provisioned\n")
	case res.TimedOut:
		r.printf("  ⏰ Registration timed out (may continue in background)\n")
	case res.Stderr != "":
		r.printf("  ❌ Registration failed: %s\n", strings.TrimSpace(res.Stderr))
	case res.Err != nil:
		r.printf("  ❌ Registration error: %v\n", res.Err)
	default:
		r.printf("  ✅ Registration completed successfully\n")
	}
}

func (r *Report) LogsHeader() {
	r.printf("\n📜 Registration Service Logs:\n")
}

func (r *Report) LogsError(err error) {
	r.printf("  ❌ Could not retrieve logs: %v\n", err)
}

// Summary prints the verdict of a full check.
func (r *Report) Summary(ele ELEStatus, foundries FoundriesStatus) {
	r.printf("\n📊 Summary:\n")
	if ele.OK() && foundries.OK() {
		r.printf("  ✅ System ready for Foundries.io registration\n")
		return
	}

	r.printf("  ⚠️  System configuration issues detected\n")
	if !ele.OK() {
		r.printf("    - Check ELE hardware and firmware\n")
	}
	if !foundries.OK() {
		r.printf("    - Configure REPOID and factory certificates\n")
	}
}

// Status prints the ELE, factory and provisioning sections.
func Status(ctx context.Context, i *Inspector, r *Report) {
	r.ELE(i.ELE())
	r.Foundries(i.Foundries())
	r.Provisioning(i.Provisioning(ctx))
}

// Check prints every section plus the summary and reports whether the
// board is ready to register.
func Check(ctx context.Context, i *Inspector, r *Report) bool {
	r.printf("🔍 Comprehensive System Check:\n")
	r.printf("%s\n", strings.Repeat("=", 40))

	eleStatus := i.ELE()
	foundries := i.Foundries()

	r.ELE(eleStatus)
	r.Foundries(foundries)
	r.Provisioning(i.Provisioning(ctx))
	r.DeviceInfo(i.DeviceInfo())
	r.Summary(eleStatus, foundries)

	return eleStatus.OK() && foundries.OK()
}
