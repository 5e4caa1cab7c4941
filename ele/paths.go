// SPDX-License-Identifier: EPL-2.0

package ele

// Board paths read by the Inspector.
const (
	DevicePath      = "/dev/ele_mu"
	FirmwareDir     = "/lib/firmware/imx/ele"
	SocUIDPath      = "/sys/devices/soc0/soc_uid"
	ProcVersionPath = "/proc/version"
	OSReleasePath   = "/etc/os-release"

	AutoRegisterPath = "/usr/bin/lmp-ele-auto-register"
	AutoRegisterUnit = "lmp-ele-auto-register"
	OTAService       = "aktualizr-lite"

	SotaDBName   = "sql.db"
	SotaTomlName = "sota.toml"
)
