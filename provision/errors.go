// SPDX-License-Identifier: EPL-2.0

package provision

import "errors"

var (
	// ErrNoFactory is returned when no factory id (REPOID) is configured.
	ErrNoFactory = errors.New("factory id not configured (set REPOID)")

	// ErrNoSerial is returned when neither the SoC UID nor a MAC address
	// can be read.
	ErrNoSerial = errors.New("could not determine device serial")
)
