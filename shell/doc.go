// SPDX-License-Identifier: EPL-2.0

// Package shell runs the external board tools (openssl, pkcs11-tool,
// systemctl, journalctl, ...) behind the Runner interface so callers can be
// tested without them.
package shell
