// SPDX-License-Identifier: EPL-2.0

// Package provision enrolls an i.MX93 board with Foundries.io using a key
// held by the EdgeLock Enclave.
//
// A run generates the device key and a self-signed certificate unless the
// enclave already holds the key, imports the key into the PKCS#11 token,
// writes sota.toml and starts aktualizr-lite. A board with an OTA database
// is left untouched.
package provision
