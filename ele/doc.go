// SPDX-License-Identifier: EPL-2.0

// Package ele inspects the EdgeLock Enclave, the Foundries.io factory
// settings and the OTA enrollment state of an i.MX93 board.
//
// Every check reads the board at the moment it is called; nothing is
// cached. Paths are resolved through config.Config.Path so a test (or an
// offline image) can point Root at a directory tree.
//
//	insp := ele.NewInspector(cfg, shell.ExecRunner{})
//	report := ele.NewReport(os.Stdout)
//	ready := ele.Check(ctx, insp, report)
package ele
