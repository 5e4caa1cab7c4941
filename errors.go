// SPDX-License-Identifier: EPL-2.0

package jaguarbsp

import "errors"

// ErrUsage is returned by the command line front-ends for malformed arguments.
var ErrUsage = errors.New("usage error")
