// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a normalized sample in [-1,1] to 16-bit PCM.
// Values outside the range are clamped and NaN maps to silence.
func Float32ToInt16(x float32) int16 {
	if x != x {
		return 0
	}
	if x >= 1 {
		return 32767
	}
	if x <= -1 {
		return -32768
	}
	if x < 0 {
		return int16(x * 32768.0)
	}

	return int16(x * 32767.0)
}
