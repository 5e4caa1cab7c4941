// SPDX-License-Identifier: EPL-2.0

package utils

// PutSample stores v as a little-endian sample of len(dst) bytes.
// 8-bit samples are unsigned, as in WAV; wider ones are two's complement.
func PutSample(dst []byte, v int) {
	for i := range dst {
		dst[i] = byte(v >> (8 * i))
	}
}

// Sample reads a little-endian sample of len(src) bytes, the inverse of PutSample.
func Sample(src []byte) int {
	switch len(src) {
	case 0:
		return 0
	case 1:
		return int(src[0])
	}

	var v int
	for i, b := range src {
		v |= int(b) << (8 * i)
	}
	// sign-extend from the top bit of the last byte
	shift := 8 * len(src)
	if v&(1<<(shift-1)) != 0 {
		v -= 1 << shift
	}

	return v
}

// IntsToBytes packs samples into a little-endian byte payload of the given width.
func IntsToBytes(samples []int, width int) []byte {
	out := make([]byte, len(samples)*width)
	for i, v := range samples {
		PutSample(out[i*width:(i+1)*width], v)
	}

	return out
}

// BytesToInts unpacks a little-endian payload. A trailing partial sample is dropped.
func BytesToInts(data []byte, width int) []int {
	if width <= 0 {
		return nil
	}
	n := len(data) / width
	out := make([]int, n)
	for i := range n {
		out[i] = Sample(data[i*width : (i+1)*width])
	}

	return out
}
