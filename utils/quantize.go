// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// QuantizeInt16 converts a float32 sample in [-1, 1] to 16-bit PCM.
// The sample is clamped first, then scaled by 32768 on the negative side
// and 32767 on the positive side so both extremes map onto the full int16
// range, and rounded to the nearest integer.
func QuantizeInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	scale := 32767.0
	if x < 0 {
		scale = 32768.0
	}

	return int16(math.Round(float64(x) * scale))
}
