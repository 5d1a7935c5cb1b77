// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gauges

// Rescale linearly remaps v from the range [r1min, r1max] to the range
// [r2min, r2max]. The ranges may be inverted (r2min > r2max), which is how
// sample values are mapped to a pixel Y axis that grows downward.
//
// Rescale does not clamp: values outside the source range map outside the
// destination range.
func Rescale(v, r1min, r1max, r2min, r2max float64) float64 {
	return (v-r1min)/(r1max-r1min)*(r2max-r2min) + r2min
}
