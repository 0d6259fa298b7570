// Copyright 2025 image8bit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gray

import "math"

// This file provides saturated conversions to the sample type.
// Saturated conversions clamp results to [0, hi] instead of wrapping.

// saturate truncates v toward zero and clamps it to [0, hi].
// NaN saturates to 0.
// For example, with hi = 255: 300.7 -> 255, 12.9 -> 12, -4 -> 0.
func saturate(v float64, hi uint8) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= float64(hi) {
		return hi
	}
	return uint8(v)
}

// saturatedAdd adds a and b, clamping the result to hi.
func saturatedAdd(a, b, hi uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > uint16(hi) {
		return hi
	}
	return uint8(sum)
}

// saturatedSub subtracts b from a, clamping the result at 0.
func saturatedSub(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}
