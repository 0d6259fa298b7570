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

// Point operations modify the levels of img in place without touching
// geometry. They never allocate and never fail.

func mustImage(img *Image, op string) {
	if img == nil {
		panic("gray: " + op + ": nil image")
	}
}

// Negative transforms img into its photographic negative: v -> maxval - v.
// Applying it twice restores the original.
func Negative(img *Image) {
	mustImage(img, "Negative")
	for i, v := range img.pix {
		img.pix[i] = img.maxval - v
	}
}

// Threshold sets every level below thr to black (0) and every other level
// to white (maxval).
func Threshold(img *Image, thr uint8) {
	mustImage(img, "Threshold")
	for i, v := range img.pix {
		if v < thr {
			img.pix[i] = 0
		} else {
			img.pix[i] = img.maxval
		}
	}
}

// Brighten multiplies every level by factor, truncating toward zero and
// saturating at maxval. Negative factors are treated as 0. Factors above 1
// brighten the image; factors below 1 darken it.
func Brighten(img *Image, factor float64) {
	mustImage(img, "Brighten")
	factor = max(factor, 0)
	for i, v := range img.pix {
		img.pix[i] = saturate(float64(v)*factor, img.maxval)
	}
}

// Shift adds delta to every level, saturating at 0 and maxval.
func Shift(img *Image, delta int) {
	mustImage(img, "Shift")
	switch {
	case delta > 0:
		d := uint8(min(delta, PixMax))
		for i, v := range img.pix {
			img.pix[i] = saturatedAdd(v, d, img.maxval)
		}
	case delta < 0:
		d := uint8(min(-delta, PixMax))
		for i, v := range img.pix {
			img.pix[i] = saturatedSub(v, d)
		}
	}
}
