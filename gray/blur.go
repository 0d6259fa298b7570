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

import (
	"fmt"
	"math"
	"math/bits"
)

// BlurStats reports the work done by a mean filter.
type BlurStats struct {
	// Pixels is the number of pixels filtered (width*height).
	Pixels int

	// WindowCells counts window positions inspected, including those that
	// fall outside the image. For Blur this is Pixels*(2dx+1)*(2dy+1),
	// saturating at math.MaxUint64; for BlurIntegral it is 4 table lookups
	// per pixel.
	WindowCells uint64

	// SamplesRead counts in-bounds samples contributing to a mean.
	SamplesRead uint64
}

func checkWindow(img *Image, dx, dy int, op string) {
	mustImage(img, op)
	if dx < 0 || dy < 0 {
		panic(fmt.Sprintf("gray: %s: negative window %d,%d", op, dx, dy))
	}
}

// clipWindow caps the half sizes at the image dimensions. A larger window
// already covers the whole image from every pixel, and the cap keeps x+dx
// and y+dy from overflowing.
func clipWindow(img *Image, dx, dy int) (int, int) {
	return min(dx, img.width), min(dy, img.height)
}

// windowCells returns (2dx+1)*(2dy+1) for dx, dy >= 0, saturating at
// math.MaxUint64.
func windowCells(dx, dy int) uint64 {
	hi, lo := bits.Mul64(2*uint64(dx)+1, 2*uint64(dy)+1)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

func addSaturated(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// Blur applies a (2dx+1) x (2dy+1) mean filter to img in place.
//
// Each pixel is replaced by the mean, truncated toward zero, of the samples
// in [x-dx, x+dx] x [y-dy, y+dy] that lie inside the image. Cells outside
// the image count neither in the sum nor in the divisor, so edge pixels
// average over fewer samples.
//
// The result is accumulated in a scratch image so every mean reads original
// samples. Cost is Θ(W·H·dx·dy). Requires dx, dy >= 0.
func Blur(img *Image, dx, dy int) (BlurStats, error) {
	checkWindow(img, dx, dy, "Blur")
	width, height := img.width, img.height
	stats := BlurStats{Pixels: width * height}

	scratch, err := New(width, height, img.maxval)
	if err != nil {
		return stats, fmt.Errorf("blur: %w", err)
	}
	defer scratch.Release()

	cells := windowCells(dx, dy)
	dx, dy = clipWindow(img, dx, dy)
	for y := 0; y < height; y++ {
		// Clip the window rows once per output row.
		yStart := max(0, y-dy)
		yEnd := min(height-1, y+dy)
		out := scratch.row(y)
		for x := 0; x < width; x++ {
			xStart := max(0, x-dx)
			xEnd := min(width-1, x+dx)
			count := (yEnd - yStart + 1) * (xEnd - xStart + 1)

			sum := 0
			for ky := yStart; ky <= yEnd; ky++ {
				for _, v := range img.row(ky)[xStart : xEnd+1] {
					sum += int(v)
				}
			}
			out[x] = uint8(sum / count)
			stats.WindowCells = addSaturated(stats.WindowCells, cells)
			stats.SamplesRead += uint64(count)
		}
	}

	copy(img.pix, scratch.pix)
	return stats, nil
}

// BlurIntegral produces exactly the same result as Blur using a summed-area
// table, so each pixel costs four table lookups whatever the window size.
// Total cost is Θ(W·H). Requires dx, dy >= 0.
func BlurIntegral(img *Image, dx, dy int) (BlurStats, error) {
	checkWindow(img, dx, dy, "BlurIntegral")
	dx, dy = clipWindow(img, dx, dy)
	width, height := img.width, img.height
	stats := BlurStats{Pixels: width * height}
	if stats.Pixels == 0 {
		return stats, nil
	}

	// table[(y+1)*iw+(x+1)] holds the sum of all samples in [0,x]x[0,y].
	iw := width + 1
	if height+1 > MaxPixels/iw {
		return stats, fmt.Errorf("blur: %w: summed-area table for %dx%d image",
			ErrAllocation, width, height)
	}
	table := make([]uint64, iw*(height+1))
	for y := 0; y < height; y++ {
		var rowSum uint64
		for x, v := range img.row(y) {
			rowSum += uint64(v)
			table[(y+1)*iw+x+1] = table[y*iw+x+1] + rowSum
		}
	}

	for y := 0; y < height; y++ {
		y0 := max(0, y-dy)
		y1 := min(height-1, y+dy) + 1
		out := img.row(y)
		for x := 0; x < width; x++ {
			x0 := max(0, x-dx)
			x1 := min(width-1, x+dx) + 1
			count := uint64((y1 - y0) * (x1 - x0))
			sum := table[y1*iw+x1] - table[y0*iw+x1] - table[y1*iw+x0] + table[y0*iw+x0]
			out[x] = uint8(sum / count)
			stats.WindowCells += 4
			stats.SamplesRead += count
		}
	}
	return stats, nil
}
