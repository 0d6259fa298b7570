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

// Package analysis computes histogram based statistics over gray images.
package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/detiuaveiro/image8bit/gray"
)

// Levels is the number of histogram bins, one per possible sample value.
const Levels = gray.PixMax + 1

// Histogram counts how many samples of img have each level.
func Histogram(img *gray.Image) [Levels]int {
	if img == nil {
		panic("analysis: Histogram: nil image")
	}
	var h [Levels]int
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			h[img.At(x, y)]++
		}
	}
	return h
}

// Summary holds descriptive statistics of the samples of an image.
type Summary struct {
	Pixels   int
	Min, Max uint8
	Mean     float64
	StdDev   float64 // population standard deviation
	Median   uint8   // lower median
}

// Summarize returns the descriptive statistics of img. An empty image
// yields the zero Summary.
func Summarize(img *gray.Image) Summary {
	levels, weights := weighted(Histogram(img))
	if len(levels) == 0 {
		return Summary{}
	}
	var s Summary
	s.Pixels = int(floats.Sum(weights))
	s.Min, s.Max = img.Stats()
	s.Mean, s.StdDev = stat.PopMeanStdDev(levels, weights)
	s.Median = uint8(stat.Quantile(0.5, stat.Empirical, levels, weights))
	return s
}

// weighted returns the levels present in h in increasing order, with their
// counts as weights.
func weighted(h [Levels]int) (levels, weights []float64) {
	for v, n := range h {
		if n == 0 {
			continue
		}
		levels = append(levels, float64(v))
		weights = append(weights, float64(n))
	}
	return levels, weights
}

// OtsuThreshold returns the level that best separates img into two classes,
// maximising the between-class variance of Otsu's method. The result is
// meant for gray.Threshold: samples at or above it form the bright class.
//
// An image with a single level returns that level, and an empty image
// returns 0.
func OtsuThreshold(img *gray.Image) uint8 {
	h := Histogram(img)
	var total, sum float64
	for v, n := range h {
		total += float64(n)
		sum += float64(v * n)
	}
	if total == 0 {
		return 0
	}

	// between[k] is the variance for the split {0..k} | {k+1..255}.
	var between [Levels]float64
	var w0, sum0 float64
	for k := 0; k < Levels-1; k++ {
		w0 += float64(h[k])
		sum0 += float64(k * h[k])
		w1 := total - w0
		if w0 == 0 || w1 == 0 {
			continue
		}
		d := sum0/w0 - (sum-sum0)/w1
		between[k] = w0 * w1 * d * d
	}
	k := floats.MaxIdx(between[:])
	if between[k] == 0 {
		lo, _ := img.Stats()
		return lo
	}
	return uint8(k + 1)
}
