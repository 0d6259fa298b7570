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

import "fmt"

// Match is the outcome of Locate.
type Match struct {
	X, Y  int // top-left corner of the match; valid only when Found
	Found bool

	// Candidates is the number of offsets tried.
	Candidates uint64

	// Comparisons is the number of sample pairs compared, counting the
	// mismatching pair that ends each failed candidate.
	Comparisons uint64
}

// MatchAt reports whether needle equals the region of haystack whose
// top-left corner is (x, y), and how many sample pairs were compared.
//
// Samples are compared in row-major order and the comparison stops at the
// first mismatch. If needle does not fit inside haystack at (x, y) the
// result is (false, 0). Panics unless haystack.ValidPos(x, y).
func MatchAt(haystack *Image, x, y int, needle *Image) (bool, uint64) {
	mustImage(haystack, "MatchAt")
	mustImage(needle, "MatchAt")
	if !haystack.ValidPos(x, y) {
		panic(fmt.Sprintf("gray: MatchAt: position (%d,%d) outside %dx%d haystack",
			x, y, haystack.width, haystack.height))
	}
	if !haystack.ValidRect(x, y, needle.width, needle.height) {
		return false, 0
	}
	var comparisons uint64
	for ny := 0; ny < needle.height; ny++ {
		hrow := haystack.row(y + ny)[x:]
		for nx, v := range needle.row(ny) {
			comparisons++
			if hrow[nx] != v {
				return false, comparisons
			}
		}
	}
	return true, comparisons
}

// Matches reports whether needle equals the region of haystack whose
// top-left corner is (x, y). See MatchAt.
func Matches(haystack *Image, x, y int, needle *Image) bool {
	ok, _ := MatchAt(haystack, x, y, needle)
	return ok
}

// Locate searches haystack for the first region equal to needle.
//
// Candidate offsets are scanned row-major: top row first, left to right
// within a row. The search is brute force with no state shared between
// candidates, so the worst case performs LocateCost comparisons. A needle
// larger than haystack in either dimension, or with zero area, is reported
// as not found without scanning.
func Locate(haystack, needle *Image) Match {
	mustImage(haystack, "Locate")
	mustImage(needle, "Locate")
	var m Match
	if !fits(haystack, needle) {
		return m
	}
	for y := 0; y <= haystack.height-needle.height; y++ {
		for x := 0; x <= haystack.width-needle.width; x++ {
			m.Candidates++
			ok, n := MatchAt(haystack, x, y, needle)
			m.Comparisons += n
			if ok {
				m.X, m.Y, m.Found = x, y, true
				return m
			}
		}
	}
	return m
}

// LocateCost returns the number of sample comparisons Locate performs when
// every candidate compares all of its samples: (W-w+1)(H-h+1)·w·h.
func LocateCost(haystack, needle *Image) uint64 {
	if !fits(haystack, needle) {
		return 0
	}
	nx := uint64(haystack.width - needle.width + 1)
	ny := uint64(haystack.height - needle.height + 1)
	return nx * ny * uint64(needle.width) * uint64(needle.height)
}

func fits(haystack, needle *Image) bool {
	return needle.width > 0 && needle.height > 0 &&
		needle.width <= haystack.width && needle.height <= haystack.height
}
