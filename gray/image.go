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
	"slices"
)

// PixMax is the largest maxval accepted by New.
const PixMax = 255

// MaxPixels bounds the number of samples a single image may hold.
// Requests above it fail with ErrAllocation instead of exhausting memory.
const MaxPixels = 1 << 30

// Image is an 8-bit grayscale raster stored as a row-major array.
// Pixel (x, y) lives at index y*width + x.
//
// The zero value is an empty 0x0 image with maxval 0 and is only useful
// as a released image; use New to create images.
type Image struct {
	pix    []uint8
	width  int
	height int
	maxval uint8 // level of pure white
}

// New creates a black image of the given dimensions.
//
// Requires width >= 0, height >= 0 and 0 < maxval <= PixMax; violations
// panic. Returns an error wrapping ErrAllocation when the pixel array
// cannot be allocated.
func New(width, height int, maxval uint8) (*Image, error) {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("gray: negative dimensions %dx%d", width, height))
	}
	if maxval == 0 {
		panic("gray: maxval must be positive")
	}
	if width != 0 && height > MaxPixels/width {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrAllocation, width, height, MaxPixels)
	}
	return &Image{
		pix:    make([]uint8, width*height),
		width:  width,
		height: height,
		maxval: maxval,
	}, nil
}

// FromSamples creates an image holding a copy of samples, which must be
// laid out row-major and contain exactly width*height values, each at most
// maxval.
func FromSamples(width, height int, maxval uint8, samples []uint8) (*Image, error) {
	img, err := New(width, height, maxval)
	if err != nil {
		return nil, err
	}
	if len(samples) != len(img.pix) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSize, len(samples), len(img.pix))
	}
	for i, v := range samples {
		if v > maxval {
			return nil, fmt.Errorf("%w: sample %d at (%d,%d) > %d",
				ErrSampleRange, v, i%width, i/width, maxval)
		}
	}
	copy(img.pix, samples)
	return img, nil
}

// Release drops the pixel storage and leaves img as an empty image.
// Calling Release on a nil or already released image does nothing.
func (img *Image) Release() {
	if img == nil {
		return
	}
	img.pix = nil
	img.width = 0
	img.height = 0
}

// Width returns the image width in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image) Height() int {
	return img.height
}

// Maxval returns the gray level of pure white.
func (img *Image) Maxval() uint8 {
	return img.maxval
}

// Bounds returns the rectangle covering the whole image.
func (img *Image) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: img.width, Y1: img.height}
}

// ValidPos reports whether (x, y) lies inside img.
func (img *Image) ValidPos(x, y int) bool {
	return 0 <= x && x < img.width && 0 <= y && y < img.height
}

// ValidRect reports whether the w x h rectangle with top-left corner (x, y)
// is non-empty and lies completely inside img.
func (img *Image) ValidRect(x, y, w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	return Region(x, y, w, h).In(img.Bounds())
}

// index transforms (x, y) into a linear pixel index.
func (img *Image) index(x, y int) int {
	if !img.ValidPos(x, y) {
		panic(fmt.Sprintf("gray: position (%d,%d) outside %dx%d image", x, y, img.width, img.height))
	}
	return y*img.width + x
}

// At returns the sample at (x, y). Panics if the position is invalid.
func (img *Image) At(x, y int) uint8 {
	return img.pix[img.index(x, y)]
}

// Set stores level at (x, y). Panics if the position is invalid or level
// exceeds maxval.
func (img *Image) Set(x, y int, level uint8) {
	i := img.index(x, y)
	if level > img.maxval {
		panic(fmt.Sprintf("gray: level %d exceeds maxval %d", level, img.maxval))
	}
	img.pix[i] = level
}

// row returns the samples of row y, sharing storage with img.
func (img *Image) row(y int) []uint8 {
	start := y * img.width
	return img.pix[start : start+img.width]
}

// Stats returns the minimum and maximum gray levels in img.
// An empty image reports (0, 0).
func (img *Image) Stats() (lo, hi uint8) {
	if len(img.pix) == 0 {
		return 0, 0
	}
	lo, hi = PixMax, 0
	for _, v := range img.pix {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// Samples returns a row-major copy of the pixel array.
func (img *Image) Samples() []uint8 {
	return slices.Clone(img.pix)
}

// Clone creates a deep copy of the image.
func (img *Image) Clone() *Image {
	return &Image{
		pix:    slices.Clone(img.pix),
		width:  img.width,
		height: img.height,
		maxval: img.maxval,
	}
}

// Fill sets every sample to level. Panics if level exceeds maxval.
func (img *Image) Fill(level uint8) {
	if level > img.maxval {
		panic(fmt.Sprintf("gray: level %d exceeds maxval %d", level, img.maxval))
	}
	for i := range img.pix {
		img.pix[i] = level
	}
}

// Equal reports whether a and b have the same dimensions, maxval and
// samples.
func Equal(a, b *Image) bool {
	return a.width == b.width && a.height == b.height &&
		a.maxval == b.maxval && slices.Equal(a.pix, b.pix)
}

// Rect defines a rectangular region within an image.
type Rect struct {
	X0, Y0 int // Top-left corner (inclusive)
	X1, Y1 int // Bottom-right corner (exclusive)
}

// Region returns the w x h rectangle with top-left corner (x, y).
func Region(x, y, w, h int) Rect {
	return Rect{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

// Width returns the rectangle width.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the rectangle height.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Intersect returns the intersection of two rectangles.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X0, other.X0)
	y0 := max(r.Y0, other.Y0)
	x1 := min(r.X1, other.X1)
	y1 := min(r.Y1, other.Y1)
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// In reports whether r is non-empty and lies completely inside other.
func (r Rect) In(other Rect) bool {
	return !r.IsEmpty() &&
		r.X0 >= other.X0 && r.Y0 >= other.Y0 &&
		r.X1 <= other.X1 && r.Y1 <= other.Y1
}
