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

// Geometric transformations return a new image and leave the source
// untouched. On allocation failure they return an error wrapping
// ErrAllocation.

// Rotate returns img rotated a quarter turn, anti-clockwise with the y axis
// pointing up. The result is height x width; pixel (x, y) of img lands at
// (height-1-y, x). Displayed with row 0 on top, the image turns clockwise.
func Rotate(img *Image) (*Image, error) {
	mustImage(img, "Rotate")
	out, err := New(img.height, img.width, img.maxval)
	if err != nil {
		return nil, fmt.Errorf("rotate: %w", err)
	}
	for y := 0; y < img.height; y++ {
		src := img.row(y)
		nx := img.height - 1 - y
		for x, v := range src {
			out.pix[x*out.width+nx] = v
		}
	}
	return out, nil
}

// Mirror returns img flipped left-right: pixel (x, y) lands at
// (width-1-x, y).
func Mirror(img *Image) (*Image, error) {
	mustImage(img, "Mirror")
	out, err := New(img.width, img.height, img.maxval)
	if err != nil {
		return nil, fmt.Errorf("mirror: %w", err)
	}
	for y := 0; y < img.height; y++ {
		src, dst := img.row(y), out.row(y)
		last := img.width - 1
		for x, v := range src {
			dst[last-x] = v
		}
	}
	return out, nil
}

// Crop returns a copy of the w x h rectangle of img with top-left corner
// (x, y). Panics unless img.ValidRect(x, y, w, h).
func Crop(img *Image, x, y, w, h int) (*Image, error) {
	mustImage(img, "Crop")
	if !img.ValidRect(x, y, w, h) {
		panic(fmt.Sprintf("gray: Crop: rectangle (%d,%d) %dx%d outside %dx%d image",
			x, y, w, h, img.width, img.height))
	}
	out, err := New(w, h, img.maxval)
	if err != nil {
		return nil, fmt.Errorf("crop: %w", err)
	}
	for dy := 0; dy < h; dy++ {
		copy(out.row(dy), img.row(y+dy)[x : x+w])
	}
	return out, nil
}

// Paste copies src into dst with the top-left corner of src at (x, y),
// overwriting dst in place. Panics unless src fits inside dst at (x, y).
//
// src levels above dst's maxval are clamped to it.
func Paste(dst *Image, x, y int, src *Image) {
	mustImage(dst, "Paste")
	mustImage(src, "Paste")
	if !dst.ValidRect(x, y, src.width, src.height) {
		panic(fmt.Sprintf("gray: Paste: %dx%d image does not fit at (%d,%d) in %dx%d image",
			src.width, src.height, x, y, dst.width, dst.height))
	}
	for sy := 0; sy < src.height; sy++ {
		d := dst.row(y+sy)[x : x+src.width]
		if src.maxval <= dst.maxval {
			copy(d, src.row(sy))
			continue
		}
		for i, v := range src.row(sy) {
			d[i] = min(v, dst.maxval)
		}
	}
}

// Blend mixes src into dst with the top-left corner of src at (x, y):
//
//	dst = (1-alpha)*dst + alpha*src
//
// Only positions of src that fall inside dst are blended. alpha usually
// lies in [0, 1]; other values are accepted and the result is truncated
// toward zero and saturated to [0, maxval] of dst.
func Blend(dst *Image, x, y int, src *Image, alpha float64) {
	mustImage(dst, "Blend")
	mustImage(src, "Blend")
	area := Region(x, y, src.width, src.height).Intersect(dst.Bounds())
	if area.IsEmpty() {
		return
	}
	beta := 1 - alpha
	for dy := area.Y0; dy < area.Y1; dy++ {
		d := dst.row(dy)
		s := src.row(dy - y)
		for dx := area.X0; dx < area.X1; dx++ {
			v := beta*float64(d[dx]) + alpha*float64(s[dx-x])
			d[dx] = saturate(v, dst.maxval)
		}
	}
}
