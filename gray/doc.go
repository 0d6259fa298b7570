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

// Package gray provides an 8-bit grayscale raster image and the operations
// defined over it.
//
// An Image owns a dense, row-major array of samples together with its width,
// height and maximum gray level (maxval). Samples are only reachable through
// accessor methods; there is no way to obtain a slice aliasing the storage.
//
//	img, err := gray.New(640, 480, 255)
//	if err != nil {
//	    return err
//	}
//	img.Set(10, 20, 200)
//	gray.Negative(img)
//
// # Point Operations
//
// Point operations modify every sample in place and never fail:
//
//	Negative(img)          // v -> maxval - v
//	Threshold(img, thr)    // v -> 0 if v < thr, maxval otherwise
//	Brighten(img, factor)  // v -> min(trunc(v * factor), maxval)
//	Shift(img, delta)      // v -> v + delta, clamped to [0, maxval]
//
// # Geometry
//
// Rotate, Mirror and Crop return new images and never alias the source.
// Paste and Blend write one image into another in place.
//
// # Filtering and Search
//
// Blur applies a clipped (2dx+1)x(2dy+1) mean filter. BlurIntegral computes
// the same result in time independent of the window size. Locate performs a
// brute-force search for one image inside another and reports the exact
// number of sample comparisons performed.
//
// # Contracts
//
// Functions that allocate return an error wrapping ErrAllocation when the
// requested buffer cannot be created. Every other misuse (coordinates out of
// range, nil images, invalid regions) is a programming error and panics.
//
// An Image is not safe for concurrent mutation. Operations that read one
// image and write another require the source not to be mutated meanwhile.
package gray
