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

import "errors"

var (
	// ErrAllocation is returned when the pixel array for an image cannot be
	// allocated.
	ErrAllocation = errors.New("gray: cannot allocate pixel array")

	// ErrSampleRange is returned when a sample exceeds the image maxval.
	ErrSampleRange = errors.New("gray: sample exceeds maxval")

	// ErrSize is returned when a sample slice does not hold width*height
	// elements.
	ErrSize = errors.New("gray: sample count does not match dimensions")
)
