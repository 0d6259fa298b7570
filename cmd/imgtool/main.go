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

// Command imgtool applies gray image operations to PGM, PNG, BMP and TIFF
// files and times the sub-image search.
//
// Usage:
//
//	imgtool info photo.pgm
//	imgtool threshold photo.pgm bw.pgm --otsu
//	imgtool crop photo.pgm face.pgm --x 40 --y 10 --width 64 --height 64
//	imgtool locate photo.pgm face.pgm
//	imgtool blur photo.pgm.zst soft.png --dx 3 --dy 3 --integral
//	imgtool bench locate --needle 50 --steps 5 --scale 5
//
// Files are read and written by extension. Paths ending in ".zst" are
// zstd-compressed PGM files.
//
// Diagnostics go to stderr through zerolog; --log-level and --log-json, or
// the IMAGE8BIT_LOG_LEVEL and IMAGE8BIT_LOG_JSON environment variables,
// control them.
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
