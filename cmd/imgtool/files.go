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

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/detiuaveiro/image8bit/gray"
	"github.com/detiuaveiro/image8bit/gray/convert"
	"github.com/detiuaveiro/image8bit/gray/pgm"
)

// readImage loads path. PGM files, compressed or not, go through the pgm
// package; anything else is sniffed by content.
func readImage(path string) (*gray.Image, error) {
	if format, err := convert.FormatFromPath(path); err == nil && format == convert.PGM {
		return pgm.Load(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pgm.ErrOpen, err)
	}
	defer f.Close()
	img, _, err := convert.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return img, nil
}

// writeImage saves img to path in the format named by its extension.
func writeImage(path string, img *gray.Image) (err error) {
	format, err := convert.FormatFromPath(path)
	if err != nil {
		return err
	}
	if format == convert.PGM {
		return pgm.Save(path, img)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", pgm.ErrOpen, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("write %s: %w", path, cerr)
		}
	}()
	bw := bufio.NewWriter(f)
	if err := convert.Encode(bw, img, format); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return bw.Flush()
}
