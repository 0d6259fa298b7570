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

package pgm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/detiuaveiro/image8bit/gray"
)

// ErrCompression is returned when a zstd stream cannot be set up.
var ErrCompression = errors.New("pgm: compression failed")

// Compressed reports whether path names a zstd-compressed PGM file.
func Compressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".zst")
}

// Load reads a raw PGM file. Paths ending in ".zst" are decompressed with
// zstd first.
//
// On failure no image is returned. Operating system errors are wrapped
// together with ErrOpen, so errors.Is(err, fs.ErrNotExist) still works.
func Load(path string) (*gray.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	var r io.Reader = f
	if Compressed(path) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCompression, err)
		}
		defer dec.Close()
		r = dec
	}

	img, err := Decode(bufio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return img, nil
}

// Save writes img to path as a raw PGM file, compressing with zstd when the
// path ends in ".zst".
//
// The file is written in place: on failure a partial, invalid file may be
// left behind.
func Save(path string, img *gray.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("save %s: %w: %w", path, ErrWritePixels, cerr)
		}
	}()
	if err := writeStream(f, img, Compressed(path)); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// writeStream encodes img to w through a buffer, optionally zstd-compressed.
// The encoder is released on every path.
func writeStream(w io.Writer, img *gray.Image, compressed bool) error {
	var enc *zstd.Encoder
	if compressed {
		var err error
		enc, err = zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCompression, err)
		}
		defer func() {
			if enc != nil {
				enc.Close()
			}
		}()
		w = enc
	}

	bw := bufio.NewWriter(w)
	if err := Encode(bw, img); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritePixels, err)
	}
	if enc != nil {
		err := enc.Close()
		enc = nil
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWritePixels, err)
		}
	}
	return nil
}
