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

// Package convert moves images between gray.Image and the standard library
// image types, and reads and writes them as PNG, BMP, TIFF or PGM.
//
// Importing this package registers a raw PGM decoder with the image package,
// so image.Decode recognises "P5" streams as well.
package convert

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/detiuaveiro/image8bit/gray"
	"github.com/detiuaveiro/image8bit/gray/pgm"
)

// ErrUnsupportedFormat is returned for a format or file extension this
// package cannot encode.
var ErrUnsupportedFormat = errors.New("convert: unsupported format")

// Format names accepted by Encode and returned by Decode.
const (
	PGM  = "pgm"
	PNG  = "png"
	BMP  = "bmp"
	TIFF = "tiff"
)

func init() {
	image.RegisterFormat(PGM, "P5", decodeStd, decodeConfig)
}

// ToStd returns a copy of img as an *image.Gray. Samples are copied
// unchanged; the maxval is not rescaled to 255.
func ToStd(img *gray.Image) *image.Gray {
	if img == nil {
		panic("convert: ToStd: nil image")
	}
	out := image.NewGray(image.Rect(0, 0, img.Width(), img.Height()))
	copy(out.Pix, img.Samples())
	return out
}

// FromStd converts any image.Image to a gray.Image with maxval 255, using
// color.GrayModel for non-gray sources.
func FromStd(src image.Image) (*gray.Image, error) {
	b := src.Bounds()
	img, err := gray.New(b.Dx(), b.Dy(), gray.PixMax)
	if err != nil {
		return nil, err
	}
	if g, ok := src.(*image.Gray); ok {
		for y := 0; y < b.Dy(); y++ {
			off := g.PixOffset(b.Min.X, b.Min.Y+y)
			row := g.Pix[off : off+b.Dx()]
			for x, v := range row {
				img.Set(x, y, v)
			}
		}
		return img, nil
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.GrayModel.Convert(src.At(x, y)).(color.Gray)
			img.Set(x-b.Min.X, y-b.Min.Y, c.Y)
		}
	}
	return img, nil
}

// FormatFromPath returns the format implied by the extension of path.
// A trailing ".zst" is ignored.
func FormatFromPath(path string) (string, error) {
	p := strings.TrimSuffix(strings.ToLower(path), ".zst")
	switch filepath.Ext(p) {
	case ".pgm":
		return PGM, nil
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(p))
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img *gray.Image, format string) error {
	if format == PGM {
		return pgm.Encode(w, img)
	}
	m := ToStd(img)
	switch format {
	case PNG:
		return png.Encode(w, m)
	case BMP:
		return bmp.Encode(w, m)
	case TIFF:
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Decode reads an image in any registered format and converts it to gray.
// It returns the format name reported by image.Decode.
//
// PGM input keeps its maxval; every other format yields maxval 255.
func Decode(r io.Reader) (*gray.Image, string, error) {
	m, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode: %w", err)
	}
	if p, ok := m.(*pgmImage); ok {
		return p.img, format, nil
	}
	img, err := FromStd(m)
	if err != nil {
		return nil, "", err
	}
	return img, format, nil
}

// pgmImage carries a decoded gray.Image through image.Decode without losing
// its maxval.
type pgmImage struct {
	*image.Gray
	img *gray.Image
}

func decodeStd(r io.Reader) (image.Image, error) {
	img, err := pgm.Decode(r)
	if err != nil {
		return nil, err
	}
	return &pgmImage{Gray: ToStd(img), img: img}, nil
}

func decodeConfig(r io.Reader) (image.Config, error) {
	h, err := pgm.DecodeHeader(r)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.GrayModel, Width: h.Width, Height: h.Height}, nil
}
