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

// Package pgm reads and writes gray.Image values as raw (binary) PGM files.
//
// A raw PGM file is an ASCII header followed by one byte per sample:
//
//	P5
//	# comments may precede width, height and maxval
//	<width> <height>
//	<maxval>
//	<width*height bytes, row-major>
//
// Only 8-bit files (maxval <= 255) are accepted. See
// http://netpbm.sourceforge.net/doc/pgm.html.
//
// Every rejection has its own sentinel error, so callers can tell a bad
// width from a truncated payload with errors.Is. Errors from the operating
// system are wrapped alongside the sentinel and remain reachable too.
package pgm

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/detiuaveiro/image8bit/gray"
)

var (
	ErrOpen        = errors.New("pgm: open failed")
	ErrFormat      = errors.New("pgm: invalid file format")
	ErrWidth       = errors.New("pgm: invalid width")
	ErrHeight      = errors.New("pgm: invalid height")
	ErrMaxval      = errors.New("pgm: invalid maxval")
	ErrWhitespace  = errors.New("pgm: whitespace expected")
	ErrPixels      = errors.New("pgm: reading pixels")
	ErrWriteHeader = errors.New("pgm: writing header failed")
	ErrWritePixels = errors.New("pgm: writing pixels failed")
)

// maxDimension keeps header values within gray.MaxPixels before any
// multiplication happens.
const maxDimension = gray.MaxPixels

// Header describes a PGM file without its samples.
type Header struct {
	Width, Height int
	Maxval        uint8
}

// DecodeHeader reads the header of a raw PGM stream, leaving r positioned at
// the first sample byte if r is a *bufio.Reader.
func DecodeHeader(r io.Reader) (Header, error) {
	return newParser(r).header()
}

// Decode reads a raw PGM image from r.
//
// On failure it returns a nil image and an error wrapping one of the
// sentinel errors of this package.
func Decode(r io.Reader) (*gray.Image, error) {
	p := newParser(r)
	h, err := p.header()
	if err != nil {
		return nil, err
	}

	if h.Width != 0 && h.Height > gray.MaxPixels/h.Width {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", gray.ErrAllocation, h.Width, h.Height, gray.MaxPixels)
	}
	n := h.Width * h.Height
	samples, err := io.ReadAll(io.LimitReader(p.r, int64(n)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPixels, err)
	}
	if len(samples) < n {
		return nil, fmt.Errorf("%w: got %d of %d bytes: %w", ErrPixels, len(samples), n, io.ErrUnexpectedEOF)
	}
	img, err := gray.FromSamples(h.Width, h.Height, h.Maxval, samples)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPixels, err)
	}
	return img, nil
}

// Encode writes img to w as a raw PGM image.
//
// A failure part way through leaves a partial, invalid stream behind.
func Encode(w io.Writer, img *gray.Image) error {
	if img == nil {
		panic("pgm: Encode: nil image")
	}
	if _, err := fmt.Fprintf(w, "P5\n%d %d\n%d\n", img.Width(), img.Height(), img.Maxval()); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteHeader, err)
	}
	if _, err := w.Write(img.Samples()); err != nil {
		return fmt.Errorf("%w: %w", ErrWritePixels, err)
	}
	return nil
}

type parser struct {
	r *bufio.Reader
}

func newParser(r io.Reader) *parser {
	if br, ok := r.(*bufio.Reader); ok {
		return &parser{r: br}
	}
	return &parser{r: bufio.NewReader(r)}
}

func (p *parser) header() (Header, error) {
	var h Header
	if err := p.magic(); err != nil {
		return h, err
	}
	w, err := p.number(ErrWidth)
	if err != nil {
		return h, err
	}
	hh, err := p.number(ErrHeight)
	if err != nil {
		return h, err
	}
	maxval, err := p.number(ErrMaxval)
	if err != nil {
		return h, err
	}
	if maxval <= 0 || maxval > gray.PixMax {
		return h, fmt.Errorf("%w: %d not in (0,%d]", ErrMaxval, maxval, gray.PixMax)
	}
	c, err := p.r.ReadByte()
	if err != nil {
		return h, fmt.Errorf("%w: %w", ErrWhitespace, err)
	}
	if !isSpace(c) {
		return h, fmt.Errorf("%w: got %q after maxval", ErrWhitespace, c)
	}
	return Header{Width: w, Height: hh, Maxval: uint8(maxval)}, nil
}

// magic matches the "P5" signature followed by whitespace.
func (p *parser) magic() error {
	var sig [3]byte
	if _, err := io.ReadFull(p.r, sig[:]); err != nil {
		return fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if sig[0] != 'P' || sig[1] != '5' || !isSpace(sig[2]) {
		return fmt.Errorf("%w: bad signature %q", ErrFormat, sig[:])
	}
	return nil
}

// skip consumes whitespace and comment lines. A comment runs from '#' to the
// end of the line, inclusive.
func (p *parser) skip() error {
	for {
		c, err := p.r.ReadByte()
		if err != nil {
			return err
		}
		switch {
		case isSpace(c):
		case c == '#':
			if _, err := p.r.ReadString('\n'); err != nil {
				return err
			}
		default:
			return p.r.UnreadByte()
		}
	}
}

// number reads an unsigned decimal integer, reporting kind on failure. Signs
// are not part of the netpbm grammar and are rejected.
func (p *parser) number(kind error) (int, error) {
	if err := p.skip(); err != nil {
		return 0, fmt.Errorf("%w: %w", kind, err)
	}
	c, err := p.r.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", kind, err)
	}
	if !isDigit(c) {
		return 0, fmt.Errorf("%w: unexpected %q", kind, c)
	}
	n := 0
	for {
		n = n*10 + int(c-'0')
		if n > maxDimension {
			return 0, fmt.Errorf("%w: value too large", kind)
		}
		c, err = p.r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %w", kind, err)
		}
		if !isDigit(c) {
			if err := p.r.UnreadByte(); err != nil {
				return 0, fmt.Errorf("%w: %w", kind, err)
			}
			break
		}
	}
	return n, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isSpace reports whether c is ASCII whitespace.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
