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
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/detiuaveiro/image8bit/gray"
	"github.com/detiuaveiro/image8bit/gray/analysis"
)

// inPlace builds a command that loads <in>, applies op and saves <out>.
func (a *app) inPlace(use, short string, op func(img *gray.Image) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <in> <out>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: a.run(use, func(cmd *cobra.Command, args []string, log zerolog.Logger) error {
			img, err := readImage(args[0])
			if err != nil {
				return err
			}
			if err := op(img); err != nil {
				return err
			}
			log.Debug().Str("in", args[0]).Str("out", args[1]).Msg(use)
			return writeImage(args[1], img)
		}),
	}
}

// transform builds a command that loads <in>, derives a new image with op
// and saves it to <out>.
func (a *app) transform(use, short string, op func(img *gray.Image) (*gray.Image, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <in> <out>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: a.run(use, func(cmd *cobra.Command, args []string, log zerolog.Logger) error {
			img, err := readImage(args[0])
			if err != nil {
				return err
			}
			out, err := op(img)
			if err != nil {
				return err
			}
			log.Debug().
				Int("width", out.Width()).
				Int("height", out.Height()).
				Str("out", args[1]).
				Msg(use)
			return writeImage(args[1], out)
		}),
	}
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <in>",
		Short: "Print size, range and statistics of an image",
		Args:  cobra.ExactArgs(1),
		RunE: a.run("info", func(cmd *cobra.Command, args []string, log zerolog.Logger) error {
			img, err := readImage(args[0])
			if err != nil {
				return err
			}
			s := analysis.Summarize(img)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %dx%d maxval %d\n", args[0], img.Width(), img.Height(), img.Maxval())
			fmt.Fprintf(w, "range:  [%d, %d]\n", s.Min, s.Max)
			fmt.Fprintf(w, "mean:   %.2f\n", s.Mean)
			fmt.Fprintf(w, "stddev: %.2f\n", s.StdDev)
			fmt.Fprintf(w, "median: %d\n", s.Median)
			fmt.Fprintf(w, "otsu:   %d\n", analysis.OtsuThreshold(img))
			return nil
		}),
	}
}

func (a *app) negativeCmd() *cobra.Command {
	return a.inPlace("negative", "Replace every level v by maxval-v", func(img *gray.Image) error {
		gray.Negative(img)
		return nil
	})
}

func (a *app) thresholdCmd() *cobra.Command {
	var level uint8
	var otsu bool
	cmd := a.inPlace("threshold", "Map levels below a threshold to black and the rest to maxval", func(img *gray.Image) error {
		thr := level
		if otsu {
			thr = analysis.OtsuThreshold(img)
		}
		gray.Threshold(img, thr)
		return nil
	})
	cmd.Flags().Uint8Var(&level, "level", 128, "threshold level")
	cmd.Flags().BoolVar(&otsu, "otsu", false, "choose the level with Otsu's method")
	cmd.MarkFlagsMutuallyExclusive("level", "otsu")
	return cmd
}

func (a *app) brightenCmd() *cobra.Command {
	var factor float64
	cmd := a.inPlace("brighten", "Multiply every level by a factor, saturating at maxval", func(img *gray.Image) error {
		gray.Brighten(img, factor)
		return nil
	})
	cmd.Flags().Float64Var(&factor, "factor", 1, "brightness factor (>= 0)")
	return cmd
}

func (a *app) shiftCmd() *cobra.Command {
	var delta int
	cmd := a.inPlace("shift", "Add a constant to every level, saturating at 0 and maxval", func(img *gray.Image) error {
		gray.Shift(img, delta)
		return nil
	})
	cmd.Flags().IntVar(&delta, "delta", 0, "level offset, may be negative")
	return cmd
}

func (a *app) rotateCmd() *cobra.Command {
	return a.transform("rotate", "Rotate a quarter turn: (x, y) moves to (height-1-y, x)", gray.Rotate)
}

func (a *app) mirrorCmd() *cobra.Command {
	return a.transform("mirror", "Mirror left to right", gray.Mirror)
}

func (a *app) cropCmd() *cobra.Command {
	var x, y, w, h int
	cmd := a.transform("crop", "Copy a rectangular region", func(img *gray.Image) (*gray.Image, error) {
		if !img.ValidRect(x, y, w, h) {
			return nil, fmt.Errorf("crop: region %dx%d+%d+%d outside %dx%d image", w, h, x, y, img.Width(), img.Height())
		}
		return gray.Crop(img, x, y, w, h)
	})
	f := cmd.Flags()
	originFlags(f, &x, &y, "region")
	f.IntVar(&w, "width", 0, "region width")
	f.IntVar(&h, "height", 0, "region height")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}

// compose builds a command that places <src> onto <dst> at --x, --y and
// saves the result to <out>.
func (a *app) compose(use, short string, op func(dst *gray.Image, x, y int, src *gray.Image) error) *cobra.Command {
	var x, y int
	cmd := &cobra.Command{
		Use:   use + " <dst> <src> <out>",
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: a.run(use, func(cmd *cobra.Command, args []string, log zerolog.Logger) error {
			dst, err := readImage(args[0])
			if err != nil {
				return err
			}
			src, err := readImage(args[1])
			if err != nil {
				return err
			}
			if err := op(dst, x, y, src); err != nil {
				return err
			}
			log.Debug().Int("x", x).Int("y", y).Str("out", args[2]).Msg(use)
			return writeImage(args[2], dst)
		}),
	}
	originFlags(cmd.Flags(), &x, &y, "src in dst")
	return cmd
}

// originFlags registers --x and --y for the top-left corner of what.
func originFlags(f *pflag.FlagSet, x, y *int, what string) {
	f.IntVar(x, "x", 0, "left edge of "+what)
	f.IntVar(y, "y", 0, "top edge of "+what)
}

func (a *app) pasteCmd() *cobra.Command {
	return a.compose("paste", "Copy src into dst", func(dst *gray.Image, x, y int, src *gray.Image) error {
		if !dst.ValidRect(x, y, src.Width(), src.Height()) {
			return fmt.Errorf("paste: %dx%d image at (%d,%d) does not fit in %dx%d",
				src.Width(), src.Height(), x, y, dst.Width(), dst.Height())
		}
		gray.Paste(dst, x, y, src)
		return nil
	})
}

func (a *app) blendCmd() *cobra.Command {
	var alpha float64
	cmd := a.compose("blend", "Mix src into dst with weight alpha, clipping at the edges of dst", func(dst *gray.Image, x, y int, src *gray.Image) error {
		gray.Blend(dst, x, y, src, alpha)
		return nil
	})
	cmd.Flags().Float64Var(&alpha, "alpha", 0.5, "weight of src")
	return cmd
}
