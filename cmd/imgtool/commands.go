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

	"github.com/detiuaveiro/image8bit/gray"
	"github.com/detiuaveiro/image8bit/gray/convert"
)

func (a *app) blurCmd() *cobra.Command {
	var dx, dy int
	var integral bool
	cmd := &cobra.Command{
		Use:   "blur <in> <out>",
		Short: "Apply a (2dx+1)x(2dy+1) mean filter",
		Args:  cobra.ExactArgs(2),
		RunE: a.run("blur", func(cmd *cobra.Command, args []string, log zerolog.Logger) error {
			if dx < 0 || dy < 0 {
				return fmt.Errorf("blur: window half sizes must be >= 0, got %d,%d", dx, dy)
			}
			img, err := readImage(args[0])
			if err != nil {
				return err
			}
			blur := gray.Blur
			if integral {
				blur = gray.BlurIntegral
			}
			stats, err := blur(img, dx, dy)
			if err != nil {
				return err
			}
			log.Info().
				Bool("integral", integral).
				Int("pixels", stats.Pixels).
				Uint64("window_cells", stats.WindowCells).
				Uint64("samples_read", stats.SamplesRead).
				Msg("blurred")
			return writeImage(args[1], img)
		}),
	}
	cmd.Flags().IntVar(&dx, "dx", 1, "horizontal half size of the window")
	cmd.Flags().IntVar(&dy, "dy", 1, "vertical half size of the window")
	cmd.Flags().BoolVar(&integral, "integral", false, "use a summed-area table")
	return cmd
}

func (a *app) locateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locate <haystack> <needle>",
		Short: "Find the first occurrence of needle inside haystack",
		Args:  cobra.ExactArgs(2),
		RunE: a.run("locate", func(cmd *cobra.Command, args []string, log zerolog.Logger) error {
			haystack, err := readImage(args[0])
			if err != nil {
				return err
			}
			needle, err := readImage(args[1])
			if err != nil {
				return err
			}
			m := gray.Locate(haystack, needle)
			w := cmd.OutOrStdout()
			if m.Found {
				fmt.Fprintf(w, "found at (%d,%d)\n", m.X, m.Y)
			} else {
				fmt.Fprintln(w, "not found")
			}
			fmt.Fprintf(w, "candidates:  %d\n", m.Candidates)
			fmt.Fprintf(w, "comparisons: %d\n", m.Comparisons)
			fmt.Fprintf(w, "worst case:  %d\n", gray.LocateCost(haystack, needle))
			log.Debug().Bool("found", m.Found).Uint64("comparisons", m.Comparisons).Msg("searched")
			return nil
		}),
	}
}

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert between PGM, PNG, BMP and TIFF by file extension",
		Args:  cobra.ExactArgs(2),
		RunE: a.run("convert", func(cmd *cobra.Command, args []string, log zerolog.Logger) error {
			if _, err := convert.FormatFromPath(args[1]); err != nil {
				return err
			}
			img, err := readImage(args[0])
			if err != nil {
				return err
			}
			log.Debug().Str("in", args[0]).Str("out", args[1]).Msg("converting")
			return writeImage(args[1], img)
		}),
	}
}
