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
	"github.com/detiuaveiro/image8bit/gray/instr"
	"github.com/detiuaveiro/image8bit/internal/hostinfo"
)

func (a *app) benchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time library operations on generated images",
	}
	cmd.AddCommand(a.benchLocateCmd(), a.benchBlurCmd())
	return cmd
}

// patterned returns a size x size image whose samples are all non-zero, so
// a black needle mismatches every candidate on its first sample.
func patterned(size int) (*gray.Image, error) {
	img, err := gray.New(size, size, gray.PixMax)
	if err != nil {
		return nil, err
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, uint8(1+(7*x+13*y)%gray.PixMax))
		}
	}
	return img, nil
}

func (a *app) benchLocateCmd() *cobra.Command {
	var needleSize, steps, scale int
	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Time Locate of a black needle in growing patterned haystacks",
		Args:  cobra.NoArgs,
		RunE: a.run("bench", func(cmd *cobra.Command, args []string, log zerolog.Logger) error {
			if needleSize < 1 || steps < 1 || scale < 1 {
				return fmt.Errorf("bench locate: --needle, --steps and --scale must be positive")
			}
			needle, err := gray.New(needleSize, needleSize, gray.PixMax)
			if err != nil {
				return err
			}
			set := instr.NewSet("candidates", "comparisons")
			set.Calibrate()
			log.Info().Object("host", hostinfo.Detect()).Dur("unit", set.Unit()).Msg("calibrated")

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%12s %14s %14s %12s\n", "haystack", "comparisons", "worst case", "seconds")
			for i := 1; i <= steps; i++ {
				size := needleSize * i * scale
				haystack, err := patterned(size)
				if err != nil {
					return err
				}
				set.Reset()
				m := gray.Locate(haystack, needle)
				set.Add("candidates", m.Candidates)
				set.Add("comparisons", m.Comparisons)
				snap := set.Snapshot()

				log.Info().Int("size", size).Bool("found", m.Found).Object("stats", snap).Msg("locate")
				fmt.Fprintf(w, "%12s %14d %14d %12.6f\n",
					fmt.Sprintf("%dx%d", size, size), m.Comparisons, gray.LocateCost(haystack, needle), snap.Elapsed.Seconds())
				haystack.Release()
			}
			return nil
		}),
	}
	f := cmd.Flags()
	f.IntVar(&needleSize, "needle", 50, "needle side length")
	f.IntVar(&steps, "steps", 5, "number of haystack sizes")
	f.IntVar(&scale, "scale", 5, "haystack side is needle*step*scale")
	return cmd
}

func (a *app) benchBlurCmd() *cobra.Command {
	var size, dx, dy int
	cmd := &cobra.Command{
		Use:   "blur",
		Short: "Compare the direct and summed-area mean filters",
		Args:  cobra.NoArgs,
		RunE: a.run("bench", func(cmd *cobra.Command, args []string, log zerolog.Logger) error {
			if size < 1 || dx < 0 || dy < 0 {
				return fmt.Errorf("bench blur: --size must be positive and --dx, --dy non-negative")
			}
			src, err := patterned(size)
			if err != nil {
				return err
			}
			set := instr.NewSet("window_cells", "samples_read")
			set.Calibrate()
			log.Info().Object("host", hostinfo.Detect()).Dur("unit", set.Unit()).Msg("calibrated")

			w := cmd.OutOrStdout()
			variants := []struct {
				name string
				blur func(*gray.Image, int, int) (gray.BlurStats, error)
			}{
				{"direct", gray.Blur},
				{"integral", gray.BlurIntegral},
			}
			var results []*gray.Image
			for _, v := range variants {
				img := src.Clone()
				set.Reset()
				stats, err := v.blur(img, dx, dy)
				if err != nil {
					return err
				}
				set.Add("window_cells", stats.WindowCells)
				set.Add("samples_read", stats.SamplesRead)
				snap := set.Snapshot()

				log.Info().Str("variant", v.name).Object("stats", snap).Msg("blur")
				fmt.Fprintf(w, "%-8s %dx%d window %dx%d: %.6fs, %d window cells\n",
					v.name, size, size, 2*dx+1, 2*dy+1, snap.Elapsed.Seconds(), stats.WindowCells)
				results = append(results, img)
			}
			if !gray.Equal(results[0], results[1]) {
				return fmt.Errorf("bench blur: direct and integral results differ")
			}
			return nil
		}),
	}
	f := cmd.Flags()
	f.IntVar(&size, "size", 512, "image side length")
	f.IntVar(&dx, "dx", 5, "horizontal half size of the window")
	f.IntVar(&dy, "dy", 5, "vertical half size of the window")
	return cmd
}
