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
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/detiuaveiro/image8bit/internal/logging"
)

// app holds the state shared by every subcommand.
type app struct {
	logLevel string
	logJSON  bool
	stderr   io.Writer
	log      zerolog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr, log: zerolog.Nop()}
	root := &cobra.Command{
		Use:           "imgtool",
		Short:         "Process 8-bit grayscale images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := logging.FromEnv(logging.Config{Level: a.logLevel, JSON: a.logJSON, Out: a.stderr})
			logger, err := logging.New(cfg)
			if err != nil {
				return err
			}
			a.log = logger
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (env "+logging.EnvLevel+", default info)")
	flags.BoolVar(&a.logJSON, "log-json", false, "log JSON lines instead of console text (env "+logging.EnvJSON+")")

	root.AddCommand(
		a.infoCmd(),
		a.negativeCmd(),
		a.thresholdCmd(),
		a.brightenCmd(),
		a.shiftCmd(),
		a.rotateCmd(),
		a.mirrorCmd(),
		a.cropCmd(),
		a.pasteCmd(),
		a.blendCmd(),
		a.blurCmd(),
		a.locateCmd(),
		a.convertCmd(),
		a.benchCmd(),
	)
	return root
}

// run wraps a subcommand body so that a failure is logged before cobra
// reports it.
func (a *app) run(name string, fn func(cmd *cobra.Command, args []string, log zerolog.Logger) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log := logging.Component(a.log, name)
		if err := fn(cmd, args, log); err != nil {
			log.Error().Err(err).Msg("operation failed")
			return err
		}
		return nil
	}
}
