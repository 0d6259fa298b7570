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

// Package logging builds the zerolog logger used by the command line tools.
package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

// Environment variables read by FromEnv.
const (
	EnvLevel = "IMAGE8BIT_LOG_LEVEL"
	EnvJSON  = "IMAGE8BIT_LOG_JSON"
)

// Config selects the level and format of a logger.
type Config struct {
	Level string    // zerolog level name; empty means info
	JSON  bool      // JSON lines instead of the console format
	Out   io.Writer // defaults to os.Stderr
}

// FromEnv fills the unset fields of cfg from the environment. A flag given
// on the command line wins over the environment, so callers pass the flag
// values in cfg and only the empty ones are overridden.
func FromEnv(cfg Config) Config {
	if cfg.Level == "" {
		cfg.Level = os.Getenv(EnvLevel)
	}
	if !cfg.JSON {
		cfg.JSON = envBool(EnvJSON)
	}
	return cfg
}

// envBool reports whether the named variable is set to a true value. Any
// non-empty value that does not parse as a bool counts as true.
func envBool(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// New returns a logger for cfg. Every entry carries a timestamp.
func New(cfg Config) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		l, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("logging: %w", err)
		}
		level = l
	}
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if !cfg.JSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// Component returns a child of logger tagged with the given component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
