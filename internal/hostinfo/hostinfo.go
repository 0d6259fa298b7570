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

// Package hostinfo describes the machine a benchmark runs on.
package hostinfo

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sys/cpu"
)

// Info is a short description of the host.
type Info struct {
	OS       string
	Arch     string
	NumCPU   int
	Go       string
	Features []string // notable CPU features, empty if none are detected
}

// Detect returns the description of the current host.
func Detect() Info {
	return Info{
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
		NumCPU:   runtime.NumCPU(),
		Go:       runtime.Version(),
		Features: features(runtime.GOARCH),
	}
}

func features(arch string) []string {
	var out []string
	add := func(ok bool, name string) {
		if ok {
			out = append(out, name)
		}
	}
	switch arch {
	case "amd64", "386":
		add(cpu.X86.HasSSE42, "sse4.2")
		add(cpu.X86.HasPOPCNT, "popcnt")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasFMA, "fma")
		add(cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "neon")
		add(cpu.ARM64.HasAES, "aes")
		add(cpu.ARM64.HasSVE, "sve")
	}
	return out
}

// String returns a one line summary such as "linux/amd64 8 cpus [avx2 fma]".
func (i Info) String() string {
	s := fmt.Sprintf("%s/%s %d cpus", i.OS, i.Arch, i.NumCPU)
	if len(i.Features) > 0 {
		s += " [" + strings.Join(i.Features, " ") + "]"
	}
	return s
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (i Info) MarshalZerologObject(e *zerolog.Event) {
	e.Str("os", i.OS).
		Str("arch", i.Arch).
		Int("cpus", i.NumCPU).
		Str("go", i.Go).
		Strs("features", i.Features)
}
