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

// Package instr counts named operations and measures elapsed time for
// benchmark runs.
//
// A Set is reset before the operation under study, counters are bumped from
// values the operation returns (for example gray.Match.Comparisons), and a
// Snapshot is taken afterwards. Elapsed time is also reported in calibration
// units, the duration of a fixed reference loop on the current machine, so
// runs on different hosts can be compared.
//
// A Set is not safe for concurrent use.
package instr

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// calibrationRounds is the length of the reference loop timed by Calibrate.
const calibrationRounds = 1 << 22

// Set is a fixed collection of named counters with a start time.
type Set struct {
	names  []string
	counts []uint64
	index  map[string]int
	unit   time.Duration
	start  time.Time
	now    func() time.Time
}

// NewSet returns a Set with one zeroed counter per name. Names must be
// distinct.
func NewSet(names ...string) *Set {
	s := &Set{
		names:  append([]string(nil), names...),
		counts: make([]uint64, len(names)),
		index:  make(map[string]int, len(names)),
		now:    time.Now,
	}
	for i, name := range names {
		if _, dup := s.index[name]; dup {
			panic(fmt.Sprintf("instr: duplicate counter %q", name))
		}
		s.index[name] = i
	}
	s.start = s.now()
	return s
}

func (s *Set) lookup(name string) int {
	i, ok := s.index[name]
	if !ok {
		panic(fmt.Sprintf("instr: unknown counter %q", name))
	}
	return i
}

// Add increases the named counter by n.
func (s *Set) Add(name string, n uint64) {
	s.counts[s.lookup(name)] += n
}

// Count returns the current value of the named counter.
func (s *Set) Count(name string) uint64 {
	return s.counts[s.lookup(name)]
}

// Reset zeroes every counter and restarts the clock.
func (s *Set) Reset() {
	clear(s.counts)
	s.start = s.now()
}

// Calibrate times the reference loop and stores the result as the unit for
// later snapshots. It returns the measured unit.
func (s *Set) Calibrate() time.Duration {
	begin := time.Now()
	sink = referenceLoop(calibrationRounds)
	s.unit = time.Since(begin)
	if s.unit <= 0 {
		s.unit = time.Nanosecond
	}
	return s.unit
}

// Unit returns the calibration unit, or zero before Calibrate is called.
func (s *Set) Unit() time.Duration {
	return s.unit
}

var sink uint64

// referenceLoop is a xorshift generator run for a fixed number of rounds.
func referenceLoop(rounds int) uint64 {
	x := uint64(88172645463325252)
	for range rounds {
		x ^= x << 13
		x ^= x >> 7
		x ^= x << 17
	}
	return x
}

// Counter is a named count inside a Snapshot.
type Counter struct {
	Name  string
	Count uint64
}

// Snapshot is the state of a Set at a point in time.
type Snapshot struct {
	Elapsed  time.Duration
	CalTime  float64 // Elapsed in calibration units, 0 if uncalibrated
	Counters []Counter
}

// Snapshot returns the elapsed time since the last Reset and every counter,
// in creation order.
func (s *Set) Snapshot() Snapshot {
	snap := Snapshot{
		Elapsed:  s.now().Sub(s.start),
		Counters: make([]Counter, len(s.names)),
	}
	if s.unit > 0 {
		snap.CalTime = float64(snap.Elapsed) / float64(s.unit)
	}
	for i, name := range s.names {
		snap.Counters[i] = Counter{Name: name, Count: s.counts[i]}
	}
	return snap
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (snap Snapshot) MarshalZerologObject(e *zerolog.Event) {
	e.Dur("elapsed", snap.Elapsed)
	if snap.CalTime > 0 {
		e.Float64("caltime", snap.CalTime)
	}
	for _, c := range snap.Counters {
		e.Uint64(c.Name, c.Count)
	}
}
