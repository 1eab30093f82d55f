// Copyright 2025 go-tpop Authors
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

package sort

import (
	"os"
	"strconv"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

// SeedEnvVar names the environment variable that fixes the seed of the
// default pivot source.
const SeedEnvVar = "TPOP_SORT_SEED"

// PivotSource picks pivot positions for the partition step.
//
// Intn must return a value in [0, n). The sorts only call it with n >= 2.
type PivotSource interface {
	Intn(n int) int
}

// PivotFunc adapts an ordinary function to a PivotSource.
//
// It is mostly useful in tests, e.g. PivotFunc(func(int) int { return 0 })
// always pivots on the first element of the range.
type PivotFunc func(n int) int

// Intn calls f(n).
func (f PivotFunc) Intn(n int) int {
	return f(n)
}

// NewPivotSource returns a PivotSource backed by a PCG generator with the
// given seed. Two sources created with the same seed yield the same stream.
//
// The returned source is not safe for concurrent use.
func NewPivotSource(seed uint64) PivotSource {
	return rand.New(rand.NewSource(seed))
}

// lockedSource serializes access to a shared generator.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	v := s.rng.Intn(n)
	s.mu.Unlock()
	return v
}

var (
	defaultOnce   sync.Once
	defaultSource *lockedSource
)

// DefaultPivotSource returns the process-wide pivot source used when a sort
// is given a nil PivotSource. It is safe for concurrent use.
//
// The seed is read once, from SeedEnvVar if it holds an unsigned integer and
// from the clock otherwise.
func DefaultPivotSource() PivotSource {
	defaultOnce.Do(func() {
		seed, ok := SeedEnv()
		if !ok {
			seed = uint64(time.Now().UnixNano())
		}
		defaultSource = &lockedSource{rng: rand.New(rand.NewSource(seed))}
	})
	return defaultSource
}

// SeedEnv reports the seed configured through SeedEnvVar.
// The second result is false when the variable is unset or not a valid
// unsigned integer.
func SeedEnv() (uint64, bool) {
	val := os.Getenv(SeedEnvVar)
	if val == "" {
		return 0, false
	}
	seed, err := strconv.ParseUint(val, 0, 64)
	if err != nil {
		return 0, false
	}
	return seed, true
}

func sourceOrDefault(src PivotSource) PivotSource {
	if src == nil {
		return DefaultPivotSource()
	}
	return src
}
