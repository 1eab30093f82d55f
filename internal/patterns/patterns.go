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

// Package patterns generates the integer inputs used to exercise and time
// the sorts: random, already sorted, reverse sorted, and homogeneous arrays.
package patterns

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Pattern names an input shape.
type Pattern string

const (
	// Random draws each element uniformly from [0, n).
	Random Pattern = "random"
	// Sorted is 0, 1, ..., n-1.
	Sorted Pattern = "sorted"
	// Reverse is n, n-1, ..., 1.
	Reverse Pattern = "reverse"
	// Homogeneous repeats a single value n times.
	Homogeneous Pattern = "homogeneous"
)

// All returns every known pattern in reporting order.
func All() []Pattern {
	return []Pattern{Random, Sorted, Reverse, Homogeneous}
}

// Intner is the random source used by the Random pattern.
type Intner interface {
	Intn(n int) int
}

// Generate returns n elements laid out according to p. rng is only used by
// Random and may be nil for the other patterns.
func Generate(p Pattern, n int, rng Intner) ([]int, error) {
	switch p {
	case Random:
		if rng == nil {
			return nil, fmt.Errorf("patterns: %s needs a random source", p)
		}
		return lo.Times(n, func(int) int { return rng.Intn(n) }), nil
	case Sorted:
		return lo.Range(n), nil
	case Reverse:
		return lo.Times(n, func(i int) int { return n - i }), nil
	case Homogeneous:
		return lo.RepeatBy(n, func(int) int { return 1 }), nil
	default:
		return nil, fmt.Errorf("patterns: unknown pattern %q", p)
	}
}

// Parse splits a comma-separated list of pattern names, dropping blanks and
// duplicates. The special name "all" expands to All().
func Parse(s string) ([]Pattern, error) {
	names := lo.Uniq(lo.Compact(lo.Map(strings.Split(s, ","), func(name string, _ int) string {
		return strings.ToLower(strings.TrimSpace(name))
	})))
	if lo.Contains(names, "all") {
		return All(), nil
	}

	ps := make([]Pattern, 0, len(names))
	for _, name := range names {
		p := Pattern(name)
		if !lo.Contains(All(), p) {
			return nil, fmt.Errorf("patterns: unknown pattern %q (known: %s)", name, strings.Join(lo.Map(All(), func(p Pattern, _ int) string { return string(p) }), ","))
		}
		ps = append(ps, p)
	}
	if len(ps) == 0 {
		return nil, fmt.Errorf("patterns: no patterns in %q", s)
	}
	return ps, nil
}
