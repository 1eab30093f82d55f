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

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/ajroetker/go-tpop/internal/patterns"
	"github.com/ajroetker/go-tpop/sort"
)

// sanityLen is the length of the arrays printed by the sanity check.
const sanityLen = 10

// benchConfig holds a fully validated benchmark request.
type benchConfig struct {
	count      int
	attempts   int
	seed       uint64
	algorithms []algorithm
	patterns   []patterns.Pattern
}

// result accumulates the timings of one algorithm on one pattern.
type result struct {
	algorithm algorithm
	pattern   patterns.Pattern
	total     time.Duration
	runs      int
}

func (r *result) average() time.Duration {
	if r.runs == 0 {
		return 0
	}
	return r.total / time.Duration(r.runs)
}

// runBench sorts cfg.attempts fresh inputs of every pattern with every
// algorithm and returns the accumulated timings, pattern-major.
func runBench(cfg benchConfig, log logrus.FieldLogger) ([]*result, error) {
	results := make([]*result, 0, len(cfg.patterns)*len(cfg.algorithms))
	for _, p := range cfg.patterns {
		for _, a := range cfg.algorithms {
			results = append(results, &result{algorithm: a, pattern: p})
		}
	}

	pivots := sort.NewPivotSource(cfg.seed)
	data := make([]int, cfg.count)

	for attempt := range cfg.attempts {
		rng := rand.New(rand.NewSource(cfg.seed + uint64(attempt)))
		for i, p := range cfg.patterns {
			input, err := patterns.Generate(p, cfg.count, rng)
			if err != nil {
				return nil, err
			}
			for j, a := range cfg.algorithms {
				copy(data, input)

				begin := time.Now()
				a.run(data, pivots)
				elapsed := time.Since(begin)

				if !sort.IsSorted(data) {
					return nil, fmt.Errorf("%s left %s input unsorted (attempt %d, seed %d)", a.name, p, attempt, cfg.seed)
				}

				r := results[i*len(cfg.algorithms)+j]
				r.total += elapsed
				r.runs++
				log.WithFields(logrus.Fields{
					"attempt":   attempt,
					"pattern":   p,
					"algorithm": a.name,
					"elapsed":   elapsed,
				}).Debug("sorted")
			}
		}
	}
	return results, nil
}

// writeReport prints the total and average time of every result.
func writeReport(w io.Writer, cfg benchConfig, results []*result) error {
	fmt.Fprintf(w, "%d runs on %d element arrays (seed %d)\n\n", cfg.attempts, cfg.count, cfg.seed)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATTERN\tALGORITHM\tTOTAL (s)\tAVERAGE (s)")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%f\t%f\n", r.pattern, r.algorithm.label, r.total.Seconds(), r.average().Seconds())
	}
	return tw.Flush()
}

// writeSanity sorts a small array of every pattern with every algorithm and
// prints it before and after, so a broken sort is obvious at a glance.
func writeSanity(w io.Writer, cfg benchConfig) error {
	rng := rand.New(rand.NewSource(cfg.seed))
	pivots := sort.NewPivotSource(cfg.seed)

	fmt.Fprintln(w, "Beginning sanity test:")
	for _, p := range cfg.patterns {
		input, err := patterns.Generate(p, sanityLen, rng)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\t%-12s %s\n", p+":", formatInts(input))
		for _, a := range cfg.algorithms {
			data := append([]int(nil), input...)
			a.run(data, pivots)
			fmt.Fprintf(w, "\t  %-10s %s\n", a.name+":", formatInts(data))
			if !sort.IsSorted(data) {
				return fmt.Errorf("sanity check: %s left %s input unsorted: %s", a.name, p, formatInts(data))
			}
		}
	}
	fmt.Fprintln(w)
	return nil
}

func formatInts(data []int) string {
	var b strings.Builder
	for i, v := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	return b.String()
}
