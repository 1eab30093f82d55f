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
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/ajroetker/go-tpop/sort"
)

// algorithm is one contender in the benchmark.
type algorithm struct {
	name  string
	label string
	run   func(data []int, src sort.PivotSource)
}

var algorithms = []algorithm{
	{
		name:  "recursive",
		label: "Recursive quicksort",
		run:   func(data []int, src sort.PivotSource) { sort.Recursive(data, len(data), src) },
	},
	{
		name:  "iterative",
		label: "Iterative quicksort",
		run:   func(data []int, src sort.PivotSource) { sort.Iterative(data, len(data), src) },
	},
	{
		name:  "reference",
		label: "Reference exchange sort",
		run:   func(data []int, _ sort.PivotSource) { sort.Reference(data, len(data)) },
	},
	{
		name:  "stdlib",
		label: "slices.Sort",
		run:   func(data []int, _ sort.PivotSource) { slices.Sort(data) },
	},
}

func algorithmNames() []string {
	return lo.Map(algorithms, func(a algorithm, _ int) string { return a.name })
}

// parseAlgorithms resolves algorithm names. Elements may themselves be
// comma-separated, as they are when the list comes from the environment.
func parseAlgorithms(names []string) ([]algorithm, error) {
	names = lo.FlatMap(names, func(s string, _ int) []string { return strings.Split(s, ",") })
	names = lo.Uniq(lo.Compact(lo.Map(names, func(name string, _ int) string {
		return strings.ToLower(strings.TrimSpace(name))
	})))
	if lo.Contains(names, "all") {
		return algorithms, nil
	}

	var selected []algorithm
	for _, name := range names {
		a, ok := lo.Find(algorithms, func(a algorithm) bool { return a.name == name })
		if !ok {
			return nil, fmt.Errorf("unknown algorithm %q (known: %s)", name, strings.Join(algorithmNames(), ","))
		}
		selected = append(selected, a)
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no algorithms selected")
	}
	return selected, nil
}
