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

import "golang.org/x/exp/constraints"

// Select rearranges data such that the element at index k is the element
// that would be at that position if data were sorted.
// Elements before k are <= data[k], elements after are >= data[k].
//
// It uses the same random-pivot partition as the quicksorts but only follows
// the side that contains k. Out-of-range k leaves data untouched.
func Select[T constraints.Ordered](data []T, k int, src PivotSource) {
	SelectFunc(data, k, compareOrdered[T], src)
}

// SelectFunc is like Select but orders elements with cmp.
func SelectFunc[T any](data []T, k int, cmp func(a, b T) int, src PivotSource) {
	n := len(data)
	if k < 0 || k >= n {
		return
	}
	src = sourceOrDefault(src)

	lo, hi := 0, n
	for hi-lo > 1 {
		p := partition(data, lo, hi, cmp, src)
		switch {
		case k < p:
			hi = p
		case k > p:
			lo = p + 1
		default:
			return
		}
	}
}
