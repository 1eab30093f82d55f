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
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Recursive sorts data[:n] into ascending order using recursive quicksort
// with a random pivot drawn from src (nil means DefaultPivotSource).
//
// Elements equal to a pivot end up on its right, so the sort is not stable.
// Recursion depth is O(log n) on average and O(n) in the worst case; prefer
// Iterative for very large inputs.
func Recursive[T constraints.Ordered](data []T, n int, src PivotSource) {
	checkCount("Recursive", n, len(data))
	recursiveImpl(data[:n], compareOrdered[T], sourceOrDefault(src))
}

// RecursiveFunc is like Recursive but orders elements with cmp, which must
// return a negative number when a < b.
func RecursiveFunc[T any](data []T, n int, cmp func(a, b T) int, src PivotSource) {
	checkCount("RecursiveFunc", n, len(data))
	recursiveImpl(data[:n], cmp, sourceOrDefault(src))
}

// recursiveImpl is the recursive quicksort over the whole of data.
func recursiveImpl[T any](data []T, cmp func(a, b T) int, src PivotSource) {
	n := len(data)
	if n <= 1 {
		return
	}

	last := partition(data, 0, n, cmp, src)
	recursiveImpl(data[:last], cmp, src)
	recursiveImpl(data[last+1:], cmp, src)
}

// span is a half-open range [start, end) waiting to be partitioned.
type span struct {
	start, end int
}

// Iterative sorts data[:n] into ascending order using quicksort driven by an
// explicit stack of pending ranges instead of recursion.
//
// The left range of every partition is processed before the right one, so
// Iterative consumes pivots from src in the same order as Recursive and,
// for the same stream, produces the same result.
func Iterative[T constraints.Ordered](data []T, n int, src PivotSource) {
	checkCount("Iterative", n, len(data))
	iterativeImpl(data[:n], compareOrdered[T], sourceOrDefault(src))
}

// IterativeFunc is like Iterative but orders elements with cmp.
func IterativeFunc[T any](data []T, n int, cmp func(a, b T) int, src PivotSource) {
	checkCount("IterativeFunc", n, len(data))
	iterativeImpl(data[:n], cmp, sourceOrDefault(src))
}

func iterativeImpl[T any](data []T, cmp func(a, b T) int, src PivotSource) {
	n := len(data)

	// Sized for the expected depth; adversarial pivot draws grow it.
	stack := make([]span, 0, 2*bits.Len(uint(n))+2)
	stack = append(stack, span{0, n})

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.end-s.start <= 1 {
			continue
		}

		last := partition(data, s.start, s.end, cmp, src)

		// Push right before left so the left range is popped first.
		if s.end-(last+1) > 1 {
			stack = append(stack, span{last + 1, s.end})
		}
		if last-s.start > 1 {
			stack = append(stack, span{s.start, last})
		}
	}
}

// Partition rearranges data around a pivot chosen by src (nil means
// DefaultPivotSource) and returns the pivot's final index p, so that
// data[:p] < data[p] <= data[p+1:].
//
// Partition of an empty slice returns 0 and does nothing.
func Partition[T constraints.Ordered](data []T, src PivotSource) int {
	if len(data) <= 1 {
		return 0
	}
	return partition(data, 0, len(data), compareOrdered[T], sourceOrDefault(src))
}

// partition performs the single-pass partition of data[lo:hi], which must
// hold at least two elements, and returns the pivot's final index.
func partition[T any](data []T, lo, hi int, cmp func(a, b T) int, src PivotSource) int {
	// Move the pivot to data[lo].
	swap(data, lo, lo+src.Intn(hi-lo))

	last := lo
	for i := lo + 1; i < hi; i++ {
		if cmp(data[i], data[lo]) < 0 {
			last++
			swap(data, last, i)
		}
	}

	// Restore the pivot.
	swap(data, lo, last)
	return last
}
