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

// Reference sorts data[:n] into ascending order with a naive exchange sort.
//
// For each position i it scans every later position, swapping in anything
// smaller than data[i]; the scan's lower bound advances by one per outer
// iteration no matter how many swaps happened. It does far more comparisons
// and swaps than necessary and exists only as a benchmark baseline.
func Reference[T constraints.Ordered](data []T, n int) {
	checkCount("Reference", n, len(data))
	referenceImpl(data[:n], compareOrdered[T])
}

// ReferenceFunc is like Reference but orders elements with cmp.
func ReferenceFunc[T any](data []T, n int, cmp func(a, b T) int) {
	checkCount("ReferenceFunc", n, len(data))
	referenceImpl(data[:n], cmp)
}

func referenceImpl[T any](data []T, cmp func(a, b T) int) {
	n := len(data)
	if n <= 1 {
		return
	}

	right := 1
	for i := 0; i < n-1; i++ {
		for j := right; j < n; j++ {
			if cmp(data[j], data[i]) < 0 {
				swap(data, i, j)
			}
		}
		right++
	}
}
