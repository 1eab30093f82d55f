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
	"fmt"

	"golang.org/x/exp/constraints"
)

// Helper functions shared by every sort in the package.

// PreconditionError is the panic value raised when a sort is called with a
// count outside [0, len(data)].
type PreconditionError struct {
	Op    string
	Count int
	Len   int
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("sort.%s: count %d out of range [0, %d]", e.Op, e.Count, e.Len)
}

// checkCount panics with a *PreconditionError unless 0 <= n <= length.
func checkCount(op string, n, length int) {
	if n < 0 || n > length {
		panic(&PreconditionError{Op: op, Count: n, Len: length})
	}
}

// compareOrdered is the comparator used by the ordered entry points.
func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// swap interchanges data[i] and data[j].
func swap[T any](data []T, i, j int) {
	data[i], data[j] = data[j], data[i]
}

// IsSorted reports whether data is sorted in ascending order.
func IsSorted[T constraints.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// IsSortedFunc reports whether data is sorted in ascending order according
// to cmp.
func IsSortedFunc[T any](data []T, cmp func(a, b T) int) bool {
	for i := 1; i < len(data); i++ {
		if cmp(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}
