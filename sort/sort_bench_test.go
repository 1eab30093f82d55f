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
	"math/rand"
	"slices"
	"testing"
)

// Generate random data for benchmarks
func generateInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rand.Intn(n)
	}
	return data
}

func BenchmarkRecursive_100(b *testing.B) {
	benchmarkQuicksort(b, 100, Recursive[int])
}

func BenchmarkRecursive_10000(b *testing.B) {
	benchmarkQuicksort(b, 10000, Recursive[int])
}

func BenchmarkRecursive_100000(b *testing.B) {
	benchmarkQuicksort(b, 100000, Recursive[int])
}

func BenchmarkIterative_100(b *testing.B) {
	benchmarkQuicksort(b, 100, Iterative[int])
}

func BenchmarkIterative_10000(b *testing.B) {
	benchmarkQuicksort(b, 10000, Iterative[int])
}

func BenchmarkIterative_100000(b *testing.B) {
	benchmarkQuicksort(b, 100000, Iterative[int])
}

func benchmarkQuicksort(b *testing.B, n int, fn func([]int, int, PivotSource)) {
	// Generate reference data
	ref := generateInts(n)
	data := make([]int, n)
	src := NewPivotSource(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		fn(data, n, src)
	}
}

// Reference is quadratic; keep the sizes small.
func BenchmarkReference_100(b *testing.B) {
	benchmarkReference(b, 100)
}

func BenchmarkReference_1000(b *testing.B) {
	benchmarkReference(b, 1000)
}

func benchmarkReference(b *testing.B, n int) {
	ref := generateInts(n)
	data := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Reference(data, n)
	}
}

// Stdlib comparison
func BenchmarkStdlib_10000(b *testing.B) {
	ref := generateInts(10000)
	data := make([]int, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}
