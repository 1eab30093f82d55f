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
	"sync"
	"testing"
)

func TestNewPivotSourceDeterministic(t *testing.T) {
	a := NewPivotSource(2025)
	b := NewPivotSource(2025)
	for i := range 100 {
		n := i + 2
		va, vb := a.Intn(n), b.Intn(n)
		if va != vb {
			t.Fatalf("draw %d: %d != %d for the same seed", i, va, vb)
		}
		if va < 0 || va >= n {
			t.Fatalf("draw %d: Intn(%d) = %d out of range", i, n, va)
		}
	}
}

func TestPivotFunc(t *testing.T) {
	var seen []int
	src := PivotFunc(func(n int) int {
		seen = append(seen, n)
		return n - 1
	})
	if got := src.Intn(5); got != 4 {
		t.Errorf("Intn(5) = %d, want 4", got)
	}
	if len(seen) != 1 || seen[0] != 5 {
		t.Errorf("PivotFunc saw %v, want [5]", seen)
	}
}

func TestSeedEnv(t *testing.T) {
	tests := []struct {
		val    string
		want   uint64
		wantOK bool
	}{
		{"", 0, false},
		{"42", 42, true},
		{"0x10", 16, true},
		{"not-a-seed", 0, false},
		{"-1", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv(SeedEnvVar, tt.val)
			got, ok := SeedEnv()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("SeedEnv() with %q = (%d, %v), want (%d, %v)", tt.val, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// TestDefaultPivotSourceConcurrent hammers the shared source from several
// goroutines; run with -race to catch unsynchronized access.
func TestDefaultPivotSourceConcurrent(t *testing.T) {
	src := DefaultPivotSource()
	if src != DefaultPivotSource() {
		t.Fatal("DefaultPivotSource returned different instances")
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				if v := src.Intn(10); v < 0 || v >= 10 {
					t.Errorf("Intn(10) = %d out of range", v)
					return
				}
			}
		}()
	}
	wg.Wait()
}
