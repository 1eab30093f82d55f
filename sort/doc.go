// Package sort provides in-place, partition-based sorting of slices.
//
// The package offers the classic single-pass random-pivot quicksort in two
// forms that share one partition step:
//
//   - Recursive sorts each partition with a recursive call, left side first.
//   - Iterative keeps the pending ranges on an explicit LIFO stack and never
//     recurses.
//
// Given the same PivotSource stream both forms draw pivots in the same order
// and leave the slice in exactly the same state.
//
// Reference is a deliberately slow exchange sort that exists only so the
// quicksorts have something to be measured against.
//
// # Algorithm
//
// A partition step over data[lo:hi] picks a uniformly random index, swaps that
// element to data[lo], then scans the rest of the range keeping a boundary
// `last` of the region strictly less than the pivot. Elements equal to the
// pivot stay on the right side. Finally the pivot is swapped into data[last],
// which is its sorted position.
//
// # Pivot selection
//
// Every sort takes a PivotSource. Passing nil uses DefaultPivotSource, which
// is seeded from the TPOP_SORT_SEED environment variable when it is set and
// from the clock otherwise. Tests and benchmarks that need reproducible runs
// should pass NewPivotSource(seed) or a PivotFunc.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-tpop/sort"
//
//	func SortScores(scores []int) {
//	    sort.Iterative(scores, len(scores), nil)
//	}
//
//	func SortNames(names []string, seed uint64) {
//	    sort.Recursive(names, len(names), sort.NewPivotSource(seed))
//	}
//
// # Preconditions
//
// The count argument must satisfy 0 <= n <= len(data). Violations panic with
// a *PreconditionError; they are caller bugs, not recoverable conditions.
package sort
