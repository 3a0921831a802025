// Package blip provides an in-place, comparison-based hybrid sort over
// slices of signed fixed-width integers.
//
// # Algorithm
//
// The sort is an introsort variant built around branchless Lomuto
// partitioning:
//   - Pair insertion sort for small ranges and as an optimistic finisher
//     on balanced, low-movement partitions (with a bail-out back to
//     quicksort)
//   - A five-candidate median pivot with a descending-run detector that
//     rotates reversed ranges instead of partitioning them
//   - A partition-left fast path that sweeps keys equal to the previous
//     pivot aside, giving linear time on all-equal data
//   - A deterministic scramble after unbalanced partitions to break
//     adversarial patterns
//   - Heapsort once the depth budget is spent, for the O(n log n)
//     worst-case guarantee
//
// # Supported Types
//
// The sort functions support the signed integer types:
//   - int8, int16, int32, int64 (and types derived from them)
//
// # Example Usage
//
//	import "github.com/ajroetker/go-blipsort/blip"
//
//	func ProcessData(data []int32) {
//	    blip.Sort(data)  // In-place ascending sort
//	}
//
//	func CheckSorted(data []int32) bool {
//	    return blip.IsSorted(data)
//	}
//
// # Performance
//
// The inner loops move elements through a gap (two moves per element
// rather than a three-move swap) and advance cursors with predicate
// arithmetic instead of branches, so throughput does not collapse on
// inputs that defeat branch prediction. Already-sorted, reverse-sorted,
// and all-equal inputs complete in linear time.
//
// The sort allocates nothing, never blocks, and runs on the caller's
// goroutine; stack depth stays logarithmic in the input length.
package blip
