// Copyright 2025 go-blipsort Authors
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

package blip

// partition partitions the inclusive range [low, high] around the pivot
// value at mid using the branchless Lomuto scheme. Instead of swapping, it
// keeps a one-element gap and moves elements twice per iteration, advancing
// the boundary cursor with a predicate add.
//
// During partitioning:
//
//	+-------------------------------------------------------------+
//	|  ... < p  |  ... >= p  | * |     ... ? ...     |  ... >= p  |
//	+-------------------------------------------------------------+
//	^           ^            ^                       ^            ^
//	low         l            g                       k         high
//
// After partitioning:
//
//	+-------------------------------------------------------------+
//	|           ... < p            |            >= p ...          |
//	+-------------------------------------------------------------+
//	^                              ^                              ^
//	low                            l                           high
//
// The returned l and g step over the pivot's final slot, so a[low..l] < p
// when the left side is non-empty, a[g..high] >= p when the right side is
// non-empty, and neither side re-examines the pivot. work reports whether
// the main loop had a significant number of elements left to move after
// the two skip scans.
func partition[T SignedInts](a []T, low, high, mid int) (int, int, bool) {
	p := a[mid]

	// Skip over elements already in place on the left.
	l := low
	for a[l] < p {
		l++
	}

	// Open a gap at l. Its old value rides in a[mid] until the pivot is
	// written back; the slot itself is overwritten before it is ever read,
	// so no stopper value is required. Bounding the right-hand skip scan on
	// l (rather than planting p-1 in the gap) also keeps a pivot equal to
	// the type's minimum from wrapping the scan past the slice head.
	a[mid] = a[l]

	// Skip over elements already in place on the right.
	k := high
	for k > l && a[k] >= p {
		k--
	}

	work := (l-low)+(high-k) < (high-low)>>1

	g := l
	for g < k {
		a[g] = a[l]
		g++
		a[l] = a[g]
		l += b2i(a[l] < p)
	}
	a[g] = a[l]
	a[l] = p

	// Step over the pivot.
	g = l + b2i(l < high)
	l -= b2i(l > low)
	return l, g, work
}

// partitionLeft partitions [low, high] into keys equal to h on the left and
// keys greater than h on the right, where h is the separator at a[low-1].
// The caller guarantees h equals at least one of the middle candidates and,
// by the outer invariant, that no key less than h remains in the range. It
// returns the first index of the greater-than region.
//
// During partitioning:
//
//	+-------------------------------------------------------------+
//	|  ... == h  |  ... > h  | * |     ... ? ...      |  ... > h  |
//	+-------------------------------------------------------------+
//	^            ^           ^                        ^           ^
//	low          l           k                        g         high
//
// After partitioning:
//
//	+-------------------------------------------------------------+
//	|           ... == h           |            > h ...           |
//	+-------------------------------------------------------------+
//	^                              ^                              ^
//	low                            l                           high
func partitionLeft[T SignedInts](a []T, low, high int, h T) int {
	// Skip over greater keys already in place on the right. At least one
	// key equal to h sits in the range, so the scan terminates.
	g := high
	for a[g] > h {
		g--
	}

	// Plant a stopper so the equal-run scan cannot pass g. h+1 differs
	// from h for every fixed-width integer, wraparound included.
	e := a[g]
	a[g] = h + 1
	l := low
	for a[l] == h {
		l++
	}
	a[g] = e

	// Branchless Lomuto pass with an equality predicate.
	k := l
	p := a[l]
	for k < g {
		a[k] = a[l]
		k++
		a[l] = a[k]
		l += b2i(a[l] == h)
	}
	a[k] = a[l]
	a[l] = p
	l += b2i(p == h)
	return l
}
