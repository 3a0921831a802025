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

// Sort sorts data in-place in ascending order. It is a hybrid of
// introspective quicksort with branchless Lomuto partitioning, pair
// insertion sort, and heapsort:
//   - O(n log n) worst case via a depth-limited heapsort fallback
//   - O(n) on already-sorted, reverse-sorted, and all-equal inputs
//   - no allocation; stack depth bounded by iterating on the right side
//
// The sort is not stable.
func Sort[T SignedInts](data []T) {
	n := len(data)
	if n < 2 {
		return
	}
	if n < insertionThreshold {
		insertionSort(data, 0, n-1, true, false)
		return
	}
	sortImpl(data, true, 0, n-1, log2Floor(uint32(n)), true)
}

// sortImpl is the quicksort driver over the inclusive range [low, high].
// leftmost reports whether the range abuts the left end of the original
// slice. When it is false, a[low-1] exists and is known to be <= every
// element in range. height counts down with each bad partition; below zero the
// driver hands off to heapsort. root marks the top-level frame, which
// defers the small-range and depth checks until after its first partition.
//
// The loop recurses on the left portion and iterates on the right.
func sortImpl[T SignedInts](a []T, leftmost bool, low, high, height int, root bool) {
	for x := high - low; ; {
		if !root {
			if x < insertionThreshold {
				insertionSort(a, low, high, leftmost, false)
				return
			}
			if height < 0 {
				heapSort(a[low : high+1])
				return
			}
		}

		// Cheap approximations of a third and a sixth of the range.
		y := x >> 2
		third := y + y>>1
		sixth := third >> 1

		// Five candidate pivots, evenly spread.
		mid := low + x>>1
		sl := low + third
		sr := high - third
		cl := low + sixth
		cr := high - sixth

		if a[low] <= a[cl] || a[cl] <= a[sl] || a[sl] <= a[mid] ||
			a[mid] <= a[sr] || a[sr] <= a[cr] || a[cr] <= a[high] {
			sortCandidates(a, low, high, cl, sl, mid, sr, cr)
		} else {
			// All six adjacent pairs descend strictly: the range is almost
			// certainly descending too, which is the worst shape for Lomuto.
			// Rotate the whole range around the midpoint instead of sorting
			// the candidates. One leftover element in odd widths is no
			// problem for the branchless partition.
			for u, q := low, high; u < mid; u, q = u+1, q-1 {
				a[u], a[q] = a[q], a[u]
			}
		}

		if !leftmost {
			// h is the separator left behind by the previous partition. If
			// it matches a middle candidate, the range likely holds a run of
			// keys equal to h: sweep them against the left edge and continue
			// with the remainder. This yields linear time on all-equal data.
			h := a[low-1]
			if h == a[sl] || h == a[mid] || h == a[sr] {
				low = partitionLeft(a, low, high, h)
				if low >= high {
					return
				}
				x = high - low
				continue
			}
		}

		l, g, work := partition(a, low, high, mid)

		eighth := x >> 3
		ls := l - low
		gs := high - g

		sortLeft := true
		if ls >= eighth && gs >= eighth {
			// The partition is fairly balanced. If its skip scans covered
			// most of the range, both sides may already be nearly in order:
			// try insertion sort and bail if it trends past O(n).
			if !work {
				if insertionSort(a, low, l, leftmost, true) {
					if insertionSort(a, g, high, false, true) {
						return
					}
					sortLeft = false
				}
			}
		} else {
			// Unbalanced. Perturb both sides to break the pattern that
			// fooled the candidate median, and burn one unit of height.
			scramble(a, low, l, ls)
			scramble(a, g, high, gs)
			height--
		}

		if sortLeft {
			sortImpl(a, leftmost, low, l, height, false)
		}

		// Iterate on the right portion.
		low = g
		x = high - low
		if root {
			// The root frame runs these checks only after its first
			// partition, so its terminal insertion sort is always the
			// unguarded non-leftmost variant.
			if x < insertionThreshold {
				insertionSort(a, low, high, false, false)
				return
			}
			if height < 0 {
				heapSort(a[low : high+1])
				return
			}
		}
		leftmost = false
	}
}

// sortCandidates insertion sorts the five candidate pivots in place so that
// a[cl] <= a[sl] <= a[mid] <= a[sr] <= a[cr], cascading each inserted value
// as far left as it needs to go. The outer candidates are first widened to
// the range ends when the ends hold more extreme values.
func sortCandidates[T SignedInts](a []T, low, high, cl, sl, mid, sr, cr int) {
	if a[low] < a[cl] {
		cl = low
	}
	if a[high] > a[cr] {
		cr = high
	}

	if a[sl] < a[cl] {
		a[sl], a[cl] = a[cl], a[sl]
	}

	if a[mid] < a[sl] {
		e := a[mid]
		a[mid] = a[sl]
		a[sl] = e
		if e < a[cl] {
			a[sl] = a[cl]
			a[cl] = e
		}
	}

	if a[sr] < a[mid] {
		e := a[sr]
		a[sr] = a[mid]
		a[mid] = e
		if e < a[sl] {
			a[mid] = a[sl]
			a[sl] = e
			if e < a[cl] {
				a[sl] = a[cl]
				a[cl] = e
			}
		}
	}

	if a[cr] < a[sr] {
		e := a[cr]
		a[cr] = a[sr]
		a[sr] = e
		if e < a[mid] {
			a[sr] = a[mid]
			a[mid] = e
			if e < a[sl] {
				a[mid] = a[sl]
				a[sl] = e
				if e < a[cl] {
					a[sl] = a[cl]
					a[cl] = e
				}
			}
		}
	}
}
