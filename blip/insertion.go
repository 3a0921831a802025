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

// insertionSort sorts the inclusive range [low, high] in ascending order
// and reports whether it finished. leftmost selects the classical guarded
// variant; otherwise the pair variant runs, which relies on a[low-1] being
// <= every element in range to drop the lower-bound check and insert two
// elements per downward walk.
//
// With bail set, the sort gives up and returns false as soon as the
// accumulated move count exceeds ascendingThreshold, leaving the partially
// sorted range for the caller's quicksort to finish. The bail return is a
// control signal, not a failure.
func insertionSort[T SignedInts](a []T, low, high int, leftmost, bail bool) bool {
	moves := 0
	if leftmost {
		for i := low + 1; i <= high; i++ {
			t := a[i]
			j := i - 1
			for j >= low && t < a[j] {
				a[j+1] = a[j]
				j--
			}
			a[j+1] = t

			if bail {
				moves += (i - 1) - j
				if moves > ascendingThreshold {
					return false
				}
			}
		}
		return true
	}

	// Pair insertion sort. Skip the leading ascending run.
	l := low
	for {
		if l >= high {
			return true
		}
		l++
		if a[l] < a[l-1] {
			break
		}
	}

	for i := l; ; {
		l++
		if l > high {
			break
		}
		ex := a[i]
		ey := a[l]

		// Insert the larger of the pair first.
		if ey < ex {
			ex, ey = ey, ex
			moves++
		}

		// Walk both down in one motion: shift by two slots until the
		// larger lands, then by one until the smaller does. a[low-1]
		// stops both walks.
		i--
		for ey < a[i] {
			a[i+2] = a[i]
			i--
		}
		i++
		a[i+1] = ey
		i--
		for ex < a[i] {
			a[i+1] = a[i]
			i--
		}
		a[i+1] = ex

		if bail {
			moves += (l - 2) - i
			if moves > ascendingThreshold {
				return false
			}
		}

		l++
		i = l
	}

	// Odd length: insert the last element on its own.
	ez := a[high]
	r := high - 1
	for ez < a[r] {
		a[r+1] = a[r]
		r--
	}
	a[r+1] = ez
	return true
}
