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

// scramble swaps a few elements of [low, high] at quarter offsets to break
// up patterns that produced an unbalanced partition, before the range is
// partitioned again. size is the width signal the caller already computed
// for the balance test. Ranges below the insertion threshold are left
// alone, and large ranges get two extra pairs swapped on each side.
func scramble[T SignedInts](a []T, low, high, size int) {
	if size < insertionThreshold {
		return
	}
	q := size >> 2
	a[low], a[low+q] = a[low+q], a[low]
	a[high], a[high-q] = a[high-q], a[high]
	if size > largeDataThreshold {
		a[low+1], a[low+q+1] = a[low+q+1], a[low+1]
		a[low+2], a[low+q+2] = a[low+q+2], a[low+2]
		a[high-2], a[high-q-2] = a[high-q-2], a[high-2]
		a[high-1], a[high-q-1] = a[high-q-1], a[high-1]
	}
}
