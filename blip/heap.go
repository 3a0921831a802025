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

// heapSort sorts data in ascending order by building a max-heap and
// repeatedly sifting the root out to the shrinking right end. It is the
// depth-limit fallback that caps the sort at O(n log n).
func heapSort[T SignedInts](data []T) {
	n := len(data)

	// Build the heap.
	for i := n >> 1; i >= 0; i-- {
		siftDown(data, i, n)
	}

	// Extract.
	for r := n - 1; r > 0; r-- {
		z := data[0]
		data[0] = data[r]
		siftDown(data, 0, r)
		data[r] = z
	}
}

// siftDown percolates data[i] down through a max-heap of size n, moving
// the larger child up into the hole until the sifted element fits.
func siftDown[T SignedInts](data []T, i, n int) {
	// Non-leaf boundary.
	o := n >> 1

	z := data[i]
	x := i
	for x < o {
		l := x<<1 + 1
		r := l + 1
		y := data[l]
		if r < n && y < data[r] {
			l = r
			y = data[r]
		}
		if y <= z {
			break
		}
		data[x] = y
		x = l
	}
	data[x] = z
}
