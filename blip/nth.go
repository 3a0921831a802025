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

// NthElement rearranges data so that the element at index k is the element
// that would be there if data were sorted. Elements before k compare <=
// data[k] and elements after compare >= data[k]. It runs the same candidate
// selection and branchless partition as Sort, narrowing to the side that
// holds k, and settles for sorting the remainder once the range is small
// or the depth budget runs out.
func NthElement[T SignedInts](data []T, k int) {
	n := len(data)
	if k < 0 || k >= n || n < 2 {
		return
	}
	nthImpl(data, k, log2Floor(uint32(n)))
}

func nthImpl[T SignedInts](a []T, k, height int) {
	for {
		n := len(a)
		if n < insertionThreshold || height < 0 {
			Sort(a)
			return
		}

		x := n - 1
		y := x >> 2
		third := y + y>>1
		sixth := third >> 1
		mid := x >> 1

		sortCandidates(a, 0, x, sixth, third, mid, x-third, x-sixth)
		l, g, _ := partition(a, 0, x, mid)

		if k <= l {
			a = a[:l+1]
		} else if k >= g {
			a = a[g:]
			k -= g
		} else {
			// k is the pivot slot, already in final position.
			return
		}
		height--
	}
}
