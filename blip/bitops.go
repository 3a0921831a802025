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

import "math/bits"

// log2Floor returns the index of the highest set bit of x, which is
// floor(log2(x)) for non-zero values. It seeds the recursion depth budget.
// x must be non-zero.
func log2Floor(x uint32) int {
	return bits.Len32(x) - 1
}
