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

// Thresholds for different sorting strategies.
const (
	// insertionThreshold: ranges narrower than this are insertion sorted.
	insertionThreshold = 88

	// ascendingThreshold: maximum number of moves an optimistic insertion
	// sort may make before it bails back to quicksort.
	ascendingThreshold = 8

	// largeDataThreshold: ranges longer than this get the wider scramble.
	largeDataThreshold = 128
)
