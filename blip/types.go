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

// SignedInts is a constraint for the signed fixed-width integer types the
// sort specializes to. The partition-left fast path relies on integer
// successor arithmetic, so only these types are supported.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}
