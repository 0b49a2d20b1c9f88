// Copyright 2025 go-highway Authors
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

package hwy

import "unsafe"

// FixedTag128 and FixedTag256 select a vector width (128 bits, 256
// bits) whose MaxLanes() reports N = V/W for element type T.
//
// Unlike the upstream go-highway library, there is no ScalableTag and
// no Tag interface here: lane width is fixed per entry point with no
// runtime CPU-feature dispatch, so the only thing either tag needs to
// expose is its lane count.

// FixedTag128 selects 128-bit vectors.
type FixedTag128[T ScoreInt] struct{}

// MaxLanes returns N = V/W: the number of T values that fit in 128 bits.
func (FixedTag128[T]) MaxLanes() int {
	var dummy T
	return 16 / int(unsafe.Sizeof(dummy))
}

// FixedTag256 selects 256-bit vectors.
type FixedTag256[T ScoreInt] struct{}

// MaxLanes returns N = V/W: the number of T values that fit in 256 bits.
func (FixedTag256[T]) MaxLanes() int {
	var dummy T
	return 32 / int(unsafe.Sizeof(dummy))
}
