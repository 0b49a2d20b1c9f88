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

// Package hwy provides a portable, fixed-width lane-vector facade over
// signed integer SIMD registers.
//
// Unlike the upstream go-highway library this package is adapted from,
// a Vec's lane count is never derived from a process-wide, runtime
// CPU-detected width. It is fixed at construction time from the (score
// width, vector width) pair the caller chooses via a Tag (see tags.go),
// so that an 8-bit/128-bit vector and an 8-bit/256-bit vector can
// coexist in the same binary with no runtime dispatch inside the inner
// loop. All operations are written once, generically over ScoreInt, and
// work unchanged regardless of lane count.
package hwy

// ScoreInt is the constraint for lane element types this facade
// supports: the three signed integer widths the alignment kernel is
// specialized for.
type ScoreInt interface {
	~int8 | ~int16 | ~int32
}

// Vec is a portable vector handle wrapping N lanes of type T.
//
// Vec instances should not be constructed directly; use Broadcast or
// FromLanes.
type Vec[T ScoreInt] struct {
	lanes []T
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.lanes)
}

// Get returns the value held in lane k.
func (v Vec[T]) Get(k int) T {
	return v.lanes[k]
}

// Set returns a vector equal to v except that lane k holds x. The
// receiver's backing storage is reused in place; callers that need the
// original vector to remain unchanged should call Clone first.
func (v Vec[T]) Set(k int, x T) Vec[T] {
	v.lanes[k] = x
	return v
}

// Clone returns a vector with an independent copy of v's lanes.
func (v Vec[T]) Clone() Vec[T] {
	lanes := make([]T, len(v.lanes))
	copy(lanes, v.lanes)
	return Vec[T]{lanes: lanes}
}

// Lanes returns the underlying slice representation of the vector. This
// is primarily for testing and diagnostics; mutate through Set instead.
func (v Vec[T]) Lanes() []T {
	return v.lanes
}

// WrapLanes wraps an existing slice as a Vec without copying; the
// returned Vec aliases mem, so mutating one mutates the other. This is
// the primitive a caller uses to carve a larger aligned allocation into
// lane-count windows (see align.Buffer and align.Carve).
func WrapLanes[T ScoreInt](mem []T) Vec[T] {
	return Vec[T]{lanes: mem}
}
