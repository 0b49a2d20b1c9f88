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

package align

import "github.com/seqlane/lanealign/hwy"

// emptySlot is the distinguished sentinel reference id for an
// unoccupied lane.
const emptySlot = -1

// slot is one lane's assignment: either empty, or the reference it
// currently holds and the column position within that reference.
type slot struct {
	id  int
	pos int
}

// Result holds the score written for one reference, allocated by the
// caller and written exactly once when its reference retires.
type Result[T hwy.ScoreInt] struct {
	Score T
}

// scheduler tracks the occupancy of all N lanes, the cursor into the
// pending reference list, and owns the re-initialization of a lane's
// column-vector state when a new reference is swapped in.
type scheduler[T hwy.ScoreInt] struct {
	slots     []slot
	nextRef   int
	refs      []Sequence
	out       []*Result[T]
	gapOpen   T
	gapExtend T
	queryLen  int
	colE      []hwy.Vec[T]
	colH      []hwy.Vec[T]
}

func newScheduler[T hwy.ScoreInt](lanes int, refs []Sequence, out []*Result[T], gapOpen, gapExtend T, queryLen int, colE, colH []hwy.Vec[T]) *scheduler[T] {
	s := &scheduler[T]{
		slots:     make([]slot, lanes),
		refs:      refs,
		out:       out,
		gapOpen:   gapOpen,
		gapExtend: gapExtend,
		queryLen:  queryLen,
		colE:      colE,
		colH:      colH,
	}
	for k := range s.slots {
		s.slots[k] = slot{id: emptySlot}
	}
	return s
}

// affineScore returns the affine gap penalty for a gap of length k:
// -(gap_open + gap_extend*k) for k>0, 0 for k=0.
func affineScore[T hwy.ScoreInt](k int, gapOpen, gapExtend T) T {
	if k <= 0 {
		return 0
	}
	return -(gapOpen + gapExtend*T(k))
}

// allEmpty reports whether every lane is unoccupied.
func (s *scheduler[T]) allEmpty() bool {
	for _, sl := range s.slots {
		if sl.id != emptySlot {
			return false
		}
	}
	return true
}

// step advances lane k by one outer iteration: advance-in-place,
// retire-and-flush, search-and-install, lane-restart re-initialization,
// and the zero-length-reference fast path.
func (s *scheduler[T]) step(k int) {
	sl := &s.slots[k]

	if sl.id != emptySlot {
		sl.pos++
		if sl.pos < s.refs[sl.id].Len {
			return
		}
		// Finished: flush the final score before searching for a successor.
		s.out[sl.id].Score = s.colH[s.queryLen].Get(k)
	}

	for s.nextRef < len(s.refs) {
		candidate := s.nextRef
		if s.refs[candidate].Len == 0 {
			// Emitted without ever occupying a lane.
			s.out[candidate].Score = affineScore(s.queryLen, s.gapOpen, s.gapExtend)
			s.nextRef++
			continue
		}

		sl.id = candidate
		sl.pos = 0
		s.nextRef++
		s.restartLane(k)
		return
	}

	sl.id = emptySlot
}

// restartLane re-initializes lane k of the column vectors for a freshly
// installed reference:
//
//	H[0][k] <- 0
//	H[i][k] <- affine(i), E[i][k] <- H[i][k] - (gap_open+gap_extend), for i = 1..|query|
func (s *scheduler[T]) restartLane(k int) {
	gapFirst := s.gapOpen + s.gapExtend
	for i := 0; i <= s.queryLen; i++ {
		h := affineScore(i, s.gapOpen, s.gapExtend)
		s.colH[i] = s.colH[i].Set(k, h)
		if i > 0 {
			s.colE[i] = s.colE[i].Set(k, h-gapFirst)
		}
	}
}
