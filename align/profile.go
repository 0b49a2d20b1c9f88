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

// buildProfile reads the current reference symbol of every occupied
// lane and fills prof so that, for every alphabet symbol c,
// prof[c].Get(k) holds the substitution score of aligning lane k's
// current reference symbol against query symbol c.
//
// Empty lanes receive a score of zero in every row; the inner loop
// still processes them in lockstep with the occupied lanes, but their
// output is never read back (no slot ever retires out of an empty
// lane; see scheduler.step).
func buildProfile[T hwy.ScoreInt](s *scheduler[T], prof []hwy.Vec[T], submat SubMatrix[T]) {
	for k, sl := range s.slots {
		if sl.id == emptySlot {
			for c := range prof {
				prof[c] = prof[c].Set(k, 0)
			}
			continue
		}
		refSym := s.refs[sl.id].At(sl.pos)
		for c := range prof {
			prof[c] = prof[c].Set(k, submat.At(refSym, uint8(c)))
		}
	}
}
