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

// Package align implements a lane-multiplexed inter-sequence parallel
// alignment engine: one query sequence is scored against a batch of
// reference sequences under an affine-gap global (Needleman-Wunsch)
// model, several references at a time, by packing independent
// alignments into the lanes of a fixed-width hwy.Vec.
package align

// Sequence describes a read-only symbol sequence borrowed for the
// duration of one alignment call. Symbols are indexed in [0, A) where A
// is the alphabet size of the substitution matrix used alongside it.
//
// seq.At(i) computes j = Offset + (Reversed ? -i : i), then returns
// either Data[j] (the unpacked case) or the 2-bit symbol at bit
// position (j&3)*2 of Data[j>>2] (the packed case, used for DNA/RNA
// alphabets).
type Sequence struct {
	Data     []byte
	Len      int
	Offset   int
	Reversed bool
	Packed   bool
}

// NewSequence returns an unpacked, forward Sequence wrapping data in
// its entirety. It is a convenience constructor for the common case;
// callers needing Offset/Reversed/Packed build a Sequence literal
// directly.
func NewSequence(data []byte) Sequence {
	return Sequence{Data: data, Len: len(data)}
}

// At returns the symbol at query position i, 0 <= i < Len.
//
// Out-of-range i, a misaligned Offset, or a symbol value outside [0, A)
// are undefined behaviour by contract: this is an unchecked inner
// primitive, not a validated public API.
func (s Sequence) At(i int) uint8 {
	j := s.Offset + i
	if s.Reversed {
		j = s.Offset - i
	}
	if s.Packed {
		q, r := j>>2, uint(j&3)
		return (s.Data[q] >> (r * 2)) & 0b11
	}
	return s.Data[j]
}
