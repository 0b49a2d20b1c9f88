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

// The exported entry points (ScoreI8x16, ScoreI16x8, ...) each fix a
// score width and a vector width at compile time; there is no runtime
// CPU-feature dispatch.
package align

import "github.com/seqlane/lanealign/hwy"

// arith selects the add/sub implementation an entry point uses: the
// 8- and 16-bit kernels saturate, the 32-bit kernel wraps. It is chosen
// once per entry point and threaded down, rather than branched on
// inside the inner loop.
type arith[T hwy.ScoreInt] struct {
	add func(a, b hwy.Vec[T]) hwy.Vec[T]
	sub func(a, b hwy.Vec[T]) hwy.Vec[T]
}

func saturatingArith[T hwy.ScoreInt]() arith[T] {
	return arith[T]{add: hwy.SaturatedAdd[T], sub: hwy.SaturatedSub[T]}
}

func wrappingArith[T hwy.ScoreInt]() arith[T] {
	return arith[T]{add: hwy.WrappingAdd[T], sub: hwy.WrappingSub[T]}
}

// advanceColumn runs the DP inner loop for one reference column, across
// every lane simultaneously. prevRowH tracks H(i-1, j) within this
// column; diag tracks H(i-1, j-1), read off the previous column's
// contents of colH before each row overwrites them.
func advanceColumn[T hwy.ScoreInt](s *scheduler[T], prof []hwy.Vec[T], query []byte, lanes int, ar arith[T]) {
	gapOpenExt := hwy.Broadcast(lanes, s.gapOpen+s.gapExtend)
	gapExt := hwy.Broadcast(lanes, s.gapExtend)

	// Row 0: H(0, j) is recomputed directly from the closed-form affine
	// formula rather than carried forward, and F resets from it.
	newH0 := hwy.Broadcast[T](lanes, 0)
	for k, sl := range s.slots {
		newH0 = newH0.Set(k, affineScore(sl.pos+1, s.gapOpen, s.gapExtend))
	}

	diag := s.colH[0]
	s.colH[0] = newH0
	prevRowH := newH0
	f := ar.sub(newH0, gapOpenExt)

	for i := 1; i <= s.queryLen; i++ {
		qSym := query[i-1]
		diagTerm := ar.add(diag, prof[qSym])

		eOpen := ar.sub(s.colH[i], gapOpenExt)
		eExtend := ar.sub(s.colE[i], gapExt)
		newE := hwy.Max(eOpen, eExtend)

		fOpen := ar.sub(prevRowH, gapOpenExt)
		fExtend := ar.sub(f, gapExt)
		f = hwy.Max(fOpen, fExtend)

		newH := hwy.Max(hwy.Max(diagTerm, newE), f)

		diag = s.colH[i]
		s.colE[i] = newE
		s.colH[i] = newH
		prevRowH = newH
	}
}

// run drives the outer loop to completion: step every lane's scheduler
// state, stop once every lane is empty, otherwise rebuild the profile
// and advance one column for all occupied lanes.
func run[T hwy.ScoreInt](buf *Buffer, submat SubMatrix[T], gapOpen, gapExtend T, query Sequence, refs []Sequence, out []*Result[T], lanes int, ar arith[T]) error {
	if len(refs) == 0 {
		return nil
	}

	if query.Len == 0 {
		// H never advances past row 0 when there are no query rows to
		// scan, so the general lane machinery cannot produce the
		// pure-gap scores an empty query requires; compute them
		// directly instead.
		for idx, ref := range refs {
			out[idx].Score = affineScore(ref.Len, gapOpen, gapExtend)
		}
		return nil
	}

	if err := buf.EnsureCapacity(RequiredBytes[T](query.Len, submat.Size, lanes), elemSize[T]()*lanes); err != nil {
		return err
	}
	colE, colH, prof, unpackedQuery := Carve[T](buf, query.Len, submat.Size, lanes)
	for i := 0; i < query.Len; i++ {
		unpackedQuery[i] = query.At(i)
	}
	queryBytes := unpackedQuery[:query.Len]

	sched := newScheduler[T](lanes, refs, out, gapOpen, gapExtend, query.Len, colE, colH)

	for {
		for k := 0; k < lanes; k++ {
			sched.step(k)
		}
		if sched.allEmpty() {
			return nil
		}
		buildProfile(sched, prof, submat)
		advanceColumn(sched, prof, queryBytes, lanes, ar)
	}
}

// ScoreI8x16 scores query against refs using 8-bit saturating scores
// packed 16 to a 128-bit lane vector.
func ScoreI8x16(buf *Buffer, submat SubMatrix[int8], gapOpen, gapExtend int8, query Sequence, refs []Sequence, out []*Result[int8]) error {
	lanes := hwy.FixedTag128[int8]{}.MaxLanes()
	return run(buf, submat, gapOpen, gapExtend, query, refs, out, lanes, saturatingArith[int8]())
}

// ScoreI16x8 scores query against refs using 16-bit saturating scores
// packed 8 to a 128-bit lane vector.
func ScoreI16x8(buf *Buffer, submat SubMatrix[int16], gapOpen, gapExtend int16, query Sequence, refs []Sequence, out []*Result[int16]) error {
	lanes := hwy.FixedTag128[int16]{}.MaxLanes()
	return run(buf, submat, gapOpen, gapExtend, query, refs, out, lanes, saturatingArith[int16]())
}

// ScoreI32x4 scores query against refs using 32-bit wrapping scores
// packed 4 to a 128-bit lane vector.
func ScoreI32x4(buf *Buffer, submat SubMatrix[int32], gapOpen, gapExtend int32, query Sequence, refs []Sequence, out []*Result[int32]) error {
	lanes := hwy.FixedTag128[int32]{}.MaxLanes()
	return run(buf, submat, gapOpen, gapExtend, query, refs, out, lanes, wrappingArith[int32]())
}

// ScoreI8x32 scores query against refs using 8-bit saturating scores
// packed 32 to a 256-bit lane vector.
func ScoreI8x32(buf *Buffer, submat SubMatrix[int8], gapOpen, gapExtend int8, query Sequence, refs []Sequence, out []*Result[int8]) error {
	lanes := hwy.FixedTag256[int8]{}.MaxLanes()
	return run(buf, submat, gapOpen, gapExtend, query, refs, out, lanes, saturatingArith[int8]())
}

// ScoreI16x16 scores query against refs using 16-bit saturating scores
// packed 16 to a 256-bit lane vector.
func ScoreI16x16(buf *Buffer, submat SubMatrix[int16], gapOpen, gapExtend int16, query Sequence, refs []Sequence, out []*Result[int16]) error {
	lanes := hwy.FixedTag256[int16]{}.MaxLanes()
	return run(buf, submat, gapOpen, gapExtend, query, refs, out, lanes, saturatingArith[int16]())
}

// ScoreI32x8 scores query against refs using 32-bit wrapping scores
// packed 8 to a 256-bit lane vector.
func ScoreI32x8(buf *Buffer, submat SubMatrix[int32], gapOpen, gapExtend int32, query Sequence, refs []Sequence, out []*Result[int32]) error {
	lanes := hwy.FixedTag256[int32]{}.MaxLanes()
	return run(buf, submat, gapOpen, gapExtend, query, refs, out, lanes, wrappingArith[int32]())
}
