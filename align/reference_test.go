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

import (
	"math/rand"
	"testing"
)

// referenceScore is a plain, unvectorized Gotoh affine-gap global
// alignment oracle used only by tests to cross-check the lane-packed
// kernels. Its row-by-row score-only recurrence is the affine
// generalization of bioflow-go's GlobalAlignmentScoreOnly (linear-gap,
// two-row reuse); this oracle keeps full E/F/H tables instead of two
// rows since it is only ever run against small test inputs, and works
// in ordinary (unclamped) Go ints so that test scores chosen to avoid
// saturation can be trusted as exact.
func referenceScore(sub func(ref, query uint8) int, gapOpen, gapExtend int, query, ref []byte) int {
	rows, cols := len(query)+1, len(ref)+1
	affine := func(k int) int {
		if k <= 0 {
			return 0
		}
		return -(gapOpen + gapExtend*k)
	}

	h := make([][]int, rows)
	e := make([][]int, rows)
	f := make([][]int, rows)
	for i := range h {
		h[i] = make([]int, cols)
		e[i] = make([]int, cols)
		f[i] = make([]int, cols)
	}

	for i := 0; i < rows; i++ {
		h[i][0] = affine(i)
	}
	for j := 0; j < cols; j++ {
		h[0][j] = affine(j)
	}
	for i := 1; i < rows; i++ {
		e[i][0] = affine(i) - (gapOpen + gapExtend)
	}
	for j := 1; j < cols; j++ {
		f[0][j] = affine(j) - (gapOpen + gapExtend)
	}

	max := func(a, b int) int {
		if a > b {
			return a
		}
		return b
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			e[i][j] = max(h[i][j-1]-(gapOpen+gapExtend), e[i][j-1]-gapExtend)
			f[i][j] = max(h[i-1][j]-(gapOpen+gapExtend), f[i-1][j]-gapExtend)
			diag := h[i-1][j-1] + sub(ref[j-1], query[i-1])
			h[i][j] = max(max(diag, e[i][j]), f[i][j])
		}
	}

	return h[rows-1][cols-1]
}

// TestKernelMatchesOracle fuzzes random (query, ref-batch, submat,
// gap-penalty) inputs, kept small enough in magnitude to stay clear of
// int8 saturation, and checks that every ScoreI8x16 output agrees
// exactly with the independent referenceScore oracle above.
func TestKernelMatchesOracle(t *testing.T) {
	const alphabet = 4
	rng := rand.New(rand.NewSource(42))

	randSeq := func(n int) []byte {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = byte(rng.Intn(alphabet))
		}
		return buf
	}

	for trial := 0; trial < 200; trial++ {
		data := make([]int8, alphabet*alphabet)
		for i := range data {
			data[i] = int8(rng.Intn(11) - 5) // [-5, 5]
		}
		submat := NewSubMatrix(data, alphabet)
		sub := func(ref, query uint8) int { return int(submat.At(ref, query)) }

		gapOpen := int8(rng.Intn(3) + 1)   // [1, 3]
		gapExtend := int8(rng.Intn(2) + 1) // [1, 2]

		query := randSeq(rng.Intn(9)) // len in [0, 8]

		numRefs := rng.Intn(5) + 1 // [1, 5]
		refs := make([]Sequence, numRefs)
		out := make([]*Result[int8], numRefs)
		want := make([]int, numRefs)
		for i := range refs {
			refBytes := randSeq(rng.Intn(9))
			refs[i] = NewSequence(refBytes)
			out[i] = &Result[int8]{}
			want[i] = referenceScore(sub, int(gapOpen), int(gapExtend), query, refBytes)
		}

		buf := NewBuffer()
		if err := ScoreI8x16(buf, submat, gapOpen, gapExtend, NewSequence(query), refs, out); err != nil {
			t.Fatalf("trial %d: ScoreI8x16: %v", trial, err)
		}
		for i := range refs {
			if got := int(out[i].Score); got != want[i] {
				t.Errorf("trial %d ref %d: ScoreI8x16 = %d, oracle = %d", trial, i, got, want[i])
			}
		}
	}
}
