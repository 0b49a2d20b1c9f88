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

// Command lanealign-bench scores a random query against a batch of
// random references and reports throughput for one (score width,
// vector width) kernel.
//
// Usage:
//
//	lanealign-bench -querylen 512 -refs 4096 -reflen 512 -width i8x32
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/seqlane/lanealign/align"
)

var (
	queryLen = flag.Int("querylen", 256, "query sequence length")
	numRefs  = flag.Int("refs", 1024, "number of reference sequences")
	refLen   = flag.Int("reflen", 256, "reference sequence length")
	width    = flag.String("width", "i8x32", "kernel: i8x16, i16x8, i32x4, i8x32, i16x16, i32x8")
	seed     = flag.Int64("seed", 1, "random seed")
)

const alphabetSize = 4

func main() {
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	submat := identitySubmat(2, -1)
	query := align.NewSequence(randomSeq(rng, *queryLen))

	refs := make([]align.Sequence, *numRefs)
	for i := range refs {
		refs[i] = align.NewSequence(randomSeq(rng, *refLen))
	}

	start := time.Now()
	var err error
	switch *width {
	case "i8x16":
		err = align.ScoreI8x16(align.NewBuffer(), submat, 2, 1, query, refs, resultsI8(refs))
	case "i8x32":
		err = align.ScoreI8x32(align.NewBuffer(), submat, 2, 1, query, refs, resultsI8(refs))
	case "i16x8":
		err = align.ScoreI16x8(align.NewBuffer(), widenSubmat16(submat), 2, 1, query, refs, resultsI16(refs))
	case "i16x16":
		err = align.ScoreI16x16(align.NewBuffer(), widenSubmat16(submat), 2, 1, query, refs, resultsI16(refs))
	case "i32x4":
		err = align.ScoreI32x4(align.NewBuffer(), widenSubmat32(submat), 2, 1, query, refs, resultsI32(refs))
	case "i32x8":
		err = align.ScoreI32x8(align.NewBuffer(), widenSubmat32(submat), 2, 1, query, refs, resultsI32(refs))
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported -width %q\n\n", *width)
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	cells := float64(*queryLen) * float64(*refLen) * float64(*numRefs)
	fmt.Printf("scored %d references in %s (%.2f Gcells/s)\n", *numRefs, elapsed, cells/elapsed.Seconds()/1e9)
}

func resultsI8(refs []align.Sequence) []*align.Result[int8] {
	out := make([]*align.Result[int8], len(refs))
	for i := range out {
		out[i] = &align.Result[int8]{}
	}
	return out
}

func resultsI16(refs []align.Sequence) []*align.Result[int16] {
	out := make([]*align.Result[int16], len(refs))
	for i := range out {
		out[i] = &align.Result[int16]{}
	}
	return out
}

func resultsI32(refs []align.Sequence) []*align.Result[int32] {
	out := make([]*align.Result[int32], len(refs))
	for i := range out {
		out[i] = &align.Result[int32]{}
	}
	return out
}

func widenSubmat16(m align.SubMatrix[int8]) align.SubMatrix[int16] {
	data := make([]int16, len(m.Data))
	for i, v := range m.Data {
		data[i] = int16(v)
	}
	return align.NewSubMatrix(data, m.Size)
}

func widenSubmat32(m align.SubMatrix[int8]) align.SubMatrix[int32] {
	data := make([]int32, len(m.Data))
	for i, v := range m.Data {
		data[i] = int32(v)
	}
	return align.NewSubMatrix(data, m.Size)
}

func identitySubmat(match, mismatch int8) align.SubMatrix[int8] {
	data := make([]int8, alphabetSize*alphabetSize)
	for r := 0; r < alphabetSize; r++ {
		for q := 0; q < alphabetSize; q++ {
			if r == q {
				data[r*alphabetSize+q] = match
			} else {
				data[r*alphabetSize+q] = mismatch
			}
		}
	}
	return align.NewSubMatrix(data, alphabetSize)
}

func randomSeq(rng *rand.Rand, n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(rng.Intn(alphabetSize))
	}
	return buf
}
