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

// SubMatrix is a square, row-major substitution matrix of score width
// T. Entry (r, q) is the score of aligning reference symbol r against
// query symbol q: row = reference symbol, column = query symbol.
type SubMatrix[T hwy.ScoreInt] struct {
	Data []T
	Size int
}

// NewSubMatrix returns a SubMatrix wrapping a pre-built row-major
// data slice of length Size*Size.
func NewSubMatrix[T hwy.ScoreInt](data []T, size int) SubMatrix[T] {
	return SubMatrix[T]{Data: data, Size: size}
}

// At returns the score of aligning reference symbol ref against query
// symbol query. Out-of-range symbols are undefined behaviour by
// contract.
func (m SubMatrix[T]) At(ref, query uint8) T {
	return m.Data[int(ref)*m.Size+int(query)]
}
