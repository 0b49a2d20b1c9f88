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

import "testing"

func TestSequenceAtPlain(t *testing.T) {
	s := NewSequence([]byte{0, 1, 2, 3})
	for i, want := range []uint8{0, 1, 2, 3} {
		if got := s.At(i); got != want {
			t.Errorf("At(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestSequenceAtOffset(t *testing.T) {
	s := Sequence{Data: []byte{9, 9, 0, 1, 2, 3}, Len: 4, Offset: 2}
	for i, want := range []uint8{0, 1, 2, 3} {
		if got := s.At(i); got != want {
			t.Errorf("At(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestSequenceAtReversed(t *testing.T) {
	s := Sequence{Data: []byte{0, 1, 2, 3}, Len: 4, Offset: 3, Reversed: true}
	for i, want := range []uint8{3, 2, 1, 0} {
		if got := s.At(i); got != want {
			t.Errorf("At(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestSequenceAtPacked(t *testing.T) {
	// Symbols 0,1,2,3 packed two bits each into a single byte,
	// least-significant pair first: 0b11100100.
	s := Sequence{Data: []byte{0b11100100}, Len: 4, Packed: true}
	for i, want := range []uint8{0, 1, 2, 3} {
		if got := s.At(i); got != want {
			t.Errorf("At(%d) = %d, want %d", i, got, want)
		}
	}
}
