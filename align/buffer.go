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
	"unsafe"

	"github.com/seqlane/lanealign/hwy"
)

// Buffer is a single contiguous, aligned scratch region owned by the
// caller and reused across alignment calls. It grows monotonically and
// never shrinks; its contents are undefined across calls except where
// a call explicitly initializes them.
//
// Grounded on the original C allocator (deps/simdalign.cpp's
// malloc_a32/posix_memalign(&ptr, 32, sz)): Buffer over-allocates by one
// alignment's worth of slack and hands back a window starting at the
// first aligned address, the Go analogue of posix_memalign.
type Buffer struct {
	raw      []byte
	align    int
	capacity int
}

// NewBuffer returns an empty Buffer. Call EnsureCapacity before use.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// EnsureCapacity grows the buffer, if needed, so that at least bytes
// bytes are available starting at an address aligned to alignment
// bytes. It never shrinks an existing allocation. Returns ErrAllocation
// only in the (practically unreachable in Go, which panics on true OOM)
// case that growth cannot be satisfied.
func (b *Buffer) EnsureCapacity(bytes, alignment int) error {
	if bytes <= 0 {
		return nil
	}
	if alignment <= 0 {
		alignment = 1
	}
	if b.capacity >= bytes && b.align >= alignment {
		return nil
	}
	raw := make([]byte, bytes+alignment)
	if raw == nil {
		return ErrAllocation
	}
	b.raw = raw
	b.align = alignment
	b.capacity = bytes
	return nil
}

// alignedOffset returns the first index into raw whose address is a
// multiple of b.align.
func (b *Buffer) alignedOffset() int {
	if len(b.raw) == 0 {
		return 0
	}
	base := uintptr(unsafe.Pointer(&b.raw[0]))
	rem := int(base % uintptr(b.align))
	if rem == 0 {
		return 0
	}
	return b.align - rem
}

// window returns an aligned []byte view of the requested size. The
// caller is responsible for having ensured sufficient capacity; this is
// an unchecked inner primitive, not a validated API.
func (b *Buffer) window(size int) []byte {
	off := b.alignedOffset()
	return b.raw[off : off+size]
}

func elemSize[T hwy.ScoreInt]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// RequiredBytes returns the number of bytes Carve needs: two column
// vectors of length queryLen+1, one profile table of length
// alphabetSize, each of lanes-lane Vec[T] entries, plus an unpacked
// byte copy of the query.
func RequiredBytes[T hwy.ScoreInt](queryLen, alphabetSize, lanes int) int {
	vecElems := 2*(queryLen+1)*lanes + alphabetSize*lanes
	return vecElems*elemSize[T]() + queryLen
}

// Carve partitions an aligned window of b into the scratch regions one
// kernel call needs, returning zero-copy views aliasing b's storage:
// colE and colH (length queryLen+1, lanes-lane vectors each), prof
// (length alphabetSize), and an unpacked byte copy of the query.
//
// The scratch layout is realized via typed sub-slices of one allocation
// rather than raw pointer offsets.
func Carve[T hwy.ScoreInt](b *Buffer, queryLen, alphabetSize, lanes int) (colE, colH, prof []hwy.Vec[T], unpackedQuery []byte) {
	total := RequiredBytes[T](queryLen, alphabetSize, lanes)
	byteWindow := b.window(total)

	vecElems := 2*(queryLen+1)*lanes + alphabetSize*lanes
	var flat []T
	if vecElems > 0 {
		tPtr := (*T)(unsafe.Pointer(&byteWindow[0]))
		flat = unsafe.Slice(tPtr, vecElems)
	}

	eLen := (queryLen + 1) * lanes
	colEFlat := flat[:eLen]
	colHFlat := flat[eLen : 2*eLen]
	profFlat := flat[2*eLen:]

	colE = make([]hwy.Vec[T], queryLen+1)
	colH = make([]hwy.Vec[T], queryLen+1)
	for i := range colE {
		colE[i] = hwy.WrapLanes(colEFlat[i*lanes : (i+1)*lanes])
		colH[i] = hwy.WrapLanes(colHFlat[i*lanes : (i+1)*lanes])
	}

	prof = make([]hwy.Vec[T], alphabetSize)
	for c := range prof {
		prof[c] = hwy.WrapLanes(profFlat[c*lanes : (c+1)*lanes])
	}

	unpackedQuery = byteWindow[vecElems*elemSize[T]():]
	return colE, colH, prof, unpackedQuery
}
