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
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/seqlane/lanealign/hwy"
)

// Job bundles one kernel invocation's arguments, everything but the
// Buffer, for use with RunBatches.
type Job[T hwy.ScoreInt] struct {
	Submat             SubMatrix[T]
	GapOpen, GapExtend T
	Query              Sequence
	Refs               []Sequence
	Out                []*Result[T]
}

// ScoreFunc is the signature shared by every (W, V) entry point
// (ScoreI8x16, ScoreI16x8, ...).
type ScoreFunc[T hwy.ScoreInt] func(buf *Buffer, submat SubMatrix[T], gapOpen, gapExtend T, query Sequence, refs []Sequence, out []*Result[T]) error

// RunBatches runs a set of independent jobs concurrently, one Buffer
// per in-flight job, using work-stealing so that jobs with uneven
// reference-batch sizes still balance across workers.
//
// A kernel call is single-threaded and synchronous by contract;
// batch-level concurrency is the caller's responsibility, which is
// what this helper provides. Work distribution is adapted from an
// atomic work-stealing loop over a persistent worker pool, sized here
// for one-shot use across a fixed job list rather than a long-lived
// pool reused call after call.
//
// If workers <= 0, runtime.GOMAXPROCS(0) is used. The returned slice has
// one entry per job, nil where that job succeeded.
func RunBatches[T hwy.ScoreInt](jobs []Job[T], score ScoreFunc[T], workers int) []error {
	n := len(jobs)
	errs := make([]error, n)
	if n == 0 {
		return errs
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, n)

	var nextJob atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			buf := NewBuffer()
			for {
				idx := int(nextJob.Add(1)) - 1
				if idx >= n {
					return
				}
				j := jobs[idx]
				errs[idx] = score(buf, j.Submat, j.GapOpen, j.GapExtend, j.Query, j.Refs, j.Out)
			}
		}()
	}

	wg.Wait()
	return errs
}
