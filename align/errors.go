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

import "errors"

// Sentinel errors an entry point can return, in place of a bare 0/1
// return code: that convention belongs to a language-binding layer, not
// to this Go API.
var (
	// ErrInvalidArgument reports a negative reference count. The entry
	// points take refs as a slice, whose length is never negative, so
	// none of them currently returns it.
	ErrInvalidArgument = errors.New("align: reference count must not be negative")

	// ErrAllocation is returned when the working buffer cannot grow to
	// satisfy the requested capacity.
	ErrAllocation = errors.New("align: working buffer allocation failed")
)
