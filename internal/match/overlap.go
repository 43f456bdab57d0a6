// Copyright 2026 The bytediff Authors
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

package match

import "bytediff.dev/internal/edit"

// Overlap describes the shorter of two texts occurring as one contiguous run
// inside the longer one.
type Overlap[T comparable] struct {
	// The parts of the longer text before and after the shared run.
	Prefix, Suffix []T

	// The shared run, i.e. the shorter text in full.
	Mid []T

	// Op is the operation that Prefix and Suffix must undergo to transform
	// the first text into the second: Delete when the first text was the
	// longer one, Insert otherwise.
	Op edit.Op
}

// FindOverlap searches for the shorter of x and y as a contiguous run inside
// the longer one. When the texts have equal length the overlap can only be
// the identity, which callers rule out beforehand, so ok is false then.
func FindOverlap[T comparable](x, y []T) (Overlap[T], bool) {
	short, long := x, y
	op := edit.Insert
	if len(x) > len(y) {
		short, long = y, x
		op = edit.Delete
	}
	if len(short) == 0 {
		return Overlap[T]{}, false
	}
	skip := Index(long, short, 0)
	if skip < 0 {
		return Overlap[T]{}, false
	}
	return Overlap[T]{
		Prefix: long[:skip],
		Mid:    short,
		Suffix: long[skip+len(short):],
		Op:     op,
	}, true
}
