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

// Package engine implements the diff engine.
//
// The engine computes an edit script between two byte sequences with a
// recursive divide-and-conquer strategy: strip the global common prefix and
// suffix, then resolve the middle via a chain of shortcuts (empty text,
// overlap, single element, half-match) before falling back to line-mode
// preprocessing or exact Myers bisection. A cleanup pass canonicalizes the
// result so that no run is empty and no two adjacent edits share an
// operation.
//
// The whole computation is synchronous and total: every input pair produces
// a valid script. A configured timeout makes the engine trade optimality for
// speed, never correctness.
package engine

import (
	"slices"

	"bytediff.dev/internal/config"
	"bytediff.dev/internal/deadline"
	"bytediff.dev/internal/edit"
	"bytediff.dev/internal/match"
	"bytediff.dev/internal/runbuf"
)

// lineModeThreshold is the minimum number of elements both texts must have
// before the coarse line-granularity pass is worth the tokenization overhead.
const lineModeThreshold = 100

// script is the state shared by every recursive call of one computation: the
// immutable limits record and the deadline derived from it at the start.
//
// It is generic so that the identical machinery diffs byte sequences and
// interned line-token sequences. coarse is the line-mode pass; it is set only
// for the byte-level instantiation because tokens have no finer granularity
// to recurse into.
type script[T comparable] struct {
	cfg    config.Config
	dl     deadline.Deadline
	coarse func(s *script[T], x, y []T) []edit.Edit[T]
}

// Script computes the edit script transforming x into y.
//
// The returned runs may borrow from x and y; callers must not modify the
// inputs while the result is in use.
func Script(cfg config.Config, x, y []byte) []edit.Edit[byte] {
	s := &script[byte]{
		cfg:    cfg,
		dl:     deadline.New(cfg.Timeout),
		coarse: lineMode,
	}
	return optimize(s.diff(x, y, cfg.Checklines))
}

// diff handles one (sub)problem: identical texts short-circuit, otherwise the
// global common prefix and suffix are stripped and the remaining middle is
// dispatched to compute. Recursive calls from the shortcuts and from
// bisection re-enter here so that every subproblem gets stripped again.
func (s *script[T]) diff(x, y []T, checklines bool) []edit.Edit[T] {
	if slices.Equal(x, y) {
		if len(x) == 0 {
			return nil
		}
		return []edit.Edit[T]{{Op: edit.Equal, Run: runbuf.Borrow(x)}}
	}

	n := match.Prefix(x, y)
	prefix := x[:n]
	x, y = x[n:], y[n:]
	m := match.Suffix(x, y)
	suffix := x[len(x)-m:]
	x, y = x[:len(x)-m], y[:len(y)-m]

	edits := s.compute(x, y, checklines)
	if n > 0 {
		edits = slices.Insert(edits, 0, edit.Edit[T]{Op: edit.Equal, Run: runbuf.Borrow(prefix)})
	}
	if m > 0 {
		edits = append(edits, edit.Edit[T]{Op: edit.Equal, Run: runbuf.Borrow(suffix)})
	}
	return edits
}

// compute resolves a middle fragment that shares no leading or trailing run.
// The cases are ordered from cheapest to most expensive.
func (s *script[T]) compute(x, y []T, checklines bool) []edit.Edit[T] {
	switch {
	case len(x) == 0:
		return []edit.Edit[T]{{Op: edit.Insert, Run: runbuf.Borrow(y)}}
	case len(y) == 0:
		return []edit.Edit[T]{{Op: edit.Delete, Run: runbuf.Borrow(x)}}
	}

	if ov, ok := match.FindOverlap(x, y); ok {
		edits := make([]edit.Edit[T], 0, 3)
		if len(ov.Prefix) > 0 {
			edits = append(edits, edit.Edit[T]{Op: ov.Op, Run: runbuf.Borrow(ov.Prefix)})
		}
		edits = append(edits, edit.Edit[T]{Op: edit.Equal, Run: runbuf.Borrow(ov.Mid)})
		if len(ov.Suffix) > 0 {
			edits = append(edits, edit.Edit[T]{Op: ov.Op, Run: runbuf.Borrow(ov.Suffix)})
		}
		return edits
	}

	if len(x) == 1 || len(y) == 1 {
		// After prefix and suffix stripping and the failed overlap check
		// the single element cannot be part of any common run.
		return []edit.Edit[T]{
			{Op: edit.Delete, Run: runbuf.Borrow(x)},
			{Op: edit.Insert, Run: runbuf.Borrow(y)},
		}
	}

	// The half-match heuristic may produce a non-minimal script, so it is
	// only used when the computation is time-bounded.
	if s.dl.Set() {
		if edits, ok := s.halfMatch(x, y, checklines); ok {
			return edits
		}
	}

	if checklines && s.coarse != nil && len(x) > lineModeThreshold && len(y) > lineModeThreshold {
		return s.coarse(s, x, y)
	}

	return s.bisect(x, y, checklines)
}

// halfMatch applies the half-match heuristic: when a shared run covering at
// least half of the longer text exists, only the fragments outside of it are
// diffed recursively and the results are spliced around one Equal edit.
func (s *script[T]) halfMatch(x, y []T, checklines bool) ([]edit.Edit[T], bool) {
	long, short := x, y
	if len(y) > len(x) {
		long, short = y, x
	}
	hm, ok := match.FindHalf(long, short)
	if !ok {
		return nil, false
	}

	// Orient the fragments so that the first argument of each recursive
	// call is the x-side fragment.
	xPre, yPre := hm.LongPrefix, hm.ShortPrefix
	xSuf, ySuf := hm.LongSuffix, hm.ShortSuffix
	if len(y) > len(x) {
		xPre, yPre = yPre, xPre
		xSuf, ySuf = ySuf, xSuf
	}

	edits := s.diff(xPre, yPre, checklines)
	edits = append(edits, edit.Edit[T]{Op: edit.Equal, Run: runbuf.Borrow(hm.Common)})
	return append(edits, s.diff(xSuf, ySuf, checklines)...), true
}
