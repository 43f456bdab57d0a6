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

package engine

import (
	"bytediff.dev/internal/edit"
	"bytediff.dev/internal/runbuf"
)

// bisect finds the midpoint of an optimal edit path with Myers' O(ND)
// divide-and-conquer scheme and recurses into the two halves.
//
// Two v-arrays track the furthest-reached x coordinate per diagonal k = x-y,
// one for a forward search from (0,0) and one for a reverse search from
// (n,m). Each round d extends every reachable diagonal of matching parity by
// one edit and then slides along the diagonal while the texts agree. As soon
// as the two fronts meet on a diagonal, the meeting point splits the problem
// and each half is diffed independently.
//
// If the deadline expires or the fronts never meet within the edit-distance
// bound, the fragment degrades to a full replace. The result is then not
// minimal, but still a valid script.
func (s *script[T]) bisect(x, y []T, checklines bool) []edit.Edit[T] {
	n, m := len(x), len(y)
	maxD := (n + m + 1) / 2
	vOffset := maxD
	vLength := 2*maxD + 2
	v1 := make([]int, vLength)
	v2 := make([]int, vLength)
	for i := range v1 {
		v1[i] = -1
		v2[i] = -1
	}
	v1[vOffset+1] = 0
	v2[vOffset+1] = 0

	delta := n - m
	// With an odd delta the forward front is the one that steps onto the
	// reverse front's territory, with an even delta it is the reverse front.
	front := delta%2 != 0
	// Trim diagonals that walked off the edit grid from the k ranges.
	var k1start, k1end, k2start, k2end int
	for d := 0; d < maxD; d++ {
		if s.dl.Reached() {
			break
		}

		for k1 := -d + k1start; k1 <= d-k1end; k1 += 2 {
			k1Offset := vOffset + k1
			var x1 int
			if k1 == -d || (k1 != d && v1[k1Offset-1] < v1[k1Offset+1]) {
				x1 = v1[k1Offset+1]
			} else {
				x1 = v1[k1Offset-1] + 1
			}
			y1 := x1 - k1
			for x1 < n && y1 < m && x[x1] == y[y1] {
				x1++
				y1++
			}
			v1[k1Offset] = x1
			if x1 > n {
				k1end += 2
			} else if y1 > m {
				k1start += 2
			} else if front {
				k2Offset := vOffset + delta - k1
				if k2Offset >= 0 && k2Offset < vLength && v2[k2Offset] != -1 {
					// Mirror the reverse front's x onto the forward grid.
					x2 := n - v2[k2Offset]
					if x1 >= x2 {
						return s.bisectSplit(x, y, x1, y1, checklines)
					}
				}
			}
		}

		for k2 := -d + k2start; k2 <= d-k2end; k2 += 2 {
			k2Offset := vOffset + k2
			var x2 int
			if k2 == -d || (k2 != d && v2[k2Offset-1] < v2[k2Offset+1]) {
				x2 = v2[k2Offset+1]
			} else {
				x2 = v2[k2Offset-1] + 1
			}
			y2 := x2 - k2
			for x2 < n && y2 < m && x[n-x2-1] == y[m-y2-1] {
				x2++
				y2++
			}
			v2[k2Offset] = x2
			if x2 > n {
				k2end += 2
			} else if y2 > m {
				k2start += 2
			} else if !front {
				k1Offset := vOffset + delta - k2
				if k1Offset >= 0 && k1Offset < vLength && v1[k1Offset] != -1 {
					x1 := v1[k1Offset]
					y1 := vOffset + x1 - k1Offset
					x2 = n - x2
					if x1 >= x2 {
						return s.bisectSplit(x, y, x1, y1, checklines)
					}
				}
			}
		}
	}

	// Ran out of time or diagonals before the fronts met.
	return []edit.Edit[T]{
		{Op: edit.Delete, Run: runbuf.Borrow(x)},
		{Op: edit.Insert, Run: runbuf.Borrow(y)},
	}
}

// bisectSplit cuts both texts at the midpoint (i, j) and concatenates the
// scripts of the two halves.
func (s *script[T]) bisectSplit(x, y []T, i, j int, checklines bool) []edit.Edit[T] {
	edits := s.diff(x[:i], y[:j], checklines)
	return append(edits, s.diff(x[i:], y[j:], checklines)...)
}
