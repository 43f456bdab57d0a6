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
	"slices"

	"bytediff.dev/internal/edit"
	"bytediff.dev/internal/match"
	"bytediff.dev/internal/runbuf"
)

// optimize canonicalizes an edit script: afterwards no run is empty and no
// two adjacent edits share an operation. Shifting an edit can expose new
// merge opportunities, so the passes repeat until shift reports a fixed
// point.
func optimize[T comparable](edits []edit.Edit[T]) []edit.Edit[T] {
	for {
		edits = mergeUpdates(edits)
		edits = mergeEquals(edits)
		var changed bool
		edits, changed = shift(edits)
		if !changed {
			return edits
		}
	}
}

// mergeUpdates coalesces every maximal run of Insert and Delete edits
// between two Equal edits (or the list ends) into at most one Delete and one
// Insert, factoring a common prefix and suffix of the two coalesced runs
// back out as Equal edits. Empty runs are dropped along the way.
func mergeUpdates[T comparable](edits []edit.Edit[T]) []edit.Edit[T] {
	var out []edit.Edit[T]
	var del, ins runbuf.Buf[T]
	flush := func() {
		if del.Len() > 0 && ins.Len() > 0 {
			if n := match.Prefix(del.Data(), ins.Data()); n > 0 {
				out = append(out, edit.Edit[T]{Op: edit.Equal, Run: runbuf.Own(del.Data()[:n])})
				del.Skip(n)
				ins.Skip(n)
			}
		}
		var suffix runbuf.Buf[T]
		if del.Len() > 0 && ins.Len() > 0 {
			if n := match.Suffix(del.Data(), ins.Data()); n > 0 {
				suffix = runbuf.Own(del.Data()[del.Len()-n:])
				del.Shrink(n)
				ins.Shrink(n)
			}
		}
		if del.Len() > 0 {
			out = append(out, edit.Edit[T]{Op: edit.Delete, Run: del})
		}
		if ins.Len() > 0 {
			out = append(out, edit.Edit[T]{Op: edit.Insert, Run: ins})
		}
		if suffix.Len() > 0 {
			out = append(out, edit.Edit[T]{Op: edit.Equal, Run: suffix})
		}
		del, ins = runbuf.Buf[T]{}, runbuf.Buf[T]{}
	}
	for _, e := range edits {
		switch e.Op {
		case edit.Delete:
			del.Append(e.Run.Data())
		case edit.Insert:
			ins.Append(e.Run.Data())
		case edit.Equal:
			// An empty Equal is dropped without flushing so that the
			// update runs on either side of it coalesce.
			if e.Run.Len() == 0 {
				continue
			}
			flush()
			out = append(out, e)
		default:
			panic("never reached")
		}
	}
	flush()
	return out
}

// mergeEquals collapses every run of consecutive Equal edits into one.
func mergeEquals[T comparable](edits []edit.Edit[T]) []edit.Edit[T] {
	var out []edit.Edit[T]
	for _, e := range edits {
		if e.Op == edit.Equal && len(out) > 0 && out[len(out)-1].Op == edit.Equal {
			out[len(out)-1].Run.Append(e.Run.Data())
			continue
		}
		out = append(out, e)
	}
	return out
}

// shift slides single edits framed by two Equal edits sideways when one of
// the frames is absorbed entirely: an edit ending with the previous Equal's
// run moves left over it, an edit starting with the next Equal's run moves
// right over it. Each slide eliminates one Equal and is counted as a change;
// the scan then advances past the modified window.
func shift[T comparable](edits []edit.Edit[T]) ([]edit.Edit[T], bool) {
	changed := false
	for i := 1; i+1 < len(edits); i++ {
		prev, cur, next := &edits[i-1], &edits[i], &edits[i+1]
		if prev.Op != edit.Equal || next.Op != edit.Equal || cur.Op == edit.Equal {
			continue
		}
		if cur.Run.EqualAt(cur.Run.Len()-prev.Run.Len(), prev.Run.Data()) {
			cur.Run.Shrink(prev.Run.Len())
			cur.Run.Prepend(prev.Run.Data())
			next.Run.Prepend(prev.Run.Data())
			edits = slices.Delete(edits, i-1, i)
			changed = true
			continue
		}
		if cur.Run.EqualAt(0, next.Run.Data()) {
			prev.Run.Append(next.Run.Data())
			cur.Run.Skip(next.Run.Len())
			cur.Run.Append(next.Run.Data())
			edits = slices.Delete(edits, i+1, i+2)
			changed = true
		}
	}
	return edits, changed
}
