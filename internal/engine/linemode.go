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
	"bytediff.dev/internal/textview"
)

// lineMode computes a coarse diff at line granularity and then refines every
// replaced block back at byte granularity.
//
// Both texts are split into lines, identical lines are interned to one
// integer token per distinct line, and the token sequences are diffed with
// the same machinery that diffs bytes, treating one token as one element.
// Runs of equal tokens translate directly back to bytes. Every maximal
// replaced block, a run of deleted lines next to a run of inserted lines, is
// diffed again on its raw bytes and the finer script is spliced in.
func lineMode(s *script[byte], x, y []byte) []edit.Edit[byte] {
	tx, ty, lines := linesToTokens(x, y)

	ls := &script[int]{cfg: s.cfg, dl: s.dl}
	coarse := ls.diff(tx, ty, false)

	var out []edit.Edit[byte]
	var del, ins []byte
	flush := func() {
		switch {
		case len(del) > 0 && len(ins) > 0:
			out = append(out, s.diff(del, ins, false)...)
		case len(del) > 0:
			out = append(out, edit.Edit[byte]{Op: edit.Delete, Run: runbuf.Take(del)})
		case len(ins) > 0:
			out = append(out, edit.Edit[byte]{Op: edit.Insert, Run: runbuf.Take(ins)})
		}
		del, ins = nil, nil
	}
	for _, e := range coarse {
		switch e.Op {
		case edit.Delete:
			del = append(del, tokensToBytes(e.Run.Data(), lines)...)
		case edit.Insert:
			ins = append(ins, tokensToBytes(e.Run.Data(), lines)...)
		case edit.Equal:
			flush()
			out = append(out, edit.Edit[byte]{
				Op:  edit.Equal,
				Run: runbuf.Take(tokensToBytes(e.Run.Data(), lines)),
			})
		default:
			panic("never reached")
		}
	}
	flush()
	return out
}

// linesToTokens splits x and y into lines and interns every distinct line to
// an integer token, stable for the duration of one computation. lines maps a
// token back to its line.
func linesToTokens(x, y []byte) (tx, ty []int, lines []textview.View) {
	seen := make(map[string]int)
	intern := func(in []byte) []int {
		split := textview.SplitLines(textview.From(in))
		toks := make([]int, len(split))
		for i, ln := range split {
			tok, ok := seen[ln.String()]
			if !ok {
				tok = len(lines)
				lines = append(lines, ln)
				seen[ln.String()] = tok
			}
			toks[i] = tok
		}
		return toks
	}
	tx = intern(x)
	ty = intern(y)
	return tx, ty, lines
}

// tokensToBytes concatenates the lines behind a token run back into bytes.
func tokensToBytes(toks []int, lines []textview.View) []byte {
	var b textview.Builder[[]byte]
	n := 0
	for _, tok := range toks {
		n += lines[tok].Len()
	}
	b.Grow(n)
	for _, tok := range toks {
		b.WriteView(lines[tok])
	}
	return b.Build()
}
