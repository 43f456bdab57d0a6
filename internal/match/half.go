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

// Half describes a run shared by two texts that covers at least half of the
// longer one. The four outer fragments are what remains of each text on
// either side of the shared run.
type Half[T comparable] struct {
	LongPrefix, LongSuffix   []T
	ShortPrefix, ShortSuffix []T
	Common                   []T
}

// FindHalf looks for a shared run covering at least half of long.
//
// The search seeds once with the quarter-length substring starting at long's
// second quarter and once at its third quarter, and keeps whichever valid
// candidate matched more; a tie prefers the second-quarter result. Texts too
// short for a half match to exist are rejected up front.
func FindHalf[T comparable](long, short []T) (Half[T], bool) {
	if len(long) < 4 || len(short)*2 < len(long) {
		return Half[T]{}, false
	}
	q2, ok2 := half(long, short, (len(long)+3)/4)
	q3, ok3 := half(long, short, (len(long)+1)/2)
	switch {
	case ok2 && ok3:
		if len(q3.Common) > len(q2.Common) {
			return q3, true
		}
		return q2, true
	case ok2:
		return q2, true
	case ok3:
		return q3, true
	}
	return Half[T]{}, false
}

// half seeds the search with the quarter-length substring of long starting at
// start and extends every occurrence of the seed in short outward, keeping
// the occurrence with the longest combined prefix and suffix. The candidate
// is valid only if that combined run covers at least half of long.
func half[T comparable](long, short []T, start int) (Half[T], bool) {
	seed := long[start : start+len(long)/4]
	var bestPos, bestPrefix, bestSuffix, best int
	for pos := Index(short, seed, 0); pos >= 0; pos = Index(short, seed, pos+1) {
		prefix := Prefix(long[start:], short[pos:])
		suffix := Suffix(long[:start], short[:pos])
		if prefix+suffix > best {
			best = prefix + suffix
			bestPos, bestPrefix, bestSuffix = pos, prefix, suffix
		}
	}
	if best*2 < len(long) {
		return Half[T]{}, false
	}
	return Half[T]{
		LongPrefix:  long[:start-bestSuffix],
		LongSuffix:  long[start+bestPrefix:],
		ShortPrefix: short[:bestPos-bestSuffix],
		ShortSuffix: short[bestPos+bestPrefix:],
		Common:      short[bestPos-bestSuffix : bestPos+bestPrefix],
	}, true
}
