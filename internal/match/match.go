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

// Package match implements the shared-run searches the diff engine uses to
// avoid full bisection: common prefix and suffix scans, substring overlap,
// and the half-match approximation.
//
// All functions are pure and generic over the element type, so the same
// machinery serves byte runs and interned line tokens.
package match

// Prefix returns the length of the longest shared leading run of x and y.
func Prefix[T comparable](x, y []T) int {
	n := min(len(x), len(y))
	for i := range n {
		if x[i] != y[i] {
			return i
		}
	}
	return n
}

// Suffix returns the length of the longest shared trailing run of x and y.
func Suffix[T comparable](x, y []T) int {
	n := min(len(x), len(y))
	for i := 1; i <= n; i++ {
		if x[len(x)-i] != y[len(y)-i] {
			return i - 1
		}
	}
	return n
}

// Index returns the position of the first occurrence of sub in s at or after
// from, or -1 if there is none. An empty sub matches at from.
func Index[T comparable](s, sub []T, from int) int {
	from = max(from, 0)
	if len(sub) == 0 {
		return min(from, len(s))
	}
	for i := from; i+len(sub) <= len(s); i++ {
		if s[i] != sub[0] {
			continue
		}
		if Prefix(s[i:], sub) == len(sub) {
			return i
		}
	}
	return -1
}
