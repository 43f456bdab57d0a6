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

// Package bytediff computes edit scripts between two byte sequences.
//
// The main function is [Diff], which returns the ordered list of Insert,
// Delete, and Equal runs that transforms one text into the other. The
// algorithm is Myers' bisection combined with a set of classic shortcuts
// (common prefix and suffix stripping, overlap detection, half-match
// approximation, line-granularity preprocessing) and a cleanup pass that
// canonicalizes the result: no run is empty, and no two adjacent edits share
// an operation.
//
// Diffing is total: every input pair produces a valid script, and
// concatenating the Equal and Delete runs always reproduces the first text
// while the Equal and Insert runs reproduce the second. By default the
// computation is bounded to one second; past that bound the result is still
// valid but may not be minimal. Use [Timeout] to change or remove the bound.
package bytediff
