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

// Package edit defines the edit-script element shared by the diff engine and
// the public API.
package edit

import "bytediff.dev/internal/runbuf"

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int8

const (
	Equal  Op = iota // a run common to both texts at this position
	Delete           // a run present only in the first text
	Insert           // a run present only in the second text
)

// Edit is a single element of an edit script: an operation and the run it
// applies to.
//
// The element type is generic so that the engine can run the same machinery
// on byte runs and on interned line tokens.
type Edit[T comparable] struct {
	Op  Op
	Run runbuf.Buf[T]
}
