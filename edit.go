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

package bytediff

import (
	"bytediff.dev/internal/edit"
	"bytediff.dev/internal/textview"
)

// Op identifies the kind of an edit.
type Op = edit.Op

const (
	// Equal marks a run common to both texts at this position.
	Equal = edit.Equal
	// Delete marks a run present only in the first text.
	Delete = edit.Delete
	// Insert marks a run present only in the second text.
	Insert = edit.Insert
)

// Edit is one element of an edit script: an operation and the byte run it
// applies to. Data may share storage with the diffed inputs and must be
// treated as read-only.
type Edit struct {
	Op   Op
	Data []byte
}

// Text1 reconstructs the first diffed text from an edit script by
// concatenating the Equal and Delete runs in order.
func Text1(edits []Edit) []byte {
	return reconstruct(edits, Insert)
}

// Text2 reconstructs the second diffed text from an edit script by
// concatenating the Equal and Insert runs in order.
func Text2(edits []Edit) []byte {
	return reconstruct(edits, Delete)
}

func reconstruct(edits []Edit, skip Op) []byte {
	var b textview.Builder[[]byte]
	n := 0
	for _, e := range edits {
		if e.Op != skip {
			n += len(e.Data)
		}
	}
	b.Grow(n)
	for _, e := range edits {
		if e.Op != skip {
			b.Write(e.Data)
		}
	}
	return b.Build()
}
