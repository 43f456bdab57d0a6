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

// Package textview provides a character-addressable, immutable view over a
// byte sequence.
//
// How byte offsets map to character boundaries is decided by an Encoding.
// SingleByte, where every byte is one character, is the only encoding
// implemented; the diff engine needs nothing else.
package textview

import (
	"iter"
	"strings"
	"unsafe"
)

// Encoding maps byte offsets to character boundaries.
type Encoding interface {
	// Chars returns the number of characters in data.
	Chars(data string) int
	// Width returns the width in bytes of the character starting at byte
	// offset i of data.
	Width(data string, i int) int
}

// SingleByte is the encoding where every byte is exactly one character.
type SingleByte struct{}

func (SingleByte) Chars(data string) int { return len(data) }
func (SingleByte) Width(string, int) int { return 1 }

// View is a read-only window over a byte sequence.
type View struct {
	data string
	enc  Encoding
}

// From wraps a string or byte slice without copying. The input must not be
// modified during the lifetime of the view.
func From[T string | []byte](in T) View {
	return WithEncoding(SingleByte{}, in)
}

// WithEncoding is like From with an explicit character encoding.
func WithEncoding[T string | []byte](enc Encoding, in T) View {
	switch in := any(in).(type) {
	case string:
		return View{in, enc}
	case []byte:
		return View{unsafe.String(unsafe.SliceData(in), len(in)), enc}
	}
	panic("never reached")
}

// Len returns the view's length in bytes.
func (v View) Len() int { return len(v.data) }

// Chars returns the view's length in characters.
func (v View) Chars() int { return v.enc.Chars(v.data) }

// String returns the viewed bytes as a string without copying.
func (v View) String() string { return v.data }

// Raw returns the viewed bytes without copying. The result must not be
// modified.
func (v View) Raw() []byte {
	return unsafe.Slice(unsafe.StringData(v.data), len(v.data))
}

// Slice returns the window [i, j) in bytes, clamped to the view's bounds.
func (v View) Slice(i, j int) View {
	i = min(max(i, 0), len(v.data))
	j = min(max(j, i), len(v.data))
	return View{v.data[i:j], v.enc}
}

// Index returns the byte offset of the first occurrence of sub in v, or -1 if
// sub is not present.
func (v View) Index(sub View) int {
	return strings.Index(v.data, sub.data)
}

// Bytes iterates over the view's bytes front to back.
func (v View) Bytes() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := range len(v.data) {
			if !yield(v.data[i]) {
				break
			}
		}
	}
}

// Backward iterates over the view's bytes back to front.
func (v View) Backward() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := len(v.data) - 1; i >= 0; i-- {
			if !yield(v.data[i]) {
				break
			}
		}
	}
}

// SplitLines splits the view on '\n' and returns the lines including their
// newline character, so that concatenating the lines reproduces the input. A
// final line without a newline is returned as-is.
func SplitLines(v View) []View {
	s := v.data
	n := strings.Count(s, "\n")
	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
	}
	a := make([]View, n)
	for i := range n {
		m := strings.Index(s, "\n")
		if m < 0 {
			break
		}
		a[i] = View{s[:m+1], v.enc}
		s = s[m+1:]
	}
	if len(s) > 0 {
		a[n-1] = View{s, v.enc}
	}
	return a
}
