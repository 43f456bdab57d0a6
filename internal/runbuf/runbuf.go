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

// Package runbuf provides the contiguous run of elements that backs every
// element of an edit script.
//
// A Buf either borrows a window of a caller-owned sequence or owns its
// backing storage. Mutating operations promote a borrowed window to owned
// storage first, so a Buf never writes into memory it does not own. Windowing
// operations clamp out-of-range requests to an empty result instead of
// failing.
package runbuf

import "slices"

// Buf is a contiguous run of elements.
//
// The zero value is an empty, unowned run ready for use.
type Buf[T comparable] struct {
	data  []T
	owned bool
}

// Borrow wraps data without copying. The Buf must not outlive the sequence
// the window was taken from.
func Borrow[T comparable](data []T) Buf[T] {
	return Buf[T]{data: data}
}

// Own copies data into storage owned by the returned Buf.
func Own[T comparable](data []T) Buf[T] {
	return Buf[T]{data: slices.Clone(data), owned: true}
}

// Take wraps data that the caller hands over. The Buf assumes ownership
// without copying; the caller must not use data afterwards.
func Take[T comparable](data []T) Buf[T] {
	return Buf[T]{data: data, owned: true}
}

// Len returns the number of elements in the run.
func (b Buf[T]) Len() int { return len(b.data) }

// Data exposes the run. The result is read-only unless the Buf owns its
// storage.
func (b Buf[T]) Data() []T { return b.data }

// Owned reports whether the Buf owns its backing storage.
func (b Buf[T]) Owned() bool { return b.owned }

// promote copies a borrowed window into owned storage with room for extra
// additional elements.
func (b *Buf[T]) promote(extra int) {
	if b.owned {
		return
	}
	data := make([]T, len(b.data), len(b.data)+extra)
	copy(data, b.data)
	b.data = data
	b.owned = true
}

// Append adds v to the end of the run.
func (b *Buf[T]) Append(v []T) {
	if len(v) == 0 {
		return
	}
	b.promote(len(v))
	b.data = append(b.data, v...)
}

// Prepend adds v to the front of the run.
func (b *Buf[T]) Prepend(v []T) {
	if len(v) == 0 {
		return
	}
	data := make([]T, 0, len(v)+len(b.data))
	data = append(data, v...)
	data = append(data, b.data...)
	b.data = data
	b.owned = true
}

// Skip drops n elements from the front of the run, clamped to the run's
// bounds.
func (b *Buf[T]) Skip(n int) {
	n = min(max(n, 0), len(b.data))
	b.data = b.data[n:]
}

// Shrink drops n elements from the back of the run, clamped to the run's
// bounds.
func (b *Buf[T]) Shrink(n int) {
	n = min(max(n, 0), len(b.data))
	b.data = b.data[:len(b.data)-n]
}

// Slice returns the borrowed window of n elements starting at i, clamped to
// the run's bounds.
func (b Buf[T]) Slice(i, n int) Buf[T] {
	i = min(max(i, 0), len(b.data))
	n = min(max(n, 0), len(b.data)-i)
	return Buf[T]{data: b.data[i : i+n]}
}

// EqualAt reports whether the window of len(v) elements starting at off
// matches v. Windows outside the run never match.
func (b Buf[T]) EqualAt(off int, v []T) bool {
	if off < 0 || off+len(v) > len(b.data) {
		return false
	}
	return slices.Equal(b.data[off:off+len(v)], v)
}
