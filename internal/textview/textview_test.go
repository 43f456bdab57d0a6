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

package textview

import (
	"slices"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

func TestFromString(t *testing.T) {
	str := "my string"

	got := From(str)
	if unsafe.StringData(got.data) != unsafe.StringData(str) {
		t.Errorf("From(str) points to different memory")
	}
	if got.Len() != len(str) {
		t.Errorf("got.Len() = %v, want %v", got.Len(), len(str))
	}
	if got.Chars() != len(str) {
		t.Errorf("got.Chars() = %v, want %v", got.Chars(), len(str))
	}

	t.Run("allocs", func(t *testing.T) {
		allocs := testing.AllocsPerRun(10, func() {
			_ = From(str)
		})
		if allocs > 0 {
			t.Errorf("From[string](...) allocated %v times, want 0", allocs)
		}
	})
}

func TestFromBytes(t *testing.T) {
	b := []byte("my byte slice")

	got := From(b)
	if unsafe.StringData(got.data) != unsafe.SliceData(b) {
		t.Errorf("From(b) points to different memory")
	}
	if got.Len() != len(b) {
		t.Errorf("got.Len() = %v, want %v", got.Len(), len(b))
	}
	if unsafe.SliceData(got.Raw()) != unsafe.SliceData(b) {
		t.Errorf("got.Raw() points to different memory")
	}
}

func TestIteration(t *testing.T) {
	v := From("abc")
	if got, want := slices.Collect(v.Bytes()), []byte("abc"); !slices.Equal(got, want) {
		t.Errorf("v.Bytes() = %q, want %q", got, want)
	}
	if got, want := slices.Collect(v.Backward()), []byte("cba"); !slices.Equal(got, want) {
		t.Errorf("v.Backward() = %q, want %q", got, want)
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		name string
		i, j int
		want string
	}{
		{name: "inside", i: 1, j: 4, want: "bcd"},
		{name: "to-end", i: 3, j: 100, want: "def"},
		{name: "past-end", i: 100, j: 200, want: ""},
		{name: "inverted", i: 4, j: 2, want: ""},
		{name: "negative", i: -3, j: 2, want: "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From("abcdef").Slice(tt.i, tt.j)
			if diff := cmp.Diff(tt.want, got.String()); diff != "" {
				t.Errorf("Slice(%d, %d) differs [-want,+got]:\n%s", tt.i, tt.j, diff)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	v := From("hallo daar")
	tests := []struct {
		sub  string
		want int
	}{
		{sub: "hallo", want: 0},
		{sub: "daar", want: 6},
		{sub: "a", want: 1},
		{sub: "hier", want: -1},
		{sub: "", want: 0},
	}
	for _, tt := range tests {
		if got := v.Index(From(tt.sub)); got != tt.want {
			t.Errorf("v.Index(%q) = %v, want %v", tt.sub, got, tt.want)
		}
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  []string{},
		},
		{
			name:  "newline-only",
			input: "\n",
			want:  []string{"\n"},
		},
		{
			name:  "missing-newline",
			input: "foo\nbar",
			want:  []string{"foo\n", "bar"},
		},
		{
			name:  "trailing-newline",
			input: "foo\nbar\n",
			want:  []string{"foo\n", "bar\n"},
		},
		{
			name:  "blank-lines",
			input: "foo\n\n\nbar\n",
			want:  []string{"foo\n", "\n", "\n", "bar\n"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, line := range SplitLines(From(tt.input)) {
				got = append(got, line.String())
			}
			var want []string
			want = append(want, tt.want...)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("SplitLines(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	var b Builder[[]byte]
	b.Grow(16)
	b.Write([]byte("foo"))
	b.WriteString("bar")
	b.WriteView(From("baz"))
	if got, want := string(b.Build()), "foobarbaz"; got != want {
		t.Errorf("b.Build() = %q, want %q", got, want)
	}
	if got := b.Build(); len(got) != 0 {
		t.Errorf("b.Build() after Build = %q, want empty", got)
	}
}
