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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLinesToTokens(t *testing.T) {
	x := []byte("alpha\nbeta\nalpha\n")
	y := []byte("beta\nalpha\ngamma")

	tx, ty, lines := linesToTokens(x, y)
	if want := []int{0, 1, 0}; !cmp.Equal(want, tx) {
		t.Errorf("tx = %v, want %v", tx, want)
	}
	if want := []int{1, 0, 2}; !cmp.Equal(want, ty) {
		t.Errorf("ty = %v, want %v", ty, want)
	}
	var got []string
	for _, ln := range lines {
		got = append(got, ln.String())
	}
	if want := []string{"alpha\n", "beta\n", "gamma"}; !cmp.Equal(want, got) {
		t.Errorf("lines = %q, want %q", got, want)
	}

	if got := string(tokensToBytes(tx, lines)); got != string(x) {
		t.Errorf("tokensToBytes(tx) = %q, want %q", got, x)
	}
	if got := string(tokensToBytes(ty, lines)); got != string(y) {
		t.Errorf("tokensToBytes(ty) = %q, want %q", got, y)
	}
}

func TestScriptLineMode(t *testing.T) {
	common := strings.Repeat("The quick brown fox.\n", 10)
	x := "first x\n" + common + "last x"
	y := "first y\n" + common + "last y"

	want := []string{"=first ", "-x", "+y", "=\n" + common + "last ", "-x", "+y"}

	cfg := exact()
	got := Script(cfg, []byte(x), []byte(y))
	if diff := cmp.Diff(want, render(got)); diff != "" {
		t.Errorf("Script with line-mode differs (-want, +got):\n%s", diff)
	}

	// The coarse pass changes how the work is divided up, not the result:
	// computing the same diff without it must produce the same script.
	cfg.Checklines = false
	fine := Script(cfg, []byte(x), []byte(y))
	if diff := cmp.Diff(render(got), render(fine)); diff != "" {
		t.Errorf("line-mode and byte-mode scripts differ (-lines, +bytes):\n%s", diff)
	}
}

func TestScriptLineModeDisjoint(t *testing.T) {
	x := strings.Repeat("1234567890\n", 13)
	y := strings.Repeat("abcdefghij\n", 13)

	// Every line differs but every newline is shared, so the minimal script
	// replaces each line body and keeps each newline. Line-disjoint inputs
	// must produce the same script at both granularities.
	var want []string
	for range 13 {
		want = append(want, "-1234567890", "+abcdefghij", "=\n")
	}

	for _, checklines := range []bool{true, false} {
		cfg := exact()
		cfg.Checklines = checklines
		got := Script(cfg, []byte(x), []byte(y))
		if diff := cmp.Diff(want, render(got)); diff != "" {
			t.Errorf("Script(checklines=%v) differs (-want, +got):\n%s", checklines, diff)
		}
	}
}
