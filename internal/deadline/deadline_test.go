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

package deadline

import (
	"testing"
	"time"
)

func TestUnsetNeverExpires(t *testing.T) {
	for _, timeout := range []time.Duration{0, -time.Second} {
		d := New(timeout)
		if d.Set() {
			t.Errorf("New(%v).Set() = true, want false", timeout)
		}
		if d.Reached() {
			t.Errorf("New(%v).Reached() = true, want false", timeout)
		}
		if !d.Expiry().IsZero() {
			t.Errorf("New(%v).Expiry() = %v, want zero", timeout, d.Expiry())
		}
	}
}

func TestSet(t *testing.T) {
	d := New(time.Hour)
	if !d.Set() {
		t.Errorf("d.Set() = false, want true")
	}
	if d.Reached() {
		t.Errorf("d.Reached() = true right after New, want false")
	}
}

func TestReached(t *testing.T) {
	d := New(time.Nanosecond)
	deadline := time.Now().Add(time.Second)
	for !d.Reached() {
		if time.Now().After(deadline) {
			t.Fatalf("d.Reached() still false long after the timeout elapsed")
		}
	}
}
