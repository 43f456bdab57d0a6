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

// Package deadline tracks the time budget of a single diff computation.
//
// A Deadline is derived once from the configured timeout when a computation
// starts and is shared read-only by every recursive sub-call of that
// computation.
package deadline

import "time"

// Deadline is an absolute expiry instant. The zero value never expires.
type Deadline struct {
	at time.Time
}

// New derives the expiry instant from timeout. A zero or negative timeout
// returns a Deadline that never expires.
func New(timeout time.Duration) Deadline {
	if timeout <= 0 {
		return Deadline{}
	}
	return Deadline{at: time.Now().Add(timeout)}
}

// Set reports whether the deadline has a finite bound.
func (d Deadline) Set() bool { return !d.at.IsZero() }

// Reached reports whether the expiry instant has passed. An unset deadline is
// never reached.
func (d Deadline) Reached() bool {
	return d.Set() && !time.Now().Before(d.at)
}

// Expiry returns the expiry instant, or the zero time if the deadline is
// unset.
func (d Deadline) Expiry() time.Time { return d.at }
