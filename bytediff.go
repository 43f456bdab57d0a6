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
	"bytediff.dev/internal/config"
	"bytediff.dev/internal/engine"
	"bytediff.dev/internal/textview"
)

// Diff computes the edit script transforming x into y.
//
// The result is canonical: no edit carries an empty run, no two adjacent
// edits share an operation, and the runs of the Equal and Delete edits
// concatenate to x while the runs of the Equal and Insert edits concatenate
// to y.
//
// The returned runs may share storage with x and y. Callers passing byte
// slices must not modify them while the result is in use.
func Diff[Text string | []byte](x, y Text, opts ...Option) []Edit {
	cfg := config.FromOptions(opts, allOptions)
	script := engine.Script(cfg, textview.From(x).Raw(), textview.From(y).Raw())
	edits := make([]Edit, len(script))
	for i, e := range script {
		edits[i] = Edit{Op: e.Op, Data: e.Run.Data()}
	}
	return edits
}

const allOptions = config.Timeout | config.Checklines | config.EditCost |
	config.MatchThreshold | config.MatchDistance | config.DeleteThreshold |
	config.PatchMargin | config.MaxBits
