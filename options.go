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
	"time"

	"bytediff.dev/internal/config"
)

// Option configures the behavior of [Diff].
type Option = config.Option

// Timeout bounds the total time spent computing a diff. When the bound is
// exceeded, the computation finishes with a valid but possibly non-minimal
// script instead of failing. Zero or a negative duration removes the bound.
// The default is one second.
func Timeout(d time.Duration) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Timeout = d
		return config.Timeout
	}
}

// Checklines controls the coarse line-granularity pass applied to large
// inputs before diffing at byte granularity. The pass is a speedup that can
// marginally coarsen the result. Enabled by default.
func Checklines(enabled bool) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Checklines = enabled
		return config.Checklines
	}
}

// EditCost sets the cost of an empty edit operation in terms of characters
// for a patch cost model. The diff computation itself does not consume it.
// The default is 4.
func EditCost(cost int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.EditCost = cost
		return config.EditCost
	}
}

// MatchThreshold sets the tolerance of approximate patch application, from 0
// (exact match only) to 1 (anything matches). Reserved for patch
// application; diffing does not consume it. The default is 0.5.
func MatchThreshold(t float64) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MatchThreshold = t
		return config.MatchThreshold
	}
}

// MatchDistance sets how far from its expected location an approximate patch
// match may be found, in characters. Reserved for patch application; diffing
// does not consume it. The default is 1000.
func MatchDistance(d int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MatchDistance = d
		return config.MatchDistance
	}
}

// DeleteThreshold sets how closely the content of a deletion needs to match
// before an approximate patch deletes it. Reserved for patch application;
// diffing does not consume it. The default is 0.5.
func DeleteThreshold(t float64) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.DeleteThreshold = t
		return config.DeleteThreshold
	}
}

// PatchMargin sets the amount of context included around a patch hunk, in
// characters. Reserved for patch application; diffing does not consume it.
// The default is 4.
func PatchMargin(m int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.PatchMargin = m
		return config.PatchMargin
	}
}

// MaxBits sets the word size for the approximate match bit arithmetic.
// Reserved for patch application; diffing does not consume it. The default
// is 32.
func MaxBits(bits int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxBits = bits
		return config.MaxBits
	}
}
