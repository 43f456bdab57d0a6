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

// Package config holds the limits record for a diff computation.
//
// This package is an implementation detail, the configuration surface for
// users is provided via bytediff.Option.
package config

import "time"

// Config collects all limits and tuning knobs for one diff computation. It is
// created before the computation starts and never mutated afterwards.
type Config struct {
	// Timeout bounds the total time spent computing a diff. Zero disables
	// the bound.
	Timeout time.Duration

	// Checklines enables the coarse line-granularity pass for large inputs.
	Checklines bool

	// EditCost is the cost of an empty edit operation in terms of characters.
	// Recorded for a patch cost model; the diff engine itself does not
	// consume it.
	EditCost int

	// The fields below belong to an approximate patch-application feature
	// that is not part of the diff engine. They are accepted so that one
	// limits record can serve both, and are not consumed here.
	MatchThreshold  float64
	MatchDistance   int
	DeleteThreshold float64
	PatchMargin     int
	MaxBits         int
}

// Default is the default configuration.
var Default = Config{
	Timeout:         time.Second,
	Checklines:      true,
	EditCost:        4,
	MatchThreshold:  0.5,
	MatchDistance:   1000,
	DeleteThreshold: 0.5,
	PatchMargin:     4,
	MaxBits:         32,
}

// Flag describes a single config entry. It is used to detect options being
// passed to a function that does not support them.
type Flag int

const (
	Timeout Flag = 1 << iota
	Checklines
	EditCost
	MatchThreshold
	MatchDistance
	DeleteThreshold
	PatchMargin
	MaxBits
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Timeout:
		return "bytediff.Timeout"
	case Checklines:
		return "bytediff.Checklines"
	case EditCost:
		return "bytediff.EditCost"
	case MatchThreshold:
		return "bytediff.MatchThreshold"
	case MatchDistance:
		return "bytediff.MatchDistance"
	case DeleteThreshold:
		return "bytediff.DeleteThreshold"
	case PatchMargin:
		return "bytediff.PatchMargin"
	case MaxBits:
		return "bytediff.MaxBits"
	default:
		panic("never reached")
	}
}
