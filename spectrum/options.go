// SPDX-License-Identifier: MIT
// Package: ovaloid/spectrum
//
// options.go - functional options for spectrum generation.
//
// Contract:
//   - Option constructors record values verbatim and never panic; range
//     checks happen in the consuming entry points so violations surface as
//     sentinel errors callers can branch on with errors.Is.
//   - Default* constants are the single source of truth for defaults.
//
// AI-Hints:
//   - Add new knobs here plus a Default* constant; validate in the entry
//     point that consumes the knob, not in the constructor.

package spectrum

// Default values applied when the corresponding option is absent.
const (
	// DefaultMinThickness keeps collapsed axes at exactly zero.
	DefaultMinThickness = 0.0
)

// MinDimensions is the smallest legal axis count for a spectrum.
const MinDimensions = 1

// Options carries the configuration shared by Generate, FromRoundness and
// LambdaFromRoundness. Zero value == defaults.
type Options struct {
	// minThickness is the floor applied to every decayed axis, in [0, 1).
	minThickness float64

	// extrapolate lifts the [0, 1] roundness bound, allowing any finite
	// roundness to be mapped onto a decay rate.
	extrapolate bool
}

// Option mutates Options in place.
type Option func(*Options)

// WithMinThickness floors every decayed axis at m, preventing dimensional
// collapse for roundness 0 or extreme decay rates. Legal range [0, 1),
// enforced by the consuming entry point (ErrBadThickness).
//
// Complexity: O(1) time, O(1) space.
func WithMinThickness(m float64) Option {
	return func(o *Options) { o.minThickness = m }
}

// WithExtrapolation allows roundness values outside [0, 1]. The log-linear
// lambda mapping is continued with the same closed form, so callers can
// probe shapes beyond the calibrated band. Non-finite roundness is still
// rejected.
//
// Complexity: O(1) time, O(1) space.
func WithExtrapolation() Option {
	return func(o *Options) { o.extrapolate = true }
}

// gatherOptions folds opts over the defaults and returns the result by value.
func gatherOptions(opts ...Option) Options {
	cfg := Options{minThickness: DefaultMinThickness}
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	return cfg
}
