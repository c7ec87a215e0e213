// SPDX-License-Identifier: MIT
// Package: ovaloid/spectrum
//
// errors.go - sentinel errors for the spectrum package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Entry points attach context (operation name, offending value) via `%w`.
//   - No function in this package panics on bad input; everything surfaces
//     as one of the sentinels below.
//
// AI-Hints (practical guidance for implementers and LLMs):
//   - Wrap lower-level errors with operation context: spectrumErrorf(opGenerate, err).
//   - Do NOT stringify parameters into sentinel definitions; use %w wrapping instead.
//   - Check with errors.Is in tests and production code; avoid string comparisons.

package spectrum

import (
	"errors"
	"fmt"
)

// ErrBadDimension indicates that the requested number of dimensions is
// smaller than MinDimensions.
// Classification: Validation error (parameters).
// Typical origins: Generate, FromRoundness.
var ErrBadDimension = errors.New("spectrum: dimensions must be >= 1")

// ErrBadLambda indicates that the decay rate is NaN or negative.
// +Inf is a legal decay rate and collapses every trailing axis to the
// thickness floor.
// Classification: Validation error (parameters).
// Typical origins: Generate, RoundnessFromLambda.
var ErrBadLambda = errors.New("spectrum: lambda must be >= 0")

// ErrBadRoundness indicates a roundness value outside [0, 1] without
// WithExtrapolation, or a non-finite roundness with it.
// Classification: Validation error (parameters).
// Typical origins: LambdaFromRoundness, FromRoundness.
var ErrBadRoundness = errors.New("spectrum: roundness out of range")

// ErrBadThickness indicates a minimum thickness outside [0, 1).
// Classification: Validation error (options).
// Typical origins: Generate, FromRoundness (via WithMinThickness).
var ErrBadThickness = errors.New("spectrum: min thickness out of range")

// ErrEmptySpectrum indicates that a spectrum slice of length zero was
// passed where at least one axis is required.
// Classification: Validation error (inputs).
// Typical origins: Roundness.
var ErrEmptySpectrum = errors.New("spectrum: empty spectrum")

// ErrBadSpectrum indicates spectrum entries outside the legal domain:
// a NaN, an infinity, a negative value, or an all-zero spectrum with no
// positive peak to normalize by.
// Classification: Validation error (inputs).
// Typical origins: Roundness.
var ErrBadSpectrum = errors.New("spectrum: spectrum values out of domain")

// -----------------------------------------------------------------------------
// Operation names used as wrap prefixes. Keeping them in one place guarantees
// the prefix in an error message always matches the exported function name.
// -----------------------------------------------------------------------------

const (
	opGenerate      = "Generate"
	opFromRoundness = "FromRoundness"
	opLambda        = "LambdaFromRoundness"
	opInverseLambda = "RoundnessFromLambda"
	opRoundness     = "Roundness"
)

// spectrumErrorf prefixes err with the public operation name, preserving the
// sentinel chain for errors.Is / errors.As.
func spectrumErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
