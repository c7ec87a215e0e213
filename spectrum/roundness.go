// SPDX-License-Identifier: MIT
// Package: ovaloid/spectrum
//
// roundness.go - roundness <-> lambda mapping and the recovery statistic.
//
// Purpose:
//   - Map an intuitive roundness score in [0, 1] onto the decay rate lambda
//     and back: 1 is a hypersphere, 0 is a line, 0.5 sits midway in log space.
//   - Recover a roundness estimate from observed axis values via normalized
//     trapezoidal integration, the exact mirror of how Generate lays axes
//     on the unit index grid.
//
// Contract:
//   - log(lambda) runs linearly over (-ln 4, +ln 4) as roundness runs over
//     (1, 0); the endpoints map to exactly 0 and +Inf.
//   - LambdaFromRoundness and RoundnessFromLambda are exact inverses on the
//     open interval (up to float rounding).
//   - Roundness(values) is invariant under uniform scaling of values.
//   - O(n log n) time for Roundness (sorting), O(1) for the maps. No panics.
//
// AI-Hints:
//   - Roundness integrates SORTED ascending values; feeding it a covariance
//     diagonal measures squared axes, which biases low. That bias shrinks as
//     dimensionality grows and is part of the published behavior.

package spectrum

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Roundness anchors.
const (
	// RoundnessLine marks full dimensional collapse (a line).
	RoundnessLine = 0.0
	// RoundnessSphere marks the perfect hypersphere.
	RoundnessSphere = 1.0
)

// logLambdaBound is ln 4, the half-width of the log-lambda band: roundness
// values inside (0, 1) land in lambda = exp((-ln 4, +ln 4)) = (1/4, 4).
const logLambdaBound = 2.0 * math.Ln2

// LambdaFromRoundness converts a roundness score into a decay rate:
//
//	lambda = exp(ln 4 * (1 - 2r)) = 4^(1-2r)
//
// so r = 1 gives 0 (sphere), r = 0 gives +Inf (line) and r = 0.5 gives
// exactly 1. With WithExtrapolation the same closed form extends to any
// finite r; the endpoint special cases still apply.
//
// Errors:
//   - ErrBadRoundness if r is non-finite, or outside [0, 1] without
//     WithExtrapolation.
//
// Complexity: O(1) time, O(1) space.
func LambdaFromRoundness(r float64, opts ...Option) (float64, error) {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, spectrumErrorf(opLambda, fmt.Errorf("roundness %v: %w", r, ErrBadRoundness))
	}
	cfg := gatherOptions(opts...)
	if !cfg.extrapolate && (r < RoundnessLine || r > RoundnessSphere) {
		return 0, spectrumErrorf(opLambda, fmt.Errorf("roundness %v: %w", r, ErrBadRoundness))
	}
	switch r {
	case RoundnessSphere:
		return 0, nil
	case RoundnessLine:
		return math.Inf(1), nil
	}
	return math.Exp(logLambdaBound * (1 - 2*r)), nil
}

// RoundnessFromLambda inverts LambdaFromRoundness:
//
//	r = 1/2 - ln(lambda) / (2 * ln 4)
//
// Decay rates outside (1/4, 4) simply land outside [0, 1]; no option is
// needed to read them back.
//
// Errors:
//   - ErrBadLambda if l is NaN or negative.
//
// Complexity: O(1) time, O(1) space.
func RoundnessFromLambda(l float64) (float64, error) {
	if math.IsNaN(l) || l < 0 {
		return 0, spectrumErrorf(opInverseLambda, fmt.Errorf("lambda %v: %w", l, ErrBadLambda))
	}
	if l == 0 {
		return RoundnessSphere, nil
	}
	if math.IsInf(l, 1) {
		return RoundnessLine, nil
	}
	return 0.5 - math.Log(l)/(2*logLambdaBound), nil
}

// FromRoundness composes LambdaFromRoundness and Generate: the spectrum of a
// dims-dimensional ellipsoid with the requested roundness.
//
// Errors: any error of the two composed calls, wrapped with this operation.
//
// Complexity: O(dims) time, O(dims) space.
func FromRoundness(dims int, r float64, opts ...Option) ([]float64, error) {
	lambda, err := LambdaFromRoundness(r, opts...)
	if err != nil {
		return nil, spectrumErrorf(opFromRoundness, err)
	}
	out, err := Generate(dims, lambda, opts...)
	if err != nil {
		return nil, spectrumErrorf(opFromRoundness, err)
	}
	return out, nil
}

// Roundness estimates the roundness of an observed value spectrum: sort the
// values ascending, normalize by the peak, spread them over the unit index
// grid and integrate with the trapezoid rule. A flat spectrum integrates to
// exactly 1, a single spike to 1/(2*(n-1)), and a single value to 1.
//
// The statistic only sees ratios, so it is invariant under uniform scaling;
// callers may pass raw axes, variances or any positive rescaling thereof.
//
// Errors:
//   - ErrEmptySpectrum if values is empty.
//   - ErrBadSpectrum on NaN, infinite or negative entries, or when every
//     entry is zero (no peak to normalize by).
//
// Complexity: O(n log n) time, O(n) space.
func Roundness(values []float64) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, spectrumErrorf(opRoundness, ErrEmptySpectrum)
	}
	var (
		i int
		v float64
	)
	for i, v = range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return 0, spectrumErrorf(opRoundness, fmt.Errorf("value %v at index %d: %w", v, i, ErrBadSpectrum))
		}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	peak := floats.Max(sorted)
	if peak <= 0 {
		return 0, spectrumErrorf(opRoundness, fmt.Errorf("no positive peak: %w", ErrBadSpectrum))
	}
	if n == 1 {
		return RoundnessSphere, nil
	}
	floats.Scale(1/peak, sorted)

	// Trapezoid rule over n-1 panels of width 1/(n-1) each.
	var (
		area float64
		prev = sorted[0]
		cur  float64
	)
	for i = 1; i < n; i++ {
		cur = sorted[i]
		area += (prev + cur) / 2
		prev = cur
	}
	return area / float64(n-1), nil
}
