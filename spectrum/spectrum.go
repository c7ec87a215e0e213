// SPDX-License-Identifier: MIT
// Package: ovaloid/spectrum
//
// spectrum.go - deterministic exponential axis-decay generator.
//
// Purpose:
//   - Produce the ordered axis spectrum of a D-dimensional ellipsoid:
//     axis[i] = exp(-lambda * i/(D-1)), the leading axis pinned at 1.
//   - Optional thickness floor so trailing axes never fully collapse.
//
// Contract:
//   - Generate(dims, lambda, opts...) returns a slice of length dims or an error.
//   - out[0] == 1 for every legal call, including dims == 1 and lambda == +Inf.
//   - Entries are non-increasing and lie in [minThickness, 1].
//   - O(dims) time, O(dims) memory. No panics. No global state.
//
// Determinism policy:
//   - Pure function of its arguments; equal inputs yield equal outputs.
//
// AI-Hints:
//   - Need a different decay law? Swap the exp term, keep the unit head and
//     the floor clamp; downstream assembly only assumes values in [0, 1].

package spectrum

import (
	"fmt"
	"math"
)

// unitAxis is the fixed length of the leading axis.
const unitAxis = 1.0

// Generate returns the axis spectrum for dims dimensions under decay rate
// lambda. Index positions are normalized to [0, 1], so the same lambda
// draws the same silhouette at every dimensionality.
//
// Behavior highlights:
//   - lambda == 0 yields a hypersphere: every axis equals 1.
//   - lambda == +Inf collapses every trailing axis to the thickness floor;
//     the head stays at 1 because it is never multiplied by the decay term.
//   - dims == 1 degenerates to [1] for any legal lambda.
//
// Inputs:
//   - dims: number of axes, >= MinDimensions.
//   - lambda: decay rate, >= 0 (NaN rejected, +Inf legal).
//   - opts: WithMinThickness to floor trailing axes.
//
// Returns:
//   - []float64 of length dims, non-increasing, first entry exactly 1.
//
// Errors:
//   - ErrBadDimension if dims < MinDimensions.
//   - ErrBadLambda if lambda is NaN or negative.
//   - ErrBadThickness if the thickness option is outside [0, 1).
//
// Complexity: O(dims) time, O(dims) space.
func Generate(dims int, lambda float64, opts ...Option) ([]float64, error) {
	if dims < MinDimensions {
		return nil, spectrumErrorf(opGenerate, fmt.Errorf("dims %d: %w", dims, ErrBadDimension))
	}
	if math.IsNaN(lambda) || lambda < 0 {
		return nil, spectrumErrorf(opGenerate, fmt.Errorf("lambda %v: %w", lambda, ErrBadLambda))
	}
	cfg := gatherOptions(opts...)
	if err := validateThickness(cfg.minThickness); err != nil {
		return nil, spectrumErrorf(opGenerate, err)
	}

	out := make([]float64, dims)
	out[0] = unitAxis
	if dims == 1 {
		return out, nil
	}

	// Predeclare loop temporaries once.
	var (
		span = float64(dims - 1)
		t    float64 // normalized index position in [0, 1]
		val  float64 // decayed axis value before flooring
		i    int
	)
	for i = 1; i < dims; i++ {
		t = float64(i) / span
		val = math.Exp(-lambda * t) // Exp(-Inf) == 0, so +Inf never produces NaN here
		if val < cfg.minThickness {
			val = cfg.minThickness
		}
		out[i] = val
	}
	return out, nil
}

// validateThickness guards the WithMinThickness knob. A floor of 1 would
// erase the decay entirely, so the range is half-open.
func validateThickness(m float64) error {
	if math.IsNaN(m) || m < 0 || m >= unitAxis {
		return fmt.Errorf("min thickness %v: %w", m, ErrBadThickness)
	}
	return nil
}
