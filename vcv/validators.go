// SPDX-License-Identifier: MIT
// Package: ovaloid/vcv
//
// validators.go - centralized parameter validation.
//
// Contract:
//   - Each validator checks exactly one parameter class and returns a
//     wrapped sentinel from errors.go, or nil.
//   - Validators attach the offending value via %w-preserving fmt.Errorf;
//     the public entry point adds the operation prefix on top.
//   - NaN never passes: every numeric comparison here is paired with an
//     explicit IsNaN check, since NaN fails plain range comparisons
//     silently.
//
// Complexity: O(1) per scalar validator, O(dims) per vector validator.

package vcv

import (
	"fmt"
	"math"
)

// validateDimensions guards the dimensionality parameter.
func validateDimensions(dims int) error {
	if dims < 1 {
		return fmt.Errorf("dims %d: %w", dims, ErrInvalidDimension)
	}
	return nil
}

// validateShape guards the roundness parameter; extrapolation lifts only the
// [0, 1] band, never the finiteness requirement.
func validateShape(shape float64, extrapolate bool) error {
	if math.IsNaN(shape) || math.IsInf(shape, 0) {
		return fmt.Errorf("shape %v: %w", shape, ErrInvalidShape)
	}
	if !extrapolate && (shape < 0 || shape > 1) {
		return fmt.Errorf("shape %v: %w", shape, ErrInvalidShape)
	}
	return nil
}

// validateCovariance guards the shared covariance coefficient. For a single
// dimension there are no pairs, so any finite value passes (and is ignored).
func validateCovariance(c float64, dims int) error {
	if math.IsNaN(c) {
		return fmt.Errorf("covariance %v: %w", c, ErrInvalidCovariance)
	}
	if dims > 1 && (c <= -1 || c >= 1) {
		return fmt.Errorf("covariance %v: %w", c, ErrInvalidCovariance)
	}
	return nil
}

// validateThickness guards the axis floor. A floor of 1 would erase the
// decay entirely, so the range is half-open.
func validateThickness(m float64) error {
	if math.IsNaN(m) || m < 0 || m >= 1 {
		return fmt.Errorf("min thickness %v: %w", m, ErrInvalidMinThickness)
	}
	return nil
}

// validateSize guards a single scale factor.
func validateSize(z float64) error {
	if math.IsNaN(z) || math.IsInf(z, 0) || z <= 0 {
		return fmt.Errorf("size %v: %w", z, ErrInvalidSize)
	}
	return nil
}

// validateSizeVector guards a per-dimension scale vector.
func validateSizeVector(z []float64, dims int) error {
	if len(z) != dims {
		return fmt.Errorf("sizes length %d, dims %d: %w", len(z), dims, ErrDimensionMismatch)
	}
	var (
		i int
		v float64
	)
	for i, v = range z {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("size %v at index %d: %w", v, i, ErrInvalidSize)
		}
	}
	return nil
}

// validatePosition guards a single location coordinate.
func validatePosition(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return fmt.Errorf("position %v: %w", p, ErrInvalidPosition)
	}
	return nil
}

// validatePositionVector guards a per-dimension location vector.
func validatePositionVector(p []float64, dims int) error {
	if len(p) != dims {
		return fmt.Errorf("positions length %d, dims %d: %w", len(p), dims, ErrDimensionMismatch)
	}
	var (
		i int
		v float64
	)
	for i, v = range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("position %v at index %d: %w", v, i, ErrInvalidPosition)
		}
	}
	return nil
}

// validateSpectrum guards an axis spectrum handed to Assemble: non-empty,
// finite, non-negative. Values above 1 are legal; callers may pre-scale.
func validateSpectrum(spec []float64) error {
	if len(spec) == 0 {
		return ErrEmptySpectrum
	}
	var (
		i int
		v float64
	)
	for i, v = range spec {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("value %v at index %d: %w", v, i, ErrBadSpectrum)
		}
	}
	return nil
}

// validateBuildConfig runs the full validation pipeline in documented
// priority order and returns the first violation.
func validateBuildConfig(cfg buildConfig) error {
	if err := validateDimensions(cfg.dims); err != nil {
		return err
	}
	if err := validateShape(cfg.shape, cfg.extrapolate); err != nil {
		return err
	}
	if err := validateCovariance(cfg.covariance, cfg.dims); err != nil {
		return err
	}
	if err := validateThickness(cfg.minThickness); err != nil {
		return err
	}
	if cfg.sizes != nil {
		if err := validateSizeVector(cfg.sizes, cfg.dims); err != nil {
			return err
		}
	} else if err := validateSize(cfg.size); err != nil {
		return err
	}
	if cfg.positions != nil {
		if err := validatePositionVector(cfg.positions, cfg.dims); err != nil {
			return err
		}
	} else if err := validatePosition(cfg.position); err != nil {
		return err
	}
	return nil
}
