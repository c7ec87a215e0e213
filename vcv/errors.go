// SPDX-License-Identifier: MIT
// Package vcv: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the vcv
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package vcv

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vcv: ..." for consistency and to allow easy
// grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary; callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// dimensions -> shape -> covariance -> min thickness -> size -> position ->
// vector length mismatch -> spectrum domain -> positive semidefiniteness.

var (
	// ErrInvalidDimension is returned when the requested dimensionality is
	// smaller than 1. Builders must validate before any allocation.
	ErrInvalidDimension = errors.New("vcv: dimensions must be >= 1")

	// ErrInvalidShape indicates a shape (roundness) outside [0, 1] without
	// extrapolation enabled, or a non-finite shape with it.
	ErrInvalidShape = errors.New("vcv: shape out of range")

	// ErrInvalidCovariance indicates a pairwise covariance with |C| >= 1 for
	// multi-dimensional objects, or a NaN anywhere.
	ErrInvalidCovariance = errors.New("vcv: covariance out of range")

	// ErrInvalidMinThickness indicates a thickness floor outside [0, 1).
	ErrInvalidMinThickness = errors.New("vcv: min thickness out of range")

	// ErrInvalidSize indicates a scale factor that is NaN, infinite, zero or
	// negative, either uniform or inside a per-dimension vector.
	ErrInvalidSize = errors.New("vcv: size must be positive and finite")

	// ErrInvalidPosition indicates a non-finite location coordinate, either
	// uniform or inside a per-dimension vector.
	ErrInvalidPosition = errors.New("vcv: position must be finite")

	// ErrDimensionMismatch indicates a per-dimension vector (sizes or
	// positions) whose length differs from the requested dimensionality.
	ErrDimensionMismatch = errors.New("vcv: dimension mismatch")

	// ErrEmptySpectrum indicates an axis spectrum of length zero where at
	// least one axis is required.
	ErrEmptySpectrum = errors.New("vcv: empty spectrum")

	// ErrBadSpectrum indicates negative or non-finite spectrum entries.
	ErrBadSpectrum = errors.New("vcv: spectrum values out of domain")

	// ErrNotPositiveSemidefinite is returned when the requested covariance
	// falls below the admissible floor for the spectrum's positive support,
	// so the assembled matrix would stop being a valid covariance matrix.
	ErrNotPositiveSemidefinite = errors.New("vcv: matrix not positive semidefinite")

	// ErrEigenFailed indicates that the symmetric eigendecomposition backing
	// a diagnostic did not converge.
	ErrEigenFailed = errors.New("vcv: eigen decomposition failed")

	// ErrNilObject indicates a nil *Object receiver or a nil matrix argument.
	ErrNilObject = errors.New("vcv: nil object")
)

// -----------------------------------------------------------------------------
// Operation names used as wrap prefixes. Keeping them in one place guarantees
// the prefix in an error message always matches the exported function name.
// -----------------------------------------------------------------------------

const (
	opAssemble   = "Assemble"
	opAdmissible = "AdmissibleCovariance"
	opBuild      = "Build"
	opBatch      = "BuildBatch"
	opRecovered  = "RecoveredRoundness"
	opMajorAxes  = "MajorAxes"
	opAngle      = "PairwiseAngle"
	opPSD        = "IsPositiveSemidefinite"
)

// vcvErrorf prefixes err with the public operation name, preserving the
// sentinel chain for errors.Is / errors.As.
func vcvErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
