// SPDX-License-Identifier: MIT
// Package: ovaloid/vcv
//
// assemble.go - spectrum -> symmetric covariance matrix assembly.
//
// Purpose:
//   - Turn an axis spectrum into the unscaled variance-covariance matrix:
//     Diag[i] = spec[i]^2, Off[i,j] = C * spec[i] * spec[j].
//   - Guarantee the result is a valid covariance matrix (symmetric PSD) or
//     fail with a sentinel before any matrix is handed out.
//
// PSD policy (exact, O(D)):
//   - The assembled matrix factors as M = D_s R D_s with D_s = diag(spec)
//     and R the equicorrelation matrix (1-C)I + C*11^T restricted to the
//     strictly positive spectrum entries. By congruence, M is PSD exactly
//     when that restriction of R is, i.e. with k = #{i: spec[i] > 0}:
//     k <= 1 always passes; k >= 2 requires C >= -1/(k-1).
//   - The bound is checked against the caller's C before allocation, so a
//     non-PSD request never materializes a matrix.
//
// AI-Hints:
//   - AdmissibleCovariance exposes the same bound for UIs and batch
//     planners; IsPositiveSemidefinite (diagnostics.go) double-checks
//     numerically via eigendecomposition when callers want belt and braces.

package vcv

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Assemble builds the unscaled variance-covariance matrix of an axis
// spectrum under the shared correlation coefficient C.
//
// Implementation stages:
//  1. Validate the spectrum (non-empty, finite, non-negative).
//  2. Validate C (finite; |C| < 1 when more than one axis exists).
//  3. Check the admissible covariance floor for the positive support.
//  4. Fill a gonum SymDense: squares on the diagonal, C-scaled products off
//     the diagonal. Symmetry holds by construction.
//
// Inputs:
//   - spec: axis scales, typically from spectrum.Generate (then in [0, 1]).
//   - covariance: shared correlation coefficient C.
//
// Returns:
//   - *mat.SymDense of order len(spec); the caller owns it.
//
// Errors:
//   - ErrEmptySpectrum, ErrBadSpectrum on illegal spectra.
//   - ErrInvalidCovariance on NaN C, or |C| >= 1 with more than one axis.
//   - ErrNotPositiveSemidefinite when C falls below -1/(k-1) for the
//     k strictly positive axes.
//
// Determinism: pure function of its inputs.
// Complexity: O(D^2) time, O(D^2) space.
func Assemble(spec []float64, covariance float64) (*mat.SymDense, error) {
	if err := validateSpectrum(spec); err != nil {
		return nil, vcvErrorf(opAssemble, err)
	}
	n := len(spec)
	if err := validateCovariance(covariance, n); err != nil {
		return nil, vcvErrorf(opAssemble, err)
	}
	if err := checkCovarianceFloor(spec, covariance); err != nil {
		return nil, vcvErrorf(opAssemble, err)
	}

	m := mat.NewSymDense(n, nil)
	var (
		i, j int
		off  float64
	)
	for i = 0; i < n; i++ {
		m.SetSym(i, i, spec[i]*spec[i])
		for j = i + 1; j < n; j++ {
			off = covariance * spec[i] * spec[j]
			m.SetSym(i, j, off)
		}
	}
	return m, nil
}

// AdmissibleCovariance reports the covariance interval [lo, hi) that keeps
// the assembled matrix of spec positive semidefinite AND non-singular in
// correlation: lo = -1/(k-1) for k >= 2 strictly positive axes, else -1;
// hi = 1 always (exclusive, Cauchy-Schwarz). lo is inclusive whenever it
// exceeds -1: at C = lo the matrix is PSD but singular.
//
// Errors: ErrEmptySpectrum, ErrBadSpectrum on illegal spectra.
//
// Complexity: O(D) time, O(1) space.
func AdmissibleCovariance(spec []float64) (lo, hi float64, err error) {
	if err = validateSpectrum(spec); err != nil {
		return 0, 0, vcvErrorf(opAdmissible, err)
	}
	lo = -1
	if k := positiveSupport(spec); k >= 2 {
		lo = -1 / float64(k-1)
	}
	return lo, 1, nil
}

// positiveSupport counts strictly positive spectrum entries. Axes clamped
// to zero contribute nothing to any quadratic form, so they never tighten
// the covariance floor.
func positiveSupport(spec []float64) int {
	k := 0
	for _, v := range spec {
		if v > 0 {
			k++
		}
	}
	return k
}

// checkCovarianceFloor rejects covariances below the exact admissible bound
// of the spectrum's positive support. The comparison is exact: both sides
// are deterministic functions of the caller's inputs.
func checkCovarianceFloor(spec []float64, c float64) error {
	k := positiveSupport(spec)
	if k < 2 {
		return nil
	}
	floor := -1 / float64(k-1)
	if c < floor {
		return fmt.Errorf("covariance %v below floor %v for %d positive axes: %w",
			c, floor, k, ErrNotPositiveSemidefinite)
	}
	return nil
}
