// SPDX-License-Identifier: MIT
// Package: ovaloid/vcv
//
// diagnostics.go - read-back checks on built objects and matrices.
//
// Purpose:
//   - RecoveredRoundness: the requested-vs-achieved shape statistic used by
//     comparison studies. It measures the realized diagonal (variances,
//     squared axes), so at small D it reads systematically below the
//     requested shape; the bias fades as D grows. That behavior is part of
//     the published statistic and is reproduced as-is.
//   - PairwiseAngle: the geometric reading of the covariance coefficient.
//   - IsPositiveSemidefinite: numeric PSD verification via eigenvalues, for
//     callers who want an independent check on top of the exact
//     assembly-time bound. Not on the build path.

package vcv

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ovaloid/spectrum"
	"gonum.org/v1/gonum/mat"
)

// degPerRad converts radians to degrees.
const degPerRad = 180.0 / math.Pi

// RecoveredRoundness recomputes the empirical roundness of the object from
// its realized diagonal: sort variances ascending, normalize index
// positions to [0, 1], integrate the piecewise-linear curve with the
// trapezoid rule and normalize by the peak variance. Size scaling cancels,
// so the statistic reflects shape alone.
//
// Converges to the requested shape as D grows; biased low at small D
// because the integrand sees squared axes on a coarse grid.
//
// Errors: ErrNilObject on a nil receiver.
//
// Complexity: O(D log D) time, O(D) space.
func (o *Object) RecoveredRoundness() (float64, error) {
	if o == nil || o.matrix == nil {
		return 0, vcvErrorf(opRecovered, ErrNilObject)
	}
	r, err := spectrum.Roundness(o.Variances())
	if err != nil {
		return 0, vcvErrorf(opRecovered, err)
	}
	return r, nil
}

// PairwiseAngle converts a covariance coefficient into the angle between
// any two axis directions, in degrees: arccos(C). C = 0 reads 90 degrees
// (orthogonal axes), the limits C = 1 and C = -1 read 0 and 180. The full
// closed interval [-1, 1] is accepted here even though Build rejects the
// endpoints, so the limit geometry stays expressible.
//
// Errors: ErrInvalidCovariance when C is NaN or outside [-1, 1].
//
// Complexity: O(1) time, O(1) space.
func PairwiseAngle(covariance float64) (float64, error) {
	if math.IsNaN(covariance) || covariance < -1 || covariance > 1 {
		return 0, vcvErrorf(opAngle, fmt.Errorf("covariance %v: %w", covariance, ErrInvalidCovariance))
	}
	return math.Acos(covariance) * degPerRad, nil
}

// IsPositiveSemidefinite reports whether the symmetric matrix a is PSD
// within tol: every eigenvalue must be >= -tol. Use a small positive tol
// (1e-10 is plenty for matrices assembled here) to absorb float noise.
//
// Assembly already guarantees PSD through the exact covariance floor; this
// eigenvalue check is the independent, numeric counterpart for tests,
// audits and externally supplied matrices.
//
// Errors:
//   - ErrNilObject when a is nil.
//   - ErrEigenFailed when the eigendecomposition does not converge.
//
// Complexity: O(D^3) time, O(D^2) space.
func IsPositiveSemidefinite(a mat.Symmetric, tol float64) (bool, error) {
	if a == nil {
		return false, vcvErrorf(opPSD, ErrNilObject)
	}
	var es mat.EigenSym
	if ok := es.Factorize(a, false); !ok {
		return false, vcvErrorf(opPSD, ErrEigenFailed)
	}
	values := es.Values(nil) // ascending
	return values[0] >= -tol, nil
}
