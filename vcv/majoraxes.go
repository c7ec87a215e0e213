// SPDX-License-Identifier: MIT
// Package: ovaloid/vcv
//
// majoraxes.go - principal-axes view of a built object.
//
// Purpose:
//   - Convert the covariance matrix into its spectral form: eigenvalues in
//     descending order paired with column-aligned orthonormal eigenvectors.
//     Renderers draw ellipsoids from exactly this representation.
//
// Contract:
//   - Values are returned largest first; Vectors column j belongs to value j.
//   - SemiAxes are sqrt(eigenvalue) with negative float noise clamped to 0.
//   - All accessors return copies; MajorAxes is as immutable as Object.

package vcv

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// MajorAxes is the eigendecomposition of an Object's matrix, ordered for
// rendering: values descending, vectors column-aligned.
type MajorAxes struct {
	values  []float64
	vectors *mat.Dense
}

// MajorAxes computes the principal-axes representation of the object.
//
// Implementation stages:
//  1. Factorize the symmetric matrix (gonum EigenSym, with vectors).
//  2. Reverse the ascending eigenvalues into descending order.
//  3. Reorder eigenvector columns to stay aligned with their values.
//
// Errors:
//   - ErrNilObject on a nil receiver.
//   - ErrEigenFailed when the factorization does not converge.
//
// Determinism: pure function of the object.
// Complexity: O(D^3) time, O(D^2) space.
func (o *Object) MajorAxes() (*MajorAxes, error) {
	if o == nil || o.matrix == nil {
		return nil, vcvErrorf(opMajorAxes, ErrNilObject)
	}
	var es mat.EigenSym
	if ok := es.Factorize(o.matrix, true); !ok {
		return nil, vcvErrorf(opMajorAxes, ErrEigenFailed)
	}
	ascending := es.Values(nil)
	var raw mat.Dense
	es.VectorsTo(&raw)

	n := len(ascending)
	values := make([]float64, n)
	vectors := mat.NewDense(n, n, nil)
	var i, j, src int
	for j = 0; j < n; j++ {
		src = n - 1 - j
		values[j] = ascending[src]
		for i = 0; i < n; i++ {
			vectors.Set(i, j, raw.At(i, src))
		}
	}
	return &MajorAxes{values: values, vectors: vectors}, nil
}

// Dim returns the dimensionality of the decomposition.
func (ax *MajorAxes) Dim() int {
	return len(ax.values)
}

// Values returns a copy of the eigenvalues, largest first.
func (ax *MajorAxes) Values() []float64 {
	out := make([]float64, len(ax.values))
	copy(out, ax.values)
	return out
}

// Vectors returns a copy of the orthonormal eigenvector matrix; column j
// corresponds to Values()[j].
func (ax *MajorAxes) Vectors() *mat.Dense {
	return mat.DenseCopyOf(ax.vectors)
}

// SemiAxes returns the geometric semi-axis lengths, sqrt of the
// eigenvalues. Tiny negative eigenvalues (float noise on singular
// matrices) clamp to zero instead of producing NaN.
func (ax *MajorAxes) SemiAxes() []float64 {
	out := make([]float64, len(ax.values))
	var v float64
	for i := range ax.values {
		v = ax.values[i]
		if v < 0 {
			v = 0
		}
		out[i] = math.Sqrt(v)
	}
	return out
}
