// SPDX-License-Identifier: MIT
// Package: ovaloid/vcv
//
// object.go - the immutable build product: matrix plus location.
//
// Contract:
//   - Object is read-only after construction. Accessors that expose
//     composite state (Matrix, Location, Variances) return fresh copies, so
//     no caller can mutate the built object through a returned value.
//   - The zero Object is not usable; only Build and BuildBatch construct
//     valid instances.

package vcv

import "gonum.org/v1/gonum/mat"

// Object is a variance-covariance matrix paired with the location of its
// center. Both are fixed at build time.
type Object struct {
	name     string
	matrix   *mat.SymDense
	location []float64
}

// newObject wraps the build products without copying; callers inside the
// package hand over ownership.
func newObject(name string, m *mat.SymDense, location []float64) *Object {
	return &Object{name: name, matrix: m, location: location}
}

// Name returns the optional label attached via Params.Name; empty for
// objects built directly with Build.
func (o *Object) Name() string {
	return o.name
}

// Dim returns the dimensionality D of the object.
func (o *Object) Dim() int {
	return o.matrix.SymmetricDim()
}

// At returns the matrix entry at (i, j). Indices follow gonum semantics and
// panic when out of range, matching mat.Symmetric.
func (o *Object) At(i, j int) float64 {
	return o.matrix.At(i, j)
}

// Matrix returns a copy of the variance-covariance matrix.
//
// Complexity: O(D^2) time, O(D^2) space.
func (o *Object) Matrix() *mat.SymDense {
	out := mat.NewSymDense(o.matrix.SymmetricDim(), nil)
	out.CopySym(o.matrix)
	return out
}

// Location returns a copy of the center coordinates, one per dimension.
//
// Complexity: O(D) time, O(D) space.
func (o *Object) Location() []float64 {
	out := make([]float64, len(o.location))
	copy(out, o.location)
	return out
}

// Variances returns a copy of the matrix diagonal, the realized per-axis
// variances. This is the input to the roundness recovery diagnostic.
//
// Complexity: O(D) time, O(D) space.
func (o *Object) Variances() []float64 {
	n := o.matrix.SymmetricDim()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = o.matrix.At(i, i)
	}
	return out
}
