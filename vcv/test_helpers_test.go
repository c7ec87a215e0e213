// SPDX-License-Identifier: MIT
// Package vcv_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and assertions for the build
//     and assembly tests.
//   - Keep all data finite and well-formed to avoid numeric-policy
//     interference.

package vcv_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ovaloid/vcv"
	"gonum.org/v1/gonum/mat"
)

// MustBuild RUNS vcv.Build or fails the test (fatal on error).
// Implementation:
//   - Stage 1: Call vcv.Build(opts...).
//   - Stage 2: t.Fatalf on error to abort the test early.
//
// Behavior highlights:
//   - Concise boilerplate reduction in tests that assume a valid object.
//
// Inputs:
//   - opts: build options under test.
//
// Returns:
//   - *vcv.Object, never nil.
//
// Errors:
//   - Fatal test failure if the build fails.
//
// Complexity:
//   - Time O(D^2), Space O(D^2).
func MustBuild(t *testing.T, opts ...vcv.Option) *vcv.Object {
	t.Helper()
	obj, err := vcv.Build(opts...)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	return obj
}

// PSDProbe checks vᵀAv >= -eps for a few random v (cheap PSD sanity).
// Implementation:
//   - Stage 1: rng := rand.New(rand.NewSource(seed)) for reproducibility.
//   - Stage 2: Draw trials vectors with U(-1,1) entries, accumulate the
//     quadratic form explicitly, fail on the first probe below -eps.
//
// Behavior highlights:
//   - Complements the exact assembly-time floor and the eigenvalue check
//     with an independent, decomposition-free witness.
//
// Inputs:
//   - a: symmetric matrix; trials: probe count; seed: RNG seed; eps: slack.
//
// Returns:
//   - None.
//
// Errors:
//   - Fatal test failure if any probe goes below -eps.
//
// Determinism:
//   - Deterministic for a fixed seed.
//
// Complexity:
//   - Time O(trials * D^2), Space O(D).
func PSDProbe(t *testing.T, a mat.Symmetric, trials int, seed int64, eps float64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	n := a.SymmetricDim()
	v := make([]float64, n)
	var (
		trial, i, j int
		quad        float64
	)
	for trial = 0; trial < trials; trial++ {
		for i = 0; i < n; i++ {
			v[i] = rng.Float64()*2 - 1 // [-1,1]
		}
		quad = 0
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				quad += v[i] * a.At(i, j) * v[j]
			}
		}
		if quad < -eps {
			t.Fatalf("PSDProbe trial=%d: v'Av=%g < -%g", trial, quad, eps)
		}
	}
}

// AssertErrorIs WRAPS errors.Is with consistent failure text.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// sliceClose asserts |a[i]-b[i]| <= atol + rtol*|b[i]| element-wise.
func sliceClose(t *testing.T, a, b []float64, rtol, atol float64) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("slice lengths: %d vs %d", len(a), len(b))
	}
	var diff, absb float64
	for i := range a {
		diff = math.Abs(a[i] - b[i])
		absb = math.Abs(b[i])
		if diff > (atol + rtol*absb) {
			t.Fatalf("sliceClose idx=%d: got=%g want=%g (rtol=%g atol=%g)", i, a[i], b[i], rtol, atol)
		}
	}
}

// diagOf returns the main diagonal of a symmetric matrix.
func diagOf(a mat.Symmetric) []float64 {
	n := a.SymmetricDim()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = a.At(i, i)
	}
	return out
}

// symClose asserts entry-wise closeness of two symmetric matrices.
func symClose(t *testing.T, got, want mat.Symmetric, tol float64) {
	t.Helper()
	if got.SymmetricDim() != want.SymmetricDim() {
		t.Fatalf("orders: %d vs %d", got.SymmetricDim(), want.SymmetricDim())
	}
	n := got.SymmetricDim()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if math.Abs(got.At(i, j)-want.At(i, j)) > tol {
				t.Fatalf("entry (%d,%d): got=%g want=%g (tol=%g)", i, j, got.At(i, j), want.At(i, j), tol)
			}
		}
	}
}
