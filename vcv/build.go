// SPDX-License-Identifier: MIT
// Package: ovaloid/vcv
//
// build.go - the one-call pipeline from intuitive knobs to a built Object.
//
// Purpose:
//   - Orchestrate the full synthesis: roundness -> decay rate -> axis
//     spectrum -> covariance matrix -> size scaling -> location.
//   - Validate everything eagerly, in documented priority order, before the
//     first allocation; fail atomically (no partial products escape).
//
// Pipeline (fixed order):
//  1. lambda  = spectrum.LambdaFromRoundness(shape)
//  2. axes    = spectrum.Generate(dims, lambda, minThickness)
//  3. matrix  = Assemble(axes, covariance)
//  4. scale   matrix entries by z_i * z_j (uniform z or per-dimension)
//  5. location = per-dimension positions, or position broadcast D times
//
// AI-Hints:
//   - Zero arguments yield the unit, non-covarying, centered 2D circle:
//     the 2x2 identity at the origin.
//   - The pipeline math lives in the spectrum package and Assemble; this
//     file only sequences, scales and wraps.

package vcv

import (
	"github.com/katalvlaran/ovaloid/spectrum"
	"gonum.org/v1/gonum/mat"
)

// Build synthesizes a variance-covariance object from functional options;
// absent options fall back to the Default* constants.
//
// Behavior highlights:
//   - shape drives the axis spectrum through the log-linear lambda map.
//   - covariance correlates every axis pair by the same coefficient.
//   - size scales variances by z^2 (uniform) or entry (i, j) by z_i * z_j.
//   - position fills the location vector, broadcast or per-dimension.
//
// Returns:
//   - *Object carrying the matrix and the location; immutable via accessors.
//
// Errors (first violation in priority order, all errors.Is-matchable):
//   - ErrInvalidDimension, ErrInvalidShape, ErrInvalidCovariance,
//     ErrInvalidMinThickness, ErrInvalidSize, ErrInvalidPosition,
//     ErrDimensionMismatch, ErrNotPositiveSemidefinite.
//
// Determinism: pure function of its options.
// Complexity: O(D^2) time, O(D^2) space.
func Build(opts ...Option) (*Object, error) {
	cfg := newBuildConfig(opts...)
	if err := validateBuildConfig(cfg); err != nil {
		return nil, vcvErrorf(opBuild, err)
	}
	return buildFromConfig(cfg)
}

// buildFromConfig runs the pipeline on an already validated configuration.
// Params.Build reuses it so both entry points validate exactly once.
func buildFromConfig(cfg buildConfig) (*Object, error) {
	specOpts := spectrumOptions(cfg)

	lambda, err := spectrum.LambdaFromRoundness(cfg.shape, specOpts...)
	if err != nil {
		return nil, vcvErrorf(opBuild, err)
	}
	axes, err := spectrum.Generate(cfg.dims, lambda, specOpts...)
	if err != nil {
		return nil, vcvErrorf(opBuild, err)
	}
	m, err := Assemble(axes, cfg.covariance)
	if err != nil {
		return nil, vcvErrorf(opBuild, err)
	}

	scaleMatrix(m, resolveSizes(cfg))
	return newObject(cfg.name, m, resolveLocation(cfg)), nil
}

// spectrumOptions translates the build configuration into options for the
// spectrum package.
func spectrumOptions(cfg buildConfig) []spectrum.Option {
	opts := make([]spectrum.Option, 0, 2)
	opts = append(opts, spectrum.WithMinThickness(cfg.minThickness))
	if cfg.extrapolate {
		opts = append(opts, spectrum.WithExtrapolation())
	}
	return opts
}

// resolveSizes returns the per-dimension scale vector: the explicit vector
// when given, otherwise the uniform size broadcast D times.
func resolveSizes(cfg buildConfig) []float64 {
	if cfg.sizes != nil {
		return cfg.sizes
	}
	out := make([]float64, cfg.dims)
	for i := range out {
		out[i] = cfg.size
	}
	return out
}

// resolveLocation returns the center coordinates: the explicit vector when
// given (copied, so the Object never aliases config state), otherwise the
// uniform position broadcast D times.
func resolveLocation(cfg buildConfig) []float64 {
	out := make([]float64, cfg.dims)
	if cfg.positions != nil {
		copy(out, cfg.positions)
		return out
	}
	for i := range out {
		out[i] = cfg.position
	}
	return out
}

// scaleMatrix multiplies entry (i, j) by scale[i]*scale[j] in place. With a
// uniform scale z this is the familiar z^2 variance scaling.
func scaleMatrix(m *mat.SymDense, scale []float64) {
	n := m.SymmetricDim()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			m.SetSym(i, j, m.At(i, j)*scale[i]*scale[j])
		}
	}
}
