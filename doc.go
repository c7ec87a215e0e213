// Package ovaloid is your toolkit for synthesizing variance-covariance (VCV)
// matrices, the symmetric positive-semidefinite description of an
// n-dimensional ellipsoid's shape, orientation, size, and position.
//
// 🚀 What is ovaloid?
//
//	A small, deterministic library that turns four intuitive knobs
//		• Shape: roundness in [0,1] (1 = hypersphere, 0 = degenerate line)
//		• Covariance: one shared pairwise strength, |C| < 1
//		• Size: a uniform scale or per-dimension axis scales
//		• Position: a center point, scalar broadcast or full vector
//	into an immutable Object wrapping a gonum *mat.SymDense plus its location.
//
// ✨ Why choose ovaloid?
//
//   - Guaranteed PSD: inadmissible covariance is rejected with the exact bound
//   - Honest diagnostics: recovered roundness reproduces the small-D bias
//   - Pure functions: stateless, synchronous, results safe to share
//   - Ecosystem-native: gonum matrices, errors.Is sentinels, functional options
//
// Under the hood, everything is organized under three subpackages:
//
//	spectrum/    - roundness/lambda maps + the per-axis length generator
//	vcv/         - matrix assembly, the Build/BuildBatch pipeline, diagnostics
//	cmd/ovaloid/ - demonstration CLI: build, batch (CSV in), study (+ SQLite sink)
//
// Quick ASCII intuition:
//
//	shape = 1.0         shape = 0.25
//	  .------.           .-----------------.
//	 /        \          '-----------------'
//	 \        /
//	  '------'
//
//	equal variances     one dominant axis, thin tail
//
// Dive into the subpackage docs for contracts, error taxonomies, and
// complexity notes; cmd/ovaloid shows the whole pipeline end to end.
//
//	go get github.com/katalvlaran/ovaloid/vcv
package ovaloid
