// SPDX-License-Identifier: MIT
// Package: ovaloid/spectrum

// Package spectrum turns a single intuitive knob, roundness, into the full
// axis profile of a D-dimensional ellipsoid, and reads the knob back out of
// observed data.
//
// 🚀 What lives here?
//
//   - Generate: axis[i] = exp(-lambda * i/(D-1)) on the unit index grid,
//     head pinned at 1, optional thickness floor.
//   - LambdaFromRoundness / RoundnessFromLambda: the exact log-linear map
//     between roundness in [0, 1] and decay rate lambda in [0, +Inf],
//     lambda = 4^(1-2r).
//   - FromRoundness: the two above composed.
//   - Roundness: normalized trapezoidal area of a sorted value spectrum,
//     the statistic used to recover roundness from covariance diagonals.
//
// ✨ Why a log-linear map?
//
// Perceptually, halving and doubling the decay rate should move the knob by
// the same amount. Anchors: r=1 → lambda=0 (hypersphere), r=0.5 → lambda=1,
// r=0 → lambda=+Inf (line); inside (0,1) the band is lambda ∈ (1/4, 4).
//
// ⚙️ Quick start:
//
//	axes, err := spectrum.FromRoundness(5, 0.7)
//	if err != nil { ... }
//	r, _ := spectrum.Roundness(axes) // ≈ 0.7 up to grid bias
//
// Everything is pure, deterministic and allocation-light; errors are
// sentinel-based (errors.Is friendly) and no function panics.
package spectrum
