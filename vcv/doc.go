// SPDX-License-Identifier: MIT
// Package: ovaloid/vcv

// Package vcv synthesizes variance-covariance matrices from four intuitive
// knobs: shape (roundness), covariance, size and position.
//
// The build pipeline is fixed and fully deterministic:
//
//	shape -> decay rate -> axis spectrum -> covariance matrix -> scaling
//
// Diag[i] = spectrum[i]^2, Off[i,j] = C * spectrum[i] * spectrum[j], then
// entry (i, j) scales by z_i * z_j and the location vector carries the
// center. The result is an immutable Object: a gonum SymDense plus a
// location, exposed only through copying accessors.
//
// Quick start:
//
//	obj, err := vcv.Build() // 2x2 identity at the origin
//	obj, err = vcv.Build(
//		vcv.WithDimensions(5),
//		vcv.WithShape(0.7),
//		vcv.WithCovariance(0.3),
//		vcv.WithSize(2),
//	)
//
// Batch synthesis works on plain parameter rows, preserving order:
//
//	rows := []vcv.Params{a, b, c}
//	objs, err := vcv.BuildBatch(rows) // objs[i] belongs to rows[i]
//
// Every matrix handed out is positive semidefinite: Assemble enforces the
// exact admissible covariance floor -1/(k-1) over the k positive axes and
// rejects everything below it. Diagnostics (RecoveredRoundness, MajorAxes,
// PairwiseAngle, IsPositiveSemidefinite) read shape and geometry back out
// of built objects.
//
// All validation is eager with sentinel errors (errors.Is friendly); no
// function panics on user input; operations are O(D^2) except the
// eigenvalue-backed diagnostics at O(D^3).
package vcv
