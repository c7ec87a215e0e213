// SPDX-License-Identifier: MIT
// Package: ovaloid/vcv
//
// batch.go - parameter rows and ordered batch synthesis.
//
// Contract:
//   - Params is the plain-struct twin of the functional options, convenient
//     for decoding parameter tables (CSV rows, JSON documents, DB rows).
//   - BuildBatch maps rows to objects 1:1, preserving order, and fails
//     atomically: the first bad row aborts the whole batch with the row
//     index (and name, when set) wrapped around the underlying sentinel.

package vcv

import "fmt"

// Params bundles every build knob as a plain value. Zero value is NOT the
// default configuration; start from DefaultParams and override fields.
type Params struct {
	// Name labels the resulting object for downstream indexing. Optional.
	Name string

	// Shape is the target roundness in [0, 1] (1 sphere, 0 line).
	Shape float64

	// Covariance is the shared pairwise correlation coefficient, |C| < 1.
	Covariance float64

	// Dimensions is the object dimensionality, >= 1.
	Dimensions int

	// Size scales every axis uniformly; ignored when Sizes is set.
	Size float64

	// Sizes scales each axis individually; length must equal Dimensions.
	Sizes []float64

	// Position centers the object at the same coordinate on every axis;
	// ignored when Positions is set.
	Position float64

	// Positions centers the object coordinate by coordinate; length must
	// equal Dimensions.
	Positions []float64

	// MinThickness floors decayed axes, in [0, 1).
	MinThickness float64

	// Extrapolate lifts the [0, 1] bound on Shape.
	Extrapolate bool
}

// DefaultParams returns the canonical defaults: the unit, non-covarying,
// centered 2D circle.
func DefaultParams() Params {
	return Params{
		Shape:        DefaultShape,
		Covariance:   DefaultCovariance,
		Dimensions:   DefaultDimensions,
		Size:         DefaultSize,
		Position:     DefaultPosition,
		MinThickness: DefaultMinThickness,
	}
}

// config lowers the row into the internal build configuration. Slices are
// copied so the built object never aliases caller-owned memory.
func (p Params) config() buildConfig {
	cfg := buildConfig{
		name:         p.Name,
		shape:        p.Shape,
		covariance:   p.Covariance,
		dims:         p.Dimensions,
		size:         p.Size,
		position:     p.Position,
		minThickness: p.MinThickness,
		extrapolate:  p.Extrapolate,
	}
	if p.Sizes != nil {
		cfg.sizes = make([]float64, len(p.Sizes))
		copy(cfg.sizes, p.Sizes)
	}
	if p.Positions != nil {
		cfg.positions = make([]float64, len(p.Positions))
		copy(cfg.positions, p.Positions)
	}
	return cfg
}

// Build synthesizes the object described by the row. Identical semantics to
// the functional-options Build, including validation order and sentinels.
//
// Complexity: O(D^2) time, O(D^2) space.
func (p Params) Build() (*Object, error) {
	cfg := p.config()
	if err := validateBuildConfig(cfg); err != nil {
		return nil, vcvErrorf(opBuild, err)
	}
	return buildFromConfig(cfg)
}

// BuildBatch synthesizes one object per parameter row, preserving order so
// callers can index results by row. The batch is atomic: on the first
// failing row it returns nil and an error naming that row; no partial
// result slice is ever handed out.
//
// Errors: the first row failure, wrapped as "BuildBatch: row i: ..." (the
// row name is included when set); errors.Is still matches the underlying
// sentinel.
//
// Complexity: O(sum of D_i^2) time and space over the rows.
func BuildBatch(rows []Params) ([]*Object, error) {
	out := make([]*Object, len(rows))
	var (
		i   int
		row Params
		err error
	)
	for i, row = range rows {
		if out[i], err = row.Build(); err != nil {
			if row.Name != "" {
				return nil, fmt.Errorf("%s: row %d (%q): %w", opBatch, i, row.Name, err)
			}
			return nil, fmt.Errorf("%s: row %d: %w", opBatch, i, err)
		}
	}
	return out, nil
}
