// SPDX-License-Identifier: MIT
// Package: ovaloid/vcv
//
// options.go - functional options and the build configuration.
//
// Contract:
//   - Option constructors record values verbatim and never panic; every
//     range check happens inside Build so violations surface as sentinel
//     errors callers can branch on with errors.Is.
//   - Default* constants are the single source of truth for defaults; the
//     zero-argument Build() yields the 2x2 identity at the origin.
//   - Vector options copy their input slice, so later caller mutation can
//     not leak into the build.
//
// AI-Hints:
//   - Add new knobs here plus a Default* constant and a validation clause in
//     validators.go; keep Params (batch.go) in sync.

package vcv

// Default values applied when the corresponding option is absent.
const (
	// DefaultShape builds perfectly round objects.
	DefaultShape = 1.0
	// DefaultCovariance keeps dimensions uncorrelated.
	DefaultCovariance = 0.0
	// DefaultDimensions is the smallest interesting dimensionality.
	DefaultDimensions = 2
	// DefaultSize leaves the unit spectrum unscaled.
	DefaultSize = 1.0
	// DefaultPosition centers objects at the origin.
	DefaultPosition = 0.0
	// DefaultMinThickness keeps collapsed axes at exactly zero.
	DefaultMinThickness = 0.0
)

// buildConfig is the resolved configuration consumed by Build.
// Passed by value; nobody mutates it after gathering.
type buildConfig struct {
	name         string
	shape        float64
	covariance   float64
	dims         int
	size         float64
	sizes        []float64 // nil means uniform scaling by size
	position     float64
	positions    []float64 // nil means broadcast of position
	minThickness float64
	extrapolate  bool
}

// newBuildConfig folds opts over the defaults and returns the result by value.
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		shape:        DefaultShape,
		covariance:   DefaultCovariance,
		dims:         DefaultDimensions,
		size:         DefaultSize,
		position:     DefaultPosition,
		minThickness: DefaultMinThickness,
	}
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	return cfg
}

// Option mutates the build configuration in place.
type Option func(*buildConfig)

// WithName labels the object; downstream consumers index batch results by
// this label. Any string is legal, including the empty default.
//
// Complexity: O(1) time, O(1) space.
func WithName(name string) Option {
	return func(c *buildConfig) { c.name = name }
}

// WithShape sets the target roundness: 1 is a hypersphere, 0 a line.
// Legal range [0, 1] unless WithExtrapolation is also given (ErrInvalidShape).
//
// Complexity: O(1) time, O(1) space.
func WithShape(shape float64) Option {
	return func(c *buildConfig) { c.shape = shape }
}

// WithCovariance sets the shared pairwise covariance coefficient C.
// For dims > 1 the legal range is |C| < 1, further floored by the
// admissible bound of the spectrum (ErrInvalidCovariance,
// ErrNotPositiveSemidefinite); for dims == 1 the value is ignored.
//
// Complexity: O(1) time, O(1) space.
func WithCovariance(c float64) Option {
	return func(cfg *buildConfig) { cfg.covariance = c }
}

// WithDimensions sets the dimensionality of the object, >= 1
// (ErrInvalidDimension).
//
// Complexity: O(1) time, O(1) space.
func WithDimensions(dims int) Option {
	return func(c *buildConfig) { c.dims = dims }
}

// WithSize scales every axis uniformly by z > 0, finite (ErrInvalidSize).
// Variances scale by z^2, covariances by z_i*z_j == z^2.
//
// Complexity: O(1) time, O(1) space.
func WithSize(z float64) Option {
	return func(c *buildConfig) { c.size = z }
}

// WithSizes scales each axis individually; overrides WithSize. The vector
// length must equal the dimensionality (ErrDimensionMismatch) and every
// entry must be positive and finite (ErrInvalidSize).
//
// Complexity: O(len(z)) time, O(len(z)) space.
func WithSizes(z ...float64) Option {
	dup := make([]float64, len(z))
	copy(dup, z)
	return func(c *buildConfig) { c.sizes = dup }
}

// WithPosition places the object's center at the same finite coordinate on
// every axis (ErrInvalidPosition).
//
// Complexity: O(1) time, O(1) space.
func WithPosition(p float64) Option {
	return func(c *buildConfig) { c.position = p }
}

// WithPositions places the object's center coordinate by coordinate;
// overrides WithPosition. The vector length must equal the dimensionality
// (ErrDimensionMismatch) and every entry must be finite (ErrInvalidPosition).
//
// Complexity: O(len(p)) time, O(len(p)) space.
func WithPositions(p ...float64) Option {
	dup := make([]float64, len(p))
	copy(dup, p)
	return func(c *buildConfig) { c.positions = dup }
}

// WithMinThickness floors every decayed axis at m in [0, 1), preventing
// dimensional collapse for shape 0 (ErrInvalidMinThickness).
//
// Complexity: O(1) time, O(1) space.
func WithMinThickness(m float64) Option {
	return func(c *buildConfig) { c.minThickness = m }
}

// WithExtrapolation lifts the [0, 1] shape bound; the log-linear lambda map
// is continued with the same closed form for any finite shape.
//
// Complexity: O(1) time, O(1) space.
func WithExtrapolation() Option {
	return func(c *buildConfig) { c.extrapolate = true }
}
