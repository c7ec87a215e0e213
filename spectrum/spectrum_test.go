package spectrum_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ovaloid/spectrum"
	"github.com/stretchr/testify/assert"
)

// TestGenerate_HeadAlwaysUnit verifies that the leading axis is exactly 1
// for every legal dimensionality and decay rate, including +Inf.
func TestGenerate_HeadAlwaysUnit(t *testing.T) {
	dims := []int{1, 2, 3, 10, 100}
	lambdas := []float64{0, 0.25, 1, 4, math.Inf(1)}
	for _, d := range dims {
		for _, l := range lambdas {
			out, err := spectrum.Generate(d, l)
			assert.NoError(t, err, "dims=%d lambda=%v", d, l)
			assert.Len(t, out, d, "dims=%d lambda=%v", d, l)
			assert.Equal(t, 1.0, out[0], "head must be exactly unit, dims=%d lambda=%v", d, l)
		}
	}
}

// TestGenerate_NonIncreasingWithinUnit verifies ordering and range of the
// decayed axes.
func TestGenerate_NonIncreasingWithinUnit(t *testing.T) {
	out, err := spectrum.Generate(50, 2.5)
	assert.NoError(t, err)
	for i := 1; i < len(out); i++ {
		assert.LessOrEqual(t, out[i], out[i-1], "axes must not increase at index %d", i)
		assert.GreaterOrEqual(t, out[i], 0.0, "axes must stay non-negative at index %d", i)
		assert.LessOrEqual(t, out[i], 1.0, "axes must stay within unit at index %d", i)
	}
}

// TestGenerate_SphereAtZeroLambda verifies that lambda == 0 yields a flat
// unit spectrum (hypersphere) at any dimensionality.
func TestGenerate_SphereAtZeroLambda(t *testing.T) {
	for _, d := range []int{1, 2, 7, 64} {
		out, err := spectrum.Generate(d, 0)
		assert.NoError(t, err, "dims=%d", d)
		for i, v := range out {
			assert.Equal(t, 1.0, v, "dims=%d index=%d", d, i)
		}
	}
}

// TestGenerate_MatchesClosedForm verifies exp(-lambda * i/(D-1)) entry by
// entry on a small fixed case.
func TestGenerate_MatchesClosedForm(t *testing.T) {
	const lambda = 1.0
	out, err := spectrum.Generate(4, lambda)
	assert.NoError(t, err)
	for i, v := range out {
		want := math.Exp(-lambda * float64(i) / 3.0)
		assert.InDelta(t, want, v, 1e-15, "index %d", i)
	}
}

// TestGenerate_SingleDimension verifies the degenerate D=1 spectrum is [1]
// regardless of the decay rate.
func TestGenerate_SingleDimension(t *testing.T) {
	for _, l := range []float64{0, 3, math.Inf(1)} {
		out, err := spectrum.Generate(1, l)
		assert.NoError(t, err, "lambda=%v", l)
		assert.Equal(t, []float64{1}, out, "lambda=%v", l)
	}
}

// TestGenerate_InfiniteLambdaCollapses verifies that +Inf flattens every
// trailing axis to zero (or to the floor when one is set).
func TestGenerate_InfiniteLambdaCollapses(t *testing.T) {
	out, err := spectrum.Generate(5, math.Inf(1))
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0, 0}, out)

	out, err = spectrum.Generate(5, math.Inf(1), spectrum.WithMinThickness(0.2))
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 0.2, 0.2, 0.2, 0.2}, out)
}

// TestGenerate_ThicknessFloor verifies that only the axes that decay below
// the floor are clamped; the rest keep their exponential values.
func TestGenerate_ThicknessFloor(t *testing.T) {
	const floor = 0.1
	out, err := spectrum.Generate(5, 4, spectrum.WithMinThickness(floor))
	assert.NoError(t, err)
	// t_i = i/4 so the raw values are e^0, e^-1, e^-2, e^-3, e^-4.
	assert.InDelta(t, math.Exp(-1), out[1], 1e-15, "above the floor, untouched")
	assert.InDelta(t, math.Exp(-2), out[2], 1e-15, "above the floor, untouched")
	assert.Equal(t, floor, out[3], "e^-3 < 0.1 must clamp")
	assert.Equal(t, floor, out[4], "e^-4 < 0.1 must clamp")
}

// TestGenerate_Errors verifies the validation sentinels for every illegal
// parameter class.
func TestGenerate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		dims   int
		lambda float64
		opts   []spectrum.Option
		want   error
	}{
		{"zero dims", 0, 1, nil, spectrum.ErrBadDimension},
		{"negative dims", -3, 1, nil, spectrum.ErrBadDimension},
		{"negative lambda", 4, -0.5, nil, spectrum.ErrBadLambda},
		{"NaN lambda", 4, math.NaN(), nil, spectrum.ErrBadLambda},
		{"negative thickness", 4, 1, []spectrum.Option{spectrum.WithMinThickness(-0.1)}, spectrum.ErrBadThickness},
		{"unit thickness", 4, 1, []spectrum.Option{spectrum.WithMinThickness(1)}, spectrum.ErrBadThickness},
		{"NaN thickness", 4, 1, []spectrum.Option{spectrum.WithMinThickness(math.NaN())}, spectrum.ErrBadThickness},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := spectrum.Generate(tc.dims, tc.lambda, tc.opts...)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
