package vcv_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/ovaloid/vcv"
	"github.com/stretchr/testify/require"
)

// TestDefaultParams_MatchBuildDefaults verifies that DefaultParams().Build()
// and the zero-argument Build produce identical objects.
func TestDefaultParams_MatchBuildDefaults(t *testing.T) {
	fromParams, err := vcv.DefaultParams().Build()
	require.NoError(t, err)
	direct, err := vcv.Build()
	require.NoError(t, err)

	require.Equal(t, direct.Dim(), fromParams.Dim())
	var i, j int
	for i = 0; i < direct.Dim(); i++ {
		for j = 0; j < direct.Dim(); j++ {
			require.Equal(t, direct.At(i, j), fromParams.At(i, j), "entry (%d,%d)", i, j)
		}
	}
	require.Equal(t, direct.Location(), fromParams.Location())
}

// TestParams_Build verifies field-by-field parity with functional options.
func TestParams_Build(t *testing.T) {
	p := vcv.DefaultParams()
	p.Name = "row-a"
	p.Shape = 0.5
	p.Covariance = 0.4
	p.Dimensions = 3
	p.Size = 2
	p.Position = -1

	fromParams, err := p.Build()
	require.NoError(t, err)
	fromOpts := MustBuild(t,
		vcv.WithName("row-a"),
		vcv.WithShape(0.5),
		vcv.WithCovariance(0.4),
		vcv.WithDimensions(3),
		vcv.WithSize(2),
		vcv.WithPosition(-1),
	)

	require.Equal(t, fromOpts.Name(), fromParams.Name())
	require.Equal(t, fromOpts.Location(), fromParams.Location())
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			require.Equal(t, fromOpts.At(i, j), fromParams.At(i, j), "entry (%d,%d)", i, j)
		}
	}
}

// TestParams_SliceIsolation verifies that Build copies the vector fields,
// so later caller mutation cannot reach the object.
func TestParams_SliceIsolation(t *testing.T) {
	p := vcv.DefaultParams()
	p.Positions = []float64{1, 2}
	obj, err := p.Build()
	require.NoError(t, err)
	p.Positions[0] = 99
	require.Equal(t, []float64{1, 2}, obj.Location())
}

// TestBuildBatch_OrderPreserved verifies the 1:1, order-preserving mapping
// from rows to objects.
func TestBuildBatch_OrderPreserved(t *testing.T) {
	rows := make([]vcv.Params, 0, 4)
	for _, d := range []int{1, 2, 5, 3} {
		p := vcv.DefaultParams()
		p.Dimensions = d
		rows = append(rows, p)
	}
	objs, err := vcv.BuildBatch(rows)
	require.NoError(t, err)
	require.Len(t, objs, len(rows))
	for i, obj := range objs {
		require.Equal(t, rows[i].Dimensions, obj.Dim(), "row %d", i)
	}
}

// TestBuildBatch_Empty verifies that an empty batch yields an empty result.
func TestBuildBatch_Empty(t *testing.T) {
	objs, err := vcv.BuildBatch(nil)
	require.NoError(t, err)
	require.Empty(t, objs)
}

// TestBuildBatch_Atomic verifies fail-fast semantics: the first bad row
// aborts the batch, no partial slice escapes, the row index and name are in
// the message and the sentinel stays errors.Is-matchable.
func TestBuildBatch_Atomic(t *testing.T) {
	good := vcv.DefaultParams()
	bad := vcv.DefaultParams()
	bad.Name = "broken"
	bad.Shape = 2

	objs, err := vcv.BuildBatch([]vcv.Params{good, bad, good})
	require.Nil(t, objs)
	AssertErrorIs(t, err, vcv.ErrInvalidShape)
	require.True(t, strings.Contains(err.Error(), "row 1"), "error must name the failing row: %v", err)
	require.True(t, strings.Contains(err.Error(), "broken"), "error must carry the row name: %v", err)

	// Unnamed rows report the index only.
	bad.Name = ""
	_, err = vcv.BuildBatch([]vcv.Params{bad})
	require.True(t, strings.Contains(err.Error(), "row 0"), "error must name the failing row: %v", err)
}
