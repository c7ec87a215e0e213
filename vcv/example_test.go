package vcv_test

import (
	"fmt"

	"github.com/katalvlaran/ovaloid/vcv"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleBuild
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	No options at all: the canonical unit, non-covarying, centered 2D
//	circle, i.e. the 2x2 identity at the origin.
func ExampleBuild() {
	obj, err := vcv.Build()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("dim=%d diag=[%.0f %.0f] location=%v\n",
		obj.Dim(), obj.At(0, 0), obj.At(1, 1), obj.Location())
	// Output:
	// dim=2 diag=[1 1] location=[0 0]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleBuild_options
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 3D ellipsoid of roundness 0.5 (lambda 1, axes e^0, e^-1/2, e^-1) with
//	covariance 0.4. Variances are the squared axes; the (0,1) entry is
//	C * axis_0 * axis_1.
func ExampleBuild_options() {
	obj, err := vcv.Build(
		vcv.WithDimensions(3),
		vcv.WithShape(0.5),
		vcv.WithCovariance(0.4),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	v := obj.Variances()
	fmt.Printf("variances=[%.3f %.3f %.3f] cov01=%.3f\n", v[0], v[1], v[2], obj.At(0, 1))
	// Output:
	// variances=[1.000 0.368 0.135] cov01=0.243
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleBuildBatch
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two named parameter rows in, two objects out, order preserved, each
//	carrying its row label.
func ExampleBuildBatch() {
	narrow := vcv.DefaultParams()
	narrow.Name = "narrow"
	narrow.Shape = 0.2

	round := vcv.DefaultParams()
	round.Name = "round"
	round.Dimensions = 4

	objs, err := vcv.BuildBatch([]vcv.Params{narrow, round})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, obj := range objs {
		fmt.Printf("%s: D=%d\n", obj.Name(), obj.Dim())
	}
	// Output:
	// narrow: D=2
	// round: D=4
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleAssemble
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Direct assembly of a two-axis spectrum under C = 0.8: squares on the
//	diagonal, C-scaled product off it.
func ExampleAssemble() {
	m, err := vcv.Assemble([]float64{1, 0.5}, 0.8)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("[%.2f %.2f; %.2f %.2f]\n", m.At(0, 0), m.At(0, 1), m.At(1, 0), m.At(1, 1))
	// Output:
	// [1.00 0.40; 0.40 0.25]
}

// //////////////////////////////////////////////////////////////////////////////
// ExamplePairwiseAngle
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Covariance read as geometry: C = 0.5 closes the right angle to 60
//	degrees.
func ExamplePairwiseAngle() {
	angle, err := vcv.PairwiseAngle(0.5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.0f degrees\n", angle)
	// Output:
	// 60 degrees
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleObject_RecoveredRoundness
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A fully collapsed 10D object (shape 0) reads back the spike area
//	1/(2*(10-1)).
func ExampleObject_RecoveredRoundness() {
	obj, err := vcv.Build(vcv.WithDimensions(10), vcv.WithShape(0))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	r, err := obj.RecoveredRoundness()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.3f\n", r)
	// Output:
	// 0.056
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleObject_MajorAxes
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The equicorrelated 2D sphere with C = 0.5 has eigenvalues 1.5 and 0.5;
//	semi-axes are their square roots.
func ExampleObject_MajorAxes() {
	obj, err := vcv.Build(vcv.WithCovariance(0.5))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	ax, err := obj.MajorAxes()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	values := ax.Values()
	semis := ax.SemiAxes()
	fmt.Printf("values=[%.1f %.1f] semi-axes=[%.3f %.3f]\n", values[0], values[1], semis[0], semis[1])
	// Output:
	// values=[1.5 0.5] semi-axes=[1.225 0.707]
}
