package circuit_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	bw6fr "github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/protogalaxy/verifier/algebra"
	"github.com/protogalaxy/verifier/circuit"
)

// vanishingCircuit asserts circuit.EvalVanishingPoly against a public
// expected value computed with the native-field instantiation of the
// same primitive.
type vanishingCircuit struct {
	X        frontend.Variable
	LogN     int               `gnark:"-"`
	Expected frontend.Variable `gnark:",public"`
}

func (c *vanishingCircuit) Define(api frontend.API) error {
	powers := circuit.NewValuePowers(api, 1, c.X)
	got := circuit.EvalVanishingPoly(api, c.LogN, powers)
	api.AssertIsEqual(got, c.Expected)
	return nil
}

// lagrangeCircuit asserts circuit.EvalLagrangePoly, including the
// x = ω^i point where the closed form degenerates to 0/0.
type lagrangeCircuit struct {
	X        frontend.Variable
	Index    int               `gnark:"-"`
	LogN     int               `gnark:"-"`
	Expected frontend.Variable `gnark:",public"`
}

func (c *lagrangeCircuit) Define(api frontend.API) error {
	powers := circuit.NewValuePowers(api, 1, c.X)
	got := circuit.EvalLagrangePoly(api, c.Index, c.LogN, powers)
	api.AssertIsEqual(got, c.Expected)
	return nil
}

func nativeLagrange(i int, x bw6fr.Element, logN uint32) bw6fr.Element {
	f := algebra.BW6761{}
	powers := algebra.NewValuePowers[bw6fr.Element](f, f.One(), x)
	return algebra.EvalLagrange[bw6fr.Element](f, i, logN, powers)
}

func TestEvalVanishingPolyOffOnEquivalence(t *testing.T) {
	const logN = 2
	f := algebra.BW6761{}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 10
	properties := gopter.NewProperties(parameters)

	properties.Property("vanishing poly matches the native-field evaluation", prop.ForAll(
		func(v uint64) bool {
			x := base(v)
			powers := algebra.NewValuePowers[bw6fr.Element](f, f.One(), x)
			want := algebra.EvalVanishing(f, 1<<logN, powers)

			witness := &vanishingCircuit{
				X:        baseVar(x),
				Expected: baseVar(want),
			}
			return test.IsSolved(&vanishingCircuit{LogN: logN}, witness, ecc.BW6_761.ScalarField()) == nil
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestEvalLagrangePolyOffOnEquivalence(t *testing.T) {
	const logN = 2

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 10
	properties := gopter.NewProperties(parameters)

	properties.Property("lagrange poly matches the native-field evaluation", prop.ForAll(
		func(v uint64, idx int) bool {
			i := idx % (1 << logN)
			x := base(v)
			want := nativeLagrange(i, x, logN)

			witness := &lagrangeCircuit{
				X:        baseVar(x),
				Expected: baseVar(want),
			}
			return test.IsSolved(&lagrangeCircuit{Index: i, LogN: logN}, witness, ecc.BW6_761.ScalarField()) == nil
		},
		gen.UInt64(),
		gen.IntRange(0, (1<<logN)-1),
	))

	properties.TestingRun(t)
}

// TestEvalLagrangePolyEdgeCase directly exercises x = ω^i, where
// numerator and denominator of the closed form both vanish; both
// sides must agree on the value 1.
func TestEvalLagrangePolyEdgeCase(t *testing.T) {
	const logN = 2
	f := algebra.BW6761{}

	root := f.RootOfUnity(logN)
	x := f.One()
	for i := 0; i < 1<<logN; i++ {
		want := nativeLagrange(i, x, logN)
		var one bw6fr.Element
		one.SetOne()
		if !want.Equal(&one) {
			t.Fatalf("native L_%d(w^%d) = %s, want 1", i, i, want.String())
		}

		witness := &lagrangeCircuit{
			X:        baseVar(x),
			Expected: baseVar(want),
		}
		if err := test.IsSolved(&lagrangeCircuit{Index: i, LogN: logN}, witness, ecc.BW6_761.ScalarField()); err != nil {
			t.Fatalf("circuit rejected the x = w^%d point: %v", i, err)
		}

		x = f.Mul(x, root)
	}
}
