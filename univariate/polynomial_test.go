package univariate_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/require"

	"github.com/protogalaxy/verifier/univariate"
)

func elem(v uint64) fr.Element {
	var e fr.Element
	e.SetUint64(v)
	return e
}

func requireEq(t *testing.T, got, want fr.Element) {
	t.Helper()
	require.True(t, got.Equal(&want), "got %s want %s", got.String(), want.String())
}

func TestEvalHorner(t *testing.T) {
	// p(X) = 1 + 2X + 3X^2, at X=2: 1 + 4 + 12 = 17
	p := univariate.FromCoeffs([]fr.Element{elem(1), elem(2), elem(3)})
	got := p.Eval(elem(2))
	requireEq(t, got, elem(17))
}

func TestIFFTRoundTrip(t *testing.T) {
	evals := []fr.Element{elem(1), elem(2), elem(3), elem(4)}
	poly, err := univariate.IFFT(evals)
	require.NoError(t, err)

	points, err := univariate.CyclicSubgroup(2)
	require.NoError(t, err)
	for i, x := range points {
		requireEq(t, poly.Eval(x), evals[i])
	}
}

func TestCosetIFFTRoundTrip(t *testing.T) {
	evals := []fr.Element{elem(5), elem(6), elem(7), elem(8)}
	shift := elem(3)

	poly, err := univariate.CosetIFFT(evals, shift)
	require.NoError(t, err)

	points, err := univariate.CyclicSubgroup(2)
	require.NoError(t, err)
	for i, x := range points {
		var shifted fr.Element
		shifted.Mul(&shift, &x)
		requireEq(t, poly.Eval(shifted), evals[i])
	}
}

func TestEvalVanishingPoly(t *testing.T) {
	points, err := univariate.CyclicSubgroup(3)
	require.NoError(t, err)
	for _, x := range points {
		z := univariate.EvalVanishingPoly(8, x)
		require.True(t, z.IsZero())
	}

	z := univariate.EvalVanishingPoly(8, elem(9999))
	require.False(t, z.IsZero())
}

func TestEvalLagrangeBasis0(t *testing.T) {
	points, err := univariate.CyclicSubgroup(2)
	require.NoError(t, err)

	for i, x := range points {
		l0 := univariate.EvalLagrangeBasis0(x, 2)
		if i == 0 {
			requireEq(t, l0, elem(1))
		} else {
			require.True(t, l0.IsZero())
		}
	}
}
