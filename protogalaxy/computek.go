package protogalaxy

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr/fft"

	"github.com/protogalaxy/verifier/internal/assert"
	"github.com/protogalaxy/verifier/plonkstate"
	"github.com/protogalaxy/verifier/polyctx"
	"github.com/protogalaxy/verifier/univariate"
)

// cosetShift is a primitive cube root of unity ζ in Fr, used to shift
// the K-domain samples off the Lagrange domain's roots of unity so
// Z(X) never vanishes on a sample. 3 divides r-1 in this field, so a
// primitive cube root exists.
var cosetShift = computeCosetShift()

func computeCosetShift() fr.Element {
	// g generates the full multiplicative group, so g^((r-1)/3) has
	// exact order 3.
	g := fft.NewDomain(2).FrMultiplicativeGen

	exp := new(big.Int).Sub(fr.Modulus(), big.NewInt(1))
	exp.Div(exp, big.NewInt(3))

	var zeta fr.Element
	zeta.Exp(g, exp)
	return zeta
}

// ComputeK computes G over the folded traces and derives K from it in
// one step, for provers that do not keep G around.
func ComputeK(ctx polyctx.Context, s *plonkstate.Structure, betaStar []fr.Element, fAlpha fr.Element, accumulator plonkstate.GetWitness, accChallenges []fr.Element, incoming []plonkstate.GetWitness, incomingChallenges [][]fr.Element) (univariate.Poly, error) {
	polyG, err := ComputeG(ctx, s, betaStar, accumulator, accChallenges, incoming, incomingChallenges)
	if err != nil {
		return univariate.Poly{}, err
	}
	return ComputeKFromG(ctx, polyG, fAlpha)
}

// ComputeKFromG derives K = (G - F(α)·L_0) / Z on a coset of the
// K-domain, returning its coefficients via coset-IFFT.
func ComputeKFromG(ctx polyctx.Context, polyG univariate.Poly, fAlpha fr.Element) (univariate.Poly, error) {
	logK := ctx.FFTLogDomainSizeK()
	kSize := uint64(1) << logK

	points, err := univariate.CyclicSubgroup(logK)
	if err != nil {
		return univariate.Poly{}, fmt.Errorf("protogalaxy: compute_K domain: %w", err)
	}

	lagrangeLog := ctx.LagrangeDomain()
	lagrangeN := uint64(1) << lagrangeLog

	shifted := make([]fr.Element, kSize)
	evals := make([]fr.Element, kSize)
	for i, x := range points {
		var sx fr.Element
		sx.Mul(&x, &cosetShift)
		shifted[i] = sx

		z := univariate.EvalVanishingPoly(lagrangeN, sx)
		if err := assert.True(!z.IsZero(), "compute_K: Z(X) vanished on coset sample %d", i); err != nil {
			return univariate.Poly{}, err
		}

		l0, err := univariate.EvalLagrangeBasis(0, sx, lagrangeLog)
		if err != nil {
			return univariate.Poly{}, err
		}

		gx := polyG.Eval(sx)

		var fL0, num, zInv, k fr.Element
		fL0.Mul(&fAlpha, &l0)
		num.Sub(&gx, &fL0)
		zInv.Inverse(&z)
		k.Mul(&num, &zInv)
		evals[i] = k
	}

	poly, err := univariate.CosetIFFT(evals, cosetShift)
	if err != nil {
		return univariate.Poly{}, err
	}

	// debug-mandatory correctness check: F(α)·L_0(X) +
	// Z(X)·K(X) == G(X) on every coset sample.
	for i, sx := range shifted {
		l0, _ := univariate.EvalLagrangeBasis(0, sx, lagrangeLog)
		z := univariate.EvalVanishingPoly(lagrangeN, sx)
		kx := poly.Eval(sx)

		var lhs, term fr.Element
		lhs.Mul(&fAlpha, &l0)
		term.Mul(&z, &kx)
		lhs.Add(&lhs, &term)

		gx := polyG.Eval(sx)
		if err := assert.True(lhs.Equal(&gx), "compute_K: identity failed at coset sample %d", i); err != nil {
			return univariate.Poly{}, err
		}
	}

	return poly, nil
}
