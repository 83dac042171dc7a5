package protogalaxy_test

import (
	"math/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/require"

	"github.com/protogalaxy/verifier/foldedwitness"
	"github.com/protogalaxy/verifier/plonkstate"
	"github.com/protogalaxy/verifier/polyctx"
	"github.com/protogalaxy/verifier/protogalaxy"
	"github.com/protogalaxy/verifier/univariate"
)

func elem(v uint64) fr.Element {
	var e fr.Element
	e.SetUint64(v)
	return e
}

// singleGateStructure is one q_L*a + q_O*c = 0 gate ("a == c" up to
// sign) over 2^k rows, 3 witness columns and no SPS rounds — small
// enough to exercise compute_F/compute_G/compute_K end to end without
// the complication of a non-trivial SPS transcript.
func singleGateStructure(k uint32) *plonkstate.Structure {
	one := elem(1)
	var negOne fr.Element
	negOne.Neg(&one)
	gate := plonkstate.Gate{QL: one, QO: negOne}
	return plonkstate.NewStructure(k, []plonkstate.Gate{gate}, 0, 3, nil)
}

func zeroWitness(k uint32, cols int) plonkstate.Witness {
	rows := 1 << k
	w := make([][]fr.Element, cols)
	for c := range w {
		w[c] = make([]fr.Element, rows)
	}
	return plonkstate.Witness{W: w}
}

func randomWitness(k uint32, cols int, rnd *rand.Rand) plonkstate.Witness {
	w := zeroWitness(k, cols)
	for c := range w.W {
		for r := range w.W[c] {
			w.W[c][r] = elem(rnd.Uint64())
		}
	}
	return w
}

// identityFoldProof builds the all-zero proof: since both the
// accumulator and the sole incoming trace are all-zero witnesses
// (trivially satisfying), F ≡ 0 and G ≡ 0, so K ≡ 0 too.
func identityFoldProof(ctx polyctx.Context) protogalaxy.Proof {
	return protogalaxy.Proof{
		PolyF: univariate.NewZeroed(int(ctx.FFTPointsCountF())),
		PolyK: univariate.NewZeroed(int(uint64(1) << ctx.FFTLogDomainSizeK())),
	}
}

// collectLeavesPadded re-derives the padded gate-evaluation sequence
// independently of the engines, straight from IterEvaluateWitness.
func collectLeavesPadded(t *testing.T, s *plonkstate.Structure, trace plonkstate.GetWitness, padded uint64) []fr.Element {
	t.Helper()
	leaves := make([]fr.Element, padded)
	i := 0
	plonkstate.IterEvaluateWitness(s, trace)(func(v fr.Element, err error) bool {
		require.NoError(t, err)
		leaves[i] = v
		i++
		return true
	})
	return leaves
}

// powAt computes pow_i(v) = Π_{h: bit h of i set} v[h], the tree
// weight the direct (non-tree) formulas for F and G use.
func powAt(i int, v []fr.Element) fr.Element {
	out := elem(1)
	for h := 0; h < len(v); h++ {
		if i&(1<<h) != 0 {
			out.Mul(&out, &v[h])
		}
	}
	return out
}

func TestIdentityFoldScenario(t *testing.T) {
	const k = uint32(2)
	s := singleGateStructure(k)
	ctx, err := polyctx.New(s, 1)
	require.NoError(t, err)

	acc := protogalaxy.TrivialAccumulator(s, ctx.BetasCount(), 1)
	incoming := &protogalaxy.Incoming{
		Ins:     plonkstate.Trivial(s, 1),
		Witness: zeroWitness(k, 3),
	}

	fPoly, err := protogalaxy.ComputeF(ctx, s, acc.Betas, elem(7), &acc)
	require.NoError(t, err)
	require.True(t, fPoly.IsZero(), "F must be zero on an all-zero witness")

	gPoly, err := protogalaxy.ComputeG(ctx, s, acc.Betas, &acc, acc.Ins.Challenges, []plonkstate.GetWitness{incoming}, [][]fr.Element{incoming.Ins.Challenges})
	require.NoError(t, err)
	require.True(t, gPoly.IsZero(), "G must be zero when accumulator and incoming are both trivial")

	var fAlpha fr.Element
	kPoly, err := protogalaxy.ComputeKFromG(ctx, gPoly, fAlpha)
	require.NoError(t, err)
	require.True(t, kPoly.IsZero(), "K must be zero when G and F(alpha) are both zero")

	vp, err := protogalaxy.NewVerifierParam(s)
	require.NoError(t, err)
	proof := identityFoldProof(ctx)

	newAcc, err := protogalaxy.Verify(ctx, s, vp, acc, []*protogalaxy.Incoming{incoming}, proof)
	require.NoError(t, err)

	require.True(t, newAcc.E.IsZero())
	require.Equal(t, len(acc.Betas), len(newAcc.Betas))
	require.Equal(t, acc.Ins.WCommitments, newAcc.Ins.WCommitments)
}

func TestVerifyRejectsWrongProtocolVersion(t *testing.T) {
	const k = uint32(2)
	s := singleGateStructure(k)
	ctx, err := polyctx.New(s, 1)
	require.NoError(t, err)

	acc := protogalaxy.TrivialAccumulator(s, ctx.BetasCount(), 1)
	incoming := &protogalaxy.Incoming{Ins: plonkstate.Trivial(s, 1), Witness: zeroWitness(k, 3)}

	vp, err := protogalaxy.NewVerifierParam(s)
	require.NoError(t, err)
	vp.ProtocolVersion.Major++

	_, err = protogalaxy.Verify(ctx, s, vp, acc, []*protogalaxy.Incoming{incoming}, identityFoldProof(ctx))
	require.Error(t, err)
}

// TestSatisfiedTraceFold folds a satisfying, nonzero trace with itself
// as the accumulator: every gate evaluates to zero on every row, so F
// and G vanish identically even though the witness doesn't.
func TestSatisfiedTraceFold(t *testing.T) {
	const k = uint32(3)
	s := singleGateStructure(k)
	ctx, err := polyctx.New(s, 1)
	require.NoError(t, err)
	rnd := rand.New(rand.NewSource(1))

	// a == c satisfies q_L*a - c = 0; column b is a free wire.
	w := randomWitness(k, 3, rnd)
	copy(w.W[2], w.W[0])
	trace := &plonkstate.Trace{Witness: w}

	acc := protogalaxy.TrivialAccumulator(s, ctx.BetasCount(), 1)
	acc.W = w

	betas := make([]fr.Element, ctx.BetasCount())
	for i := range betas {
		betas[i] = elem(rnd.Uint64())
	}

	fPoly, err := protogalaxy.ComputeF(ctx, s, betas, elem(rnd.Uint64()), trace)
	require.NoError(t, err)
	require.True(t, fPoly.IsZero(), "F must vanish on a satisfying trace")

	gPoly, err := protogalaxy.ComputeG(ctx, s, betas, &acc, nil, []plonkstate.GetWitness{trace}, [][]fr.Element{nil})
	require.NoError(t, err)
	require.True(t, gPoly.IsZero(), "G must vanish when every folded trace satisfies the linear gate")
}

// TestComputeFMatchesDirectFormula cross-checks the tree reduction
// against the direct summation F(X) = Σ_i pow_i(β + X·δ)·f_i, with the
// β'-vector (β_h + X·δ^(2^h)) evaluated straight, no tree.
func TestComputeFMatchesDirectFormula(t *testing.T) {
	const k = uint32(2)
	s := singleGateStructure(k)
	ctx, err := polyctx.New(s, 1)
	require.NoError(t, err)
	rnd := rand.New(rand.NewSource(2))

	trace := &plonkstate.Trace{Witness: randomWitness(k, 3, rnd)}
	betas := make([]fr.Element, ctx.BetasCount())
	for i := range betas {
		betas[i] = elem(rnd.Uint64())
	}
	delta := elem(rnd.Uint64())

	fPoly, err := protogalaxy.ComputeF(ctx, s, betas, delta, trace)
	require.NoError(t, err)
	require.False(t, fPoly.IsZero(), "a random witness should not satisfy the gate")

	leaves := collectLeavesPadded(t, s, trace, ctx.CountOfEvaluationPadded())

	logF := uint32(0)
	for uint64(1)<<logF < ctx.FFTPointsCountF() {
		logF++
	}
	points, err := univariate.CyclicSubgroup(logF)
	require.NoError(t, err)

	for _, x := range points {
		betaPrime := make([]fr.Element, len(betas))
		deltaPow := delta
		for h := range betas {
			var term fr.Element
			term.Mul(&x, &deltaPow)
			betaPrime[h].Add(&betas[h], &term)
			deltaPow.Square(&deltaPow)
		}

		var direct fr.Element
		for i, leaf := range leaves {
			w := powAt(i, betaPrime)
			var term fr.Element
			term.Mul(&w, &leaf)
			direct.Add(&direct, &term)
		}

		got := fPoly.Eval(x)
		require.True(t, got.Equal(&direct), "F(X) diverges from the direct formula")
	}
}

// TestComputeGMatchesDirectFormula cross-checks compute_G for L = 3
// (fold arity 4) against the direct summation over the folded witness
// at each point of the G-domain.
func TestComputeGMatchesDirectFormula(t *testing.T) {
	const k = uint32(2)
	const l = 3
	s := singleGateStructure(k)
	ctx, err := polyctx.New(s, l)
	require.NoError(t, err)
	rnd := rand.New(rand.NewSource(3))

	acc := protogalaxy.TrivialAccumulator(s, ctx.BetasCount(), 1)
	acc.W = randomWitness(k, 3, rnd)

	incoming := make([]plonkstate.GetWitness, l)
	incomingChallenges := make([][]fr.Element, l)
	for i := range incoming {
		incoming[i] = &plonkstate.Trace{Witness: randomWitness(k, 3, rnd)}
	}

	betaStar := make([]fr.Element, ctx.BetasCount())
	for i := range betaStar {
		betaStar[i] = elem(rnd.Uint64())
	}

	gPoly, err := protogalaxy.ComputeG(ctx, s, betaStar, &acc, nil, incoming, incomingChallenges)
	require.NoError(t, err)
	require.False(t, gPoly.IsZero(), "random witnesses should not satisfy the gate")

	set, err := foldedwitness.New(ctx.LagrangeDomain(), &acc, nil, incoming, incomingChallenges)
	require.NoError(t, err)

	points, err := univariate.CyclicSubgroup(ctx.FFTLogDomainSizeG())
	require.NoError(t, err)

	for _, x := range points {
		leaves := collectLeavesPadded(t, s, set.At(x), ctx.CountOfEvaluationPadded())

		var direct fr.Element
		for i, leaf := range leaves {
			w := powAt(i, betaStar)
			var term fr.Element
			term.Mul(&w, &leaf)
			direct.Add(&direct, &term)
		}

		got := gPoly.Eval(x)
		require.True(t, got.Equal(&direct), "G(X) diverges from the direct summation")
	}
}

func TestComputeFNonzeroOnSingleViolatingCell(t *testing.T) {
	const k = uint32(2)
	s := singleGateStructure(k)
	ctx, err := polyctx.New(s, 1)
	require.NoError(t, err)

	w := zeroWitness(k, 3)
	// a single nonzero witness cell violates the gate (a - c = 0), so
	// the corresponding leaf is nonzero and F should be nonzero too.
	w.W[0][0] = elem(123)
	trace := &plonkstate.Trace{Witness: w}

	fPoly, err := protogalaxy.ComputeF(ctx, s, make([]fr.Element, ctx.BetasCount()), elem(9), trace)
	require.NoError(t, err)
	require.False(t, fPoly.IsZero())
}
