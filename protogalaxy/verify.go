package protogalaxy

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/protogalaxy/verifier/algebra"
	"github.com/protogalaxy/verifier/plonkstate"
	"github.com/protogalaxy/verifier/polyctx"
	"github.com/protogalaxy/verifier/sps"
	"github.com/protogalaxy/verifier/univariate"
)

// Verify runs one off-circuit ProtoGalaxy fold step: SPS-checks every
// incoming instance's transcript, regenerates (δ, α, γ), updates the
// β vector, computes the error term e, and folds the instance
// scalars. W_commitments are carried through unchanged; folding them
// is deferred to the companion curve's circuit, not an omission.
func Verify(ctx polyctx.Context, s *plonkstate.Structure, vp VerifierParam, acc Accumulator, incoming []*Incoming, proof Proof) (AccumulatorInstance, error) {
	if vp.ProtocolVersion.NE(Version) {
		return AccumulatorInstance{}, fmt.Errorf("protogalaxy: protocol version %s not supported, this build implements %s", vp.ProtocolVersion, Version)
	}

	for i, in := range incoming {
		if err := sps.Verify(s, in.Ins); err != nil {
			return AccumulatorInstance{}, fmt.Errorf("protogalaxy: sps verify incoming[%d]: %w", i, err)
		}
	}

	incomingIns := make([]plonkstate.PlonkInstance, len(incoming))
	for i, in := range incoming {
		incomingIns[i] = in.Ins
	}

	delta, alpha, gamma, err := GenerateChallenges(vp, acc.AccumulatorInstance, incomingIns, proof)
	if err != nil {
		return AccumulatorInstance{}, fmt.Errorf("protogalaxy: generate challenges: %w", err)
	}

	betaStar := NewBetaStrokeIter(acc.Betas, alpha, delta).Collect()

	e := algebra.CalculateE[fr.Element](algebra.BLS12377{}, proof.PolyF.Coeffs(), proof.PolyK.Coeffs(), alpha, gamma, ctx.LagrangeDomain())

	newIns, err := foldInstances(ctx, acc.Ins, incomingIns, gamma)
	if err != nil {
		return AccumulatorInstance{}, fmt.Errorf("protogalaxy: fold instances: %w", err)
	}

	return AccumulatorInstance{
		Ins:   newIns,
		Betas: betaStar,
		E:     e,
	}, nil
}

// foldInstances folds the scalar parts of the accumulator and every
// incoming instance with the Lagrange basis at γ:
// new.instances[k] = Σ_j L_j(γ)·all[j].instances[k], same recipe for
// challenges, and W_commitments carried through unchanged.
func foldInstances(ctx polyctx.Context, acc plonkstate.PlonkInstance, incoming []plonkstate.PlonkInstance, gamma fr.Element) (plonkstate.PlonkInstance, error) {
	lagrangeLog := ctx.LagrangeDomain()
	n := 1 << lagrangeLog
	if n != len(incoming)+1 {
		return plonkstate.PlonkInstance{}, fmt.Errorf("protogalaxy: lagrange domain size %d does not match %d traces", n, len(incoming)+1)
	}

	coeffs := make([]fr.Element, n)
	for j := 0; j < n; j++ {
		c, err := univariate.EvalLagrangeBasis(j, gamma, lagrangeLog)
		if err != nil {
			return plonkstate.PlonkInstance{}, fmt.Errorf("protogalaxy: eval L_%d(gamma): %w", j, err)
		}
		coeffs[j] = c
	}

	all := make([]plonkstate.PlonkInstance, 0, n)
	all = append(all, acc)
	all = append(all, incoming...)

	newInstances := make([][]fr.Element, len(acc.Instances))
	for c := range newInstances {
		newInstances[c] = make([]fr.Element, len(acc.Instances[c]))
		for r := range newInstances[c] {
			var sum fr.Element
			for j, inst := range all {
				var term fr.Element
				term.Mul(&coeffs[j], &inst.Instances[c][r])
				sum.Add(&sum, &term)
			}
			newInstances[c][r] = sum
		}
	}

	newChallenges := make([]fr.Element, len(acc.Challenges))
	for i := range newChallenges {
		var sum fr.Element
		for j, inst := range all {
			var term fr.Element
			term.Mul(&coeffs[j], &inst.Challenges[i])
			sum.Add(&sum, &term)
		}
		newChallenges[i] = sum
	}

	return plonkstate.PlonkInstance{
		WCommitments: acc.WCommitments,
		Instances:    newInstances,
		Challenges:   newChallenges,
	}, nil
}
