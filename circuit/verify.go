package circuit

import (
	"fmt"

	"github.com/consensys/gnark/frontend"

	"github.com/protogalaxy/verifier/algebra"
	"github.com/protogalaxy/verifier/internal/profiling"
)

// Circuit is the in-circuit ProtoGalaxy verifier: every field below is
// an assigned cell (or a slice of them); Define re-derives the same
// (δ, α, γ) schedule the off-circuit verifier does, folds the instance
// scalars, and asserts the result against the new accumulator's public
// outputs, so an outer IVC step circuit can chain Circuit instances
// across folding rounds.
//
// W_commitments are carried as raw (x, y) coordinate pairs: on this
// curve pairing they are already elements of the circuit's native
// field, so only the BLS12-377 scalar-field values (instances,
// challenges, betas, e) need the scalar-to-base reinterpretation, and
// it happens before assignment, outside the circuit. The commitments
// are absorbed into the transcript but never folded here — their
// folding happens on the companion curve, so the output accumulator
// exposes the input accumulator's commitments unchanged.
type Circuit struct {
	PPDigestX frontend.Variable
	PPDigestY frontend.Variable

	AccWCommitmentsX []frontend.Variable
	AccWCommitmentsY []frontend.Variable
	AccInstances     [][]frontend.Variable
	AccChallenges    []frontend.Variable
	AccBetas         []frontend.Variable
	AccE             frontend.Variable

	IncWCommitmentsX [][]frontend.Variable
	IncWCommitmentsY [][]frontend.Variable
	IncInstances     [][][]frontend.Variable
	IncChallenges    [][]frontend.Variable

	ProofPolyF []frontend.Variable
	ProofPolyK []frontend.Variable

	// LogLagrangeDomain is fixed at circuit-compile time, not an
	// assigned cell: it is determined by the fold arity L+1, which the
	// circuit's shape already commits to via the length of
	// IncInstances.
	LogLagrangeDomain int `gnark:"-"`

	// Profile, when set, collects a per-stage cost figure while the
	// circuit is built: the number of absorbed elements for the
	// transcript, a fixed per-operation estimate for the other stages.
	// Never part of the witness.
	Profile *profiling.Collector `gnark:"-"`

	NewE          frontend.Variable     `gnark:",public"`
	NewBetas      []frontend.Variable   `gnark:",public"`
	NewInstances  [][]frontend.Variable `gnark:",public"`
	NewChallenges []frontend.Variable   `gnark:",public"`
}

// Define implements frontend.Circuit.
func (c *Circuit) Define(api frontend.API) error {
	ro, err := NewRO(api)
	if err != nil {
		return fmt.Errorf("circuit: build transcript: %w", err)
	}

	absorbed := 0
	absorbInstance := func(wx, wy []frontend.Variable, instances [][]frontend.Variable, challenges []frontend.Variable) {
		for i := range wx {
			ro.AbsorbPoint(wx[i], wy[i])
			absorbed += 2
		}
		for _, col := range instances {
			ro.AbsorbFieldIter(col)
			absorbed += len(col)
		}
		ro.AbsorbFieldIter(challenges)
		absorbed += len(challenges)
	}

	ro.AbsorbPoint(c.PPDigestX, c.PPDigestY)
	absorbInstance(c.AccWCommitmentsX, c.AccWCommitmentsY, c.AccInstances, c.AccChallenges)
	ro.AbsorbFieldIter(c.AccBetas)
	ro.AbsorbField(c.AccE)
	for i := range c.IncInstances {
		absorbInstance(c.IncWCommitmentsX[i], c.IncWCommitmentsY[i], c.IncInstances[i], c.IncChallenges[i])
	}
	delta := ro.Squeeze()

	ro.AbsorbFieldIter(c.ProofPolyF)
	alpha := ro.Squeeze()

	ro.AbsorbFieldIter(c.ProofPolyK)
	gamma := ro.Squeeze()

	c.Profile.Add("transcript.absorb", int64(absorbed))

	betaStar := CalculateBetasStroke(api, c.AccBetas, alpha, delta)
	c.Profile.Add("beta_stroke", int64(2*len(betaStar)))

	one := frontend.Variable(1)
	gammaPowers := NewValuePowers(api, one, gamma)
	alphaPowers := NewValuePowers(api, one, alpha)

	fAtAlpha := AssignedUnivariatePoly{Coeffs: c.ProofPolyF}.Eval(api, alphaPowers)
	kAtGamma := AssignedUnivariatePoly{Coeffs: c.ProofPolyK}.Eval(api, gammaPowers)
	c.Profile.Add("poly_eval", int64(2*(len(c.ProofPolyF)+len(c.ProofPolyK))))

	lj := algebra.LagrangeCoefficients(Wire(api), uint32(c.LogLagrangeDomain), gammaPowers)
	z := EvalVanishingPoly(api, c.LogLagrangeDomain, gammaPowers)
	c.Profile.Add("lagrange", int64(6*len(lj)))

	newE := api.Add(api.Mul(fAtAlpha, lj[0]), api.Mul(z, kAtGamma))

	all := make([]AssignedPlonkInstance, 0, 1+len(c.IncInstances))
	all = append(all, AssignedPlonkInstance{Instances: c.AccInstances, Challenges: c.AccChallenges})
	for i := range c.IncInstances {
		all = append(all, AssignedPlonkInstance{Instances: c.IncInstances[i], Challenges: c.IncChallenges[i]})
	}
	if len(all) != len(lj) {
		return fmt.Errorf("circuit: lagrange domain size %d does not match %d instances", len(lj), len(all))
	}
	folded := FoldInstances(api, all, lj)
	c.Profile.Add("fold_instances", int64(2*len(all)*(len(folded.Challenges)+len(folded.Instances))))

	api.AssertIsEqual(c.NewE, newE)
	for i := range betaStar {
		api.AssertIsEqual(c.NewBetas[i], betaStar[i])
	}
	for col := range folded.Instances {
		for row := range folded.Instances[col] {
			api.AssertIsEqual(c.NewInstances[col][row], folded.Instances[col][row])
		}
	}
	for i := range folded.Challenges {
		api.AssertIsEqual(c.NewChallenges[i], folded.Challenges[i])
	}

	return nil
}
