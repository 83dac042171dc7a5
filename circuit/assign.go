package circuit

import (
	"fmt"
	"math/big"

	blsfr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	bw6fr "github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"github.com/consensys/gnark/frontend"

	"github.com/protogalaxy/verifier/algebra"
	"github.com/protogalaxy/verifier/plonkstate"
	"github.com/protogalaxy/verifier/polyctx"
	"github.com/protogalaxy/verifier/protogalaxy"
	"github.com/protogalaxy/verifier/scalarbase"
)

// Outputs holds the new accumulator's scalar values in the circuit's
// native field: what the assigned cells inside Define must equal. An
// IVC driver computes these to assign the circuit's public outputs;
// the equivalence tests compare them against the assigned cells.
type Outputs struct {
	Delta, Alpha, Gamma bw6fr.Element

	E          bw6fr.Element
	Betas      []bw6fr.Element
	Instances  [][]bw6fr.Element
	Challenges []bw6fr.Element
}

// EvaluateOutputs runs the verifier's scalar computation in the
// circuit's native field: the challenges come from the shared sponge
// transcript (lossless across the two fields by truncation), and the
// β-stroke, e, and folded instances are the shared algebra primitives
// instantiated over BW6-761. Because Define instantiates the same
// primitives over assigned variables, the values here match the
// circuit's cells bit for bit.
func EvaluateOutputs(vp protogalaxy.VerifierParam, acc protogalaxy.AccumulatorInstance, incoming []plonkstate.PlonkInstance, proof protogalaxy.Proof, logLagrange uint32) (Outputs, error) {
	delta, alpha, gamma, err := protogalaxy.GenerateChallenges(vp, acc, incoming, proof)
	if err != nil {
		return Outputs{}, fmt.Errorf("circuit: generate challenges: %w", err)
	}

	f := algebra.BW6761{}
	d := scalarbase.ToBase(delta)
	a := scalarbase.ToBase(alpha)
	g := scalarbase.ToBase(gamma)

	betaStar := algebra.BetaStroke[bw6fr.Element](f, scalarbase.ToBaseSlice(acc.Betas), a, d)

	one := f.One()
	alphaPowers := algebra.NewValuePowers[bw6fr.Element](f, one, a)
	gammaPowers := algebra.NewValuePowers[bw6fr.Element](f, one, g)

	fAlpha := algebra.EvalUnivariate(f, scalarbase.ToBaseSlice(proof.PolyF.Coeffs()), alphaPowers)
	kGamma := algebra.EvalUnivariate(f, scalarbase.ToBaseSlice(proof.PolyK.Coeffs()), gammaPowers)

	lj := algebra.LagrangeCoefficients[bw6fr.Element](f, logLagrange, gammaPowers)
	z := algebra.EvalVanishing(f, uint64(1)<<logLagrange, gammaPowers)

	e := f.Add(f.Mul(fAlpha, lj[0]), f.Mul(z, kGamma))

	all := make([]plonkstate.PlonkInstance, 0, 1+len(incoming))
	all = append(all, acc.Ins)
	all = append(all, incoming...)
	if len(all) != len(lj) {
		return Outputs{}, fmt.Errorf("circuit: lagrange domain size %d does not match %d instances", len(lj), len(all))
	}

	instances := make([][]bw6fr.Element, len(acc.Ins.Instances))
	for c := range instances {
		instances[c] = make([]bw6fr.Element, len(acc.Ins.Instances[c]))
		for r := range instances[c] {
			sum := f.Zero()
			for j, inst := range all {
				sum = f.Add(sum, f.Mul(lj[j], scalarbase.ToBase(inst.Instances[c][r])))
			}
			instances[c][r] = sum
		}
	}

	challenges := make([]bw6fr.Element, len(acc.Ins.Challenges))
	for i := range challenges {
		sum := f.Zero()
		for j, inst := range all {
			sum = f.Add(sum, f.Mul(lj[j], scalarbase.ToBase(inst.Challenges[i])))
		}
		challenges[i] = sum
	}

	return Outputs{
		Delta: d, Alpha: a, Gamma: g,
		E:          e,
		Betas:      betaStar,
		Instances:  instances,
		Challenges: challenges,
	}, nil
}

// Shape allocates a Circuit whose slice lengths encode the fold's
// static parameters, ready to compile (or to drive the test solver).
func Shape(ctx polyctx.Context, s *plonkstate.Structure, numInstanceColumns, instanceRows int) *Circuit {
	l := ctx.InstancesToFold() - 1
	nRounds := s.NumChallenges

	cols := func() [][]frontend.Variable {
		out := make([][]frontend.Variable, numInstanceColumns)
		for i := range out {
			out[i] = make([]frontend.Variable, instanceRows)
		}
		return out
	}

	c := &Circuit{
		AccWCommitmentsX: make([]frontend.Variable, nRounds),
		AccWCommitmentsY: make([]frontend.Variable, nRounds),
		AccInstances:     cols(),
		AccChallenges:    make([]frontend.Variable, nRounds),
		AccBetas:         make([]frontend.Variable, ctx.BetasCount()),

		IncWCommitmentsX: make([][]frontend.Variable, l),
		IncWCommitmentsY: make([][]frontend.Variable, l),
		IncInstances:     make([][][]frontend.Variable, l),
		IncChallenges:    make([][]frontend.Variable, l),

		ProofPolyF: make([]frontend.Variable, ctx.FFTPointsCountF()),
		ProofPolyK: make([]frontend.Variable, uint64(1)<<ctx.FFTLogDomainSizeK()),

		LogLagrangeDomain: int(ctx.LagrangeDomain()),

		NewBetas:      make([]frontend.Variable, ctx.BetasCount()),
		NewInstances:  cols(),
		NewChallenges: make([]frontend.Variable, nRounds),
	}
	for i := 0; i < l; i++ {
		c.IncWCommitmentsX[i] = make([]frontend.Variable, nRounds)
		c.IncWCommitmentsY[i] = make([]frontend.Variable, nRounds)
		c.IncInstances[i] = cols()
		c.IncChallenges[i] = make([]frontend.Variable, nRounds)
	}
	return c
}

// Assign builds the full witness for one fold step: the inputs
// reinterpreted into the circuit field, and the public outputs from
// EvaluateOutputs.
func Assign(ctx polyctx.Context, vp protogalaxy.VerifierParam, acc protogalaxy.AccumulatorInstance, incoming []plonkstate.PlonkInstance, proof protogalaxy.Proof) (*Circuit, error) {
	out, err := EvaluateOutputs(vp, acc, incoming, proof, ctx.LagrangeDomain())
	if err != nil {
		return nil, err
	}

	scalars := func(xs []blsfr.Element) []frontend.Variable {
		vars := make([]frontend.Variable, len(xs))
		for i, x := range xs {
			vars[i] = baseConstant(scalarbase.ToBase(x))
		}
		return vars
	}
	instanceCols := func(cols [][]blsfr.Element) [][]frontend.Variable {
		vars := make([][]frontend.Variable, len(cols))
		for i, col := range cols {
			vars[i] = scalars(col)
		}
		return vars
	}
	baseSlice := func(xs []bw6fr.Element) []frontend.Variable {
		vars := make([]frontend.Variable, len(xs))
		for i, x := range xs {
			vars[i] = baseConstant(x)
		}
		return vars
	}
	pointCoords := func(ins plonkstate.PlonkInstance) (xs, ys []frontend.Variable) {
		xs = make([]frontend.Variable, len(ins.WCommitments))
		ys = make([]frontend.Variable, len(ins.WCommitments))
		for i, p := range ins.WCommitments {
			var bx, by big.Int
			p.X.BigInt(&bx)
			p.Y.BigInt(&by)
			xs[i], ys[i] = bx, by
		}
		return xs, ys
	}

	c := &Circuit{LogLagrangeDomain: int(ctx.LagrangeDomain())}

	var px, py big.Int
	vp.PPDigest.X.BigInt(&px)
	vp.PPDigest.Y.BigInt(&py)
	c.PPDigestX, c.PPDigestY = px, py

	c.AccWCommitmentsX, c.AccWCommitmentsY = pointCoords(acc.Ins)
	c.AccInstances = instanceCols(acc.Ins.Instances)
	c.AccChallenges = scalars(acc.Ins.Challenges)
	c.AccBetas = scalars(acc.Betas)
	c.AccE = baseConstant(scalarbase.ToBase(acc.E))

	c.IncWCommitmentsX = make([][]frontend.Variable, len(incoming))
	c.IncWCommitmentsY = make([][]frontend.Variable, len(incoming))
	c.IncInstances = make([][][]frontend.Variable, len(incoming))
	c.IncChallenges = make([][]frontend.Variable, len(incoming))
	for i, ins := range incoming {
		c.IncWCommitmentsX[i], c.IncWCommitmentsY[i] = pointCoords(ins)
		c.IncInstances[i] = instanceCols(ins.Instances)
		c.IncChallenges[i] = scalars(ins.Challenges)
	}

	c.ProofPolyF = scalars(proof.PolyF.Coeffs())
	c.ProofPolyK = scalars(proof.PolyK.Coeffs())

	c.NewE = baseConstant(out.E)
	c.NewBetas = baseSlice(out.Betas)
	c.NewInstances = make([][]frontend.Variable, len(out.Instances))
	for i, col := range out.Instances {
		c.NewInstances[i] = baseSlice(col)
	}
	c.NewChallenges = baseSlice(out.Challenges)

	return c, nil
}
