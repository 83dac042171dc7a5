// Package foldedwitness presents the accumulator and its incoming
// traces as a single virtual trace at any evaluation point X, without
// ever materializing the combined witness for more than one point at
// a time: compute_G asks for the view at each point of the G-domain in
// turn, and only that point's combination is built.
package foldedwitness

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/protogalaxy/verifier/plonkstate"
	"github.com/protogalaxy/verifier/univariate"
)

// ErrEmptyTraces is returned when Set is built with no incoming traces,
// matching spec's EmptyTracesNotAllowed.
var ErrEmptyTraces = errors.New("foldedwitness: empty traces not allowed")

// Set is the accumulator (index 0) plus the incoming traces (1..L)
// being folded over a Lagrange domain of size L+1.
type Set struct {
	traces            []plonkstate.GetWitness
	challenges        [][]fr.Element
	logLagrangeDomain uint32
}

// New builds a Set folding accumulator (index 0) with incoming (index
// 1..L) over a Lagrange domain of size 2^logLagrangeDomain == len(incoming)+1.
func New(logLagrangeDomain uint32, accumulator plonkstate.GetWitness, accChallenges []fr.Element, incoming []plonkstate.GetWitness, incomingChallenges [][]fr.Element) (*Set, error) {
	if len(incoming) == 0 {
		return nil, ErrEmptyTraces
	}
	if len(incoming) != len(incomingChallenges) {
		return nil, fmt.Errorf("foldedwitness: %d incoming traces but %d incoming challenge sets", len(incoming), len(incomingChallenges))
	}

	traces := make([]plonkstate.GetWitness, 0, len(incoming)+1)
	traces = append(traces, accumulator)
	traces = append(traces, incoming...)

	challenges := make([][]fr.Element, 0, len(incoming)+1)
	challenges = append(challenges, accChallenges)
	challenges = append(challenges, incomingChallenges...)

	want := 1 << logLagrangeDomain
	if len(traces) != want {
		return nil, fmt.Errorf("foldedwitness: %d traces (accumulator+incoming) but lagrange domain size is %d", len(traces), want)
	}

	return &Set{traces: traces, challenges: challenges, logLagrangeDomain: logLagrangeDomain}, nil
}

// View is the virtual trace Σ L_j(x)·w_j at a single evaluation point x.
// Both the witness and the challenges are combined lazily on first
// access and memoized; nothing is computed until asked for.
type View struct {
	set        *Set
	x          fr.Element
	coeffsOnce bool
	coeffs     []fr.Element
	witness    *plonkstate.Witness
	challenges []fr.Element
}

// At returns the (unevaluated) virtual trace at evaluation point x.
func (s *Set) At(x fr.Element) *View {
	return &View{set: s, x: x}
}

// lagrangeCoeffs computes L_0(x)..L_{n-1}(x). It never errors in
// practice: EvalLagrangeBasis fails only for an index outside the
// domain of size n, and every j passed here lies inside it.
func (v *View) lagrangeCoeffs() []fr.Element {
	if v.coeffsOnce {
		return v.coeffs
	}
	n := 1 << v.set.logLagrangeDomain
	coeffs := make([]fr.Element, n)
	for j := 0; j < n; j++ {
		c, err := univariate.EvalLagrangeBasis(j, v.x, v.set.logLagrangeDomain)
		if err != nil {
			panic(fmt.Sprintf("foldedwitness: invalid lagrange domain: %v", err))
		}
		coeffs[j] = c
	}
	v.coeffs = coeffs
	v.coeffsOnce = true
	return coeffs
}

// GetWitness returns the combined witness w = Σ L_j(x)·w_j, columnwise,
// building it on first call and reusing it afterward. Satisfies
// plonkstate.GetWitness so a View can stand in anywhere a trace is
// expected, in particular as the input to IterEvaluateWitness.
func (v *View) GetWitness() *plonkstate.Witness {
	if v.witness != nil {
		return v.witness
	}
	coeffs := v.lagrangeCoeffs()

	base := v.set.traces[0].GetWitness()
	ncols := len(base.W)
	combined := make([][]fr.Element, ncols)
	for c := 0; c < ncols; c++ {
		nrows := len(base.W[c])
		combined[c] = make([]fr.Element, nrows)
		for r := 0; r < nrows; r++ {
			var acc fr.Element
			for j, tr := range v.set.traces {
				w := tr.GetWitness()
				var term fr.Element
				term.Mul(&coeffs[j], &w.W[c][r])
				acc.Add(&acc, &term)
			}
			combined[c][r] = acc
		}
	}
	v.witness = &plonkstate.Witness{W: combined}
	return v.witness
}

// GetChallenges returns the combined per-round challenges, combined
// with the same Lagrange coefficients as the witness columns.
func (v *View) GetChallenges() []fr.Element {
	if v.challenges != nil {
		return v.challenges
	}
	coeffs := v.lagrangeCoeffs()

	n := len(v.set.challenges[0])
	combined := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		var acc fr.Element
		for j, chals := range v.set.challenges {
			var term fr.Element
			term.Mul(&coeffs[j], &chals[i])
			acc.Add(&acc, &term)
		}
		combined[i] = acc
	}
	v.challenges = combined
	return combined
}
