// Package plonkstate describes the PLONK constraint system and witness
// surface the folding verifier consumes. The constraint system itself
// (gate synthesis, witness generation, commitment scheme) is an
// external collaborator; this package only defines the read-only views
// the polynomial engines iterate over, plus a minimal gate-evaluation
// engine concrete enough to exercise and test them end to end.
package plonkstate

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/ronanh/intcomp"
)

// Gate is a single PLONK selector-weighted gate,
// q_L*a + q_R*b + q_M*a*b + q_O*c + q_C = 0, evaluated once per row.
// Structures with custom gates carry more than one.
type Gate struct {
	QL, QR, QM, QO, QC fr.Element
}

// Degree returns the algebraic degree of the gate in the witness
// columns: 2 if the multiplication selector is set, 1 otherwise.
func (g Gate) Degree() int {
	if !g.QM.IsZero() {
		return 2
	}
	return 1
}

// Eval evaluates the gate at witness row (a, b, c).
func (g Gate) Eval(a, b, c fr.Element) fr.Element {
	var acc, term fr.Element

	term.Mul(&g.QL, &a)
	acc.Add(&acc, &term)

	term.Mul(&g.QR, &b)
	acc.Add(&acc, &term)

	term.Mul(&g.QM, &a)
	term.Mul(&term, &b)
	acc.Add(&acc, &term)

	term.Mul(&g.QO, &c)
	acc.Add(&acc, &term)

	acc.Add(&acc, &g.QC)
	return acc
}

// Structure is the shape of a PLONK circuit: its table height (as
// log2, the usual "k") and its gate set. It carries no
// witness data; that comes from a Witness.
type Structure struct {
	// K is log2 of the number of rows in the execution trace.
	K uint32
	// Gates lists every gate kind this structure applies, once per
	// row, in the order iterated by IterEvaluateWitness.
	Gates []Gate
	// NumChallenges is the number of SPS rounds: PlonkInstance carries
	// exactly this many W_commitments and per-round challenges.
	NumChallenges int
	// NumAdviceColumns is the number of witness columns (wires) per
	// row, exposed for collaborators that size witness allocations.
	NumAdviceColumns int

	// roundSizesPacked holds the per-round witness-column counts,
	// delta+bit-packed with intcomp: a structure with many SPS rounds
	// carries a long run of mostly-equal small integers. sps.Verify
	// unpacks them to bind each round's layout into its transcript.
	roundSizesPacked []uint32
	numRounds        int
}

// NewStructure builds a Structure with k=log2(rows) rows and the given
// gates, packing roundSizes (witness columns per SPS round).
func NewStructure(k uint32, gates []Gate, numChallenges, numAdviceColumns int, roundSizes []uint32) *Structure {
	return &Structure{
		K:                k,
		Gates:            gates,
		NumChallenges:    numChallenges,
		NumAdviceColumns: numAdviceColumns,
		roundSizesPacked: intcomp.CompressUint32(roundSizes, nil),
		numRounds:        len(roundSizes),
	}
}

// MaxGateDegree returns the maximum degree across all gates, used by
// polyctx to size compute_G's domain.
func (s *Structure) MaxGateDegree() int {
	max := 0
	for _, g := range s.Gates {
		if d := g.Degree(); d > max {
			max = d
		}
	}
	return max
}

// RoundSizes unpacks the per-round witness-column counts.
func (s *Structure) RoundSizes() []uint32 {
	if s.numRounds == 0 {
		return nil
	}
	return intcomp.UncompressUint32(s.roundSizesPacked, make([]uint32, 0, s.numRounds))
}

// Witness is a single PLONK row-major witness: one fr.Element per
// (row, column).
type Witness struct {
	// W holds one column per wire (a, b, c, ...); W[col][row].
	W [][]fr.Element
}

// GetWitness exposes a trace's witness columns.
type GetWitness interface {
	GetWitness() *Witness
}

// GetChallenges exposes a trace's SPS-derived challenges, used by
// gates that reference them (custom gates with lookup/permutation
// arguments); unused by the minimal gate set here but kept as part of
// the collaborator surface the spec names.
type GetChallenges interface {
	GetChallenges() []fr.Element
}

// Trace bundles together a witness and the challenges derived while
// proving it, satisfying both GetWitness and GetChallenges.
type Trace struct {
	Witness    Witness
	Challenges []fr.Element
}

func (t *Trace) GetWitness() *Witness        { return &t.Witness }
func (t *Trace) GetChallenges() []fr.Element { return t.Challenges }

// IterEvaluateWitness evaluates every gate of s against every row of
// trace's witness, in row-major, gate-minor order: row 0's gates first,
// then row 1's, and so on. This is the canonical per-leaf evaluation
// order compute_F and compute_G's tree reductions assume.
func IterEvaluateWitness(s *Structure, trace GetWitness) func(yield func(fr.Element, error) bool) {
	w := trace.GetWitness()
	rows := 1 << s.K

	return func(yield func(fr.Element, error) bool) {
		for row := 0; row < rows; row++ {
			for _, g := range s.Gates {
				a, b, c, err := rowWitness(w, row)
				if err != nil {
					if !yield(fr.Element{}, err) {
						return
					}
					continue
				}
				if !yield(g.Eval(a, b, c), nil) {
					return
				}
			}
		}
	}
}

func rowWitness(w *Witness, row int) (a, b, c fr.Element, err error) {
	if len(w.W) < 3 {
		return a, b, c, fmt.Errorf("plonkstate: witness must have at least 3 columns (a, b, c), got %d", len(w.W))
	}
	if row >= len(w.W[0]) || row >= len(w.W[1]) || row >= len(w.W[2]) {
		return a, b, c, fmt.Errorf("plonkstate: row %d out of range", row)
	}
	return w.W[0][row], w.W[1][row], w.W[2][row], nil
}
