package plonkstate

import (
	"errors"
	"fmt"

	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// PlonkInstance is everything the folding verifier sees of a PLONK
// trace, without its witness: one commitment and one Fiat-Shamir
// challenge per SPS round, plus the public input vectors.
type PlonkInstance struct {
	WCommitments []bls12377.G1Affine
	Instances    [][]fr.Element
	Challenges   []fr.Element
}

// ErrCommitmentChallengeMismatch is returned by Validate when the
// commitment and challenge counts disagree.
var ErrCommitmentChallengeMismatch = errors.New("plonkstate: len(W_commitments) != len(challenges)")

// Validate checks the invariant len(W_commitments) == len(challenges)
// == S.NumChallenges.
func (p PlonkInstance) Validate(s *Structure) error {
	if len(p.WCommitments) != len(p.Challenges) {
		return ErrCommitmentChallengeMismatch
	}
	if len(p.Challenges) != s.NumChallenges {
		return fmt.Errorf("plonkstate: %d challenges but structure expects %d", len(p.Challenges), s.NumChallenges)
	}
	return nil
}

// Trivial returns the all-zero PlonkInstance an Accumulator is created
// with: identity commitments, zero challenges, zero instances.
func Trivial(s *Structure, numInstanceColumns int) PlonkInstance {
	commitments := make([]bls12377.G1Affine, s.NumChallenges)
	for i := range commitments {
		commitments[i].X.SetZero()
		commitments[i].Y.SetZero()
	}
	challenges := make([]fr.Element, s.NumChallenges)
	instances := make([][]fr.Element, numInstanceColumns)
	for i := range instances {
		instances[i] = make([]fr.Element, 1)
	}
	return PlonkInstance{WCommitments: commitments, Instances: instances, Challenges: challenges}
}

// Clone returns a deep copy of p, used by the off-circuit verifier so
// a new accumulator never aliases the previous one's slices.
func (p PlonkInstance) Clone() PlonkInstance {
	out := PlonkInstance{
		WCommitments: append([]bls12377.G1Affine(nil), p.WCommitments...),
		Challenges:   append([]fr.Element(nil), p.Challenges...),
		Instances:    make([][]fr.Element, len(p.Instances)),
	}
	for i, col := range p.Instances {
		out.Instances[i] = append([]fr.Element(nil), col...)
	}
	return out
}
