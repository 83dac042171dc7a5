// Package sps implements the Special-Soundness (SPS) verifier: it
// re-derives the Fiat-Shamir challenge of each PLONK round from the
// round's committed witness and asserts it matches what the prover
// claims, coupling the transcript discipline to the folding math.
package sps

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/protogalaxy/verifier/internal/assert"
	"github.com/protogalaxy/verifier/plonkstate"
	"github.com/protogalaxy/verifier/transcript"
)

// ChallengeNotMatch is returned when a re-derived round challenge does
// not match the instance's claimed challenge for that round.
type ChallengeNotMatch struct {
	RoundIndex int
}

func (e *ChallengeNotMatch) Error() string {
	return fmt.Sprintf("sps: challenge mismatch at round %d", e.RoundIndex)
}

// Verify re-derives, round by round, the challenge that should have
// been squeezed after committing W_commitments[i] and compares it
// against ins.Challenges[i]. The public instance values bind before
// the first round; each round then binds its witness-column count from
// s and its commitment, so the transcript commits to the round layout
// as well as the points, and squeezes a NumChallengeBits-truncated
// challenge. Instances with no challenges (a trivial or
// not-yet-SPS-bound instance) trivially pass. Returns
// *ChallengeNotMatch on the first round that disagrees.
func Verify(s *plonkstate.Structure, ins plonkstate.PlonkInstance) error {
	if len(ins.Challenges) == 0 {
		return nil
	}
	if err := ins.Validate(s); err != nil {
		return fmt.Errorf("sps: %w", err)
	}
	sizes := s.RoundSizes()
	if len(sizes) != len(ins.WCommitments) {
		return fmt.Errorf("sps: structure records %d round sizes but instance has %d rounds", len(sizes), len(ins.WCommitments))
	}

	tr := transcript.NewRounds(len(ins.WCommitments))
	for _, col := range ins.Instances {
		for _, v := range col {
			if err := tr.BindField(0, v); err != nil {
				return fmt.Errorf("sps: bind public instance: %w", err)
			}
		}
	}

	for i, commitment := range ins.WCommitments {
		if err := assert.True(!tr.RoundConsumed(i), "sps: round %d transcript revisited", i); err != nil {
			return err
		}
		var size fr.Element
		size.SetUint64(uint64(sizes[i]))
		if err := tr.BindField(i, size); err != nil {
			return fmt.Errorf("sps: bind round %d size: %w", i, err)
		}
		if err := tr.BindPoint(i, commitment); err != nil {
			return fmt.Errorf("sps: bind round %d commitment: %w", i, err)
		}
		got, err := tr.SqueezeRound(i)
		if err != nil {
			return fmt.Errorf("sps: squeeze round %d challenge: %w", i, err)
		}
		if !got.Equal(&ins.Challenges[i]) {
			return &ChallengeNotMatch{RoundIndex: i}
		}
	}
	return nil
}
