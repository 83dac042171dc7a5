package protogalaxy

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/protogalaxy/verifier/plonkstate"
	"github.com/protogalaxy/verifier/transcript"
)

// GenerateChallenges re-derives (δ, α, γ) from the transcript, in the
// exact schedule the protocol freezes: pp_digest, then the
// accumulator's instance (commitments, instances, challenges, betas,
// e), then each incoming instance, squeeze δ; absorb proof.poly_F,
// squeeze α; absorb proof.poly_K, squeeze γ. Any reordering silently
// breaks soundness against adversarially chosen proofs while still
// passing honest-prover tests. The in-circuit transcript mirrors the
// schedule verbatim, and the circuit package's end-to-end test checks
// that both derive the same values; no fixed test vector pins the
// challenge values themselves.
func GenerateChallenges(vp VerifierParam, acc AccumulatorInstance, incoming []plonkstate.PlonkInstance, proof Proof) (delta, alpha, gamma fr.Element, err error) {
	sp := transcript.NewSponge()

	if err = sp.AbsorbPoint(vp.PPDigest); err != nil {
		err = fmt.Errorf("protogalaxy: absorb pp_digest: %w", err)
		return
	}
	if err = absorbAccumulatorInstance(sp, acc); err != nil {
		return
	}
	for i, inst := range incoming {
		if err = absorbPlonkInstance(sp, inst); err != nil {
			err = fmt.Errorf("protogalaxy: absorb incoming[%d]: %w", i, err)
			return
		}
	}
	if delta, err = sp.Squeeze(); err != nil {
		return
	}

	if err = sp.AbsorbScalars(proof.PolyF.Coeffs()); err != nil {
		err = fmt.Errorf("protogalaxy: absorb poly_F: %w", err)
		return
	}
	if alpha, err = sp.Squeeze(); err != nil {
		return
	}

	if err = sp.AbsorbScalars(proof.PolyK.Coeffs()); err != nil {
		err = fmt.Errorf("protogalaxy: absorb poly_K: %w", err)
		return
	}
	gamma, err = sp.Squeeze()
	return
}

func absorbPlonkInstance(sp *transcript.Sponge, inst plonkstate.PlonkInstance) error {
	for i, c := range inst.WCommitments {
		if err := sp.AbsorbPoint(c); err != nil {
			return fmt.Errorf("W_commitments[%d]: %w", i, err)
		}
	}
	for i, col := range inst.Instances {
		if err := sp.AbsorbScalars(col); err != nil {
			return fmt.Errorf("instances[%d]: %w", i, err)
		}
	}
	if err := sp.AbsorbScalars(inst.Challenges); err != nil {
		return fmt.Errorf("challenges: %w", err)
	}
	return nil
}

func absorbAccumulatorInstance(sp *transcript.Sponge, acc AccumulatorInstance) error {
	if err := absorbPlonkInstance(sp, acc.Ins); err != nil {
		return fmt.Errorf("accumulator instance: %w", err)
	}
	if err := sp.AbsorbScalars(acc.Betas); err != nil {
		return fmt.Errorf("accumulator betas: %w", err)
	}
	if err := sp.AbsorbScalar(acc.E); err != nil {
		return fmt.Errorf("accumulator e: %w", err)
	}
	return nil
}
