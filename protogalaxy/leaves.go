package protogalaxy

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/protogalaxy/verifier/plonkstate"
)

// collectLeaves evaluates every gate of s against trace's witness, in
// the canonical row-major, gate-minor order IterEvaluateWitness
// defines, zero-padding up to paddedLen. This is the left-to-right
// leaf order both compute_F's and compute_G's tree reductions require.
func collectLeaves(s *plonkstate.Structure, trace plonkstate.GetWitness, paddedLen uint64) ([]fr.Element, error) {
	leaves := make([]fr.Element, paddedLen)
	i := 0
	var iterErr error

	iter := plonkstate.IterEvaluateWitness(s, trace)
	iter(func(v fr.Element, err error) bool {
		if err != nil {
			iterErr = err
			return false
		}
		if i < len(leaves) {
			leaves[i] = v
		}
		i++
		return true
	})
	if iterErr != nil {
		return nil, iterErr
	}
	return leaves, nil
}
