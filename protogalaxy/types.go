// Package protogalaxy implements the off-circuit half of the
// ProtoGalaxy folding verifier: the F/G/K polynomial engines, the
// β-stroke update, challenge (re-)generation and instance folding that
// together turn a running accumulator plus L incoming PLONK instances
// into a single new accumulator.
package protogalaxy

import (
	"encoding/binary"
	"fmt"

	"github.com/blang/semver/v4"
	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"golang.org/x/crypto/blake2b"

	"github.com/protogalaxy/verifier/plonkstate"
	"github.com/protogalaxy/verifier/univariate"
)

// Version is the protocol version this build implements. A
// VerifierParam carrying any other version is rejected by Verify.
var Version = semver.MustParse("0.1.0")

// VerifierParam binds the public parameters every challenge derivation
// absorbs first: a digest of the PLONK structure, number of variables,
// and so on, plus the protocol version this build implements.
type VerifierParam struct {
	PPDigest        bls12377.G1Affine
	ProtocolVersion semver.Version
}

// NewVerifierParam derives the public-parameter digest for s: the
// structure's shape and gate coefficients are hashed with BLAKE2b and
// the digest mapped onto G1, so two verifiers agree on pp_digest iff
// they agree on every parameter the challenges must bind.
func NewVerifierParam(s *plonkstate.Structure) (VerifierParam, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return VerifierParam{}, fmt.Errorf("protogalaxy: pp digest hash: %w", err)
	}

	var meta [8]byte
	binary.LittleEndian.PutUint32(meta[0:4], s.K)
	binary.LittleEndian.PutUint32(meta[4:8], uint32(s.NumChallenges))
	h.Write(meta[:])
	binary.LittleEndian.PutUint32(meta[0:4], uint32(s.NumAdviceColumns))
	binary.LittleEndian.PutUint32(meta[4:8], uint32(len(s.Gates)))
	h.Write(meta[:])
	for _, g := range s.Gates {
		for _, q := range []fr.Element{g.QL, g.QR, g.QM, g.QO, g.QC} {
			b := q.Bytes()
			h.Write(b[:])
		}
	}

	digest, err := bls12377.HashToG1(h.Sum(nil), []byte("protogalaxy-pp-digest"))
	if err != nil {
		return VerifierParam{}, fmt.Errorf("protogalaxy: hash pp digest to curve: %w", err)
	}

	return VerifierParam{PPDigest: digest, ProtocolVersion: Version}, nil
}

// AccumulatorInstance is everything the verifier carries forward
// between fold steps: the running PlonkInstance plus betas and the
// error term e.
type AccumulatorInstance struct {
	Ins   plonkstate.PlonkInstance
	Betas []fr.Element
	E     fr.Element
}

// Accumulator additionally carries the witness; this is the only
// difference between the two types.
type Accumulator struct {
	AccumulatorInstance
	W plonkstate.Witness
}

// Instance projects an Accumulator down to the AccumulatorInstance the
// verifier ever sees, discarding the witness.
func (a Accumulator) Instance() AccumulatorInstance {
	return a.AccumulatorInstance
}

// GetWitness lets an Accumulator stand in as a trace for the F/G
// engines (it is always traces[0], the "accumulator" slot).
func (a *Accumulator) GetWitness() *plonkstate.Witness { return &a.W }

// GetChallenges lets an Accumulator stand in as a trace for the
// folded-witness view's challenge combination.
func (a *Accumulator) GetChallenges() []fr.Element { return a.Ins.Challenges }

// TrivialAccumulator builds the accumulator lifecycle's starting
// value: all-zero betas, e = 0, and a trivial PlonkInstance (identity
// commitments, zero challenges, zero instances), with a zeroed witness
// shaped for s.
func TrivialAccumulator(s *plonkstate.Structure, betaCount uint32, numInstanceColumns int) Accumulator {
	betas := make([]fr.Element, betaCount)
	rows := 1 << s.K
	w := make([][]fr.Element, s.NumAdviceColumns)
	for c := range w {
		w[c] = make([]fr.Element, rows)
	}
	return Accumulator{
		AccumulatorInstance: AccumulatorInstance{
			Ins:   plonkstate.Trivial(s, numInstanceColumns),
			Betas: betas,
		},
		W: plonkstate.Witness{W: w},
	}
}

// Incoming bundles one folded-in PLONK trace: its witness (for the F/G
// engines) and its PlonkInstance (for SPS verification and challenge
// generation). It is deliberately not plonkstate.Trace, since
// plonkstate.Trace has no notion of commitments.
type Incoming struct {
	Ins     plonkstate.PlonkInstance
	Witness plonkstate.Witness
}

func (in *Incoming) GetWitness() *plonkstate.Witness { return &in.Witness }
func (in *Incoming) GetChallenges() []fr.Element     { return in.Ins.Challenges }

// Proof is the succinct folding proof a prover sends the verifier: the
// two univariate polynomials F and K, in dense coefficient form
// (index i holds the coefficient of X^i).
type Proof struct {
	PolyF univariate.Poly
	PolyK univariate.Poly
}
