// Package transcript implements the two Fiat-Shamir surfaces the
// folding verifier absorbs into.
//
// Sponge is the ProtoGalaxy challenge transcript: a MiMC sponge over
// the BW6-761 scalar field (BLS12-377's base field), so the in-circuit
// verifier, whose native field is exactly that, can re-derive the same
// challenges gate for gate. Scalar-field inputs are reinterpreted as
// base-field values before absorption, the only direction in which
// the crossing is lossless.
//
// Transcript is the Special-Soundness transcript: one Fiat-Shamir
// challenge per PLONK round, re-derived off-circuit only, sponging
// with SHA-256 the way gnark's own plonk transcripts do.
//
// Absorption order is part of the protocol; this package provides the
// primitives, callers own the schedule.
package transcript

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	stdhash "hash"
	"math/big"
	"strconv"

	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	fiatshamir "github.com/consensys/gnark-crypto/fiat-shamir"
	gchash "github.com/consensys/gnark-crypto/hash"

	"github.com/bits-and-blooms/bitset"
	"github.com/icza/bitio"

	"github.com/protogalaxy/verifier/scalarbase"
)

const (
	// NumChallengeBits is the width SPS round challenges are truncated
	// to before comparison against the prover's claimed challenge.
	NumChallengeBits = 128

	// ScalarChallengeBits is the width of a "full" ProtoGalaxy
	// challenge (δ, α, γ): the sponge digest lives in the 377-bit base
	// field, so it is truncated to the largest byte-aligned width that
	// every BLS12-377 scalar can carry. The same truncation happens
	// in-circuit, which is what makes the two sides agree bit for bit.
	ScalarChallengeBits = 248
)

// Sponge instantiation constants, fixed protocol-wide. The permutation
// itself is MiMC over the BW6-761 scalar field (see DESIGN.md); the
// width/rate/round split is the sponge schedule the protocol commits
// to.
const (
	PermutationWidth = 5
	SpongeRate       = PermutationWidth - 1
	FullRounds       = 10
	PartialRounds    = 10
)

// Sponge is the ProtoGalaxy challenge transcript. Absorb/squeeze
// cycles chain through the sponge state, so every squeeze depends on
// everything absorbed (and squeezed) before it.
type Sponge struct {
	h stdhash.Hash
}

// NewSponge builds an empty challenge transcript.
func NewSponge() *Sponge {
	return &Sponge{h: gchash.MIMC_BW6_761.New()}
}

// AbsorbScalar binds one BLS12-377 scalar, reinterpreted as a
// base-field element.
func (s *Sponge) AbsorbScalar(x fr.Element) error {
	elem := scalarbase.ToBase(x)
	b := elem.Bytes()
	if _, err := s.h.Write(b[:]); err != nil {
		return fmt.Errorf("transcript: absorb scalar: %w", err)
	}
	return nil
}

// AbsorbScalars binds each element of xs, in order.
func (s *Sponge) AbsorbScalars(xs []fr.Element) error {
	for i, x := range xs {
		if err := s.AbsorbScalar(x); err != nil {
			return fmt.Errorf("transcript: absorb scalar[%d]: %w", i, err)
		}
	}
	return nil
}

// AbsorbPoint binds a curve point's affine coordinates. Both are
// elements of BLS12-377's base field and therefore native sponge
// inputs; the point at infinity binds as (0, 0).
func (s *Sponge) AbsorbPoint(p bls12377.G1Affine) error {
	xb := p.X.Bytes()
	if _, err := s.h.Write(xb[:]); err != nil {
		return fmt.Errorf("transcript: absorb point x: %w", err)
	}
	yb := p.Y.Bytes()
	if _, err := s.h.Write(yb[:]); err != nil {
		return fmt.Errorf("transcript: absorb point y: %w", err)
	}
	return nil
}

// Squeeze produces the next challenge: the sponge digest truncated to
// its low ScalarChallengeBits bits, returned as a BLS12-377 scalar.
// The untruncated digest stays folded into the sponge state, so
// subsequent absorptions chain off it.
func (s *Sponge) Squeeze() (fr.Element, error) {
	digest := s.h.Sum(nil)

	truncated, err := truncateBits(digest, ScalarChallengeBits)
	if err != nil {
		return fr.Element{}, fmt.Errorf("transcript: truncate challenge: %w", err)
	}

	var out fr.Element
	out.SetBytes(truncated)
	return out, nil
}

// Transcript re-derives the per-round SPS challenges: one named
// challenge per PLONK round, chained so that round i's challenge
// depends on every binding and challenge before it.
type Transcript struct {
	fs     *fiatshamir.Transcript
	labels []string
	bound  *bitset.BitSet
}

// NewRounds creates a transcript for an instance with the given
// number of SPS rounds.
func NewRounds(rounds int) *Transcript {
	labels := make([]string, rounds)
	for i := range labels {
		labels[i] = "round-" + strconv.Itoa(i)
	}
	return &Transcript{
		fs:     fiatshamir.NewTranscript(sha256.New(), labels...),
		labels: labels,
		bound:  bitset.New(uint(rounds)),
	}
}

// BindField binds a field element to the given round's challenge.
func (t *Transcript) BindField(round int, x fr.Element) error {
	b := x.Bytes()
	if err := t.fs.Bind(t.labels[round], b[:]); err != nil {
		return fmt.Errorf("transcript: bind field to round %d: %w", round, err)
	}
	return nil
}

// BindPoint binds a curve point to the given round's challenge.
func (t *Transcript) BindPoint(round int, p bls12377.G1Affine) error {
	b := p.Bytes()
	if err := t.fs.Bind(t.labels[round], b[:]); err != nil {
		return fmt.Errorf("transcript: bind point to round %d: %w", round, err)
	}
	return nil
}

// SqueezeRound computes the given round's challenge, truncated to
// NumChallengeBits, and records the round as consumed.
func (t *Transcript) SqueezeRound(round int) (fr.Element, error) {
	b, err := t.fs.ComputeChallenge(t.labels[round])
	if err != nil {
		return fr.Element{}, fmt.Errorf("transcript: squeeze round %d: %w", round, err)
	}
	truncated, err := truncateBits(b, NumChallengeBits)
	if err != nil {
		return fr.Element{}, fmt.Errorf("transcript: truncate round %d: %w", round, err)
	}
	t.bound.Set(uint(round))

	var out fr.Element
	out.SetBytes(truncated)
	return out, nil
}

// RoundConsumed reports whether SqueezeRound(round) has run, so a
// caller driving verification can assert it never revisits a round.
func (t *Transcript) RoundConsumed(round int) bool {
	return t.bound.Test(uint(round))
}

// truncateBits keeps the lowest nbits bits of the big-endian value b,
// streaming it through a bitio reader/writer pair. nbits must be a
// multiple of 8 so the kept bits land on byte boundaries.
func truncateBits(b []byte, nbits int) ([]byte, error) {
	bi := new(big.Int).SetBytes(b)

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	r := bitio.NewReader(bytes.NewReader(bi.Bytes()))

	total := len(bi.Bytes()) * 8
	skip := total - nbits
	for i := 0; i < total; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			break
		}
		if i < skip {
			continue
		}
		if err := w.WriteBool(bit); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
