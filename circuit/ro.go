package circuit

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"

	"github.com/protogalaxy/verifier/transcript"
)

// RO is the in-circuit dual of transcript.Sponge: a MiMC sponge over
// the circuit's native field absorbing assigned variables in the
// identical schedule the off-circuit sponge uses. Because the circuit
// field is BW6-761's scalar field — the very field the off-circuit
// sponge permutes over — the two transcripts agree digest for digest.
type RO struct {
	api frontend.API
	h   mimc.MiMC
}

// NewRO builds a fresh in-circuit transcript.
func NewRO(api frontend.API) (*RO, error) {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return nil, err
	}
	return &RO{api: api, h: h}, nil
}

// AbsorbField binds a single assigned field element.
func (r *RO) AbsorbField(x frontend.Variable) {
	r.h.Write(x)
}

// AbsorbFieldIter binds each element of xs, in order.
func (r *RO) AbsorbFieldIter(xs []frontend.Variable) {
	for _, x := range xs {
		r.h.Write(x)
	}
}

// AbsorbPoint binds a curve point's (x, y) coordinates. On this curve
// pairing they are already elements of the circuit's native field, so
// no reinterpretation gadget is needed.
func (r *RO) AbsorbPoint(x, y frontend.Variable) {
	r.h.Write(x, y)
}

// Squeeze produces the next challenge: the sponge digest truncated to
// its low ScalarChallengeBits bits by bit decomposition, exactly as
// the off-circuit sponge truncates. The untruncated digest stays
// folded into the sponge state, so later absorptions chain off it,
// the same chaining the off-circuit MiMC digest implements.
func (r *RO) Squeeze() frontend.Variable {
	full := r.h.Sum()
	bits := r.api.ToBinary(full)
	return r.api.FromBinary(bits[:transcript.ScalarChallengeBits]...)
}

// SqueezeBits truncates the next challenge to its nbits low bits, the
// width the SPS transcript compares challenges at.
func (r *RO) SqueezeBits(nbits int) frontend.Variable {
	full := r.h.Sum()
	bits := r.api.ToBinary(full)
	return r.api.FromBinary(bits[:nbits]...)
}
