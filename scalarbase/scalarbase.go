// Package scalarbase implements the scalar-to-base field crossing:
// a canonical, deterministic reinterpretation of a
// BLS12-377 scalar-field element (fr, the field the off-circuit
// ProtoGalaxy math runs over) as a BW6-761 scalar-field element (the
// field the in-circuit verifier's frontend.API runs over, which equals
// BLS12-377's base field by construction of the recursive pairing).
//
// The mapping is the identity on the underlying integer: both fields
// are reduced modulo related, small-enough primes that every value a
// BLS12-377 scalar can take fits losslessly as a BW6-761 scalar. The
// caller is responsible for that bit-width guarantee; this
// package only performs the reinterpretation, in both directions, using
// one canonical little-endian byte mapping everywhere.
package scalarbase

import (
	"math/big"

	blsfr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	bwfr "github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
)

// ToBase reinterprets a BLS12-377 scalar as a BW6-761 scalar, going
// through the shared canonical integer representative so the mapping
// is independent of either field's internal (Montgomery) encoding.
func ToBase(x blsfr.Element) bwfr.Element {
	var bi big.Int
	x.BigInt(&bi)
	var out bwfr.Element
	out.SetBigInt(&bi)
	return out
}

// ToBaseSlice maps ToBase over xs, preserving order.
func ToBaseSlice(xs []blsfr.Element) []bwfr.Element {
	out := make([]bwfr.Element, len(xs))
	for i, x := range xs {
		out[i] = ToBase(x)
	}
	return out
}

// ToScalar is ToBase's inverse, used only by tests to round-trip.
func ToScalar(x bwfr.Element) blsfr.Element {
	var bi big.Int
	x.BigInt(&bi)
	var out blsfr.Element
	out.SetBigInt(&bi)
	return out
}
