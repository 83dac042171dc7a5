// Package algebra factors the folding verifier's algebraic primitives
// (β-stroke, Lagrange evaluation, vanishing evaluation, polynomial
// evaluation, the error term e) behind a field-like abstraction, so
// the off-circuit verifier and the in-circuit verifier share one
// control flow and differ only in the primitive operations: the
// off-circuit side instantiates Field with a native prime field, the
// in-circuit side with assigned cells backed by a constraint-system
// API. Divergence between the two sides is a soundness bug, and this
// sharing is what rules it out structurally.
package algebra

import "math/big"

// Field is the evaluation abstraction the shared primitives run over.
// E is either a native field element or a circuit variable; every
// operation returns a fresh value and never mutates its inputs.
//
// IsZero returns the field's 0/1 flag as an element (not a bool) so a
// circuit instantiation can keep the branch constraint-based; Select
// consumes such a flag. Implementations over a native field are free
// to branch on values instead, the results must simply agree.
type Field[E any] interface {
	Zero() E
	One() E
	// Constant embeds an integer into the field.
	Constant(v *big.Int) E

	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	// Inverse inverts a nonzero element. Callers guard the zero case
	// with IsZero/Select before dividing.
	Inverse(a E) E

	IsZero(a E) E
	Select(flag, ifSet, ifUnset E) E

	// RootOfUnity returns a generator of the cyclic subgroup of order
	// 2^logN in the field's multiplicative group.
	RootOfUnity(logN uint32) E
}
