// Package circuit implements the in-circuit half of the ProtoGalaxy
// verifier: the BW6-761 frontend.Circuit that re-derives the same
// (δ, α, γ) schedule as package protogalaxy, folds the instance
// scalars, and asserts the new accumulator against its public outputs.
// Each primitive here is the shared algebra core instantiated over
// assigned variables, so the two sides cannot drift apart.
package circuit

import (
	"github.com/consensys/gnark/frontend"

	"github.com/protogalaxy/verifier/algebra"
)

// ValuePowers caches x^0 = 1, x^1, x^2, ... of an assigned variable,
// extended by one multiplication gate per missing power.
type ValuePowers = algebra.ValuePowers[frontend.Variable]

// NewValuePowers seeds the cache with {one, x}. The caller passes the
// unit cell explicitly and is responsible for having constrained it
// to 1.
func NewValuePowers(api frontend.API, one, x frontend.Variable) *ValuePowers {
	return algebra.NewValuePowers(Wire(api), one, x)
}
