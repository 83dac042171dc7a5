package circuit

import (
	"github.com/consensys/gnark/frontend"

	"github.com/protogalaxy/verifier/algebra"
)

// EvalVanishingPoly returns x^n - 1 with n = 2^logN, evaluated at the
// point powers was built for. Dual of univariate.EvalVanishingPoly.
func EvalVanishingPoly(api frontend.API, logN int, powers *ValuePowers) frontend.Variable {
	return algebra.EvalVanishing(Wire(api), uint64(1)<<logN, powers)
}

// EvalLagrangePoly evaluates L_i(x) for the cyclic group of order
// n = 2^logN at the point powers was built for, the dual of
// univariate.EvalLagrangeBasis. At x = ω^i, where both numerator and
// denominator of the closed form vanish, the result is selected to 1
// through is-zero flags rather than a value branch: frontend.API has
// no data-dependent control flow, and the select keeps the assignment
// sound for every x.
func EvalLagrangePoly(api frontend.API, i, logN int, powers *ValuePowers) frontend.Variable {
	return algebra.EvalLagrange(Wire(api), i, uint32(logN), powers)
}
