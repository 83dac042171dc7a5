package circuit

import (
	"github.com/consensys/gnark/frontend"

	"github.com/protogalaxy/verifier/algebra"
)

// CalculateBetasStroke assigns β*_i = β_i + α·δ^(2^i): the δ powers
// come from repeated squaring into fresh cells, then one (mul, add)
// pair per β. Dual of protogalaxy.BetaStrokeIter.
func CalculateBetasStroke(api frontend.API, betas []frontend.Variable, alpha, delta frontend.Variable) []frontend.Variable {
	return algebra.BetaStroke(Wire(api), betas, alpha, delta)
}
