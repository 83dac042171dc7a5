package circuit

import (
	"github.com/consensys/gnark/frontend"

	"github.com/protogalaxy/verifier/algebra"
)

// AssignedUnivariatePoly is a univariate polynomial whose coefficients
// are assigned cells: the in-circuit view of the proof's poly_F and
// poly_K.
type AssignedUnivariatePoly struct {
	Coeffs []frontend.Variable
}

// Eval evaluates Σ c_i·x^i at the point powers was built for,
// consuming one cached power and one (mul, add) pair per coefficient.
// Dual of univariate.Poly.Eval.
func (p AssignedUnivariatePoly) Eval(api frontend.API, powers *ValuePowers) frontend.Variable {
	return algebra.EvalUnivariate(Wire(api), p.Coeffs, powers)
}
