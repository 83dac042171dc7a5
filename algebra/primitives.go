package algebra

import "math/big"

// ExponentiationSequence returns v, v^2, v^4, ..., v^(2^(n-1)): each
// entry is the square of the previous one, written into a fresh value.
func ExponentiationSequence[E any](f Field[E], v E, n int) []E {
	out := make([]E, n)
	for i := 0; i < n; i++ {
		out[i] = v
		v = f.Mul(v, v)
	}
	return out
}

// BetaStroke computes the challenge update β*_i = β_i + α·δ^(2^i) for
// every i, with the δ powers coming from ExponentiationSequence.
func BetaStroke[E any](f Field[E], betas []E, alpha, delta E) []E {
	deltaPows := ExponentiationSequence(f, delta, len(betas))
	out := make([]E, len(betas))
	for i := range betas {
		out[i] = f.Add(betas[i], f.Mul(alpha, deltaPows[i]))
	}
	return out
}

// ValuePowers caches x^0 = 1, x^1, x^2, ... and extends by one
// multiplication per missing power on demand. No windowing: the
// exponents this verifier needs are bounded by its largest domain
// size, so the linear extension is acceptable.
type ValuePowers[E any] struct {
	f      Field[E]
	powers []E
}

// NewValuePowers seeds the cache with {one, value}. The caller
// provides the unit element explicitly; an in-circuit caller must
// have constrained that cell to 1 beforehand.
func NewValuePowers[E any](f Field[E], one, value E) *ValuePowers[E] {
	return &ValuePowers[E]{f: f, powers: []E{one, value}}
}

// GetOrEval returns x^k, extending the cache by repeated
// multiplication if k is beyond the current high-water mark.
func (v *ValuePowers[E]) GetOrEval(k int) E {
	for len(v.powers) <= k {
		v.powers = append(v.powers, v.f.Mul(v.powers[len(v.powers)-1], v.powers[1]))
	}
	return v.powers[k]
}

// EvalUnivariate evaluates Σ coeffs[i]·x^i at the point powers was
// built for, one (mul, add) pair per coefficient.
func EvalUnivariate[E any](f Field[E], coeffs []E, powers *ValuePowers[E]) E {
	acc := f.Zero()
	for i, c := range coeffs {
		acc = f.Add(acc, f.Mul(c, powers.GetOrEval(i)))
	}
	return acc
}

// EvalVanishing evaluates Z(x) = x^n - 1, the vanishing polynomial of
// the cyclic group of order n, at the point powers was built for.
func EvalVanishing[E any](f Field[E], n uint64, powers *ValuePowers[E]) E {
	return f.Sub(powers.GetOrEval(int(n)), f.One())
}

// EvalLagrange evaluates L_i(x) over the cyclic group of order
// n = 2^logN at the point x powers was built for:
//
//	L_i(x) = (ω^i / n) · (x^n - 1) / (x - ω^i)
//
// At x = ω^i both numerator and denominator vanish and the quotient
// form is 0/0; the value there is 1. The branch is taken on IsZero
// flags through Select, never on the values themselves, so a circuit
// instantiation stays constraint-based (the only branch on the
// verifier's critical path).
func EvalLagrange[E any](f Field[E], i int, logN uint32, powers *ValuePowers[E]) E {
	n := uint64(1) << logN
	one := f.One()

	rootPow := one
	root := f.RootOfUnity(logN)
	for k := 0; k < i; k++ {
		rootPow = f.Mul(rootPow, root)
	}

	num := EvalVanishing(f, n, powers)
	den := f.Sub(powers.GetOrEval(1), rootPow)

	numZero := f.IsZero(num)
	denZero := f.IsZero(den)
	bothZero := f.Mul(numZero, denZero)

	safeDen := f.Select(denZero, one, den)
	ratio := f.Mul(num, f.Inverse(safeDen))

	nInv := f.Inverse(f.Constant(new(big.Int).SetUint64(n)))
	value := f.Mul(f.Mul(rootPow, nInv), ratio)

	return f.Select(bothZero, one, value)
}

// LagrangeCoefficients evaluates L_0(x), ..., L_{n-1}(x) for the full
// cyclic group of order n = 2^logN, in index order.
func LagrangeCoefficients[E any](f Field[E], logN uint32, powers *ValuePowers[E]) []E {
	n := 1 << logN
	out := make([]E, n)
	for i := 0; i < n; i++ {
		out[i] = EvalLagrange(f, i, logN, powers)
	}
	return out
}

// CalculateE computes the folded error term
//
//	e = F(α)·L_0(γ) + Z(γ)·K(γ)
//
// from the proof's two polynomials in coefficient form, with L_0 and Z
// taken over the Lagrange domain of order 2^logLagrange.
func CalculateE[E any](f Field[E], polyF, polyK []E, alpha, gamma E, logLagrange uint32) E {
	one := f.One()
	alphaPowers := NewValuePowers(f, one, alpha)
	gammaPowers := NewValuePowers(f, one, gamma)

	fAlpha := EvalUnivariate(f, polyF, alphaPowers)
	kGamma := EvalUnivariate(f, polyK, gammaPowers)

	l0 := EvalLagrange(f, 0, logLagrange, gammaPowers)
	z := EvalVanishing(f, uint64(1)<<logLagrange, gammaPowers)

	return f.Add(f.Mul(fAlpha, l0), f.Mul(z, kGamma))
}
