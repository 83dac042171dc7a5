// Package univariate implements dense, coefficient-form polynomials
// over the BLS12-377 scalar field, plus the small family of transforms
// the folding verifier needs: interpolation from evaluations on a
// 2-adic subgroup (IFFT), interpolation from evaluations on a shifted
// coset of that subgroup (CosetIFFT), Lagrange-basis evaluation on a
// cyclic group, and the vanishing polynomial of that group.
package univariate

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr/fft"

	"github.com/protogalaxy/verifier/algebra"
	"github.com/protogalaxy/verifier/internal/assert"
)

// Poly is a dense polynomial a_0 + a_1*X + ... + a_{n-1}*X^{n-1},
// stored lowest-degree-coefficient first.
type Poly struct {
	coeffs []fr.Element
}

// NewZeroed returns the zero polynomial represented with n coefficients.
func NewZeroed(n int) Poly {
	return Poly{coeffs: make([]fr.Element, n)}
}

// FromCoeffs wraps an existing coefficient slice without copying.
func FromCoeffs(c []fr.Element) Poly {
	return Poly{coeffs: c}
}

// Len returns the number of stored coefficients (not the algebraic
// degree, which may be lower if high coefficients are zero).
func (p Poly) Len() int {
	return len(p.coeffs)
}

// Coeffs exposes the backing slice, lowest degree first.
func (p Poly) Coeffs() []fr.Element {
	return p.coeffs
}

// IsZero reports whether every coefficient is zero.
func (p Poly) IsZero() bool {
	for i := range p.coeffs {
		if !p.coeffs[i].IsZero() {
			return false
		}
	}
	return true
}

// Eval evaluates the polynomial at x using Horner's method.
func (p Poly) Eval(x fr.Element) fr.Element {
	var acc fr.Element
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc.Mul(&acc, &x)
		acc.Add(&acc, &p.coeffs[i])
	}
	return acc
}

// Equal reports whether p and q have identical coefficients, treating
// a missing trailing run of zeros as equal.
func (p Poly) Equal(q Poly) bool {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	for i := 0; i < n; i++ {
		var a, b fr.Element
		if i < len(p.coeffs) {
			a = p.coeffs[i]
		}
		if i < len(q.coeffs) {
			b = q.coeffs[i]
		}
		if !a.Equal(&b) {
			return false
		}
	}
	return true
}

// domain returns an FFT domain of exactly size elements; callers are
// required to pass a power of two, matching every caller in this module.
func domain(size int) (*fft.Domain, error) {
	if err := assert.PowerOfTwo(uint64(size), "fft domain size"); err != nil {
		return nil, err
	}
	return fft.NewDomain(uint64(size)), nil
}

// IFFT interpolates the polynomial whose evaluations on the canonical
// 2-adic subgroup <g> of order len(evals) are evals, i.e. the unique
// poly p with p(g^i) = evals[i].
func IFFT(evals []fr.Element) (Poly, error) {
	d, err := domain(len(evals))
	if err != nil {
		return Poly{}, err
	}
	coeffs := make([]fr.Element, len(evals))
	copy(coeffs, evals)
	d.FFTInverse(coeffs, fft.DIF)
	fft.BitReverse(coeffs)
	return Poly{coeffs: coeffs}, nil
}

// CosetIFFT interpolates the polynomial p such that p(shift*g^i) =
// evals[i], for g the generator of the canonical subgroup of order
// len(evals). It is the coset analogue of IFFT: compute q = IFFT(evals)
// (so q(g^i) = evals[i]) and rescale coefficient j by shift^-j, since
// p(X) := q(X/shift) satisfies p(shift*g^i) = q(g^i) = evals[i].
func CosetIFFT(evals []fr.Element, shift fr.Element) (Poly, error) {
	q, err := IFFT(evals)
	if err != nil {
		return Poly{}, err
	}
	var shiftInv fr.Element
	shiftInv.Inverse(&shift)

	coeffs := q.coeffs
	var scale fr.Element
	scale.SetOne()
	for j := range coeffs {
		coeffs[j].Mul(&coeffs[j], &scale)
		scale.Mul(&scale, &shiftInv)
	}
	return Poly{coeffs: coeffs}, nil
}

// CyclicSubgroup returns the n = 2^logSize elements g^0, g^1, ..., g^{n-1}
// of the canonical 2-adic subgroup of that order.
func CyclicSubgroup(logSize uint32) ([]fr.Element, error) {
	n := 1 << logSize
	d, err := domain(n)
	if err != nil {
		return nil, err
	}
	points := make([]fr.Element, n)
	points[0].SetOne()
	for i := 1; i < n; i++ {
		points[i].Mul(&points[i-1], &d.Generator)
	}
	return points, nil
}

// EvalVanishingPoly evaluates Z(X) = X^n - 1, the vanishing polynomial
// of the cyclic group of order n, at x.
func EvalVanishingPoly(n uint64, x fr.Element) fr.Element {
	var xn fr.Element
	xn.Exp(x, new(big.Int).SetUint64(n))
	var one fr.Element
	one.SetOne()
	xn.Sub(&xn, &one)
	return xn
}

// EvalLagrangeBasis evaluates L_i(X), the i-th Lagrange basis polynomial
// for the cyclic group <g> of order n = 2^logDomainSize, at x:
//
//	L_i(X) = (g^i / n) * (X^n - 1) / (X - g^i)
//
// Both numerator and denominator vanish at X = g^i; the value there is
// 1. The evaluation delegates to the shared algebra core so this and
// the in-circuit verifier cannot drift apart.
func EvalLagrangeBasis(i int, x fr.Element, logDomainSize uint32) (fr.Element, error) {
	n := 1 << logDomainSize
	if i < 0 || i >= n {
		return fr.Element{}, fmt.Errorf("univariate: lagrange index %d outside domain of size %d", i, n)
	}
	f := algebra.BLS12377{}
	powers := algebra.NewValuePowers[fr.Element](f, f.One(), x)
	return algebra.EvalLagrange[fr.Element](f, i, logDomainSize, powers), nil
}

// EvalLagrangeBasis0 evaluates L_0(X), the Lagrange basis polynomial of
// index 0 for the cyclic group of order n = 2^logDomainSize, at x. L_0
// is 1 at X=1 and 0 at every other n-th root of unity:
//
//	L_0(X) = (X^n - 1) / (n * (X - 1))
//
// When x is exactly 1 (the one point where the naive formula divides
// zero by zero) the value 1 is returned directly.
func EvalLagrangeBasis0(x fr.Element, logDomainSize uint32) fr.Element {
	n := uint64(1) << logDomainSize

	var one fr.Element
	one.SetOne()

	if x.Equal(&one) {
		return one
	}

	num := EvalVanishingPoly(n, x)

	var den fr.Element
	den.Sub(&x, &one)
	var nElem fr.Element
	nElem.SetUint64(n)
	den.Mul(&den, &nElem)
	den.Inverse(&den)

	num.Mul(&num, &den)
	return num
}
