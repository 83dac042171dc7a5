package circuit

import (
	"math/big"

	bw6fr "github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	bw6fft "github.com/consensys/gnark-crypto/ecc/bw6-761/fr/fft"
	"github.com/consensys/gnark/frontend"

	"github.com/protogalaxy/verifier/algebra"
)

// wire adapts frontend.API into algebra.Field, so the shared
// algebraic primitives run in-circuit on assigned variables. The
// IsZero/Select pair keeps the one branch on the verifier's critical
// path (the Lagrange 0/0 point) constraint-based rather than
// value-based.
type wire struct {
	api frontend.API
}

// Wire returns the Field instantiation backed by api. The circuit is
// compiled for BW6-761, so field constants (roots of unity) are taken
// from that curve's scalar field.
func Wire(api frontend.API) algebra.Field[frontend.Variable] {
	return wire{api: api}
}

func (w wire) Zero() frontend.Variable { return 0 }
func (w wire) One() frontend.Variable  { return 1 }

func (w wire) Constant(v *big.Int) frontend.Variable { return v }

func (w wire) Add(a, b frontend.Variable) frontend.Variable { return w.api.Add(a, b) }
func (w wire) Sub(a, b frontend.Variable) frontend.Variable { return w.api.Sub(a, b) }
func (w wire) Mul(a, b frontend.Variable) frontend.Variable { return w.api.Mul(a, b) }

func (w wire) Inverse(a frontend.Variable) frontend.Variable { return w.api.Inverse(a) }

func (w wire) IsZero(a frontend.Variable) frontend.Variable { return w.api.IsZero(a) }

func (w wire) Select(flag, ifSet, ifUnset frontend.Variable) frontend.Variable {
	return w.api.Select(flag, ifSet, ifUnset)
}

func (w wire) RootOfUnity(logN uint32) frontend.Variable {
	gen := bw6fft.NewDomain(uint64(1) << logN).Generator
	var bi big.Int
	gen.BigInt(&bi)
	return bi
}

// baseConstant embeds a native BW6-761 scalar as a circuit constant.
func baseConstant(x bw6fr.Element) frontend.Variable {
	var bi big.Int
	x.BigInt(&bi)
	return bi
}
