// gen stamps the per-curve Field instantiations in package algebra
// from a single template, one file per curve, the same way the wider
// gnark ecosystem generates its per-curve packages.
package main

import (
	"log"
	"path/filepath"

	"github.com/consensys/bavard"
)

type curve struct {
	// TypeName is the exported Field instantiation, e.g. BLS12377.
	TypeName string
	// FrPackage is the import path of the curve's scalar field.
	FrPackage string
	// Doc is the one-line role of this instantiation in the verifier.
	Doc string
	// FileName is the output file under the algebra package.
	FileName string
}

var curves = []curve{
	{
		TypeName:  "BLS12377",
		FrPackage: "github.com/consensys/gnark-crypto/ecc/bls12-377/fr",
		Doc:       "field the off-circuit folding math runs over",
		FileName:  "bls12377.go",
	},
	{
		TypeName:  "BW6761",
		FrPackage: "github.com/consensys/gnark-crypto/ecc/bw6-761/fr",
		Doc:       "native field of the in-circuit verifier",
		FileName:  "bw6761.go",
	},
}

const fieldTemplate = `
import (
	"math/big"

	fr "{{.FrPackage}}"
	fft "{{.FrPackage}}/fft"
)

// {{.TypeName}} instantiates Field over a curve's scalar field:
// the {{.Doc}}.
type {{.TypeName}} struct{}

func ({{.TypeName}}) Zero() fr.Element {
	var z fr.Element
	return z
}

func ({{.TypeName}}) One() fr.Element {
	var o fr.Element
	o.SetOne()
	return o
}

func ({{.TypeName}}) Constant(v *big.Int) fr.Element {
	var e fr.Element
	e.SetBigInt(v)
	return e
}

func ({{.TypeName}}) Add(a, b fr.Element) fr.Element {
	var r fr.Element
	r.Add(&a, &b)
	return r
}

func ({{.TypeName}}) Sub(a, b fr.Element) fr.Element {
	var r fr.Element
	r.Sub(&a, &b)
	return r
}

func ({{.TypeName}}) Mul(a, b fr.Element) fr.Element {
	var r fr.Element
	r.Mul(&a, &b)
	return r
}

func ({{.TypeName}}) Inverse(a fr.Element) fr.Element {
	var r fr.Element
	r.Inverse(&a)
	return r
}

func (f {{.TypeName}}) IsZero(a fr.Element) fr.Element {
	if a.IsZero() {
		return f.One()
	}
	return f.Zero()
}

func ({{.TypeName}}) Select(flag, ifSet, ifUnset fr.Element) fr.Element {
	if flag.IsZero() {
		return ifUnset
	}
	return ifSet
}

func ({{.TypeName}}) RootOfUnity(logN uint32) fr.Element {
	return fft.NewDomain(uint64(1) << logN).Generator
}
`

func main() {
	for _, c := range curves {
		dst := filepath.Join("algebra", c.FileName)
		if err := bavard.GenerateFromString(dst, []string{fieldTemplate}, c,
			bavard.Package("algebra"),
			bavard.GeneratedBy("protogalaxy/verifier/cmd/gen"),
		); err != nil {
			log.Fatalf("generate %s: %v", dst, err)
		}
	}
}
