package protogalaxy

import (
	"fmt"

	"github.com/consensys/compress/lzss"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/fxamacker/cbor/v2"

	"github.com/protogalaxy/verifier/univariate"
)

// marshalCoeffs renders xs as their canonical little-endian 32-byte
// encodings, reversing fr.Element.Bytes()'s big-endian
// output.
func marshalCoeffs(xs []fr.Element) [][]byte {
	out := make([][]byte, len(xs))
	for i, x := range xs {
		b := x.Bytes()
		out[i] = reverseBytes(b[:])
	}
	return out
}

func unmarshalCoeffs(raw [][]byte) ([]fr.Element, error) {
	out := make([]fr.Element, len(raw))
	for i, b := range raw {
		if len(b) != fr.Bytes {
			return nil, fmt.Errorf("coefficient %d: expected %d bytes, got %d", i, fr.Bytes, len(b))
		}
		out[i].SetBytes(reverseBytes(b))
	}
	return out, nil
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[i] = b[len(b)-1-i]
	}
	return out
}

func polyFromCoeffs(xs []fr.Element) univariate.Poly {
	return univariate.FromCoeffs(xs)
}

// wireProof is the CBOR-serializable shape of Proof: one byte string
// per coefficient, in the little-endian encoding marshalCoeffs
// produces.
type wireProof struct {
	PolyF [][]byte `cbor:"f"`
	PolyK [][]byte `cbor:"k"`
}

// Marshal encodes p as two length-prefixed vectors of field elements,
// poly_F then poly_K, each element in
// canonical little-endian 32-byte form, CBOR-framed and then
// lzss-compressed the way gnark/groth16 proof blobs are
// (DESIGN.md: consensys/compress plays the same role here).
func (p Proof) Marshal() ([]byte, error) {
	w := wireProof{
		PolyF: marshalCoeffs(p.PolyF.Coeffs()),
		PolyK: marshalCoeffs(p.PolyK.Coeffs()),
	}
	raw, err := cbor.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("protogalaxy: cbor encode proof: %w", err)
	}
	compressed, err := compressBlob(raw)
	if err != nil {
		return nil, fmt.Errorf("protogalaxy: compress proof: %w", err)
	}
	return compressed, nil
}

// compressBlob wraps a serialized blob in lzss, dictionary-free, the
// same framing gnark applies to its own proof blobs.
func compressBlob(raw []byte) ([]byte, error) {
	compressor, err := lzss.NewCompressor(nil)
	if err != nil {
		return nil, err
	}
	return compressor.Compress(raw)
}

// UnmarshalProof decodes bytes produced by Proof.Marshal. The caller
// already knows the expected lengths of poly_F and poly_K from (S, L)
// and must assert them against the result.
func UnmarshalProof(data []byte) (Proof, error) {
	raw, err := lzss.Decompress(data, nil)
	if err != nil {
		return Proof{}, fmt.Errorf("protogalaxy: decompress proof: %w", err)
	}
	var w wireProof
	if err := cbor.Unmarshal(raw, &w); err != nil {
		return Proof{}, fmt.Errorf("protogalaxy: cbor decode proof: %w", err)
	}
	polyF, err := unmarshalCoeffs(w.PolyF)
	if err != nil {
		return Proof{}, fmt.Errorf("protogalaxy: decode poly_F: %w", err)
	}
	polyK, err := unmarshalCoeffs(w.PolyK)
	if err != nil {
		return Proof{}, fmt.Errorf("protogalaxy: decode poly_K: %w", err)
	}
	return Proof{PolyF: polyFromCoeffs(polyF), PolyK: polyFromCoeffs(polyK)}, nil
}
