package protogalaxy

import (
	"fmt"

	"github.com/consensys/compress/lzss"
	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/fxamacker/cbor/v2"

	"github.com/protogalaxy/verifier/plonkstate"
)

// wireAccumulatorInstance is the persisted accumulator layout:
// PlonkInstance (commitments as compressed points; instances and
// challenges as scalar LE bytes) followed by betas (LE bytes) then e.
type wireAccumulatorInstance struct {
	WCommitments [][]byte   `cbor:"w"`
	Instances    [][][]byte `cbor:"i"`
	Challenges   [][]byte   `cbor:"c"`
	Betas        [][]byte   `cbor:"b"`
	E            []byte     `cbor:"e"`
}

// Marshal encodes an AccumulatorInstance in the persisted layout,
// CBOR-framed and lzss-compressed like Proof.Marshal.
func (a AccumulatorInstance) Marshal() ([]byte, error) {
	w := wireAccumulatorInstance{
		WCommitments: make([][]byte, len(a.Ins.WCommitments)),
		Instances:    make([][][]byte, len(a.Ins.Instances)),
		Challenges:   marshalCoeffs(a.Ins.Challenges),
		Betas:        marshalCoeffs(a.Betas),
		E:            marshalCoeffs([]fr.Element{a.E})[0],
	}
	for i, c := range a.Ins.WCommitments {
		b := c.Bytes()
		w.WCommitments[i] = b[:]
	}
	for i, col := range a.Ins.Instances {
		w.Instances[i] = marshalCoeffs(col)
	}

	raw, err := cbor.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("protogalaxy: cbor encode accumulator: %w", err)
	}
	return compressBlob(raw)
}

// UnmarshalAccumulatorInstance decodes bytes produced by
// AccumulatorInstance.Marshal.
func UnmarshalAccumulatorInstance(data []byte) (AccumulatorInstance, error) {
	raw, err := lzss.Decompress(data, nil)
	if err != nil {
		return AccumulatorInstance{}, fmt.Errorf("protogalaxy: decompress accumulator: %w", err)
	}
	var w wireAccumulatorInstance
	if err := cbor.Unmarshal(raw, &w); err != nil {
		return AccumulatorInstance{}, fmt.Errorf("protogalaxy: cbor decode accumulator: %w", err)
	}

	commitments := make([]bls12377.G1Affine, len(w.WCommitments))
	for i, b := range w.WCommitments {
		if _, err := commitments[i].SetBytes(b); err != nil {
			return AccumulatorInstance{}, fmt.Errorf("protogalaxy: decode W_commitments[%d]: %w", i, err)
		}
	}
	instances := make([][]fr.Element, len(w.Instances))
	for i, col := range w.Instances {
		c, err := unmarshalCoeffs(col)
		if err != nil {
			return AccumulatorInstance{}, fmt.Errorf("protogalaxy: decode instances[%d]: %w", i, err)
		}
		instances[i] = c
	}
	challenges, err := unmarshalCoeffs(w.Challenges)
	if err != nil {
		return AccumulatorInstance{}, fmt.Errorf("protogalaxy: decode challenges: %w", err)
	}
	betas, err := unmarshalCoeffs(w.Betas)
	if err != nil {
		return AccumulatorInstance{}, fmt.Errorf("protogalaxy: decode betas: %w", err)
	}
	e, err := unmarshalCoeffs([][]byte{w.E})
	if err != nil {
		return AccumulatorInstance{}, fmt.Errorf("protogalaxy: decode e: %w", err)
	}

	return AccumulatorInstance{
		Ins: plonkstate.PlonkInstance{
			WCommitments: commitments,
			Instances:    instances,
			Challenges:   challenges,
		},
		Betas: betas,
		E:     e[0],
	}, nil
}
