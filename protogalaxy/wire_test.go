package protogalaxy_test

import (
	"testing"

	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/protogalaxy/verifier/plonkstate"
	"github.com/protogalaxy/verifier/protogalaxy"
	"github.com/protogalaxy/verifier/univariate"
)

var frComparer = cmp.Comparer(func(a, b fr.Element) bool { return a.Equal(&b) })

var g1Comparer = cmp.Comparer(func(a, b bls12377.G1Affine) bool { return a.Equal(&b) })

func TestProofWireRoundTrip(t *testing.T) {
	proof := protogalaxy.Proof{
		PolyF: univariate.FromCoeffs([]fr.Element{elem(1), elem(0), elem(3), elem(0)}),
		PolyK: univariate.FromCoeffs([]fr.Element{elem(9), elem(8)}),
	}

	blob, err := proof.Marshal()
	require.NoError(t, err)

	got, err := protogalaxy.UnmarshalProof(blob)
	require.NoError(t, err)

	// leading zeros are load-bearing for circuit sizing, so lengths
	// must survive the trip, not just values.
	require.Equal(t, proof.PolyF.Len(), got.PolyF.Len())
	require.Equal(t, proof.PolyK.Len(), got.PolyK.Len())

	if diff := cmp.Diff(proof.PolyF.Coeffs(), got.PolyF.Coeffs(), frComparer); diff != "" {
		t.Fatalf("poly_F mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(proof.PolyK.Coeffs(), got.PolyK.Coeffs(), frComparer); diff != "" {
		t.Fatalf("poly_K mismatch (-want +got):\n%s", diff)
	}
}

func TestAccumulatorInstanceWireRoundTrip(t *testing.T) {
	_, _, g1, _ := bls12377.Generators()

	acc := protogalaxy.AccumulatorInstance{
		Ins: plonkstate.PlonkInstance{
			WCommitments: []bls12377.G1Affine{g1},
			Instances:    [][]fr.Element{{elem(4), elem(5)}, {elem(6)}},
			Challenges:   []fr.Element{elem(7)},
		},
		Betas: []fr.Element{elem(1), elem(2), elem(3)},
		E:     elem(11),
	}

	blob, err := acc.Marshal()
	require.NoError(t, err)

	got, err := protogalaxy.UnmarshalAccumulatorInstance(blob)
	require.NoError(t, err)

	if diff := cmp.Diff(acc.Ins.WCommitments, got.Ins.WCommitments, g1Comparer); diff != "" {
		t.Fatalf("commitments mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(acc.Ins.Instances, got.Ins.Instances, frComparer); diff != "" {
		t.Fatalf("instances mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(acc.Ins.Challenges, got.Ins.Challenges, frComparer); diff != "" {
		t.Fatalf("challenges mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(acc.Betas, got.Betas, frComparer); diff != "" {
		t.Fatalf("betas mismatch (-want +got):\n%s", diff)
	}
	require.True(t, acc.E.Equal(&got.E))
}
