package circuit_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	blsfr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/protogalaxy/verifier/circuit"
	"github.com/protogalaxy/verifier/scalarbase"
	"github.com/protogalaxy/verifier/transcript"
)

// roCircuit absorbs three field elements, squeezes, absorbs one more
// and squeezes again, asserting both challenges: one absorb/squeeze
// cycle plus the chained second cycle, which is exactly the shape of
// the (δ, α, γ) schedule.
type roCircuit struct {
	In        [3]frontend.Variable
	Tail      frontend.Variable
	Expected1 frontend.Variable `gnark:",public"`
	Expected2 frontend.Variable `gnark:",public"`
}

func (c *roCircuit) Define(api frontend.API) error {
	ro, err := circuit.NewRO(api)
	if err != nil {
		return err
	}
	ro.AbsorbFieldIter(c.In[:])
	api.AssertIsEqual(ro.Squeeze(), c.Expected1)

	ro.AbsorbField(c.Tail)
	api.AssertIsEqual(ro.Squeeze(), c.Expected2)
	return nil
}

// TestTranscriptOffOnEquivalence is the transcript half of the off/on
// equivalence property: the challenges the off-circuit sponge squeezes
// equal the in-circuit ones bit for bit after the scalar-to-base
// reinterpretation.
func TestTranscriptOffOnEquivalence(t *testing.T) {
	scalar := func(v uint64) blsfr.Element {
		var e blsfr.Element
		e.SetUint64(v)
		return e
	}

	sp := transcript.NewSponge()
	inputs := []blsfr.Element{scalar(3), scalar(1), scalar(4)}
	require.NoError(t, sp.AbsorbScalars(inputs))
	first, err := sp.Squeeze()
	require.NoError(t, err)
	require.NoError(t, sp.AbsorbScalar(scalar(15)))
	second, err := sp.Squeeze()
	require.NoError(t, err)

	var assignment roCircuit
	for i, x := range inputs {
		assignment.In[i] = baseVar(scalarbase.ToBase(x))
	}
	assignment.Tail = baseVar(scalarbase.ToBase(scalar(15)))
	assignment.Expected1 = baseVar(scalarbase.ToBase(first))
	assignment.Expected2 = baseVar(scalarbase.ToBase(second))

	require.NoError(t, test.IsSolved(&roCircuit{}, &assignment, ecc.BW6_761.ScalarField()))
}
