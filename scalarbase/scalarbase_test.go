package scalarbase_test

import (
	"testing"

	blsfr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/require"

	"github.com/protogalaxy/verifier/scalarbase"
)

func TestRoundTrip(t *testing.T) {
	var x blsfr.Element
	x.SetUint64(123456789)

	base := scalarbase.ToBase(x)
	back := scalarbase.ToScalar(base)

	require.True(t, x.Equal(&back))
}

func TestZeroAndOne(t *testing.T) {
	var zero, one blsfr.Element
	one.SetOne()

	baseZero := scalarbase.ToBase(zero)
	require.True(t, baseZero.IsZero())
	baseOne := scalarbase.ToBase(one)
	require.Equal(t, uint64(1), baseOne.Uint64())
}
