package plonkstate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/protogalaxy/verifier/plonkstate"
)

func TestRoundSizesSurviveThePackedForm(t *testing.T) {
	sizes := []uint32{3, 3, 3, 4, 1, 1, 2}
	s := plonkstate.NewStructure(2, nil, len(sizes), 3, sizes)
	require.Equal(t, sizes, s.RoundSizes())
}

func TestRoundSizesEmpty(t *testing.T) {
	s := plonkstate.NewStructure(2, nil, 0, 3, nil)
	require.Nil(t, s.RoundSizes())
}
