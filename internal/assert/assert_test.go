package assert_test

import (
	"testing"

	"github.com/protogalaxy/verifier/internal/assert"
	"github.com/stretchr/testify/require"
)

func TestTrue(t *testing.T) {
	require.NoError(t, assert.True(true, "unreachable"))
	require.Error(t, assert.True(false, "boom %d", 42))
}

func TestPowerOfTwo(t *testing.T) {
	require.NoError(t, assert.PowerOfTwo(1, "n"))
	require.NoError(t, assert.PowerOfTwo(16, "n"))
	require.Error(t, assert.PowerOfTwo(0, "n"))
	require.Error(t, assert.PowerOfTwo(6, "n"))
}

func TestSameLength(t *testing.T) {
	require.NoError(t, assert.SameLength(3, 3, "betas/deltas"))
	require.Error(t, assert.SameLength(3, 4, "betas/deltas"))
}
