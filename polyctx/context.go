// Package polyctx computes the sizes that the F/G/K polynomial engines
// need from a PLONK structure and a fold arity, exactly once per fold
// step, so the engines themselves never recompute domain arithmetic.
package polyctx

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/protogalaxy/verifier/internal/assert"
	"github.com/protogalaxy/verifier/plonkstate"
)

// Context is a pure function of (S, L): the PLONK structure being
// folded and the number of incoming instances L. It is cheap to
// recompute and carries no state beyond these derived sizes.
type Context struct {
	instancesToFold         int
	countOfEvaluationPadded uint64
	fftPointsCountG         uint64
}

// New builds a Context for folding l incoming traces (plus the running
// accumulator) of the PLONK structure s. l+1 must be a power of two.
func New(s *plonkstate.Structure, l int) (Context, error) {
	instancesToFold := l + 1
	if err := assert.PowerOfTwo(uint64(instancesToFold), "instances to fold (traces + accumulator)"); err != nil {
		return Context{}, err
	}

	countOfEval := countOfEvaluation(s)
	paddedCount := nextPowerOfTwo(countOfEval)

	maxGateDegree := s.MaxGateDegree()
	fftPointsCountG := nextPowerOfTwo(uint64(l)*uint64(maxGateDegree) + 1)

	return Context{
		instancesToFold:         instancesToFold,
		countOfEvaluationPadded: paddedCount,
		fftPointsCountG:         fftPointsCountG,
	}, nil
}

func countOfEvaluation(s *plonkstate.Structure) uint64 {
	rows := uint64(1) << s.K
	gates := uint64(len(s.Gates))
	return rows * gates
}

func nextPowerOfTwo[T constraints.Unsigned](n T) T {
	if n <= 1 {
		return 1
	}
	return T(1) << bits.Len64(uint64(n)-1)
}

// InstancesToFold is L+1: the number of incoming traces plus the
// running accumulator.
func (c Context) InstancesToFold() int {
	return c.instancesToFold
}

// BetasCount is log2 of the padded row*gate evaluation count: the
// number of β/δ challenge powers compute_F and compute_G need.
func (c Context) BetasCount() uint32 {
	return uint32(bits.Len64(c.countOfEvaluationPadded - 1))
}

// CountOfEvaluationPadded is the row*gate evaluation count, padded up
// to the next power of two with zero evaluations.
func (c Context) CountOfEvaluationPadded() uint64 {
	return c.countOfEvaluationPadded
}

// FFTPointsCountF is the domain size compute_F's tree reduction
// evaluates over: the smallest power of two at or above BetasCount()+1.
func (c Context) FFTPointsCountF() uint64 {
	return nextPowerOfTwo(uint64(c.BetasCount()) + 1)
}

// FFTLogDomainSizeG is log2 of the domain size compute_G evaluates
// over.
func (c Context) FFTLogDomainSizeG() uint32 {
	return uint32(bits.Len64(c.fftPointsCountG - 1))
}

// FFTPointsCountG is the domain size compute_G's tree reduction
// evaluates over: next_power_of_two(L*maxGateDegree + 1).
func (c Context) FFTPointsCountG() uint64 {
	return c.fftPointsCountG
}

// LagrangeDomain is log2(InstancesToFold): the size of the Lagrange
// basis used to fold witnesses and instances.
func (c Context) LagrangeDomain() uint32 {
	return uint32(bits.Len64(uint64(c.instancesToFold) - 1))
}

// FFTLogDomainSizeK is log2 of the domain size compute_K evaluates
// over, on a coset shifted away from the Lagrange domain's roots of
// unity.
func (c Context) FFTLogDomainSizeK() uint32 {
	diff := c.fftPointsCountG + 1
	if diff >= uint64(c.instancesToFold) {
		diff -= uint64(c.instancesToFold)
	} else {
		diff = 0
	}
	return uint32(bits.Len64(nextPowerOfTwo(diff) - 1))
}
