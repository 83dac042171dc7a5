package protogalaxy

import (
	"errors"
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"golang.org/x/sync/errgroup"

	"github.com/protogalaxy/verifier/foldedwitness"
	"github.com/protogalaxy/verifier/internal/assert"
	"github.com/protogalaxy/verifier/internal/telemetry"
	"github.com/protogalaxy/verifier/plonkstate"
	"github.com/protogalaxy/verifier/polyctx"
	"github.com/protogalaxy/verifier/univariate"
)

var gLogger = telemetry.Named("protogalaxy.compute_g")

// ErrEmptyTracesNotAllowed is returned when ComputeG is asked to fold
// zero incoming traces.
var ErrEmptyTracesNotAllowed = errors.New("protogalaxy: empty traces not allowed")

// ComputeG evaluates G at every point of the G-domain: for each point
// X, the folded-witness view at X gives a per-X gate-evaluation
// sequence, reduced by the same balanced tree as compute_F but with
// node weights β*_h (the β-stroke values, independent of X) instead of
// compute_F's edge weights. Recovers G's coefficients
// by inverse FFT.
func ComputeG(ctx polyctx.Context, s *plonkstate.Structure, betaStar []fr.Element, accumulator plonkstate.GetWitness, accChallenges []fr.Element, incoming []plonkstate.GetWitness, incomingChallenges [][]fr.Element) (univariate.Poly, error) {
	if len(incoming) == 0 {
		return univariate.Poly{}, ErrEmptyTracesNotAllowed
	}
	if err := assert.SameLength(len(betaStar), int(ctx.BetasCount()), "compute_G betas"); err != nil {
		return univariate.Poly{}, err
	}

	start := time.Now()
	set, err := foldedwitness.New(ctx.LagrangeDomain(), accumulator, accChallenges, incoming, incomingChallenges)
	if err != nil {
		return univariate.Poly{}, fmt.Errorf("protogalaxy: compute_G: %w", err)
	}

	gDomainSize := ctx.FFTPointsCountG()
	points, err := univariate.CyclicSubgroup(ctx.FFTLogDomainSizeG())
	if err != nil {
		return univariate.Poly{}, fmt.Errorf("protogalaxy: compute_G domain: %w", err)
	}

	evals := make([]fr.Element, gDomainSize)
	errs := make([]error, len(points))
	var g errgroup.Group
	for j := range points {
		j := j
		g.Go(func() error {
			leaves, err := collectLeaves(s, set.At(points[j]), ctx.CountOfEvaluationPadded())
			if err != nil {
				errs[j] = err
				return nil
			}
			evals[j] = reduceG(leaves, betaStar)
			return nil
		})
	}
	_ = g.Wait()
	for _, err := range errs {
		if err != nil {
			return univariate.Poly{}, fmt.Errorf("protogalaxy: compute_G: %w", err)
		}
	}

	poly, err := univariate.IFFT(evals)
	gLogger.Debug().
		Uint64("g_domain", gDomainSize).
		Dur("elapsed", time.Since(start)).
		Msg("compute_G done")
	return poly, err
}

// reduceG is compute_F's reduceF but with a fixed, X-independent
// weight per level instead of a per-point edge weight.
func reduceG(leaves []fr.Element, betaStar []fr.Element) fr.Element {
	nodes := append([]fr.Element(nil), leaves...)
	for h := 0; h < len(betaStar); h++ {
		half := len(nodes) / 2
		next := make([]fr.Element, half)
		for k := 0; k < half; k++ {
			l, r := nodes[2*k], nodes[2*k+1]
			var weighted fr.Element
			weighted.Mul(&r, &betaStar[h])
			next[k].Add(&l, &weighted)
		}
		nodes = next
	}
	return nodes[0]
}
