package protogalaxy

import (
	"fmt"
	"math/bits"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"golang.org/x/sync/errgroup"

	"github.com/protogalaxy/verifier/internal/assert"
	"github.com/protogalaxy/verifier/internal/telemetry"
	"github.com/protogalaxy/verifier/plonkstate"
	"github.com/protogalaxy/verifier/polyctx"
	"github.com/protogalaxy/verifier/univariate"
)

var fLogger = telemetry.Named("protogalaxy.compute_f")

// ComputeF evaluates F at every point of the F-domain by a balanced
// tree reduction over the (padded) gate-evaluation sequence, with
// edge weights β'_h(X) = β_{h-1} + X·δ^(2^(h-1)), then recovers F's
// coefficients with an inverse FFT. betas must have
// exactly ctx.BetasCount() elements: the accumulator's current betas,
// not the β-stroke update.
func ComputeF(ctx polyctx.Context, s *plonkstate.Structure, betas []fr.Element, delta fr.Element, trace plonkstate.GetWitness) (univariate.Poly, error) {
	if err := assert.SameLength(len(betas), int(ctx.BetasCount()), "compute_F betas"); err != nil {
		return univariate.Poly{}, err
	}

	start := time.Now()
	leaves, err := collectLeaves(s, trace, ctx.CountOfEvaluationPadded())
	if err != nil {
		return univariate.Poly{}, fmt.Errorf("protogalaxy: compute_F: %w", err)
	}
	if err := assert.PowerOfTwo(uint64(len(leaves)), "compute_F leaf count"); err != nil {
		return univariate.Poly{}, err
	}

	fDomainSize := ctx.FFTPointsCountF()
	logFDomain := uint32(bits.Len64(fDomainSize - 1))
	points, err := univariate.CyclicSubgroup(logFDomain)
	if err != nil {
		return univariate.Poly{}, fmt.Errorf("protogalaxy: compute_F domain: %w", err)
	}

	evals := make([]fr.Element, fDomainSize)
	var g errgroup.Group
	for j := range points {
		j := j
		g.Go(func() error {
			evals[j] = reduceF(leaves, betas, delta, points[j])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return univariate.Poly{}, err
	}

	poly, err := univariate.IFFT(evals)
	fLogger.Debug().
		Int("leaves", len(leaves)).
		Uint64("f_domain", fDomainSize).
		Dur("elapsed", time.Since(start)).
		Msg("compute_F done")
	return poly, err
}

// reduceF runs the asymmetric tree reduction for a single evaluation
// point x: level h combines (L, R) as L + R·β'_h(x), left child always
// additive, right child always weighted.
func reduceF(leaves []fr.Element, betas []fr.Element, delta, x fr.Element) fr.Element {
	nodes := append([]fr.Element(nil), leaves...)
	deltaPow := delta

	for h := 0; h < len(betas); h++ {
		var betaPrime, term fr.Element
		term.Mul(&x, &deltaPow)
		betaPrime.Add(&betas[h], &term)

		half := len(nodes) / 2
		next := make([]fr.Element, half)
		for k := 0; k < half; k++ {
			l, r := nodes[2*k], nodes[2*k+1]
			var weighted fr.Element
			weighted.Mul(&r, &betaPrime)
			next[k].Add(&l, &weighted)
		}
		nodes = next
		deltaPow.Square(&deltaPow)
	}
	return nodes[0]
}
