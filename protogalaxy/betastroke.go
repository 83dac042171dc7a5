package protogalaxy

import "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

// BetaStrokeIter streams the β-stroke update β*_i = β_i + α·δ^(2^i),
// squaring δ after each step. It is pure and cheap to
// clone: two iterators built the same way always agree, which is the
// off/on equivalence the circuit tests pin down.
type BetaStrokeIter struct {
	betas []fr.Element
	alpha fr.Element
	delta fr.Element
	i     int
}

// NewBetaStrokeIter builds an iterator over betas (length β_count),
// using challenges alpha and delta.
func NewBetaStrokeIter(betas []fr.Element, alpha, delta fr.Element) *BetaStrokeIter {
	return &BetaStrokeIter{betas: betas, alpha: alpha, delta: delta}
}

// Next returns β*_i and true, then advances i and squares δ. Once
// every β has been consumed it returns the zero value and false.
func (b *BetaStrokeIter) Next() (fr.Element, bool) {
	if b.i >= len(b.betas) {
		return fr.Element{}, false
	}
	var out, term fr.Element
	term.Mul(&b.alpha, &b.delta)
	out.Add(&b.betas[b.i], &term)

	b.delta.Square(&b.delta)
	b.i++
	return out, true
}

// Clone returns an independent iterator positioned exactly where b is.
func (b *BetaStrokeIter) Clone() *BetaStrokeIter {
	cp := *b
	cp.betas = append([]fr.Element(nil), b.betas...)
	return &cp
}

// Collect drains the iterator into a fresh slice of length
// len(betas)-i, the shape compute_F/compute_G and the property tests
// of the fold step consume it in.
func (b *BetaStrokeIter) Collect() []fr.Element {
	out := make([]fr.Element, 0, len(b.betas)-b.i)
	for {
		v, ok := b.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}
