package ipa

import "math/big"

// PrecomputedWeights holds the barycentric weights for the Lagrange
// domain {0,...,Domain-1} and the inverted domain differences ±1/k, so
// that Lagrange-basis evaluation and on-domain polynomial division never
// recompute a product over the whole domain more than once.
type PrecomputedWeights struct {
	// barycentricWeights[i] = A'(x_i) = prod_{j!=i}(x_i - x_j).
	barycentricWeights []*big.Int
	// invBarycentricWeights[i] = 1/A'(x_i).
	invBarycentricWeights []*big.Int

	// invertedDomain[k], negInvertedDomain[k] = 1/k, -1/k mod N, for
	// k in [1, Domain-1]; index 0 is unused.
	invertedDomain    []*big.Int
	negInvertedDomain []*big.Int
}

// NewPrecomputedWeights computes the barycentric weights and domain
// inverses for the fixed {0,...,Domain-1} Lagrange domain.
func NewPrecomputedWeights() *PrecomputedWeights {
	w := &PrecomputedWeights{
		barycentricWeights:    make([]*big.Int, Domain),
		invBarycentricWeights: make([]*big.Int, Domain),
		invertedDomain:        make([]*big.Int, Domain),
		negInvertedDomain:     make([]*big.Int, Domain),
	}

	for i := 0; i < Domain; i++ {
		acc := big.NewInt(1)
		xi := domainPoint(i)
		for j := 0; j < Domain; j++ {
			if j == i {
				continue
			}
			acc = scalarMul(acc, scalarSub(xi, domainPoint(j)))
		}
		w.barycentricWeights[i] = acc
	}
	w.invBarycentricWeights = scalarBatchInvert(w.barycentricWeights)

	ks := make([]*big.Int, Domain-1)
	for k := 1; k < Domain; k++ {
		ks[k-1] = big.NewInt(int64(k))
	}
	invKs := scalarBatchInvert(ks)
	for k := 1; k < Domain; k++ {
		w.invertedDomain[k] = invKs[k-1]
		w.negInvertedDomain[k] = scalarNeg(invKs[k-1])
	}

	return w
}

// invOfDiff returns 1/(a-b) mod N for distinct domain indices a, b, via
// the precomputed ±1/k table instead of a fresh modular inversion.
func (w *PrecomputedWeights) invOfDiff(a, b int) *big.Int {
	if a > b {
		return w.invertedDomain[a-b]
	}
	return w.negInvertedDomain[b-a]
}

// LagrangeBasisAt evaluates every Lagrange basis polynomial L_i at z,
// returning b with b[i] = L_i(z). If z lands exactly on domain point k,
// this is the unit vector e_k; otherwise it is the standard barycentric
// formula b_i(z) = A(z) * invBarycentricWeights[i] / (z - x_i), with the
// Domain denominators (z - x_i) batch-inverted once.
func (w *PrecomputedWeights) LagrangeBasisAt(z *big.Int) []*big.Int {
	if z.Sign() >= 0 && z.Cmp(big.NewInt(Domain)) < 0 {
		idx := int(z.Int64())
		b := make([]*big.Int, Domain)
		for i := range b {
			if i == idx {
				b[i] = big.NewInt(1)
			} else {
				b[i] = new(big.Int)
			}
		}
		return b
	}

	diffs := make([]*big.Int, Domain)
	for i := 0; i < Domain; i++ {
		diffs[i] = scalarSub(z, domainPoint(i))
	}
	diffInvs := scalarBatchInvert(diffs)

	aOfZ := big.NewInt(1)
	for _, d := range diffs {
		aOfZ = scalarMul(aOfZ, d)
	}

	b := make([]*big.Int, Domain)
	for i := 0; i < Domain; i++ {
		b[i] = scalarMul(scalarMul(aOfZ, w.invBarycentricWeights[i]), diffInvs[i])
	}
	return b
}

// DivisionOnDomain computes q(X) = (f(X) - f(index)) / (X - index) in
// evaluation form over the Lagrange domain, using the barycentric
// identity at x = index (where the naive quotient is 0/0):
//
//	q(x) = (f(x)-f(index))/(x-index)                         for x != index
//	q(index) = -sum_{x!=index} (A'(index)/A'(x)) * (f(x)-f(index))/(x-index)
func (w *PrecomputedWeights) DivisionOnDomain(index int, f []*big.Int) []*big.Int {
	q := make([]*big.Int, Domain)
	fIndex := f[index]

	sum := new(big.Int)
	ratioIndex := w.barycentricWeights[index]
	for x := 0; x < Domain; x++ {
		if x == index {
			continue
		}
		num := scalarSub(f[x], fIndex)
		q[x] = scalarMul(num, w.invOfDiff(x, index))

		ratio := scalarMul(ratioIndex, w.invBarycentricWeights[x])
		term := scalarMul(scalarMul(ratio, num), w.invOfDiff(x, index))
		sum = scalarAdd(sum, term)
	}
	q[index] = scalarNeg(sum)
	return q
}
