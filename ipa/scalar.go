// Package ipa implements the inner-product-argument commitment-opening
// protocol and its multi-point extension (multiproof) for the
// Banderwagon/Verkle vector commitment scheme: a 256-wide Pedersen
// commitment over the Lagrange basis {0,...,255}, opened at one or many
// evaluation points with a logarithmic-size proof.
//
// Grounded on crypto/ipa.go's IPAProve/IPAVerify and
// crypto/ipa_integration.go's ComputeBVector/FoldScalar/
// GenerateIPAGenerators, generalized from the teacher's simplified
// commitment-only halving (no separate inner-product-binding generator,
// no multiproof) to the full Bulletproofs-style construction: an
// auxiliary generator Q binds each round's cross terms to the claimed
// inner product, and MultiProof groups many single-point openings into
// one combined quotient-polynomial proof.
package ipa

import (
	"math/big"

	"github.com/mratsim/constantine-go/zoo"
)

// Domain is D, the Verkle polynomial evaluation domain size.
const Domain = 256

// NumRounds is log2(Domain), the number of IPA halving rounds.
const NumRounds = 8

var modulus = zoo.Banderwagon.N

func scalarAdd(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Add(a, b), modulus)
}

func scalarSub(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Sub(a, b), modulus)
}

func scalarMul(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, b), modulus)
}

func scalarNeg(a *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Neg(a), modulus)
}

func scalarInv(a *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, modulus)
}

// innerProduct computes <a, b> mod the Banderwagon subgroup order.
func innerProduct(a, b []*big.Int) *big.Int {
	result := new(big.Int)
	for i := range a {
		result = scalarAdd(result, scalarMul(a[i], b[i]))
	}
	return result
}

// domainPoint returns the i-th Lagrange domain element, i itself (the
// domain is the first Domain non-negative integers).
func domainPoint(i int) *big.Int { return big.NewInt(int64(i)) }

// scalarBatchInvert inverts every element of xs with a single modular
// inversion plus 3(n-1) multiplications (Montgomery's trick), mirroring
// fp.BatchInvert's approach one layer up in the field/scalar hierarchy.
func scalarBatchInvert(xs []*big.Int) []*big.Int {
	n := len(xs)
	out := make([]*big.Int, n)
	if n == 0 {
		return out
	}

	prefix := make([]*big.Int, n)
	acc := big.NewInt(1)
	for i, x := range xs {
		prefix[i] = acc
		acc = scalarMul(acc, x)
	}

	accInv := scalarInv(acc)
	for i := n - 1; i >= 0; i-- {
		out[i] = scalarMul(accInv, prefix[i])
		accInv = scalarMul(accInv, xs[i])
	}
	return out
}
