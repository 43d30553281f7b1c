//go:build !blst

// Default backend: double-and-add-always over this package's own Jacobian
// arithmetic, with every bit folded in via CMov rather than a branch. See
// scalarmul_blst.go (built with -tags blst) for a hardware-backed
// constant-time alternative.
package bls12381

import "math/big"

// ScalarMul computes [k]P via constant-time double-and-add-always: every
// iteration doubles and conditionally folds in an addition with CMov's
// logical select, rather than branching on the scalar's bits. Since G1's
// coordinate field (fp.Element) is math/big-backed, this is a
// control-flow discipline, not a hardware constant-time guarantee --
// build with -tags blst for that.
func (p G1) ScalarMul(k *big.Int) G1 {
	acc := G1Infinity()
	base := p
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc = acc.Double()
		sum := acc.Add(base)
		bit := int(k.Bit(i))
		acc = cmovG1(acc, sum, bit)
	}
	return acc
}

// ScalarMul computes [k]P via constant-time double-and-add-always; see
// G1.ScalarMul for the same control-flow-vs-hardware caveat.
func (p G2) ScalarMul(k *big.Int) G2 {
	acc := G2Infinity()
	base := p
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc = acc.Double()
		sum := acc.Add(base)
		bit := int(k.Bit(i))
		acc = cmovG2(acc, sum, bit)
	}
	return acc
}
