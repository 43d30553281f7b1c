// Package bn254 implements the BN254 (alt_bn128) pairing-friendly curve:
// the base field Fp, its quadratic/sextic/duodecimal tower (Fp2, Fp6,
// Fp12), the G1/G2 groups, the optimal ate pairing, hash-to-curve, and
// compressed point encoding. Every field element is built on fp.Element,
// the same math/big-backed, variable-time primitive the bls12381
// package uses, so the two curve packages share one arithmetic
// foundation and differ only in their tower/curve constants.
package bn254

import (
	"math/big"

	"github.com/mratsim/constantine-go/fp"
	"github.com/mratsim/constantine-go/zoo"
)

var modulus = zoo.BN254.P

// nonResidueNine is the constant 9 used in the Fp6 non-residue xi = 9+i.
var nonResidueNine = fp.FromUint64(modulus, 9)

// Fp2 is an element of Fp2 = Fp[i]/(i^2+1), held as c0 + c1*i.
type Fp2 struct {
	c0, c1 fp.Element
}

func Fp2Zero() Fp2 { return Fp2{c0: fp.Zero(modulus), c1: fp.Zero(modulus)} }
func Fp2One() Fp2  { return Fp2{c0: fp.One(modulus), c1: fp.Zero(modulus)} }

func NewFp2(c0, c1 *big.Int) Fp2 {
	return Fp2{c0: fp.FromBig(modulus, c0), c1: fp.FromBig(modulus, c1)}
}

func (a Fp2) IsZero() bool     { return a.c0.IsZero() && a.c1.IsZero() }
func (a Fp2) Equal(b Fp2) bool { return a.c0.Equal(b.c0) && a.c1.Equal(b.c1) }
func (a Fp2) C0() fp.Element   { return a.c0 }
func (a Fp2) C1() fp.Element   { return a.c1 }

func (a Fp2) Add(b Fp2) Fp2 { return Fp2{c0: a.c0.Add(b.c0), c1: a.c1.Add(b.c1)} }
func (a Fp2) Sub(b Fp2) Fp2 { return Fp2{c0: a.c0.Sub(b.c0), c1: a.c1.Sub(b.c1)} }
func (a Fp2) Neg() Fp2      { return Fp2{c0: a.c0.Neg(), c1: a.c1.Neg()} }

// Mul computes (a0+a1 i)(b0+b1 i) = (a0 b0 - a1 b1) + (a0 b1 + a1 b0) i via
// Karatsuba: v0=a0 b0, v1=a1 b1, real=v0-v1, imag=(a0+a1)(b0+b1)-v0-v1.
func (a Fp2) Mul(b Fp2) Fp2 {
	v0 := a.c0.Mul(b.c0)
	v1 := a.c1.Mul(b.c1)
	real := v0.Sub(v1)
	imag := a.c0.Add(a.c1).Mul(b.c0.Add(b.c1)).Sub(v0).Sub(v1)
	return Fp2{c0: real, c1: imag}
}

func (a Fp2) Square() Fp2 {
	ab := a.c0.Mul(a.c1)
	return Fp2{
		c0: a.c0.Add(a.c1).Mul(a.c0.Sub(a.c1)),
		c1: ab.Add(ab),
	}
}

// MulByNonResidue multiplies by xi = 9+i, the Fp6 non-residue:
// (a0+a1 i)(9+i) = (9 a0 - a1) + (9 a1 + a0) i.
func (a Fp2) MulByNonResidue() Fp2 {
	nine := nonResidueNine
	return Fp2{
		c0: a.c0.Mul(nine).Sub(a.c1),
		c1: a.c1.Mul(nine).Add(a.c0),
	}
}

func (a Fp2) MulScalar(s fp.Element) Fp2 {
	return Fp2{c0: a.c0.Mul(s), c1: a.c1.Mul(s)}
}

func (a Fp2) Conj() Fp2 { return Fp2{c0: a.c0, c1: a.c1.Neg()} }

// Inv returns a^-1 via (a0+a1 i)^-1 = (a0-a1 i) / (a0^2+a1^2).
func (a Fp2) Inv() Fp2 {
	norm := a.c0.Square().Add(a.c1.Square())
	normInv := norm.Inv()
	return Fp2{c0: a.c0.Mul(normInv), c1: a.c1.Neg().Mul(normInv)}
}

func (a Fp2) CMov(b Fp2, ctl int) Fp2 {
	return Fp2{c0: a.c0.CMov(b.c0, ctl), c1: a.c1.CMov(b.c1, ctl)}
}
