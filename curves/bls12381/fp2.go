// Package bls12381 implements the BLS12-381 tower fields, G1/G2 curve
// groups, optimal ate pairing, hash-to-curve, and wire encodings.
//
// Field arithmetic is built on fp.Element, which is math/big-backed and
// variable-time (see the fp package doc comment), also when ScalarMul
// processes a secret scalar. The tower follows the standard construction
// for this curve:
//
//	Fp  -> Fp2  = Fp[u]  / (u^2 - beta),      beta = -1
//	Fp2 -> Fp6  = Fp2[v] / (v^3 - xi),        xi = 1+u
//	Fp6 -> Fp12 = Fp6[w] / (w^2 - v)
package bls12381

import (
	"github.com/mratsim/constantine-go/fp"
	"github.com/mratsim/constantine-go/zoo"
)

var modulus = zoo.BLS12381.P

// Fp2 is an element c0 + c1*u of Fp[u]/(u^2+1).
type Fp2 struct {
	c0, c1 fp.Element
}

func Fp2Zero() Fp2 { return Fp2{c0: fp.Zero(modulus), c1: fp.Zero(modulus)} }
func Fp2One() Fp2  { return Fp2{c0: fp.One(modulus), c1: fp.Zero(modulus)} }

func NewFp2(c0, c1 fp.Element) Fp2 { return Fp2{c0: c0, c1: c1} }

func (a Fp2) IsZero() bool       { return a.c0.IsZero() && a.c1.IsZero() }
func (a Fp2) Equal(b Fp2) bool   { return a.c0.Equal(b.c0) && a.c1.Equal(b.c1) }
func (a Fp2) C0() fp.Element     { return a.c0 }
func (a Fp2) C1() fp.Element     { return a.c1 }

func (a Fp2) Add(b Fp2) Fp2 { return Fp2{c0: a.c0.Add(b.c0), c1: a.c1.Add(b.c1)} }
func (a Fp2) Sub(b Fp2) Fp2 { return Fp2{c0: a.c0.Sub(b.c0), c1: a.c1.Sub(b.c1)} }
func (a Fp2) Neg() Fp2      { return Fp2{c0: a.c0.Neg(), c1: a.c1.Neg()} }

// Mul multiplies via the 3-multiplication Karatsuba formula, exploiting
// u^2 = -1: (a0+a1 u)(b0+b1 u) = (a0 b0 - a1 b1) + (a0 b1 + a1 b0) u.
func (a Fp2) Mul(b Fp2) Fp2 {
	v0 := a.c0.Mul(b.c0)
	v1 := a.c1.Mul(b.c1)
	c0 := v0.Sub(v1)
	c1 := a.c0.Add(a.c1).Mul(b.c0.Add(b.c1)).Sub(v0).Sub(v1)
	return Fp2{c0: c0, c1: c1}
}

func (a Fp2) Square() Fp2 {
	c0 := a.c0.Add(a.c1).Mul(a.c0.Sub(a.c1))
	c1 := a.c0.Mul(a.c1).Double()
	return Fp2{c0: c0, c1: c1}
}

// MulByNonResidue multiplies by xi = 1+u, the Fp6 non-residue:
// (1+u)(a0+a1 u) = (a0-a1) + (a0+a1) u.
func (a Fp2) MulByNonResidue() Fp2 {
	return Fp2{c0: a.c0.Sub(a.c1), c1: a.c0.Add(a.c1)}
}

func (a Fp2) MulScalar(s fp.Element) Fp2 {
	return Fp2{c0: a.c0.Mul(s), c1: a.c1.Mul(s)}
}

// Conj returns the Fp2 conjugate a0 - a1*u.
func (a Fp2) Conj() Fp2 { return Fp2{c0: a.c0, c1: a.c1.Neg()} }

// Inv returns the multiplicative inverse via the norm a0^2+a1^2:
// (a0+a1 u)^-1 = (a0-a1 u) / (a0^2+a1^2).
func (a Fp2) Inv() Fp2 {
	norm := a.c0.Square().Add(a.c1.Square())
	normInv := norm.Inv()
	return Fp2{c0: a.c0.Mul(normInv), c1: a.c1.Neg().Mul(normInv)}
}

// Sgn0 follows the hash-to-curve sign convention for extension fields:
// sgn0(c0) unless c0 is zero, in which case sgn0(c1).
func (a Fp2) Sgn0() int {
	if a.c0.IsZero() {
		return a.c1.Sgn0()
	}
	return a.c0.Sgn0()
}

// IsSquare reports whether a has a square root in Fp2 via the norm map:
// a is a square iff its norm a0^2+a1^2 is a square in Fp.
func (a Fp2) IsSquare() bool {
	if a.IsZero() {
		return true
	}
	return a.c0.Square().Add(a.c1.Square()).IsSquare()
}

// Sqrt returns (true, r) with r*r == a when a is a square, computed via the
// norm-based construction: let n = sqrt(a0^2+a1^2), then x0 = (a0+n)/2 is a
// candidate for r0^2; whichever of x0, a1/(2 r0) solves the system is r.
func (a Fp2) Sqrt() (ok bool, r Fp2) {
	if a.IsZero() {
		return true, Fp2Zero()
	}
	norm := a.c0.Square().Add(a.c1.Square())
	normOk, n := norm.Sqrt()
	if !normOk {
		return false, Fp2{}
	}

	two := fp.FromUint64(modulus, 2)
	twoInv := two.Inv()

	x0 := a.c0.Add(n).Mul(twoInv)
	if ok, r0 := x0.Sqrt(); ok {
		r1 := a.c1.Mul(twoInv).Mul(r0.Inv())
		cand := Fp2{c0: r0, c1: r1}
		if cand.Square().Equal(a) {
			return true, cand
		}
	}

	x0 = a.c0.Sub(n).Mul(twoInv)
	if ok, r0 := x0.Sqrt(); ok {
		r1 := a.c1.Mul(twoInv).Mul(r0.Inv())
		cand := Fp2{c0: r0, c1: r1}
		if cand.Square().Equal(a) {
			return true, cand
		}
	}

	return false, Fp2{}
}

func (a Fp2) CMov(b Fp2, ctl int) Fp2 {
	return Fp2{c0: a.c0.CMov(b.c0, ctl), c1: a.c1.CMov(b.c1, ctl)}
}
