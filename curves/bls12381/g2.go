package bls12381

import (
	"math/big"

	"github.com/mratsim/constantine-go/fp"
	"github.com/mratsim/constantine-go/zoo"
)

var twistB = Fp2{
	c0: fp.FromBig(modulus, zoo.BLS12381.G2B0),
	c1: fp.FromBig(modulus, zoo.BLS12381.G2B1),
}

// G2 is a point on the sextic twist E'(Fp2): y^2 = x^3 + 4(1+u), held in
// Jacobian coordinates over Fp2.
type G2 struct {
	x, y, z Fp2
}

func G2Infinity() G2 {
	return G2{x: Fp2One(), y: Fp2One(), z: Fp2Zero()}
}

func G2Generator() G2 {
	return G2FromAffine(
		Fp2{c0: fp.FromBig(modulus, zoo.BLS12381.G2Gx0), c1: fp.FromBig(modulus, zoo.BLS12381.G2Gx1)},
		Fp2{c0: fp.FromBig(modulus, zoo.BLS12381.G2Gy0), c1: fp.FromBig(modulus, zoo.BLS12381.G2Gy1)},
	)
}

func G2FromAffine(x, y Fp2) G2 {
	return G2{x: x, y: y, z: Fp2One()}
}

func (p G2) IsInfinity() bool { return p.z.IsZero() }

func (p G2) ToAffine() (x, y Fp2) {
	if p.z.Equal(Fp2One()) {
		return p.x, p.y
	}
	zInv := p.z.Inv()
	zInv2 := zInv.Square()
	zInv3 := zInv2.Mul(zInv)
	return p.x.Mul(zInv2), p.y.Mul(zInv3)
}

func IsOnCurveG2(x, y Fp2) bool {
	lhs := y.Square()
	rhs := x.Square().Mul(x).Add(twistB)
	return lhs.Equal(rhs)
}

func (p G2) Neg() G2 {
	if p.IsInfinity() {
		return p
	}
	return G2{x: p.x, y: p.y.Neg(), z: p.z}
}

// Add implements the general Jacobian addition formula. As in G1.Add, the
// generic sum and the doubling are both computed unconditionally and the
// P==Q / P==-Q / either-operand-infinity cases are resolved by CMov
// select rather than by branching on the compared coordinates.
func (p G2) Add(q G2) G2 {
	pInf := ctInt(p.IsInfinity())
	qInf := ctInt(q.IsInfinity())

	z1z1 := p.z.Square()
	z2z2 := q.z.Square()
	u1 := p.x.Mul(z2z2)
	u2 := q.x.Mul(z1z1)
	s1 := p.y.Mul(q.z).Mul(z2z2)
	s2 := q.y.Mul(p.z).Mul(z1z1)

	sameX := ctInt(u1.Equal(u2))
	sameY := ctInt(s1.Equal(s2))

	h := u2.Sub(u1)
	i := h.Add(h).Square()
	j := h.Mul(i)
	r := s2.Sub(s1).Add(s2.Sub(s1))
	v := u1.Mul(i)

	x3 := r.Square().Sub(j).Sub(v.Add(v))
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(j).Add(s1.Mul(j)))
	z3 := p.z.Add(q.z).Square().Sub(z1z1).Sub(z2z2).Mul(h)
	generic := G2{x: x3, y: y3, z: z3}

	result := generic
	result = cmovG2(result, p.Double(), sameX)
	result = cmovG2(result, G2Infinity(), sameX&(1-sameY))
	result = cmovG2(result, p, qInf)
	result = cmovG2(result, q, pInf)
	return result
}

func (p G2) Double() G2 {
	if p.IsInfinity() || p.y.IsZero() {
		return G2Infinity()
	}

	a := p.x.Square()
	b := p.y.Square()
	c := b.Square()
	d := p.x.Add(b).Square().Sub(a).Sub(c)
	d = d.Add(d)
	e := a.Add(a).Add(a)
	f := e.Square()

	x3 := f.Sub(d.Add(d))
	c8 := c.Add(c)
	c8 = c8.Add(c8)
	c8 = c8.Add(c8)
	y3 := e.Mul(d.Sub(x3)).Sub(c8)
	z3 := p.y.Mul(p.z)
	z3 = z3.Add(z3)

	return G2{x: x3, y: y3, z: z3}
}

// ScalarMul computes [k]P on a secret scalar; see scalarmul_portable.go
// (default) and scalarmul_blst.go (-tags blst) for the implementations.

func (p G2) ScalarMulVartime(k *big.Int) G2 {
	result := G2Infinity()
	base := p
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = result.Double()
		if k.Bit(i) == 1 {
			result = result.Add(base)
		}
	}
	return result
}

func cmovG2(a, b G2, ctl int) G2 {
	return G2{x: a.x.CMov(b.x, ctl), y: a.y.CMov(b.y, ctl), z: a.z.CMov(b.z, ctl)}
}

// InSubgroup checks [r]P == infinity directly; see G1.InSubgroup for the
// same simplicity-over-GLV trade-off.
func (p G2) InSubgroup() bool {
	return p.ScalarMulVartime(zoo.BLS12381.R).IsInfinity()
}

func (p G2) Equal(q G2) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	x1, y1 := p.ToAffine()
	x2, y2 := q.ToAffine()
	return x1.Equal(x2) && y1.Equal(y2)
}
