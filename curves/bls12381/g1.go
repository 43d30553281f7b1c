package bls12381

import (
	"math/big"

	"github.com/mratsim/constantine-go/fp"
	"github.com/mratsim/constantine-go/zoo"
)

var g1B = fp.FromBig(modulus, zoo.BLS12381.G1B)

// G1 is a point on E(Fp): y^2 = x^3 + 4, held in Jacobian coordinates
// (X, Y, Z) representing the affine point (X/Z^2, Y/Z^3). Z == 0 is the
// point at infinity.
type G1 struct {
	x, y, z fp.Element
}

func G1Infinity() G1 {
	return G1{x: fp.One(modulus), y: fp.One(modulus), z: fp.Zero(modulus)}
}

func G1Generator() G1 {
	return G1FromAffine(
		fp.FromBig(modulus, zoo.BLS12381.G1Gx),
		fp.FromBig(modulus, zoo.BLS12381.G1Gy),
	)
}

func G1FromAffine(x, y fp.Element) G1 {
	return G1{x: x, y: y, z: fp.One(modulus)}
}

func (p G1) IsInfinity() bool { return p.z.IsZero() }

func (p G1) ToAffine() (x, y fp.Element) {
	if p.z.Equal(fp.One(modulus)) {
		return p.x, p.y
	}
	zInv := p.z.Inv()
	zInv2 := zInv.Square()
	zInv3 := zInv2.Mul(zInv)
	return p.x.Mul(zInv2), p.y.Mul(zInv3)
}

// IsOnCurveG1 reports whether the affine point (x, y) satisfies y^2 = x^3+4.
func IsOnCurveG1(x, y fp.Element) bool {
	lhs := y.Square()
	rhs := x.Square().Mul(x).Add(g1B)
	return lhs.Equal(rhs)
}

func (p G1) Neg() G1 {
	if p.IsInfinity() {
		return p
	}
	return G1{x: p.x, y: p.y.Neg(), z: p.z}
}

// Add implements the general Jacobian addition formula. Per spec, every
// branch on coordinate values is converted into a conditional select over
// both outcomes: the generic sum and the doubling are both computed
// unconditionally, and ctInt-driven CMovs pick the right one for the
// P==Q, P==-Q, and either-operand-infinity cases, rather than branching on
// u1.Equal(u2)/s1.Equal(s2)/IsInfinity the way a vartime implementation
// would.
func (p G1) Add(q G1) G1 {
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
	i := h.Double().Square()
	j := h.Mul(i)
	r := s2.Sub(s1).Double()
	v := u1.Mul(i)

	x3 := r.Square().Sub(j).Sub(v.Double())
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(j).Double())
	z3 := p.z.Add(q.z).Square().Sub(z1z1).Sub(z2z2).Mul(h)
	generic := G1{x: x3, y: y3, z: z3}

	result := generic
	result = cmovG1(result, p.Double(), sameX)
	result = cmovG1(result, G1Infinity(), sameX&(1-sameY))
	result = cmovG1(result, p, qInf)
	result = cmovG1(result, q, pInf)
	return result
}

// ctInt converts a coordinate-comparison result into a 0/1 select control
// value for CMov, matching the convention spec §4.4 uses throughout: the
// comparison itself still runs on fp.Element's math/big representation
// (see the fp package doc comment), but the control flow built on top of
// it is a select, never a branch on the compared values.
func ctInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (p G1) Double() G1 {
	if p.IsInfinity() || p.y.IsZero() {
		return G1Infinity()
	}

	a := p.x.Square()
	b := p.y.Square()
	c := b.Square()
	d := p.x.Add(b).Square().Sub(a).Sub(c).Double()
	e := a.Double().Add(a)
	f := e.Square()

	x3 := f.Sub(d.Double())
	y3 := e.Mul(d.Sub(x3)).Sub(c.Double().Double().Double())
	z3 := p.y.Mul(p.z).Double()

	return G1{x: x3, y: y3, z: z3}
}

// ScalarMul computes [k]P on a secret scalar. Its implementation lives in
// scalarmul_portable.go (the default build) or scalarmul_blst.go (built
// with -tags blst, delegating to supranational/blst's hardware-backed
// constant-time multiplication) -- see those files for the two
// implementations' respective guarantees.

// ScalarMulVartime computes [k]P via plain MSB-first double-and-add,
// branching on the scalar's bits. Only for public-data uses such as MSM
// accumulation and verification checks -- never on a secret scalar.
func (p G1) ScalarMulVartime(k *big.Int) G1 {
	result := G1Infinity()
	base := p
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = result.Double()
		if k.Bit(i) == 1 {
			result = result.Add(base)
		}
	}
	return result
}

func cmovG1(a, b G1, ctl int) G1 {
	return G1{x: a.x.CMov(b.x, ctl), y: a.y.CMov(b.y, ctl), z: a.z.CMov(b.z, ctl)}
}

// InSubgroup checks [r]P == infinity, directly, rather than via a
// GLV/endomorphism-accelerated shortcut: simpler to get right by hand, at
// the cost of a full-width scalar multiplication per check.
func (p G1) InSubgroup() bool {
	return p.ScalarMulVartime(zoo.BLS12381.R).IsInfinity()
}

func (p G1) Equal(q G1) bool {
	x1, y1 := p.ToAffine()
	x2, y2 := q.ToAffine()
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	return x1.Equal(x2) && y1.Equal(y2)
}
