package bn254

import (
	"math/big"

	"github.com/mratsim/constantine-go/zoo"
)

// G2 is a point on the sextic twist y^2 = x^3 + b' over Fp2, in Jacobian
// coordinates.
type G2 struct {
	x, y, z Fp2
}

var g2B = NewFp2(zoo.BN254.G2B0, zoo.BN254.G2B1)

func G2Infinity() G2 {
	return G2{x: Fp2One(), y: Fp2One(), z: Fp2Zero()}
}

func G2Generator() G2 {
	return G2{
		x: NewFp2(zoo.BN254.G2Gx0, zoo.BN254.G2Gx1),
		y: NewFp2(zoo.BN254.G2Gy0, zoo.BN254.G2Gy1),
		z: Fp2One(),
	}
}

func G2FromAffine(x, y Fp2) G2 {
	return G2{x: x, y: y, z: Fp2One()}
}

func (p G2) IsInfinity() bool { return p.z.IsZero() }

func (p G2) ToAffine() (Fp2, Fp2) {
	if p.IsInfinity() {
		return Fp2Zero(), Fp2Zero()
	}
	zInv := p.z.Inv()
	zInv2 := zInv.Square()
	zInv3 := zInv2.Mul(zInv)
	return p.x.Mul(zInv2), p.y.Mul(zInv3)
}

// IsOnCurveG2 checks y^2 == x^3 + b'.
func IsOnCurveG2(x, y Fp2) bool {
	lhs := y.Square()
	rhs := x.Square().Mul(x).Add(g2B)
	return lhs.Equal(rhs)
}

func (p G2) Neg() G2 {
	if p.IsInfinity() {
		return p
	}
	return G2{x: p.x, y: p.y.Neg(), z: p.z}
}

func (p G2) Equal(q G2) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	px, py := p.ToAffine()
	qx, qy := q.ToAffine()
	return px.Equal(qx) && py.Equal(qy)
}

// Add mirrors G1.Add's control-flow discipline: the generic sum and the
// doubling are both computed unconditionally, and CMov resolves the
// P==Q, P==-Q, and either-operand-infinity cases instead of a branch on
// the compared coordinates.
func (p G2) Add(q G2) G2 {
	pInf := p.IsInfinity()
	qInf := q.IsInfinity()

	z1sq := p.z.Square()
	z2sq := q.z.Square()
	u1 := p.x.Mul(z2sq)
	u2 := q.x.Mul(z1sq)
	s1 := p.y.Mul(q.z).Mul(z2sq)
	s2 := q.y.Mul(p.z).Mul(z1sq)

	sameX := u1.Equal(u2)
	sameY := s1.Equal(s2)

	h := u2.Sub(u1)
	i := h.Add(h).Square()
	j := h.Mul(i)
	r := s2.Sub(s1)
	r = r.Add(r)
	v := u1.Mul(i)

	x3 := r.Square().Sub(j).Sub(v.Add(v))
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(j).Add(s1.Mul(j)))
	z3 := p.z.Add(q.z).Square().Sub(z1sq).Sub(z2sq).Mul(h)
	generic := G2{x: x3, y: y3, z: z3}

	result := generic
	result = cmovG2(result, p.Double(), sameX)
	result = cmovG2(result, G2Infinity(), sameX && !sameY)
	result = cmovG2(result, p, qInf)
	result = cmovG2(result, q, pInf)
	return result
}

func (p G2) Double() G2 {
	if p.IsInfinity() {
		return p
	}
	A := p.x.Square()
	B := p.y.Square()
	C := B.Square()

	D := p.x.Add(B).Square().Sub(A).Sub(C)
	D = D.Add(D)
	E := A.Add(A).Add(A)

	x3 := E.Square().Sub(D.Add(D))
	eightC := C.Add(C).Add(C).Add(C).Add(C).Add(C).Add(C).Add(C)
	y3 := E.Mul(D.Sub(x3)).Sub(eightC)
	z3 := p.y.Add(p.y).Mul(p.z)

	return G2{x: x3, y: y3, z: z3}
}

func cmovG2(a, b G2, pick bool) G2 {
	ctl := 0
	if pick {
		ctl = 1
	}
	return G2{x: a.x.CMov(b.x, ctl), y: a.y.CMov(b.y, ctl), z: a.z.CMov(b.z, ctl)}
}

func (p G2) ScalarMul(k *big.Int) G2 {
	kMod := new(big.Int).Mod(k, zoo.BN254.R)
	r := G2Infinity()
	base := p
	for i := kMod.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		sum := r.Add(base)
		r = cmovG2(r, sum, kMod.Bit(i) == 1)
	}
	return r
}

func (p G2) ScalarMulVartime(k *big.Int) G2 {
	kMod := new(big.Int).Mod(k, zoo.BN254.R)
	r := G2Infinity()
	base := p
	for i := kMod.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		if kMod.Bit(i) == 1 {
			r = r.Add(base)
		}
	}
	return r
}

func (p G2) InSubgroup() bool {
	return p.ScalarMulVartime(zoo.BN254.R).IsInfinity()
}
