package bn254

import (
	"math/big"

	"github.com/mratsim/constantine-go/fp"
	"github.com/mratsim/constantine-go/zoo"
)

// G1 is a point on y^2 = x^3 + 3 over Fp, in Jacobian coordinates
// (X, Y, Z) with affine (X/Z^2, Y/Z^3). Z=0 is the point at infinity.
type G1 struct {
	x, y, z fp.Element
}

var g1B = fp.FromBig(modulus, zoo.BN254.G1B)

func G1Infinity() G1 {
	return G1{x: fp.One(modulus), y: fp.One(modulus), z: fp.Zero(modulus)}
}

func G1Generator() G1 {
	return G1{
		x: fp.FromBig(modulus, zoo.BN254.G1Gx),
		y: fp.FromBig(modulus, zoo.BN254.G1Gy),
		z: fp.One(modulus),
	}
}

func G1FromAffine(x, y fp.Element) G1 {
	return G1{x: x, y: y, z: fp.One(modulus)}
}

func (p G1) IsInfinity() bool { return p.z.IsZero() }

func (p G1) ToAffine() (fp.Element, fp.Element) {
	if p.IsInfinity() {
		return fp.Zero(modulus), fp.Zero(modulus)
	}
	zInv := p.z.Inv()
	zInv2 := zInv.Square()
	zInv3 := zInv2.Mul(zInv)
	return p.x.Mul(zInv2), p.y.Mul(zInv3)
}

// IsOnCurveG1 checks y^2 == x^3 + 3.
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

func (p G1) Equal(q G1) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	px, py := p.ToAffine()
	qx, qy := q.ToAffine()
	return px.Equal(qx) && py.Equal(qy)
}

// Add performs general Jacobian addition. The P==Q, P==-Q, and
// either-operand-infinity cases are resolved by computing the generic sum
// and the doubling unconditionally and selecting between them with CMov,
// rather than branching on the compared coordinate values.
func (p G1) Add(q G1) G1 {
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
	generic := G1{x: x3, y: y3, z: z3}

	result := generic
	result = cmovG1(result, p.Double(), sameX)
	result = cmovG1(result, G1Infinity(), sameX && !sameY)
	result = cmovG1(result, p, qInf)
	result = cmovG1(result, q, pInf)
	return result
}

func (p G1) Double() G1 {
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

	return G1{x: x3, y: y3, z: z3}
}

func cmovG1(a, b G1, pick bool) G1 {
	ctl := 0
	if pick {
		ctl = 1
	}
	return G1{x: a.x.CMov(b.x, ctl), y: a.y.CMov(b.y, ctl), z: a.z.CMov(b.z, ctl)}
}

// ScalarMul is a double-and-add-always multiplication: every iteration
// doubles and CMov-selects in the addition rather than branching on the
// scalar's bits, and Add itself no longer branches on coordinate
// equality (see Add). This closes the control-flow leaks that are under
// this package's control. It is not a hardware constant-time guarantee:
// fp.Element is math/big-backed, so the field operations underneath
// still run through a variable-time bignum library. BN254 has no
// constant-time backend wired into this tree the way bls12381 has an
// opt-in blst path (see bls12381's -tags blst ScalarMul) -- treat this
// as best-effort control-flow discipline, not a timing-safe primitive.
func (p G1) ScalarMul(k *big.Int) G1 {
	kMod := new(big.Int).Mod(k, zoo.BN254.R)
	r := G1Infinity()
	base := p
	for i := kMod.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		sum := r.Add(base)
		r = cmovG1(r, sum, kMod.Bit(i) == 1)
	}
	return r
}

// ScalarMulVartime branches on the scalar's bits; only use it where k is
// public (subgroup checks, MSM over known test scalars).
func (p G1) ScalarMulVartime(k *big.Int) G1 {
	kMod := new(big.Int).Mod(k, zoo.BN254.R)
	r := G1Infinity()
	base := p
	for i := kMod.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		if kMod.Bit(i) == 1 {
			r = r.Add(base)
		}
	}
	return r
}

// InSubgroup checks [R]P == O, a full-order scalar multiplication since
// no endomorphism-accelerated shortcut is wired in.
func (p G1) InSubgroup() bool {
	return p.ScalarMulVartime(zoo.BN254.R).IsInfinity()
}
