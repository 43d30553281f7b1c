// Package banderwagon implements the Banderwagon group: the prime-order
// subgroup of the Bandersnatch twisted Edwards curve used by Verkle tree
// vector commitments. Coordinates live in the BLS12-381 scalar field, so
// this package sits directly underneath ipa/transcript in the commitment
// stack. As with the bls12381/bn254 curve packages, every field element
// is built on fp.Element.
package banderwagon

import (
	"errors"
	"math/big"

	"github.com/mratsim/constantine-go/fp"
	"github.com/mratsim/constantine-go/zoo"
)

var (
	modulus = zoo.Banderwagon.Fp
	curveA  = fp.FromBig(modulus, zoo.Banderwagon.A)
	curveD  = fp.FromBig(modulus, zoo.Banderwagon.D)
)

var (
	ErrNotOnCurve    = errors.New("banderwagon: point not on curve")
	errTooManyValues = errors.New("banderwagon: too many values for the Pedersen basis")
)

// Point is a Banderwagon element in extended twisted Edwards coordinates
// (X, Y, T, Z): affine x = X/Z, y = Y/Z, T = X*Y/Z.
type Point struct {
	x, y, t, z fp.Element
}

func Identity() Point {
	return Point{x: fp.Zero(modulus), y: fp.One(modulus), t: fp.Zero(modulus), z: fp.One(modulus)}
}

func Generator() Point {
	gx := fp.FromBig(modulus, zoo.Banderwagon.Gx)
	gy := fp.FromBig(modulus, zoo.Banderwagon.Gy)
	return Point{x: gx, y: gy, t: gx.Mul(gy), z: fp.One(modulus)}
}

// IsIdentity reports whether p is the neutral element. In extended
// coordinates the identity always has X=0.
func (p Point) IsIdentity() bool { return p.x.IsZero() }

// IsOnCurve checks a*x^2 + y^2 == 1 + d*x^2*y^2 for affine (x, y).
func IsOnCurve(x, y fp.Element) bool {
	x2 := x.Square()
	y2 := y.Square()
	lhs := curveA.Mul(x2).Add(y2)
	rhs := fp.One(modulus).Add(curveD.Mul(x2).Mul(y2))
	return lhs.Equal(rhs)
}

func FromAffine(x, y fp.Element) (Point, error) {
	if !IsOnCurve(x, y) {
		return Point{}, ErrNotOnCurve
	}
	return Point{x: x, y: y, t: x.Mul(y), z: fp.One(modulus)}, nil
}

func (p Point) ToAffine() (fp.Element, fp.Element) {
	zInv := p.z.Inv()
	return p.x.Mul(zInv), p.y.Mul(zInv)
}

// Add uses the unified twisted-Edwards addition formula in extended
// coordinates (Hisil et al., "Twisted Edwards Curves Revisited"):
//
//	A = X1 X2, B = Y1 Y2, C = d T1 T2, D = Z1 Z2
//	E = (X1+Y1)(X2+Y2) - A - B, F = D-C, G = D+C, H = B - a*A
//	X3 = E F, Y3 = G H, T3 = E H, Z3 = F G
func (p Point) Add(q Point) Point {
	A := p.x.Mul(q.x)
	B := p.y.Mul(q.y)
	C := p.t.Mul(curveD).Mul(q.t)
	D := p.z.Mul(q.z)

	E := p.x.Add(p.y).Mul(q.x.Add(q.y)).Sub(A).Sub(B)
	F := D.Sub(C)
	G := D.Add(C)
	H := B.Sub(curveA.Mul(A))

	return Point{x: E.Mul(F), y: G.Mul(H), t: E.Mul(H), z: F.Mul(G)}
}

// Double uses the dedicated twisted-Edwards doubling formula:
//
//	A = X1^2, B = Y1^2, C = 2 Z1^2, D = a*A
//	E = (X1+Y1)^2 - A - B, G = D+B, F = G-C, H = D-B
//	X3 = E F, Y3 = G H, T3 = E H, Z3 = F G
func (p Point) Double() Point {
	A := p.x.Square()
	B := p.y.Square()
	two := fp.FromUint64(modulus, 2)
	C := two.Mul(p.z.Square())

	D := curveA.Mul(A)
	E := p.x.Add(p.y).Square().Sub(A).Sub(B)
	G := D.Add(B)
	F := G.Sub(C)
	H := D.Sub(B)

	return Point{x: E.Mul(F), y: G.Mul(H), t: E.Mul(H), z: F.Mul(G)}
}

// Neg returns -(x,y) = (-x,y).
func (p Point) Neg() Point {
	return Point{x: p.x.Neg(), y: p.y, t: p.t.Neg(), z: p.z}
}

func cmov(a, b Point, pick bool) Point {
	ctl := 0
	if pick {
		ctl = 1
	}
	return Point{
		x: a.x.CMov(b.x, ctl),
		y: a.y.CMov(b.y, ctl),
		t: a.t.CMov(b.t, ctl),
		z: a.z.CMov(b.z, ctl),
	}
}

// ScalarMul is a CMov-based double-and-add-always multiplication: it does
// not branch on the scalar's bits. It is not constant-time: the loop runs
// scalar.BitLen() times and the coordinates are math/big-backed
// fp.Elements. Scalars are reduced modulo the subgroup order N (not the
// coordinate field modulus).
func (p Point) ScalarMul(k *big.Int) Point {
	scalar := new(big.Int).Mod(k, zoo.Banderwagon.N)
	r := Identity()
	base := p
	for i := scalar.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		sum := r.Add(base)
		r = cmov(r, sum, scalar.Bit(i) == 1)
	}
	return r
}

// ScalarMulVartime branches on the scalar's bits; only for public scalars.
func (p Point) ScalarMulVartime(k *big.Int) Point {
	scalar := new(big.Int).Mod(k, zoo.Banderwagon.N)
	r := Identity()
	base := p
	for i := scalar.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		if scalar.Bit(i) == 1 {
			r = r.Add(base)
		}
	}
	return r
}

// MSM computes sum(scalars[i] * points[i]) by simple accumulation.
func MSM(points []Point, scalars []*big.Int) Point {
	result := Identity()
	for i := range points {
		if scalars[i].Sign() == 0 {
			continue
		}
		result = result.Add(points[i].ScalarMul(scalars[i]))
	}
	return result
}

// MapToField maps a Banderwagon element to its canonical scalar
// representative x/y -- the quotient-invariant value used as a Verkle
// tree commitment's 32-byte output, since (x,y) and (-x,-y) both map to
// the same x/y.
func (p Point) MapToField() fp.Element {
	if p.IsIdentity() {
		return fp.Zero(modulus)
	}
	x, y := p.ToAffine()
	return x.Mul(y.Inv())
}

// MapToBytes big-endian encodes MapToField's result to 32 bytes.
func (p Point) MapToBytes() [byteLen]byte {
	v := p.MapToField()
	var out [byteLen]byte
	v.ToBig().FillBytes(out[:])
	return out
}

// Equal compares points in the Banderwagon quotient group, where (x,y) and
// (-x,-y) (the two points of a Bandersnatch fiber mapping to the same
// Banderwagon element) are identified:
//
//	X1 Z2 == X2 Z1 and Y1 Z2 == Y2 Z1, OR the same with X2,Y2 negated.
func (p Point) Equal(q Point) bool {
	lx := p.x.Mul(q.z)
	rx := q.x.Mul(p.z)
	ly := p.y.Mul(q.z)
	ry := q.y.Mul(p.z)

	if lx.Equal(rx) && ly.Equal(ry) {
		return true
	}
	return lx.Equal(rx.Neg()) && ly.Equal(ry.Neg())
}
