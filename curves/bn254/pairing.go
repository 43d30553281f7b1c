package bn254

import (
	"github.com/mratsim/constantine-go/fp"
)

// sixuPlus2NAF is the non-adjacent form of 6u+2 for BN254's loop parameter
// u=4965661367192848881, least-significant digit first. Using 6u+2 instead
// of the subgroup order r is what makes this an *optimal* ate pairing: the
// sextic twist's Frobenius lets two extra addition steps (for Q^p and
// -Q^(p^2)) substitute for most of the loop length difference.
var sixuPlus2NAF = []int8{
	0, 0, 0, 1, 0, 1, 0, -1, 0, 0, 1, -1, 0, 0, 1, 0,
	0, 1, 1, 0, -1, 0, 0, 1, 0, -1, 0, 0, 0, 0, 1, 1,
	1, 0, 0, -1, 0, 0, 1, 0, 0, 0, 0, 0, -1, 0, 0, 1,
	1, 0, 0, -1, 0, 0, 0, 1, 1, 0, -1, 0, 0, 1, 0, 1, 1,
}

var bnU = bigFromStr("4965661367192848881")

// twistPointJ is a Jacobian point on the twist carried alongside its own
// z^2, which every line-function step needs.
type twistPointJ struct {
	x, y, z, t Fp2
}

// lineDouble computes the tangent line at r (updating r to 2r) and returns
// its sparse Fp12 coefficients: the line element is c + (a*v + b*v^2)*w.
func lineDouble(r twistPointJ, px, py fp.Element) (a, b, c Fp2, rOut twistPointJ) {
	A := r.x.Square()
	B := r.y.Square()
	C := B.Square()

	D := r.x.Add(B).Square().Sub(A).Sub(C)
	D = D.Add(D)
	E := A.Add(A).Add(A)
	G := E.Square()

	rOut.x = G.Sub(D).Sub(D)
	rOut.z = r.y.Add(r.z).Square().Sub(B).Sub(r.t)
	rOut.y = D.Sub(rOut.x).Mul(E).Sub(C.Add(C).Add(C).Add(C).Add(C).Add(C).Add(C).Add(C))
	rOut.t = rOut.z.Square()

	t := E.Mul(r.t)
	t = t.Add(t)
	b = t.Neg().MulScalar(px)

	a = r.x.Add(E).Square().Sub(A).Sub(G).Sub(B.Add(B).Add(B).Add(B))

	c = rOut.z.Mul(r.t)
	c = c.Add(c)
	c = c.MulScalar(py)

	return a, b, c, rOut
}

// lineAdd computes the line through r and the affine twist point (px, py)
// (updating r to r+P), returning its sparse Fp12 coefficients. qx, qy are
// the pairing's fixed G1 affine coordinates; py2 is py^2, passed in since
// callers already have it.
func lineAdd(r twistPointJ, px, py Fp2, qx, qy fp.Element, py2 Fp2) (a, b, c Fp2, rOut twistPointJ) {
	B := px.Mul(r.t)

	D := py.Add(r.z).Square().Sub(py2).Sub(r.t).Mul(r.t)

	H := B.Sub(r.x)
	I := H.Square()

	E := I.Add(I).Add(I).Add(I)
	J := H.Mul(E)

	L1 := D.Sub(r.y).Sub(r.y)
	V := r.x.Mul(E)

	rOut.x = L1.Square().Sub(J).Sub(V.Add(V))
	rOut.z = r.z.Add(H).Square().Sub(r.t).Sub(I)

	t := V.Sub(rOut.x).Mul(L1)
	t2 := r.y.Mul(J)
	t2 = t2.Add(t2)
	rOut.y = t.Sub(t2)
	rOut.t = rOut.z.Square()

	t = py.Add(rOut.z).Square().Sub(py2).Sub(rOut.t)
	t2 = L1.Mul(px)
	t2 = t2.Add(t2)
	a = t2.Sub(t)

	c = rOut.z.MulScalar(qy)
	c = c.Add(c)

	b = L1.Neg().MulScalar(qx)
	b = b.Add(b)

	return a, b, c, rOut
}

// twistFrobX, twistFrobY are xi^((p-1)/3) and xi^((p-1)/2): applying the
// Frobenius endomorphism to a twist point's affine coordinates is
// conjugation followed by multiplication by these.
var (
	twistFrobX = frobC1_2
	twistFrobY = frobC1_3
	// frobSqX is xi^((p^2-1)/3) as a plain Fp scalar (its Fp2 imaginary
	// part is always zero at the p^2 level).
	frobSqX = frobC2_2.C0()
)

func frobeniusTwist(qx, qy Fp2) (Fp2, Fp2) {
	return qx.Conj().Mul(twistFrobX), qy.Conj().Mul(twistFrobY)
}

// millerLoop runs the Miller loop over the NAF digits of 6u+2, accumulating
// sparse line evaluations into an Fp12 accumulator, then folds in the two
// Frobenius-twist addition steps that make the loop optimal-ate length.
func millerLoop(px, py fp.Element, qx, qy Fp2) Fp12 {
	ret := Fp12One()

	one := Fp2One()
	r := twistPointJ{x: qx, y: qy, z: one, t: one}

	minusQy := qy.Neg()
	qy2 := qy.Square()

	for i := len(sixuPlus2NAF) - 1; i > 0; i-- {
		a, b, c, newR := lineDouble(r, px, py)
		if i != len(sixuPlus2NAF)-1 {
			ret = ret.Square()
		}
		ret = mulLine(ret, a, b, c)
		r = newR

		switch sixuPlus2NAF[i-1] {
		case 1:
			a, b, c, newR = lineAdd(r, qx, qy, px, py, qy2)
			ret = mulLine(ret, a, b, c)
			r = newR
		case -1:
			a, b, c, newR = lineAdd(r, qx, minusQy, px, py, qy2)
			ret = mulLine(ret, a, b, c)
			r = newR
		}
	}

	q1x, q1y := frobeniusTwist(qx, qy)
	q1y2 := q1y.Square()
	a, b, c, newR := lineAdd(r, q1x, q1y, px, py, q1y2)
	ret = mulLine(ret, a, b, c)
	r = newR

	// -Q^(p^2): x scales by xi^((p^2-1)/3) (frobSqX), y is unchanged
	// (the Frobenius-squared sign flip on y cancels the negation).
	minusQ2x := qx.MulScalar(frobSqX)
	minusQ2y := qy
	minusQ2y2 := minusQ2y.Square()
	a, b, c, _ = lineAdd(r, minusQ2x, minusQ2y, px, py, minusQ2y2)
	ret = mulLine(ret, a, b, c)

	return ret
}

// finalExponentiation raises f to (p^12-1)/r, split into an easy part
// (conjugation/inverse tricks) and a hard part computed by exponentiating
// by u three times and recombining via the Frobenius maps in a fixed
// addition chain (finalExpHard); the bls12381 package instead raises to
// its hard exponent directly.
func finalExponentiation(f Fp12) Fp12 {
	fInv := f.Inv()
	f1 := f.Conj().Mul(fInv)       // f^(p^6-1)
	f2 := f1.frobSq().Mul(f1)      // f1^(p^2+1)
	return finalExpHard(f2)
}

func finalExpHard(f Fp12) Fp12 {
	fu := f.Exp(bnU)
	fu2 := fu.Exp(bnU)
	fu3 := fu2.Exp(bnU)

	fp1 := f.frob()
	fp2 := f.frobSq()
	fp3 := f.frobCube()

	fup := fu.frob()
	fu2p := fu2.frob()
	fu3p := fu3.frob()
	fu2p2 := fu2.frobSq()

	y0 := fp1.Mul(fp2).Mul(fp3)
	y1 := f.Conj()
	y2 := fu2p2
	y3 := fup.Conj()
	y4 := fu.Conj().Mul(fu2p.Conj())
	y5 := fu2.Conj()
	y6 := fu3.Mul(fu3p).Conj()

	t0 := y6.Square().Mul(y4).Mul(y5)
	t1 := y3.Mul(y5).Mul(t0)
	t0 = t0.Mul(y2)
	t1 = t1.Square().Mul(t0)
	t1 = t1.Square()
	t0 = t1.Mul(y1)
	t1 = t1.Mul(y0)
	t0 = t0.Square().Mul(t1)

	return t0
}

// Pairing computes the optimal ate pairing e(P, Q).
func Pairing(p G1, q G2) Fp12 {
	if p.IsInfinity() || q.IsInfinity() {
		return Fp12One()
	}
	px, py := p.ToAffine()
	qx, qy := q.ToAffine()
	return finalExponentiation(millerLoop(px, py, qx, qy))
}

// MultiPairingCheck reports whether prod_i e(Pi, Qi) == 1 in Gt.
func MultiPairingCheck(ps []G1, qs []G2) bool {
	if len(ps) != len(qs) {
		return false
	}
	f := Fp12One()
	for i := range ps {
		if ps[i].IsInfinity() || qs[i].IsInfinity() {
			continue
		}
		px, py := ps[i].ToAffine()
		qx, qy := qs[i].ToAffine()
		f = f.Mul(millerLoop(px, py, qx, qy))
	}
	return finalExponentiation(f).IsOne()
}
