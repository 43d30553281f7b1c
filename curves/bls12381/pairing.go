package bls12381

import (
	"math/big"

	"github.com/mratsim/constantine-go/fp"
	"github.com/mratsim/constantine-go/zoo"
)

// curveX is the BLS12-381 loop parameter, |x| = 0xd201000000010000 (x itself
// is negative; zoo.BLS12381.XIsNegative records that).
var curveX = new(big.Int).Set(zoo.BLS12381.X)

// lineAdd computes the sparse Fp12 line function for a mixed point
// addition R := R + Q in the Miller loop, Q held in affine coordinates.
func lineAdd(r G2, qx, qy Fp2, px, py fp.Element) (Fp12, G2) {
	if r.IsInfinity() {
		return Fp12One(), G2FromAffine(qx, qy)
	}

	rx, ry := r.ToAffine()
	if rx.Equal(qx) && ry.Equal(qy) {
		return lineDouble(r, px, py)
	}

	num := qy.Sub(ry)
	den := qx.Sub(rx)
	if den.IsZero() {
		return Fp12One(), G2Infinity()
	}
	lambda := num.Mul(den.Inv())

	ell0 := lambda.Mul(rx).Sub(ry)
	ell1 := lambda.MulScalar(px).Neg()

	f := Fp12{
		c0: Fp6{c0: ell0, c1: ell1, c2: Fp2Zero()},
		c1: Fp6{c0: Fp2Zero(), c1: Fp2{c0: py, c1: fp.Zero(modulus)}, c2: Fp2Zero()},
	}

	return f, r.Add(G2FromAffine(qx, qy))
}

// lineDouble computes the sparse Fp12 line function for a point doubling
// R := 2R in the Miller loop.
func lineDouble(r G2, px, py fp.Element) (Fp12, G2) {
	if r.IsInfinity() {
		return Fp12One(), G2Infinity()
	}
	rx, ry := r.ToAffine()
	if ry.IsZero() {
		return Fp12One(), G2Infinity()
	}

	three := Fp2{c0: fp.FromUint64(modulus, 3), c1: fp.Zero(modulus)}
	two := Fp2{c0: fp.FromUint64(modulus, 2), c1: fp.Zero(modulus)}
	lambda := three.Mul(rx.Square()).Mul(two.Mul(ry).Inv())

	ell0 := lambda.Mul(rx).Sub(ry)
	ell1 := lambda.MulScalar(px).Neg()

	f := Fp12{
		c0: Fp6{c0: ell0, c1: ell1, c2: Fp2Zero()},
		c1: Fp6{c0: Fp2Zero(), c1: Fp2{c0: py, c1: fp.Zero(modulus)}, c2: Fp2Zero()},
	}

	return f, r.Double()
}

// MillerLoop computes the optimal ate Miller loop f_{x,Q}(P), iterating
// over the bits of |x| and conjugating the result at the end since x itself
// is negative for BLS12-381.
func MillerLoop(p G1, q G2) Fp12 {
	if p.IsInfinity() || q.IsInfinity() {
		return Fp12One()
	}

	px, py := p.ToAffine()
	qx, qy := q.ToAffine()

	f := Fp12One()
	r := G2FromAffine(qx, qy)

	for i := curveX.BitLen() - 2; i >= 0; i-- {
		var lineF Fp12
		lineF, r = lineDouble(r, px, py)
		f = f.Square()
		f = f.Mul(lineF)

		if curveX.Bit(i) == 1 {
			lineF, r = lineAdd(r, qx, qy, px, py)
			f = f.Mul(lineF)
		}
	}

	if zoo.BLS12381.XIsNegative {
		f = f.Conj()
	}

	return f
}

// FinalExponentiation raises f to (p^12-1)/r, split into the easy part
// ((f^(p^6-1))^(p^2+1), via conjugation and the unitary-f identity
// f^(p^6) == conj(f)) and the hard part ((p^4-p^2+1)/r), computed directly
// by exponentiation rather than the optimized addition-chain form.
func FinalExponentiation(f Fp12) Fp12 {
	fInv := f.Inv()
	f1 := f.Conj().Mul(fInv)

	p := zoo.BLS12381.P
	p2 := new(big.Int).Mul(p, p)
	f1p2 := f1.Exp(p2)
	f2 := f1p2.Mul(f1)

	p4 := new(big.Int).Mul(p2, p2)
	hardExp := new(big.Int).Sub(p4, p2)
	hardExp.Add(hardExp, big.NewInt(1))
	hardExp.Div(hardExp, zoo.BLS12381.R)

	return f2.Exp(hardExp)
}

// Pairing computes e(P, Q) in GT.
func Pairing(p G1, q G2) Fp12 {
	return FinalExponentiation(MillerLoop(p, q))
}

// MultiPairingCheck reports whether product(e(P_i, Q_i)) == 1 in GT, the
// batched form every Groth16-style verification equation reduces to.
func MultiPairingCheck(ps []G1, qs []G2) bool {
	f := Fp12One()
	for i := range ps {
		if ps[i].IsInfinity() || qs[i].IsInfinity() {
			continue
		}
		f = f.Mul(MillerLoop(ps[i], qs[i]))
	}
	return FinalExponentiation(f).IsOne()
}
