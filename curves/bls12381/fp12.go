package bls12381

import "math/big"

// Fp12 = Fp6[w]/(w^2 - v), held as c0 + c1*w. This is GT's underlying
// representation before the subgroup/cyclotomic restriction the final
// exponentiation imposes.
type Fp12 struct {
	c0, c1 Fp6
}

func Fp12Zero() Fp12 { return Fp12{c0: Fp6Zero(), c1: Fp6Zero()} }
func Fp12One() Fp12  { return Fp12{c0: Fp6One(), c1: Fp6Zero()} }

func (a Fp12) Mul(b Fp12) Fp12 {
	t0 := a.c0.Mul(b.c0)
	t1 := a.c1.Mul(b.c1)

	c0 := t0.Add(t1.MulByV())
	c1 := a.c0.Add(a.c1).Mul(b.c0.Add(b.c1)).Sub(t0).Sub(t1)

	return Fp12{c0: c0, c1: c1}
}

func (a Fp12) Square() Fp12 {
	ab := a.c0.Mul(a.c1)
	c0 := a.c0.Add(a.c1).Mul(a.c0.Add(a.c1.MulByV())).Sub(ab.Add(ab.MulByV()))
	c1 := ab.Add(ab)
	return Fp12{c0: c0, c1: c1}
}

func (a Fp12) Inv() Fp12 {
	t := a.c0.Square().Sub(a.c1.Square().MulByV())
	t = t.Inv()
	return Fp12{c0: a.c0.Mul(t), c1: a.c1.Neg().Mul(t)}
}

// Conj returns the Fp12 conjugate, c0 - c1*w, which equals the p^6-power
// Frobenius for this tower's unitary elements.
func (a Fp12) Conj() Fp12 { return Fp12{c0: a.c0, c1: a.c1.Neg()} }

// Exp computes a^k via square-and-multiply. Used only on public GT values
// during the (variable-time, by design -- see pairing.go) final
// exponentiation, never on a secret exponent.
func (a Fp12) Exp(k *big.Int) Fp12 {
	if k.Sign() == 0 {
		return Fp12One()
	}
	result := Fp12One()
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = result.Square()
		if k.Bit(i) == 1 {
			result = result.Mul(a)
		}
	}
	return result
}

func (a Fp12) Equal(b Fp12) bool { return a.c0.Equal(b.c0) && a.c1.Equal(b.c1) }

func (a Fp12) IsOne() bool { return a.Equal(Fp12One()) }
