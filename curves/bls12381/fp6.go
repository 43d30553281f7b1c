package bls12381

// Fp6 = Fp2[v]/(v^3 - (1+u)), held as c0 + c1*v + c2*v^2.
type Fp6 struct {
	c0, c1, c2 Fp2
}

func Fp6Zero() Fp6 { return Fp6{c0: Fp2Zero(), c1: Fp2Zero(), c2: Fp2Zero()} }
func Fp6One() Fp6  { return Fp6{c0: Fp2One(), c1: Fp2Zero(), c2: Fp2Zero()} }

func (a Fp6) Add(b Fp6) Fp6 {
	return Fp6{c0: a.c0.Add(b.c0), c1: a.c1.Add(b.c1), c2: a.c2.Add(b.c2)}
}

func (a Fp6) Sub(b Fp6) Fp6 {
	return Fp6{c0: a.c0.Sub(b.c0), c1: a.c1.Sub(b.c1), c2: a.c2.Sub(b.c2)}
}

func (a Fp6) Neg() Fp6 {
	return Fp6{c0: a.c0.Neg(), c1: a.c1.Neg(), c2: a.c2.Neg()}
}

// Mul is the Karatsuba formula for a degree-3 tower over Fp2.
func (a Fp6) Mul(b Fp6) Fp6 {
	t0 := a.c0.Mul(b.c0)
	t1 := a.c1.Mul(b.c1)
	t2 := a.c2.Mul(b.c2)

	c0 := t0.Add(a.c1.Add(a.c2).Mul(b.c1.Add(b.c2)).Sub(t1.Add(t2)).MulByNonResidue())
	c1 := a.c0.Add(a.c1).Mul(b.c0.Add(b.c1)).Sub(t0.Add(t1)).Add(t2.MulByNonResidue())
	c2 := a.c0.Add(a.c2).Mul(b.c0.Add(b.c2)).Sub(t0.Add(t2)).Add(t1)

	return Fp6{c0: c0, c1: c1, c2: c2}
}

func (a Fp6) Square() Fp6 {
	s0 := a.c0.Square()
	ab := a.c0.Mul(a.c1)
	s1 := ab.Add(ab)
	s2 := a.c0.Add(a.c2).Sub(a.c1).Square()
	bc := a.c1.Mul(a.c2)
	s3 := bc.Add(bc)
	s4 := a.c2.Square()

	c0 := s0.Add(s3.MulByNonResidue())
	c1 := s1.Add(s4.MulByNonResidue())
	c2 := s1.Add(s2).Add(s3).Add(s0.Neg()).Add(s4.Neg())

	return Fp6{c0: c0, c1: c1, c2: c2}
}

// Inv returns a^-1 via the adjugate/norm construction for a cubic extension.
func (a Fp6) Inv() Fp6 {
	t0 := a.c0.Square()
	t1 := a.c1.Square()
	t2 := a.c2.Square()
	t3 := a.c0.Mul(a.c1)
	t4 := a.c0.Mul(a.c2)
	t5 := a.c1.Mul(a.c2)

	c0 := t0.Sub(t5.MulByNonResidue())
	c1 := t2.MulByNonResidue().Sub(t3)
	c2 := t1.Sub(t4)

	t6 := a.c0.Mul(c0)
	t6 = t6.Add(a.c2.Mul(c1).Add(a.c1.Mul(c2)).MulByNonResidue())
	t6 = t6.Inv()

	return Fp6{c0: c0.Mul(t6), c1: c1.Mul(t6), c2: c2.Mul(t6)}
}

// MulByV multiplies by the Fp6 variable v: v*(c0+c1 v+c2 v^2) = c2*(1+u) + c0 v + c1 v^2.
func (a Fp6) MulByV() Fp6 {
	return Fp6{c0: a.c2.MulByNonResidue(), c1: a.c0, c2: a.c1}
}

func (a Fp6) IsZero() bool {
	return a.c0.IsZero() && a.c1.IsZero() && a.c2.IsZero()
}

func (a Fp6) Equal(b Fp6) bool {
	return a.c0.Equal(b.c0) && a.c1.Equal(b.c1) && a.c2.Equal(b.c2)
}
