package bn254

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/mratsim/constantine-go/fp"
)

func randFp(rng *rand.Rand) fp.Element {
	v := new(big.Int).Rand(rng, modulus)
	return fp.FromBig(modulus, v)
}

func randFp2(rng *rand.Rand) Fp2 {
	return Fp2{c0: randFp(rng), c1: randFp(rng)}
}

func TestFp2MulDistributesOverAdd(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a, b, c := randFp2(rng), randFp2(rng), randFp2(rng)
		lhs := a.Mul(b.Add(c))
		rhs := a.Mul(b).Add(a.Mul(c))
		if !lhs.Equal(rhs) {
			t.Fatalf("Fp2 distributivity failed")
		}
	}
}

func TestFp2SquareMatchesMul(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		a := randFp2(rng)
		if !a.Square().Equal(a.Mul(a)) {
			t.Fatalf("Fp2 Square != Mul(a,a)")
		}
	}
}

func TestFp2InvIsMultiplicativeInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	one := Fp2One()
	for i := 0; i < 200; i++ {
		a := randFp2(rng)
		if a.IsZero() {
			continue
		}
		if !a.Mul(a.Inv()).Equal(one) {
			t.Fatalf("Fp2 a * inv(a) != 1")
		}
	}
}

func TestFp2SqrtRoundTrips(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		a := randFp2(rng)
		sq := a.Square()
		ok, r := fp2Sqrt(sq)
		if !ok {
			t.Fatalf("Sqrt of a known square reported not-a-square")
		}
		if !r.Square().Equal(sq) {
			t.Fatalf("Sqrt result does not square back to input")
		}
	}
}

func TestFp6MulDistributesOverAdd(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	randFp6 := func() Fp6 { return Fp6{c0: randFp2(rng), c1: randFp2(rng), c2: randFp2(rng)} }
	for i := 0; i < 100; i++ {
		a, b, c := randFp6(), randFp6(), randFp6()
		lhs := a.Mul(b.Add(c))
		rhs := a.Mul(b).Add(a.Mul(c))
		if !lhs.Equal(rhs) {
			t.Fatalf("Fp6 distributivity failed")
		}
	}
}

func TestFp6InvIsMultiplicativeInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	one := Fp6One()
	for i := 0; i < 100; i++ {
		a := Fp6{c0: randFp2(rng), c1: randFp2(rng), c2: randFp2(rng)}
		if a.IsZero() {
			continue
		}
		if !a.Mul(a.Inv()).Equal(one) {
			t.Fatalf("Fp6 a * inv(a) != 1")
		}
	}
}

func TestFp12InvIsMultiplicativeInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	one := Fp12One()
	randFp12 := func() Fp12 {
		return Fp12{
			c0: Fp6{c0: randFp2(rng), c1: randFp2(rng), c2: randFp2(rng)},
			c1: Fp6{c0: randFp2(rng), c1: randFp2(rng), c2: randFp2(rng)},
		}
	}
	for i := 0; i < 100; i++ {
		a := randFp12()
		if !a.Mul(a.Inv()).Equal(one) {
			t.Fatalf("Fp12 a * inv(a) != 1")
		}
	}
}

func TestFp12FrobeniusMatchesDirectExp(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	randFp12 := func() Fp12 {
		return Fp12{
			c0: Fp6{c0: randFp2(rng), c1: randFp2(rng), c2: randFp2(rng)},
			c1: Fp6{c0: randFp2(rng), c1: randFp2(rng), c2: randFp2(rng)},
		}
	}
	for i := 0; i < 20; i++ {
		a := randFp12()
		if !a.frob().Equal(a.Exp(modulus)) {
			t.Fatalf("frob() disagrees with direct Exp(p)")
		}
	}
}
