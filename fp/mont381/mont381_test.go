package mont381

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/mratsim/constantine-go/bigint"
)

func pBig() *big.Int {
	return toBig(Modulus)
}

func toBig(l bigint.Limbs) *big.Int {
	out := new(big.Int)
	for i := len(l) - 1; i >= 0; i-- {
		out.Lsh(out, 64)
		out.Or(out, new(big.Int).SetUint64(l[i]))
	}
	return out
}

func fromBig(v *big.Int) bigint.Limbs {
	out := make(bigint.Limbs, NumLimbs)
	b := new(big.Int).Set(v)
	mask := new(big.Int).SetUint64(^uint64(0))
	for i := 0; i < NumLimbs; i++ {
		word := new(big.Int).And(b, mask)
		out[i] = word.Uint64()
		b.Rsh(b, 64)
	}
	return out
}

func randElement(rng *rand.Rand, p *big.Int) Element {
	v := new(big.Int).Rand(rng, p)
	return FromRaw(fromBig(v))
}

func TestOneIsMontgomeryFormOfOne(t *testing.T) {
	one := One()
	if toBig(one.ToRaw()).Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("One().ToRaw() = %s, want 1", toBig(one.ToRaw()))
	}
}

func TestFromRawToRawRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := pBig()
	for i := 0; i < 2000; i++ {
		v := new(big.Int).Rand(rng, p)
		e := FromRaw(fromBig(v))
		got := toBig(e.ToRaw())
		if got.Cmp(v) != 0 {
			t.Fatalf("round trip failed: got %s, want %s", got, v)
		}
	}
}

func TestMulAgainstBigInt(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	p := pBig()
	for i := 0; i < 2000; i++ {
		a := new(big.Int).Rand(rng, p)
		b := new(big.Int).Rand(rng, p)
		ea := FromRaw(fromBig(a))
		eb := FromRaw(fromBig(b))

		got := toBig(Mul(ea, eb).ToRaw())
		want := new(big.Int).Mod(new(big.Int).Mul(a, b), p)
		if got.Cmp(want) != 0 {
			t.Fatalf("Mul(%s, %s) = %s, want %s", a, b, got, want)
		}
	}
}

func TestAddSubAgainstBigInt(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := pBig()
	for i := 0; i < 2000; i++ {
		a := new(big.Int).Rand(rng, p)
		b := new(big.Int).Rand(rng, p)
		ea := FromRaw(fromBig(a))
		eb := FromRaw(fromBig(b))

		gotAdd := toBig(Add(ea, eb).ToRaw())
		wantAdd := new(big.Int).Mod(new(big.Int).Add(a, b), p)
		if gotAdd.Cmp(wantAdd) != 0 {
			t.Fatalf("Add(%s, %s) = %s, want %s", a, b, gotAdd, wantAdd)
		}

		gotSub := toBig(Sub(ea, eb).ToRaw())
		wantSub := new(big.Int).Mod(new(big.Int).Sub(a, b), p)
		if gotSub.Cmp(wantSub) != 0 {
			t.Fatalf("Sub(%s, %s) = %s, want %s", a, b, gotSub, wantSub)
		}
	}
}

func TestSquareMatchesMul(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	p := pBig()
	for i := 0; i < 500; i++ {
		e := randElement(rng, p)
		if !Equal(Square(e), Mul(e, e)) {
			t.Fatalf("Square != Mul(e, e) for iteration %d", i)
		}
	}
}

func TestNegIsAdditiveInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	p := pBig()
	for i := 0; i < 500; i++ {
		e := randElement(rng, p)
		if !IsZero(Add(e, Neg(e))) {
			t.Fatalf("e + (-e) != 0")
		}
	}
}

func TestMulIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	p := pBig()
	one := One()
	for i := 0; i < 500; i++ {
		e := randElement(rng, p)
		if !Equal(Mul(e, one), e) {
			t.Fatalf("e * 1 != e")
		}
	}
}

func TestMulOverflowCarryPath(t *testing.T) {
	// Values close to the modulus exercise the high-carry paths in montMul
	// that a uniformly random sample rarely hits.
	pMinus1 := new(big.Int).Sub(pBig(), big.NewInt(1))
	e := FromRaw(fromBig(pMinus1))

	got := toBig(Mul(e, e).ToRaw())
	want := new(big.Int).Mod(new(big.Int).Mul(pMinus1, pMinus1), pBig())
	if got.Cmp(want) != 0 {
		t.Fatalf("(p-1)*(p-1) mod p = %s, want %s", got, want)
	}
}

func TestExpAgainstBigInt(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := pBig()
	for i := 0; i < 200; i++ {
		a := new(big.Int).Rand(rng, p)
		k := new(big.Int).Rand(rng, p)
		e := FromRaw(fromBig(a))

		got := toBig(Exp(e, fromBig(k)).ToRaw())
		want := new(big.Int).Exp(a, k, p)
		if got.Cmp(want) != 0 {
			t.Fatalf("Exp(%s, %s) = %s, want %s", a, k, got, want)
		}
	}
}

func TestInvIsMultiplicativeInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	p := pBig()
	for i := 0; i < 500; i++ {
		a := new(big.Int).Rand(rng, p)
		if a.Sign() == 0 {
			a.SetInt64(1)
		}
		e := FromRaw(fromBig(a))

		if !Equal(Mul(e, Inv(e)), One()) {
			t.Fatalf("e * inv(e) != 1 for a=%s", a)
		}
	}
}

func TestInvOfZeroIsZero(t *testing.T) {
	if !IsZero(Inv(Zero())) {
		t.Fatal("Inv(0) should be 0")
	}
}
