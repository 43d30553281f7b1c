package bigint

import (
	"math/big"
	"math/rand"
	"testing"
)

func toBig(l Limbs) *big.Int {
	out := new(big.Int)
	for i := len(l) - 1; i >= 0; i-- {
		out.Lsh(out, 64)
		out.Or(out, new(big.Int).SetUint64(l[i]))
	}
	return out
}

func fromBig(v *big.Int, n int) Limbs {
	out := make(Limbs, n)
	b := new(big.Int).Set(v)
	mask := new(big.Int).SetUint64(^uint64(0))
	for i := 0; i < n; i++ {
		word := new(big.Int).And(b, mask)
		out[i] = word.Uint64()
		b.Rsh(b, 64)
	}
	return out
}

func TestAddSub(t *testing.T) {
	a := Limbs{0xffffffffffffffff, 0}
	b := Limbs{1, 0}
	sum := make(Limbs, 2)
	carry := Add(sum, a, b)
	if carry != 0 || sum[0] != 0 || sum[1] != 1 {
		t.Fatalf("Add overflow into second limb failed: sum=%v carry=%d", sum, carry)
	}

	diff := make(Limbs, 2)
	borrow := Sub(diff, sum, b)
	if borrow != 0 || CtEq(diff, a) != 1 {
		t.Fatalf("Sub roundtrip failed: diff=%v borrow=%d", diff, borrow)
	}
}

func TestCAddCSub(t *testing.T) {
	a := Limbs{5, 0}
	b := Limbs{3, 0}
	dst := make(Limbs, 2)
	CAdd(dst, a, b, 0)
	if CtEq(dst, a) != 1 {
		t.Fatalf("CAdd with ctl=0 must be a no-op, got %v", dst)
	}
	CAdd(dst, a, b, 1)
	if dst[0] != 8 {
		t.Fatalf("CAdd with ctl=1 = %v, want 8", dst)
	}
	CSub(dst, a, b, 1)
	if dst[0] != 2 {
		t.Fatalf("CSub with ctl=1 = %v, want 2", dst)
	}
}

func TestCMov(t *testing.T) {
	dst := Limbs{1, 2, 3}
	src := Limbs{9, 8, 7}
	CMov(dst, src, 0)
	if CtEq(dst, Limbs{1, 2, 3}) != 1 {
		t.Fatalf("CMov with ctl=0 modified dst: %v", dst)
	}
	CMov(dst, src, 1)
	if CtEq(dst, src) != 1 {
		t.Fatalf("CMov with ctl=1 did not copy: %v", dst)
	}
}

func TestIsZeroIsOdd(t *testing.T) {
	if !IsZero(Limbs{0, 0, 0}) {
		t.Fatal("IsZero(0) should be true")
	}
	if IsZero(Limbs{0, 1, 0}) {
		t.Fatal("IsZero(nonzero) should be false")
	}
	if !IsOdd(Limbs{1, 0}) || IsOdd(Limbs{2, 0}) {
		t.Fatal("IsOdd mismatch")
	}
}

func TestShifts(t *testing.T) {
	a := Limbs{0, 1} // = 2^64
	dst := make(Limbs, 2)
	carry := ShiftRight1(dst, a)
	if carry != 0 || dst[0] != 1<<63 || dst[1] != 0 {
		t.Fatalf("ShiftRight1 failed: dst=%v carry=%d", dst, carry)
	}
	ShiftLeft1(dst, dst)
	if CtEq(dst, a) != 1 {
		t.Fatalf("ShiftLeft1 roundtrip failed: %v", dst)
	}
}

func TestDiv2n1nAgainstBigInt(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20000; i++ {
		d := rng.Uint64()
		if d == 0 {
			d = 1
		}
		nHi := rng.Uint64() % d // enforce nHi < d precondition
		nLo := rng.Uint64()

		q, r := Div2n1n(nHi, nLo, d)

		n := new(big.Int).Lsh(new(big.Int).SetUint64(nHi), 64)
		n.Or(n, new(big.Int).SetUint64(nLo))
		dBig := new(big.Int).SetUint64(d)
		wantQ, wantR := new(big.Int).QuoRem(n, dBig, new(big.Int))

		if wantQ.Uint64() != q || wantR.Uint64() != r {
			t.Fatalf("Div2n1n(%d,%d,%d) = (%d,%d), want (%s,%s)", nHi, nLo, d, q, r, wantQ, wantR)
		}
	}
}

func TestCtLess(t *testing.T) {
	a := fromBig(big.NewInt(5), 2)
	b := fromBig(big.NewInt(9), 2)
	if CtLess(a, b) != 1 {
		t.Fatal("5 < 9 should hold")
	}
	if CtLess(b, a) != 0 {
		t.Fatal("9 < 5 should not hold")
	}
}
