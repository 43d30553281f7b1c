package bn254

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/mratsim/constantine-go/zoo"
)

func TestG1GeneratorIsOnCurve(t *testing.T) {
	g := G1Generator()
	x, y := g.ToAffine()
	if !IsOnCurveG1(x, y) {
		t.Fatalf("G1 generator fails its own curve equation")
	}
}

func TestG1GeneratorInSubgroup(t *testing.T) {
	if !G1Generator().InSubgroup() {
		t.Fatalf("G1 generator reported outside the prime-order subgroup")
	}
}

func TestG1AddIsAssociative(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	g := G1Generator()
	for i := 0; i < 20; i++ {
		a := g.ScalarMul(big.NewInt(rng.Int63n(1000) + 1))
		b := g.ScalarMul(big.NewInt(rng.Int63n(1000) + 1))
		c := g.ScalarMul(big.NewInt(rng.Int63n(1000) + 1))

		lhs := a.Add(b).Add(c)
		rhs := a.Add(b.Add(c))
		if !lhs.Equal(rhs) {
			t.Fatalf("G1 addition is not associative")
		}
	}
}

func TestG1ScalarMulMatchesVartime(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := G1Generator()
	for i := 0; i < 20; i++ {
		k := new(big.Int).Rand(rng, zoo.BN254.R)
		if !g.ScalarMul(k).Equal(g.ScalarMulVartime(k)) {
			t.Fatalf("ScalarMul and ScalarMulVartime disagree for k=%s", k)
		}
	}
}

func TestG1DoubleMatchesAddSelf(t *testing.T) {
	g := G1Generator()
	if !g.Double().Equal(g.Add(g)) {
		t.Fatalf("Double(g) != g+g")
	}
}

func TestG1InfinityIsIdentity(t *testing.T) {
	g := G1Generator()
	inf := G1Infinity()
	if !g.Add(inf).Equal(g) {
		t.Fatalf("g + infinity != g")
	}
	if !g.Add(g.Neg()).Equal(inf) {
		t.Fatalf("g + (-g) != infinity")
	}
}

func TestG1CompressedRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	g := G1Generator()
	for i := 0; i < 20; i++ {
		k := new(big.Int).Rand(rng, zoo.BN254.R)
		p := g.ScalarMul(k)
		enc := EncodeG1Compressed(p)
		got, err := DecodeG1Compressed(enc)
		if err != nil {
			t.Fatalf("DecodeG1Compressed: %v", err)
		}
		if !got.Equal(p) {
			t.Fatalf("G1 compressed round trip mismatch")
		}
	}
}

func TestG1InfinityRoundTrip(t *testing.T) {
	enc := EncodeG1Compressed(G1Infinity())
	got, err := DecodeG1Compressed(enc)
	if err != nil {
		t.Fatalf("DecodeG1Compressed(infinity): %v", err)
	}
	if !got.IsInfinity() {
		t.Fatalf("decoded infinity encoding did not round-trip to infinity")
	}
}
