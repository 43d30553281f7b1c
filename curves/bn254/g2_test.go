package bn254

import (
	"math/big"
	"testing"

	"github.com/mratsim/constantine-go/fp"
	"github.com/mratsim/constantine-go/zoo"
)

func TestG2GeneratorIsOnCurve(t *testing.T) {
	g := G2Generator()
	x, y := g.ToAffine()
	if !IsOnCurveG2(x, y) {
		t.Fatalf("G2 generator fails its own curve equation")
	}
}

func TestG2GeneratorInSubgroup(t *testing.T) {
	if !G2Generator().InSubgroup() {
		t.Fatalf("G2 generator reported outside the prime-order subgroup")
	}
}

func TestG2DoubleMatchesAddSelf(t *testing.T) {
	g := G2Generator()
	if !g.Double().Equal(g.Add(g)) {
		t.Fatalf("Double(g) != g+g")
	}
}

func TestG2ScalarMulMatchesVartime(t *testing.T) {
	g := G2Generator()
	k := big.NewInt(123456789)
	if !g.ScalarMul(k).Equal(g.ScalarMulVartime(k)) {
		t.Fatalf("ScalarMul and ScalarMulVartime disagree")
	}
}

func TestG2CompressedRoundTrip(t *testing.T) {
	g := G2Generator().ScalarMul(big.NewInt(77))
	enc := EncodeG2Compressed(g)
	got, err := DecodeG2Compressed(enc)
	if err != nil {
		t.Fatalf("DecodeG2Compressed: %v", err)
	}
	if !got.Equal(g) {
		t.Fatalf("G2 compressed round trip mismatch")
	}
}

func TestG2InfinityRoundTrip(t *testing.T) {
	enc := EncodeG2Compressed(G2Infinity())
	got, err := DecodeG2Compressed(enc)
	if err != nil {
		t.Fatalf("DecodeG2Compressed(infinity): %v", err)
	}
	if !got.IsInfinity() {
		t.Fatalf("decoded infinity encoding did not round-trip to infinity")
	}
}

func TestFrRoundTrip(t *testing.T) {
	v := big.NewInt(424242)
	e := fp.FromBig(zoo.BN254.R, v)
	enc := EncodeFr(e)
	got, err := DecodeFr(enc)
	if err != nil {
		t.Fatalf("DecodeFr: %v", err)
	}
	if got.ToBig().Cmp(v) != 0 {
		t.Fatalf("Fr round trip mismatch")
	}
}
