package banderwagon

import (
	"math/big"
	"testing"
)

func TestGeneratePedersenGeneratorsAreDistinctAndOnCurve(t *testing.T) {
	gens := GeneratePedersenGenerators()
	if len(gens) != NumPedersenGenerators {
		t.Fatalf("got %d generators, want %d", len(gens), NumPedersenGenerators)
	}
	seen := map[[byteLen]byte]bool{}
	for i, g := range gens {
		x, y := g.ToAffine()
		if !IsOnCurve(x, y) {
			t.Fatalf("generator %d is not on curve", i)
		}
		enc := g.Serialize()
		if seen[enc] {
			t.Fatalf("generator %d duplicates an earlier generator", i)
		}
		seen[enc] = true
	}
}

func TestGeneratePedersenGeneratorsIsStable(t *testing.T) {
	a := GeneratePedersenGenerators()
	b := GeneratePedersenGenerators()
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Fatalf("generator %d changed between calls", i)
		}
	}
}

func TestPedersenCommitIsLinear(t *testing.T) {
	values := make([]*big.Int, 4)
	for i := range values {
		values[i] = big.NewInt(int64(i + 1))
	}
	c1, err := PedersenCommit(values)
	if err != nil {
		t.Fatalf("PedersenCommit: %v", err)
	}

	gens := GeneratePedersenGenerators()
	want := Identity()
	for i, v := range values {
		want = want.Add(gens[i].ScalarMul(v))
	}
	if !c1.Equal(want) {
		t.Fatalf("PedersenCommit does not match manual accumulation")
	}
}

func TestPedersenCommitRejectsTooManyValues(t *testing.T) {
	values := make([]*big.Int, NumPedersenGenerators+1)
	for i := range values {
		values[i] = big.NewInt(1)
	}
	if _, err := PedersenCommit(values); err == nil {
		t.Fatalf("expected an error for too many values")
	}
}
