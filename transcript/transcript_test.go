package transcript

import (
	"math/big"
	"testing"

	"github.com/mratsim/constantine-go/curves/banderwagon"
)

func TestSqueezeIsDeterministic(t *testing.T) {
	t1 := New("test")
	t1.AbsorbPoint("p", banderwagon.Generator())
	c1 := t1.Squeeze("x")

	t2 := New("test")
	t2.AbsorbPoint("p", banderwagon.Generator())
	c2 := t2.Squeeze("x")

	if c1.Cmp(c2) != 0 {
		t.Fatalf("Squeeze is not deterministic for identical transcripts")
	}
}

func TestSqueezeDependsOnAbsorbedData(t *testing.T) {
	t1 := New("test")
	t1.AbsorbScalar("s", big.NewInt(1))
	c1 := t1.Squeeze("x")

	t2 := New("test")
	t2.AbsorbScalar("s", big.NewInt(2))
	c2 := t2.Squeeze("x")

	if c1.Cmp(c2) == 0 {
		t.Fatalf("distinct absorbed scalars produced the same challenge")
	}
}

func TestSqueezeDependsOnLabel(t *testing.T) {
	tr1 := New("test")
	tr1.AbsorbScalar("s", big.NewInt(1))

	tr2 := New("test")
	tr2.AbsorbScalar("s", big.NewInt(1))

	c1 := tr1.Squeeze("label-a")
	c2 := tr2.Squeeze("label-b")
	if c1.Cmp(c2) == 0 {
		t.Fatalf("distinct squeeze labels produced the same challenge")
	}
}

func TestSuccessiveSqueezesDiffer(t *testing.T) {
	tr := New("test")
	c1 := tr.Squeeze("x")
	c2 := tr.Squeeze("x")
	if c1.Cmp(c2) == 0 {
		t.Fatalf("two successive squeezes under the same label produced the same challenge")
	}
}

func TestSqueezeIsAlwaysNonZero(t *testing.T) {
	tr := New("test")
	for i := 0; i < 64; i++ {
		c := tr.Squeeze("x")
		if c.Sign() == 0 {
			t.Fatalf("Squeeze produced a zero challenge")
		}
	}
}
