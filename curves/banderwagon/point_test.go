package banderwagon

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/mratsim/constantine-go/zoo"
)

func randScalar() *big.Int {
	k, err := rand.Int(rand.Reader, zoo.Banderwagon.N)
	if err != nil {
		panic(err)
	}
	return k
}

func TestGeneratorIsOnCurve(t *testing.T) {
	g := Generator()
	x, y := g.ToAffine()
	if !IsOnCurve(x, y) {
		t.Fatalf("generator is not on curve")
	}
}

func TestIdentityIsIdentity(t *testing.T) {
	id := Identity()
	if !id.IsIdentity() {
		t.Fatalf("Identity() is not IsIdentity()")
	}
	g := Generator()
	if !g.Add(id).Equal(g) {
		t.Fatalf("G + identity != G")
	}
}

func TestDoubleMatchesAddSelf(t *testing.T) {
	g := Generator()
	if !g.Double().Equal(g.Add(g)) {
		t.Fatalf("Double() != Add(self)")
	}
}

func TestAddIsAssociative(t *testing.T) {
	g := Generator()
	a := g.ScalarMul(big.NewInt(3))
	b := g.ScalarMul(big.NewInt(5))
	c := g.ScalarMul(big.NewInt(7))

	lhs := a.Add(b).Add(c)
	rhs := a.Add(b.Add(c))
	if !lhs.Equal(rhs) {
		t.Fatalf("(a+b)+c != a+(b+c)")
	}
}

func TestScalarMulMatchesVartime(t *testing.T) {
	g := Generator()
	k := randScalar()
	if !g.ScalarMul(k).Equal(g.ScalarMulVartime(k)) {
		t.Fatalf("ScalarMul and ScalarMulVartime disagree")
	}
}

func TestScalarMulDistributesOverAddition(t *testing.T) {
	g := Generator()
	a := randScalar()
	b := randScalar()
	sum := new(big.Int).Add(a, b)

	lhs := g.ScalarMul(sum)
	rhs := g.ScalarMul(a).Add(g.ScalarMul(b))
	if !lhs.Equal(rhs) {
		t.Fatalf("[a+b]G != [a]G + [b]G")
	}
}

func TestSubgroupOrderAnnihilatesGenerator(t *testing.T) {
	g := Generator()
	result := g.ScalarMulVartime(zoo.Banderwagon.N)
	if !result.IsIdentity() {
		t.Fatalf("[N]G != identity")
	}
}

func TestQuotientEqualityIdentifiesNegatedFiber(t *testing.T) {
	g := Generator()
	x, y := g.ToAffine()
	negFiber, err := FromAffine(x.Neg(), y.Neg())
	if err != nil {
		t.Fatalf("FromAffine(-x,-y): %v", err)
	}
	if !g.Equal(negFiber) {
		t.Fatalf("(x,y) and (-x,-y) should be Equal in the Banderwagon quotient group")
	}
}

func TestMSMMatchesSequentialAccumulation(t *testing.T) {
	g := Generator()
	points := []Point{g, g.Double(), g.ScalarMul(big.NewInt(7))}
	scalars := []*big.Int{big.NewInt(2), big.NewInt(3), big.NewInt(5)}

	got := MSM(points, scalars)

	want := Identity()
	for i := range points {
		want = want.Add(points[i].ScalarMul(scalars[i]))
	}
	if !got.Equal(want) {
		t.Fatalf("MSM result does not match sequential accumulation")
	}
}

func TestMapToFieldIsInvariantUnderNegatedFiber(t *testing.T) {
	g := Generator()
	x, y := g.ToAffine()
	negFiber, _ := FromAffine(x.Neg(), y.Neg())

	if g.MapToField().ToBig().Cmp(negFiber.MapToField().ToBig()) != 0 {
		t.Fatalf("MapToField differs between equivalent fiber representatives")
	}
}

func TestMapToFieldOfIdentityIsZero(t *testing.T) {
	if Identity().MapToField().ToBig().Sign() != 0 {
		t.Fatalf("MapToField(identity) != 0")
	}
}
