package bn254

import (
	"errors"
	"math/big"

	"github.com/mratsim/constantine-go/fp"
	"golang.org/x/crypto/sha3"
)

var ErrDSTTooLong = errors.New("bn254: dst exceeds 255 bytes")

// hashToFieldG1 derives a base-field element from a message, grounded on
// the length-prefixed domain separation keccak_extended.go's
// HashToFieldBN254 already uses for scalar-field hashing: dst_len || dst
// || counter || data, hashed with Keccak-256 and reduced mod p. BN254's
// 254-bit base field needs less expansion than BLS12-381's 381-bit one,
// so a single Keccak-256 block suffices where bls12381 needs XMD.
func hashToFieldG1(msg, dst []byte, count int) ([]fp.Element, error) {
	if len(dst) > 255 {
		return nil, ErrDSTTooLong
	}
	out := make([]fp.Element, count)
	for i := 0; i < count; i++ {
		input := make([]byte, 0, 1+len(dst)+1+len(msg))
		input = append(input, byte(len(dst)))
		input = append(input, dst...)
		input = append(input, byte(i))
		input = append(input, msg...)

		d := sha3.NewLegacyKeccak256()
		d.Write(input)
		sum := d.Sum(nil)

		v := new(big.Int).SetBytes(sum)
		out[i] = fp.FromBig(modulus, v)
	}
	return out, nil
}

// ft1SqrtM3 and ft1C1 are BN254's Fouque-Tibouchi constants, derived the
// same way as bls12381's (see that package's mapToCurveG1): sqrt(-3) mod p
// and (-1+sqrt(-3))/2 mod p, both computed from the public modulus via a
// single exponentiation since p = 3 mod 4 here as well.
var (
	ft1SqrtM3 = mustSqrt(fp.FromBig(modulus, big.NewInt(-3)))
	ft1C1     = ft1SqrtM3.Sub(fp.One(modulus)).Mul(fp.FromUint64(modulus, 2).Inv())
)

func mustSqrt(e fp.Element) fp.Element {
	ok, r := e.Sqrt()
	if !ok {
		panic("bn254: -3 is not a quadratic residue mod p")
	}
	return r
}

// mapToCurveG1 maps a field element onto y^2=x^3+3 using the
// Fouque-Tibouchi (2012) deterministic encoding, the same construction
// bls12381's mapToCurveG1 uses and for the same reason: BN254's A=0,
// p=1 mod 3 curve shape makes RFC 9380's SSWU map require an isogeny
// detour, while Fouque-Tibouchi needs only the two small constants above.
func mapToCurveG1(u fp.Element) G1 {
	one := fp.One(modulus)
	denom := one.Add(g1B).Add(u.Square())
	w := ft1SqrtM3.Mul(u).Mul(denom.Inv())

	x1 := ft1C1.Sub(u.Mul(w))
	x2 := one.Neg().Sub(x1)
	wSq := w.Square()
	x3 := one.Add(wSq.Inv())

	for _, x := range []fp.Element{x1, x2, x3} {
		rhs := x.Square().Mul(x).Add(g1B)
		if ok, y := rhs.Sqrt(); ok {
			if y.Sgn0() != u.Sgn0() {
				y = y.Neg()
			}
			return G1FromAffine(x, y)
		}
	}
	panic("bn254: Fouque-Tibouchi map found no square among x1, x2, x3")
}

// HashToG1 hashes a message to a G1 point and clears the cofactor (1 for
// BN254, so the resulting point already lies in the prime-order subgroup).
func HashToG1(msg, dst []byte) (G1, error) {
	us, err := hashToFieldG1(msg, dst, 1)
	if err != nil {
		return G1{}, err
	}
	return mapToCurveG1(us[0]), nil
}

// hashToFieldG2 derives one Fp2 element (two Fp coordinates) for the G2
// map, using the same domain-separated Keccak-256 construction per
// coordinate.
func hashToFieldG2(msg, dst []byte) (Fp2, error) {
	cs, err := hashToFieldG1(msg, dst, 2)
	if err != nil {
		return Fp2{}, err
	}
	return Fp2{c0: cs[0], c1: cs[1]}, nil
}

func mapToCurveG2(u Fp2) G2 {
	x := u
	one := Fp2One()
	for {
		rhs := x.Square().Mul(x).Add(g2B)
		ok, y := fp2Sqrt(rhs)
		if ok {
			if y.c1.Sgn0() != u.c1.Sgn0() {
				y = y.Neg()
			}
			return G2FromAffine(x, y)
		}
		x = x.Add(one)
	}
}

// fp2Sqrt computes a square root in Fp2 via the standard norm-based
// construction: find n = sqrt(a0^2+a1^2), then a candidate real part
// r0 = sqrt((a0+n)/2) (or (a0-n)/2 if that fails), derive r1 = a1/(2 r0),
// and verify by squaring back, mirroring the bls12381 package's Fp2.Sqrt.
func fp2Sqrt(a Fp2) (bool, Fp2) {
	if a.IsZero() {
		return true, Fp2Zero()
	}
	norm := a.c0.Square().Add(a.c1.Square())
	ok, n := norm.Sqrt()
	if !ok {
		return false, Fp2{}
	}
	two := fp.FromUint64(modulus, 2)
	twoInv := two.Inv()

	for _, cand := range []fp.Element{a.c0.Add(n).Mul(twoInv), a.c0.Sub(n).Mul(twoInv)} {
		ok, r0 := cand.Sqrt()
		if !ok {
			continue
		}
		r1 := a.c1.Mul(r0.Mul(two).Inv())
		r := Fp2{c0: r0, c1: r1}
		if r.Square().Equal(a) {
			return true, r
		}
	}
	return false, Fp2{}
}

// HashToG2 hashes a message to a G2 point via try-and-increment on Fp2 and
// clears the cofactor so the result lies in the prime-order subgroup.
func HashToG2(msg, dst []byte) (G2, error) {
	u, err := hashToFieldG2(msg, dst)
	if err != nil {
		return G2{}, err
	}
	p := mapToCurveG2(u)
	return p.ScalarMulVartime(bn254G2Cofactor), nil
}

var bn254G2Cofactor = bigFromStr("21888242871839275222246405745257275088844257914179612981679871602714643921549")
