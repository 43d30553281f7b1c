package banderwagon

import (
	"errors"
	"math/big"

	"github.com/mratsim/constantine-go/fp"
)

var (
	ErrInvalidEncoding = errors.New("banderwagon: invalid encoding")
)

const byteLen = 32

// Serialize encodes a Banderwagon element as its quotient-group canonical
// affine x-coordinate, sign-normalizing y into the field's lower half (the
// representative with y <= (p-1)/2) and storing x's sign in the top bit --
// since (x,y) and (-x,-y) represent the same Banderwagon element, only the
// sign-normalized representative is canonical.
func (p Point) Serialize() [byteLen]byte {
	x, y := p.ToAffine()

	yBig := y.ToBig()
	half := new(big.Int).Rsh(modulus, 1)
	if yBig.Cmp(half) > 0 {
		x = x.Neg()
		y = y.Neg()
	}

	var out [byteLen]byte
	xBig := x.ToBig()
	xBig.FillBytes(out[:])

	if isOddBig(x.ToBig()) {
		out[0] |= 0x80
	}
	return out
}

func isOddBig(v *big.Int) bool { return v.Bit(0) == 1 }

// Deserialize recovers a Point from its 32-byte Serialize encoding,
// recomputing y from x via the curve equation and choosing the
// sign-normalized (lower-half) root.
func Deserialize(enc [byteLen]byte) (Point, error) {
	sign := enc[0]&0x80 != 0
	enc[0] &^= 0x80

	xBig := new(big.Int).SetBytes(enc[:])
	if xBig.Cmp(modulus) >= 0 {
		return Point{}, ErrInvalidEncoding
	}
	x := fp.FromBig(modulus, xBig)

	y, ok := recoverY(x)
	if !ok {
		return Point{}, ErrInvalidEncoding
	}

	half := new(big.Int).Rsh(modulus, 1)
	if y.ToBig().Cmp(half) > 0 {
		y = y.Neg()
	}
	if sign != isOddBig(x.ToBig()) {
		x = x.Neg()
	}

	return FromAffine(x, y)
}

// recoverY solves a*x^2 + y^2 = 1 + d*x^2*y^2 for y given x:
//
//	y^2 (d*x^2 - 1) = a*x^2 - 1
//	y^2 = (a*x^2 - 1) / (d*x^2 - 1)
func recoverY(x fp.Element) (fp.Element, bool) {
	x2 := x.Square()
	num := curveA.Mul(x2).Sub(fp.One(modulus))
	den := curveD.Mul(x2).Sub(fp.One(modulus))
	if den.IsZero() {
		return fp.Element{}, false
	}
	y2 := num.Mul(den.Inv())
	ok, y := y2.Sqrt()
	return y, ok
}
