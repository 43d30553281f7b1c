package bls12381

import (
	"errors"
	"math/big"

	"github.com/mratsim/constantine-go/fp"
	"github.com/mratsim/constantine-go/zoo"
)

var (
	ErrInvalidEncoding = errors.New("bls12381: invalid encoding")
	ErrNotOnCurve      = errors.New("bls12381: point not on curve")
	ErrNotInSubgroup   = errors.New("bls12381: point not in subgroup")
)

const (
	fpByteLen = 48
	g1ByteLen = fpByteLen
	g2ByteLen = 2 * fpByteLen

	compressedFlag = 0x80
	infinityFlag   = 0x40
	ySignFlag      = 0x20
)

// EncodeG1Compressed writes a G1 point as 48 compressed bytes: a big-endian
// encoding of x with the top three bits of the first byte holding the
// compression flag (always set), the infinity flag, and the sign of y.
func EncodeG1Compressed(p G1) [g1ByteLen]byte {
	var out [g1ByteLen]byte
	if p.IsInfinity() {
		out[0] = compressedFlag | infinityFlag
		return out
	}
	x, y := p.ToAffine()
	copy(out[:], x.BytesBE())
	out[0] |= compressedFlag
	if ySign(y) {
		out[0] |= ySignFlag
	}
	return out
}

// DecodeG1Compressed reads a 48-byte compressed G1 encoding, validating that
// the point lies on the curve and in the prime-order subgroup.
func DecodeG1Compressed(data [g1ByteLen]byte) (G1, error) {
	if data[0]&compressedFlag == 0 {
		return G1{}, ErrInvalidEncoding
	}
	if data[0]&infinityFlag != 0 {
		return G1Infinity(), nil
	}

	sign := data[0]&ySignFlag != 0
	buf := data
	buf[0] &^= compressedFlag | infinityFlag | ySignFlag

	x, err := fp.FromBytesBE(modulus, buf[:])
	if err != nil {
		return G1{}, ErrInvalidEncoding
	}

	rhs := x.Square().Mul(x).Add(g1B)
	ok, y := rhs.Sqrt()
	if !ok {
		return G1{}, ErrNotOnCurve
	}
	if ySign(y) != sign {
		y = y.Neg()
	}

	p := G1FromAffine(x, y)
	if !p.InSubgroup() {
		return G1{}, ErrNotInSubgroup
	}
	return p, nil
}

// EncodeG2Compressed writes a G2 point as 96 compressed bytes: the x
// coordinate's c1 half then c0 half (each 48 bytes, big-endian), flag bits
// in the first byte as in EncodeG1Compressed.
func EncodeG2Compressed(p G2) [g2ByteLen]byte {
	var out [g2ByteLen]byte
	if p.IsInfinity() {
		out[0] = compressedFlag | infinityFlag
		return out
	}
	x, y := p.ToAffine()
	copy(out[:fpByteLen], x.c1.BytesBE())
	copy(out[fpByteLen:], x.c0.BytesBE())
	out[0] |= compressedFlag
	if ySign(y.c0) {
		out[0] |= ySignFlag
	}
	return out
}

// DecodeG2Compressed reads a 96-byte compressed G2 encoding.
func DecodeG2Compressed(data [g2ByteLen]byte) (G2, error) {
	if data[0]&compressedFlag == 0 {
		return G2{}, ErrInvalidEncoding
	}
	if data[0]&infinityFlag != 0 {
		return G2Infinity(), nil
	}

	sign := data[0]&ySignFlag != 0
	var buf [g2ByteLen]byte
	buf = data
	buf[0] &^= compressedFlag | infinityFlag | ySignFlag

	c1, err := fp.FromBytesBE(modulus, buf[:fpByteLen])
	if err != nil {
		return G2{}, ErrInvalidEncoding
	}
	c0, err := fp.FromBytesBE(modulus, buf[fpByteLen:])
	if err != nil {
		return G2{}, ErrInvalidEncoding
	}
	x := Fp2{c0: c0, c1: c1}

	rhs := x.Square().Mul(x).Add(twistB)
	ok, y := rhs.Sqrt()
	if !ok {
		return G2{}, ErrNotOnCurve
	}
	if ySign(y.c0) != sign {
		y = y.Neg()
	}

	p := G2FromAffine(x, y)
	if !p.InSubgroup() {
		return G2{}, ErrNotInSubgroup
	}
	return p, nil
}

// ySign reports the lexicographic sign bit used for compressed-point
// encodings: true if y's canonical representative is greater than (p-1)/2.
func ySign(y fp.Element) bool {
	half := new(big.Int).Rsh(zoo.BLS12381.P, 1)
	return y.ToBig().Cmp(half) > 0
}

// EncodeFr encodes a scalar field element in the 32-byte little-endian
// convention scalars use on the wire.
func EncodeFr(e fp.Element) []byte { return e.BytesLE() }

// DecodeFr decodes a 32-byte little-endian scalar, rejecting any value
// outside [0, r).
func DecodeFr(data []byte) (fp.Element, error) { return fp.FromBytesLE(zoo.BLS12381.R, data) }
