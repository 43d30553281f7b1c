//go:build blst

// Opt-in production backend: build with `-tags blst` to route ScalarMul
// through supranational/blst, a hardware-backed constant-time BLS12-381
// implementation, instead of the portable CMov-based path in
// scalarmul_portable.go. Not the default build because blst is a CGO
// binding over a C library, which would make CGO mandatory for every
// consumer of this package; opting in is a deliberate choice by a caller
// that needs a genuine timing guarantee and can afford CGO.
//
// The bridge between this package's Jacobian G1/G2 and blst's point types
// is this package's compressed wire encoding (EncodeG1Compressed/
// DecodeG1Compressed and their G2 counterparts), so no second codec is
// introduced; blst_cross_test.go round-trips the G1 encoding against blst.
package bls12381

import (
	"math/big"

	blst "github.com/supranational/blst/bindings/go"

	"github.com/mratsim/constantine-go/zoo"
)

// ScalarMul computes [k]P using blst's constant-time point multiplication.
func (p G1) ScalarMul(k *big.Int) G1 {
	kMod := new(big.Int).Mod(k, zoo.BLS12381.R)
	scalarBE := make([]byte, 32)
	kMod.FillBytes(scalarBE)

	enc := EncodeG1Compressed(p)
	base := new(blst.P1Affine).Uncompress(enc[:])
	if base == nil {
		panic("bls12381: blst.ScalarMul received a point that fails to decompress")
	}

	resultJac := base.Mult(scalarBE, 255)
	resultAffine := resultJac.ToAffine()

	var out [g1ByteLen]byte
	copy(out[:], resultAffine.Compress())
	result, err := DecodeG1Compressed(out)
	if err != nil {
		panic("bls12381: blst.ScalarMul produced a point this package rejects: " + err.Error())
	}
	return result
}

// ScalarMul computes [k]P using blst's constant-time point multiplication.
func (p G2) ScalarMul(k *big.Int) G2 {
	kMod := new(big.Int).Mod(k, zoo.BLS12381.R)
	scalarBE := make([]byte, 32)
	kMod.FillBytes(scalarBE)

	enc := EncodeG2Compressed(p)
	base := new(blst.P2Affine).Uncompress(enc[:])
	if base == nil {
		panic("bls12381: blst.ScalarMul received a point that fails to decompress")
	}

	resultJac := base.Mult(scalarBE, 255)
	resultAffine := resultJac.ToAffine()

	var out [g2ByteLen]byte
	copy(out[:], resultAffine.Compress())
	result, err := DecodeG2Compressed(out)
	if err != nil {
		panic("bls12381: blst.ScalarMul produced a point this package rejects: " + err.Error())
	}
	return result
}
