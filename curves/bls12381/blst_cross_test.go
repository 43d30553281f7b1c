//go:build blst

// Cross-validation against supranational/blst, the teacher's production
// BLS12-381 backend. Opt-in via `go test -tags blst ./curves/bls12381/...`
// since blst is a CGO binding over a C library, not a pure-Go dependency.
// With the blst build tag set, ScalarMul itself is backed by blst (see
// scalarmul_blst.go); these tests pin that it agrees with blst's own
// generator-multiplication and compressed-point encoding.
package bls12381

import (
	"bytes"
	"math/big"
	"testing"

	blst "github.com/supranational/blst/bindings/go"
)

func TestG1ScalarMulMatchesBlst(t *testing.T) {
	ikm := make([]byte, 32)
	for i := range ikm {
		ikm[i] = byte(i + 7)
	}
	sk := blst.KeyGen(ikm)
	if sk == nil {
		t.Fatal("blst.KeyGen failed")
	}
	pk := new(blst.P1Affine).From(sk)
	want := pk.Compress()

	k := new(big.Int).SetBytes(sk.Serialize())
	got := EncodeG1Compressed(G1Generator().ScalarMul(k))

	if !bytes.Equal(got[:], want) {
		t.Fatalf("G1 generator scalar mul disagrees with blst")
	}
}

func TestG1DecodeCompressedRoundTripsWithBlst(t *testing.T) {
	ikm := bytes.Repeat([]byte{0x33}, 32)
	sk := blst.KeyGen(ikm)
	pk := new(blst.P1Affine).From(sk)
	encoded := pk.Compress()

	var buf [g1ByteLen]byte
	copy(buf[:], encoded)
	p, err := DecodeG1Compressed(buf)
	if err != nil {
		t.Fatalf("DecodeG1Compressed rejected a valid blst point: %v", err)
	}

	k := new(big.Int).SetBytes(sk.Serialize())
	want := G1Generator().ScalarMul(k)
	if !p.Equal(want) {
		t.Fatalf("decoded point does not match the scalar multiple it should equal")
	}
}
