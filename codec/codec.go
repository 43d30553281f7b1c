// Package codec implements the canonical wire encodings for the IPA
// proof and multiproof objects (L6 in the layering table): fixed-size
// byte layouts built directly on curves/banderwagon's compressed point
// encoding and a little-endian scalar encoding, with no teacher
// equivalent to ground on -- crypto/ipa.go and crypto/ipa_integration.go
// never serialize a proof to bytes, they pass Go structs around
// in-process. This package follows the original specification's own
// §6 wire-format description instead (544-byte IPAProof, 576-byte
// MultiProof), matching the flag-byte and byte-order conventions the
// curves/bls12381 and curves/banderwagon codec files already establish
// for this tree.
package codec

import (
	"errors"
	"math/big"

	"github.com/mratsim/constantine-go/curves/banderwagon"
	"github.com/mratsim/constantine-go/ipa"
	"github.com/mratsim/constantine-go/zoo"
)

var (
	ErrScalarOutOfRange = errors.New("codec: scalar encoding out of range")
	ErrTruncatedProof   = errors.New("codec: truncated proof")
	ErrInvalidPoint     = errors.New("codec: invalid point encoding")
)

const (
	scalarByteLen = 32
	pointByteLen  = 32

	// IPAProofByteLen is the wire size of a single-opening IPA proof:
	// ipa.NumRounds (L, R) pairs plus one final scalar, 32 bytes each.
	IPAProofByteLen = (2*ipa.NumRounds + 1) * scalarByteLen

	// MultiProofByteLen is the wire size of a multiproof: one grouping
	// commitment D plus one IPAProof.
	MultiProofByteLen = pointByteLen + IPAProofByteLen
)

// EncodeScalar little-endian encodes a scalar mod the Banderwagon
// subgroup order, per §6's "Byte encoding of scalars" convention.
func EncodeScalar(s *big.Int) [scalarByteLen]byte {
	var out [scalarByteLen]byte
	b := s.Bytes()
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// DecodeScalar reads a little-endian scalar encoding, rejecting any
// value outside [0, N).
func DecodeScalar(enc [scalarByteLen]byte) (*big.Int, error) {
	be := make([]byte, scalarByteLen)
	for i, v := range enc {
		be[scalarByteLen-1-i] = v
	}
	v := new(big.Int).SetBytes(be)
	if v.Cmp(zoo.Banderwagon.N) >= 0 {
		return nil, ErrScalarOutOfRange
	}
	return v, nil
}

// EncodeIPAProof lays out an IPAProof as
// L[0] || ... || L[NumRounds-1] || R[0] || ... || R[NumRounds-1] || A,
// each component 32 bytes, per §6's IPA proof wire format.
func EncodeIPAProof(p *ipa.IPAProof) ([]byte, error) {
	if len(p.L) != ipa.NumRounds || len(p.R) != ipa.NumRounds {
		return nil, ErrTruncatedProof
	}
	out := make([]byte, 0, IPAProofByteLen)
	for _, pt := range p.L {
		enc := pt.Serialize()
		out = append(out, enc[:]...)
	}
	for _, pt := range p.R {
		enc := pt.Serialize()
		out = append(out, enc[:]...)
	}
	a := EncodeScalar(p.A)
	out = append(out, a[:]...)
	return out, nil
}

// DecodeIPAProof parses a 544-byte IPAProof encoding, validating that
// every 32-byte chunk decodes as a canonical Banderwagon point or
// in-range scalar.
func DecodeIPAProof(data []byte) (*ipa.IPAProof, error) {
	if len(data) != IPAProofByteLen {
		return nil, ErrTruncatedProof
	}

	readPoint := func(off int) (banderwagon.Point, error) {
		var enc [pointByteLen]byte
		copy(enc[:], data[off:off+pointByteLen])
		p, err := banderwagon.Deserialize(enc)
		if err != nil {
			return banderwagon.Point{}, ErrInvalidPoint
		}
		return p, nil
	}

	proof := &ipa.IPAProof{
		L: make([]banderwagon.Point, ipa.NumRounds),
		R: make([]banderwagon.Point, ipa.NumRounds),
	}
	off := 0
	for i := 0; i < ipa.NumRounds; i++ {
		p, err := readPoint(off)
		if err != nil {
			return nil, err
		}
		proof.L[i] = p
		off += pointByteLen
	}
	for i := 0; i < ipa.NumRounds; i++ {
		p, err := readPoint(off)
		if err != nil {
			return nil, err
		}
		proof.R[i] = p
		off += pointByteLen
	}

	var aEnc [scalarByteLen]byte
	copy(aEnc[:], data[off:off+scalarByteLen])
	a, err := DecodeScalar(aEnc)
	if err != nil {
		return nil, err
	}
	proof.A = a

	return proof, nil
}

// EncodeMultiProof lays out a MultiProof as D (32 bytes, compressed
// Banderwagon) followed by its IPAProof (544 bytes), per §6.
func EncodeMultiProof(mp *ipa.MultiProof) ([]byte, error) {
	ipaBytes, err := EncodeIPAProof(mp.Proof)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, MultiProofByteLen)
	dEnc := mp.D.Serialize()
	out = append(out, dEnc[:]...)
	out = append(out, ipaBytes...)
	return out, nil
}

// DecodeMultiProof parses a 576-byte MultiProof encoding.
func DecodeMultiProof(data []byte) (*ipa.MultiProof, error) {
	if len(data) != MultiProofByteLen {
		return nil, ErrTruncatedProof
	}

	var dEnc [pointByteLen]byte
	copy(dEnc[:], data[:pointByteLen])
	d, err := banderwagon.Deserialize(dEnc)
	if err != nil {
		return nil, ErrInvalidPoint
	}

	proof, err := DecodeIPAProof(data[pointByteLen:])
	if err != nil {
		return nil, err
	}

	return &ipa.MultiProof{D: d, Proof: proof}, nil
}
