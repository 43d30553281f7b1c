// Package transcript implements the Fiat-Shamir transcript used to turn
// the IPA/multiproof protocol's interactive challenges into
// deterministic, non-interactive ones: a SHA-256 sponge initialized with
// a domain-separation label, absorbing labeled points and scalars, and
// squeezing labeled challenge scalars.
//
// Grounded on crypto/ipa.go's ipaTranscript (newIPATranscript/
// appendPoint/appendScalar/challenge), generalized from that type's
// fixed append-only protocol sequence to the labeled absorb/squeeze
// interface multiproof's richer transcript schedule needs (absorbing a
// challenge scalar `r`'s grouping, then `D`, then squeezing `t`, on top
// of the single-opening IPA's own absorb/squeeze calls).
package transcript

import (
	"crypto/sha256"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/mratsim/constantine-go/curves/banderwagon"
	"github.com/mratsim/constantine-go/zoo"
)

// Transcript is a stateful Fiat-Shamir sponge.
type Transcript struct {
	state []byte
}

// New starts a transcript with the given domain-separation label.
func New(label string) *Transcript {
	h := sha256.Sum256([]byte(label))
	return &Transcript{state: h[:]}
}

func (t *Transcript) absorb(label string, data []byte) {
	h := sha256.New()
	h.Write(t.state)
	h.Write([]byte(label))
	h.Write(data)
	t.state = h.Sum(nil)
}

// AbsorbPoint mixes a compressed Banderwagon point into the transcript
// under the given label.
func (t *Transcript) AbsorbPoint(label string, p banderwagon.Point) {
	enc := p.Serialize()
	t.absorb(label, enc[:])
}

// AbsorbScalar mixes a big-endian-encoded scalar into the transcript
// under the given label.
func (t *Transcript) AbsorbScalar(label string, s *big.Int) {
	var buf [32]byte
	b := s.Bytes()
	copy(buf[32-len(b):], b)
	t.absorb(label, buf[:])
}

// Squeeze derives a challenge scalar from the current transcript state
// and label, then ratchets the internal state forward so the same label
// never yields the same challenge twice. The raw 32-byte digest is loaded
// into a fixed-width 256-bit uint256.Int, then converted to a big.Int and
// reduced mod the Banderwagon subgroup order; a zero result is replaced
// by 1.
func (t *Transcript) Squeeze(label string) *big.Int {
	h := sha256.New()
	h.Write(t.state)
	h.Write([]byte(label))
	digest := h.Sum(nil)
	t.state = digest

	var raw [32]byte
	copy(raw[:], digest)
	acc := new(uint256.Int).SetBytes32(raw[:])

	c := acc.ToBig()
	c.Mod(c, zoo.Banderwagon.N)
	if c.Sign() == 0 {
		c.SetInt64(1)
	}
	return c
}
