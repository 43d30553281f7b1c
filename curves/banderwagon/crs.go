package banderwagon

import (
	"crypto/sha256"
	"encoding/binary"
)

// VerkleSeed is the domain-separation string for deterministic CRS
// generation: iterate a counter, hash it alongside the seed, and keep
// every digest that decompresses to a valid Banderwagon point.
const VerkleSeed = "eth_verkle_oct_2021"

// GenerateCRS deterministically derives n independent Banderwagon
// generators from VerkleSeed: for counter i = 0, 1, 2, ..., hash
// SHA256(VerkleSeed || be_u64(i)) and attempt to decompress the digest
// as a point, keeping the first n that succeed. Unlike
// GeneratePedersenGenerators' (i+2)*G scheme, nobody -- including the
// deriver -- learns a discrete log relating these points to each other
// or to Generator(), which is what a CRS with unknown relative discrete
// logs requires.
func GenerateCRS(n int) []Point {
	out := make([]Point, 0, n)
	var i uint64
	for len(out) < n {
		var msg [len(VerkleSeed) + 8]byte
		copy(msg[:], VerkleSeed)
		binary.BigEndian.PutUint64(msg[len(VerkleSeed):], i)
		digest := sha256.Sum256(msg[:])

		if p, err := Deserialize(digest); err == nil {
			out = append(out, p)
		}
		i++
	}
	return out
}
