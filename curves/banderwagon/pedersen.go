package banderwagon

import (
	"math/big"
	"sync"
)

// NumPedersenGenerators is the width of the Verkle tree vector commitment:
// one generator per child of a 256-ary internal node.
const NumPedersenGenerators = 256

var (
	pedersenGeneratorsOnce sync.Once
	pedersenGenerators     [NumPedersenGenerators]Point
)

// GeneratePedersenGenerators returns the fixed basis used by PedersenCommit.
// Each generator is (i+2)*G for the curve's canonical generator G -- a
// simplified independent-generator derivation rather than a full
// hash-to-curve construction, computed once and cached.
func GeneratePedersenGenerators() []Point {
	pedersenGeneratorsOnce.Do(func() {
		g := Generator()
		for i := 0; i < NumPedersenGenerators; i++ {
			pedersenGenerators[i] = g.ScalarMulVartime(big.NewInt(int64(i + 2)))
		}
	})
	out := make([]Point, NumPedersenGenerators)
	copy(out, pedersenGenerators[:])
	return out
}

// PedersenCommit computes sum(values[i] * generators[i]) over the fixed
// Pedersen basis, committing to up to NumPedersenGenerators scalar values.
func PedersenCommit(values []*big.Int) (Point, error) {
	if len(values) > NumPedersenGenerators {
		return Point{}, errTooManyValues
	}
	gens := GeneratePedersenGenerators()
	return MSM(gens[:len(values)], values), nil
}
