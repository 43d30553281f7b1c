package zoo

import "math/big"

// banderwagonParams is the twisted-Edwards curve used by the Verkle/IPA layer,
// with the CRS seed and domain size alongside the curve constants (the
// exported table is Banderwagon in zoo.go). Its
// base field is BLS12-381's scalar field Fr; its own prime-order subgroup
// (quotient of the Bandersnatch curve by its 2-torsion) has a distinct order
// used for scalar arithmetic in the IPA protocol.
var banderwagonParams = struct {
	// Fp is BLS12-381's Fr, the field coordinates live in.
	Fp *big.Int
	// N is the order of the Banderwagon quotient group, used for
	// IPA/multiproof scalar arithmetic.
	N *big.Int
	// A, D are the twisted-Edwards curve parameters: a*x^2 + y^2 = 1 + d*x^2*y^2.
	A, D *big.Int
	// Gx, Gy are the standard generator's affine coordinates.
	Gx, Gy *big.Int
	// Seed is the ASCII seed used to deterministically regenerate the
	// Verkle CRS via try-and-increment SHA-256 decompression.
	Seed string
	// DomainSize is D, the Verkle polynomial evaluation domain size.
	DomainSize int
}{
	Fp:         mustHex("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001"),
	N:          mustHex("1cfb69d4ca675f520cce760202687600ff8f87007419047174fd06b52876e7e1"),
	A:          mustDec("-5"),
	D:          mustHex("6389c12633c267cbc66e3bf86be3b6d8cb66677177e54f92b369f2f5188d58e7"),
	Gx:         mustHex("29c132cc2c0b34c5743711777bbe42f32b79c022ad998465e1e71866a252ae18"),
	Gy:         mustHex("2a6c669eda123e0f157d8b50badcd586358cad81eee464605e3167b6cc974166"),
	Seed:       "eth_verkle_oct_2021",
	DomainSize: 256,
}
