// Package zoo holds the compile-time constant tables for every curve this
// engine knows about. Each entry is a plain data record -- a prime, a
// generator, a set of tower non-residues, a pairing loop parameter -- never
// a runtime-configurable value. Curve identity is selected by which zoo
// entry a caller imports/dereferences, not by branching on a runtime tag in
// the hot arithmetic path.
package zoo

import "math/big"

// Family distinguishes the pairing-friendly curve families this engine
// implements, since the Miller loop and final exponentiation shapes differ.
type Family int

const (
	FamilyBLS12 Family = iota
	FamilyBN
)

// Curve is the static parameter table for one pairing-friendly curve.
type Curve struct {
	Name   string
	Family Family

	// P is the base field modulus.
	P *big.Int
	// R is the prime order of G1/G2's common subgroup.
	R *big.Int

	// G1B is the G1 curve coefficient in y^2 = x^3 + B.
	G1B *big.Int
	// G1Gx, G1Gy are the G1 generator's affine coordinates.
	G1Gx, G1Gy *big.Int
	// G1Cofactor is h1 = |E(Fp)| / R.
	G1Cofactor *big.Int

	// G2B0, G2B1 are the G2 twist coefficient's Fp2 components (B or B/xi
	// depending on twist type; consumers interpret these per-family).
	G2B0, G2B1 *big.Int
	// G2Gx0, G2Gx1, G2Gy0, G2Gy1 are the G2 generator's Fp2 affine coordinates.
	G2Gx0, G2Gx1, G2Gy0, G2Gy1 *big.Int
	// G2Cofactor is h2 = |E'(Fp2)| / R.
	G2Cofactor *big.Int

	// FpNonResidue is beta, the Fp2 = Fp[u]/(u^2 - beta) non-residue.
	FpNonResidue *big.Int
	// Fp2NonResidueC0, Fp2NonResidueC1 is xi = c0 + c1*u, the
	// Fp6 = Fp2[v]/(v^3 - xi) non-residue.
	Fp2NonResidueC0, Fp2NonResidueC1 *big.Int

	// X is the family parameter (BLS12: curve parameter u; BN: loop
	// parameter u). XIsNegative records its sign for the loop/conjugation
	// adjustments the Miller loop and final exponentiation apply.
	X           *big.Int
	XIsNegative bool

	// HashToCurveDST is the default domain-separation tag suffix used by
	// the hash-to-curve suite name for this curve (RFC 9380 naming).
	HashToCurveDST string
}

// BLS12381 is the flagship curve this engine is built around.
var BLS12381 = &Curve{
	Name:   "BLS12-381",
	Family: FamilyBLS12,

	P: mustHex("1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab"),
	R: mustHex("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001"),

	G1B:        big.NewInt(4),
	G1Gx:       mustHex("17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb"),
	G1Gy:       mustHex("08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1"),
	G1Cofactor: mustHex("396c8c005555e1568c00aaab0000aaab"),

	// Twist B = 4*(1+u).
	G2B0: big.NewInt(4),
	G2B1: big.NewInt(4),
	G2Gx0: mustHex("024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8"),
	G2Gx1: mustHex("13e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e"),
	G2Gy0: mustHex("0ce5d527727d6e118cc9cdc6da2e351aadfd9baa8cbdd3a76d429a695160d12c923ac9cc3baca289e193548608b82801"),
	G2Gy1: mustHex("0606c4a02ea734cc32acd2b02bc28b99cb3e287e85a763af267492ab572e99ab3f370d275cec1da1aaa9075ff05f79be"),
	G2Cofactor: mustDec("305502333931268344200999753193121504214466019254188142667664032982267604182971884026507427359259977847832272839041616661285803823378372096355777062779109"),

	FpNonResidue: big.NewInt(-1), // Fp2 = Fp[u]/(u^2+1)

	X:           mustHex("d201000000010000"),
	XIsNegative: true,

	HashToCurveDST: "BLS12381G1_XMD:SHA-256_SSWU_RO_",
}

// BN254 (alt_bn128) backs the EVM's pairing precompile family.
var BN254 = &Curve{
	Name:   "BN254",
	Family: FamilyBN,

	P: mustDec("21888242871839275222246405745257275088696311157297823662689037894645226208583"),
	R: mustDec("21888242871839275222246405745257275088548364400416034343698204186575808495617"),

	G1B:        big.NewInt(3),
	G1Gx:       big.NewInt(1),
	G1Gy:       big.NewInt(2),
	G1Cofactor: big.NewInt(1),

	G2B0: mustDec("19485874751759354771024239261021720505790618469301721065564631296452457478373"),
	G2B1: mustDec("266929791119991161246907387137283842545076965332900288569378510910307636690"),
	G2Gx0: mustDec("10857046999023057135944570762232829481370756359578518086990519993285655852781"),
	G2Gx1: mustDec("11559732032986387107991004021392285783925812861821192530917403151452391805634"),
	G2Gy0: mustDec("8495653923123431417604973247489272438418190587263600148770280649306958101930"),
	G2Gy1: mustDec("4082367875863433681332203403145435568316851327593401208105741076214120093531"),
	G2Cofactor: mustDec("21888242871839275222246405745257275088844257914179612981679871602714643921549"),

	FpNonResidue: big.NewInt(-1), // Fp2 = Fp[i]/(i^2+1)

	X:           mustDec("4965661367192848881"),
	XIsNegative: false,

	HashToCurveDST: "BN254G1_XMD:KECCAK-256_SVDW_RO_",
}

// EdwardsCurve is the static parameter table for a twisted Edwards curve
// used as a commitment scheme's scalar multiplication group rather than a
// pairing target. Its field/subgroup shape doesn't fit Curve above: the
// coordinate field and the scalar field are two different primes.
type EdwardsCurve struct {
	Name string

	// Fp is the coordinate field modulus (the twisted Edwards curve's base
	// field, not to be confused with the pairing curve scalar field it
	// happens to coincide with for Banderwagon).
	Fp *big.Int
	// N is the prime order of the curve's cryptographic subgroup.
	N *big.Int

	// A, D are the twisted Edwards parameters: a*x^2 + y^2 = 1 + d*x^2*y^2.
	A, D *big.Int

	// Gx, Gy are the subgroup generator's affine coordinates.
	Gx, Gy *big.Int
}

// Banderwagon is the prime-order subgroup of Bandersnatch used by Verkle
// tree vector commitments (EIP-6800). Its coordinate field is the
// BLS12381 scalar field R, so IPA/multiproof scalars and Banderwagon
// coordinates share one modulus.
var Banderwagon = &EdwardsCurve{
	Name: "Banderwagon",

	Fp: mustHex("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001"),
	N:  mustHex("1cfb69d4ca675f520cce760202687600ff8f87007419047174fd06b52876e7e1"),

	A: new(big.Int).Neg(big.NewInt(5)),
	D: mustHex("6389c12633c267cbc66e3bf86be3b6d8cb66677177e54f92b369f2f5188d58e7"),

	Gx: mustHex("29c132cc2c0b34c5743711777bbe42f32b79c022ad998465e1e71866a252ae18"),
	Gy: mustHex("2a6c669eda123e0f157d8b50badcd586358cad81eee464605e3167b6cc974166"),
}

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("zoo: bad hex constant " + s)
	}
	return v
}

func mustDec(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("zoo: bad decimal constant " + s)
	}
	return v
}
