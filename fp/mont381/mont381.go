// Package mont381 implements a constant-time Montgomery-form field element
// for BLS12-381's base field Fp, built directly on the bigint primitives
// instead of math/big. Everywhere else in this engine uses fp.Element
// (math/big-backed, see that package's doc comment) for breadth across every
// curve, but this package shows the genuine fixed-limb, branch-free
// discipline secret-key-adjacent hot paths need. Elements and scratch
// values are heap-allocated limb slices.
//
// Limbs is fixed at 6 64-bit words (384 bits), comfortably bounding
// BLS12-381's 381-bit modulus with R = 2^384.
package mont381

import "github.com/mratsim/constantine-go/bigint"

const NumLimbs = 6

// Modulus is BLS12-381's base field prime p, little-endian limbs.
var Modulus = bigint.Limbs{
	0xb9feffffffffaaab, 0x1eabfffeb153ffff, 0x6730d2a0f6b0f624,
	0x64774b84f38512bf, 0x4b1ba7b6434bacd7, 0x1a0111ea397fe69a,
}

// rModP is R mod p (Montgomery's representation of 1), R = 2^384.
var rModP = bigint.Limbs{
	0x760900000002fffd, 0xebf4000bc40c0002, 0x5f48985753c758ba,
	0x77ce585370525745, 0x5c071a97a256ec6d, 0x15f65ec3fa80e493,
}

// r2ModP is R^2 mod p, used to convert an element into Montgomery form by a
// single extra Montgomery multiplication.
var r2ModP = bigint.Limbs{
	0xf4df1f341c341746, 0xa76e6a609d104f1, 0x8de5476c4c95b6d5,
	0x67eb88a9939d83c0, 0x9a793e85b519952d, 0x11988fe592cae3aa,
}

// nPrime0 is -p^-1 mod 2^64, the Montgomery reduction constant (CIOS "mu").
const nPrime0 uint64 = 0x89f3fffcfffcfffd

// Element holds a value in Montgomery form: the stored limbs represent
// v*R mod p for the logical value v. The zero value is the field's additive
// identity.
type Element struct {
	limbs bigint.Limbs
}

func newElement() Element {
	return Element{limbs: make(bigint.Limbs, NumLimbs)}
}

// Zero returns the additive identity.
func Zero() Element { return newElement() }

// One returns the multiplicative identity, stored as R mod p.
func One() Element {
	e := newElement()
	copy(e.limbs, rModP)
	return e
}

// FromRaw converts a residue given as little-endian limbs into Montgomery
// form.
// Precondition: raw already represents a value in [0, p); callers normalize
// via the fp package's FromBytesBE before calling this for untrusted input.
func FromRaw(raw bigint.Limbs) Element {
	e := newElement()
	// Convert: e = raw * R^2 * R^-1 mod p = raw * R mod p, via one
	// Montgomery multiplication against the precomputed R^2 constant.
	montMul(e.limbs, raw, r2ModP)
	return e
}

// ToRaw Montgomery-reduces e by 1, returning the canonical (non-Montgomery)
// residue in [0, p).
func (e Element) ToRaw() bigint.Limbs {
	out := make(bigint.Limbs, NumLimbs)
	one := make(bigint.Limbs, NumLimbs)
	one[0] = 1
	montMul(out, e.limbs, one)
	return out
}

// montMul computes dst = a*b*R^-1 mod p using CIOS (Coarsely Integrated
// Operand Scanning). Every step runs for a fixed number of limbs regardless
// of operand value, and the final conditional subtraction is an
// unconditional Sub followed by a CMov select rather than a branch.
func montMul(dst, a, b bigint.Limbs) {
	// t carries two limbs beyond the modulus width: t[NumLimbs] holds the
	// carry out of each inner product loop, and t[NumLimbs+1] catches the
	// rare second-order carry out of folding that carry into t[NumLimbs].
	// Dropping the second slot loses the 65th carry bit on the (rare) inputs
	// where both phases' carries are large; both are carried explicitly here.
	var t [NumLimbs + 2]uint64

	for i := 0; i < NumLimbs; i++ {
		// t += a[i] * b
		carry := uint64(0)
		for j := 0; j < NumLimbs; j++ {
			hi, lo := mulAdd(a[i], b[j], t[j], carry)
			t[j] = lo
			carry = hi
		}
		sum, c2 := addWithCarry(t[NumLimbs], carry, 0)
		t[NumLimbs] = sum
		t[NumLimbs+1] += c2

		// m = t[0] * nPrime0 mod 2^64
		m := t[0] * nPrime0

		// t += m * p; the low limb is guaranteed to cancel to zero, so the
		// whole accumulator is shifted right by one limb afterwards.
		carry = 0
		for j := 0; j < NumLimbs; j++ {
			hi, lo := mulAdd(m, Modulus[j], t[j], carry)
			t[j] = lo
			carry = hi
		}
		sum2, c3 := addWithCarry(t[NumLimbs], carry, 0)

		// Shift the window down by one limb, folding in the banked carry.
		for j := 0; j < NumLimbs; j++ {
			t[j] = t[j+1]
		}
		t[NumLimbs-1] = sum2
		t[NumLimbs] = t[NumLimbs+1] + c3
		t[NumLimbs+1] = 0
	}

	result := bigint.Limbs(t[:NumLimbs])
	// Conditional subtraction of p if result >= p, branch-free.
	reduced := make(bigint.Limbs, NumLimbs)
	borrow := bigint.Sub(reduced, result, Modulus)
	ctl := bigint.Word(1) ^ borrow // 1 when no borrow, i.e. result >= p
	bigint.CMov(result, reduced, ctl)
	copy(dst, result)
}

// mulAdd computes a*b + c + carry as a 128-bit value, returning (hi, lo).
func mulAdd(a, b, c, carry uint64) (hi, lo uint64) {
	hi, lo = mul64(a, b)
	var c1, c2 uint64
	lo, c1 = addWithCarry(lo, c, 0)
	lo, c2 = addWithCarry(lo, carry, 0)
	hi += c1 + c2
	return hi, lo
}

func mul64(a, b uint64) (hi, lo uint64) {
	const mask32 = 1<<32 - 1
	aLo, aHi := a&mask32, a>>32
	bLo, bHi := b&mask32, b>>32

	lo32 := aLo * bLo
	mid1 := aHi * bLo
	mid2 := aLo * bHi
	hi32 := aHi * bHi

	mid := mid1 + mid2
	carry := ((mid1 & mid2) | ((mid1 | mid2) &^ mid)) >> 63 << 32

	midLo := mid << 32
	lo = lo32 + midLo
	carry += ((lo32 & midLo) | ((lo32 | midLo) &^ lo)) >> 63
	hi = hi32 + (mid >> 32) + carry
	return hi, lo
}

func addWithCarry(a, b, carry uint64) (sum, carryOut uint64) {
	sum = a + b + carry
	carryOut = ((a & b) | ((a | b) &^ sum)) >> 63
	return sum, carryOut
}

// Add returns e + f mod p.
func Add(e, f Element) Element {
	out := newElement()
	sum := make(bigint.Limbs, NumLimbs)
	carry := bigint.Add(sum, e.limbs, f.limbs)

	reduced := make(bigint.Limbs, NumLimbs)
	borrow := bigint.Sub(reduced, sum, Modulus)
	// Need to subtract p whenever sum >= p. sum can exceed one limb width
	// via carry, in which case it is certainly >= p (p < 2^384).
	ctl := carry | (bigint.Word(1) ^ borrow)
	bigint.CMov(sum, reduced, ctl)
	copy(out.limbs, sum)
	return out
}

// Sub returns e - f mod p.
func Sub(e, f Element) Element {
	out := newElement()
	diff := make(bigint.Limbs, NumLimbs)
	borrow := bigint.Sub(diff, e.limbs, f.limbs)

	corrected := make(bigint.Limbs, NumLimbs)
	bigint.Add(corrected, diff, Modulus)
	bigint.CMov(diff, corrected, borrow)
	copy(out.limbs, diff)
	return out
}

// Neg returns -e mod p.
func Neg(e Element) Element { return Sub(Zero(), e) }

// Mul returns e*f mod p via Montgomery multiplication (CIOS).
func Mul(e, f Element) Element {
	out := newElement()
	montMul(out.limbs, e.limbs, f.limbs)
	return out
}

// Square returns e^2 mod p.
func Square(e Element) Element { return Mul(e, e) }

// pMinus2 is p-2, the Fermat exponent: a^(p-2) = a^-1 mod p for a != 0.
var pMinus2 = bigint.Limbs{
	0xb9feffffffffaaa9, 0x1eabfffeb153ffff, 0x6730d2a0f6b0f624,
	0x64774b84f38512bf, 0x4b1ba7b6434bacd7, 0x1a0111ea397fe69a,
}

// Exp returns e^k mod p via constant-time square-and-multiply-always: every
// iteration performs both a square and a multiply, selecting the multiply's
// effect with a branch-free CMov rather than skipping it on a zero bit.
func Exp(e Element, k bigint.Limbs) Element {
	acc := One()
	for i := len(k)*64 - 1; i >= 0; i-- {
		acc = Square(acc)
		word := i / 64
		bitIdx := uint(i % 64)
		bit := bigint.Word((k[word] >> bitIdx) & 1)

		candidate := Mul(acc, e)
		bigint.CMov(acc.limbs, candidate.limbs, bit)
	}
	return acc
}

// Inv returns the multiplicative inverse of e via Fermat exponentiation
// (a^(p-2) mod p), producing 0 on input 0 since 0^(p-2) mod p = 0.
func Inv(e Element) Element { return Exp(e, pMinus2) }

// IsZero reports whether e is the additive identity, in constant time.
func IsZero(e Element) bool { return bigint.IsZero(e.limbs) }

// Equal reports whether e and f represent the same residue.
func Equal(e, f Element) bool { return bigint.CtEq(e.limbs, f.limbs) == 1 }

// Limbs exposes the raw Montgomery-form limbs, e.g. for serialization glue
// with the fp package.
func (e Element) Limbs() bigint.Limbs { return bigint.Clone(e.limbs) }
