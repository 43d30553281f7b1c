// Package fp implements prime-field arithmetic shared by every curve's base
// and scalar field.
//
// Internally this wraps math/big rather than a fixed-limb Montgomery
// representation, so every operation here is variable-time. The higher
// layers (towers, curve arithmetic, pairings, IPA) all run on it, including
// the curve packages' ScalarMul routines when they are given a secret
// scalar; none of them gets a constant-time guarantee from this package.
// Genuine constant-time Montgomery
// arithmetic for the hot secret-key path is realized concretely for
// BLS12-381's base field in the sibling fp/mont381 package, built directly
// on the bigint primitives. See DESIGN.md for the full rationale.
package fp

import (
	"errors"
	"math/big"
)

// ErrOutOfRange is returned when decoding a byte string whose integer value
// is not in [0, modulus).
var ErrOutOfRange = errors.New("fp: encoded value out of range")

// Modulus names a field by its prime. Callers should use a single shared
// *big.Int per field (e.g. one of the zoo package's curve constants) so
// Elements of the same field compare equal by pointer identity of m where
// convenient, though arithmetic only ever compares the big.Int value.
type Modulus = *big.Int

// Element is a residue class modulo some prime m, held in canonical form
// (0 <= v < m) between calls.
type Element struct {
	v *big.Int
	m Modulus
}

// Zero returns the additive identity of the field with modulus m.
func Zero(m Modulus) Element { return Element{v: new(big.Int), m: m} }

// One returns the multiplicative identity of the field with modulus m.
func One(m Modulus) Element { return Element{v: big.NewInt(1), m: m} }

// FromBig reduces v modulo m and returns the corresponding Element.
func FromBig(m Modulus, v *big.Int) Element {
	r := new(big.Int).Mod(v, m)
	return Element{v: r, m: m}
}

// FromUint64 is a convenience constructor for small constants.
func FromUint64(m Modulus, v uint64) Element {
	return FromBig(m, new(big.Int).SetUint64(v))
}

// ToBig returns the canonical representative of e as a *big.Int. The result
// is a fresh copy; mutating it does not affect e.
func (e Element) ToBig() *big.Int { return new(big.Int).Set(e.v) }

// Modulus returns the field modulus e was constructed with.
func (e Element) Modulus() Modulus { return e.m }

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool { return e.v.Sign() == 0 }

// Equal reports whether e and f represent the same residue. Elements of
// different moduli are never equal.
func (e Element) Equal(f Element) bool {
	if e.m.Cmp(f.m) != 0 {
		return false
	}
	return e.v.Cmp(f.v) == 0
}

// Add returns e + f mod m.
func (e Element) Add(f Element) Element {
	r := new(big.Int).Add(e.v, f.v)
	r.Mod(r, e.m)
	return Element{v: r, m: e.m}
}

// Sub returns e - f mod m.
func (e Element) Sub(f Element) Element {
	r := new(big.Int).Sub(e.v, f.v)
	r.Mod(r, e.m)
	return Element{v: r, m: e.m}
}

// Neg returns -e mod m.
func (e Element) Neg() Element {
	if e.v.Sign() == 0 {
		return e
	}
	r := new(big.Int).Sub(e.m, e.v)
	return Element{v: r, m: e.m}
}

// Double returns 2*e mod m.
func (e Element) Double() Element { return e.Add(e) }

// Mul returns e * f mod m.
func (e Element) Mul(f Element) Element {
	r := new(big.Int).Mul(e.v, f.v)
	r.Mod(r, e.m)
	return Element{v: r, m: e.m}
}

// Square returns e^2 mod m.
func (e Element) Square() Element { return e.Mul(e) }

// Inv returns the multiplicative inverse of e, or the zero element if e is
// zero. Returning zero rather than panicking or erroring means callers
// composing batch formulas never need a special case for an intermediate
// zero.
func (e Element) Inv() Element {
	if e.v.Sign() == 0 {
		return Element{v: new(big.Int), m: e.m}
	}
	r := new(big.Int).ModInverse(e.v, e.m)
	return Element{v: r, m: e.m}
}

// Exp returns e^k mod m for a non-negative exponent k.
func (e Element) Exp(k *big.Int) Element {
	r := new(big.Int).Exp(e.v, k, e.m)
	return Element{v: r, m: e.m}
}

// Sqrt returns (true, r) with r*r == e when e is a quadratic residue, and
// (false, undefined) otherwise, in place of panicking on a non-square input.
func (e Element) Sqrt() (ok bool, r Element) {
	if e.v.Sign() == 0 {
		return true, e
	}
	root := new(big.Int).ModSqrt(e.v, e.m)
	if root == nil {
		return false, Element{}
	}
	return true, Element{v: root, m: e.m}
}

// IsSquare reports whether e is a quadratic residue mod m, via Euler's
// criterion.
func (e Element) IsSquare() bool {
	if e.v.Sign() == 0 {
		return true
	}
	exp := new(big.Int).Rsh(new(big.Int).Sub(e.m, big.NewInt(1)), 1)
	return new(big.Int).Exp(e.v, exp, e.m).Cmp(big.NewInt(1)) == 0
}

// Sgn0 returns the "sign" of e per the hash-to-curve specification: the
// low bit of its canonical representative.
func (e Element) Sgn0() int { return int(e.v.Bit(0)) }

// CMov returns f when ctl == 1 and e when ctl == 0. Since Element is backed
// by math/big (see package doc), this is a logical select for public-data
// control flow, not a branch-free limb-level primitive; that guarantee is
// provided by bigint.CMov and realized concretely in fp/mont381.
func (e Element) CMov(f Element, ctl int) Element {
	if ctl == 1 {
		return f
	}
	return e
}

// BatchInvert inverts every element of xs in a single pass using Montgomery's
// trick: one modular inversion plus 3*(n-1) multiplications, rather than n
// independent inversions. Zero elements invert to zero, matching Inv's
// convention.
func BatchInvert(xs []Element) []Element {
	n := len(xs)
	out := make([]Element, n)
	if n == 0 {
		return out
	}
	m := xs[0].m

	// Running product of non-zero elements; zero entries are tracked so they
	// can be skipped from the chain and zeroed in the output.
	prefix := make([]Element, n)
	acc := One(m)
	for i := 0; i < n; i++ {
		prefix[i] = acc
		if !xs[i].IsZero() {
			acc = acc.Mul(xs[i])
		}
	}

	inv := acc.Inv()
	for i := n - 1; i >= 0; i-- {
		if xs[i].IsZero() {
			out[i] = Zero(m)
			continue
		}
		out[i] = inv.Mul(prefix[i])
		inv = inv.Mul(xs[i])
	}
	return out
}

// ByteLen returns ceil(bits(m)/8), the canonical encoded length of an
// element of this field.
func ByteLen(m Modulus) int { return (m.BitLen() + 7) / 8 }

// BytesBE encodes e as a big-endian byte string of length ByteLen(e.m).
func (e Element) BytesBE() []byte {
	out := make([]byte, ByteLen(e.m))
	b := e.v.Bytes()
	copy(out[len(out)-len(b):], b)
	return out
}

// FromBytesBE decodes a big-endian byte string into an Element of the field
// with modulus m, rejecting any encoding that is out of range (>= m) or of
// the wrong length.
func FromBytesBE(m Modulus, data []byte) (Element, error) {
	if len(data) != ByteLen(m) {
		return Element{}, ErrOutOfRange
	}
	v := new(big.Int).SetBytes(data)
	if v.Cmp(m) >= 0 {
		return Element{}, ErrOutOfRange
	}
	return Element{v: v, m: m}, nil
}

// BytesLE encodes e as a little-endian byte string of length ByteLen(e.m),
// the format scalar (Fr) elements use on the wire.
func (e Element) BytesLE() []byte {
	be := e.BytesBE()
	out := make([]byte, len(be))
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}

// FromBytesLE decodes a little-endian byte string, rejecting out-of-range
// scalar encodings.
func FromBytesLE(m Modulus, data []byte) (Element, error) {
	be := make([]byte, len(data))
	for i, b := range data {
		be[len(data)-1-i] = b
	}
	return FromBytesBE(m, be)
}
