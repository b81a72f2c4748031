// Scalar arithmetic over Z_q for q < 2^63. Every reduction keeps values in
// the canonical range [0, q). These are the primitives underneath the NTT
// butterflies and the polynomial coefficient ops.
package Mod_Arith

import (
	"errors"
	"math/bits"
)

// ErrNoInverse is returned by Inverse when the element is not coprime to the
// modulus. With a prime q this only happens for a = 0.
var ErrNoInverse = errors.New("Mod_Arith: element has no modular inverse")

// Add returns a+b mod q. Inputs must already be in [0, q).
func Add(a, b, q uint64) uint64 {
	r := a + b
	if r >= q {
		r -= q
	}
	return r
}

// Sub returns a-b mod q. Inputs must already be in [0, q).
func Sub(a, b, q uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + q - b
}

// Mul returns a*b mod q through a full 128-bit intermediate product.
func Mul(a, b, q uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, q)
}

// Pow returns base^exp mod q by square-and-multiply.
func Pow(base, exp, q uint64) uint64 {
	res := uint64(1) % q
	base %= q
	for exp > 0 {
		if exp&1 == 1 {
			res = Mul(res, base, q)
		}
		base = Mul(base, base, q)
		exp >>= 1
	}
	return res
}

// Inverse returns a^{-1} mod q via the extended Euclidean algorithm.
func Inverse(a, q uint64) (uint64, error) {
	t, newT := int64(0), int64(1)
	r, newR := int64(q), int64(a%q)

	for newR != 0 {
		quot := r / newR
		t, newT = newT, t-quot*newT
		r, newR = newR, r-quot*newR
	}
	if r > 1 {
		return 0, ErrNoInverse
	}
	if t < 0 {
		t += int64(q)
	}
	return uint64(t), nil
}

// Reduce maps a signed value into the canonical range [0, q).
func Reduce(x int64, q uint64) uint64 {
	m := int64(q)
	r := x % m
	if r < 0 {
		r += m
	}
	return uint64(r)
}
