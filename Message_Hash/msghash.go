// Package msghash maps byte strings into R_q through counter-mode SHA-256
// expansion, and provides the plain digests used for polynomial
// serialization checks.
package msghash

import (
	"crypto/sha256"
	"encoding/binary"

	poly "RLWE-Blind-Signature/Polynomial"
)

// Sum returns the SHA-256 digest of data.
func Sum(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

// SumPolynomial returns the SHA-256 digest of the canonical byte encoding
// of p.
func SumPolynomial(p *poly.Polynomial) []byte {
	return Sum(p.Bytes())
}

// HashToPolynomial expands msg into a polynomial in R_q whose coefficients
// lie in {0, floor(q/2)}.
//
// Blocks SHA-256(counter || msg) are produced for counter = 0, 1, ... with
// the counter serialized as 4 little-endian bytes. Digest bits are consumed
// most-significant-first; bit b becomes coefficient b * floor(q/2). The map
// is a pure function of msg for fixed (n, q).
func HashToPolynomial(msg []byte, n int, q uint64) *poly.Polynomial {
	half := q / 2
	coeffs := make([]uint64, n)

	block := make([]byte, 4+len(msg))
	copy(block[4:], msg)

	idx := 0
	for counter := uint32(0); idx < n; counter++ {
		binary.LittleEndian.PutUint32(block[:4], counter)
		digest := sha256.Sum256(block)
		for _, b := range digest {
			for bit := 7; bit >= 0; bit-- {
				if idx >= n {
					break
				}
				if (b>>uint(bit))&1 == 1 {
					coeffs[idx] = half
				}
				idx++
			}
			if idx >= n {
				break
			}
		}
	}
	return poly.New(coeffs, q)
}
