// Package Polynomial implements elements of the quotient ring
// R_q = Z_q[x]/(x^n + 1).
//
// A Polynomial stores its n coefficients in ascending degree order, each in
// the canonical range [0, q). Values are immutable by convention: arithmetic
// returns fresh polynomials and never mutates a receiver or operand. Binary
// operations require both operands to live in the same ring.
package Polynomial

import (
	"encoding/binary"
	"errors"
	"math"

	modarith "RLWE-Blind-Signature/Mod_Arith"
	ntt "RLWE-Blind-Signature/NTT"
)

var (
	// ErrDimensionMismatch is returned when operands disagree on the ring
	// dimension n.
	ErrDimensionMismatch = errors.New("Polynomial: ring dimension mismatch")
	// ErrModulusMismatch is returned when operands disagree on the modulus q.
	ErrModulusMismatch = errors.New("Polynomial: modulus mismatch")
)

// Polynomial is an element of Z_q[x]/(x^n + 1).
type Polynomial struct {
	coeffs []uint64
	n      int
	q      uint64
}

// New builds a polynomial from a coefficient vector in ascending degree
// order. Each value is reduced into [0, q). The vector length fixes the ring
// dimension n for the lifetime of the value.
func New(coeffs []uint64, q uint64) *Polynomial {
	c := make([]uint64, len(coeffs))
	for i, v := range coeffs {
		c[i] = v % q
	}
	return &Polynomial{coeffs: c, n: len(coeffs), q: q}
}

// NewZero builds the zero polynomial of R_q with dimension n.
func NewZero(n int, q uint64) *Polynomial {
	return &Polynomial{coeffs: make([]uint64, n), n: n, q: q}
}

// N returns the ring dimension.
func (p *Polynomial) N() int { return p.n }

// Modulus returns the coefficient modulus q.
func (p *Polynomial) Modulus() uint64 { return p.q }

// Coeff returns the coefficient of x^i.
func (p *Polynomial) Coeff(i int) uint64 { return p.coeffs[i] }

// Coeffs returns a copy of the coefficient vector.
func (p *Polynomial) Coeffs() []uint64 {
	return append([]uint64(nil), p.coeffs...)
}

// Copy returns an independent copy of p.
func (p *Polynomial) Copy() *Polynomial {
	return &Polynomial{coeffs: append([]uint64(nil), p.coeffs...), n: p.n, q: p.q}
}

func (p *Polynomial) sameRing(other *Polynomial) error {
	if p.n != other.n {
		return ErrDimensionMismatch
	}
	if p.q != other.q {
		return ErrModulusMismatch
	}
	return nil
}

// Add returns p + other.
func (p *Polynomial) Add(other *Polynomial) (*Polynomial, error) {
	if err := p.sameRing(other); err != nil {
		return nil, err
	}
	out := NewZero(p.n, p.q)
	for i := range p.coeffs {
		out.coeffs[i] = modarith.Add(p.coeffs[i], other.coeffs[i], p.q)
	}
	return out, nil
}

// Sub returns p - other.
func (p *Polynomial) Sub(other *Polynomial) (*Polynomial, error) {
	if err := p.sameRing(other); err != nil {
		return nil, err
	}
	out := NewZero(p.n, p.q)
	for i := range p.coeffs {
		out.coeffs[i] = modarith.Sub(p.coeffs[i], other.coeffs[i], p.q)
	}
	return out, nil
}

// Neg returns -p.
func (p *Polynomial) Neg() *Polynomial {
	out := NewZero(p.n, p.q)
	for i, c := range p.coeffs {
		if c != 0 {
			out.coeffs[i] = p.q - c
		}
	}
	return out
}

// MulScalar returns p scaled coefficient-wise by c.
func (p *Polynomial) MulScalar(c uint64) *Polynomial {
	out := NewZero(p.n, p.q)
	for i, v := range p.coeffs {
		out.coeffs[i] = modarith.Mul(v, c%p.q, p.q)
	}
	return out
}

// Mul returns the product p * other in R_q, reduced modulo x^n + 1 and q.
//
// When a psi table exists for (n, q) the product is computed through the
// negacyclic NTT in O(n log n). Rings without a table (small test rings) fall
// back to schoolbook convolution with the x^n = -1 reduction; both paths
// return identical coefficients.
func (p *Polynomial) Mul(other *Polynomial) (*Polynomial, error) {
	if err := p.sameRing(other); err != nil {
		return nil, err
	}
	t, err := ntt.New(p.n, p.q)
	if err != nil {
		return p.mulSchoolbook(other), nil
	}

	av := p.Coeffs()
	bv := other.Coeffs()
	if err := t.Forward(av); err != nil {
		return nil, err
	}
	if err := t.Forward(bv); err != nil {
		return nil, err
	}
	for i := range av {
		av[i] = modarith.Mul(av[i], bv[i], p.q)
	}
	if err := t.Inverse(av); err != nil {
		return nil, err
	}
	return &Polynomial{coeffs: av, n: p.n, q: p.q}, nil
}

// mulSchoolbook computes the 2n-1 term convolution and folds it back with
// x^n = -1.
func (p *Polynomial) mulSchoolbook(other *Polynomial) *Polynomial {
	tmp := make([]uint64, 2*p.n)
	for i := 0; i < p.n; i++ {
		if p.coeffs[i] == 0 {
			continue
		}
		for j := 0; j < p.n; j++ {
			prod := modarith.Mul(p.coeffs[i], other.coeffs[j], p.q)
			tmp[i+j] = modarith.Add(tmp[i+j], prod, p.q)
		}
	}
	out := NewZero(p.n, p.q)
	for i := 0; i < p.n; i++ {
		out.coeffs[i] = modarith.Sub(tmp[i], tmp[i+p.n], p.q)
	}
	return out
}

// Equal reports whether p and other have the same dimension, modulus and
// coefficients.
func (p *Polynomial) Equal(other *Polynomial) bool {
	if p.n != other.n || p.q != other.q {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i] != other.coeffs[i] {
			return false
		}
	}
	return true
}

// Bytes serializes the polynomial as n, q and the coefficient vector, each
// value a little-endian uint64. The encoding is the pre-image fed to SHA-256
// and is not a persistence format.
func (p *Polynomial) Bytes() []byte {
	buf := make([]byte, 8*(2+p.n))
	binary.LittleEndian.PutUint64(buf[0:], uint64(p.n))
	binary.LittleEndian.PutUint64(buf[8:], p.q)
	for i, c := range p.coeffs {
		binary.LittleEndian.PutUint64(buf[16+8*i:], c)
	}
	return buf
}

// Signal maps every coefficient to the nearer of {0, floor(q/2)} in the
// cyclic metric on Z_q, ties going to 0. Verification compares polynomials
// through this coarse representation so that small noise cannot flip the
// outcome.
func (p *Polynomial) Signal() *Polynomial {
	half := p.q / 2
	out := NewZero(p.n, p.q)
	for i, c := range p.coeffs {
		distZero := c
		if p.q-c < distZero {
			distZero = p.q - c
		}
		var d uint64
		if c >= half {
			d = c - half
		} else {
			d = half - c
		}
		distHalf := d
		if p.q-d < distHalf {
			distHalf = p.q - d
		}
		if distZero <= distHalf {
			out.coeffs[i] = 0
		} else {
			out.coeffs[i] = half
		}
	}
	return out
}

// Centered returns the coefficients lifted to signed representatives in
// (-q/2, q/2].
func (p *Polynomial) Centered() []int64 {
	out := make([]int64, p.n)
	half := p.q >> 1
	for i, c := range p.coeffs {
		if c > half {
			out[i] = int64(c) - int64(p.q)
		} else {
			out[i] = int64(c)
		}
	}
	return out
}

// InfNorm returns the infinity norm of p over the centered representatives.
func (p *Polynomial) InfNorm() uint64 {
	var max uint64
	for _, c := range p.coeffs {
		abs := c
		if c > p.q/2 {
			abs = p.q - c
		}
		if abs > max {
			max = abs
		}
	}
	return max
}

// Norm2 returns the Euclidean norm of p over the centered representatives.
func (p *Polynomial) Norm2() float64 {
	var sum float64
	for _, c := range p.Centered() {
		sum += float64(c) * float64(c)
	}
	return math.Sqrt(sum)
}
