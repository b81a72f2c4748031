// Package NTT implements the negacyclic Number-Theoretic Transform over
// Z_q[x]/(x^n + 1) for the supported (n, q) pairs.
//
// For q ≡ 1 (mod 2n) there is a primitive 2n-th root of unity psi with
// psi^n = -1 (mod q). The length-n transform twists the input by psi^i,
// runs a standard Cooley-Tukey radix-2 NTT over omega = psi^2, and the
// inverse undoes the twist with psi^{-i} after scaling by n^{-1}. Pointwise
// products in the transform domain then correspond to negacyclic
// convolution, with no padding to length 2n.
package NTT

import (
	"errors"
	"fmt"

	modarith "RLWE-Blind-Signature/Mod_Arith"
)

// ErrInvalidParameters is returned when (n, q) cannot support a negacyclic
// NTT: n not a power of two, q too small, q not congruent to 1 mod 2n, or no
// precomputed psi table for the pair.
var ErrInvalidParameters = errors.New("NTT: invalid parameters")

// NTT holds the immutable transform context for one (n, q) pair. It is safe
// to share across goroutines.
type NTT struct {
	n        int
	q        uint64
	omega    uint64
	omegaInv uint64
	nInv     uint64
	twist    []uint64
	twistInv []uint64
}

// New constructs the transform context for (n, q), consulting the psi table
// catalog.
func New(n int, q uint64) (*NTT, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: n=%d must be a power of two", ErrInvalidParameters, n)
	}
	if q < 2 {
		return nil, fmt.Errorf("%w: q=%d must be >= 2", ErrInvalidParameters, q)
	}
	if (q-1)%uint64(2*n) != 0 {
		return nil, fmt.Errorf("%w: need q ≡ 1 (mod 2n), got n=%d q=%d", ErrInvalidParameters, n, q)
	}
	tbl, ok := LookupPsiTable(n, q)
	if !ok {
		return nil, fmt.Errorf("%w: no precomputed psi table for n=%d q=%d", ErrInvalidParameters, n, q)
	}

	omega := modarith.Mul(tbl.Psi, tbl.Psi, q)
	omegaInv, err := modarith.Inverse(omega, q)
	if err != nil {
		return nil, fmt.Errorf("%w: omega not invertible", ErrInvalidParameters)
	}
	nInv, err := modarith.Inverse(uint64(n), q)
	if err != nil {
		return nil, fmt.Errorf("%w: n not invertible mod q", ErrInvalidParameters)
	}

	return &NTT{
		n:        n,
		q:        q,
		omega:    omega,
		omegaInv: omegaInv,
		nInv:     nInv,
		twist:    tbl.Twist,
		twistInv: tbl.TwistInv,
	}, nil
}

// N returns the transform size.
func (t *NTT) N() int { return t.n }

// Modulus returns q.
func (t *NTT) Modulus() uint64 { return t.q }

// Forward applies the in-place negacyclic forward transform to a, which must
// have length n with entries in [0, q).
func (t *NTT) Forward(a []uint64) error {
	if len(a) != t.n {
		return fmt.Errorf("%w: input length %d, transform size %d", ErrInvalidParameters, len(a), t.n)
	}
	for i := range a {
		a[i] = modarith.Mul(a[i], t.twist[i], t.q)
	}
	t.transform(a, false)
	return nil
}

// Inverse applies the in-place inverse transform, returning a to the
// coefficient domain.
func (t *NTT) Inverse(a []uint64) error {
	if len(a) != t.n {
		return fmt.Errorf("%w: input length %d, transform size %d", ErrInvalidParameters, len(a), t.n)
	}
	t.transform(a, true)
	for i := range a {
		a[i] = modarith.Mul(a[i], t.twistInv[i], t.q)
	}
	return nil
}

// transform runs the radix-2 Cooley-Tukey butterflies over omega (or
// omega^{-1} for the inverse), scaling by n^{-1} on the way back.
func (t *NTT) transform(a []uint64, inverse bool) {
	bitReverse(a)

	for length := 2; length <= t.n; length <<= 1 {
		wlen := t.omega
		if inverse {
			wlen = t.omegaInv
		}
		for i := length; i < t.n; i <<= 1 {
			wlen = modarith.Mul(wlen, wlen, t.q)
		}

		half := length >> 1
		for start := 0; start < t.n; start += length {
			w := uint64(1)
			for j := 0; j < half; j++ {
				u := a[start+j]
				v := modarith.Mul(a[start+j+half], w, t.q)
				a[start+j] = modarith.Add(u, v, t.q)
				a[start+j+half] = modarith.Sub(u, v, t.q)
				w = modarith.Mul(w, wlen, t.q)
			}
		}
	}

	if inverse {
		for i := range a {
			a[i] = modarith.Mul(a[i], t.nInv, t.q)
		}
	}
}

// bitReverse permutes a into bit-reversed index order.
func bitReverse(a []uint64) {
	n := len(a)
	j := 0
	for i := 1; i < n-1; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
}
