// Package signer implements the RLWE blind-signature protocol over
// R_q = Z_q[x]/(x^n + 1).
//
// One BlindSigner value plays both roles of the three-step exchange: the
// client blinds a hashed message with
// Y + a*r, the server signs the blinded value with s*(Y + a*r) + e1, and the
// client unblinds by subtracting r*b. Verification recomputes s*H(m) and
// compares binary signal representations, so it requires the secret key;
// the secret never leaves the signer.
package signer

import (
	"errors"
	"fmt"

	msghash "RLWE-Blind-Signature/Message_Hash"
	poly "RLWE-Blind-Signature/Polynomial"
	"RLWE-Blind-Signature/Sampler"
	Parameters "RLWE-Blind-Signature/System"
)

// ErrNoKey is returned by operations that need a key pair before
// GenerateKeys has been called.
var ErrNoKey = errors.New("signer: no key pair, call GenerateKeys first")

// BlindSigner holds the scheme parameters, the random source and the
// current key pair. A signer is single-threaded; independent signers share
// no mutable state and may run concurrently.
type BlindSigner struct {
	params Parameters.ParamSet
	diags  []string
	src    *Sampler.Source

	a *poly.Polynomial // public, uniform
	b *poly.Polynomial // public, a*s + e
	s *poly.Polynomial // secret
}

// New constructs a signer for a named security level, using the OS random
// source.
func New(level Parameters.SecurityLevel) (*BlindSigner, error) {
	params, err := Parameters.GetParameterSet(level)
	if err != nil {
		return nil, err
	}
	return NewWithSource(params, nil)
}

// NewWithParams constructs a signer for an explicit (n, q, sigma) triple.
// The advisory security estimate is derived from the ring dimension.
func NewWithParams(n int, q uint64, sigma float64) (*BlindSigner, error) {
	return NewWithSource(Parameters.Estimate(n, q, sigma), nil)
}

// NewWithSource constructs a signer from a parameter set and an explicit
// random source. A nil src selects the OS source. Seeded sources are meant
// for reproducible tests and analysis runs.
func NewWithSource(params Parameters.ParamSet, src *Sampler.Source) (*BlindSigner, error) {
	diags, err := params.Validate()
	if err != nil {
		return nil, err
	}
	if src == nil {
		src, err = Sampler.NewSource()
		if err != nil {
			return nil, err
		}
	}
	return &BlindSigner{params: params, diags: diags, src: src}, nil
}

// Parameters returns the active parameter record.
func (bs *BlindSigner) Parameters() Parameters.ParamSet { return bs.params }

// Diagnostics returns the advisory findings collected when the parameter
// set was validated (insecure catalog entry, large noise ratio). Empty for
// production-grade sets.
func (bs *BlindSigner) Diagnostics() []string {
	return append([]string(nil), bs.diags...)
}

// GenerateKeys samples a fresh key pair: a uniform, s and e Gaussian, and
// b = a*s + e. Any previous key is replaced.
func (bs *BlindSigner) GenerateKeys() error {
	n, q, sigma := bs.params.N, bs.params.Q, bs.params.Sigma

	a, err := bs.src.Uniform(n, q)
	if err != nil {
		return err
	}
	s, err := bs.src.Gaussian(n, q, sigma)
	if err != nil {
		return err
	}
	e, err := bs.src.Gaussian(n, q, sigma)
	if err != nil {
		return err
	}

	as, err := a.Mul(s)
	if err != nil {
		return fmt.Errorf("signer: computing a*s: %w", err)
	}
	b, err := as.Add(e)
	if err != nil {
		return fmt.Errorf("signer: computing a*s + e: %w", err)
	}

	bs.a, bs.b, bs.s = a, b, s
	return nil
}

// PublicKey returns copies of the public pair (a, b). The secret s is never
// exposed.
func (bs *BlindSigner) PublicKey() (a, b *poly.Polynomial, err error) {
	if bs.a == nil {
		return nil, nil, ErrNoKey
	}
	return bs.a.Copy(), bs.b.Copy(), nil
}

// HashToPolynomial maps a message to its target polynomial Y = H(m) with
// coefficients in {0, floor(q/2)}.
func (bs *BlindSigner) HashToPolynomial(message []byte) *poly.Polynomial {
	return msghash.HashToPolynomial(message, bs.params.N, bs.params.Q)
}

// ComputeBlindedMessage hashes the message and hides it under a fresh
// Gaussian blinding factor: the returned pair is (Y + a*r, r). The blinding
// factor must be kept by the client for unblinding and never transmitted.
func (bs *BlindSigner) ComputeBlindedMessage(message []byte) (blinded, r *poly.Polynomial, err error) {
	if bs.a == nil {
		return nil, nil, ErrNoKey
	}
	r, err = bs.src.Gaussian(bs.params.N, bs.params.Q, bs.params.Sigma)
	if err != nil {
		return nil, nil, err
	}
	y := bs.HashToPolynomial(message)
	ar, err := bs.a.Mul(r)
	if err != nil {
		return nil, nil, fmt.Errorf("signer: computing a*r: %w", err)
	}
	blinded, err = y.Add(ar)
	if err != nil {
		return nil, nil, fmt.Errorf("signer: computing Y + a*r: %w", err)
	}
	return blinded, r, nil
}

// BlindSign signs a blinded message: s*blinded + e1 with fresh Gaussian
// noise e1. The server learns neither Y nor r.
func (bs *BlindSigner) BlindSign(blinded *poly.Polynomial) (*poly.Polynomial, error) {
	if bs.s == nil {
		return nil, ErrNoKey
	}
	e1, err := bs.src.Gaussian(bs.params.N, bs.params.Q, bs.params.Sigma)
	if err != nil {
		return nil, err
	}
	sb, err := bs.s.Mul(blinded)
	if err != nil {
		return nil, fmt.Errorf("signer: computing s*blinded: %w", err)
	}
	sig, err := sb.Add(e1)
	if err != nil {
		return nil, fmt.Errorf("signer: adding e1: %w", err)
	}
	return sig, nil
}

// ComputeSignature unblinds a blind signature: C - r*b. By construction
// s*(Y + a*r) + e1 - r*(a*s + e) = s*Y + e1 - r*e, so the result is s*Y
// plus noise small enough for signal rounding to absorb.
func (bs *BlindSigner) ComputeSignature(blindSignature, blindingFactor, publicKeyB *poly.Polynomial) (*poly.Polynomial, error) {
	rb, err := blindingFactor.Mul(publicKeyB)
	if err != nil {
		return nil, fmt.Errorf("signer: computing r*b: %w", err)
	}
	sig, err := blindSignature.Sub(rb)
	if err != nil {
		return nil, fmt.Errorf("signer: computing C - r*b: %w", err)
	}
	return sig, nil
}

// Verify checks a signature on a message by recomputing s*H(m) and
// comparing signal representations coefficient-wise. A cryptographic
// mismatch is reported as false, never as an error; which coefficients
// differ is not disclosed.
func (bs *BlindSigner) Verify(message []byte, signature *poly.Polynomial) (bool, error) {
	if bs.s == nil {
		return false, ErrNoKey
	}
	y := bs.HashToPolynomial(message)
	expected, err := bs.s.Mul(y)
	if err != nil {
		return false, fmt.Errorf("signer: computing s*H(m): %w", err)
	}
	return expected.Signal().Equal(signature.Signal()), nil
}
