package Sampler

import (
	modarith "RLWE-Blind-Signature/Mod_Arith"
	poly "RLWE-Blind-Signature/Polynomial"
)

// Uniform samples a polynomial with n coefficients uniform over Z_q.
//
// Reduction is 64-bit modulo q, so each coefficient carries a bias of at
// most q/2^64, negligible at the catalog moduli.
func (s *Source) Uniform(n int, q uint64) (*poly.Polynomial, error) {
	coeffs := make([]uint64, n)
	for i := range coeffs {
		u, err := s.Uint64()
		if err != nil {
			return nil, err
		}
		coeffs[i] = u % q
	}
	return poly.New(coeffs, q), nil
}

// Gaussian samples a polynomial whose coefficients follow the discrete
// Gaussian D_Z(0, sigma), canonicalized into [0, q).
func (s *Source) Gaussian(n int, q uint64, sigma float64) (*poly.Polynomial, error) {
	dg := NewDiscreteGaussian(s, sigma)
	coeffs := make([]uint64, n)
	for i := range coeffs {
		v, err := dg.Draw(0)
		if err != nil {
			return nil, err
		}
		coeffs[i] = modarith.Reduce(v, q)
	}
	return poly.New(coeffs, q), nil
}
