// Package Parameters holds the named RLWE parameter catalog and the
// validation and security-estimation logic that drives signer construction.
package Parameters

import (
	"fmt"
)

// SecurityLevel names a predefined parameter set.
type SecurityLevel int

const (
	// TestTiny is a tiny, insecure set for functional tests and examples.
	TestTiny SecurityLevel = iota
	// TestSmall is a small, insecure set, still far below security margins.
	TestSmall
	// Kyber512 targets roughly the Kyber-512 security category.
	Kyber512
	// Moderate targets ~192 bits of classical security.
	Moderate
	// High targets ~256 bits of classical security.
	High
)

func (l SecurityLevel) String() string {
	switch l {
	case TestTiny:
		return "TEST_TINY"
	case TestSmall:
		return "TEST_SMALL"
	case Kyber512:
		return "KYBER512"
	case Moderate:
		return "MODERATE"
	case High:
		return "HIGH"
	}
	return fmt.Sprintf("SecurityLevel(%d)", int(l))
}

// ParamSet describes one concrete RLWE parameter set.
type ParamSet struct {
	N             int     // ring dimension, a power of two
	Q             uint64  // coefficient modulus
	Sigma         float64 // Gaussian stddev for secret/error/blinding noise
	Name          string
	ClassicalBits int  // estimated classical security, advisory
	QuantumBits   int  // estimated quantum security, advisory
	Secure        bool // advisory only; false sets are for tests
}

// catalog lists the supported named sets. The (N, Q) pairs of every entry
// are aligned with the NTT psi-table catalog.
var catalog = map[SecurityLevel]ParamSet{
	TestTiny:  {N: 8, Q: 7681, Sigma: 3.0, Name: "TEST_TINY (INSECURE)", ClassicalBits: 4, QuantumBits: 2, Secure: false},
	TestSmall: {N: 32, Q: 7681, Sigma: 3.0, Name: "TEST_SMALL (INSECURE)", ClassicalBits: 16, QuantumBits: 8, Secure: false},
	Kyber512:  {N: 256, Q: 7681, Sigma: 3.0, Name: "KYBER512", ClassicalBits: 128, QuantumBits: 64, Secure: true},
	Moderate:  {N: 512, Q: 12289, Sigma: 3.2, Name: "MODERATE", ClassicalBits: 192, QuantumBits: 96, Secure: true},
	High:      {N: 1024, Q: 18433, Sigma: 3.2, Name: "HIGH", ClassicalBits: 256, QuantumBits: 128, Secure: true},
}

// GetParameterSet returns the catalog entry for level.
func GetParameterSet(level SecurityLevel) (ParamSet, error) {
	p, ok := catalog[level]
	if !ok {
		return ParamSet{}, fmt.Errorf("Parameters: unknown security level %d", int(level))
	}
	return p, nil
}

// Levels returns the catalog levels in ascending strength order.
func Levels() []SecurityLevel {
	return []SecurityLevel{TestTiny, TestSmall, Kyber512, Moderate, High}
}

// Estimate derives an advisory parameter record for a custom (n, q, sigma)
// triple from coarse heuristics on n alone. They match the catalog bit
// counts for n = 8 and n = 32; for n >= 256 they give higher estimates than
// the catalog entries of the same n (153 classical bits at n = 256).
func Estimate(n int, q uint64, sigma float64) ParamSet {
	p := ParamSet{N: n, Q: q, Sigma: sigma, Name: "Custom"}
	switch {
	case n < 128:
		p.ClassicalBits = n / 2
		p.QuantumBits = n / 4
		p.Secure = false
	case n < 256:
		p.ClassicalBits = 80
		p.QuantumBits = 40
		p.Secure = false
	default:
		p.ClassicalBits = int(float64(n) * 0.6)
		p.QuantumBits = int(float64(n) * 0.3)
		p.Secure = true
	}
	return p
}

// Validate checks the structural requirements of the set and collects
// advisory diagnostics.
//
// A non-power-of-two n or q not congruent to 1 mod 2n is a hard error.
// Insecure sets and large noise ratios produce diagnostics, not errors;
// callers decide whether to surface them.
func (p ParamSet) Validate() ([]string, error) {
	if p.N <= 0 || p.N&(p.N-1) != 0 {
		return nil, fmt.Errorf("Parameters: n=%d must be a power of two", p.N)
	}
	if p.Q < 2 {
		return nil, fmt.Errorf("Parameters: q=%d must be >= 2", p.Q)
	}
	if (p.Q-1)%uint64(2*p.N) != 0 {
		return nil, fmt.Errorf("Parameters: need q ≡ 1 (mod 2n), got n=%d q=%d", p.N, p.Q)
	}
	if p.Sigma <= 0 {
		return nil, fmt.Errorf("Parameters: sigma=%g must be positive", p.Sigma)
	}

	var diags []string
	if !p.Secure {
		diags = append(diags, fmt.Sprintf("parameter set %q is not considered secure; use it for tests only", p.Name))
	}
	if alpha := p.Sigma / float64(p.Q); alpha > 0.01 {
		diags = append(diags, fmt.Sprintf("noise ratio sigma/q=%.4f exceeds 0.01 and may affect correctness", alpha))
	}
	return diags, nil
}
