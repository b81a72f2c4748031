// Discrete Gaussian sampling over the integers, after Palisade's
// DiscreteGaussianGenerator: Peikert inversion sampling for moderate sigma
// and Karney's exact rejection sampler above it.
// See "Sampling exactly from the discrete Gaussian" (Karney '13) and the
// Peikert '14 inversion method. All randomness flows through the
// cryptographic Source.

package Sampler

import (
	"math"
	"sort"
)

const (
	karneyThreshold = 300.0 // sigma at or above which we use Karney's sampler
	acc             = 5e-32 // tail-mass accuracy for the inversion CDF
)

// DiscreteGaussian samples from D_Z(mean, sigma).
type DiscreteGaussian struct {
	src     *Source
	sigma   float64
	peikert bool      // true: inversion sampling
	a       float64   // mass at zero = 1/sum_{x=-M}^M e^{-x^2/(2 sigma^2)}
	cdf     []float64 // cumulative probabilities for x=1..M (peikert only)
}

// NewDiscreteGaussian constructs a sampler with stddev std drawing from src.
// Panics if std exceeds 59 bits, as in Palisade.
func NewDiscreteGaussian(src *Source, std float64) *DiscreteGaussian {
	if math.Log2(std) > 59 {
		panic("DiscreteGaussian: standard deviation cannot exceed 59 bits")
	}
	dg := &DiscreteGaussian{src: src, sigma: std}
	dg.peikert = std < karneyThreshold
	if dg.peikert {
		dg.initialize()
	}
	return dg
}

// initialize precomputes the CDF for inversion sampling.
func (dg *DiscreteGaussian) initialize() {
	variance := dg.sigma * dg.sigma
	// M ~ ceil(sigma * sqrt(-2 ln(acc)))
	M := int(math.Ceil(dg.sigma * math.Sqrt(-2*math.Log(acc))))
	sum := 1.0
	for x := 1; x <= M; x++ {
		sum += 2 * math.Exp(-float64(x*x)/(2*variance))
	}
	dg.a = 1 / sum
	dg.cdf = make([]float64, M)
	for x := 1; x <= M; x++ {
		p := dg.a * math.Exp(-float64(x*x)/(2*variance))
		if x == 1 {
			dg.cdf[x-1] = p
		} else {
			dg.cdf[x-1] = dg.cdf[x-2] + p
		}
	}
}

// Draw samples one integer from D_Z(mean, sigma).
func (dg *DiscreteGaussian) Draw(mean float64) (int64, error) {
	if dg.peikert {
		u, err := dg.src.Float64()
		if err != nil {
			return 0, err
		}
		u -= 0.5
		if math.Abs(u) <= dg.a/2 {
			return int64(math.Round(mean)), nil
		}
		target := math.Abs(u) - dg.a/2
		idx := sort.SearchFloat64s(dg.cdf, target)
		sample := int64(idx + 1)
		if u < 0 {
			sample = -sample
		}
		return sample + int64(math.Round(mean)), nil
	}
	return dg.karney(mean, dg.sigma)
}

// karney implements Algorithm 4 (steps D1-D8) from Karney '13.
func (dg *DiscreteGaussian) karney(mean, sigma float64) (int64, error) {
	for {
		k, err := dg.algoG()
		if err != nil {
			return 0, err
		}
		ok, err := dg.algoP(k * (k - 1))
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		neg, err := dg.src.Bit()
		if err != nil {
			return 0, err
		}
		s := 1
		if neg {
			s = -1
		}
		di0 := sigma*float64(k) + float64(s)*mean
		i0 := math.Ceil(di0)
		x0 := (i0 - di0) / sigma
		j, err := dg.src.Int63n(int64(math.Ceil(sigma)))
		if err != nil {
			return 0, err
		}
		x := x0 + float64(j)/sigma
		if !(x < 1) || (x == 0 && s < 0 && k == 0) {
			continue
		}
		// D7: k+1 true returns from algoB before accepting
		passed := true
		for i := 0; i < k+1; i++ {
			ok, err := dg.algoB(k, x)
			if err != nil {
				return 0, err
			}
			if !ok {
				passed = false
				break
			}
		}
		if !passed {
			continue
		}
		// D8: accept
		return int64(s) * (int64(i0) + j), nil
	}
}

// algoH: one Bernoulli trial with success probability 1/sqrt(e).
func (dg *DiscreteGaussian) algoH() (bool, error) {
	ha, err := dg.src.Float64()
	if err != nil {
		return false, err
	}
	if !(ha < 0.5) {
		return true, nil
	}
	for {
		hb, err := dg.src.Float64()
		if err != nil {
			return false, err
		}
		if !(hb < ha) {
			return false, nil
		}
		ha, err = dg.src.Float64()
		if err != nil {
			return false, err
		}
		if !(ha < hb) {
			return true, nil
		}
	}
}

// algoG: count consecutive successes of H.
func (dg *DiscreteGaussian) algoG() (int, error) {
	n := 0
	for {
		ok, err := dg.algoH()
		if err != nil {
			return 0, err
		}
		if !ok {
			return n, nil
		}
		n++
	}
}

// algoP: accept n trials of H.
func (dg *DiscreteGaussian) algoP(n int) (bool, error) {
	for i := 0; i < n; i++ {
		ok, err := dg.algoH()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// algoB: inner Bernoulli rejection of Karney.
func (dg *DiscreteGaussian) algoB(k int, x float64) (bool, error) {
	y := x
	m := 2*k + 2
	n := 0
	for {
		z, err := dg.src.Float64()
		if err != nil {
			return false, err
		}
		if !(z < y) {
			break
		}
		r, err := dg.src.Float64()
		if err != nil {
			return false, err
		}
		if !(r < (2*float64(k)+x)/float64(m)) {
			break
		}
		y = z
		n++
	}
	return n%2 == 0, nil
}
