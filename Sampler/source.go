// Package Sampler provides the cryptographic random source and the uniform
// and discrete-Gaussian polynomial samplers feeding the signature scheme.
package Sampler

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// ErrRandomSourceUnavailable is returned when the entropy source cannot be
// opened or a read comes back short. The signer treats this as fatal.
var ErrRandomSourceUnavailable = errors.New("Sampler: random source unavailable")

// Source wraps a stream of uniform random bytes. The default source is the
// operating system CSPRNG; a keyed source expands a fixed seed and is meant
// for reproducible test and analysis runs only.
type Source struct {
	r io.Reader
}

// NewSource opens the OS-backed source. A probe read is performed up front so
// that an unusable environment surfaces at construction rather than in the
// middle of a protocol run.
func NewSource() (*Source, error) {
	var probe [8]byte
	if _, err := io.ReadFull(cryptorand.Reader, probe[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}
	return &Source{r: cryptorand.Reader}, nil
}

// NewSeededSource builds a deterministic source from seed, backed by the
// lattigo keyed PRNG. Two sources with the same seed produce the same
// stream.
func NewSeededSource(seed []byte) (*Source, error) {
	prng, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}
	return &Source{r: prng}, nil
}

// Bytes fills out with random bytes.
func (s *Source) Bytes(out []byte) error {
	if _, err := io.ReadFull(s.r, out); err != nil {
		return fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}
	return nil
}

// Uint64 draws a uniform 64-bit value.
func (s *Source) Uint64() (uint64, error) {
	var buf [8]byte
	if err := s.Bytes(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// Float64 draws a uniform value in [0, 1) with 53 bits of precision.
func (s *Source) Float64() (float64, error) {
	u, err := s.Uint64()
	if err != nil {
		return 0, err
	}
	return float64(u>>11) / (1 << 53), nil
}

// Bit draws a single uniform bit.
func (s *Source) Bit() (bool, error) {
	var buf [1]byte
	if err := s.Bytes(buf[:]); err != nil {
		return false, err
	}
	return buf[0]&1 == 1, nil
}

// Int63n draws a uniform value in [0, n).
func (s *Source) Int63n(n int64) (int64, error) {
	u, err := s.Uint64()
	if err != nil {
		return 0, err
	}
	return int64(u % uint64(n)), nil
}
