package reedsolomon

import (
	"fmt"
	"sync"

	qrecc "github.com/ecclab/qrecc"
)

// ComputeDivisor returns the Reed-Solomon generator polynomial of the
// given degree, as its degree coefficients from highest to lowest order.
// The leading coefficient is always 1 and is not stored. Degrees outside
// [1, 255] are rejected with qrecc.ErrRange.
func ComputeDivisor(degree int) ([]byte, error) {
	if degree < 1 || degree > 255 {
		return nil, fmt.Errorf("%w: divisor degree %d", qrecc.ErrRange, degree)
	}

	// Start with the monomial x^0 and multiply by (x - 2^i) for
	// i = 0 .. degree-1. The product is formed in place, dropping the
	// always-1 term of degree `degree`.
	result := make([]byte, degree)
	result[degree-1] = 1

	root := byte(1)
	for i := 0; i < degree; i++ {
		for j := range result {
			result[j] = mul(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = mul(root, 2)
	}
	return result, nil
}

// Encoder computes ECC codewords, caching divisor polynomials by degree.
// The QR standard draws ECC-per-block values from a small finite set, so
// the cache stays tiny across arbitrarily many encodes. The zero value is
// not usable; call NewEncoder. Safe for concurrent use.
type Encoder struct {
	mu             sync.Mutex
	cachedDivisors map[int][]byte
}

// NewEncoder creates an Encoder with an empty divisor cache.
func NewEncoder() *Encoder {
	return &Encoder{cachedDivisors: make(map[int][]byte)}
}

// Divisor returns the generator polynomial of the given degree, computing
// and caching it on first use. The returned slice is shared; callers must
// not modify it.
func (e *Encoder) Divisor(degree int) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if d, ok := e.cachedDivisors[degree]; ok {
		return d, nil
	}
	d, err := ComputeDivisor(degree)
	if err != nil {
		return nil, err
	}
	e.cachedDivisors[degree] = d
	return d, nil
}

// Remainder computes the ECC codewords for data using a cached divisor of
// the given degree.
func (e *Encoder) Remainder(data []byte, degree int) ([]byte, error) {
	divisor, err := e.Divisor(degree)
	if err != nil {
		return nil, err
	}
	return ComputeRemainder(data, divisor), nil
}
