package randrange

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mathext/prng"
)

type randOption func(*Rand) error

// New creates a Rand. Without options it draws from a Xoshiro256++
// generator seeded from the wall clock.
//
// Options are applied in order, so when more than one of them sets the
// source the last one wins.
func New(options ...randOption) (*Rand, error) {
	r := &Rand{src: prng.NewXoshiro256plusplus(uint64(time.Now().UnixNano()))}

	for _, option := range options {
		if err := option(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Seed makes the Rand deterministic: two instances built with the same
// seed yield the same sequence.
func Seed(seed uint64) randOption {
	return func(r *Rand) error {
		r.src = prng.NewXoshiro256plusplus(seed)
		return nil
	}
}

// MersenneTwister draws from the 64-bit Mersenne Twister instead of
// Xoshiro256++. Slower, with a much longer period.
func MersenneTwister(seed uint64) randOption {
	return func(r *Rand) error {
		mt := prng.NewMT19937_64()
		mt.Seed(seed)
		r.src = mt
		return nil
	}
}

// WithSource uses src as the bit source. Any uniform 64-bit generator
// works, e.g. a math/rand/v2 PCG or ChaCha8.
func WithSource(src Source) randOption {
	return func(r *Rand) error {
		if src == nil {
			return fmt.Errorf("randrange: %w", ErrNilSource)
		}
		r.src = src
		return nil
	}
}
