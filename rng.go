package randrange

// Source is a uniform bit generator. Every call must return 64
// independent, uniformly distributed bits.
//
// The sources in math/rand/v2, golang.org/x/exp/rand and
// gonum.org/v1/gonum/mathext/prng all satisfy it, as does *math/rand.Rand.
type Source interface {
	Uint64() uint64
}

// Rand derives bounded floats from a Source. A Rand is not safe for
// concurrent use by multiple goroutines; the package level functions are.
// The zero Rand has no source, create one with New.
type Rand struct {
	src Source
}

// Uint64 returns the next raw 64 bits of the underlying source.
func (r *Rand) Uint64() uint64 {
	return r.src.Uint64()
}

// Uint32 returns the high 32 bits of one draw.
func (r *Rand) Uint32() uint32 {
	return uint32(r.src.Uint64() >> 32)
}

// Bool returns the top bit of one draw.
func (r *Rand) Bool() bool {
	return r.src.Uint64()>>63 == 1
}

// Float32 returns a uniform float32 in [0, 1).
func (r *Rand) Float32() float32 {
	return float32(r.src.Uint64()>>40) / (1 << 24)
}

// Float64 returns a uniform float64 in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.src.Uint64()>>11) / (1 << 53)
}
