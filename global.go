package randrange

import (
	"sync"
	"time"

	"gonum.org/v1/gonum/mathext/prng"
)

// lockedSource serializes access to a source shared by goroutines.
type lockedSource struct {
	mu  sync.Mutex
	src Source
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	n := s.src.Uint64()
	s.mu.Unlock()
	return n
}

var (
	globalOnce sync.Once
	globalRand *Rand
)

func global() *Rand {
	globalOnce.Do(func() {
		src := prng.NewXoshiro256plusplus(uint64(time.Now().UnixNano()))
		globalRand = &Rand{src: &lockedSource{src: src}}
	})
	return globalRand
}

// Float32Range returns a uniform float32 in [low, high) from the default
// generator. See (*Rand).Float32Range.
func Float32Range(low, high float32) float32 { return global().Float32Range(low, high) }

// Float64Range returns a uniform float64 in [low, high) from the default
// generator. See (*Rand).Float64Range.
func Float64Range(low, high float64) float64 { return global().Float64Range(low, high) }

// Float32In returns a uniform float32 in rg from the default generator.
func Float32In(rg Range[float32]) float32 { return global().Float32In(rg) }

// Float64In returns a uniform float64 in rg from the default generator.
func Float64In(rg Range[float64]) float64 { return global().Float64In(rg) }

func Float32Normal(mu, sigma float32) float32 { return global().Float32Normal(mu, sigma) }

func Float64Normal(mu, sigma float64) float64 { return global().Float64Normal(mu, sigma) }

func Float32NormalApprox(mu, sigma float32) float32 { return global().Float32NormalApprox(mu, sigma) }

func Float64NormalApprox(mu, sigma float64) float64 { return global().Float64NormalApprox(mu, sigma) }

// Float32 returns a uniform float32 in [0, 1) from the default generator.
func Float32() float32 { return global().Float32() }

// Float64 returns a uniform float64 in [0, 1) from the default generator.
func Float64() float64 { return global().Float64() }

func Bool() bool { return global().Bool() }

func Uint32() uint32 { return global().Uint32() }

func Uint64() uint64 { return global().Uint64() }
