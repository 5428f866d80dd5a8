// Package randrange generates floats inside caller-chosen ranges on top of
// any uniform 64-bit generator.
//
// The package level functions use a default generator that is created on
// first use and is safe for concurrent use:
//
//	x := randrange.Float64Range(1.5, 3.0) // 1.5 <= x < 3.0
//
// A Rand wraps a Source of raw bits. Build one with New to get a
// deterministic, goroutine-local generator:
//
//	r, _ := randrange.New(randrange.Seed(0x1234))
//	y := r.Float32In(randrange.Closed[float32](-1, 1)) // -1 <= y <= 1
//
// Ranges whose bounds are NaN or infinite, or that hold no value, are
// programming errors: the functions panic with an error wrapping
// ErrInvalidRange.
package randrange
