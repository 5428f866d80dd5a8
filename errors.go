package randrange

import "errors"

var (
	// ErrInvalidRange is wrapped by the panics of the range functions when
	// a bound is NaN or infinite, or when the range holds no value.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidNormal is wrapped by the panics of the normal distribution
	// functions when mu or sigma is not finite, or sigma is negative.
	ErrInvalidNormal = errors.New("invalid normal distribution parameters")

	ErrNilSource = errors.New("nil source")
)
