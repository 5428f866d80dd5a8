package randrange

import (
	"fmt"
	"math"
)

// Float is the set of types the range functions operate on.
type Float interface {
	float32 | float64
}

// Interval tells which ends of a Range belong to it.
type Interval uint8

const (
	// ClosedOpen is [low, high). It is the zero value.
	ClosedOpen Interval = iota
	// OpenOpen is (low, high).
	OpenOpen
	// OpenClosed is (low, high].
	OpenClosed
	// ClosedClosed is [low, high].
	ClosedClosed
)

func (i Interval) String() string {
	switch i {
	case ClosedOpen:
		return "[)"
	case OpenOpen:
		return "()"
	case OpenClosed:
		return "(]"
	case ClosedClosed:
		return "[]"
	default:
		return fmt.Sprintf("Interval(%d)", uint8(i))
	}
}

func (i Interval) lowIncluded() bool {
	return i == ClosedOpen || i == ClosedClosed
}

func (i Interval) highIncluded() bool {
	return i == OpenClosed || i == ClosedClosed
}

// Range is an interval of floats. The zero Interval makes it half-open.
type Range[F Float] struct {
	Low, High F
	Interval  Interval
}

// HalfOpen returns [low, high).
func HalfOpen[F Float](low, high F) Range[F] {
	return Range[F]{Low: low, High: high, Interval: ClosedOpen}
}

// Open returns (low, high).
func Open[F Float](low, high F) Range[F] {
	return Range[F]{Low: low, High: high, Interval: OpenOpen}
}

// LeftOpen returns (low, high].
func LeftOpen[F Float](low, high F) Range[F] {
	return Range[F]{Low: low, High: high, Interval: OpenClosed}
}

// Closed returns [low, high].
func Closed[F Float](low, high F) Range[F] {
	return Range[F]{Low: low, High: high, Interval: ClosedClosed}
}

// An unbounded side stands for the most extreme finite value of F and
// includes it.

// AtLeast returns [low, max].
func AtLeast[F Float](low F) Range[F] {
	return Closed(low, maxFloat[F]())
}

// Above returns (low, max].
func Above[F Float](low F) Range[F] {
	return LeftOpen(low, maxFloat[F]())
}

// AtMost returns [-max, high].
func AtMost[F Float](high F) Range[F] {
	return Closed(-maxFloat[F](), high)
}

// Below returns [-max, high).
func Below[F Float](high F) Range[F] {
	return HalfOpen(-maxFloat[F](), high)
}

// Full returns every finite value of F.
func Full[F Float]() Range[F] {
	return Closed(-maxFloat[F](), maxFloat[F]())
}

func (r Range[F]) String() string {
	l, h := "[", ")"
	if !r.Interval.lowIncluded() {
		l = "("
	}
	if r.Interval.highIncluded() {
		h = "]"
	}
	return fmt.Sprintf("%s%v, %v%s", l, r.Low, r.High, h)
}

// Contains reports whether v lies in r.
func (r Range[F]) Contains(v F) bool {
	if !(v >= r.Low && v <= r.High) {
		return false
	}
	if v == r.Low && !r.Interval.lowIncluded() {
		return false
	}
	if v == r.High && !r.Interval.highIncluded() {
		return false
	}
	return true
}

// Validate returns an error wrapping ErrInvalidRange unless r has finite
// bounds and holds at least one value.
func (r Range[F]) Validate() error {
	if !isFinite(r.Low) || !isFinite(r.High) {
		return fmt.Errorf("%w %v: bounds must be finite", ErrInvalidRange, r)
	}

	switch r.Interval {
	case ClosedClosed:
		if r.Low > r.High {
			return fmt.Errorf("%w %v: low is greater than high", ErrInvalidRange, r)
		}
	case ClosedOpen, OpenClosed:
		if r.Low >= r.High {
			return fmt.Errorf("%w %v: low must be less than high", ErrInvalidRange, r)
		}
	case OpenOpen:
		if r.Low >= r.High || nextUp(r.Low) >= r.High {
			return fmt.Errorf("%w %v: no value between the bounds", ErrInvalidRange, r)
		}
	default:
		return fmt.Errorf("%w: unknown interval %v", ErrInvalidRange, r.Interval)
	}

	return nil
}

var (
	maxFloat32 float32 = math.MaxFloat32
	maxFloat64 float64 = math.MaxFloat64
)

func maxFloat[F Float]() F {
	var zero F
	switch any(zero).(type) {
	case float32:
		return F(maxFloat32)
	default:
		return F(maxFloat64)
	}
}

func nextUp[F Float](x F) F {
	switch v := any(x).(type) {
	case float32:
		return F(math.Nextafter32(v, float32(math.Inf(1))))
	case float64:
		return F(math.Nextafter(v, math.Inf(1)))
	}
	panic("unreachable")
}

func isFinite[F Float](x F) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
