package randrange

// Float32Range returns a uniform float32 in [low, high).
//
// It panics with an error wrapping ErrInvalidRange if low >= high or if
// either bound is NaN or infinite.
func (r *Rand) Float32Range(low, high float32) float32 {
	return floatIn(r, HalfOpen(low, high))
}

// Float64Range returns a uniform float64 in [low, high).
//
// It panics with an error wrapping ErrInvalidRange if low >= high or if
// either bound is NaN or infinite.
func (r *Rand) Float64Range(low, high float64) float64 {
	return floatIn(r, HalfOpen(low, high))
}

// Float32In returns a uniform float32 in rg, honouring which of its ends
// are included. It panics if rg.Validate fails.
func (r *Rand) Float32In(rg Range[float32]) float32 {
	return floatIn(r, rg)
}

// Float64In returns a uniform float64 in rg, honouring which of its ends
// are included. It panics if rg.Validate fails.
func (r *Rand) Float64In(rg Range[float64]) float64 {
	return floatIn(r, rg)
}

func floatIn[F Float](r *Rand, rg Range[F]) F {
	if err := rg.Validate(); err != nil {
		panic(err)
	}

	// Rounding in the scaling step can land exactly on an excluded end, or
	// one ulp past an included one; those draws are discarded.
	for {
		if v := sampleRange(r, rg); rg.Contains(v) {
			return v
		}
	}
}

func sampleRange[F Float](r *Rand, rg Range[F]) F {
	low, high := rg.Low, rg.High

	if scale := high - low; isFinite(scale) {
		var u F
		switch rg.Interval {
		case OpenOpen:
			u = unitOpenOpen[F](r)
		case OpenClosed:
			u = unitOpenClosed[F](r)
		case ClosedClosed:
			u = unitClosed[F](r)
		default:
			u = unit[F](r)
		}
		return u*scale + low
	}

	// The range is wider than F can represent. Work on the two halves
	// around the midpoint instead, choosing a side at random. Both sides
	// start at the midpoint so it stays reachable; a side reaches its outer
	// end only when that end is included.
	highHalf := high / 2
	lowHalf := low / 2
	mid := highHalf + lowHalf
	halfScale := highHalf - lowHalf

	if r.Bool() {
		if rg.Interval.highIncluded() {
			return unitClosed[F](r)*halfScale + mid
		}
		return unit[F](r)*halfScale + mid
	}
	if rg.Interval.lowIncluded() {
		return mid - unitClosed[F](r)*halfScale
	}
	return mid - unit[F](r)*halfScale
}

// unit returns a value in [0, 1).
func unit[F Float](r *Rand) F {
	var zero F
	switch any(zero).(type) {
	case float32:
		return F(r.Float32())
	default:
		return F(r.Float64())
	}
}

// unitClosed returns a value in [0, 1], both ends included.
func unitClosed[F Float](r *Rand) F {
	var zero F
	switch any(zero).(type) {
	case float32:
		return F(float32(r.Uint64()>>40) / (1<<24 - 1))
	default:
		return F(float64(r.Uint64()>>11) / (1<<53 - 1))
	}
}

// unitOpenClosed returns a value in (0, 1].
func unitOpenClosed[F Float](r *Rand) F {
	return 1 - unit[F](r)
}

// unitOpenOpen returns a value in (0, 1).
func unitOpenOpen[F Float](r *Rand) F {
	for {
		if u := unit[F](r); u != 0 {
			return u
		}
	}
}
