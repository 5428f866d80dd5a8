package randrange

import (
	"fmt"
	"math"
	"math/bits"
)

// Float32Normal returns a normally distributed float32 with mean mu and
// standard deviation sigma, using the Box-Muller transform.
func (r *Rand) Float32Normal(mu, sigma float32) float32 {
	checkNormal(mu, sigma)
	return boxMuller(r, mu, sigma)
}

// Float64Normal returns a normally distributed float64 with mean mu and
// standard deviation sigma, using the Box-Muller transform.
func (r *Rand) Float64Normal(mu, sigma float64) float64 {
	checkNormal(mu, sigma)
	return boxMuller(r, mu, sigma)
}

// Float32NormalApprox is a faster, slightly less accurate Float32Normal.
// It needs two raw draws and no transcendental functions.
func (r *Rand) Float32NormalApprox(mu, sigma float32) float32 {
	checkNormal(mu, sigma)
	return normalApprox(r, mu, sigma)
}

// Float64NormalApprox is a faster, slightly less accurate Float64Normal.
// It needs two raw draws and no transcendental functions.
func (r *Rand) Float64NormalApprox(mu, sigma float64) float64 {
	checkNormal(mu, sigma)
	return normalApprox(r, mu, sigma)
}

func checkNormal[F Float](mu, sigma F) {
	if !isFinite(mu) || !isFinite(sigma) || sigma < 0 {
		panic(fmt.Errorf("%w: mu=%v, sigma=%v", ErrInvalidNormal, mu, sigma))
	}
}

func epsilon[F Float]() F {
	var zero F
	switch any(zero).(type) {
	case float32:
		return F(math.Nextafter32(1, 2) - 1)
	default:
		return F(math.Nextafter(1, 2) - 1)
	}
}

func boxMuller[F Float](r *Rand, mu, sigma F) F {
	// u1 feeds a logarithm
	var u1 F
	for {
		if u1 = unit[F](r); u1 > epsilon[F]() {
			break
		}
	}
	u2 := unit[F](r)

	mag := float64(sigma) * math.Sqrt(-2*math.Log(float64(u1)))
	return F(mag*math.Cos(2*math.Pi*float64(u2))) + mu
}

// approxScale minimizes the maximum error of normalApprox against the
// standard normal distribution.
const approxScale = 5.76917e-11

// normalApprox sums a binomial and a triangular distribution, see
// http://marc-b-reynolds.github.io/distribution/2021/03/18/CheapGaussianApprox.html
func normalApprox[F Float](r *Rand, mu, sigma F) F {
	// Binomial(64, 1/2) centred on zero.
	bd := int64(bits.OnesCount64(r.Uint64())) - 32

	// The difference of two uniform 32-bit integers is triangular around
	// zero.
	u := r.Uint64()
	td := int64(u&0xffffffff) - int64(u>>32)

	return F(approxScale*float64(bd<<32+td))*sigma + mu
}
