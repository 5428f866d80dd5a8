package randrange

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	t.Parallel()

	cases := []struct {
		rg        Range[float64]
		low, high bool
	}{
		{HalfOpen(0.0, 1.0), true, false},
		{Open(0.0, 1.0), false, false},
		{LeftOpen(0.0, 1.0), false, true},
		{Closed(0.0, 1.0), true, true},
	}

	for _, c := range cases {
		assert.Equal(t, c.low, c.rg.Contains(0), "%v low end", c.rg)
		assert.Equal(t, c.high, c.rg.Contains(1), "%v high end", c.rg)
		assert.True(t, c.rg.Contains(0.5), "%v midpoint", c.rg)
		assert.False(t, c.rg.Contains(-0.5), "%v below", c.rg)
		assert.False(t, c.rg.Contains(1.5), "%v above", c.rg)
		assert.False(t, c.rg.Contains(math.NaN()), "%v NaN", c.rg)
	}
}

func TestUnbounded(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Closed(2.0, math.MaxFloat64), AtLeast(2.0))
	assert.Equal(t, LeftOpen(2.0, math.MaxFloat64), Above(2.0))
	assert.Equal(t, Closed(-math.MaxFloat64, 2.0), AtMost(2.0))
	assert.Equal(t, HalfOpen(-math.MaxFloat64, 2.0), Below(2.0))
	assert.Equal(t, Closed[float32](-math.MaxFloat32, math.MaxFloat32), Full[float32]())

	assert.NoError(t, Full[float64]().Validate())
	assert.NoError(t, Full[float32]().Validate())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := []Range[float32]{
		HalfOpen[float32](1.5, 3.0),
		Closed[float32](1, 1),
		Open[float32](1, math.Nextafter32(math.Nextafter32(1, 2), 2)),
		LeftOpen[float32](-1, 0),
	}
	for _, rg := range valid {
		assert.NoError(t, rg.Validate(), "%v should be valid", rg)
	}

	invalid := []Range[float32]{
		HalfOpen[float32](3.0, 1.5),
		HalfOpen[float32](1, 1),
		Open[float32](1, math.Nextafter32(1, 2)),
		HalfOpen(float32(math.NaN()), 1),
		Closed(0, float32(math.Inf(1))),
		{Low: 0, High: 1, Interval: ClosedClosed + 1},
	}
	for _, rg := range invalid {
		err := rg.Validate()
		if !errors.Is(err, ErrInvalidRange) {
			t.Errorf("%v should be rejected with ErrInvalidRange, got %v", rg, err)
		}
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[1.5, 3)", HalfOpen(1.5, 3.0).String())
	assert.Equal(t, "(1.5, 3]", LeftOpen(1.5, 3.0).String())
	assert.Equal(t, "()", OpenOpen.String())
	assert.Equal(t, "Interval(9)", Interval(9).String())
}
