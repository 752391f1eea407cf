package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundaryCount(t *testing.T) {
	assert.Equal(t, 4, BoundaryCount(0.2, 0.2, 0.7))
	assert.Equal(t, 22, BoundaryCount(1, 0.2, 0.7))
}

func TestSeedAnnulus(t *testing.T) {
	points, err := SeedAnnulus(0.2, 1, 0.2, 0.7)
	require.NoError(t, err)
	require.Len(t, points, 26)

	// Inner ring first, each ring starting at angle 0
	assert.InDelta(t, 0.2, points[0].X, Tolerance)
	assert.InDelta(t, 0, points[0].Y, Tolerance)
	assert.InDelta(t, 0, points[1].X, Tolerance)
	assert.InDelta(t, 0.2, points[1].Y, Tolerance)
	assert.InDelta(t, 1, points[4].X, Tolerance)
	assert.InDelta(t, 0, points[4].Y, Tolerance)

	for i, p := range points {
		r := 1.0
		if i < 4 {
			r = 0.2
		}
		assert.InDelta(t, r, p.Norm(), Tolerance)
	}

	// Consecutive outer points are evenly spaced
	chord := 2 * math.Sin(math.Pi/22)
	for i := 4; i < 26; i++ {
		next := 4 + CircularIndex(i-4+1, 22)
		assert.InDelta(t, chord, points[i].Dist(points[next]), 1e-9)
	}
}

func TestSeedAnnulus_Invalid(t *testing.T) {
	cases := []struct {
		name             string
		r1, r2, h, ratio float64
	}{
		{"zero h", 0.2, 1, 0, 0.7},
		{"negative h", 0.2, 1, -0.2, 0.7},
		{"zero inner radius", 0, 1, 0.2, 0.7},
		{"negative inner radius", -0.2, 1, 0.2, 0.7},
		{"inner radius at outer", 1, 1, 0.2, 0.7},
		{"inner radius past outer", 1.5, 1, 0.2, 0.7},
		{"zero ratio", 0.2, 1, 0.2, 0},
		// round(0.7 * 2π * 0.01 / 0.2) = 0
		{"empty inner ring", 0.01, 1, 0.2, 0.7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			points, err := SeedAnnulus(c.r1, c.r2, c.h, c.ratio)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Nil(t, points)
		})
	}
}
