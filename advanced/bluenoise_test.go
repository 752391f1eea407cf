package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func sampleAnnulus(t *testing.T, r1, h float64, seed uint64) ([]Point, int) {
	t.Helper()
	seeds, err := SeedAnnulus(r1, 1, h, 0.7)
	require.NoError(t, err)
	annulus := Annulus{Inner: r1, Outer: 1}
	sampler := Sampler{
		MinDist: h,
		Bounds:  annulus.Bounds(),
		Region:  annulus,
		Rand:    NewRand(seed),
	}
	points, err := sampler.Sample(seeds)
	require.NoError(t, err)
	return points, len(seeds)
}

func TestSampler_MinimumDistance(t *testing.T) {
	for _, h := range []float64{0.2, 0.1, 0.05} {
		points, nFixed := sampleAnnulus(t, 0.2, h, 0)
		require.Greater(t, len(points), nFixed)
		for i := range points {
			for j := i + 1; j < len(points); j++ {
				if j < nFixed {
					// Boundary pairs are spaced by construction
					continue
				}
				assert.GreaterOrEqual(t, points[i].Dist(points[j]), h-Tolerance, "points %d and %d", i, j)
			}
		}
	}
}

func TestSampler_StaysInRegion(t *testing.T) {
	r1 := 0.3
	points, nFixed := sampleAnnulus(t, r1, 0.08, 3)
	for _, p := range points[nFixed:] {
		d := p.Norm()
		assert.True(t, r1 <= d && d <= 1, "point %v at distance %v", p, d)
	}
}

func TestSampler_FillsRegion(t *testing.T) {
	h := 0.1
	points, _ := sampleAnnulus(t, 0.2, h, 0)

	// No large holes: every probe point in the region has a sample nearby.
	r := NewRand(99)
	annulus := Annulus{Inner: 0.2, Outer: 1}
	for probes := 0; probes < 200; {
		p := Point{2*r.Float64() - 1, 2*r.Float64() - 1}
		if !annulus.Contains(p) {
			continue
		}
		probes++
		nearest := p.Dist(points[0])
		for _, q := range points[1:] {
			if d := p.Dist(q); d < nearest {
				nearest = d
			}
		}
		assert.Less(t, nearest, 3*h, "probe %v", p)
	}
}

func TestSampler_Reproducible(t *testing.T) {
	a, _ := sampleAnnulus(t, 0.2, 0.1, 42)
	b, _ := sampleAnnulus(t, 0.2, 0.1, 42)
	assert.Equal(t, a, b)

	c, _ := sampleAnnulus(t, 0.2, 0.1, 43)
	assert.NotEqual(t, a, c)
}

func TestSampler_SeedsUntouched(t *testing.T) {
	seeds, err := SeedAnnulus(0.2, 1, 0.2, 0.7)
	require.NoError(t, err)
	original := append([]Point(nil), seeds...)

	annulus := Annulus{Inner: 0.2, Outer: 1}
	sampler := Sampler{MinDist: 0.2, Bounds: annulus.Bounds(), Region: annulus, Rand: NewRand(0)}
	points, err := sampler.Sample(seeds)
	require.NoError(t, err)

	assert.Equal(t, original, seeds)
	assert.Equal(t, original, points[:len(seeds)])
}

func TestSampler_EmptyRegion(t *testing.T) {
	seeds := []Point{{0, 0}, {0.5, 0.5}}
	core, logs := observer.New(zap.DebugLevel)
	sampler := Sampler{
		MinDist: 0.1,
		Bounds:  NewBounds(Point{-1, -1}, Point{1, 1}),
		Region:  RegionFunc(func(Point) bool { return false }),
		Rand:    NewRand(0),
		Logger:  zap.New(core),
	}
	points, err := sampler.Sample(seeds)
	require.NoError(t, err)
	assert.Equal(t, seeds, points)

	entries := logs.FilterMessage("blue noise sampling done").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(0), entries[0].ContextMap()["added"])

	// Without seeds there is nothing at all
	points, err = sampler.Sample(nil)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestSampler_PolygonWithoutSeeds(t *testing.T) {
	outer := []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	hole := []Point{{0.5, 0.5}, {0.5, 1.5}, {1.5, 1.5}, {1.5, 0.5}}
	region := NewPolygonRegion(outer, hole)
	h := 0.1

	sampler := Sampler{MinDist: h, Bounds: region.Bounds(), Region: region, Rand: NewRand(5)}
	points, err := sampler.Sample(nil)
	require.NoError(t, err)
	require.NotEmpty(t, points)

	for i, p := range points {
		assert.True(t, region.Contains(p), "point %v", p)
		inHole := p.X > 0.5 && p.X < 1.5 && p.Y > 0.5 && p.Y < 1.5
		assert.False(t, inHole, "point %v", p)
		for _, q := range points[i+1:] {
			assert.GreaterOrEqual(t, p.Dist(q), h-Tolerance)
		}
	}
}

func TestSampler_InvalidConfiguration(t *testing.T) {
	annulus := Annulus{Inner: 0.2, Outer: 1}
	cases := map[string]Sampler{
		"zero distance": {MinDist: 0, Bounds: annulus.Bounds(), Region: annulus, Rand: NewRand(0)},
		"no rand":       {MinDist: 0.1, Bounds: annulus.Bounds(), Region: annulus},
		"no region":     {MinDist: 0.1, Bounds: annulus.Bounds(), Rand: NewRand(0)},
	}
	for name, sampler := range cases {
		sampler := sampler
		t.Run(name, func(t *testing.T) {
			_, err := sampler.Sample(nil)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestRegions(t *testing.T) {
	annulus := Annulus{Inner: 0.5, Outer: 1}
	assert.True(t, annulus.Contains(Point{0.5, 0}))
	assert.True(t, annulus.Contains(Point{0, -1}))
	assert.False(t, annulus.Contains(Point{0.1, 0.1}))
	assert.False(t, annulus.Contains(Point{1, 1}))
	assert.Equal(t, Point{-1, -1}, annulus.Bounds().Min())
	assert.Equal(t, Point{1, 1}, annulus.Bounds().Max())

	triangle := NewPolygonRegion([]Point{{0, 0}, {1, 0}, {0, 1}})
	assert.True(t, triangle.Contains(Point{0.2, 0.2}))
	assert.False(t, triangle.Contains(Point{0.8, 0.8}))
	assert.Equal(t, Point{1, 1}, triangle.Bounds().Max())
}
