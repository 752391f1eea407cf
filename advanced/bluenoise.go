package advanced

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mathext/prng"
)

// Candidates tried around an active point before it is retired.
const DefaultAttempts = 30

// NewRand returns the random source used for sampling: a 64 bit Mersenne
// Twister seeded with seed, so that a seed always reproduces the same mesh.
func NewRand(seed uint64) *rand.Rand {
	mt := prng.NewMT19937_64()
	mt.Seed(seed)
	return rand.New(mt)
}

// Sampler generates blue noise with Bridson's algorithm: points no closer than
// MinDist to each other, packed until no more fit, restricted to Bounds and
// Region.
//
// Bridson, Robert. "Fast Poisson disk sampling in arbitrary dimensions." ACM
// SIGGRAPH 2007 sketches.
type Sampler struct {
	MinDist float64
	Bounds  Bounds
	Region  Region
	// Zero means DefaultAttempts.
	Attempts int
	Rand     *rand.Rand
	Logger   *zap.Logger
}

// Sample returns a copy of seeds with the new points appended. The seed
// points are never moved, but they exclude candidates around them and are
// themselves used to spawn candidates, even if the region doesn't contain them.
//
// The random draws happen in a fixed order: the active entry to expand, then
// for each attempt the angle followed by the distance. Given the same seeds,
// parameters and random state, the output is always identical.
func (s *Sampler) Sample(seeds []Point) ([]Point, error) {
	h := s.MinDist
	if !(h > 0) {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "minimum distance must be positive, got %v", h)
	}
	if s.Rand == nil {
		return nil, errors.Wrap(ErrInvalidConfiguration, "sampler has no random source")
	}
	if s.Region == nil {
		return nil, errors.Wrap(ErrInvalidConfiguration, "sampler has no region")
	}
	attempts := s.Attempts
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	grid, err := NewSpatialGrid(s.Bounds, h)
	if err != nil {
		return nil, err
	}

	points := make([]Point, len(seeds))
	copy(points, seeds)
	var active ActiveList
	for i, p := range points {
		grid.Insert(p, i)
		active.Push(i)
	}

	if active.Empty() {
		// Nothing to grow from, so look for a starting point the usual way.
		if p, ok := s.initialPoint(attempts); ok {
			grid.Insert(p, len(points))
			active.Push(len(points))
			points = append(points, p)
		}
	}

	for !active.Empty() {
		pos := s.Rand.IntN(active.Len())
		origin := points[active[pos]]

		found := false
		for try := 0; try < attempts; try++ {
			candidate := s.candidate(origin)
			if !s.accepts(grid, candidate) {
				continue
			}
			grid.Insert(candidate, len(points))
			active.Push(len(points))
			points = append(points, candidate)
			found = true
			break
		}
		if !found {
			active.Remove(pos)
		}
	}

	logger.Debug("blue noise sampling done",
		zap.Int("seeds", len(seeds)),
		zap.Int("added", len(points)-len(seeds)),
		zap.Float64("min_dist", h),
	)
	return points, nil
}

// A random point in the annulus [h, 2h] around origin.
func (s *Sampler) candidate(origin Point) Point {
	angle := 2 * math.Pi * s.Rand.Float64()
	radius := s.MinDist * (1 + s.Rand.Float64())
	sin, cos := math.Sincos(angle)
	return origin.Add(Point{radius * cos, radius * sin})
}

func (s *Sampler) accepts(grid *SpatialGrid, p Point) bool {
	return s.Bounds.Contains(p) && s.Region.Contains(p) && !grid.anyCloser(p, s.MinDist)
}

func (s *Sampler) initialPoint(attempts int) (Point, bool) {
	lo := s.Bounds.Min()
	for try := 0; try < attempts; try++ {
		p := Point{
			lo.X + s.Bounds.Width()*s.Rand.Float64(),
			lo.Y + s.Bounds.Height()*s.Rand.Float64(),
		}
		if s.Region.Contains(p) {
			return p, true
		}
	}
	return Point{}, false
}
