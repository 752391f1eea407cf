package advanced

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DefaultSweeps  = 1
	DefaultEpsilon = 1e-3
)

type SmoothOptions struct {
	// Maximum number of sweeps over the free vertices. Zero means DefaultSweeps.
	Sweeps int
	// Stop once a sweep moves the vertices by less than this, measured as the
	// root of the summed squared displacements. Zero means DefaultEpsilon.
	Epsilon float64
	Logger  *zap.Logger
}

type SmoothStats struct {
	// Sweeps actually run.
	Sweeps int
	// Root summed squared displacement of each sweep.
	Change    []float64
	Converged bool
}

// Smooth relaxes the free vertices (index nFixed and up) towards the centroid
// of their neighbors, in place. Vertices are updated Gauss-Seidel style: in
// ascending order, each one immediately, so later vertices in a sweep already
// see the new positions of earlier ones. The fixed vertices anchor the shape of
// the mesh and are never moved.
//
// All free vertices are checked before anything moves, so on error the points
// are untouched.
func Smooth(points []Point, adj Adjacency, nFixed int, opts SmoothOptions) (SmoothStats, error) {
	var stats SmoothStats
	if len(adj) != len(points) {
		return stats, errors.Wrapf(ErrInvalidConfiguration, "adjacency has %d entries for %d points", len(adj), len(points))
	}
	if nFixed < 0 || nFixed > len(points) {
		return stats, errors.Wrapf(ErrInvalidConfiguration, "fixed count %d outside of [0, %d]", nFixed, len(points))
	}
	for i := nFixed; i < len(points); i++ {
		if len(adj[i]) == 0 {
			return stats, errors.Wrapf(ErrDegenerateVertex, "free vertex %d at (%g, %g) has no neighbors", i, points[i].X, points[i].Y)
		}
	}

	sweeps := opts.Sweeps
	if sweeps <= 0 {
		sweeps = DefaultSweeps
	}
	eps := opts.Epsilon
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	for sweep := 0; sweep < sweeps; sweep++ {
		change := 0.0
		for i := nFixed; i < len(points); i++ {
			var sum Point
			for _, j := range adj[i] {
				sum = sum.Add(points[j])
			}
			n := float64(len(adj[i]))
			q := Point{sum.X / n, sum.Y / n}
			change += points[i].DistSq(q)
			points[i] = q
		}
		change = math.Sqrt(change)
		stats.Sweeps++
		stats.Change = append(stats.Change, change)
		logger.Debug("laplace sweep", zap.Int("sweep", sweep), zap.Float64("change", change))

		if change < eps {
			stats.Converged = true
			break
		}
	}
	return stats, nil
}
