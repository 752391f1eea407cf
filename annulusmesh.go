// Uniform triangular meshes of an annulus.
//
// Boundary vertices are placed evenly on both circles, the interior is filled
// with blue noise by Bridson's Poisson-disc algorithm, the points are
// triangulated by a Delaunay oracle and the interior vertices are finally
// relaxed by Laplacian smoothing.
//
// The individual stages are available in the advanced package, for other
// regions or custom pipelines.
package annulusmesh

import (
	"github.com/osuushi/annulusmesh/advanced"
	"github.com/osuushi/annulusmesh/oracle"
	"go.uber.org/zap"
)

type Point = advanced.Point
type Face = advanced.Face

var (
	ErrInvalidConfiguration = advanced.ErrInvalidConfiguration
	ErrOracleUnavailable    = advanced.ErrOracleUnavailable
	ErrOracleFailure        = advanced.ErrOracleFailure
	ErrDegenerateVertex     = advanced.ErrDegenerateVertex
)

type Mesh struct {
	Points []Point
	Faces  []Face
	// The first NumFixed points are the boundary vertices.
	NumFixed  int
	Smoothing advanced.SmoothStats
}

// Generate builds the mesh described by cfg. If tri is nil, the oracle named
// in cfg is used. A nil logger logs nothing.
//
// The result only depends on cfg and the oracle, so the same config always
// yields the same mesh.
func Generate(cfg Config, tri oracle.Triangulator, logger *zap.Logger) (*Mesh, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tri == nil {
		var err error
		if tri, err = cfg.Triangulator(); err != nil {
			return nil, err
		}
	}

	seeds, err := advanced.SeedAnnulus(cfg.InnerRadius, OuterRadius, cfg.MinDist, cfg.BoundaryRatio)
	if err != nil {
		return nil, err
	}
	nFixed := len(seeds)

	annulus := advanced.Annulus{Inner: cfg.InnerRadius, Outer: OuterRadius}
	sampler := advanced.Sampler{
		MinDist:  cfg.MinDist,
		Bounds:   annulus.Bounds(),
		Region:   annulus,
		Attempts: cfg.Attempts,
		Rand:     advanced.NewRand(cfg.Seed),
		Logger:   logger,
	}
	points, err := sampler.Sample(seeds)
	if err != nil {
		return nil, err
	}
	logger.Info("generated nodes", zap.Int("nodes", len(points)), zap.Int("fixed", nFixed))

	faces, err := tri.Triangulate(points)
	if err != nil {
		return nil, err
	}
	logger.Info("delaunay triangulation done", zap.Int("faces", len(faces)))

	adj, err := advanced.BuildAdjacency(len(points), faces)
	if err != nil {
		return nil, err
	}
	if isolated := adj.Isolated(); len(isolated) > 0 {
		logger.Warn("vertices missing from the triangulation", zap.Ints("vertices", isolated))
	}

	stats, err := advanced.Smooth(points, adj, nFixed, advanced.SmoothOptions{
		Sweeps:  cfg.Sweeps,
		Epsilon: cfg.Epsilon,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("laplace smoothing done",
		zap.Int("sweeps", stats.Sweeps),
		zap.Bool("converged", stats.Converged),
	)

	return &Mesh{
		Points:    points,
		Faces:     faces,
		NumFixed:  nFixed,
		Smoothing: stats,
	}, nil
}
