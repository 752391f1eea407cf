package oracle

import (
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
	"github.com/osuushi/annulusmesh/advanced"
	"github.com/pkg/errors"
)

const DefaultHullEps = 1e-12

// QuickHull triangulates in process. Lifting every point onto the paraboloid
// z = x² + y² turns the Delaunay triangulation into the lower convex hull of
// the lifted points: a circle through three points lifts to a plane, and the
// empty circle property becomes "no lifted point below the plane".
type QuickHull struct {
	// Coplanarity tolerance handed to the hull. Zero means DefaultHullEps.
	Eps float64
}

func (q QuickHull) Triangulate(points []advanced.Point) (faces []advanced.Face, err error) {
	defer func() {
		if recoveredErr := handleOraclePanicRecover(recover(), "quickhull"); recoveredErr != nil {
			faces = nil
			err = recoveredErr
		}
	}()

	if len(points) < 3 {
		return nil, errors.Wrapf(advanced.ErrOracleFailure, "cannot triangulate %d points", len(points))
	}
	eps := q.Eps
	if eps == 0 {
		eps = DefaultHullEps
	}
	if len(points) == 3 {
		// A lone triangle has no volume to take the hull of
		if orient(points[0], points[1], points[2]) == 0 {
			return nil, errors.Wrap(advanced.ErrOracleFailure, "points are collinear")
		}
		return []advanced.Face{ccwFace(points, 0, 1, 2)}, nil
	}

	lifted := make([]r3.Vector, len(points))
	var centroid r3.Vector
	for i, p := range points {
		lifted[i] = r3.Vector{X: p.X, Y: p.Y, Z: p.X*p.X + p.Y*p.Y}
		centroid = centroid.Add(lifted[i])
	}
	centroid = centroid.Mul(1 / float64(len(points)))

	hull := new(quickhull.QuickHull).ConvexHull(lifted, true, true, eps)
	if len(hull.Indices)%3 != 0 {
		return nil, errors.Wrapf(advanced.ErrOracleFailure, "quickhull returned %d indices, not a multiple of 3", len(hull.Indices))
	}

	for t := 0; t < len(hull.Indices); t += 3 {
		a, b, c := hull.Indices[t], hull.Indices[t+1], hull.Indices[t+2]
		if a < 0 || a >= len(points) || b < 0 || b >= len(points) || c < 0 || c >= len(points) {
			return nil, errors.Wrapf(advanced.ErrOracleFailure, "quickhull returned triangle (%d, %d, %d) outside of %d points", a, b, c, len(points))
		}
		normal := lifted[b].Sub(lifted[a]).Cross(lifted[c].Sub(lifted[a]))
		// Don't rely on the winding of the hull; orient the normal away from
		// the interior.
		if normal.Dot(lifted[a].Sub(centroid)) < 0 {
			normal = normal.Mul(-1)
		}
		if normal.Z >= -eps*normal.Norm() {
			// Upper hull, or a vertical face from collinear points
			continue
		}
		faces = append(faces, ccwFace(points, a, b, c))
	}

	if len(faces) == 0 {
		return nil, errors.Wrap(advanced.ErrOracleFailure, "points are collinear")
	}
	return faces, nil
}

// Twice the signed area of the triangle abc, positive when counterclockwise.
func orient(a, b, c advanced.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func ccwFace(points []advanced.Point, a, b, c int) advanced.Face {
	if orient(points[a], points[b], points[c]) < 0 {
		b, c = c, b
	}
	return advanced.Face{a, b, c}
}
