// Package oracle provides Delaunay triangulations of point sets. The mesh
// pipeline only depends on the Triangulator interface, so the triangulation
// engine can be swapped out, or faked in tests.
package oracle

import "github.com/osuushi/annulusmesh/advanced"

// Triangulator computes the Delaunay triangulation of a point set. The faces
// index into points, and exclude the unbounded face outside the convex hull.
// Errors wrap advanced.ErrOracleUnavailable or advanced.ErrOracleFailure.
type Triangulator interface {
	Triangulate(points []advanced.Point) ([]advanced.Face, error)
}

// Func adapts an ordinary function to a Triangulator.
type Func func(points []advanced.Point) ([]advanced.Face, error)

func (f Func) Triangulate(points []advanced.Point) ([]advanced.Face, error) {
	return f(points)
}
