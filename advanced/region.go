package advanced

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Region is the membership predicate that restricts where the sampler may
// place points.
type Region interface {
	Contains(p Point) bool
}

// RegionFunc adapts an ordinary function to a Region.
type RegionFunc func(p Point) bool

func (f RegionFunc) Contains(p Point) bool {
	return f(p)
}

// Annulus centered at the origin. Both boundary circles are included.
type Annulus struct {
	Inner float64
	Outer float64
}

func (a Annulus) Contains(p Point) bool {
	d := p.Norm()
	return a.Inner <= d && d <= a.Outer
}

// The smallest box containing the annulus.
func (a Annulus) Bounds() Bounds {
	return NewBounds(Point{-a.Outer, -a.Outer}, Point{a.Outer, a.Outer})
}

// PolygonRegion accepts points inside a polygon. The first ring is the outer
// boundary and any further rings are holes, as in orb.
type PolygonRegion struct {
	polygon orb.Polygon
}

func NewPolygonRegion(outer []Point, holes ...[]Point) PolygonRegion {
	polygon := orb.Polygon{toRing(outer)}
	for _, hole := range holes {
		polygon = append(polygon, toRing(hole))
	}
	return PolygonRegion{polygon}
}

func (r PolygonRegion) Contains(p Point) bool {
	return planar.PolygonContains(r.polygon, orb.Point{p.X, p.Y})
}

func (r PolygonRegion) Bounds() Bounds {
	bound := r.polygon.Bound()
	return NewBounds(Point{bound.Min.X(), bound.Min.Y()}, Point{bound.Max.X(), bound.Max.Y()})
}

// orb rings must be closed, so repeat the first point if the caller didn't.
func toRing(points []Point) orb.Ring {
	ring := make(orb.Ring, 0, len(points)+1)
	for _, p := range points {
		ring = append(ring, orb.Point{p.X, p.Y})
	}
	if len(ring) > 0 && !ring[0].Equal(ring[len(ring)-1]) {
		ring = append(ring, ring[0])
	}
	return ring
}
