package advanced

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point is a position in the plane. Points carry no identity of their own; a
// vertex is identified by its index in the point slice it lives in.
type Point r2.Point

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// The square of the distance between two points.
func (p Point) DistSq(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

func (p Point) Dist(q Point) float64 {
	return math.Sqrt(p.DistSq(q))
}

// Distance from the origin.
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// Bounds is an axis aligned box. Sampling never accepts a point outside of it.
type Bounds struct {
	rect r2.Rect
}

func NewBounds(lo, hi Point) Bounds {
	return Bounds{r2.RectFromPoints(r2.Point(lo), r2.Point(hi))}
}

func (b Bounds) Min() Point {
	return Point(b.rect.Lo())
}

func (b Bounds) Max() Point {
	return Point(b.rect.Hi())
}

func (b Bounds) Width() float64 {
	return b.rect.X.Length()
}

func (b Bounds) Height() float64 {
	return b.rect.Y.Length()
}

func (b Bounds) Contains(p Point) bool {
	return b.rect.ContainsPoint(r2.Point(p))
}

// A face of a triangulation, given as a cycle of indices into the point slice.
// The oracle normally returns triangles, but any closed polygon is accepted.
type Face []int

// Adjacency maps each vertex index to its sorted, deduplicated neighbors.
type Adjacency [][]int
