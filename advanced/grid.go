package advanced

import (
	"math"

	"github.com/pkg/errors"
)

// SpatialGrid buckets points into square cells of side h/√2, so that each cell
// holds at most one point of a set with minimum separation h. A disk query of
// radius r only has to look at the cells the disk overlaps, which for r <= 2h
// is at most a 5×5 block.
//
// Points are never removed. Cells keep their entries in insertion order so
// that queries are reproducible.
type SpatialGrid struct {
	bounds   Bounds
	minDist  float64
	cellSize float64
	width    int
	height   int
	cells    [][]gridEntry
}

type gridEntry struct {
	index int
	point Point
}

func NewSpatialGrid(bounds Bounds, h float64) (*SpatialGrid, error) {
	if !(h > 0) {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "grid spacing must be positive, got %v", h)
	}
	cellSize := h / math.Sqrt2
	// One extra cell in each direction, so points lying exactly on the max
	// edge still get a cell of their own.
	width := int(bounds.Width()/cellSize) + 1
	height := int(bounds.Height()/cellSize) + 1
	return &SpatialGrid{
		bounds:   bounds,
		minDist:  h,
		cellSize: cellSize,
		width:    width,
		height:   height,
		cells:    make([][]gridEntry, width*height),
	}, nil
}

func (g *SpatialGrid) CellSize() float64 {
	return g.cellSize
}

// Cell coordinates of a point. Points outside of the bounds clamp to the
// nearest edge cell.
func (g *SpatialGrid) Cell(p Point) (int, int) {
	lo := g.bounds.Min()
	cx := clampCell(int(math.Floor((p.X-lo.X)/g.cellSize)), g.width)
	cy := clampCell(int(math.Floor((p.Y-lo.Y)/g.cellSize)), g.height)
	return cx, cy
}

func clampCell(c, n int) int {
	if c < 0 {
		return 0
	}
	if c >= n {
		return n - 1
	}
	return c
}

func (g *SpatialGrid) Insert(p Point, index int) {
	cx, cy := g.Cell(p)
	cell := cy*g.width + cx
	g.cells[cell] = append(g.cells[cell], gridEntry{index, p})
}

// QueryDisk appends to dst the indices of all points within radius of center
// (inclusive) and returns the extended slice. The radius may not exceed twice
// the grid's spacing.
func (g *SpatialGrid) QueryDisk(center Point, radius float64, dst []int) ([]int, error) {
	if radius > 2*g.minDist {
		return dst, errors.Wrapf(ErrInvalidConfiguration, "query radius %v exceeds 2h = %v", radius, 2*g.minDist)
	}
	radiusSq := radius * radius
	g.visit(center, radius, func(e gridEntry) bool {
		if e.point.DistSq(center) <= radiusSq {
			dst = append(dst, e.index)
		}
		return true
	})
	return dst, nil
}

// Reports whether any point lies strictly closer than radius to center.
func (g *SpatialGrid) anyCloser(center Point, radius float64) bool {
	radiusSq := radius * radius
	found := false
	g.visit(center, radius, func(e gridEntry) bool {
		if e.point.DistSq(center) < radiusSq {
			found = true
			return false
		}
		return true
	})
	return found
}

// Call fn for every entry in the cells overlapping the disk, row by row, until
// fn returns false.
func (g *SpatialGrid) visit(center Point, radius float64, fn func(gridEntry) bool) {
	x0, y0 := g.Cell(Point{center.X - radius, center.Y - radius})
	x1, y1 := g.Cell(Point{center.X + radius, center.Y + radius})
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			for _, e := range g.cells[cy*g.width+cx] {
				if !fn(e) {
					return
				}
			}
		}
	}
}
