package advanced

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpatialGrid_QueryDiskMatchesBruteForce(t *testing.T) {
	h := 0.1
	bounds := NewBounds(Point{-1, -1}, Point{1, 1})
	grid, err := NewSpatialGrid(bounds, h)
	require.NoError(t, err)
	assert.InDelta(t, h/math.Sqrt2, grid.CellSize(), Tolerance)

	// Dense random points, ignoring the minimum distance on purpose
	r := NewRand(7)
	points := make([]Point, 500)
	for i := range points {
		points[i] = Point{2*r.Float64() - 1, 2*r.Float64() - 1}
		grid.Insert(points[i], i)
	}

	for _, radius := range []float64{0, h / 2, h, 1.5 * h, 2 * h} {
		for q := 0; q < 50; q++ {
			center := Point{2*r.Float64() - 1, 2*r.Float64() - 1}
			got, err := grid.QueryDisk(center, radius, nil)
			require.NoError(t, err)

			var want []int
			for i, p := range points {
				if p.DistSq(center) <= radius*radius {
					want = append(want, i)
				}
			}
			sort.Ints(got)
			assert.Equal(t, want, got, "radius %v around %v", radius, center)
		}
	}
}

func TestSpatialGrid_RejectsLargeRadius(t *testing.T) {
	grid, err := NewSpatialGrid(NewBounds(Point{0, 0}, Point{1, 1}), 0.1)
	require.NoError(t, err)
	_, err = grid.QueryDisk(Point{0.5, 0.5}, 0.3, nil)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestSpatialGrid_InvalidSpacing(t *testing.T) {
	for _, h := range []float64{0, -1, math.NaN()} {
		_, err := NewSpatialGrid(NewBounds(Point{0, 0}, Point{1, 1}), h)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	}
}

func TestSpatialGrid_EdgePoints(t *testing.T) {
	grid, err := NewSpatialGrid(NewBounds(Point{-1, -1}, Point{1, 1}), 0.2)
	require.NoError(t, err)

	// Points on and just past the max edge still land in a cell
	grid.Insert(Point{1, 0}, 0)
	grid.Insert(Point{1 + 1e-12, 1}, 1)
	grid.Insert(Point{-1, -1}, 2)

	got, err := grid.QueryDisk(Point{0.95, 0}, 0.1, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, got)

	got, err = grid.QueryDisk(Point{1, 1}, 0.1, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)

	got, err = grid.QueryDisk(Point{-0.9, -0.9}, 0.2, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, got)
}

func TestSpatialGrid_InsertionOrder(t *testing.T) {
	grid, err := NewSpatialGrid(NewBounds(Point{0, 0}, Point{1, 1}), 0.5)
	require.NoError(t, err)
	grid.Insert(Point{0.1, 0.1}, 5)
	grid.Insert(Point{0.11, 0.1}, 2)
	grid.Insert(Point{0.1, 0.11}, 9)

	got, err := grid.QueryDisk(Point{0.1, 0.1}, 0.05, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 2, 9}, got)
}
