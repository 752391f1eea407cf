package advanced

import (
	"math"

	"github.com/pkg/errors"
)

// Number of vertices placed on a boundary circle of radius r. The ratio trades
// a smooth boundary (more vertices) against the target spacing h: with ratio
// 1 the arc spacing equals h, and the default 0.7 spaces them a little wider.
func BoundaryCount(r, h, ratio float64) int {
	return int(math.Round(ratio * 2 * math.Pi * r / h))
}

// SeedCircle places evenly spaced points on the circle of radius r around the
// origin, starting at angle 0 and going counterclockwise.
func SeedCircle(r, h, ratio float64) ([]Point, error) {
	if !(h > 0) {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "point distance must be positive, got %v", h)
	}
	if !(ratio > 0) {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "boundary ratio must be positive, got %v", ratio)
	}
	k := BoundaryCount(r, h, ratio)
	if k <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "circle of radius %v gets %d boundary vertices", r, k)
	}
	points := make([]Point, k)
	for i := range points {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(k))
		points[i] = Point{r * cos, r * sin}
	}
	return points, nil
}

// SeedAnnulus returns the fixed boundary vertices of the annulus r1 <= |p| <= r2,
// inner circle first. The length of the result is the number of fixed
// vertices of the mesh.
func SeedAnnulus(r1, r2, h, ratio float64) ([]Point, error) {
	if !(0 < r1 && r1 < r2) {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "inner radius must be in (0, %v), got %v", r2, r1)
	}
	var points []Point
	for _, r := range []float64{r1, r2} {
		ring, err := SeedCircle(r, h, ratio)
		if err != nil {
			return nil, err
		}
		points = append(points, ring...)
	}
	return points, nil
}
