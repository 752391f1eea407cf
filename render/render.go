// Package render draws meshes, as PNG images through gg or as SVG documents.
// Images are square and keep the aspect ratio of the mesh.
package render

import (
	"math"

	"github.com/osuushi/annulusmesh/advanced"
)

type Options struct {
	// Width and height of the square image in pixels. Zero means 720.
	Size int
	// Empty space around the mesh, in pixels. Zero means 20.
	Padding float64
	// Zero means 1.
	LineWidth float64
	// Draw the first NumFixed vertices as dots, to show the boundary.
	NumFixed int
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = 720
	}
	if o.Padding <= 0 {
		o.Padding = 20
	}
	if o.LineWidth <= 0 {
		o.LineWidth = 1
	}
	return o
}

// Maps mesh coordinates to image coordinates: uniform scale so the mesh fits,
// centered, with y pointing up.
type transform struct {
	scale  float64
	cx, cy float64
	half   float64
}

func newTransform(points []advanced.Point, o Options) transform {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	extent := math.Max(maxX-minX, maxY-minY)
	scale := 1.0
	if extent > 0 && !math.IsInf(extent, 0) {
		scale = (float64(o.Size) - 2*o.Padding) / extent
	}
	t := transform{scale: scale, half: float64(o.Size) / 2}
	if len(points) > 0 {
		t.cx = (minX + maxX) / 2
		t.cy = (minY + maxY) / 2
	}
	return t
}

func (t transform) apply(p advanced.Point) (float64, float64) {
	return t.half + (p.X-t.cx)*t.scale, t.half - (p.Y-t.cy)*t.scale
}
