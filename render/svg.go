package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/osuushi/annulusmesh/advanced"
)

// SVG writes the mesh as an SVG document with one polygon per face, followed
// by one circle per fixed vertex. Coordinates are rounded to whole pixels.
func SVG(w io.Writer, points []advanced.Point, faces []advanced.Face, opts Options) {
	opts = opts.withDefaults()
	t := newTransform(points, opts)

	canvas := svg.New(w)
	canvas.Start(opts.Size, opts.Size)
	canvas.Rect(0, 0, opts.Size, opts.Size, "fill:white")
	style := fmt.Sprintf("fill:none;stroke:#000099;stroke-width:%g", opts.LineWidth)
	for _, face := range faces {
		xs := make([]int, len(face))
		ys := make([]int, len(face))
		for k, i := range face {
			x, y := t.apply(points[i])
			xs[k], ys[k] = int(math.Round(x)), int(math.Round(y))
		}
		canvas.Polygon(xs, ys, style)
	}
	radius := int(math.Max(1, math.Round(2*opts.LineWidth)))
	for _, p := range points[:min(opts.NumFixed, len(points))] {
		x, y := t.apply(p)
		canvas.Circle(int(math.Round(x)), int(math.Round(y)), radius, "fill:#cc0000")
	}
	canvas.End()
}
