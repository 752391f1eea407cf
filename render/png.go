package render

import (
	"io"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/annulusmesh/advanced"
	"github.com/pkg/errors"
)

// PNG draws every face as a closed polyline and saves the image to path.
func PNG(path string, points []advanced.Point, faces []advanced.Face, opts Options) error {
	opts = opts.withDefaults()
	t := newTransform(points, opts)

	c := gg.NewContext(opts.Size, opts.Size)
	c.SetRGB(1, 1, 1)
	c.Clear()

	c.SetRGB(0, 0, 0.6)
	c.SetLineWidth(opts.LineWidth)
	for _, face := range faces {
		x, y := t.apply(points[face[0]])
		c.MoveTo(x, y)
		for _, i := range face[1:] {
			x, y = t.apply(points[i])
			c.LineTo(x, y)
		}
		c.ClosePath()
	}
	c.Stroke()

	c.SetRGB(0.8, 0, 0)
	for _, p := range points[:min(opts.NumFixed, len(points))] {
		x, y := t.apply(p)
		c.DrawCircle(x, y, 2*opts.LineWidth)
	}
	c.Fill()

	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving plot to %s", path)
	}
	return nil
}

// Preview prints an image file inline (iTerm only).
func Preview(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
