package analysis

import (
	"math"

	"github.com/san-kum/ballsim/internal/sim"
	"github.com/san-kum/ballsim/internal/viz"
)

// VelocityPortrait plots every ball of every frame in velocity space on a
// braille canvas of w x h cells. Axes cross at the origin and both axes
// share the same scale so the picture stays isotropic. Positive vy points
// down, matching field coordinates.
func VelocityPortrait(frames []sim.Frame, w, h int) string {
	vmax := 0.0
	for _, f := range frames {
		for _, b := range f.Balls {
			vmax = math.Max(vmax, math.Max(math.Abs(b.VX), math.Abs(b.VY)))
		}
	}
	if vmax == 0 {
		vmax = 1
	}

	c := viz.NewCanvas(w, h)
	dw, dh := c.Dots()
	cx, cy := (dw-1)/2, (dh-1)/2
	c.DrawLine(cx, 0, cx, dh-1)
	c.DrawLine(0, cy, dw-1, cy)

	for _, f := range frames {
		for _, b := range f.Balls {
			x := (b.VX/vmax + 1) / 2 * float64(dw-1)
			y := (b.VY/vmax + 1) / 2 * float64(dh-1)
			c.Set(int(math.Round(x)), int(math.Round(y)))
		}
	}
	return c.String()
}
