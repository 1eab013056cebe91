package viz

import (
	"github.com/san-kum/ballsim/internal/balls"
)

// Painter maps field coordinates onto a canvas.
type Painter struct {
	canvas *Canvas
	bounds balls.Rect
	sx, sy float64
}

func NewPainter(c *Canvas, bounds balls.Rect) *Painter {
	w, h := c.Dots()
	p := &Painter{canvas: c, bounds: bounds, sx: 1, sy: 1}
	if bw := bounds.Width(); bw > 0 {
		p.sx = float64(w-1) / float64(bw)
	}
	if bh := bounds.Height(); bh > 0 {
		p.sy = float64(h-1) / float64(bh)
	}
	return p
}

func (p *Painter) Canvas() *Canvas { return p.canvas }

// Project converts a field point to sub-pixel coordinates.
func (p *Painter) Project(x, y float64) (float64, float64) {
	return (x - float64(p.bounds.Left)) * p.sx, (y - float64(p.bounds.Top)) * p.sy
}

// Ball has the ForEachBall callback signature.
func (p *Painter) Ball(x, y, radius float64) {
	cx, cy := p.Project(x, y)
	p.canvas.FillEllipse(cx, cy, radius*p.sx, radius*p.sy)
}

func (p *Painter) Border() {
	w, h := p.canvas.Dots()
	p.canvas.DrawRect(0, 0, w-1, h-1)
}

// Draw repaints the whole simulation.
func (p *Painter) Draw(s *balls.Simulation, border bool) {
	p.canvas.Clear()
	if border {
		p.Border()
	}
	s.ForEachBall(p.Ball)
}

// DrawFrame repaints a stored ball state.
func (p *Painter) DrawFrame(state []balls.Ball, radius float64, border bool) {
	p.canvas.Clear()
	if border {
		p.Border()
	}
	for _, b := range state {
		p.Ball(b.X, b.Y, radius)
	}
}
