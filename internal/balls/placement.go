package balls

import (
	"math"
	"slices"
)

type cell struct{ x, y int }

// grid lists cell centers row by row, one diameter apart, starting at
// (left+radius, top+radius).
func grid(f Field) []cell {
	n := f.Cells()
	cells := make([]cell, 0, n)
	if n == 0 {
		return cells
	}
	r := f.Radius()
	for row := 0; row < f.Rows(); row++ {
		y := f.Bounds.Top + r + row*f.Diameter
		for col := 0; col < f.Columns(); col++ {
			cells = append(cells, cell{x: f.Bounds.Left + r + col*f.Diameter, y: y})
		}
	}
	return cells
}

func place(count int, f Field, rng Rand) ([]Ball, error) {
	cells := grid(f)
	if len(cells) < count {
		return nil, &ConfigError{
			Balls:    count,
			Cells:    len(cells),
			Diameter: f.Diameter,
			Bounds:   f.Bounds,
			Reason:   "field too small for ball count",
		}
	}

	balls := make([]Ball, count)
	for i := range balls {
		idx := rng.IntN(len(cells))
		c := cells[idx]
		cells = slices.Delete(cells, idx, idx+1)

		v := rng.Float64()
		angle := rng.Float64() * 2 * math.Pi
		balls[i] = Ball{
			X:  float64(c.x),
			Y:  float64(c.y),
			VX: v * math.Cos(angle),
			VY: v * math.Sin(angle),
		}
	}
	return balls, nil
}
