package balls

import "math"

func (s *Simulation) resolveCollisions() {
	d := float64(s.field.Diameter)
	for i := 0; i < len(s.balls); i++ {
		for j := i + 1; j < len(s.balls); j++ {
			a, b := &s.balls[i], &s.balls[j]

			dx, dy, ok := broadPhase(a, b, d)
			if !ok {
				continue
			}
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist >= d-1 || dist == 0 {
				continue
			}

			ex, ey := dx/dist, dy/dist
			exchange(a, b, ex, ey)
			s.stats.Collisions++

			if dist < d-2 {
				separate(a, b, ex, ey)
			}
		}
	}
}

// broadPhase truncates the axis deltas toward zero and rejects pairs whose
// positive delta on either axis reaches the diameter. The test is one-sided:
// negative deltas always pass and are settled by the exact distance check.
func broadPhase(a, b *Ball, d float64) (dx, dy float64, ok bool) {
	dx = math.Trunc(a.X - b.X)
	dy = math.Trunc(a.Y - b.Y)
	return dx, dy, dx < d && dy < d
}

// exchange rotates both velocities into the frame of the unit normal (ex, ey),
// swaps the normal components and rotates back. Tangential components are
// kept.
func exchange(a, b *Ball, ex, ey float64) {
	an := a.VX*ex + a.VY*ey
	at := -a.VX*ey + a.VY*ex
	bn := b.VX*ex + b.VY*ey
	bt := -b.VX*ey + b.VY*ex

	an, bn = bn, an

	a.VX, a.VY = an*ex-at*ey, an*ey+at*ex
	b.VX, b.VY = bn*ex-bt*ey, bn*ey+bt*ex
}

// separate nudges overlapping balls one unit apart along the normal. A ball
// held against a wall is left in place.
func separate(a, b *Ball, ex, ey float64) {
	if !a.OnEdge {
		a.X += ex
		a.Y += ey
	}
	if !b.OnEdge {
		b.X -= ex
		b.Y -= ey
	}
}
