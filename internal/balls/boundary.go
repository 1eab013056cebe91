package balls

import "fmt"

// Overshoot is the extra distance a ball is pushed back inside past the wall
// once it has penetrated it. Tuned for speeds of about one unit per step so
// the ball does not re-penetrate on the next step.
const Overshoot = 1.0

// BoundaryPolicy decides how a ball touching more than one wall in a single
// step is corrected.
type BoundaryPolicy int

const (
	// BoundaryIndependent tests and corrects all four walls.
	BoundaryIndependent BoundaryPolicy = iota
	// BoundaryOrdered tests left, right, top, bottom in order. The right and
	// top tests stop processing the ball after their own correction when an
	// earlier wall already set OnEdge, so the bottom wall is then skipped.
	//
	// Containment is not guaranteed under this policy: a ball touching both
	// side walls every step, as in a field one diameter wide, never has its
	// vertical position corrected and its center can leave the field.
	BoundaryOrdered
)

func (p BoundaryPolicy) String() string {
	switch p {
	case BoundaryIndependent:
		return "independent"
	case BoundaryOrdered:
		return "ordered"
	}
	return fmt.Sprintf("BoundaryPolicy(%d)", int(p))
}

func ParseBoundaryPolicy(name string) (BoundaryPolicy, error) {
	switch name {
	case "", "independent":
		return BoundaryIndependent, nil
	case "ordered":
		return BoundaryOrdered, nil
	}
	return 0, fmt.Errorf("unknown boundary policy: %q (want independent or ordered)", name)
}

func (s *Simulation) resolveBoundaries() {
	r := float64(s.field.Radius())
	walls := s.field.Bounds
	left, right := float64(walls.Left), float64(walls.Right)
	top, bottom := float64(walls.Top), float64(walls.Bottom)
	ordered := s.policy == BoundaryOrdered

	for i := range s.balls {
		b := &s.balls[i]
		b.OnEdge = false

		if reflectLow(&b.X, &b.VX, r, left) {
			s.stats.WallContacts++
			b.OnEdge = true
		}
		if reflectHigh(&b.X, &b.VX, r, right) {
			s.stats.WallContacts++
			if ordered && b.OnEdge {
				continue
			}
			b.OnEdge = true
		}
		if reflectLow(&b.Y, &b.VY, r, top) {
			s.stats.WallContacts++
			if ordered && b.OnEdge {
				continue
			}
			b.OnEdge = true
		}
		if reflectHigh(&b.Y, &b.VY, r, bottom) {
			s.stats.WallContacts++
			b.OnEdge = true
		}
	}
}

// reflectLow handles a left or top wall at bound.
func reflectLow(pos, vel *float64, r, bound float64) bool {
	edge := *pos - r
	if edge > bound {
		return false
	}
	*vel = -*vel
	if pen := bound - edge; pen > 0 {
		*pos += pen + Overshoot
	}
	return true
}

// reflectHigh handles a right or bottom wall at bound.
func reflectHigh(pos, vel *float64, r, bound float64) bool {
	edge := *pos + r
	if edge < bound {
		return false
	}
	*vel = -*vel
	if pen := edge - bound; pen > 0 {
		*pos -= pen + Overshoot
	}
	return true
}
