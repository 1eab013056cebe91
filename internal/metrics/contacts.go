package metrics

import (
	"math"

	"github.com/san-kum/ballsim/internal/balls"
)

// CollisionRate is the mean number of resolved ball-ball collisions per step.
type CollisionRate struct {
	name       string
	collisions int
	steps      int
}

func NewCollisionRate() *CollisionRate {
	return &CollisionRate{name: "collision_rate"}
}

func (c *CollisionRate) Name() string { return c.name }

func (c *CollisionRate) Observe(s *balls.Simulation) {
	st := s.Stats()
	if st.Step == 0 {
		return
	}
	c.collisions += st.Collisions
	c.steps++
}

func (c *CollisionRate) Value() float64 {
	if c.steps == 0 {
		return 0
	}
	return float64(c.collisions) / float64(c.steps)
}

func (c *CollisionRate) Reset() {
	c.collisions = 0
	c.steps = 0
}

// MaxOverlap is the deepest interpenetration, diameter minus center
// distance, seen between any two balls.
type MaxOverlap struct {
	name string
	max  float64
}

func NewMaxOverlap() *MaxOverlap {
	return &MaxOverlap{name: "max_overlap"}
}

func (m *MaxOverlap) Name() string { return m.name }

func (m *MaxOverlap) Observe(s *balls.Simulation) {
	m.max = math.Max(m.max, Overlap(s))
}

func (m *MaxOverlap) Value() float64 { return m.max }
func (m *MaxOverlap) Reset()         { m.max = 0 }

// Overlap returns the current deepest overlap, or 0 when no balls touch.
func Overlap(s *balls.Simulation) float64 {
	d := float64(s.Field().Diameter)
	deepest := 0.0
	for i := 0; i < s.Len(); i++ {
		a := s.Ball(i)
		for j := i + 1; j < s.Len(); j++ {
			b := s.Ball(j)
			dist := math.Hypot(a.X-b.X, a.Y-b.Y)
			deepest = math.Max(deepest, d-dist)
		}
	}
	return deepest
}
