package balls

type Simulation struct {
	field  Field
	balls  []Ball
	policy BoundaryPolicy
	rng    Rand
	stats  Stats
}

type Option func(*Simulation)

// WithRand sets the source used to place balls and seed velocities.
func WithRand(r Rand) Option {
	return func(s *Simulation) { s.rng = r }
}

// WithBoundaryPolicy selects how a ball touching two walls in one step is
// corrected. The default is BoundaryIndependent.
func WithBoundaryPolicy(p BoundaryPolicy) Option {
	return func(s *Simulation) { s.policy = p }
}

// New places count balls of the given diameter inside bounds. It fails with
// an error wrapping ErrConfiguration when the field has fewer placement
// cells than balls.
func New(count, diameter int, bounds Rect, opts ...Option) (*Simulation, error) {
	s, err := newSimulation(diameter, bounds, opts)
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, &ConfigError{Balls: count, Diameter: diameter, Bounds: bounds, Reason: "negative ball count"}
	}
	if s.rng == nil {
		s.rng = defaultRand()
	}
	balls, err := place(count, s.field, s.rng)
	if err != nil {
		return nil, err
	}
	s.balls = balls
	return s, nil
}

// Restore builds a simulation from an explicit ball state, e.g. a stored
// frame. The state is copied.
func Restore(diameter int, bounds Rect, state []Ball, opts ...Option) (*Simulation, error) {
	s, err := newSimulation(diameter, bounds, opts)
	if err != nil {
		return nil, err
	}
	s.balls = make([]Ball, len(state))
	copy(s.balls, state)
	return s, nil
}

func newSimulation(diameter int, bounds Rect, opts []Option) (*Simulation, error) {
	if diameter <= 0 {
		return nil, &ConfigError{Diameter: diameter, Bounds: bounds, Reason: "diameter must be positive"}
	}
	if bounds.Width() < 0 || bounds.Height() < 0 {
		return nil, &ConfigError{Diameter: diameter, Bounds: bounds, Reason: "inverted field bounds"}
	}
	s := &Simulation{
		field:  Field{Bounds: bounds, Diameter: diameter},
		policy: BoundaryIndependent,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Update advances every ball by one step: move, boundary, collisions.
func (s *Simulation) Update() {
	s.stats = Stats{Step: s.stats.Step + 1}
	s.move()
	s.resolveBoundaries()
	s.resolveCollisions()
}

func (s *Simulation) move() {
	for i := range s.balls {
		b := &s.balls[i]
		b.X += b.VX
		b.Y += b.VY
	}
}

// ForEachBall calls fn with every ball center and the shared radius.
func (s *Simulation) ForEachBall(fn func(x, y, radius float64)) {
	r := float64(s.field.Radius())
	for i := range s.balls {
		fn(s.balls[i].X, s.balls[i].Y, r)
	}
}

func (s *Simulation) Len() int               { return len(s.balls) }
func (s *Simulation) Field() Field           { return s.field }
func (s *Simulation) Radius() float64        { return float64(s.field.Radius()) }
func (s *Simulation) Policy() BoundaryPolicy { return s.policy }
func (s *Simulation) Stats() Stats           { return s.stats }
func (s *Simulation) Ball(i int) Ball        { return s.balls[i] }

// Balls returns a copy of the current state.
func (s *Simulation) Balls() []Ball {
	out := make([]Ball, len(s.balls))
	copy(out, s.balls)
	return out
}

// Clone returns an independent copy sharing no ball storage. The random
// source is shared; it is only used during construction.
func (s *Simulation) Clone() *Simulation {
	c := *s
	c.balls = s.Balls()
	return &c
}

// KineticEnergy is ½Σ|v|² over all balls, each of unit mass.
func (s *Simulation) KineticEnergy() float64 {
	e := 0.0
	for i := range s.balls {
		b := &s.balls[i]
		e += 0.5 * (b.VX*b.VX + b.VY*b.VY)
	}
	return e
}
