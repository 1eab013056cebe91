package sim

import (
	"fmt"

	"github.com/san-kum/ballsim/internal/balls"
)

type Metric interface {
	Name() string
	Observe(s *balls.Simulation)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(s *balls.Simulation)
}

type Config struct {
	Steps         int
	SampleEvery   int
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Steps:         1000,
		SampleEvery:   10,
		ValidateState: true,
	}
}

// Frame is a copy of every ball at one step.
type Frame struct {
	Step  int
	Balls []balls.Ball
}

// Sample records per-step aggregates.
type Sample struct {
	Step          int
	KineticEnergy float64
	Collisions    int
	WallContacts  int
}

type Result struct {
	Frames      []Frame
	Series      []Sample
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
	Errors      []error
}

// Last returns the final sampled frame.
func (r *Result) Last() (Frame, bool) {
	if len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

type SimError struct {
	Step    int
	Ball    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (ball %d): %s", e.Step, e.Ball, e.Message)
}
