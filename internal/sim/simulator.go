package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/ballsim/internal/balls"
)

type Simulator struct {
	sim       *balls.Simulation
	metrics   []Metric
	observers []Observer
}

func New(s *balls.Simulation) *Simulator {
	return &Simulator{
		sim:       s,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Simulation() *balls.Simulation { return s.sim }

// Run advances the simulation cfg.Steps times. On cancellation it returns
// the partial result together with ctx.Err().
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Frames:  make([]Frame, 0, cfg.Steps/cfg.SampleEvery+2),
		Series:  make([]Sample, 0, cfg.Steps+1),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
		m.Observe(s.sim)
	}

	initialEnergy := s.sim.KineticEnergy()
	result.Frames = append(result.Frames, s.frame(0))
	result.Series = append(result.Series, Sample{Step: 0, KineticEnergy: initialEnergy})

	var runErr error
	for i := 1; i <= cfg.Steps; i++ {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		s.sim.Update()
		result.StepsTaken++

		stats := s.sim.Stats()
		result.Series = append(result.Series, Sample{
			Step:          i,
			KineticEnergy: s.sim.KineticEnergy(),
			Collisions:    stats.Collisions,
			WallContacts:  stats.WallContacts,
		})

		for _, m := range s.metrics {
			m.Observe(s.sim)
		}
		for _, obs := range s.observers {
			obs.OnStep(s.sim)
		}

		if cfg.ValidateState {
			if idx := firstInvalid(s.sim); idx >= 0 {
				result.Errors = append(result.Errors, SimError{Step: i, Ball: idx, Message: "invalid state (NaN/Inf)"})
				break
			}
		}

		if i%cfg.SampleEvery == 0 || i == cfg.Steps {
			result.Frames = append(result.Frames, s.frame(i))
		}
	}

	finalEnergy := s.sim.KineticEnergy()
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / initialEnergy
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, runErr
}

func (s *Simulator) frame(step int) Frame {
	return Frame{Step: step, Balls: s.sim.Balls()}
}

func validateConfig(cfg Config) error {
	if cfg.Steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", cfg.Steps)
	}
	if cfg.SampleEvery <= 0 {
		return fmt.Errorf("sample interval must be positive, got %d", cfg.SampleEvery)
	}
	return nil
}

func firstInvalid(s *balls.Simulation) int {
	for i := 0; i < s.Len(); i++ {
		if !s.Ball(i).IsValid() {
			return i
		}
	}
	return -1
}
