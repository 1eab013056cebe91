package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/ballsim/internal/balls"
)

func restore(t *testing.T, state ...balls.Ball) *balls.Simulation {
	t.Helper()
	s, err := balls.Restore(10, balls.Rect{Right: 100, Bottom: 100}, state)
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	return s
}

func TestKineticEnergy(t *testing.T) {
	s := restore(t, balls.Ball{X: 20, Y: 20, VX: 3, VY: 4}, balls.Ball{X: 60, Y: 60, VX: 1})
	m := NewKineticEnergy()

	m.Observe(s)
	if got, want := m.Value(), 0.5*25+0.5*1; math.Abs(got-want) > 1e-12 {
		t.Errorf("expected energy %v, got %v", want, got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero energy after reset")
	}
}

func TestEnergyDriftElastic(t *testing.T) {
	s, err := balls.New(40, 10, balls.Rect{Right: 200, Bottom: 200}, balls.WithRand(balls.NewRand(6)))
	if err != nil {
		t.Fatal(err)
	}
	m := NewEnergyDrift()

	m.Observe(s)
	for i := 0; i < 400; i++ {
		s.Update()
		m.Observe(s)
	}
	if m.Value() > 1e-9 {
		t.Errorf("energy drift %v, want ~0", m.Value())
	}
}

func TestCollisionRate(t *testing.T) {
	s := restore(t, balls.Ball{X: 50, Y: 50, VX: 1}, balls.Ball{X: 59, Y: 50, VX: -1})
	m := NewCollisionRate()

	m.Observe(s) // step 0 is ignored
	s.Update()
	m.Observe(s)
	s.Update()
	m.Observe(s)

	if m.Value() != 0.5 {
		t.Errorf("expected 0.5 collisions per step, got %v", m.Value())
	}
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name  string
		state []balls.Ball
		want  float64
	}{
		{"none", nil, 0},
		{"apart", []balls.Ball{{X: 10, Y: 10}, {X: 50, Y: 50}}, 0},
		{"touching", []balls.Ball{{X: 10, Y: 10}, {X: 20, Y: 10}}, 0},
		{"overlapping", []balls.Ball{{X: 10, Y: 10}, {X: 17, Y: 10}, {X: 80, Y: 80}}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlap(restore(t, tt.state...)); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Overlap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMomentum(t *testing.T) {
	s := restore(t, balls.Ball{X: 20, Y: 20, VX: 1, VY: 2}, balls.Ball{X: 60, Y: 60, VX: 2, VY: 2})
	m := NewMomentum()
	m.Observe(s)

	if m.Value() != 5 {
		t.Errorf("expected momentum 5, got %v", m.Value())
	}
}

func TestSpeedStats(t *testing.T) {
	s := restore(t,
		balls.Ball{X: 20, Y: 20, VX: 3, VY: 4},
		balls.Ball{X: 50, Y: 50, VX: 1},
		balls.Ball{X: 80, Y: 80, VY: -3},
	)
	m := NewSpeedStats()
	m.Observe(s)

	if math.Abs(m.Value()-3) > 1e-12 {
		t.Errorf("expected mean speed 3, got %v", m.Value())
	}
	if math.Abs(m.StdDev()-2) > 1e-12 {
		t.Errorf("expected stddev 2, got %v", m.StdDev())
	}

	single := NewSpeedStats()
	single.Observe(restore(t, balls.Ball{X: 50, Y: 50, VX: 1}))
	if single.StdDev() != 0 {
		t.Errorf("expected zero spread for one ball, got %v", single.StdDev())
	}
}

func TestDefaultsFresh(t *testing.T) {
	a, b := Defaults(), Defaults()
	if len(a) != 6 {
		t.Fatalf("expected 6 metrics, got %d", len(a))
	}
	names := make(map[string]bool)
	for i := range a {
		if a[i] == b[i] {
			t.Errorf("metric %s shared between calls", a[i].Name())
		}
		names[a[i].Name()] = true
	}
	if len(names) != len(a) {
		t.Error("metric names are not unique")
	}
}
