package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/ballsim/internal/balls"
)

// Momentum reports |Σv| at the last observation.
type Momentum struct {
	name   string
	px, py float64
}

func NewMomentum() *Momentum {
	return &Momentum{name: "momentum"}
}

func (m *Momentum) Name() string { return m.name }

func (m *Momentum) Observe(s *balls.Simulation) {
	m.px, m.py = 0, 0
	for i := 0; i < s.Len(); i++ {
		b := s.Ball(i)
		m.px += b.VX
		m.py += b.VY
	}
}

func (m *Momentum) Value() float64 { return math.Hypot(m.px, m.py) }
func (m *Momentum) Reset()         { m.px, m.py = 0, 0 }

// SpeedStats holds the speed distribution at the last observation. Value is
// the mean speed.
type SpeedStats struct {
	name   string
	speeds []float64
	mean   float64
	stdDev float64
}

func NewSpeedStats() *SpeedStats {
	return &SpeedStats{name: "mean_speed"}
}

func (m *SpeedStats) Name() string { return m.name }

func (m *SpeedStats) Observe(s *balls.Simulation) {
	m.speeds = m.speeds[:0]
	for i := 0; i < s.Len(); i++ {
		m.speeds = append(m.speeds, s.Ball(i).Speed())
	}
	if len(m.speeds) == 0 {
		m.mean, m.stdDev = 0, 0
		return
	}
	m.mean, m.stdDev = stat.MeanStdDev(m.speeds, nil)
	if math.IsNaN(m.stdDev) {
		m.stdDev = 0
	}
}

func (m *SpeedStats) Value() float64  { return m.mean }
func (m *SpeedStats) StdDev() float64 { return m.stdDev }

func (m *SpeedStats) Reset() {
	m.speeds = m.speeds[:0]
	m.mean, m.stdDev = 0, 0
}
