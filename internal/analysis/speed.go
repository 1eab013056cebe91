package analysis

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/ballsim/internal/sim"
)

// Histogram counts values in len(Counts) equal-width bins. Bin i covers
// [Edges[i], Edges[i+1]).
type Histogram struct {
	Edges  []float64
	Counts []float64
}

func (h Histogram) Total() float64 { return floats.Sum(h.Counts) }

// SpeedHistogram bins the speeds of every ball in frame from zero up to
// the fastest ball. A frame at rest is binned over [0, 1).
func SpeedHistogram(frame sim.Frame, bins int) Histogram {
	if bins < 1 {
		bins = 1
	}
	speeds := make([]float64, len(frame.Balls))
	for i, b := range frame.Balls {
		speeds[i] = b.Speed()
	}
	slices.Sort(speeds)

	top := 0.0
	if len(speeds) > 0 {
		top = speeds[len(speeds)-1]
	}
	upper := 1.0
	if top > 0 {
		upper = math.Nextafter(top, math.Inf(1))
	}
	// Span rounds its intermediate edges, so the last one is pinned above
	// the fastest ball explicitly.
	edges := floats.Span(make([]float64, bins+1), 0, upper)
	edges[bins] = upper
	counts := make([]float64, bins)
	if len(speeds) > 0 {
		stat.Histogram(counts, edges, speeds, nil)
	}
	return Histogram{Edges: edges, Counts: counts}
}

// String draws one horizontal bar per bin scaled to width characters.
func (h Histogram) String() string {
	return h.Render(40)
}

func (h Histogram) Render(width int) string {
	peak := 0.0
	if len(h.Counts) > 0 {
		peak = floats.Max(h.Counts)
	}

	var sb strings.Builder
	for i, c := range h.Counts {
		n := 0
		if peak > 0 {
			n = int(math.Round(c / peak * float64(width)))
		}
		fmt.Fprintf(&sb, "%6.3f-%6.3f │%s %d\n", h.Edges[i], h.Edges[i+1], strings.Repeat("█", n), int(c))
	}
	return sb.String()
}
