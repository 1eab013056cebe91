package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/ballsim/internal/balls"
	"github.com/san-kum/ballsim/internal/sim"
)

var field = balls.Field{Bounds: balls.Rect{Right: 100, Bottom: 80}, Diameter: 10}

func TestFrameToSVG(t *testing.T) {
	frame := sim.Frame{Step: 4, Balls: []balls.Ball{{X: 10, Y: 20}, {X: 55.25, Y: 40}}}
	svg := FrameToSVG(frame, field)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not a complete svg document")
	}
	if !strings.Contains(svg, `viewBox="0 0 100 80"`) {
		t.Error("viewBox does not match field bounds")
	}
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("expected 2 circles, got %d", got)
	}
	if !strings.Contains(svg, `cx="55.2" cy="40.0" r="5"`) && !strings.Contains(svg, `cx="55.3" cy="40.0" r="5"`) {
		t.Errorf("missing second ball in %s", svg)
	}
}

func TestTrajectoryToSVG(t *testing.T) {
	frames := []sim.Frame{
		{Step: 0, Balls: []balls.Ball{{X: 10, Y: 10}}},
		{Step: 1, Balls: []balls.Ball{{X: 20, Y: 15}}},
		{Step: 2, Balls: []balls.Ball{{X: 30, Y: 20}}},
	}

	svg := TrajectoryToSVG(frames, 0, field, "#ff0000")
	if !strings.Contains(svg, `d="M10.0,10.0 L20.0,15.0 L30.0,20.0"`) {
		t.Errorf("unexpected path in %s", svg)
	}
	if !strings.Contains(svg, `stroke="#ff0000"`) {
		t.Error("stroke colour not applied")
	}

	if TrajectoryToSVG(frames, 3, field, "#fff") != "" {
		t.Error("expected empty output for missing ball")
	}
	if TrajectoryToSVG(frames[:1], 0, field, "#fff") != "" {
		t.Error("expected empty output for single point")
	}
}

func TestSeriesCSV(t *testing.T) {
	var buf bytes.Buffer
	series := []sim.Sample{
		{Step: 0, KineticEnergy: 0.25},
		{Step: 1, KineticEnergy: 0.25, Collisions: 2, WallContacts: 1},
	}
	if err := SeriesCSV(&buf, series); err != nil {
		t.Fatal(err)
	}

	want := "step,kinetic_energy,collisions,wall_contacts\n0,0.25,0,0\n1,0.25,2,1\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestFrameCSV(t *testing.T) {
	var buf bytes.Buffer
	frame := sim.Frame{Balls: []balls.Ball{{X: 1.5, Y: 2, VX: -0.5, VY: 0}}}
	if err := FrameCSV(&buf, frame); err != nil {
		t.Fatal(err)
	}

	want := "ball,x,y,vx,vy\n0,1.5,2,-0.5,0\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
