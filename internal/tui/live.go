package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/ballsim/internal/balls"
	"github.com/san-kum/ballsim/internal/viz"
)

const (
	width       = 70
	height      = 20
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer prints the field to a terminal while a headless run
// progresses. It implements sim.Observer and drops frames above frameRate.
type LiveRenderer struct {
	out       io.Writer
	name      string
	frameRate int
	lastFrame time.Time
	painter   *viz.Painter
}

func NewLiveRenderer(out io.Writer, name string, bounds balls.Rect, frameRate int) *LiveRenderer {
	if frameRate <= 0 {
		frameRate = 30
	}
	return &LiveRenderer{
		out:       out,
		name:      name,
		frameRate: frameRate,
		painter:   viz.NewPainter(viz.NewCanvas(width, height), bounds),
	}
}

func (r *LiveRenderer) OnStep(s *balls.Simulation) {
	if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()
	r.render(s)
}

func (r *LiveRenderer) render(s *balls.Simulation) {
	r.painter.Draw(s, false)
	st := s.Stats()

	var b strings.Builder
	b.WriteString(clearScreen)
	fmt.Fprintf(&b, "  %s  step=%d\n", r.name, st.Step)
	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	for _, row := range r.painter.Canvas().Grid {
		b.WriteString("  ")
		b.WriteString(string(row))
		b.WriteString("\n")
	}
	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	fmt.Fprintf(&b, "  balls=%d ke=%.3f collisions=%d walls=%d\n",
		s.Len(), s.KineticEnergy(), st.Collisions, st.WallContacts)

	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
