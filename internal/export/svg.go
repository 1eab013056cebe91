package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/ballsim/internal/balls"
	"github.com/san-kum/ballsim/internal/sim"
)

const (
	background = "#0a0a0a"
	ballFill   = "#00ff00"
	borderLine = "#444444"
)

func header(sb *strings.Builder, b balls.Rect) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%d %d %d %d">
<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s"/>
`, b.Width(), b.Height(), b.Left, b.Top, b.Width(), b.Height(),
		b.Left, b.Top, b.Width(), b.Height(), background, borderLine)
}

// FrameToSVG draws every ball of a frame as a circle in field coordinates.
func FrameToSVG(frame sim.Frame, field balls.Field) string {
	var sb strings.Builder
	header(&sb, field.Bounds)

	r := field.Radius()
	fmt.Fprintf(&sb, "<g fill=\"%s\">\n", ballFill)
	for _, b := range frame.Balls {
		fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%d\"/>\n", b.X, b.Y, r)
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// TrajectoryToSVG traces the centre of one ball across frames.
// Frames that do not hold the ball are skipped.
func TrajectoryToSVG(frames []sim.Frame, ball int, field balls.Field, strokeColor string) string {
	var pts []balls.Ball
	for _, f := range frames {
		if ball >= 0 && ball < len(f.Balls) {
			pts = append(pts, f.Balls[ball])
		}
	}
	if len(pts) < 2 {
		return ""
	}

	var sb strings.Builder
	header(&sb, field.Bounds)

	fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor)
	for i, p := range pts {
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", p.X, p.Y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", p.X, p.Y)
		}
	}
	sb.WriteString("\"/>\n")

	last := pts[len(pts)-1]
	fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%d\" fill=\"%s\"/>\n</svg>", last.X, last.Y, field.Radius(), strokeColor)
	return sb.String()
}
