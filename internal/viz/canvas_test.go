package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/ballsim/internal/balls"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(3, 2)

	c.Set(0, 0)
	c.Set(3, 7)
	c.Set(-1, 0)
	c.Set(100, 100)

	if c.Grid[0][0] != blank|0x1 {
		t.Errorf("expected dot 1 at (0,0), got %U", c.Grid[0][0])
	}
	if c.Grid[1][1] != blank|0x80 {
		t.Errorf("expected dot 8 in cell (1,1), got %U", c.Grid[1][1])
	}
	if !c.IsSet(3, 7) || c.IsSet(1, 1) {
		t.Error("IsSet disagrees with Set")
	}

	c.Clear()
	if c.IsSet(0, 0) {
		t.Error("Clear left dots set")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(4, 3)
	lines := strings.Split(c.String(), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, l := range lines {
		if n := len([]rune(l)); n != 4 {
			t.Errorf("expected 4 runes per line, got %d", n)
		}
	}
}

func TestFillEllipse(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillEllipse(10, 10, 3, 3)

	if !c.IsSet(10, 10) || !c.IsSet(13, 10) || !c.IsSet(10, 7) {
		t.Error("expected center and axis extremes set")
	}
	if c.IsSet(13, 13) {
		t.Error("corner of bounding box should be outside the circle")
	}

	c.Clear()
	c.FillEllipse(4.2, 4.4, 0.1, 0.1)
	if !c.IsSet(4, 4) {
		t.Error("tiny ellipse should light the nearest dot")
	}
}

func TestPainterDraw(t *testing.T) {
	bounds := balls.Rect{Right: 100, Bottom: 100}
	s, err := balls.Restore(10, bounds, []balls.Ball{{X: 50, Y: 50}, {X: 5, Y: 5}})
	if err != nil {
		t.Fatal(err)
	}

	c := NewCanvas(50, 25) // 100 x 100 dots
	p := NewPainter(c, bounds)
	p.Draw(s, true)

	cx, cy := p.Project(50, 50)
	if !c.IsSet(int(cx), int(cy)) {
		t.Errorf("ball center (%v,%v) not painted", cx, cy)
	}
	if !c.IsSet(0, 50) || !c.IsSet(99, 50) {
		t.Error("border not painted")
	}
	if c.IsSet(75, 20) {
		t.Error("empty field area painted")
	}

	p.DrawFrame(nil, 5, false)
	if c.IsSet(0, 50) {
		t.Error("DrawFrame without border left the border")
	}
}

func TestSparklineChart(t *testing.T) {
	if got := SparklineChart(nil, 5); got != "─────" {
		t.Errorf("empty sparkline = %q", got)
	}
	if SparklineChart([]float64{1, 2, 3}, 0) != "" {
		t.Error("zero width sparkline should be empty")
	}
	out := SparklineChart([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 4)
	if !strings.Contains(out, "█") {
		t.Errorf("expected max block in %q", out)
	}
}

func TestNextTheme(t *testing.T) {
	first := Themes[0].Name
	seen := map[string]bool{first: true}
	name := first
	for range Themes[1:] {
		name = NextTheme(name).Name
		seen[name] = true
	}
	if len(seen) != len(Themes) {
		t.Errorf("cycle visited %d of %d themes", len(seen), len(Themes))
	}
	if NextTheme(name).Name != first {
		t.Error("cycle does not wrap")
	}
	if GetTheme("nope").Name != first {
		t.Error("unknown theme should fall back to the first")
	}
}
