package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/san-kum/ballsim/internal/balls"
)

func drawField(screen *ebiten.Image, s *balls.Simulation) {
	b := s.Field().Bounds
	vector.StrokeRect(screen, float32(b.Left), float32(b.Top), float32(b.Width()), float32(b.Height()), 1, ColBorder, false)

	s.ForEachBall(func(x, y, radius float64) {
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), ColBall, true)
	})
}
