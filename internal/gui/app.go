package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/san-kum/ballsim/internal/balls"
	"github.com/san-kum/ballsim/internal/config"
)

var (
	ColBg     = color.RGBA{10, 10, 10, 255}
	ColBall   = color.RGBA{180, 180, 180, 255}
	ColBorder = color.RGBA{60, 60, 60, 255}
)

// Game implements ebiten.Game for a single simulation.
type Game struct {
	cfg    *config.Config
	sim    *balls.Simulation
	paused bool
	hud    bool
}

func NewGame(cfg *config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{cfg: cfg, hud: true}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) restart() error {
	s, err := g.cfg.NewSimulation()
	if err != nil {
		return err
	}
	g.sim = s
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.restart(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.cfg.Seed++
		if err := g.restart(); err != nil {
			return err
		}
	}

	if !g.paused || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sim.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColBg)
	drawField(screen, g.sim)

	if !g.hud {
		return
	}
	st := g.sim.Stats()
	state := "running"
	if g.paused {
		state = "paused"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  step %d  balls %d  hits %d  ke %.3f  %.0f fps",
		state, st.Step, g.sim.Len(), st.Collisions, g.sim.KineticEnergy(), ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.sim.Field().Bounds
	return b.Right, b.Bottom
}

// Run opens a window sized to the field and blocks until it is closed.
func Run(cfg *config.Config) error {
	g, err := NewGame(cfg)
	if err != nil {
		return err
	}
	b := cfg.Field.Rect()
	ebiten.SetWindowSize(b.Right, b.Bottom)
	ebiten.SetWindowTitle(fmt.Sprintf("ballsim - %d balls", cfg.Balls))
	ebiten.SetTPS(cfg.FPS)
	return ebiten.RunGame(g)
}
