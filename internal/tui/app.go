package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ballsim/internal/balls"
	"github.com/san-kum/ballsim/internal/config"
	"github.com/san-kum/ballsim/internal/metrics"
	"github.com/san-kum/ballsim/internal/viz"
)

const (
	historyLen = 60
	maxSpeed   = 16
	minSpeed   = 0.25
	chromeRows = 7
)

type tickMsg time.Time

func tick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

// App is the bubbletea model of the live field view.
type App struct {
	cfg     *config.Config
	sim     *balls.Simulation
	painter *viz.Painter
	theme   viz.Theme

	paused  bool
	speed   float64
	pending float64

	history []float64
	overlap float64

	width  int
	height int
}

// NewApp validates cfg and builds the first simulation. Unknown theme
// names fall back to the first theme.
func NewApp(cfg *config.Config, theme string) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &App{
		cfg:    cfg,
		theme:  viz.GetTheme(theme),
		speed:  1,
		width:  80,
		height: 24,
	}
	if err := a.restart(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) restart() error {
	s, err := a.cfg.NewSimulation()
	if err != nil {
		return err
	}
	a.sim = s
	a.history = make([]float64, 0, historyLen)
	a.overlap = 0
	a.pending = 0
	a.resize()
	return nil
}

func (a *App) resize() {
	w := max(a.width-4, 10)
	h := max(a.height-chromeRows-2, 4)
	a.painter = viz.NewPainter(viz.NewCanvas(w, h), a.cfg.Field.Rect())
}

func (a *App) Simulation() *balls.Simulation { return a.sim }
func (a *App) Paused() bool                  { return a.paused }
func (a *App) Speed() float64                { return a.speed }
func (a *App) Theme() viz.Theme              { return a.theme }

func (a *App) Init() tea.Cmd { return tick(a.cfg.FPS) }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.resize()
		return a, nil
	case tickMsg:
		if !a.paused {
			a.pending += a.speed
			for a.pending >= 1 {
				a.step()
				a.pending--
			}
		}
		return a, tick(a.cfg.FPS)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return a, tea.Quit
	case " ", "p":
		a.paused = !a.paused
	case "s", ".":
		if a.paused {
			a.step()
		}
	case "r":
		if err := a.restart(); err != nil {
			return a, tea.Quit
		}
		return a, tea.ClearScreen
	case "n":
		a.cfg.Seed++
		if err := a.restart(); err != nil {
			return a, tea.Quit
		}
		return a, tea.ClearScreen
	case "+", "=":
		a.speed = math.Min(a.speed*2, maxSpeed)
	case "-", "_":
		a.speed = math.Max(a.speed/2, minSpeed)
	case "0":
		a.speed = 1
	case "t":
		a.theme = viz.NextTheme(a.theme.Name)
	}
	return a, nil
}

func (a *App) step() {
	a.sim.Update()
	a.history = append(a.history, float64(a.sim.Stats().Collisions))
	if len(a.history) > historyLen {
		a.history = a.history[1:]
	}
	a.overlap = math.Max(a.overlap, metrics.Overlap(a.sim))
}

func (a *App) View() string {
	var b strings.Builder

	title := fmt.Sprintf("ballsim  %d balls  d=%d  %s", a.sim.Len(), a.cfg.Diameter, a.sim.Policy())
	status := viz.StatusRunning.Render("● running")
	if a.paused {
		status = viz.StatusPaused.Render("‖ paused")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, viz.HeaderStyle.Render(title), "  ", status) + "\n")

	a.painter.Draw(a.sim, false)
	field := lipgloss.NewStyle().Foreground(a.theme.Balls).Render(a.painter.Canvas().String())
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.theme.Border)
	b.WriteString(box.Render(field) + "\n")

	st := a.sim.Stats()
	stats := []string{
		viz.Metric("step", fmt.Sprintf("%d", st.Step)),
		viz.Metric("ke", fmt.Sprintf("%.3f", a.sim.KineticEnergy())),
		viz.Metric("hits", fmt.Sprintf("%d", st.Collisions)),
		viz.Metric("walls", fmt.Sprintf("%d", st.WallContacts)),
		viz.Metric("overlap", fmt.Sprintf("%.2f", a.overlap)),
		viz.Metric("speed", fmt.Sprintf("%gx", a.speed)),
	}
	b.WriteString(strings.Join(stats, "  ") + "\n")
	accent := lipgloss.NewStyle().Foreground(a.theme.Accent)
	muted := lipgloss.NewStyle().Foreground(a.theme.Muted)
	b.WriteString(accent.Render("collisions ") + viz.SparklineChart(a.history, min(historyLen, max(a.width-12, 1))) + "\n")
	b.WriteString(muted.Render(viz.Separator(max(a.width-2, 0))) + "\n")
	b.WriteString(viz.KeyHint.Render("space pause · s step · +/- speed · r restart · n new seed · t " + a.theme.Name + " · q quit"))

	return b.String()
}

// RunInteractive opens the live view in the alternate screen.
func RunInteractive(cfg *config.Config, theme string) error {
	app, err := NewApp(cfg, theme)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
