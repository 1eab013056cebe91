package automation

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ballsim/internal/config"
	"github.com/san-kum/ballsim/internal/metrics"
	"github.com/san-kum/ballsim/internal/sim"
)

// Scenario defines a scripted sequence of runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep starts from a preset (or the defaults) and overrides the
// fields that are set.
type ScenarioStep struct {
	Name     string `yaml:"name"`
	Preset   string `yaml:"preset"`
	Balls    *int   `yaml:"balls"`
	Diameter *int   `yaml:"diameter"`
	Width    *int   `yaml:"width"`
	Height   *int   `yaml:"height"`
	Boundary string `yaml:"boundary"`
	Seed     *int64 `yaml:"seed"`
	Steps    *int   `yaml:"steps"`
}

// Outcome is the result of one scenario step.
type Outcome struct {
	Name   string
	RunID  string
	Config *config.Config
	Result *sim.Result
}

// SaveFunc persists a finished run and returns its id.
type SaveFunc func(cfg *config.Config, result *sim.Result) (string, error)

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}

	return &scenario, nil
}

// Config resolves the step into a validated run configuration.
func (s ScenarioStep) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		cfg = config.GetPreset(s.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
	}
	if s.Name != "" {
		cfg.Name = s.Name
	}
	if s.Balls != nil {
		cfg.Balls = *s.Balls
	}
	if s.Diameter != nil {
		cfg.Diameter = *s.Diameter
	}
	if s.Width != nil {
		cfg.Field.Right = cfg.Field.Left + *s.Width
	}
	if s.Height != nil {
		cfg.Field.Bottom = cfg.Field.Top + *s.Height
	}
	if s.Boundary != "" {
		cfg.Boundary = s.Boundary
	}
	if s.Seed != nil {
		cfg.Seed = *s.Seed
	}
	if s.Steps != nil {
		cfg.Steps = *s.Steps
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Execute runs cfg headless with the default metrics.
func Execute(ctx context.Context, cfg *config.Config) (*sim.Result, error) {
	s, err := cfg.NewSimulation()
	if err != nil {
		return nil, err
	}
	runner := sim.New(s)
	for _, m := range metrics.Defaults() {
		runner.AddMetric(m)
	}
	return runner.Run(ctx, sim.Config{Steps: cfg.Steps, SampleEvery: cfg.SampleEvery, ValidateState: true})
}

// RunScenario executes every step in order, reporting progress to out.
// save may be nil. It stops at the first failing step and returns the
// outcomes gathered so far.
func RunScenario(ctx context.Context, scenario *Scenario, out io.Writer, save SaveFunc) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		cfg, err := step.Config()
		if err != nil {
			return outcomes, fmt.Errorf("step %d: %w", i+1, err)
		}

		fmt.Fprintf(out, "running step %d/%d: %s (%d balls, %d steps)\n",
			i+1, len(scenario.Steps), stepName(step, i), cfg.Balls, cfg.Steps)

		result, err := Execute(ctx, cfg)
		if err != nil {
			return outcomes, fmt.Errorf("step %d run: %w", i+1, err)
		}

		o := Outcome{Name: stepName(step, i), Config: cfg, Result: result}
		if save != nil {
			id, err := save(cfg, result)
			if err != nil {
				return outcomes, fmt.Errorf("step %d save: %w", i+1, err)
			}
			o.RunID = id
		}
		outcomes = append(outcomes, o)
	}

	return outcomes, nil
}

func stepName(s ScenarioStep, i int) string {
	switch {
	case s.Name != "":
		return s.Name
	case s.Preset != "":
		return s.Preset
	}
	return fmt.Sprintf("step%d", i+1)
}
