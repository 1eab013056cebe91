package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ballsim/internal/balls"
)

const (
	DefaultBalls       = 50
	DefaultDiameter    = 10
	DefaultWidth       = 640
	DefaultHeight      = 480
	DefaultSteps       = 2000
	DefaultSampleEvery = 10
	DefaultFPS         = 60
)

var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	Name        string      `yaml:"name,omitempty"`
	Balls       int         `yaml:"balls"`
	Diameter    int         `yaml:"diameter"`
	Field       FieldConfig `yaml:"field"`
	Boundary    string      `yaml:"boundary"`
	Seed        int64       `yaml:"seed"`
	Steps       int         `yaml:"steps"`
	SampleEvery int         `yaml:"sample_every"`
	FPS         int         `yaml:"fps"`
}

type FieldConfig struct {
	Left   int `yaml:"left"`
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
}

func (f FieldConfig) Rect() balls.Rect {
	return balls.Rect{Left: f.Left, Top: f.Top, Right: f.Right, Bottom: f.Bottom}
}

func DefaultConfig() *Config {
	return &Config{
		Balls:       DefaultBalls,
		Diameter:    DefaultDiameter,
		Field:       FieldConfig{Right: DefaultWidth, Bottom: DefaultHeight},
		Boundary:    balls.BoundaryIndependent.String(),
		Steps:       DefaultSteps,
		SampleEvery: DefaultSampleEvery,
		FPS:         DefaultFPS,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the run parameters and that the field can hold the balls.
func (c *Config) Validate() error {
	if c.Balls < 0 {
		return fmt.Errorf("%w: balls must be non-negative, got %d", ErrInvalid, c.Balls)
	}
	if c.Diameter <= 0 {
		return fmt.Errorf("%w: diameter must be positive, got %d", ErrInvalid, c.Diameter)
	}
	if c.Steps < 0 {
		return fmt.Errorf("%w: steps must be non-negative, got %d", ErrInvalid, c.Steps)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	}
	if c.SampleEvery <= 0 {
		return fmt.Errorf("%w: sample_every must be positive, got %d", ErrInvalid, c.SampleEvery)
	}
	if _, err := c.Policy(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	f := balls.Field{Bounds: c.Field.Rect(), Diameter: c.Diameter}
	if f.Cells() < c.Balls {
		return fmt.Errorf("%w: field %v holds %d balls of diameter %d, want %d",
			ErrInvalid, f.Bounds, f.Cells(), c.Diameter, c.Balls)
	}
	return nil
}

func (c *Config) Policy() (balls.BoundaryPolicy, error) {
	return balls.ParseBoundaryPolicy(c.Boundary)
}

// NewSimulation builds a seeded simulation from the config.
func (c *Config) NewSimulation() (*balls.Simulation, error) {
	policy, err := c.Policy()
	if err != nil {
		return nil, err
	}
	return balls.New(c.Balls, c.Diameter, c.Field.Rect(),
		balls.WithRand(balls.NewRand(c.Seed)),
		balls.WithBoundaryPolicy(policy),
	)
}
